package apply

import (
	"strings"

	"easyapply-engine/internal/domain"
)

// Eligible decides from a card's visible metadata whether opening the Easy
// Apply dialog is worth the cost. Cheap checks only; no browser round-trips.
func Eligible(denylist []string, cutoffDays int, l domain.Listing) (ok bool, reason string) {
	if titleDenied(denylist, l.Title) {
		return false, "title_denylist"
	}
	// Unknown posting age fails open.
	if l.PostingAgeDays != nil && *l.PostingAgeDays > cutoffDays {
		return false, "too_old"
	}
	if !l.HasEasyApply {
		return false, "no_easy_apply"
	}
	return true, ""
}

func titleDenied(denylist []string, title string) bool {
	if title == "" {
		return false
	}
	t := strings.ToLower(title)
	for _, w := range denylist {
		w = strings.ToLower(strings.TrimSpace(w))
		if w == "" {
			continue
		}
		if strings.Contains(t, w) {
			return true
		}
	}
	return false
}
