package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate trims and dedupes the keyword lists, then checks the
// automation thresholds make sense before a run is allowed to use them.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	trimList := func(xs []string) []string {
		seen := map[string]bool{}
		var ys []string
		for _, x := range xs {
			x = strings.TrimSpace(x)
			if x == "" {
				continue
			}
			key := strings.ToLower(x)
			if seen[key] {
				continue
			}
			seen[key] = true
			ys = append(ys, x)
		}
		return ys
	}

	out.Automation.TitleDenylist = trimList(out.Automation.TitleDenylist)
	out.Answers.Affirm = trimList(out.Answers.Affirm)
	out.Answers.Decline = trimList(out.Answers.Decline)

	// ---- Validation rules ----

	if out.App.Port <= 0 || out.App.Port > 65535 {
		res.addErr("app.port must be 1..65535")
	}

	if out.Automation.MaxApplications <= 0 {
		res.addErr("automation.max_applications must be > 0")
	}
	if out.Automation.PostingCutoffDays <= 0 {
		res.addErr("automation.posting_cutoff_days must be > 0")
	}
	if out.Automation.CardWaitSeconds <= 0 {
		res.addErr("automation.card_wait_seconds must be > 0")
	}
	if out.Automation.DialogWaitSeconds <= 0 {
		res.addErr("automation.dialog_wait_seconds must be > 0")
	}
	if out.Automation.DialogBudgetSeconds <= 0 {
		res.addErr("automation.dialog_budget_seconds must be > 0")
	}
	if out.Automation.MaxSteps <= 0 {
		res.addErr("automation.max_steps must be > 0")
	}
	if out.Automation.MaxDialogControls <= 0 {
		res.addErr("automation.max_dialog_controls must be > 0")
	}

	if out.Automation.DelayMinSeconds < 0 || out.Automation.DelayMaxSeconds < 0 {
		res.addErr("automation.delay_min_seconds/delay_max_seconds must be >= 0")
	} else if out.Automation.DelayMinSeconds > out.Automation.DelayMaxSeconds {
		res.addErr("automation.delay_min_seconds must be <= delay_max_seconds")
	} else if out.Automation.DelayMinSeconds < 2 {
		res.addWarn("automation.delay_min_seconds is very low (%d); rapid applying may trip site defenses.", out.Automation.DelayMinSeconds)
	}

	if out.Browser.NavPerSecond <= 0 {
		res.addErr("browser.nav_per_second must be > 0")
	}
	if out.Browser.NavBurst <= 0 {
		res.addErr("browser.nav_burst must be > 0")
	}

	if len(out.Automation.TitleDenylist) == 0 {
		res.addWarn("automation.title_denylist is empty; senior/cleared roles will not be filtered.")
	}
	if len(out.Answers.Affirm) == 0 {
		res.addWarn("answers.affirm is empty; most screening questions will go unanswered.")
	}

	return out, res
}
