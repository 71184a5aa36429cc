package apply

import (
	"math/rand"
	"strconv"
	"strings"

	"easyapply-engine/internal/browser"
)

// AnswerEngine resolves the visible screening questions with keyword
// heuristics. The tables are data, not control flow, so they can be tuned in
// config without touching the dialog loop.
type AnswerEngine struct {
	Affirm  []string
	Decline []string
	Years   int

	// randYears fills free-text "years with X" prompts the tables don't
	// cover; overridable in tests.
	randYears func() int
}

func NewAnswerEngine(affirm, decline []string, years int) *AnswerEngine {
	return &AnswerEngine{
		Affirm:    affirm,
		Decline:   decline,
		Years:     years,
		randYears: func() int { return 1 + rand.Intn(3) },
	}
}

// Apply answers every currently-visible question it recognizes. Each
// interaction is independently best-effort: one stubborn control never stops
// the rest of the pass. Re-running on an unchanged dialog is a no-op for
// already-selected choices.
func (e *AnswerEngine) Apply(pg browser.Page) {
	e.answerChoices(pg)
	e.fillYears(pg)
	e.fillUnknownYears(pg)
}

func (e *AnswerEngine) answerChoices(pg browser.Page) {
	labels, err := pg.QueryAll(selLabels)
	if err != nil {
		return
	}
	for _, lab := range labels {
		t, err := lab.Text()
		if err != nil {
			continue
		}
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}

		if matchesAny(t, e.Affirm) && !lab.Checked() {
			_ = lab.Click()
		}
		if matchesAny(t, e.Decline) {
			// Select the negative option if one exists; otherwise leave the
			// question unresolved for the dialog loop's safety nets.
			if no, err := pg.Query(selNoOption); err == nil && !no.Checked() {
				_ = no.Click()
			}
		}
	}
}

func (e *AnswerEngine) fillYears(pg browser.Page) {
	inputs, err := pg.QueryAll(selYearsInputs)
	if err != nil {
		return
	}
	years := strconv.Itoa(e.Years)
	for _, in := range inputs {
		_ = in.Fill(years)
	}
}

// fillUnknownYears covers free-text prompts like "years of experience with
// <tool we never heard of>": a conservative 1-3 beats leaving it blank.
func (e *AnswerEngine) fillUnknownYears(pg browser.Page) {
	areas, err := pg.QueryAll(selTextAreas)
	if err != nil {
		return
	}
	for _, ta := range areas {
		ph := strings.ToLower(ta.Attr("placeholder") + " " + ta.Attr("aria-label"))
		if strings.Contains(ph, "year") {
			_ = ta.Fill(strconv.Itoa(e.randYears()))
		}
	}
}

func matchesAny(text string, needles []string) bool {
	for _, n := range needles {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}
