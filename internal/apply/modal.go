package apply

import (
	"fmt"
	"path/filepath"
	"time"

	"easyapply-engine/internal/browser"
)

// DialogDriver runs one Easy Apply dialog from open to a terminal outcome
// under a wall-clock budget and a step cap.
type DialogDriver struct {
	Page       browser.Page
	Answers    *AnswerEngine
	AutoAnswer bool

	Wait        time.Duration // how long the dialog gets to appear
	Budget      time.Duration // wall clock from dialog open to abandonment
	MaxSteps    int
	MaxControls int

	ScreenshotDir string

	now func() time.Time // test hook
}

func (d *DialogDriver) Run() Outcome {
	now := d.now
	if now == nil {
		now = time.Now
	}
	start := now()

	if err := d.Page.WaitFor(selDialog, d.Wait); err != nil {
		// No dialog is a normal "nothing to do" outcome, not a failure.
		return SkippedNoModal
	}

	// Heavily-questioned dialogs are rarely completable heuristically;
	// bail before answering anything.
	if d.controlCount() >= d.MaxControls {
		d.dismiss()
		return SkippedTooManyQuestions
	}

	steps := 0
	for {
		if now().Sub(start) > d.Budget {
			d.dismiss()
			return SkippedTimeout
		}

		if d.AutoAnswer && d.Answers != nil {
			d.Answers.Apply(d.Page)
		}

		if d.present(selCoverLetter) {
			d.dismiss()
			return SkippedCoverLetter
		}
		if d.present(selResumeUpload) {
			d.dismiss()
			return SkippedResumeReupload
		}
		if d.present(selExternalRedirect) {
			d.dismiss()
			return SkippedExternalRedirect
		}

		if submit, err := d.Page.Query(selSubmit); err == nil {
			_ = submit.Click()
			d.Page.Pause(800 * time.Millisecond)
			if confirm, cerr := d.Page.Query(selConfirm); cerr == nil {
				_ = confirm.Click()
				d.Page.Pause(800 * time.Millisecond)
			}
			d.snapshot(now())
			return OutcomeSuccessful
		}

		if next, err := d.Page.Query(selNext); err == nil {
			_ = next.Click()
			steps++
			if steps > d.MaxSteps {
				d.dismiss()
				return SkippedTooManySteps
			}
			d.Page.Pause(600 * time.Millisecond)
			continue
		}

		// Nothing recognizable left to click.
		d.dismiss()
		return SkippedUnknown
	}
}

func (d *DialogDriver) controlCount() int {
	els, err := d.Page.QueryAll(selDialogControls)
	if err != nil {
		return 0
	}
	return len(els)
}

func (d *DialogDriver) present(selector string) bool {
	_, err := d.Page.Query(selector)
	return err == nil
}

// dismiss closes the dialog on every non-success exit. Best-effort: a dialog
// that refuses to close is the next card's problem, not ours.
func (d *DialogDriver) dismiss() {
	_ = d.Page.PressEscape()
}

func (d *DialogDriver) snapshot(at time.Time) {
	if d.ScreenshotDir == "" {
		return
	}
	path := filepath.Join(d.ScreenshotDir, fmt.Sprintf("apply_submit_%d.png", at.Unix()))
	_ = d.Page.Screenshot(path)
}
