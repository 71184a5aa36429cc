package apply

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"easyapply-engine/internal/browser"
	"easyapply-engine/internal/config"
	"easyapply-engine/internal/domain"
)

// Runner is one run of the worker loop: a single browser session, driven
// sequentially, applying to listings until the cap, exhaustion, or a stop.
type Runner struct {
	Cfg      config.Config
	Settings domain.Settings

	Open      func() (browser.Session, error)
	Record    func(ctx context.Context, app domain.Application) error
	OnApplied func()
	Pacer     *browser.Pacer

	ScreenshotDir string

	// randDelay spaces out applications; overridable in tests.
	randDelay func() time.Duration
}

// Run drives one full run. Expected per-listing conditions never surface as
// errors; anything unexpected is recorded once as a failed attempt and ends
// the run. The session is always closed.
func (r *Runner) Run(ctx context.Context) {
	defer func() {
		if rec := recover(); rec != nil {
			r.recordFatal(fmt.Errorf("panic: %v", rec))
		}
	}()

	session, err := r.Open()
	if err != nil {
		r.recordFatal(err)
		return
	}
	defer func() { _ = session.Close() }()

	if err := r.pace(ctx); err != nil {
		return
	}
	if err := session.Goto(SearchURL(r.Settings)); err != nil {
		r.recordFatal(err)
		return
	}
	r.shot(session, "01_jobs_page.png")

	// Best-effort: re-click the Easy Apply chip in case the facet in the URL
	// was ignored.
	if chip, err := session.Query(selFilterChip); err == nil {
		_ = chip.Click()
		session.Pause(300 * time.Millisecond)
	}
	r.shot(session, "02_filters_applied.png")

	applied := 0
	max := r.Cfg.Automation.MaxApplications

	for ctx.Err() == nil && applied < max {
		// Re-wait for the next batch of cards; none appearing means the
		// results are exhausted and the run ends normally.
		if err := session.WaitFor(selResultCards, r.Cfg.CardWait()); err != nil {
			break
		}
		cards, err := session.QueryAll(selResultCards)
		if err != nil || len(cards) == 0 {
			break
		}

		for _, card := range cards {
			if ctx.Err() != nil || applied >= max {
				break
			}
			if err := r.pace(ctx); err != nil {
				return
			}

			if err := card.Click(); err != nil {
				continue
			}
			session.Pause(900 * time.Millisecond)

			listing := r.readListing(session)
			if ok, reason := Eligible(r.Cfg.Automation.TitleDenylist, r.Cfg.Automation.PostingCutoffDays, listing); !ok {
				// Filtered listings emit no record at all.
				log.Printf("[worker] skipped (%s) title=%q", reason, listing.Title)
				continue
			}

			easy, err := session.Query(selEasyApply)
			if err != nil {
				continue
			}
			_ = easy.Click()

			driver := &DialogDriver{
				Page:          session,
				Answers:       NewAnswerEngine(r.Cfg.Answers.Affirm, r.Cfg.Answers.Decline, r.Settings.YearsExperience),
				AutoAnswer:    r.Settings.AutoAnswer,
				Wait:          r.Cfg.DialogWait(),
				Budget:        r.Cfg.DialogBudget(),
				MaxSteps:      r.Cfg.Automation.MaxSteps,
				MaxControls:   r.Cfg.Automation.MaxDialogControls,
				ScreenshotDir: r.ScreenshotDir,
			}
			outcome := driver.Run()

			r.record(ctx, domain.Application{
				Title:    orNA(listing.Title),
				Company:  listing.Company,
				Location: listing.Location,
				Salary:   listing.SalaryText,
				Status:   string(outcome),
				URL:      session.URL(),
				Keywords: r.Settings.Keywords,
				JobType:  r.Settings.JobType,
			})
			applied++
			if r.OnApplied != nil {
				r.OnApplied()
			}
			log.Printf("[worker] attempt %d/%d outcome=%s title=%q", applied, max, outcome, listing.Title)

			session.Pause(r.delay())
		}
	}

	log.Printf("[worker] run finished applied=%d", applied)
}

// readListing snapshots the opened card's HTML once and reads everything off
// it, plus one live probe for the Easy Apply affordance.
func (r *Runner) readListing(session browser.Session) domain.Listing {
	html, err := session.Content()
	if err != nil {
		html = ""
	}
	l := ParseListing(html, session.URL())
	if _, err := session.Query(selEasyApply); err == nil {
		l.HasEasyApply = true
	}
	return l
}

func (r *Runner) record(ctx context.Context, app domain.Application) {
	if r.Record == nil {
		return
	}
	if err := r.Record(ctx, app); err != nil {
		log.Printf("[worker] record error: %v status=%s url=%s", err, app.Status, app.URL)
	}
}

// recordFatal writes the single failed record that ends a broken run.
func (r *Runner) recordFatal(err error) {
	log.Printf("[worker] fatal: %v", err)
	r.record(context.Background(), domain.Application{
		Title:    "Worker error",
		Company:  categorize(err),
		Location: "N/A",
		Status:   string(OutcomeFailed),
		Keywords: r.Settings.Keywords,
		JobType:  r.Settings.JobType,
	})
}

func (r *Runner) pace(ctx context.Context) error {
	if r.Pacer == nil {
		return nil
	}
	return r.Pacer.Wait(ctx)
}

func (r *Runner) shot(session browser.Session, name string) {
	if r.ScreenshotDir == "" {
		return
	}
	_ = session.Screenshot(filepath.Join(r.ScreenshotDir, name))
}

func (r *Runner) delay() time.Duration {
	if r.randDelay != nil {
		return r.randDelay()
	}
	min := r.Cfg.Automation.DelayMinSeconds
	max := r.Cfg.Automation.DelayMaxSeconds
	if max <= min {
		return time.Duration(min) * time.Second
	}
	ms := min*1000 + rand.Intn((max-min)*1000)
	return time.Duration(ms) * time.Millisecond
}

func categorize(err error) string {
	switch {
	case errors.Is(err, browser.ErrTimeout):
		return "ActionTimeout"
	case errors.Is(err, browser.ErrNotFound):
		return "ElementNotFound"
	default:
		return "WorkerFatal"
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
