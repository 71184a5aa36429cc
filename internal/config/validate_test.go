package config

import (
	"strings"
	"testing"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg, res := NormalizeAndValidate(Default())
	if !res.OK() {
		t.Fatalf("default config invalid: %v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("default config warns: %v", res.Warnings)
	}
	if cfg.Automation.MaxApplications != 50 {
		t.Fatalf("max_applications = %d", cfg.Automation.MaxApplications)
	}
	if cfg.Automation.PostingCutoffDays != 14 {
		t.Fatalf("posting_cutoff_days = %d", cfg.Automation.PostingCutoffDays)
	}
}

func TestValidateRejectsBrokenThresholds(t *testing.T) {
	cfg := Default()
	cfg.App.Port = 0
	cfg.Automation.MaxApplications = 0
	cfg.Automation.DialogBudgetSeconds = -1
	cfg.Automation.DelayMinSeconds = 9
	cfg.Automation.DelayMaxSeconds = 3

	_, res := NormalizeAndValidate(cfg)
	if res.OK() {
		t.Fatal("expected validation errors")
	}

	wantSubstrings := []string{
		"app.port",
		"max_applications",
		"dialog_budget_seconds",
		"delay_min_seconds must be <=",
	}
	joined := strings.Join(res.Errors, "\n")
	for _, want := range wantSubstrings {
		if !strings.Contains(joined, want) {
			t.Errorf("errors missing %q:\n%s", want, joined)
		}
	}
}

func TestValidateWarnsOnAggressiveDelay(t *testing.T) {
	cfg := Default()
	cfg.Automation.DelayMinSeconds = 0
	cfg.Automation.DelayMaxSeconds = 1

	_, res := NormalizeAndValidate(cfg)
	if !res.OK() {
		t.Fatalf("low delays should warn, not error: %v", res.Errors)
	}
	if len(res.Warnings) == 0 {
		t.Fatal("expected a warning about rapid applying")
	}
}

func TestNormalizeDedupesLists(t *testing.T) {
	cfg := Default()
	cfg.Automation.TitleDenylist = []string{" Senior ", "senior", "", "Lead"}
	cfg.Answers.Affirm = []string{"agile", "Agile ", "background check"}

	out, res := NormalizeAndValidate(cfg)
	if !res.OK() {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if got := len(out.Automation.TitleDenylist); got != 2 {
		t.Fatalf("denylist after dedupe = %v", out.Automation.TitleDenylist)
	}
	if got := len(out.Answers.Affirm); got != 2 {
		t.Fatalf("affirm after dedupe = %v", out.Answers.Affirm)
	}
}

func TestValidateWarnsOnEmptyDenylist(t *testing.T) {
	cfg := Default()
	cfg.Automation.TitleDenylist = nil

	_, res := NormalizeAndValidate(cfg)
	if !res.OK() {
		t.Fatalf("empty denylist should warn, not error: %v", res.Errors)
	}
	found := false
	for _, w := range res.Warnings {
		if strings.Contains(w, "title_denylist") {
			found = true
		}
	}
	if !found {
		t.Fatalf("warnings = %v, want title_denylist notice", res.Warnings)
	}
}
