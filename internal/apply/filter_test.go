package apply

import (
	"testing"

	"easyapply-engine/internal/domain"
)

var testDenylist = []string{"senior", "lead", "principal", "staff", "architect", "clearance"}

func intp(n int) *int { return &n }

func TestEligible(t *testing.T) {
	cases := []struct {
		name    string
		listing domain.Listing
		wantOK  bool
		reason  string
	}{
		{
			name:    "plain junior role passes",
			listing: domain.Listing{Title: "QA Automation Engineer", PostingAgeDays: intp(3), HasEasyApply: true},
			wantOK:  true,
		},
		{
			name:    "denylist word mid-title",
			listing: domain.Listing{Title: "Senior Backend Developer", PostingAgeDays: intp(0), HasEasyApply: true},
			wantOK:  false,
			reason:  "title_denylist",
		},
		{
			name:    "denylist is case insensitive",
			listing: domain.Listing{Title: "STAFF Software Engineer", PostingAgeDays: intp(1), HasEasyApply: true},
			wantOK:  false,
			reason:  "title_denylist",
		},
		{
			name:    "clearance requirement in title",
			listing: domain.Listing{Title: "Test Engineer (TS Clearance required)", HasEasyApply: true},
			wantOK:  false,
			reason:  "title_denylist",
		},
		{
			name:    "posted exactly at cutoff passes",
			listing: domain.Listing{Title: "Test Engineer", PostingAgeDays: intp(14), HasEasyApply: true},
			wantOK:  true,
		},
		{
			name:    "posted past cutoff rejected",
			listing: domain.Listing{Title: "Test Engineer", PostingAgeDays: intp(15), HasEasyApply: true},
			wantOK:  false,
			reason:  "too_old",
		},
		{
			name:    "unknown age fails open",
			listing: domain.Listing{Title: "Test Engineer", PostingAgeDays: nil, HasEasyApply: true},
			wantOK:  true,
		},
		{
			name:    "no easy apply affordance",
			listing: domain.Listing{Title: "Test Engineer", PostingAgeDays: intp(2), HasEasyApply: false},
			wantOK:  false,
			reason:  "no_easy_apply",
		},
		{
			name:    "denylist wins over age",
			listing: domain.Listing{Title: "Lead QA", PostingAgeDays: intp(30), HasEasyApply: false},
			wantOK:  false,
			reason:  "title_denylist",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, reason := Eligible(testDenylist, 14, tc.listing)
			if ok != tc.wantOK {
				t.Fatalf("ok = %v, want %v (reason=%q)", ok, tc.wantOK, reason)
			}
			if !ok && reason != tc.reason {
				t.Fatalf("reason = %q, want %q", reason, tc.reason)
			}
		})
	}
}

func TestTitleDeniedIgnoresBlankEntries(t *testing.T) {
	if titleDenied([]string{"", "  "}, "Senior Engineer") {
		t.Fatal("blank denylist entries must not match")
	}
	if titleDenied(nil, "Senior Engineer") {
		t.Fatal("empty denylist must not match")
	}
}
