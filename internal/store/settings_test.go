package store

import (
	"context"
	"testing"

	"easyapply-engine/internal/domain"
)

func TestLoadSettingsDefaultsWhenUnsaved(t *testing.T) {
	db := testDB(t)

	s, err := LoadSettings(context.Background(), db.Pool)
	if err != nil {
		t.Fatal(err)
	}
	want := domain.DefaultSettings()
	if s != want {
		t.Fatalf("settings = %+v, want defaults %+v", s, want)
	}
}

func TestSaveAndLoadSettings(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()

	in := domain.Settings{
		Keywords:        "qa automation",
		Location:        "Austin, TX",
		ExperienceLevel: "Associate",
		SalaryMin:       90000,
		JobType:         "Full-time",
		Remote:          true,
		Hybrid:          false,
		Onsite:          false,
		AutoAnswer:      false,
		YearsExperience: 4,
		CoverLetter:     "attached on request",
	}
	if err := SaveSettings(ctx, db.Pool, in); err != nil {
		t.Fatal(err)
	}

	out, err := LoadSettings(ctx, db.Pool)
	if err != nil {
		t.Fatal(err)
	}
	if out != in {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", out, in)
	}

	// Saving again updates the single row rather than adding one.
	in.Keywords = "sdet"
	if err := SaveSettings(ctx, db.Pool, in); err != nil {
		t.Fatal(err)
	}
	out, err = LoadSettings(ctx, db.Pool)
	if err != nil {
		t.Fatal(err)
	}
	if out.Keywords != "sdet" {
		t.Fatalf("keywords = %q after update", out.Keywords)
	}
}
