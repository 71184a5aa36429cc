package apply

// Site selectors, grouped here so UI drift means edits in one place.
// Everything is best-effort: a miss is "feature absent", not a failure.
const (
	selDialog         = `div[role="dialog"]`
	selDialogControls = `div[role="dialog"] input, div[role="dialog"] textarea, div[role="dialog"] select`

	selCoverLetter      = `input[type="file"][name*="cover"], textarea[placeholder*="cover"], textarea[aria-label*="cover"]`
	selResumeUpload     = `input[type="file"][name*="resume"], input[type="file"][accept*=".pdf"]`
	selExternalRedirect = `a:has-text("Continue to"), button:has-text("Continue to")`
	selSubmit           = `button[aria-label*="Submit application"], button:has-text("Submit application")`
	selConfirm          = `button:has-text("Submit"), button:has-text("Done")`
	selNext             = `button[aria-label*="Next"], button:has-text("Next")`

	selResultCards = `[data-job-id], .jobs-search-results__list-item`
	selEasyApply   = `button:has-text("Easy Apply")`
	selFilterChip  = `button[aria-label*="Easy Apply"]`

	selJobTitle   = `h1 a, h2 a, .job-details-jobs-unified-top-card__job-title`
	selCompany    = `a[href*="/company/"], .job-details-jobs-unified-top-card__company-name`
	selLocation   = `.jobs-unified-top-card__bullet`
	selPostedDate = `[data-test-job-posted-date], .jobs-unified-top-card__subtitle-primary-group`

	selLabels      = `label`
	selNoOption    = `label:has-text("No")`
	selYearsInputs = `input[type="number"], input[aria-label*="year"], input[placeholder*="year"]`
	selTextAreas   = `textarea`
)
