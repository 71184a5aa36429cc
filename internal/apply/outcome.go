package apply

// Outcome is the closed set of terminal labels for one application attempt.
type Outcome string

const (
	OutcomeSuccessful Outcome = "successful"
	OutcomeFailed     Outcome = "failed"

	// Skips are expected terminals, never propagated as errors.
	SkippedNoModal          Outcome = "skipped:no-modal"
	SkippedTooManyQuestions Outcome = "skipped:too-many-questions"
	SkippedTimeout          Outcome = "skipped:timeout"
	SkippedCoverLetter      Outcome = "skipped:cover-letter"
	SkippedResumeReupload   Outcome = "skipped:resume-reupload"
	SkippedExternalRedirect Outcome = "skipped:external-redirect"
	SkippedTooManySteps     Outcome = "skipped:too-many-steps"
	SkippedUnknown          Outcome = "skipped:unknown"
)
