package domain

// Application is one recorded application attempt. Immutable once emitted:
// exactly one row per Easy Apply dialog that was actually opened.
type Application struct {
	ID        int64  `json:"id,omitempty"`
	Title     string `json:"title"`
	Company   string `json:"company"`
	Location  string `json:"location"`
	Salary    string `json:"salary"`
	Status    string `json:"status"` // successful | skipped:<reason> | failed
	URL       string `json:"url"`
	AppliedAt string `json:"applied_at,omitempty"`
	Keywords  string `json:"keywords"`
	JobType   string `json:"job_type"`
}

// Listing is what the worker can read off one opened result card before
// deciding whether to open the Easy Apply dialog. Transient, never persisted.
type Listing struct {
	Title          string
	Company        string
	Location       string
	SalaryText     string
	PostingAgeDays *int // nil when the posting date could not be read
	URL            string
	HasEasyApply   bool
}
