package domain

// Settings is the user's search/answer configuration. The worker reads one
// immutable snapshot per run and never writes it back.
type Settings struct {
	Keywords        string `json:"keywords"`
	Location        string `json:"location"`
	ExperienceLevel string `json:"experience_level"`
	SalaryMin       int    `json:"salary_min"`
	JobType         string `json:"job_type"`
	Remote          bool   `json:"remote"`
	Hybrid          bool   `json:"hybrid"`
	Onsite          bool   `json:"onsite"`
	AutoAnswer      bool   `json:"auto_answer"`
	YearsExperience int    `json:"years_experience"`
	CoverLetter     string `json:"cover_letter"`
}

// DefaultSettings mirrors what a fresh install should search for before the
// user has saved anything.
func DefaultSettings() Settings {
	return Settings{
		Keywords:        "software engineer, software developer, qa automation engineer, full stack",
		Location:        "United States",
		ExperienceLevel: "Entry level,Associate",
		SalaryMin:       0,
		JobType:         "Full-time,Contract",
		Remote:          true,
		Hybrid:          true,
		Onsite:          true,
		AutoAnswer:      true,
		YearsExperience: 1,
		CoverLetter:     "",
	}
}
