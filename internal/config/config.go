// internal/config/config.go
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		Port    int    `yaml:"port"`
		DataDir string `yaml:"data_dir"`
	} `yaml:"app"`

	Browser struct {
		ProfileDir   string  `yaml:"profile_dir"`
		Headless     bool    `yaml:"headless"`
		NavPerSecond float64 `yaml:"nav_per_second"`
		NavBurst     int     `yaml:"nav_burst"`
	} `yaml:"browser"`

	Automation struct {
		MaxApplications     int `yaml:"max_applications"`
		PostingCutoffDays   int `yaml:"posting_cutoff_days"`
		CardWaitSeconds     int `yaml:"card_wait_seconds"`
		DialogWaitSeconds   int `yaml:"dialog_wait_seconds"`
		DialogBudgetSeconds int `yaml:"dialog_budget_seconds"`
		MaxSteps            int `yaml:"max_steps"`
		// Control count at which a dialog is abandoned unanswered.
		// Rough proxy for "six or more custom questions".
		MaxDialogControls int `yaml:"max_dialog_controls"`
		DelayMinSeconds   int `yaml:"delay_min_seconds"`
		DelayMaxSeconds   int `yaml:"delay_max_seconds"`

		TitleDenylist []string `yaml:"title_denylist"`
	} `yaml:"automation"`

	Answers struct {
		Affirm  []string `yaml:"affirm"`
		Decline []string `yaml:"decline"`
	} `yaml:"answers"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// Default carries the shipped thresholds and answer tables. The YAML file
// bootstrapped into the data dir starts from this.
func Default() Config {
	var cfg Config

	cfg.App.Port = 38471
	cfg.App.DataDir = "."

	cfg.Browser.Headless = false
	cfg.Browser.NavPerSecond = 0.5
	cfg.Browser.NavBurst = 2

	cfg.Automation.MaxApplications = 50
	cfg.Automation.PostingCutoffDays = 14
	cfg.Automation.CardWaitSeconds = 20
	cfg.Automation.DialogWaitSeconds = 10
	cfg.Automation.DialogBudgetSeconds = 60
	cfg.Automation.MaxSteps = 6
	cfg.Automation.MaxDialogControls = 18
	cfg.Automation.DelayMinSeconds = 3
	cfg.Automation.DelayMaxSeconds = 6
	cfg.Automation.TitleDenylist = []string{
		"senior", "lead", "principal", "staff", "architect", "clearance",
	}

	cfg.Answers.Affirm = []string{
		"legally authorized to work in the united states",
		"at least 18 years of age",
		"background check",
		"willing to relocate",
		"open to hybrid",
		"experience with ci/cd",
		"version control",
		"automated ui testing",
		"api testing",
		"cross functional teams",
		"startup",
		"agile",
	}
	cfg.Answers.Decline = []string{
		"performance testing",
		"security testing",
		"require visa sponsorship",
	}

	return cfg
}

func (c Config) CardWait() time.Duration {
	return time.Duration(c.Automation.CardWaitSeconds) * time.Second
}

func (c Config) DialogWait() time.Duration {
	return time.Duration(c.Automation.DialogWaitSeconds) * time.Second
}

func (c Config) DialogBudget() time.Duration {
	return time.Duration(c.Automation.DialogBudgetSeconds) * time.Second
}
