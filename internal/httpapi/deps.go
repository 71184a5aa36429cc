package httpapi

import (
	"database/sql"
	"sync/atomic"

	"easyapply-engine/internal/config"
	"easyapply-engine/internal/events"
	"easyapply-engine/internal/run"
)

type Deps struct {
	DB *sql.DB

	Hub *events.Hub

	// Atomic store of config.Config
	CfgVal *atomic.Value

	// Config persistence
	UserCfgPath string
	LoadCfg     func() (config.Config, error)

	// Run control (inject for testability)
	Ctl *run.Controller
}
