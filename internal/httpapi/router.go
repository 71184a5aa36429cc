package httpapi

import "net/http"

// NewMux wires every route; main wraps it in the middleware chain.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	// Health
	hh := HealthHandler{}
	mux.HandleFunc("/health", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: hh.Health,
	}))

	// Run control
	ah := AutomationHandler{DB: d.DB, Hub: d.Hub, Ctl: d.Ctl}
	mux.HandleFunc("/automation/start", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Start,
	}))
	mux.HandleFunc("/automation/stop", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Stop,
	}))
	mux.HandleFunc("/automation/status", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ah.Status,
	}))
	mux.HandleFunc("/automation/simulate", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: ah.Simulate,
	}))

	// Application records
	aph := ApplicationsHandler{DB: d.DB}
	mux.HandleFunc("/applications", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: aph.List,
	}))
	mux.HandleFunc("/applications/stats", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: aph.Stats,
	}))
	mux.HandleFunc("/applications/export", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: aph.Export,
	}))

	// Search settings
	sh := SettingsHandler{DB: d.DB}
	mux.HandleFunc("/settings", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: sh.Get,
		http.MethodPut: sh.Put,
	}))

	// Engine config
	ch := ConfigHandler{
		CfgVal:      d.CfgVal,
		UserCfgPath: d.UserCfgPath,
		LoadCfg:     d.LoadCfg,
	}
	mux.HandleFunc("/config", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Get,
		http.MethodPut: ch.Put,
	}))
	mux.HandleFunc("/config/path", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: ch.Path,
	}))

	// Secrets
	sec := SecretsHandler{}
	mux.HandleFunc("/api/secrets/session", methodMux(map[string]http.HandlerFunc{
		http.MethodPost: sec.SetSessionCookie,
	}))

	// SSE events
	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("/events", methodMux(map[string]http.HandlerFunc{
		http.MethodGet: eh.ServeSSE,
	}))

	return mux
}
