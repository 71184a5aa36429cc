package httpapi

import (
	"database/sql"
	"errors"
	"net/http"
	"time"

	"easyapply-engine/internal/events"
	"easyapply-engine/internal/run"
	"easyapply-engine/internal/store"
)

type AutomationHandler struct {
	DB  *sql.DB
	Hub *events.Hub
	Ctl *run.Controller
}

func (h AutomationHandler) Start(w http.ResponseWriter, r *http.Request) {
	st, err := h.Ctl.Start()
	if errors.Is(err, run.ErrAlreadyRunning) {
		WriteError(w, r, http.StatusBadRequest, "already_running", "Automation is already running")
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeRunStarted, 1, map[string]any{"run_id": st.RunID}))

	writeJSON(w, map[string]any{
		"message":    "Automation started successfully",
		"status":     "running",
		"run_id":     st.RunID,
		"start_time": st.StartedAt.UTC().Format(time.RFC3339),
	})
}

func (h AutomationHandler) Stop(w http.ResponseWriter, r *http.Request) {
	st, err := h.Ctl.Stop()
	if errors.Is(err, run.ErrNotRunning) {
		WriteError(w, r, http.StatusBadRequest, "not_running", "Automation is not running")
		return
	}
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeRunStopped, 1, map[string]any{
		"run_id":       st.RunID,
		"applications": st.Applications,
	}))

	writeJSON(w, map[string]any{
		"message":                "Automation stopped successfully",
		"status":                 "stopped",
		"duration_seconds":       st.Duration.Seconds(),
		"applications_submitted": st.Applications,
	})
}

func (h AutomationHandler) Status(w http.ResponseWriter, r *http.Request) {
	st := h.Ctl.Status()

	resp := map[string]any{
		"is_running":         st.State != run.StateNotRunning,
		"state":              st.State,
		"applications_count": st.Applications,
	}
	if st.State != run.StateNotRunning {
		resp["run_id"] = st.RunID
		resp["start_time"] = st.StartedAt.UTC().Format(time.RFC3339)
		resp["duration_seconds"] = st.Duration.Seconds()
	}
	writeJSON(w, resp)
}

// Simulate inserts one synthetic record; handy for exercising the UI and
// export paths without a browser.
func (h AutomationHandler) Simulate(w http.ResponseWriter, r *http.Request) {
	if !h.Ctl.Running() {
		WriteError(w, r, http.StatusBadRequest, "not_running", "Automation is not running")
		return
	}

	app, err := store.SeedApplication(r.Context(), h.DB)
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "internal_error", err.Error())
		return
	}
	h.Ctl.CountApplication()

	reqID := RequestIDFrom(r.Context())
	h.Hub.Publish(events.MakeEvent(reqID, events.TypeApplication, 1, map[string]any{"id": app.ID, "status": app.Status}))

	writeJSON(w, map[string]any{
		"message":            "Job application simulated",
		"application":        app,
		"total_applications": h.Ctl.Status().Applications,
	})
}
