package httpapi

import (
	"database/sql"
	"encoding/json"
	"net/http"

	"easyapply-engine/internal/domain"
	"easyapply-engine/internal/store"
)

type SettingsHandler struct {
	DB *sql.DB
}

func (h SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := store.LoadSettings(r.Context(), h.DB)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	writeJSON(w, s)
}

func (h SettingsHandler) Put(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var incoming domain.Settings
	if err := dec.Decode(&incoming); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), 400)
		return
	}
	if incoming.YearsExperience < 0 {
		http.Error(w, "years_experience must be >= 0", 400)
		return
	}
	if incoming.SalaryMin < 0 {
		http.Error(w, "salary_min must be >= 0", 400)
		return
	}

	if err := store.SaveSettings(r.Context(), h.DB, incoming); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	writeJSON(w, incoming)
}
