package httpapi

import (
	"database/sql"
	"encoding/csv"
	"net/http"
	"strconv"

	"easyapply-engine/internal/store"
)

type ApplicationsHandler struct {
	DB *sql.DB
}

func (h ApplicationsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	apps, total, err := store.ListApplications(r.Context(), h.DB, store.ListApplicationsOpts{
		Page:    page,
		PerPage: perPage,
		Status:  q.Get("status"),
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	if page <= 0 {
		page = 1
	}
	if perPage <= 0 {
		perPage = 50
	}

	writeJSON(w, map[string]any{
		"applications": apps,
		"page":         page,
		"per_page":     perPage,
		"total":        total,
	})
}

func (h ApplicationsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	s, err := store.ApplicationStats(r.Context(), h.DB)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	writeJSON(w, s)
}

func (h ApplicationsHandler) Export(w http.ResponseWriter, r *http.Request) {
	apps, err := store.ExportApplications(r.Context(), h.DB)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=applications.csv")

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"Job Title", "Company", "Location", "Salary", "Status", "URL", "Applied At"})
	for _, a := range apps {
		_ = cw.Write([]string{a.Title, a.Company, a.Location, a.Salary, a.Status, a.URL, a.AppliedAt})
	}
	cw.Flush()
}
