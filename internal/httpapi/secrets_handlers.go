package httpapi

import (
	"encoding/json"
	"net/http"

	"easyapply-engine/internal/secrets"
)

type SecretsHandler struct{}

type setSessionCookieReq struct {
	Cookie string `json:"cookie"`
}

func (h SecretsHandler) SetSessionCookie(w http.ResponseWriter, r *http.Request) {
	var req setSessionCookieReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if err := secrets.SetSessionCookie(req.Cookie); err != nil {
		http.Error(w, "failed to store cookie: "+err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
