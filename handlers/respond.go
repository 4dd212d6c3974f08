package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"timesheet/apperror"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeAppError maps a service error to its status code. Internal causes are
// logged, never sent.
func writeAppError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	kind := apperror.KindOf(err)
	if kind == apperror.KindInternal {
		log.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "error", err)
	}
	writeError(w, apperror.HTTPStatus(kind), apperror.PublicMessage(err))
}

func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		return apperror.Validation("invalid request body")
	}
	return nil
}
