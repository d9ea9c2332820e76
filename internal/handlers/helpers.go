package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fjmerc/wifi-dashboard/internal/models"
	"github.com/fjmerc/wifi-dashboard/internal/repository"
)

// Error codes returned in models.ErrorResponse
const (
	CodeInvalidParameter = "INVALID_PARAMETER"
	CodeStoreError       = "STORE_ERROR"
	CodeInternalError    = "INTERNAL_ERROR"
)

// sendError sends a JSON error response
func sendError(w http.ResponseWriter, message, code string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	errResp := models.ErrorResponse{
		Error: message,
		Code:  code,
	}

	json.NewEncoder(w).Encode(errResp)
}

// sendJSON writes v as a 200 JSON response
func sendJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// sendStoreError maps a repository error to a 400 or a generic 500
func sendStoreError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, repository.ErrInvalidInput) {
		sendError(w, err.Error(), CodeInvalidParameter, http.StatusBadRequest)
		return
	}

	slog.Error("store query failed",
		"path", r.URL.Path,
		"error", err,
	)
	sendError(w, "Internal server error", CodeStoreError, http.StatusInternalServerError)
}

// queryInt parses an optional integer query parameter, returning def when absent
func queryInt(q url.Values, name string, def int) (int, error) {
	raw := q.Get(name)
	if raw == "" {
		return def, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", name)
	}
	return n, nil
}
