package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/deanw-dev/accounts-api/internal/api/shared"
	"github.com/deanw-dev/accounts-api/internal/domain"
	"github.com/go-chi/chi/v5"
)

// getCallerID extracts the authenticated caller's user ID from the request
// context. The ID is placed there by the authentication middleware.
func getCallerID(r *http.Request) (int64, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// getPathID extracts a numeric ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, fmt.Errorf("%w: %s is required", domain.ErrInvalidID, paramName)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s has invalid format", domain.ErrInvalidID, paramName)
	}

	return id, nil
}
