package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Rrens/space-reservation/internal/api/response"
	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/security"
	"github.com/Rrens/space-reservation/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// authErrorBody is the error payload of auth-domain failures
type authErrorBody struct {
	Name    string           `json:"name"`
	Message string           `json:"message"`
	Issues  []security.Issue `json:"issues,omitempty"`
}

// writeError maps usecase errors onto HTTP statuses. Anything unrecognised is
// logged and reported as a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if authErr, ok := usecase.AsAuthError(err); ok {
		body := authErrorBody{Name: authErr.Name(), Message: authErr.Message, Issues: authErr.Issues}
		switch authErr.Kind {
		case usecase.KindInvalidCredentials:
			response.Unauthorized(w, body)
		default:
			response.BadRequest(w, body)
		}
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		response.NotFound(w, "resource not found")
	case errors.Is(err, domain.ErrForbidden):
		response.Forbidden(w, domain.ErrForbidden.Error())
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidTimeRange),
		errors.Is(err, domain.ErrReferenceNotFound):
		response.BadRequest(w, err.Error())
	case errors.Is(err, domain.ErrReservationOverlap),
		errors.Is(err, domain.ErrEmailTaken):
		response.Conflict(w, err.Error())
	default:
		log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		response.InternalError(w, "internal server error")
	}
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: invalid request body", domain.ErrInvalidInput)
	}
	return nil
}

func parseID(raw, name string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s", domain.ErrInvalidInput, name)
	}
	return id, nil
}

// pathID reads the {id} URL parameter
func pathID(r *http.Request) (int64, error) {
	return parseID(chi.URLParam(r, "id"), "id")
}

// queryID reads a required positive integer query parameter
func queryID(r *http.Request, name string) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, fmt.Errorf("%w: missing %s", domain.ErrInvalidInput, name)
	}
	return parseID(raw, name)
}
