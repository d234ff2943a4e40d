package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Rrens/space-reservation/internal/domain"
	"github.com/Rrens/space-reservation/internal/security"
	"github.com/Rrens/space-reservation/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	HealthCheck(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, true, body["success"])

	data, ok := body["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ok", data["status"])
}

func TestWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("failed to delete space: %w", domain.ErrNotFound), http.StatusNotFound},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"invalid input", fmt.Errorf("%w: name: field is required", domain.ErrInvalidInput), http.StatusBadRequest},
		{"time range", domain.ErrInvalidTimeRange, http.StatusBadRequest},
		{"missing reference", fmt.Errorf("failed to create room: %w", domain.ErrReferenceNotFound), http.StatusBadRequest},
		{"overlap", fmt.Errorf("failed to create reservation: %w", domain.ErrReservationOverlap), http.StatusConflict},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict},
		{"invalid credentials", usecase.NewInvalidCredentialsError(), http.StatusUnauthorized},
		{"auth validation", usecase.NewValidationError([]security.Issue{{Path: "email", Message: "invalid email format"}}), http.StatusBadRequest},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.want, rec.Code)

			var body map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, false, body["success"])
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestWriteError_HidesInternalDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("password authentication failed for user postgres"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "postgres")
}

func TestWriteError_AuthErrorBody(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, httptest.NewRequest(http.MethodPost, "/api/signup", nil),
		usecase.NewInvalidNameError([]security.Issue{{Path: "name", Message: "must be at least 2 characters"}}))

	var body struct {
		Error authErrorBody `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "InvalidNameError", body.Error.Name)
	require.Len(t, body.Error.Issues, 1)
	assert.Equal(t, "name", body.Error.Issues[0].Path)
}

func TestQueryID(t *testing.T) {
	tests := []struct {
		query   string
		want    int64
		wantErr bool
	}{
		{"roomId=7", 7, false},
		{"", 0, true},
		{"roomId=abc", 0, true},
		{"roomId=-1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/rooms?"+tt.query, nil)
			id, err := queryID(req, "roomId")
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
