package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope(t *testing.T) {
	tests := []struct {
		name        string
		write       func(w http.ResponseWriter)
		wantStatus  int
		wantSuccess bool
	}{
		{"ok", func(w http.ResponseWriter) { OK(w, map[string]string{"status": "ok"}) }, http.StatusOK, true},
		{"created", func(w http.ResponseWriter) { Created(w, []int{1}) }, http.StatusCreated, true},
		{"unauthorized", func(w http.ResponseWriter) { Unauthorized(w, "unauthorized") }, http.StatusUnauthorized, false},
		{"conflict", func(w http.ResponseWriter) { Conflict(w, "taken") }, http.StatusConflict, false},
		{"internal", func(w http.ResponseWriter) { InternalError(w, "internal server error") }, http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]any
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantSuccess, body["success"])
			if tt.wantSuccess {
				assert.Contains(t, body, "data")
				assert.NotContains(t, body, "error")
			} else {
				assert.Contains(t, body, "error")
			}
		})
	}
}

func TestNoContent(t *testing.T) {
	rec := httptest.NewRecorder()
	NoContent(rec)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Zero(t, rec.Body.Len())
}
