package security_test

import (
	"strings"
	"testing"

	"github.com/Rrens/space-reservation/internal/dto"
	"github.com/Rrens/space-reservation/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	issues := security.Validate(dto.SignupRequest{
		Email:    "kim@example.com",
		Name:     "Kim",
		Password: "long-enough",
	})
	assert.Nil(t, issues)
}

func TestValidate_ReportsJSONPaths(t *testing.T) {
	tests := []struct {
		name    string
		input   any
		path    string
		message string
	}{
		{"malformed email", dto.EmailRequest{Email: "not-an-email"}, "email", "invalid email format"},
		{"empty email", dto.EmailRequest{Email: ""}, "email", "field is required"},
		{"short name", dto.SignupRequest{Email: "a@b.co", Name: "K", Password: "long-enough"}, "name", "must be at least 2 characters"},
		{"short password", dto.SignupRequest{Email: "a@b.co", Name: "Kim", Password: "short"}, "password", "must be at least 8 characters"},
		{"multibyte password over bcrypt limit", dto.SignupRequest{Email: "a@b.co", Name: "Kim", Password: strings.Repeat("비", 30)}, "password", "must be at most 72 bytes"},
		{"missing room", dto.ReservationRequest{SpaceID: 1, StartTime: "x", EndTime: "y"}, "roomId", "field is required"},
		{"bad id in batch", dto.DeleteRoomsRequest{IDs: []int64{1, 0}}, "ids[1]", "must be greater than 0"},
		{"empty batch", dto.DeleteRoomsRequest{IDs: []int64{}}, "ids", "must contain at least 1 items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := security.Validate(tt.input)
			require.Len(t, issues, 1)
			assert.Equal(t, tt.path, issues[0].Path)
			assert.Equal(t, tt.message, issues[0].Message)
		})
	}
}

func TestValidate_MultipleIssues(t *testing.T) {
	issues := security.Validate(dto.SignupRequest{})
	require.Len(t, issues, 3)

	paths := []string{issues[0].Path, issues[1].Path, issues[2].Path}
	assert.ElementsMatch(t, []string{"email", "name", "password"}, paths)
}

func TestValidate_NonStruct(t *testing.T) {
	issues := security.Validate("plain string")
	require.Len(t, issues, 1)
	assert.Empty(t, issues[0].Path)
}
