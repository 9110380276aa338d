package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name:        "nil error returns empty",
			err:         nil,
			wantCode:    "",
			wantMessage: "",
		},
		{
			name:        "unknown profile maps correctly",
			err:         NewConfigurationError("SURJ Nowhere", "API Token not found", nil),
			wantCode:    "CFG001",
			wantMessage: "The selected profile has no API token",
		},
		{
			name:        "missing chapter column maps correctly",
			err:         NewConfigurationError("maptags.csv", `no column for chapter "Ch9"`, nil),
			wantCode:    "CFG002",
			wantMessage: "The mapping file has no column for this chapter",
		},
		{
			name:        "missing column maps correctly",
			err:         errors.New("missing required columns: email"),
			wantCode:    "CSV001",
			wantMessage: "A required column is missing from the CSV",
		},
		{
			name:        "wrapped file error maps correctly",
			err:         fmt.Errorf("open input: %w", errors.New("open people.csv: no such file or directory")),
			wantCode:    "FILE001",
			wantMessage: "File not found",
		},
		{
			name:        "unauthorized response maps correctly",
			err:         NewExternalCallError(3, "create", errors.New("osdi: POST /people/ returned 401: bad token")),
			wantCode:    "API001",
			wantMessage: "Action Network rejected the API token",
		},
		{
			name:        "server error maps correctly",
			err:         errors.New("osdi: PUT /people/x returned 502: gateway"),
			wantCode:    "API003",
			wantMessage: "Action Network reported a server error",
		},
		{
			name:        "timeout maps correctly",
			err:         errors.New("Client.Timeout exceeded while awaiting headers"),
			wantCode:    "API005",
			wantMessage: "Action Network did not answer in time",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("EMPTY FILE: no header row"),
			wantCode:    "CSV002",
			wantMessage: "The CSV file is empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestFormatUserError(t *testing.T) {
	err := NewConfigurationError("Ch9", "API Token not found", nil)
	assert.Equal(t,
		"The selected profile has no API token (Code: CFG001). Add the profile to the profiles file or pick another one",
		FormatUserError(err))
}

func TestIsUserFacing(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil error is not user facing", err: nil, want: false},
		{name: "known error is user facing", err: errors.New("invalid csv header"), want: true},
		{name: "unknown error is not user facing", err: errors.New("random internal error xyz"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUserFacing(tt.err))
		})
	}
}

func TestTypedErrors(t *testing.T) {
	t.Run("row skipped matches sentinel", func(t *testing.T) {
		err := fmt.Errorf("import: %w", &RowSkippedError{Row: 4, Reason: SkipNoEmail})
		require.ErrorIs(t, err, ErrRowSkipped)
		assert.EqualError(t, err, "import: row 4 skipped: no email")
	})

	t.Run("external call error unwraps cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewExternalCallError(7, "upsert", cause)
		assert.ErrorIs(t, err, cause)
		assert.EqualError(t, err, "row 7: upsert person: connection reset")
	})

	t.Run("configuration error detected through wrapping", func(t *testing.T) {
		err := fmt.Errorf("load mapping: %w", NewConfigurationError("maptags.csv", "unreadable", errors.New("EOF")))
		assert.True(t, IsConfigurationError(err))
		assert.False(t, IsConfigurationError(errors.New("plain")))
	})
}
