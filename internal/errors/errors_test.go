package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	codes := []string{
		ErrConfig,
		ErrProbe,
		ErrRestart,
		ErrRender,
	}

	seen := make(map[string]bool)
	for _, code := range codes {
		assert.NotEmpty(t, code, "error code should not be empty")
		assert.False(t, seen[code], "error code %q should be unique", code)
		seen[code] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		code       string
		message    string
		suggestion string
	}{
		{
			name:       "config error",
			code:       ErrConfig,
			message:    "Couldn't parse services.json",
			suggestion: "Check the JSON syntax",
		},
		{
			name:       "restart error",
			code:       ErrRestart,
			message:    "Couldn't start the restart command",
			suggestion: "Make sure the command exists and is executable.",
		},
		{
			name:    "render error without suggestion",
			code:    ErrRender,
			message: "Terminal has no color support",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code, tt.message, tt.suggestion)

			require.NotNil(t, err)
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.suggestion, err.Suggestion)
			assert.Nil(t, err.Cause)

			out := err.Error()
			assert.True(t, strings.HasPrefix(out, "✗ "+tt.message))
			if tt.suggestion != "" {
				assert.Contains(t, out, tt.suggestion)
			}
		})
	}
}

func TestWrap_DefaultsToProbe(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, "Health check failed")

	assert.Equal(t, ErrProbe, err.Code)
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))
}

func TestWrapWithCode(t *testing.T) {
	cause := errors.New("exec: \"sh\": not found")
	err := WrapWithCode(cause, ErrRestart, "Couldn't start restart", "Check PATH")

	assert.Equal(t, ErrRestart, err.Code)
	assert.Equal(t, cause, err.Unwrap())
	assert.Contains(t, err.Error(), "Check PATH")
}

func TestIsCode(t *testing.T) {
	err := New(ErrConfig, "bad config", "")
	wrapped := fmt.Errorf("loading: %w", err)

	assert.True(t, IsCode(err, ErrConfig))
	assert.True(t, IsCode(wrapped, ErrConfig))
	assert.False(t, IsCode(wrapped, ErrProbe))
	assert.False(t, IsCode(nil, ErrConfig))
	assert.False(t, IsCode(errors.New("plain"), ErrConfig))
}

func TestShort(t *testing.T) {
	assert.Equal(t, "", Short(nil))
	assert.Equal(t, "plain", Short(errors.New("plain")))
	assert.Equal(t, "bad config", Short(New(ErrConfig, "bad config", "fix it")))
	assert.Equal(t, "probe failed: timeout",
		Short(WrapWithCode(errors.New("timeout"), ErrProbe, "probe failed", "retry")))
}
