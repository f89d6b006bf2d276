package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_NotNil verifies that NewLogger returns a non-nil *Logger.
func TestNewLogger_NotNil(t *testing.T) {
	l := NewLogger("test")
	require.NotNil(t, l)
}

// TestNewLogger_RoleField verifies that every log entry produced by a logger
// created with NewLogger contains the expected "role" field.
func TestNewLogger_RoleField(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("test-role")
	// redirect output to buffer for inspection
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "test-role", entry["role"])
}

// TestNewLogger_ContainsTimestamp verifies that log entries contain a timestamp field.
func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ts-role")
	l.Logger = l.Output(&buf)

	l.Info().Msg("ts check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

// TestNewLogger_CallerFieldName verifies that the caller field is named "func".
func TestNewLogger_CallerFieldName(t *testing.T) {
	NewLogger("caller-role") // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNop_DiscardsOutput verifies that the no-op logger emits nothing.
func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Info().Msg("should vanish")

	assert.Zero(t, buf.Len())
}

// TestGetChildLogger_InheritsFields verifies that a child logger keeps the
// parent's fields and that enriching the child leaves the parent untouched.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer

	parent := NewLogger("parent-role")
	parent.Logger = parent.Output(&parentBuf)

	child := parent.GetChildLogger()
	child.Logger = child.Output(&childBuf)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("extra", "child-only")
	})

	child.Info().Msg("from child")
	parent.Info().Msg("from parent")

	var childEntry map[string]any
	require.NoError(t, json.Unmarshal(childBuf.Bytes(), &childEntry))
	assert.Equal(t, "parent-role", childEntry["role"])
	assert.Equal(t, "child-only", childEntry["extra"])

	var parentEntry map[string]any
	require.NoError(t, json.Unmarshal(parentBuf.Bytes(), &parentEntry))
	_, hasExtra := parentEntry["extra"]
	assert.False(t, hasExtra, "parent must not see child fields")
}

// TestFromContext_RoundTrip verifies that a logger attached to a context via
// zerolog's WithContext is retrieved by FromContext.
func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf).With().Str("marker", "ctx").Logger()

	ctx := base.WithContext(context.Background())
	got := FromContext(ctx)
	got.Info().Msg("via context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx", entry["marker"])
}

// TestFromRequest_RoundTrip verifies that a logger attached to a request's
// context is retrieved by FromRequest.
func TestFromRequest_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf).With().Str("marker", "req").Logger()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(base.WithContext(r.Context()))

	got := FromRequest(r)
	got.Info().Msg("via request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req", entry["marker"])
}
