package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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

// TestNop verifies that the no-op logger swallows output without panicking.
func TestNop(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	l.Info().Msg("discarded")
	l.Error().Msg("discarded too")
}

// TestGetChildLogger verifies that a child logger inherits parent fields and
// that enriching it does not mutate the parent.
func TestGetChildLogger(t *testing.T) {
	var parentBuf, childBuf bytes.Buffer
	parent := NewLogger("parent")
	parent.Logger = parent.Output(&parentBuf)

	child := parent.GetChildLogger()
	child.Logger = child.Output(&childBuf)

	child.Info().Str("extra", "value").Msg("child message")
	parent.Info().Msg("parent message")

	var childEntry map[string]any
	require.NoError(t, json.Unmarshal(childBuf.Bytes(), &childEntry))
	assert.Equal(t, "parent", childEntry["role"])
	assert.Equal(t, "value", childEntry["extra"])

	var parentEntry map[string]any
	require.NoError(t, json.Unmarshal(parentBuf.Bytes(), &parentEntry))
	_, hasExtra := parentEntry["extra"]
	assert.False(t, hasExtra, "parent logger must not inherit child fields")
}

// TestFromContext verifies that a logger attached to a context can be
// retrieved and keeps its fields.
func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("ctx-role")
	l.Logger = l.Output(&buf)

	ctx := l.WithContext(context.Background())
	got := FromContext(ctx)

	got.Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-role", entry["role"])
}

// TestFromRequest verifies the request-scoped retrieval helper.
func TestFromRequest(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("req-role")
	l.Logger = l.Output(&buf)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	got := FromRequest(req)
	got.Info().Msg("from request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-role", entry["role"])
}
