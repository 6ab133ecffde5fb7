package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	std := logrus.StandardLogger()
	prevOut, prevFormatter := std.Out, std.Formatter
	std.SetOutput(buf)
	std.SetFormatter(&logrus.JSONFormatter{})
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
	})
	return buf
}

func TestWithContextCarriesRequestAndUser(t *testing.T) {
	buf := captureOutput(t)

	ctx := ContextWithRequestID(context.Background(), "req-123")
	ctx = ContextWithUser(ctx, "admin@permitpro.com")

	WithContext(ctx).WithField("package_id", 7).Info("package created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-123", entry["request_id"])
	assert.Equal(t, "admin@permitpro.com", entry["user"])
	assert.Equal(t, float64(7), entry["package_id"])
	assert.Equal(t, "package created", entry["msg"])
}

func TestWithContextAnonymous(t *testing.T) {
	buf := captureOutput(t)

	WithContext(context.Background()).WithError(errors.New("boom")).Warn("upload cleanup failed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "anonymous", entry["user"])
	assert.Equal(t, "boom", entry["error"])
	assert.NotContains(t, entry, "request_id")
}

func TestContextAccessors(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))
	assert.Empty(t, UserFromContext(context.Background()))

	ctx := ContextWithUser(ContextWithRequestID(context.Background(), "r"), "u")
	assert.Equal(t, "r", RequestIDFromContext(ctx))
	assert.Equal(t, "u", UserFromContext(ctx))
}
