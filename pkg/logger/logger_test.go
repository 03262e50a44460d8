package logger

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, getLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, getLogLevel("warning"))
	assert.Equal(t, slog.LevelError, getLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, getLogLevel(""))
}

func TestDomainHelpers(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	defer gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info")
	ctx := context.Background()

	l.LogBookingPersisted(ctx, "id-1", "H", time.Date(2026, 12, 4, 0, 0, 0, 0, time.UTC), 159000)
	l.LogCorruptRecord(ctx, "eventos.txt", errors.New("expected 8 fields, got 7"))

	out := buf.String()
	assert.Contains(t, out, `"msg":"Booking Persisted"`)
	assert.Contains(t, out, `"date":"2026-12-04"`)
	assert.Contains(t, out, `"msg":"Corrupt Record Skipped"`)
	assert.Contains(t, out, `"level":"WARN"`)
	assert.Contains(t, out, `"error":"expected 8 fields, got 7"`)
}

func TestWithFieldsAndError(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	defer gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info")

	l.WithFields(map[string]interface{}{"venue": "H"}).
		ErrorWithContext(context.Background(), "Failed to publish booking notification", errors.New("broker down"), nil)

	out := buf.String()
	assert.Contains(t, out, `"venue":"H"`)
	assert.Contains(t, out, `"error":"broker down"`)
	assert.Contains(t, out, `"level":"ERROR"`)
}

func TestNewWithWriter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "error")
	l.LogQuoteComputed(context.Background(), "Wedding", "Premier", "H", 400, 159000)
	assert.Empty(t, buf.String())
}
