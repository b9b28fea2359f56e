package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leetcode_proxy/internal/platform/database"
)

type fakeHandle struct {
	names    []string
	err      error
	panicMsg string
	gotLimit int
	deadline bool
}

func (h *fakeHandle) Name() string { return "fake" }

func (h *fakeHandle) ListCollections(ctx context.Context, limit int) ([]string, error) {
	if h.panicMsg != "" {
		panic(h.panicMsg)
	}
	h.gotLimit = limit
	_, h.deadline = ctx.Deadline()
	return h.names, h.err
}

func (h *fakeHandle) Close() error { return nil }

func TestProbe_NotConfigured(t *testing.T) {
	svc := NewDiagnosticService(nil, database.ErrNotConfigured, DiagnosticOptions{})

	report := svc.Probe(context.Background())

	assert.Equal(t, "✅ Running", report.Backend)
	assert.Equal(t, "❌ Database not configured (set DATABASE_URL)", report.Database)
	assert.Equal(t, "Not Connected", report.ConnectionStatus)
	assert.Equal(t, "❌ Not Set", report.DatabaseURL)
	assert.Equal(t, "❌ Not Set", report.DatabaseName)
	assert.NotNil(t, report.Collections)
	assert.Empty(t, report.Collections)
}

func TestProbe_OpenErrorIsTruncated(t *testing.T) {
	openErr := errors.New("invalid DATABASE_URL: " + strings.Repeat("x", 80))
	svc := NewDiagnosticService(nil, openErr, DiagnosticOptions{DatabaseURLSet: true})

	report := svc.Probe(context.Background())

	assert.True(t, strings.HasPrefix(report.Database, "❌ Error: invalid DATABASE_URL: xxx"))
	assert.Equal(t, 50, len([]rune(strings.TrimPrefix(report.Database, "❌ Error: "))))
	assert.Equal(t, "✅ Set", report.DatabaseURL)
	assert.Equal(t, "❌ Not Set", report.DatabaseName)
}

func TestProbe_UnsupportedSchemeKeepsScheme(t *testing.T) {
	openErr := fmt.Errorf("%w %q", database.ErrUnsupportedScheme, "mongodb")

	report := NewDiagnosticService(nil, openErr, DiagnosticOptions{DatabaseURLSet: true}).Probe(context.Background())

	assert.Equal(t, `❌ Error: unsupported database scheme "mongodb"`, report.Database)
}

func TestProbe_NilHandleWithoutError(t *testing.T) {
	report := NewDiagnosticService(nil, nil, DiagnosticOptions{}).Probe(context.Background())

	assert.Equal(t, "⚠️  Available but not initialized", report.Database)
	assert.Equal(t, "Not Connected", report.ConnectionStatus)
}

func TestProbe_ConnectedAndWorking(t *testing.T) {
	names := make([]string, 0, 12)
	for i := 0; i < 12; i++ {
		names = append(names, fmt.Sprintf("table_%02d", i))
	}
	h := &fakeHandle{names: names}
	svc := NewDiagnosticService(h, nil, DiagnosticOptions{DatabaseURLSet: true, DatabaseNameSet: true, ProbeTimeout: time.Second})

	report := svc.Probe(context.Background())

	assert.Equal(t, "✅ Connected & Working", report.Database)
	assert.Equal(t, "Connected", report.ConnectionStatus)
	assert.Len(t, report.Collections, 10)
	assert.Equal(t, "table_00", report.Collections[0])
	assert.Equal(t, 10, h.gotLimit)
	assert.True(t, h.deadline, "probe must bound the listing with a timeout")
	assert.Equal(t, "✅ Set", report.DatabaseURL)
	assert.Equal(t, "✅ Set", report.DatabaseName)
}

func TestProbe_ConnectedButListingFails(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:5432: connection refused")
	h := &fakeHandle{err: fmt.Errorf("listing tables: %w",
		fmt.Errorf("failed to connect to `user=app database=app`: %w", cause))}

	report := NewDiagnosticService(h, nil, DiagnosticOptions{DatabaseURLSet: true}).Probe(context.Background())

	assert.Equal(t, "⚠️  Connected but Error: dial tcp 127.0.0.1:5432: connection refused", report.Database)
	assert.Equal(t, "Connected", report.ConnectionStatus)
	assert.Empty(t, report.Collections)
}

func TestProbe_RecoversFromPanic(t *testing.T) {
	h := &fakeHandle{panicMsg: "driver exploded"}

	report := NewDiagnosticService(h, nil, DiagnosticOptions{DatabaseURLSet: true}).Probe(context.Background())

	assert.Equal(t, "❌ Error: driver exploded", report.Database)
	assert.Equal(t, "✅ Set", report.DatabaseURL)
	assert.NotNil(t, report.Collections)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "⚠️", truncate("⚠️x", 2))
}

func TestConciseError(t *testing.T) {
	cause := errors.New("connection refused")
	assert.Equal(t, "scanning keys: connection refused", conciseError(fmt.Errorf("scanning keys: %w", cause)))

	long := fmt.Errorf("outer: %w", errors.New(strings.Repeat("y", 70)))
	assert.Equal(t, strings.Repeat("y", 50), conciseError(long))
}
