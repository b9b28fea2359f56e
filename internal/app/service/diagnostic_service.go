package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"leetcode_proxy/internal/domain/model"
	"leetcode_proxy/internal/platform/database"
)

const (
	maxProbeCollections = 10
	maxProbeErrorRunes  = 50
	defaultProbeTimeout = 5 * time.Second
)

// DiagnosticOptions describes what was configured, independent of whether a
// handle could be built from it.
type DiagnosticOptions struct {
	DatabaseURLSet  bool
	DatabaseNameSet bool
	ProbeTimeout    time.Duration
}

// DiagnosticService reports on the optional database. Its Probe never fails:
// every problem is rendered into the report as text.
type DiagnosticService struct {
	handle  database.Handle
	openErr error
	opts    DiagnosticOptions
}

// NewDiagnosticService takes the result of database.Open as-is; handle may be
// nil and openErr may be database.ErrNotConfigured.
func NewDiagnosticService(handle database.Handle, openErr error, opts DiagnosticOptions) *DiagnosticService {
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = defaultProbeTimeout
	}
	return &DiagnosticService{handle: handle, openErr: openErr, opts: opts}
}

func (s *DiagnosticService) Probe(ctx context.Context) (report model.DiagnosticReport) {
	report = model.DiagnosticReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: database probe panicked: %v", r)
			report.Database = "❌ Error: " + truncate(fmt.Sprint(r), maxProbeErrorRunes)
		}
		report.DatabaseURL = setOrNot(s.opts.DatabaseURLSet)
		report.DatabaseName = setOrNot(s.opts.DatabaseNameSet)
	}()

	switch {
	case errors.Is(s.openErr, database.ErrNotConfigured):
		report.Database = "❌ Database not configured (set DATABASE_URL)"
		return report
	case s.openErr != nil:
		report.Database = "❌ Error: " + conciseError(s.openErr)
		return report
	case s.handle == nil:
		report.Database = "⚠️  Available but not initialized"
		return report
	}

	report.Database = "✅ Available"
	report.ConnectionStatus = "Connected"

	probeCtx, cancel := context.WithTimeout(ctx, s.opts.ProbeTimeout)
	defer cancel()

	names, err := s.handle.ListCollections(probeCtx, maxProbeCollections)
	if err != nil {
		log.Printf("WARN: database probe on %s failed: %v", s.handle.Name(), err)
		report.Database = "⚠️  Connected but Error: " + conciseError(err)
		return report
	}

	if len(names) > maxProbeCollections {
		names = names[:maxProbeCollections]
	}
	if names != nil {
		report.Collections = names
	}
	report.Database = "✅ Connected & Working"
	return report
}

func setOrNot(set bool) string {
	if set {
		return "✅ Set"
	}
	return "❌ Not Set"
}

// conciseError returns the outermost message in err's chain that fits the
// report, so wrapping context gives way to the underlying cause. When none
// fits, the innermost message is cut.
func conciseError(err error) string {
	last := err
	for e := err; e != nil; e = errors.Unwrap(e) {
		if msg := e.Error(); len([]rune(msg)) <= maxProbeErrorRunes {
			return msg
		}
		last = e
	}
	return truncate(last.Error(), maxProbeErrorRunes)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
