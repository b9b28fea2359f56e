package database

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
)

var (
	ErrNotConfigured     = errors.New("database not configured")
	ErrUnsupportedScheme = errors.New("unsupported database scheme")
)

// Handle is the optional database connection used by the diagnostic probe.
// Opening a Handle does not dial; the first query does.
type Handle interface {
	// Name is the logical database the handle points at.
	Name() string
	// ListCollections returns at most limit table/collection/key names.
	ListCollections(ctx context.Context, limit int) ([]string, error)
	Close() error
}

// Open builds a Handle for connURL, selecting the driver from the URL scheme.
// An empty connURL yields ErrNotConfigured. name, when set, overrides the
// database selected by the URL.
func Open(connURL, name string) (Handle, error) {
	connURL = strings.TrimSpace(connURL)
	if connURL == "" {
		return nil, ErrNotConfigured
	}

	u, err := url.Parse(connURL)
	if err != nil {
		return nil, fmt.Errorf("invalid DATABASE_URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "postgres", "postgresql":
		h, err := OpenPostgres(connURL, name)
		if err != nil {
			return nil, err
		}
		return h, nil
	case "redis", "rediss":
		h, err := OpenRedis(connURL, name)
		if err != nil {
			return nil, err
		}
		return h, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnsupportedScheme, u.Scheme)
	}
}
