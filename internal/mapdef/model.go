package mapdef

import (
	"context"
	"fmt"
)

// RouteRecord is one route definition as read from a map source.
type RouteRecord struct {
	// Endpoints holds the two city names the route connects. Sources do not
	// validate it; the builder rejects anything other than two non-empty names.
	Endpoints []string `json:"endpoints"`
	Color     string   `json:"color"`
	Length    int      `json:"length"`
	Tunnel    bool     `json:"tunnel"`
	Ferries   int      `json:"ferries"`
}

// NewRouteRecord builds a record carrying only what the topology needs; Color
// and Length are left empty.
func NewRouteRecord(from, to string, ferries int, tunnel bool) RouteRecord {
	return RouteRecord{
		Endpoints: []string{from, to},
		Ferries:   ferries,
		Tunnel:    tunnel,
	}
}

// Loader is the interface for a format-specific map source.
type Loader interface {
	// Load reads the map definition at path and returns its route records
	// in source order.
	Load(ctx context.Context, path string) ([]RouteRecord, error)
}

// SourceUnavailableError reports that a map source could not be read or
// could not be turned into route records.
type SourceUnavailableError struct {
	Path string
	Err  error
}

// Error implements the error interface for SourceUnavailableError.
func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("map source %q unavailable: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying I/O, parse or driver error.
func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// Unavailable wraps err as a *SourceUnavailableError for path. A nil err
// yields nil.
func Unavailable(path string, err error) error {
	if err == nil {
		return nil
	}
	return &SourceUnavailableError{Path: path, Err: err}
}
