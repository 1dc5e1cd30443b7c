// Package jsonmap loads map definitions from a JSON array of route entries,
// the format of the original europe.json board file:
//
//	[
//	  {"endpoints": ["London", "Amsterdam"], "color": "unspecified",
//	   "length": 2, "tunnel": false, "ferries": 2}
//	]
package jsonmap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/specialistvlad/conductor/internal/ctxlog"
	"github.com/specialistvlad/conductor/internal/mapdef"
)

// Loader is the JSON implementation of the mapdef.Loader interface.
type Loader struct{}

// NewLoader creates a new JSON map loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the JSON file at path.
func (l *Loader) Load(ctx context.Context, path string) ([]mapdef.RouteRecord, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("JSON loader started.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, mapdef.Unavailable(path, err)
	}

	records, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, mapdef.Unavailable(path, err)
	}
	logger.Debug("JSON loading complete.", "routes", len(records))
	return records, nil
}

// Decode reads a single JSON array of route entries from r. Trailing data
// after the array is rejected.
func Decode(r io.Reader) ([]mapdef.RouteRecord, error) {
	dec := json.NewDecoder(r)

	var records []mapdef.RouteRecord
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode route list: %w", err)
	}
	if records == nil {
		return nil, errors.New("route list is null")
	}

	var extra json.RawMessage
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, errors.New("unexpected data after route list")
	}
	return records, nil
}
