// Package sources selects the map loader that understands a given path.
package sources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/conductor/internal/ctxlog"
	"github.com/specialistvlad/conductor/internal/hclmap"
	"github.com/specialistvlad/conductor/internal/jsonmap"
	"github.com/specialistvlad/conductor/internal/mapdef"
	"github.com/specialistvlad/conductor/internal/sqlitemap"
)

// Dispatcher implements mapdef.Loader by delegating to the loader that
// matches the path: directories and .hcl files go to hclmap, .json files
// to jsonmap and .db/.sqlite/.sqlite3 files to sqlitemap.
type Dispatcher struct {
	hcl    mapdef.Loader
	json   mapdef.Loader
	sqlite mapdef.Loader
}

// New returns a Dispatcher wired to the built-in loaders.
func New() *Dispatcher {
	return &Dispatcher{
		hcl:    hclmap.NewLoader(),
		json:   jsonmap.NewLoader(),
		sqlite: sqlitemap.NewLoader(),
	}
}

// For returns the loader responsible for path.
func (d *Dispatcher) For(path string) (mapdef.Loader, error) {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return d.hcl, nil
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		return d.hcl, nil
	case ".json":
		return d.json, nil
	case ".db", ".sqlite", ".sqlite3":
		return d.sqlite, nil
	default:
		return nil, fmt.Errorf("unsupported map format %q", ext)
	}
}

// Load implements mapdef.Loader.
func (d *Dispatcher) Load(ctx context.Context, path string) ([]mapdef.RouteRecord, error) {
	loader, err := d.For(path)
	if err != nil {
		return nil, mapdef.Unavailable(path, err)
	}
	ctxlog.FromContext(ctx).Debug("Selected map loader.", "path", path, "loader", fmt.Sprintf("%T", loader))
	return loader.Load(ctx, path)
}
