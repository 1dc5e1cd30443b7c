// Package sqlitemap loads map definitions from a SQLite database holding a
// routes table:
//
//	CREATE TABLE routes (
//	    endpoint_a TEXT    NOT NULL,
//	    endpoint_b TEXT    NOT NULL,
//	    color      TEXT    NOT NULL DEFAULT '',
//	    length     INTEGER NOT NULL DEFAULT 0,
//	    tunnel     INTEGER NOT NULL DEFAULT 0,
//	    ferries    INTEGER NOT NULL DEFAULT 0
//	);
//
// Rows are returned in rowid order, which is insertion order for a table
// that was only ever appended to.
package sqlitemap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/specialistvlad/conductor/internal/ctxlog"
	"github.com/specialistvlad/conductor/internal/mapdef"
	_ "modernc.org/sqlite"
)

// Schema is the DDL of the routes table read by the loader.
const Schema = `
CREATE TABLE IF NOT EXISTS routes (
	endpoint_a TEXT    NOT NULL,
	endpoint_b TEXT    NOT NULL,
	color      TEXT    NOT NULL DEFAULT '',
	length     INTEGER NOT NULL DEFAULT 0,
	tunnel     INTEGER NOT NULL DEFAULT 0,
	ferries    INTEGER NOT NULL DEFAULT 0
);`

const selectRoutes = `
SELECT endpoint_a, endpoint_b, color, length, tunnel, ferries
FROM routes
ORDER BY rowid`

// Loader is the SQLite implementation of the mapdef.Loader interface.
type Loader struct{}

// NewLoader creates a new SQLite map loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load opens the database at path read-only and returns every route row.
func (l *Loader) Load(ctx context.Context, path string) ([]mapdef.RouteRecord, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("SQLite loader started.", "path", path)

	// The driver treats everything after '?' as DSN parameters.
	if strings.Contains(path, "?") {
		return nil, mapdef.Unavailable(path, errors.New("database path must not contain '?'"))
	}
	// sql.Open would silently create a missing database file.
	if _, err := os.Stat(path); err != nil {
		return nil, mapdef.Unavailable(path, err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=query_only(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, mapdef.Unavailable(path, fmt.Errorf("open db: %w", err))
	}
	defer db.Close()

	records, err := ReadRoutes(ctx, db)
	if err != nil {
		return nil, mapdef.Unavailable(path, err)
	}
	logger.Debug("SQLite loading complete.", "routes", len(records))
	return records, nil
}

// ReadRoutes reads all rows of the routes table from an open database.
func ReadRoutes(ctx context.Context, db *sql.DB) ([]mapdef.RouteRecord, error) {
	rows, err := db.QueryContext(ctx, selectRoutes)
	if err != nil {
		return nil, fmt.Errorf("query routes: %w", err)
	}
	defer rows.Close()

	var records []mapdef.RouteRecord
	for rows.Next() {
		var (
			a, b, color             string
			length, tunnel, ferries int
		)
		if err := rows.Scan(&a, &b, &color, &length, &tunnel, &ferries); err != nil {
			return nil, fmt.Errorf("scan route %d: %w", len(records), err)
		}
		records = append(records, mapdef.RouteRecord{
			Endpoints: []string{a, b},
			Color:     color,
			Length:    length,
			Tunnel:    tunnel != 0,
			Ferries:   ferries,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate routes: %w", err)
	}
	return records, nil
}
