// Package mapdef defines the format-agnostic route-definition record that
// every map source produces, along with the Loader interface implemented by
// the concrete sources (JSON, HCL, SQLite).
//
// A RouteRecord is the deserialized shape of one route entry. It is the
// single input of the citymap builder; everything before it (reading files,
// parsing, driver access) belongs to a Loader, and every failure a Loader
// hits is reported as a *SourceUnavailableError.
package mapdef
