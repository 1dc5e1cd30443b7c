package citymap

import (
	"context"
	"fmt"

	"github.com/specialistvlad/conductor/internal/ctxlog"
	"github.com/specialistvlad/conductor/internal/mapdef"
)

// State is the lifecycle state of a Builder.
type State int

const (
	// Accumulating means the builder still accepts records.
	Accumulating State = iota
	// Done means the map was finalized or the build failed.
	Done
)

func (s State) String() string {
	switch s {
	case Accumulating:
		return "accumulating"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Builder assembles a Map from route records, one record at a time.
// A Builder is not safe for concurrent use.
type Builder struct {
	registry *Registry
	routes   []Route
	state    State
	err      error
}

// NewBuilder returns a builder in the Accumulating state.
func NewBuilder() *Builder {
	return &Builder{registry: NewRegistry()}
}

// State returns the current lifecycle state.
func (b *Builder) State() State {
	return b.state
}

// Add validates rec and appends it as the next route. The first invalid
// record moves the builder to Done; Finish then reports the same error.
func (b *Builder) Add(rec mapdef.RouteRecord) error {
	if b.state == Done {
		return ErrBuilderDone
	}

	index := len(b.routes)
	if err := validateRecord(index, rec); err != nil {
		b.state = Done
		b.err = err
		b.routes = nil
		return err
	}

	from := b.registry.Resolve(rec.Endpoints[0])
	to := b.registry.Resolve(rec.Endpoints[1])
	b.registry.addRoute(from)
	b.registry.addRoute(to)

	b.routes = append(b.routes, Route{
		ID:      index,
		Ends:    [2]CityID{from, to},
		Ferries: rec.Ferries,
		Tunnel:  rec.Tunnel,
		Color:   rec.Color,
		Length:  rec.Length,
	})
	return nil
}

// Finish moves the builder to Done and returns the finished map, or the
// error that aborted the build.
func (b *Builder) Finish() (*Map, error) {
	if b.state == Done {
		if b.err != nil {
			return nil, b.err
		}
		return nil, ErrBuilderDone
	}
	b.state = Done

	m := &Map{
		cities: b.registry.Cities(),
		routes: b.routes,
		byName: make(map[string]CityID, b.registry.Len()),
	}
	for _, c := range m.cities {
		m.byName[c.Name] = c.ID
	}
	b.routes = nil
	return m, nil
}

// Build constructs a Map from records in a single pass. Loading is
// all-or-nothing: on the first malformed record no Map is returned.
func Build(ctx context.Context, records []mapdef.RouteRecord) (*Map, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting map construction.", "record_count", len(records))

	b := NewBuilder()
	for _, rec := range records {
		if err := b.Add(rec); err != nil {
			logger.Debug("Build: Rejected route record.", "error", err)
			return nil, err
		}
	}

	m, err := b.Finish()
	if err != nil {
		return nil, err
	}
	logger.Debug("Build: Map construction successful.", "cities", m.CityCount(), "routes", m.RouteCount())
	return m, nil
}

func validateRecord(index int, rec mapdef.RouteRecord) error {
	if len(rec.Endpoints) != 2 {
		return &MalformedRecordError{
			Index:  index,
			Field:  "endpoints",
			Reason: fmt.Sprintf("expected exactly 2 endpoints, got %d", len(rec.Endpoints)),
		}
	}
	for i, name := range rec.Endpoints {
		if name == "" {
			return &MalformedRecordError{
				Index:  index,
				Field:  fmt.Sprintf("endpoints[%d]", i),
				Reason: "city name is empty",
			}
		}
	}
	if rec.Ferries < 0 {
		return &MalformedRecordError{
			Index:  index,
			Field:  "ferries",
			Reason: fmt.Sprintf("must be non-negative, got %d", rec.Ferries),
		}
	}
	return nil
}
