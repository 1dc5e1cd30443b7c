package app

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/specialistvlad/conductor/internal/citymap"
)

// renderMap prints every city with its route count, then every route.
func renderMap(w io.Writer, m *citymap.Map) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Cities (%d):\n", m.CityCount())
	for _, c := range m.Cities() {
		fmt.Fprintf(tw, "  %s\troutes=%d\n", c.Name, c.RouteCount)
	}

	fmt.Fprintf(tw, "Routes (%d):\n", m.RouteCount())
	for _, v := range m.RouteViews() {
		fmt.Fprintf(tw, "  #%d\t%s\n", v.ID, v)
	}
	return tw.Flush()
}

// renderCity prints a single city and the routes touching it.
func renderCity(w io.Writer, m *citymap.Map, name string) error {
	city, ok := m.City(name)
	if !ok {
		return fmt.Errorf("city %q not found in map", name)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "City %s (routes=%d)\n", city.Name, city.RouteCount)
	for _, r := range m.RoutesOf(name) {
		fmt.Fprintf(tw, "  #%d\t%s\n", r.ID, m.Describe(r))
	}
	return tw.Flush()
}
