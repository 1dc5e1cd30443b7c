package citymap

// Map is the immutable aggregate of all cities and routes produced by one
// build. The zero value is an empty map.
type Map struct {
	cities []City
	routes []Route
	byName map[string]CityID
}

// CityCount returns the number of distinct cities.
func (m *Map) CityCount() int {
	return len(m.cities)
}

// RouteCount returns the number of routes.
func (m *Map) RouteCount() int {
	return len(m.routes)
}

// Cities returns the cities in first-seen order. The slice is a copy.
func (m *Map) Cities() []City {
	out := make([]City, len(m.cities))
	copy(out, m.cities)
	return out
}

// Routes returns the routes in input order. The slice is a copy.
func (m *Map) Routes() []Route {
	out := make([]Route, len(m.routes))
	copy(out, m.routes)
	return out
}

// City looks up a city by its exact name.
func (m *Map) City(name string) (City, bool) {
	id, ok := m.byName[name]
	if !ok {
		return City{}, false
	}
	return m.cities[id], true
}

// CityByID returns the city behind a handle.
func (m *Map) CityByID(id CityID) (City, bool) {
	if id < 0 || int(id) >= len(m.cities) {
		return City{}, false
	}
	return m.cities[id], true
}

// Endpoints resolves both ends of r. r must come from this map.
func (m *Map) Endpoints(r Route) (City, City) {
	return m.cities[r.Ends[0]], m.cities[r.Ends[1]]
}

// Describe returns r with its endpoints resolved to names.
func (m *Map) Describe(r Route) RouteView {
	from, to := m.Endpoints(r)
	return RouteView{
		ID:      r.ID,
		From:    from.Name,
		To:      to.Name,
		Ferries: r.Ferries,
		Tunnel:  r.Tunnel,
		Color:   r.Color,
		Length:  r.Length,
	}
}

// RouteViews describes every route in input order.
func (m *Map) RouteViews() []RouteView {
	views := make([]RouteView, 0, len(m.routes))
	for _, r := range m.routes {
		views = append(views, m.Describe(r))
	}
	return views
}

// RoutesOf returns the routes touching the named city, in input order.
// An unknown name yields nil.
func (m *Map) RoutesOf(name string) []Route {
	id, ok := m.byName[name]
	if !ok {
		return nil
	}
	var out []Route
	for _, r := range m.routes {
		if r.Touches(id) {
			out = append(out, r)
		}
	}
	return out
}

// RoutesBetween returns the direct routes connecting a and b in either
// direction, in input order.
func (m *Map) RoutesBetween(a, b string) []Route {
	idA, okA := m.byName[a]
	idB, okB := m.byName[b]
	if !okA || !okB {
		return nil
	}
	var out []Route
	for _, r := range m.routes {
		if (r.Ends[0] == idA && r.Ends[1] == idB) || (r.Ends[0] == idB && r.Ends[1] == idA) {
			out = append(out, r)
		}
	}
	return out
}

// Adjacent reports whether at least one direct route connects a and b.
func (m *Map) Adjacent(a, b string) bool {
	return len(m.RoutesBetween(a, b)) > 0
}

// ShortestRouteLength returns the smallest Length among the direct routes
// between a and b. The boolean is false when the cities are not adjacent.
func (m *Map) ShortestRouteLength(a, b string) (int, bool) {
	routes := m.RoutesBetween(a, b)
	if len(routes) == 0 {
		return 0, false
	}
	shortest := routes[0].Length
	for _, r := range routes[1:] {
		if r.Length < shortest {
			shortest = r.Length
		}
	}
	return shortest, true
}

// OtherEnd returns the end of r opposite to id. For a self-loop that is id
// itself. The boolean is false when r does not touch id.
func (m *Map) OtherEnd(r Route, id CityID) (CityID, bool) {
	switch id {
	case r.Ends[0]:
		return r.Ends[1], true
	case r.Ends[1]:
		return r.Ends[0], true
	default:
		return 0, false
	}
}
