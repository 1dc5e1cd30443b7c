package citymap

// Registry owns the canonical set of cities during a build and resolves
// city names to handles.
type Registry struct {
	cities []City
	byName map[string]CityID
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]CityID),
	}
}

// Resolve returns the handle of the city called name, creating the city if
// it does not exist yet. Matching is exact and case-sensitive. Resolving the
// same name again returns the same handle and does not grow the registry.
func (r *Registry) Resolve(name string) CityID {
	if id, ok := r.byName[name]; ok {
		return id
	}
	id := CityID(len(r.cities))
	r.cities = append(r.cities, City{ID: id, Name: name})
	r.byName[name] = id
	return id
}

// Lookup returns the handle for name without creating anything.
func (r *Registry) Lookup(name string) (CityID, bool) {
	id, ok := r.byName[name]
	return id, ok
}

// Len returns the number of distinct cities resolved so far.
func (r *Registry) Len() int {
	return len(r.cities)
}

// Cities returns a snapshot of the cities in first-seen order.
func (r *Registry) Cities() []City {
	out := make([]City, len(r.cities))
	copy(out, r.cities)
	return out
}

// addRoute records one route end on the city behind id.
func (r *Registry) addRoute(id CityID) {
	r.cities[id].RouteCount++
}
