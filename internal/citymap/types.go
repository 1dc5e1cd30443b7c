package citymap

import "fmt"

// CityID is a stable handle to a City inside the Map that produced it.
type CityID int

// City is a uniquely named node of the map.
type City struct {
	ID   CityID
	Name string
	// RouteCount is the number of routes referencing this city. A self-loop
	// contributes two.
	RouteCount int
}

func (c City) String() string {
	return c.Name
}

// Route is an edge between two cities.
type Route struct {
	// ID is the route's position in input order.
	ID      int
	Ends    [2]CityID
	Ferries int
	Tunnel  bool

	// Color and Length are informational payload carried from the source.
	Color  string
	Length int
}

// IsSelfLoop reports whether both ends reference the same city.
func (r Route) IsSelfLoop() bool {
	return r.Ends[0] == r.Ends[1]
}

// Touches reports whether id is one of the route's ends.
func (r Route) Touches(id CityID) bool {
	return r.Ends[0] == id || r.Ends[1] == id
}

// RouteView is a Route with its endpoints resolved to city names.
type RouteView struct {
	ID      int
	From    string
	To      string
	Ferries int
	Tunnel  bool
	Color   string
	Length  int
}

func (v RouteView) String() string {
	return fmt.Sprintf("%s to %s (length %d, color %s, ferries %d, tunnel %t)",
		v.From, v.To, v.Length, v.Color, v.Ferries, v.Tunnel)
}
