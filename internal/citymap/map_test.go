package citymap

import (
	"context"
	"testing"

	"github.com/specialistvlad/conductor/internal/mapdef"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildWestEurope builds a small excerpt of the Europe board.
func buildWestEurope(t *testing.T) *Map {
	t.Helper()
	m, err := Build(context.Background(), []mapdef.RouteRecord{
		{Endpoints: []string{"Dieppe", "London"}, Color: "unspecified", Length: 2, Ferries: 1},
		{Endpoints: []string{"Dieppe", "London"}, Color: "unspecified", Length: 2, Ferries: 1},
		{Endpoints: []string{"London", "Amsterdam"}, Color: "unspecified", Length: 2, Ferries: 2},
		{Endpoints: []string{"Paris", "Dieppe"}, Color: "pink", Length: 1},
		{Endpoints: []string{"Paris", "Zurich"}, Color: "unspecified", Length: 3, Tunnel: true},
		{Endpoints: []string{"Amsterdam", "Bruxelles"}, Color: "black", Length: 1},
		{Endpoints: []string{"Bruxelles", "Paris"}, Color: "yellow", Length: 2},
		{Endpoints: []string{"Bruxelles", "Paris"}, Color: "red", Length: 1},
	})
	require.NoError(t, err)
	return m
}

func TestMap_CityLookup(t *testing.T) {
	m := buildWestEurope(t)

	london, ok := m.City("London")
	require.True(t, ok)
	assert.Equal(t, 3, london.RouteCount)
	assert.Equal(t, "London", london.String())

	byID, ok := m.CityByID(london.ID)
	require.True(t, ok)
	assert.Equal(t, london, byID)

	_, ok = m.City("Edinburgh")
	assert.False(t, ok)
	_, ok = m.CityByID(CityID(-1))
	assert.False(t, ok)
	_, ok = m.CityByID(CityID(m.CityCount()))
	assert.False(t, ok)
}

func TestMap_ReturnsCopies(t *testing.T) {
	m := buildWestEurope(t)

	cities := m.Cities()
	cities[0].RouteCount = 99
	routes := m.Routes()
	routes[0].Ferries = 99

	first, _ := m.CityByID(0)
	assert.NotEqual(t, 99, first.RouteCount)
	assert.NotEqual(t, 99, m.Routes()[0].Ferries)
}

func TestMap_Describe(t *testing.T) {
	m := buildWestEurope(t)

	view := m.Describe(m.Routes()[4])
	assert.Equal(t, RouteView{
		ID: 4, From: "Paris", To: "Zurich", Tunnel: true, Color: "unspecified", Length: 3,
	}, view)
	assert.Equal(t, "Paris to Zurich (length 3, color unspecified, ferries 0, tunnel true)", view.String())
}

func TestMap_RoutesOf(t *testing.T) {
	m := buildWestEurope(t)

	routes := m.RoutesOf("Paris")
	require.Len(t, routes, 4)
	ids := []int{routes[0].ID, routes[1].ID, routes[2].ID, routes[3].ID}
	assert.Equal(t, []int{3, 4, 6, 7}, ids)

	assert.Nil(t, m.RoutesOf("Nowhere"))
}

func TestMap_Adjacency(t *testing.T) {
	m := buildWestEurope(t)

	assert.True(t, m.Adjacent("London", "Dieppe"))
	assert.True(t, m.Adjacent("Dieppe", "London"))
	assert.False(t, m.Adjacent("London", "Paris"))
	assert.False(t, m.Adjacent("London", "Nowhere"))

	assert.Len(t, m.RoutesBetween("Paris", "Bruxelles"), 2)

	length, ok := m.ShortestRouteLength("Paris", "Bruxelles")
	require.True(t, ok)
	assert.Equal(t, 1, length)

	_, ok = m.ShortestRouteLength("Zurich", "London")
	assert.False(t, ok)
}

func TestMap_OtherEnd(t *testing.T) {
	m := buildWestEurope(t)
	paris, _ := m.City("Paris")
	zurich, _ := m.City("Zurich")
	london, _ := m.City("London")

	route := m.Routes()[4]
	other, ok := m.OtherEnd(route, paris.ID)
	require.True(t, ok)
	assert.Equal(t, zurich.ID, other)

	_, ok = m.OtherEnd(route, london.ID)
	assert.False(t, ok)

	loop := Route{Ends: [2]CityID{paris.ID, paris.ID}}
	other, ok = m.OtherEnd(loop, paris.ID)
	require.True(t, ok)
	assert.Equal(t, paris.ID, other)
}

func TestMap_ZeroValue(t *testing.T) {
	var m Map
	assert.Zero(t, m.CityCount())
	assert.Empty(t, m.Cities())
	assert.Empty(t, m.RouteViews())
	_, ok := m.City("Paris")
	assert.False(t, ok)
}
