package citymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ResolveIsIdempotent(t *testing.T) {
	r := NewRegistry()

	first := r.Resolve("Berlin")
	require.Equal(t, 1, r.Len())

	second := r.Resolve("Berlin")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.Len(), "resolving a known name must not grow the registry")
}

func TestRegistry_PreservesFirstSeenOrder(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"Paris", "Roma", "Paris", "Wien", "Roma"} {
		r.Resolve(name)
	}

	cities := r.Cities()
	require.Len(t, cities, 3)
	assert.Equal(t, "Paris", cities[0].Name)
	assert.Equal(t, "Roma", cities[1].Name)
	assert.Equal(t, "Wien", cities[2].Name)
	for i, c := range cities {
		assert.Equal(t, CityID(i), c.ID)
		assert.Zero(t, c.RouteCount)
	}
}

func TestRegistry_IsCaseSensitive(t *testing.T) {
	r := NewRegistry()
	a := r.Resolve("London")
	b := r.Resolve("london")
	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_Lookup(t *testing.T) {
	r := NewRegistry()
	id := r.Resolve("Sofia")

	got, ok := r.Lookup("Sofia")
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = r.Lookup("Smyrna")
	assert.False(t, ok)
	assert.Equal(t, 1, r.Len(), "lookup must not create cities")
}

func TestRegistry_CitiesIsSnapshot(t *testing.T) {
	r := NewRegistry()
	r.Resolve("Kyiv")

	cities := r.Cities()
	cities[0].Name = "mutated"

	again := r.Cities()
	assert.Equal(t, "Kyiv", again[0].Name)
}
