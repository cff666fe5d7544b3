package tags

import (
	"math"
	"testing"

	"github.com/cheekybits/is"
)

func testResolver() *Resolver {
	return &Resolver{
		FeetPerLevel:  10,
		FeetPerLane:   10,
		DefaultHeight: 25,
		DefaultWidth:  16,
		BuildingHeights: map[string]float64{
			"house": 25,
			"barn":  35,
			"yes":   25,
		},
		RoadWidths: map[string]float64{
			"motorway":    48,
			"residential": 20,
			"road":        20,
		},
	}
}

func TestGetNumber(t *testing.T) {
	is := is.New(t)

	s := Set{"height": "12m", "width": "30'", "spaced": "4.5 m", "bad": "tall"}

	v, ok := s.GetNumber("height")
	is.True(ok)
	is.Equal(v, 12.0)

	v, ok = s.GetNumber("width")
	is.True(ok)
	is.Equal(v, 30.0)

	v, ok = s.GetNumber("spaced")
	is.True(ok)
	is.Equal(v, 4.5)

	_, ok = s.GetNumber("bad")
	is.False(ok)
	_, ok = s.GetNumber("missing")
	is.False(ok)
}

func TestHeightPrecedence(t *testing.T) {
	is := is.New(t)
	r := testResolver()

	// Explicit tag wins, meters converted to feet.
	h := r.Height(Set{"height": "12m", "building:levels": "3", "building": "house"})
	is.True(math.Abs(h-12*3.28084) < 1e-9)

	// Levels next.
	is.Equal(r.Height(Set{"building:levels": "3", "building": "house"}), 30.0)

	// Then the type table.
	is.Equal(r.Height(Set{"building": "house"}), 25.0)
	is.Equal(r.Height(Set{"building": "barn"}), 35.0)

	// Unknown type and empty set fall to the default.
	is.Equal(r.Height(Set{"building": "pagoda"}), 25.0)
	is.Equal(r.Height(Set{}), 25.0)
}

func TestHeightFallthrough(t *testing.T) {
	is := is.New(t)
	r := testResolver()

	// Unparseable tiers never fail resolution, they fall through.
	is.Equal(r.Height(Set{"height": "tall", "building:levels": "2"}), 20.0)
	is.Equal(r.Height(Set{"height": "tall", "building:levels": "many"}), 25.0)
	is.Equal(r.Height(Set{"height": "-4", "building": "barn"}), 35.0)
}

func TestWidthPrecedence(t *testing.T) {
	is := is.New(t)
	r := testResolver()

	w := r.Width(Set{"width": "6m"})
	is.True(math.Abs(w-6*3.28084) < 1e-9)

	is.Equal(r.Width(Set{"lanes": "2"}), 20.0)
	is.Equal(r.Width(Set{"highway": "motorway"}), 48.0)
	is.Equal(r.Width(Set{"highway": "hyperloop"}), 16.0)
	is.Equal(r.Width(Set{}), 20.0) // no highway tag resolves as "road"
}

func TestWidthFallthrough(t *testing.T) {
	is := is.New(t)
	r := testResolver()

	is.Equal(r.Width(Set{"width": "wide", "lanes": "3"}), 30.0)
	is.Equal(r.Width(Set{"lanes": "0", "highway": "residential"}), 20.0)
}
