package geo

import (
	"math"
	"testing"

	"github.com/cheekybits/is"
)

func TestProjectOrigin(t *testing.T) {
	is := is.New(t)

	origin := Point{Lat: 42.5513326, Lon: -73.3792285}
	proj := NewProjector(origin)

	x, z := proj.Project(origin)
	is.Equal(x, 0.0)
	is.Equal(z, 0.0)

	x, z = proj.Project(Point{Lat: origin.Lat + 0.001, Lon: origin.Lon})
	is.True(x == 0)
	is.True(z > 0)
}

func TestProjectScale(t *testing.T) {
	is := is.New(t)

	proj := NewProjector(Point{Lat: 0, Lon: 0})

	// At the equator a degree of latitude and a degree of longitude
	// span the same distance.
	x1, _ := proj.Project(Point{Lat: 0, Lon: 1})
	_, z1 := proj.Project(Point{Lat: 1, Lon: 0})
	is.True(math.Abs(x1-z1) < 1e-6)

	// One degree of arc at the equator, in feet.
	want := (math.Pi / 180.0) * EarthRadius * MetersToFeet
	is.True(math.Abs(x1-want) < 1e-6)
}

func TestProjectLatitudeCorrection(t *testing.T) {
	is := is.New(t)

	lat := 60.0
	proj := NewProjector(Point{Lat: lat, Lon: 0})

	x, _ := proj.Project(Point{Lat: lat, Lon: 1})
	_, z := proj.Project(Point{Lat: lat + 1, Lon: 0})

	// cos(60°) = 0.5: east-west degrees are half as wide.
	is.True(math.Abs(x/z-math.Cos(lat*math.Pi/180.0)) < 1e-9)
}

func TestProjectWestAndSouthAreNegative(t *testing.T) {
	is := is.New(t)

	proj := NewProjector(Point{Lat: 42.0, Lon: -73.0})
	x, z := proj.Project(Point{Lat: 41.9, Lon: -73.1})
	is.True(x < 0)
	is.True(z < 0)
}

func TestCentroid(t *testing.T) {
	is := is.New(t)

	c := Centroid([]Point{
		{Lat: 0, Lon: 0},
		{Lat: 2, Lon: 0},
		{Lat: 2, Lon: 2},
		{Lat: 0, Lon: 2},
	})
	is.Equal(c.Lat, 1.0)
	is.Equal(c.Lon, 1.0)

	is.Equal(Centroid(nil), Point{})
}
