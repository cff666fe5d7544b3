package build

import (
	"math"
	"testing"

	"github.com/cheekybits/is"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/ashesandaether/worldbuilder/geo"
	"github.com/ashesandaether/worldbuilder/heightmap"
	"github.com/ashesandaether/worldbuilder/mesh"
)

func roadBuilder(grid *heightmap.Grid) *RoadBuilder {
	return &RoadBuilder{
		Proj:             geo.NewProjector(geo.Point{Lat: 0, Lon: 0}),
		Sampler:          heightmap.NewSampler(grid),
		DefaultElevation: 0,
		SurfaceOffset:    0.1,
	}
}

func stripWidthAt(m *mesh.Mesh, i int) float64 {
	left := m.Vertices[2*i]
	right := m.Vertices[2*i+1]
	d := vec3.Sub(&left, &right)
	return d.Length()
}

func TestRoadTwoPoints(t *testing.T) {
	is := is.New(t)
	b := roadBuilder(nil)

	m, ok := b.Build([]geo.Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 0.0001},
	}, 10)
	is.True(ok)
	is.Equal(len(m.Vertices), 4)
	is.Equal(len(m.Faces), 2)

	// Eastbound road: offsets point north/south, z = ±width/2.
	is.True(math.Abs(m.Vertices[0][2]-5) < 1e-9)
	is.True(math.Abs(m.Vertices[1][2]+5) < 1e-9)

	// No heightmap: surface sits at default elevation plus offset.
	is.True(math.Abs(m.Vertices[0][1]-0.1) < 1e-12)
}

func TestRoadThreePoints(t *testing.T) {
	is := is.New(t)
	b := roadBuilder(nil)

	m, ok := b.Build([]geo.Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 0.0001},
		{Lat: 0, Lon: 0.0002},
	}, 12)
	is.True(ok)
	is.Equal(len(m.Vertices), 6)
	is.Equal(len(m.Faces), 4)

	is.Equal(m.Faces[0], mesh.Tri{0, 2, 1})
	is.Equal(m.Faces[1], mesh.Tri{1, 2, 3})
	is.Equal(m.Faces[2], mesh.Tri{2, 4, 3})
	is.Equal(m.Faces[3], mesh.Tri{3, 4, 5})
}

func TestRoadWidthPreserved(t *testing.T) {
	is := is.New(t)
	b := roadBuilder(nil)

	// Zig-zag line with a right-angle corner.
	m, ok := b.Build([]geo.Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 0.0001},
		{Lat: 0.0001, Lon: 0.0001},
		{Lat: 0.0001, Lon: 0.0002},
	}, 24)
	is.True(ok)

	// The perpendicular is a unit vector at every corner, so each
	// left/right pair is exactly the road width apart.
	for i := 0; i < 4; i++ {
		is.True(math.Abs(stripWidthAt(m, i)-24) < 1e-9)
	}
}

func TestRoadSharpTurn(t *testing.T) {
	is := is.New(t)
	b := roadBuilder(nil)

	// Near-180° turn. The averaged corner direction is not length
	// limited, so the corner pair stays at the nominal width while the
	// geometry folds back on itself; this documents that behavior.
	m, ok := b.Build([]geo.Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 0.0001},
		{Lat: 0.000001, Lon: 0},
	}, 10)
	is.True(ok)
	is.Equal(len(m.Vertices), 6)
	is.True(math.Abs(stripWidthAt(m, 1)-10) < 1e-9)
}

func TestRoadCoincidentPoints(t *testing.T) {
	is := is.New(t)
	b := roadBuilder(nil)

	// Identical points: degenerate direction falls back to east, so
	// the perpendicular points north.
	m, ok := b.Build([]geo.Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 0},
	}, 10)
	is.True(ok)
	is.Equal(len(m.Vertices), 4)
	is.True(math.Abs(m.Vertices[0][2]-5) < 1e-12)
	is.True(math.Abs(m.Vertices[1][2]+5) < 1e-12)
}

func TestRoadTooFewPoints(t *testing.T) {
	is := is.New(t)
	b := roadBuilder(nil)

	_, ok := b.Build([]geo.Point{{Lat: 0, Lon: 0}}, 10)
	is.False(ok)
	_, ok = b.Build(nil, 10)
	is.False(ok)
}

func TestRoadSampledElevation(t *testing.T) {
	is := is.New(t)

	// Flat 100 m grid around the origin.
	samples := make([]float32, 9)
	for i := range samples {
		samples[i] = 100
	}
	grid, err := heightmap.NewGrid(0.001, -0.001, 0.001, 3, 3, samples)
	is.NoErr(err)

	b := roadBuilder(grid)
	m, ok := b.Build([]geo.Point{
		{Lat: 0, Lon: 0},
		{Lat: 0, Lon: 0.0005},
	}, 10)
	is.True(ok)

	want := 100*geo.MetersToFeet + 0.1
	for _, v := range m.Vertices {
		is.True(math.Abs(v[1]-want) < 1e-9)
	}
}
