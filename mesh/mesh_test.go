package mesh

import (
	"math"
	"testing"

	"github.com/cheekybits/is"
	"github.com/ungerik/go3d/float64/vec3"
)

// Unit cube with outward-facing triangles.
func cube() *Mesh {
	return &Mesh{
		Vertices: []vec3.T{
			{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
			{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
		},
		Faces: []Tri{
			{0, 2, 1}, {0, 3, 2}, // z=0
			{4, 5, 6}, {4, 6, 7}, // z=1
			{0, 1, 5}, {0, 5, 4}, // y=0
			{2, 3, 7}, {2, 7, 6}, // y=1
			{1, 2, 6}, {1, 6, 5}, // x=1
			{3, 0, 4}, {3, 4, 7}, // x=0
		},
	}
}

func TestVolume(t *testing.T) {
	is := is.New(t)

	m := cube()
	is.True(math.Abs(m.Volume()-1.0) < 1e-12)

	// Flipping every face flips the sign.
	for i, f := range m.Faces {
		m.Faces[i] = Tri{f[0], f[2], f[1]}
	}
	is.True(math.Abs(m.Volume()+1.0) < 1e-12)
}

func TestAppendRenumbers(t *testing.T) {
	is := is.New(t)

	m := cube()
	n := cube()
	n.Translate(vec3.T{5, 0, 0})

	m.Append(n)
	is.Equal(len(m.Vertices), 16)
	is.Equal(len(m.Faces), 24)
	is.Equal(m.Faces[12], Tri{8, 10, 9})

	// Both cubes remain closed solids.
	is.True(math.Abs(m.Volume()-2.0) < 1e-12)
}

func TestConcat(t *testing.T) {
	is := is.New(t)

	m := Concat([]*Mesh{cube(), cube(), cube()})
	is.Equal(len(m.Vertices), 24)
	is.Equal(len(m.Faces), 36)

	empty := Concat(nil)
	is.Equal(len(empty.Vertices), 0)
	is.Equal(len(empty.Faces), 0)
}

func TestBounds(t *testing.T) {
	is := is.New(t)

	m := cube()
	m.Translate(vec3.T{-1, 2, 0.5})
	min, max := m.Bounds()
	is.Equal(min, vec3.T{-1, 2, 0.5})
	is.Equal(max, vec3.T{0, 3, 1.5})
}
