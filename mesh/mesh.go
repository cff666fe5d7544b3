// Package mesh holds triangle meshes in local world coordinates
// (X east, Y up, Z as produced by the builders, feet).
package mesh

import (
	"github.com/ungerik/go3d/float64/vec3"
)

// Tri indexes three vertices of a mesh.
type Tri [3]int

type Mesh struct {
	Vertices []vec3.T
	Faces    []Tri
}

func New() *Mesh {
	return &Mesh{
		Vertices: make([]vec3.T, 0),
		Faces:    make([]Tri, 0),
	}
}

// Append concatenates other onto m, renumbering face indices. No
// vertex welding: shared positions stay duplicated.
func (m *Mesh) Append(other *Mesh) {
	offset := len(m.Vertices)
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, f := range other.Faces {
		m.Faces = append(m.Faces, Tri{f[0] + offset, f[1] + offset, f[2] + offset})
	}
}

// Concat merges meshes into a single mesh.
func Concat(meshes []*Mesh) *Mesh {
	out := New()
	for _, m := range meshes {
		out.Append(m)
	}
	return out
}

func (m *Mesh) Translate(d vec3.T) {
	for i := range m.Vertices {
		m.Vertices[i][0] += d[0]
		m.Vertices[i][1] += d[1]
		m.Vertices[i][2] += d[2]
	}
}

// Bounds returns the axis-aligned min and max corners.
func (m *Mesh) Bounds() (min, max vec3.T) {
	if len(m.Vertices) == 0 {
		return vec3.Zero, vec3.Zero
	}
	min = m.Vertices[0]
	max = m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < min[i] {
				min[i] = v[i]
			}
			if v[i] > max[i] {
				max[i] = v[i]
			}
		}
	}
	return min, max
}

// Volume returns the signed volume enclosed by the faces. Positive for
// a closed solid with outward-facing triangles.
func (m *Mesh) Volume() float64 {
	total := 0.0
	for _, f := range m.Faces {
		a := m.Vertices[f[0]]
		b := m.Vertices[f[1]]
		c := m.Vertices[f[2]]
		cross := vec3.Cross(&b, &c)
		total += vec3.Dot(&a, &cross)
	}
	return total / 6.0
}
