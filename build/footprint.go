package build

import (
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/ashesandaether/worldbuilder/geo"
	"github.com/ashesandaether/worldbuilder/mesh"
	"github.com/ashesandaether/worldbuilder/polygon"
)

// FootprintBuilder extrudes building footprints into closed solids.
type FootprintBuilder struct {
	Proj *geo.Projector
	// Footprints below MinArea (square feet) are rejected.
	MinArea float64
}

// Build turns a footprint ring into a solid of the given height whose
// floor sits at baseElevation. Returns ok == false for any footprint
// that cannot produce a solid; callers skip the feature and move on.
//
// The solid is extruded in the footprint plane and reoriented so the
// extrusion axis becomes world Y (up). The reorientation is the same
// −90° rotation about X the asset consumer expects, which maps local
// north onto −Z for building solids.
func (b *FootprintBuilder) Build(nodes []geo.Point, height, baseElevation float64) (*mesh.Mesh, bool) {
	if len(nodes) < 3 {
		return nil, false
	}

	ring := make([]polygon.Point, len(nodes))
	for i, n := range nodes {
		x, z := b.Proj.Project(n)
		ring[i] = polygon.Point{X: x, Y: z}
	}

	shell, area, ok := polygon.Validate(ring)
	if !ok {
		return nil, false
	}
	if area < b.MinArea {
		return nil, false
	}

	capTris, ok := polygon.Triangulate(shell)
	if !ok {
		return nil, false
	}

	return extrude(shell, capTris, height, baseElevation), true
}

// extrude builds the closed solid: floor, roof and one wall quad per
// shell edge. The shell is counter-clockwise in the (east, north)
// plane, which makes every emitted triangle face outward.
func extrude(shell []polygon.Point, capTris [][3]int, height, baseElevation float64) *mesh.Mesh {
	n := len(shell)
	m := mesh.New()

	// Bottom ring first, top ring at index offset n.
	for _, p := range shell {
		m.Vertices = append(m.Vertices, vec3.T{p.X, 0, -p.Y})
	}
	for _, p := range shell {
		m.Vertices = append(m.Vertices, vec3.T{p.X, height, -p.Y})
	}

	// Floor faces down, so the cap triangles are reversed.
	for _, t := range capTris {
		m.Faces = append(m.Faces, mesh.Tri{t[2], t[1], t[0]})
	}
	// Roof faces up.
	for _, t := range capTris {
		m.Faces = append(m.Faces, mesh.Tri{t[0] + n, t[1] + n, t[2] + n})
	}
	// Walls.
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		m.Faces = append(m.Faces, mesh.Tri{i, j, j + n})
		m.Faces = append(m.Faces, mesh.Tri{i, j + n, i + n})
	}

	m.Translate(vec3.T{0, baseElevation, 0})
	return m
}
