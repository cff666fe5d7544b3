package build

import (
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/ashesandaether/worldbuilder/geo"
	"github.com/ashesandaether/worldbuilder/heightmap"
	"github.com/ashesandaether/worldbuilder/mesh"
)

// degenerateLength is the direction-vector length below which a corner
// is treated as coincident points.
const degenerateLength = 0.001

// RoadBuilder turns road centerlines into terrain-draped ribbon strips.
type RoadBuilder struct {
	Proj    *geo.Projector
	Sampler *heightmap.Sampler
	// Elevation used where the sampler has no answer, feet.
	DefaultElevation float64
	// Lift above the terrain surface, feet.
	SurfaceOffset float64
}

// Build creates a strip of the given width along the centerline: two
// vertices per input point, offset ±width/2 along the horizontal
// perpendicular, and a quad (two triangles) per segment. Corners use
// the average of the adjacent segment directions, with no miter length
// limiting — sharp turns stretch, exactly as the asset pipeline always
// produced them.
func (b *RoadBuilder) Build(nodes []geo.Point, width float64) (*mesh.Mesh, bool) {
	if len(nodes) < 2 {
		return nil, false
	}

	points := make([]vec3.T, len(nodes))
	for i, n := range nodes {
		x, z := b.Proj.Project(n)
		y := b.DefaultElevation
		if e, ok := b.Sampler.Sample(n); ok {
			y = e
		}
		points[i] = vec3.T{x, y + b.SurfaceOffset, z}
	}

	m := mesh.New()
	halfWidth := width / 2

	for i, p := range points {
		var dir vec3.T
		switch {
		case i == 0:
			dir = vec3.Sub(&points[i+1], &p)
		case i == len(points)-1:
			dir = vec3.Sub(&p, &points[i-1])
		default:
			in := vec3.Sub(&p, &points[i-1])
			out := vec3.Sub(&points[i+1], &p)
			in.Normalize()
			out.Normalize()
			dir = vec3.Add(&in, &out)
		}

		// Width offsets stay horizontal even on slopes.
		dir[1] = 0
		if dir.Length() < degenerateLength {
			dir = vec3.T{1, 0, 0} // coincident points: fall back east
		} else {
			dir.Normalize()
		}
		perp := vec3.T{-dir[2], 0, dir[0]}

		left := vec3.Add(&p, perp.Scale(halfWidth))
		right := vec3.Sub(&p, &perp)
		m.Vertices = append(m.Vertices, left, right)
	}

	for i := 0; i < len(points)-1; i++ {
		idx := i * 2
		m.Faces = append(m.Faces, mesh.Tri{idx, idx + 2, idx + 1})
		m.Faces = append(m.Faces, mesh.Tri{idx + 1, idx + 2, idx + 3})
	}

	return m, true
}
