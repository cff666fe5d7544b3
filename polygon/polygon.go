// Package polygon validates building footprints in the local plane and
// prepares them for extrusion.
//
// Validity and repair are delegated to GEOS. Digitized footprints are
// occasionally self-intersecting; a zero-width buffer rebuilds such a
// ring into valid geometry, which may come back as a single polygon or
// as a collection of pieces.
package polygon

import (
	"github.com/paulsmith/gogeos/geos"
)

// Point is a position in the local plane: X east, Y north, feet.
type Point struct {
	X float64
	Y float64
}

// Validate turns a footprint ring into a simple counter-clockwise
// polygon shell and reports its area in square feet.
//
// Invalid rings are repaired; when repair yields a collection, the
// largest polygon member is kept. Rings that cannot be reduced to a
// polygon are rejected (ok == false). Interior rings produced by
// repair are dropped: footprints arrive as single rings and their
// solids are built from the outer shell.
func Validate(ring []Point) (shell []Point, area float64, ok bool) {
	if len(ring) < 3 {
		return nil, 0, false
	}

	coords := make([]geos.Coord, 0, len(ring)+1)
	for _, p := range ring {
		coords = append(coords, geos.Coord{X: p.X, Y: p.Y})
	}
	if coords[0] != coords[len(coords)-1] {
		coords = append(coords, coords[0])
	}

	poly, err := geos.NewPolygon(coords)
	if err != nil {
		return nil, 0, false
	}

	// A zero-width buffer is a no-op on a valid polygon and rebuilds an
	// invalid one into valid geometry, so every ring takes this path.
	repaired, err := poly.Buffer(0)
	if err != nil {
		return nil, 0, false
	}
	poly, ok = selectPolygon(repaired)
	if !ok {
		return nil, 0, false
	}

	area, err = poly.Area()
	if err != nil {
		return nil, 0, false
	}

	shell, err = shellPoints(poly)
	if err != nil || len(shell) < 3 {
		return nil, 0, false
	}
	if isClockwise(shell) {
		shell = reverse(shell)
	}

	return shell, area, true
}

// selectPolygon reduces a repaired geometry to a single polygon:
// polygons pass through, collections contribute their largest polygon
// member, anything else is rejected.
func selectPolygon(g *geos.Geometry) (*geos.Geometry, bool) {
	t, err := g.Type()
	if err != nil {
		return nil, false
	}

	switch t {
	case geos.POLYGON:
		return g, true
	case geos.MULTIPOLYGON, geos.GEOMETRYCOLLECTION:
		n, err := g.NGeometry()
		if err != nil {
			return nil, false
		}

		var best *geos.Geometry
		bestArea := 0.0
		for i := 0; i < n; i++ {
			member, err := g.Geometry(i)
			if err != nil {
				return nil, false
			}
			mt, err := member.Type()
			if err != nil || mt != geos.POLYGON {
				continue
			}
			area, err := member.Area()
			if err != nil {
				return nil, false
			}
			if best == nil || area > bestArea {
				best = member
				bestArea = area
			}
		}
		if best == nil {
			return nil, false
		}
		return best, true
	default:
		return nil, false
	}
}

func shellPoints(poly *geos.Geometry) ([]Point, error) {
	shell, err := poly.Shell()
	if err != nil {
		return nil, err
	}
	coords, err := shell.Coords()
	if err != nil {
		return nil, err
	}

	// The shell repeats its first coordinate, drop the closing one.
	if len(coords) > 1 {
		last := coords[len(coords)-1]
		if last.X == coords[0].X && last.Y == coords[0].Y {
			coords = coords[:len(coords)-1]
		}
	}

	points := make([]Point, len(coords))
	for i, c := range coords {
		points[i] = Point{X: c.X, Y: c.Y}
	}
	return points, nil
}

func isClockwise(ring []Point) bool {
	sum := 0.0
	for i, p := range ring {
		next := ring[(i+1)%len(ring)]
		sum += (next.X - p.X) * (next.Y + p.Y)
	}
	return sum >= 0
}

func reverse(ring []Point) []Point {
	out := make([]Point, len(ring))
	for i := range ring {
		out[i] = ring[len(ring)-i-1]
	}
	return out
}
