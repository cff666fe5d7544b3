package polygon

// Triangulate ear-clips a simple counter-clockwise ring (no repeated
// closing point) into len(ring)-2 triangles of ring indices.
//
// Rings that defeat clipping (remaining vertices collinear, or a
// non-simple ring that slipped through validation) are rejected.
func Triangulate(ring []Point) ([][3]int, bool) {
	n := len(ring)
	if n < 3 {
		return nil, false
	}

	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	tris := make([][3]int, 0, n-2)
	for len(idx) > 3 {
		m := len(idx)
		clipped := false
		for i := 0; i < m; i++ {
			a := idx[(i+m-1)%m]
			b := idx[i]
			c := idx[(i+1)%m]
			if !isEar(ring, idx, a, b, c) {
				continue
			}
			tris = append(tris, [3]int{a, b, c})
			idx = append(idx[:i], idx[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, false
		}
	}
	tris = append(tris, [3]int{idx[0], idx[1], idx[2]})

	return tris, true
}

func isEar(ring []Point, idx []int, a, b, c int) bool {
	// Reflex or collinear corners are not ears.
	if cross(ring[a], ring[b], ring[c]) <= 0 {
		return false
	}
	for _, j := range idx {
		if j == a || j == b || j == c {
			continue
		}
		if inTriangle(ring[j], ring[a], ring[b], ring[c]) {
			return false
		}
	}
	return true
}

// cross is the z component of (a-o)×(b-o): positive for a left turn.
func cross(o, a, b Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// inTriangle reports whether p lies inside or on the boundary of the
// counter-clockwise triangle abc.
func inTriangle(p, a, b, c Point) bool {
	return cross(a, b, p) >= 0 && cross(b, c, p) >= 0 && cross(c, a, p) >= 0
}
