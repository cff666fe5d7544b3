// Package geo converts geodetic coordinates into a local planar frame.
//
// The world is laid out on a flat-earth tangent plane around a chosen
// origin: X points east, Z points north, units are feet. The
// approximation holds for areas up to a few tens of kilometers across,
// which covers any region this pipeline is pointed at.
package geo

import "math"

const (
	// EarthRadius is the WGS84 equatorial radius in meters.
	EarthRadius = 6378137.0

	MetersToFeet = 3.28084
)

// Point is a geodetic coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// Projector maps geodetic points onto the local tangent plane of its
// origin. Meters per degree of longitude shrink with the cosine of the
// origin latitude, meters per degree of latitude are constant.
type Projector struct {
	origin       Point
	metersPerLat float64
	metersPerLon float64
}

func NewProjector(origin Point) *Projector {
	return &Projector{
		origin:       origin,
		metersPerLat: (math.Pi / 180.0) * EarthRadius,
		metersPerLon: (math.Pi / 180.0) * EarthRadius * math.Cos(origin.Lat*math.Pi/180.0),
	}
}

func (p *Projector) Origin() Point {
	return p.origin
}

// Project returns the east (x) and north (z) offset of pt from the
// origin, in feet.
func (p *Projector) Project(pt Point) (x, z float64) {
	x = (pt.Lon - p.origin.Lon) * p.metersPerLon * MetersToFeet
	z = (pt.Lat - p.origin.Lat) * p.metersPerLat * MetersToFeet
	return x, z
}

// Centroid returns the arithmetic mean of a set of points. Good enough
// for picking an elevation sample location under a footprint.
func Centroid(points []Point) Point {
	c := Point{}
	if len(points) == 0 {
		return c
	}
	for _, pt := range points {
		c.Lat += pt.Lat
		c.Lon += pt.Lon
	}
	c.Lat /= float64(len(points))
	c.Lon /= float64(len(points))
	return c
}
