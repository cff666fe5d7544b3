// Package terrain acquires USGS elevation tiles and converts them into
// the heightmap format the samplers consume.
package terrain

import (
	"fmt"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"github.com/ashesandaether/worldbuilder/geo"
)

// BoundingBox returns the geodetic rectangle enclosing a spherical cap
// of the given radius around center. The cap's rect bound widens the
// longitude span toward the poles, which a naive cos(lat) box gets
// subtly wrong.
func BoundingBox(center geo.Point, radiusMeters float64) (minLat, minLon, maxLat, maxLon float64) {
	ll := s2.LatLngFromDegrees(center.Lat, center.Lon)
	angle := s1.Angle(radiusMeters / geo.EarthRadius)
	region := s2.CapFromCenterAngle(s2.PointFromLatLng(ll), angle)

	rect := region.RectBound()
	return rect.Lo().Lat.Degrees(), rect.Lo().Lng.Degrees(),
		rect.Hi().Lat.Degrees(), rect.Hi().Lng.Degrees()
}

// BBoxParam formats the rectangle the way the TNM products API wants
// it: minLon,minLat,maxLon,maxLat.
func BBoxParam(center geo.Point, radiusMeters float64) string {
	minLat, minLon, maxLat, maxLon := BoundingBox(center, radiusMeters)
	return fmt.Sprintf("%f,%f,%f,%f", minLon, minLat, maxLon, maxLat)
}
