package overpass

import (
	geojson "github.com/paulmach/go.geojson"

	"github.com/ashesandaether/worldbuilder/model"
)

// BuildingCollection mirrors footprints as GeoJSON polygons, handy for
// eyeballing a fetch in QGIS before meshing it.
func BuildingCollection(features []model.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		if len(f.Nodes) < 3 {
			continue
		}

		ring := make([][]float64, 0, len(f.Nodes)+1)
		for _, n := range f.Nodes {
			ring = append(ring, []float64{n.Lon, n.Lat})
		}
		if ring[0][0] != ring[len(ring)-1][0] || ring[0][1] != ring[len(ring)-1][1] {
			ring = append(ring, ring[0])
		}

		feat := geojson.NewPolygonFeature([][][]float64{ring})
		feat.ID = f.ID
		for k, v := range f.Tags {
			feat.SetProperty(k, v)
		}
		fc.AddFeature(feat)
	}
	return fc
}

// RoadCollection mirrors centerlines as GeoJSON line strings.
func RoadCollection(features []model.Feature) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, f := range features {
		if len(f.Nodes) < 2 {
			continue
		}

		line := make([][]float64, 0, len(f.Nodes))
		for _, n := range f.Nodes {
			line = append(line, []float64{n.Lon, n.Lat})
		}

		feat := geojson.NewLineStringFeature(line)
		feat.ID = f.ID
		for k, v := range f.Tags {
			feat.SetProperty(k, v)
		}
		fc.AddFeature(feat)
	}
	return fc
}
