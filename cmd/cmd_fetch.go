package cmd

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"path"
	"time"

	"github.com/ashesandaether/worldbuilder/geo"
	"github.com/ashesandaether/worldbuilder/model"
	"github.com/ashesandaether/worldbuilder/overpass"
)

type CmdFetch struct {
	global *GlobalOptions

	Lat         float64 `long:"lat" required:"true" description:"Center latitude"`
	Lon         float64 `long:"lon" required:"true" description:"Center longitude"`
	RadiusMiles float64 `long:"radius-miles" default:"2" description:"Fetch radius in miles"`
	OutDir      string  `long:"out-dir" default:"data/osm" description:"Output directory"`
	GeoJSON     bool    `long:"geojson" description:"Also write GeoJSON mirrors for inspection"`
}

func init() {
	_, err := parser.AddCommand("fetch",
		"Fetch OSM features",
		"Fetch buildings, roads, landuse and water around a point from the Overpass API",
		&CmdFetch{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd *CmdFetch) Execute(args []string) error {
	center := geo.Point{Lat: cmd.Lat, Lon: cmd.Lon}
	radius := milesToMeters(cmd.RadiusMiles)

	log.Printf("Fetching OSM data: center=(%f, %f), radius=%.1fmi (%.0fm)",
		cmd.Lat, cmd.Lon, cmd.RadiusMiles, radius)

	client := overpass.NewClient()
	resp, err := client.Fetch(overpass.Query(center, radius))
	if err != nil {
		return fmt.Errorf("Overpass query failed: %s\n", err.Error())
	}

	parsed := overpass.Parse(resp)

	err = os.MkdirAll(cmd.OutDir, 0755)
	if err != nil {
		return err
	}

	categories := map[string][]model.Feature{
		"buildings": parsed.Buildings,
		"roads":     parsed.Roads,
		"landuse":   parsed.Landuse,
		"natural":   parsed.Natural,
		"water":     parsed.Water,
		"amenities": parsed.Amenities,
	}
	for name, features := range categories {
		err = model.SaveFeatures(path.Join(cmd.OutDir, name+".json"), features)
		if err != nil {
			return err
		}
		log.Printf("  %s: %d features", name, len(features))
	}

	if cmd.GeoJSON {
		err = writeGeoJSON(path.Join(cmd.OutDir, "buildings.geojson"), overpass.BuildingCollection(parsed.Buildings))
		if err != nil {
			return err
		}
		err = writeGeoJSON(path.Join(cmd.OutDir, "roads.geojson"), overpass.RoadCollection(parsed.Roads))
		if err != nil {
			return err
		}
	}

	metadata := map[string]interface{}{
		"center":      center,
		"radiusMiles": cmd.RadiusMiles,
		"counts": map[string]int{
			"buildings":  len(parsed.Buildings),
			"roads":      len(parsed.Roads),
			"landuse":    len(parsed.Landuse),
			"natural":    len(parsed.Natural),
			"water":      len(parsed.Water),
			"amenities":  len(parsed.Amenities),
			"totalNodes": parsed.NodeCount,
			"totalWays":  parsed.WayCount,
		},
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	data, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return err
	}
	err = ioutil.WriteFile(path.Join(cmd.OutDir, "metadata.json"), data, 0644)
	if err != nil {
		return err
	}

	log.Printf("OSM data saved to %s", cmd.OutDir)
	return nil
}

func writeGeoJSON(file string, fc json.Marshaler) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(file, data, 0644)
}
