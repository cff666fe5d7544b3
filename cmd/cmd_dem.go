package cmd

import (
	"fmt"
	"log"

	"github.com/ashesandaether/worldbuilder/geo"
	"github.com/ashesandaether/worldbuilder/terrain"
)

type CmdDem struct {
	global *GlobalOptions

	Lat         float64 `long:"lat" required:"true" description:"Center latitude"`
	Lon         float64 `long:"lon" required:"true" description:"Center longitude"`
	RadiusMiles float64 `long:"radius-miles" default:"5" description:"Fetch radius in miles"`
	Dataset     string  `long:"dataset" description:"USGS dataset name"`
	OutDir      string  `long:"out-dir" default:"data/terrain/usgs" description:"Output directory"`
}

func init() {
	_, err := parser.AddCommand("dem",
		"Fetch USGS elevation tiles",
		"Download DEM GeoTIFF tiles covering an area from the USGS national map",
		&CmdDem{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd *CmdDem) Execute(args []string) error {
	dataset := cmd.Dataset
	if dataset == "" {
		dataset = terrain.DefaultDataset
	}

	center := geo.Point{Lat: cmd.Lat, Lon: cmd.Lon}
	index, err := terrain.FetchTiles(center, milesToMeters(cmd.RadiusMiles), dataset, cmd.OutDir)
	if err != nil {
		return fmt.Errorf("Failed to fetch tiles: %s\n", err.Error())
	}

	log.Printf("Downloaded %d tiles to %s", len(index.Downloads), cmd.OutDir)
	return nil
}
