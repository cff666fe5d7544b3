package cmd

import (
	"fmt"
	"log"
	"sort"

	"github.com/ashesandaether/worldbuilder/geo"
	"github.com/ashesandaether/worldbuilder/model"
)

type CmdRoads struct {
	global *GlobalOptions

	Input            string  `long:"input" required:"true" description:"Path to roads.json"`
	OriginLat        float64 `long:"origin-lat" required:"true" description:"World origin latitude"`
	OriginLon        float64 `long:"origin-lon" required:"true" description:"World origin longitude"`
	Heightmap        string  `long:"heightmap" description:"Heightmap path prefix (without extension)"`
	Output           string  `long:"output" required:"true" description:"Output GLB file"`
	DefaultElevation float64 `long:"default-elevation" description:"Ground elevation in feet if no heightmap"`
}

func init() {
	_, err := parser.AddCommand("roads",
		"Build road meshes",
		"Build terrain-draped road strips from centerlines and export as GLB",
		&CmdRoads{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd *CmdRoads) Execute(args []string) error {
	features, err := model.LoadFeatures(cmd.Input)
	if err != nil {
		return fmt.Errorf("Failed to load %s: %s\n", cmd.Input, err.Error())
	}
	log.Printf("Processing %d roads", len(features))

	batch, err := cmd.global.newBatch(geo.Point{Lat: cmd.OriginLat, Lon: cmd.OriginLon},
		cmd.Heightmap, cmd.DefaultElevation)
	if err != nil {
		return err
	}

	meshes, stats := batch.Roads(features)
	log.Printf("Created %d road meshes (%d skipped)", stats.Built, stats.Skipped)
	logRoadTypes(features)
	if len(meshes) == 0 {
		return fmt.Errorf("No meshes to export")
	}

	return exportMeshes(cmd.Output, "roads", meshes)
}

func logRoadTypes(features []model.Feature) {
	counts := map[string]int{}
	for _, f := range features {
		kind, ok := f.Tags.GetString("highway")
		if !ok {
			kind = "road"
		}
		counts[kind]++
	}

	kinds := make([]string, 0, len(counts))
	for kind := range counts {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool {
		if counts[kinds[i]] != counts[kinds[j]] {
			return counts[kinds[i]] > counts[kinds[j]]
		}
		return kinds[i] < kinds[j]
	})

	log.Println("Road types:")
	for _, kind := range kinds {
		log.Printf("  %s: %d", kind, counts[kind])
	}
}
