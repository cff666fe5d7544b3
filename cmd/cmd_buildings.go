package cmd

import (
	"fmt"
	"log"

	"github.com/ashesandaether/worldbuilder/build"
	"github.com/ashesandaether/worldbuilder/export"
	"github.com/ashesandaether/worldbuilder/geo"
	"github.com/ashesandaether/worldbuilder/heightmap"
	"github.com/ashesandaether/worldbuilder/mesh"
	"github.com/ashesandaether/worldbuilder/model"
)

type CmdBuildings struct {
	global *GlobalOptions

	Input            string  `long:"input" required:"true" description:"Path to buildings.json"`
	OriginLat        float64 `long:"origin-lat" required:"true" description:"World origin latitude"`
	OriginLon        float64 `long:"origin-lon" required:"true" description:"World origin longitude"`
	Heightmap        string  `long:"heightmap" description:"Heightmap path prefix (without extension)"`
	Output           string  `long:"output" required:"true" description:"Output GLB file"`
	DefaultElevation float64 `long:"default-elevation" description:"Ground elevation in feet if no heightmap"`
}

func init() {
	_, err := parser.AddCommand("buildings",
		"Build building meshes",
		"Extrude building footprints to terrain-conformant solids and export as GLB",
		&CmdBuildings{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd *CmdBuildings) Execute(args []string) error {
	features, err := model.LoadFeatures(cmd.Input)
	if err != nil {
		return fmt.Errorf("Failed to load %s: %s\n", cmd.Input, err.Error())
	}
	log.Printf("Processing %d buildings", len(features))

	batch, err := cmd.global.newBatch(geo.Point{Lat: cmd.OriginLat, Lon: cmd.OriginLon},
		cmd.Heightmap, cmd.DefaultElevation)
	if err != nil {
		return err
	}

	meshes, stats := batch.Buildings(features)
	log.Printf("Created %d building meshes (%d skipped)", stats.Built, stats.Skipped)
	if len(meshes) == 0 {
		return fmt.Errorf("No meshes to export")
	}

	return exportMeshes(cmd.Output, "buildings", meshes)
}

// newBatch wires the shared batch pieces: config, projector and the
// heightmap sampler (absent heightmaps are a warning, not an error).
func (g *GlobalOptions) newBatch(origin geo.Point, heightmapPrefix string, defaultElevation float64) (*build.Batch, error) {
	config, err := g.LoadConfig()
	if err != nil {
		return nil, err
	}
	config.DefaultElevation = defaultElevation

	var grid *heightmap.Grid
	if heightmapPrefix != "" {
		grid, err = heightmap.Load(heightmapPrefix)
		if err != nil {
			log.Printf("Warning: could not load heightmap, using default elevation: %s", err.Error())
			grid = nil
		} else {
			log.Printf("Loaded heightmap: %dx%d", grid.Width, grid.Height)
		}
	}

	return &build.Batch{
		Config:   config,
		Proj:     geo.NewProjector(origin),
		Sampler:  heightmap.NewSampler(grid),
		Progress: true,
	}, nil
}

func exportMeshes(output, name string, meshes []*mesh.Mesh) error {
	err := export.WriteGLB(output, name, meshes)
	if err != nil {
		return fmt.Errorf("Failed to export: %s\n", err.Error())
	}

	merged := mesh.Concat(meshes)
	min, max := merged.Bounds()
	log.Printf("Exported to %s", output)
	log.Printf("  Vertices: %d", len(merged.Vertices))
	log.Printf("  Faces: %d", len(merged.Faces))
	log.Printf("  Bounds: [%.1f %.1f %.1f] - [%.1f %.1f %.1f]",
		min[0], min[1], min[2], max[0], max[1], max[2])
	return nil
}
