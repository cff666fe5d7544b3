package build

import (
	"github.com/cheggaaa/pb"

	"github.com/ashesandaether/worldbuilder/geo"
	"github.com/ashesandaether/worldbuilder/heightmap"
	"github.com/ashesandaether/worldbuilder/mesh"
	"github.com/ashesandaether/worldbuilder/model"
)

// Stats counts the outcome of a batch. Failures are per-feature and
// never abort a run, they only show up here.
type Stats struct {
	Built   int
	Skipped int
}

// Batch drives the builders over a feature list: a strict sequential
// fold, one feature at a time, no shared mutable state beyond the
// read-only heightmap.
type Batch struct {
	Config  *Config
	Proj    *geo.Projector
	Sampler *heightmap.Sampler

	// Progress reports a terminal progress bar when set.
	Progress bool
}

// Buildings extrudes every footprint in the list. Features that fail
// to produce a solid are counted and skipped.
func (b *Batch) Buildings(features []model.Feature) ([]*mesh.Mesh, Stats) {
	resolver := b.Config.Resolver()
	builder := &FootprintBuilder{
		Proj:    b.Proj,
		MinArea: b.Config.MinFootprintArea,
	}

	meshes := make([]*mesh.Mesh, 0, len(features))
	stats := Stats{}
	bar := b.startBar(len(features))

	for _, f := range features {
		if bar != nil {
			bar.Increment()
		}

		points := f.Points()
		if len(points) < 3 {
			stats.Skipped++
			continue
		}

		height := resolver.Height(f.Tags)

		base := b.Config.DefaultElevation
		if e, ok := b.Sampler.Sample(geo.Centroid(points)); ok {
			base = e
		}

		m, ok := builder.Build(points, height, base)
		if !ok {
			stats.Skipped++
			continue
		}
		meshes = append(meshes, m)
		stats.Built++
	}

	if bar != nil {
		bar.Finish()
	}
	return meshes, stats
}

// Roads builds a strip for every centerline in the list.
func (b *Batch) Roads(features []model.Feature) ([]*mesh.Mesh, Stats) {
	resolver := b.Config.Resolver()
	builder := &RoadBuilder{
		Proj:             b.Proj,
		Sampler:          b.Sampler,
		DefaultElevation: b.Config.DefaultElevation,
		SurfaceOffset:    b.Config.RoadSurfaceOffset,
	}

	meshes := make([]*mesh.Mesh, 0, len(features))
	stats := Stats{}
	bar := b.startBar(len(features))

	for _, f := range features {
		if bar != nil {
			bar.Increment()
		}

		points := f.Points()
		if len(points) < 2 {
			stats.Skipped++
			continue
		}

		m, ok := builder.Build(points, resolver.Width(f.Tags))
		if !ok {
			stats.Skipped++
			continue
		}
		meshes = append(meshes, m)
		stats.Built++
	}

	if bar != nil {
		bar.Finish()
	}
	return meshes, stats
}

func (b *Batch) startBar(total int) *pb.ProgressBar {
	if !b.Progress {
		return nil
	}
	return pb.StartNew(total)
}
