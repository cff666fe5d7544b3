// Package heightmap loads raster elevation grids and answers point
// queries against them.
//
// A heightmap on disk is a pair of files sharing a prefix:
// <prefix>.json holds the metadata record, <prefix>.bin holds
// width×height float32 samples in meters, row-major, row 0 being the
// northernmost row.
package heightmap

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/ashesandaether/worldbuilder/geo"
)

// Grid is an immutable elevation raster. Row 0 is the northernmost row,
// rows increase southward.
type Grid struct {
	OriginLat float64 `json:"originLat"`
	OriginLon float64 `json:"originLon"`
	PixelSize float64 `json:"pixelSizeDeg"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`

	samples []float32
}

func NewGrid(originLat, originLon, pixelSize float64, width, height int, samples []float32) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("Bad grid dimensions: %dx%d", width, height)
	}
	if len(samples) != width*height {
		return nil, fmt.Errorf("Expected %d samples, got %d", width*height, len(samples))
	}
	if pixelSize <= 0 {
		return nil, fmt.Errorf("Bad pixel size: %f", pixelSize)
	}
	return &Grid{
		OriginLat: originLat,
		OriginLon: originLon,
		PixelSize: pixelSize,
		Width:     width,
		Height:    height,
		samples:   samples,
	}, nil
}

// Load reads <prefix>.json and <prefix>.bin.
func Load(prefix string) (*Grid, error) {
	data, err := ioutil.ReadFile(prefix + ".json")
	if err != nil {
		return nil, err
	}

	meta := &Grid{}
	err = json.Unmarshal(data, meta)
	if err != nil {
		return nil, err
	}
	if meta.Width <= 0 || meta.Height <= 0 {
		return nil, fmt.Errorf("Bad grid dimensions in %s.json: %dx%d", prefix, meta.Width, meta.Height)
	}

	f, err := os.Open(prefix + ".bin")
	if err != nil {
		return nil, err
	}
	defer f.Close()

	samples := make([]float32, meta.Width*meta.Height)
	err = binary.Read(f, binary.LittleEndian, samples)
	if err != nil {
		return nil, err
	}

	return NewGrid(meta.OriginLat, meta.OriginLon, meta.PixelSize, meta.Width, meta.Height, samples)
}

// Write stores the grid as <prefix>.json and <prefix>.bin.
func (g *Grid) Write(prefix string) error {
	data, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return err
	}
	err = ioutil.WriteFile(prefix+".json", data, 0644)
	if err != nil {
		return err
	}

	f, err := os.Create(prefix + ".bin")
	if err != nil {
		return err
	}
	defer f.Close()

	return binary.Write(f, binary.LittleEndian, g.samples)
}

// At returns the raw sample in meters at a grid node.
func (g *Grid) At(row, col int) float64 {
	return float64(g.samples[row*g.Width+col])
}

// Sampler answers elevation queries against a grid. A nil grid is a
// valid state: every query misses and callers fall back to their
// default elevation.
type Sampler struct {
	grid *Grid
}

func NewSampler(grid *Grid) *Sampler {
	return &Sampler{grid: grid}
}

// Sample returns the interpolated elevation in feet at a geodetic
// point. The second return value is false when no grid is loaded or
// the point falls outside the interpolatable region. No clamping, no
// extrapolation.
func (s *Sampler) Sample(pt geo.Point) (float64, bool) {
	g := s.grid
	if g == nil {
		return 0, false
	}

	col := (pt.Lon - g.OriginLon) / g.PixelSize
	row := (g.OriginLat - pt.Lat) / g.PixelSize

	if col < 0 || col >= float64(g.Width-1) || row < 0 || row >= float64(g.Height-1) {
		return 0, false
	}

	c0 := int(col)
	r0 := int(row)
	dc := col - float64(c0)
	dr := row - float64(r0)

	v00 := g.At(r0, c0)
	v01 := g.At(r0, c0+1)
	v10 := g.At(r0+1, c0)
	v11 := g.At(r0+1, c0+1)

	v0 := v00*(1-dc) + v01*dc
	v1 := v10*(1-dc) + v11*dc
	meters := v0*(1-dr) + v1*dr

	return meters * geo.MetersToFeet, true
}
