package terrain

import (
	"fmt"
	"log"
	"math"

	"github.com/lukeroth/gdal"

	"github.com/ashesandaether/worldbuilder/heightmap"
)

// ConvertGeoTIFF reads a DEM GeoTIFF and writes it as a heightmap pair
// (<outPrefix>.json + <outPrefix>.bin). Samples stay in meters; nodata
// pixels become 0 (sea level), matching how the rest of the pipeline
// treats unknown ground.
func ConvertGeoTIFF(input, outPrefix string) (*heightmap.Grid, error) {
	ds, err := gdal.Open(input, gdal.ReadOnly)
	if err != nil {
		return nil, err
	}
	defer ds.Close()

	gt := ds.GeoTransform()
	if gt[2] != 0 || gt[4] != 0 {
		return nil, fmt.Errorf("Rotated rasters are not supported: %s", input)
	}
	// North-up rasters have a negative row step.
	pixelSize := gt[1]
	if math.Abs(math.Abs(gt[5])-pixelSize) > pixelSize*0.01 {
		return nil, fmt.Errorf("Non-square pixels: %f x %f", gt[1], gt[5])
	}

	width := ds.RasterXSize()
	height := ds.RasterYSize()

	band := ds.RasterBand(1)
	nodata, hasNodata := band.NoDataValue()

	samples := make([]float32, width*height)
	err = band.IO(gdal.Read, 0, 0, width, height, samples, width, height, 0, 0)
	if err != nil {
		return nil, err
	}

	if hasNodata {
		replaced := 0
		for i, v := range samples {
			if float64(v) == nodata || math.IsNaN(float64(v)) {
				samples[i] = 0
				replaced++
			}
		}
		if replaced > 0 {
			log.Printf("Replaced %d nodata samples", replaced)
		}
	}

	grid, err := heightmap.NewGrid(gt[3], gt[0], pixelSize, width, height, samples)
	if err != nil {
		return nil, err
	}

	err = grid.Write(outPrefix)
	if err != nil {
		return nil, err
	}

	log.Printf("Wrote heightmap %s: %dx%d, %.6f°/px", outPrefix, width, height, pixelSize)
	return grid, nil
}
