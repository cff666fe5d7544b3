package build

import (
	"io/ioutil"

	yaml "gopkg.in/yaml.v2"

	"github.com/ashesandaether/worldbuilder/tags"
)

// Config gathers every tunable constant of a run: the tag→dimension
// tables, defaults and geometric thresholds. It is built once, never
// mutated, and passed explicitly into the builders.
type Config struct {
	// Building heights by building type, feet.
	BuildingHeights map[string]float64 `yaml:"building_heights"`
	// Road widths by highway type, feet.
	RoadWidths map[string]float64 `yaml:"road_widths"`

	DefaultHeight float64 `yaml:"default_height"`
	DefaultWidth  float64 `yaml:"default_width"`
	FeetPerLevel  float64 `yaml:"feet_per_level"`
	FeetPerLane   float64 `yaml:"feet_per_lane"`

	// Footprints below this area are digitization slivers, square feet.
	MinFootprintArea float64 `yaml:"min_footprint_area"`
	// Lift road surfaces off the terrain to avoid z-fighting, feet.
	RoadSurfaceOffset float64 `yaml:"road_surface_offset"`
	// Ground height used where the heightmap has no answer, feet.
	DefaultElevation float64 `yaml:"default_elevation"`
}

func DefaultConfig() *Config {
	return &Config{
		BuildingHeights: map[string]float64{
			"house":       25,
			"residential": 30,
			"apartments":  45,
			"commercial":  35,
			"retail":      20,
			"industrial":  40,
			"warehouse":   30,
			"garage":      12,
			"shed":        10,
			"barn":        35,
			"church":      50,
			"school":      35,
			"hospital":    60,
			"yes":         25, // generic building tag
		},
		RoadWidths: map[string]float64{
			// Major roads
			"motorway":       48,
			"motorway_link":  24,
			"trunk":          40,
			"trunk_link":     20,
			"primary":        36,
			"primary_link":   18,
			"secondary":      30,
			"secondary_link": 15,
			"tertiary":       24,
			"tertiary_link":  12,

			// Minor roads
			"residential":   20,
			"unclassified":  18,
			"service":       12,
			"living_street": 16,

			// Paths
			"pedestrian": 10,
			"footway":    6,
			"path":       4,
			"cycleway":   8,
			"bridleway":  8,
			"steps":      6,
			"track":      10,

			"road": 20,
		},

		DefaultHeight: 25,
		DefaultWidth:  16,
		FeetPerLevel:  10,
		FeetPerLane:   10,

		MinFootprintArea:  10,
		RoadSurfaceOffset: 0.1,
		DefaultElevation:  0,
	}
}

// LoadConfig reads a yaml file over the defaults, so a config file only
// needs to name what it changes.
func LoadConfig(configPath string) (*Config, error) {
	data, err := ioutil.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, err
	}

	return config, nil
}

// Resolver builds the tag resolver backed by this config's tables.
func (c *Config) Resolver() *tags.Resolver {
	return &tags.Resolver{
		FeetPerLevel:    c.FeetPerLevel,
		FeetPerLane:     c.FeetPerLane,
		DefaultHeight:   c.DefaultHeight,
		DefaultWidth:    c.DefaultWidth,
		BuildingHeights: c.BuildingHeights,
		RoadWidths:      c.RoadWidths,
	}
}
