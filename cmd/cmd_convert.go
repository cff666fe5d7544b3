package cmd

import (
	"fmt"

	"github.com/ashesandaether/worldbuilder/terrain"
)

type CmdConvert struct {
	global *GlobalOptions
}

func init() {
	_, err := parser.AddCommand("convert",
		"Convert a DEM GeoTIFF to a heightmap",
		"Convert a GeoTIFF elevation tile into the heightmap pair (.json + .bin) the builders sample",
		&CmdConvert{global: &globalOpts})
	if err != nil {
		panic(err)
	}
}

func (cmd *CmdConvert) Usage() string {
	return "input.tif output-prefix"
}

func (cmd *CmdConvert) Execute(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("Input file or output prefix not specified, Usage: %s", cmd.Usage())
	}

	_, err := terrain.ConvertGeoTIFF(args[0], args[1])
	if err != nil {
		return fmt.Errorf("Failed to convert: %s\n", err.Error())
	}
	return nil
}
