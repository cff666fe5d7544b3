package cmd

import (
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/ashesandaether/worldbuilder/build"
)

type GlobalOptions struct {
	Config string `short:"c" long:"config" description:"Pipeline config file (yaml, optional)"`
}

var globalOpts = GlobalOptions{}
var parser = flags.NewParser(&globalOpts, flags.HelpFlag|flags.PassDoubleDash)

func Run() error {
	_, err := parser.Parse()
	if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
		parser.WriteHelp(os.Stdout)
		return nil
	}
	return err
}

func (g *GlobalOptions) LoadConfig() (*build.Config, error) {
	if g.Config == "" {
		return build.DefaultConfig(), nil
	}
	return build.LoadConfig(g.Config)
}

// milesToMeters converts the radius flags shared by the fetch commands.
func milesToMeters(miles float64) float64 {
	return miles * 1609.344
}
