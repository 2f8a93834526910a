package main
import (
	"os"
	"fmt"
	"context"

	"github.com/urfave/cli/v3"
	"bpcs/config"
	"bpcs/util"
)

const (
	ConfigFlag = "config"
)

func main() {
	if err := newApp().Run( context.Background(), os.Args ); err != nil {
		fatal( err )
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name: "bpcs",
		Usage: "hide files in images with bit-plane complexity segmentation",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name: ConfigFlag,
				Aliases: []string{"c"},
				Usage: "YAML configuration file",
			},
			&cli.BoolFlag{
				Name: "quiet",
				Aliases: []string{"q"},
				Usage: "log errors only",
			},
		},
		Commands: []*cli.Command{
			encodeCmd(),
			decodeCmd(),
			capacityCmd(),
			genconfCmd(),
		},
	}
}

// loadConfig reads the configuration file if one was given, defaults otherwise.
func loadConfig( cmd *cli.Command ) (*config.FullConfig, *util.Logger, error) {
	conf := config.DefaultConfig()
	if filename := cmd.String( ConfigFlag ); filename != "" {
		var err error
		conf, err = config.LoadConfig( filename )
		if err != nil {
			return nil, nil, err
		}
	}
	if cmd.Bool( "quiet" ) {
		conf.Logger.Mode = util.Error
	}
	return conf, util.NewLogger( &conf.Logger ), nil
}

func fatal( args ...any ) {
	fmt.Fprintln( os.Stderr, args... )
	os.Exit(1)
}
