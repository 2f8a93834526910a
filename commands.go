package main
import (
	"os"
	"fmt"
	"context"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/urfave/cli/v3"
	"bpcs/config"
	"bpcs/stegano"
	"bpcs/stegano/bpcs"
	"bpcs/util"
)

func thresholdFlag( dst *float64 ) cli.Flag {
	return &cli.FloatFlag{
		Name: "threshold",
		Aliases: []string{"t"},
		Usage: "complexity threshold of noise-like blocks, must match on both sides",
		Value: bpcs.DefaultThreshold,
		Destination: dst,
	}
}

func encodeCmd() *cli.Command {
	var (
		output		string
		threshold	float64
		noFlip		bool
	)
	return &cli.Command{
		Name: "encode",
		Usage: "hide a file in a carrier image (or in an image picked from a folder)",
		ArgsUsage: "<carrier image|folder> <secret file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name: "output",
				Aliases: []string{"o"},
				Usage: "stego image to write; png, bmp, tiff or qoi",
				Destination: &output,
			},
			thresholdFlag( &threshold ),
			&cli.BoolFlag{
				Name: "no-flip",
				Usage: "do not apply the orientation transform to the stego image",
				Destination: &noFlip,
			},
		},
		Action: func( ctx context.Context, cmd *cli.Command ) error {
			if cmd.Args().Len() != 2 {
				return cli.ShowSubcommandHelp( cmd )
			}
			conf, logger, err := loadConfig( cmd )
			if err != nil {
				return err
			}
			opts := stegano.OptionsFromConfig( conf, logger )
			if cmd.IsSet( "threshold" ) {
				opts.Threshold = threshold
			}
			if cmd.IsSet( "no-flip" ) {
				opts.FlipOutput = !noFlip
			}
			if output == "" {
				output = filepath.Join( conf.StegConfig.OutputDir, conf.StegConfig.StegoFile )
			}
			_, err = stegano.EncodeFile( cmd.Args().Get(0), cmd.Args().Get(1), output,
				conf.StegConfig.CarrierExtensions, opts )
			return err
		},
	}
}

func decodeCmd() *cli.Command {
	var (
		outputDir	string
		threshold	float64
		keepFlips	bool
		verbose		bool
	)
	return &cli.Command{
		Name: "decode",
		Usage: "recover a hidden file from a stego image",
		ArgsUsage: "<stego image>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name: "output-dir",
				Aliases: []string{"d"},
				Usage: "directory of the recovered file",
				Destination: &outputDir,
			},
			thresholdFlag( &threshold ),
			&cli.BoolFlag{
				Name: "no-undo-flips",
				Usage: "read the image as stored before trying the reversed orientation",
				Destination: &keepFlips,
			},
			&cli.BoolFlag{
				Name: "verbose",
				Aliases: []string{"v"},
				Usage: "log per-plane progress",
				Destination: &verbose,
			},
		},
		Action: func( ctx context.Context, cmd *cli.Command ) error {
			if cmd.Args().Len() != 1 {
				return cli.ShowSubcommandHelp( cmd )
			}
			conf, logger, err := loadConfig( cmd )
			if err != nil {
				return err
			}
			opts := stegano.OptionsFromConfig( conf, logger )
			opts.Verbose = verbose
			if cmd.IsSet( "threshold" ) {
				opts.Threshold = threshold
			}
			if cmd.IsSet( "no-undo-flips" ) {
				opts.UndoFlips = !keepFlips
			}
			if outputDir != "" {
				opts.OutputDir = outputDir
			}
			name, _, err := stegano.DecodeFile( cmd.Args().Get(0), opts )
			if err != nil {
				return err
			}
			fmt.Println( name )
			return nil
		},
	}
}

type capacityEntry struct {
	File		string		`json:"file"`
	Capacity	int		`json:"capacity_bytes"`
	Report		*bpcs.Report	`json:"report,omitempty"`
	Error		string		`json:"error,omitempty"`
}

func capacityCmd() *cli.Command {
	var (
		threshold	float64
		asJSON		bool
		planes		bool
	)
	return &cli.Command{
		Name: "capacity",
		Usage: "report how many bytes an image (or every image of a folder) can hide",
		ArgsUsage: "<image|folder>",
		Flags: []cli.Flag{
			thresholdFlag( &threshold ),
			&cli.BoolFlag{ Name: "json", Usage: "print JSON", Destination: &asJSON },
			&cli.BoolFlag{ Name: "planes", Usage: "include per-plane block counts", Destination: &planes },
		},
		Action: func( ctx context.Context, cmd *cli.Command ) error {
			if cmd.Args().Len() != 1 {
				return cli.ShowSubcommandHelp( cmd )
			}
			conf, _, err := loadConfig( cmd )
			if err != nil {
				return err
			}
			if cmd.IsSet( "threshold" ) == false {
				threshold = conf.StegConfig.Threshold
			}

			target := cmd.Args().Get(0)
			files := []string{ target }
			if util.IsDir( target ) {
				files, err = util.ReadFiles( target, conf.StegConfig.CarrierExtensions )
				if err != nil {
					return err
				}
			}
			entries := make( []capacityEntry, 0, len(files) )
			for _, f := range files {
				entries = append( entries, capacityOf( f, threshold, planes ) )
			}
			return printCapacity( entries, asJSON )
		},
	}
}

func capacityOf( filename string, threshold float64, planes bool ) capacityEntry {
	entry := capacityEntry{ File: filename }
	report, err := stegano.CapacityFile( filename, threshold )
	if err != nil {
		entry.Error = err.Error()
		return entry
	}
	entry.Capacity = report.CapacityBytes()
	if planes {
		entry.Report = report
	}
	return entry
}

func printCapacity( entries []capacityEntry, asJSON bool ) error {
	if asJSON {
		data, err := json.MarshalIndent( entries, "", "  " )
		if err != nil {
			return err
		}
		fmt.Println( string(data) )
		return nil
	}
	for _, e := range entries {
		if e.Error != "" {
			fmt.Printf("%s: %s\n", e.File, e.Error)
			continue
		}
		fmt.Printf("%s: %d bytes\n", e.File, e.Capacity)
		if e.Report == nil {
			continue
		}
		for _, ps := range e.Report.Planes {
			fmt.Printf("\t%s bit %d: %d noise-like, %d informative\n", ps.Channel, ps.Bit, ps.Noise, ps.Informative)
		}
	}
	return nil
}

func genconfCmd() *cli.Command {
	return &cli.Command{
		Name: "genconf",
		Usage: "write the default configuration",
		ArgsUsage: "<file>",
		Action: func( ctx context.Context, cmd *cli.Command ) error {
			if cmd.Args().Len() != 1 {
				return cli.ShowSubcommandHelp( cmd )
			}
			filename := cmd.Args().Get(0)
			if _, err := os.Stat( filename ); err == nil {
				return fmt.Errorf("%s already exists", filename)
			}
			if err := config.SaveConfig( filename, config.DefaultConfig() ); err != nil {
				return err
			}
			fmt.Println("[+] Default configuration written to", filename)
			return nil
		},
	}
}
