package config

import (
	"os"
	"fmt"
	"gopkg.in/yaml.v3"

	"bpcs/stegano/bpcs"
	"bpcs/util"
)

const (
	DefaultStegoFile = "stego_image.png"
	DefaultRecoveredBase = "recovered_secret"
)

/*
 * Configuration for steganography. Encoder and decoder must agree on the
 * threshold, otherwise the decoder segments planes differently and finds
 * no frame.
 */
type SteganoConfig struct {
	Threshold		float64		`yaml:"threshold"`
	UndoFlips		bool		`yaml:"undo_flips"`	// decode: reverse the orientation transform first
	FlipOutput		bool		`yaml:"flip_output"`	// encode: apply the orientation transform
	StegoFile		string		`yaml:"stego_file"`
	RecoveredBase		string		`yaml:"recovered_base"`
	OutputDir		string		`yaml:"output_dir"`
	CarrierExtensions	[]string	`yaml:"carrier_extensions"`	// scanned when the carrier is a folder
}

type FullConfig struct {
	StegConfig	SteganoConfig		`yaml:"steganography_config"`
	Logger		util.LoggerInfo		`yaml:"logger_config"`
}

func DefaultConfig() *FullConfig {
	return &FullConfig{
		StegConfig: SteganoConfig{
			Threshold: bpcs.DefaultThreshold,
			UndoFlips: true,
			FlipOutput: true,
			StegoFile: DefaultStegoFile,
			RecoveredBase: DefaultRecoveredBase,
			OutputDir: ".",
			CarrierExtensions: []string{ "png", "bmp", "tif", "tiff", "qoi", "jpg", "jpeg", "gif", "webp" },
		},
		Logger: util.LoggerInfo{
			Filename: "",
			IsColored: util.ColorSupported(),
			SaveTime: false,
			Mode: util.Error | util.Warning | util.Info,
		},
	}
}

func(c *FullConfig) Validate() error {
	if err := bpcs.ValidateThreshold( c.StegConfig.Threshold ); err != nil {
		return err
	}
	if c.StegConfig.StegoFile == "" {
		return fmt.Errorf("stego_file must not be empty")
	}
	if c.StegConfig.RecoveredBase == "" {
		return fmt.Errorf("recovered_base must not be empty")
	}
	return nil
}

/*
 * Functions for loading and saving configuration in YAML format.
 * Keys missing from the file keep their default values.
 */
func LoadConfig( filename string ) (*FullConfig, error) {
	data, err := os.ReadFile( filename )
	if err != nil {
		return nil, err
	}

	conf := DefaultConfig()
	if err := yaml.Unmarshal( data, conf ); err != nil {
		return nil, fmt.Errorf("Failed to parse %s: %w", filename, err)
	}
	if err := conf.Validate(); err != nil {
		return nil, fmt.Errorf("Invalid configuration %s: %w", filename, err)
	}
	return conf, nil
}

func SaveConfig( filename string, c *FullConfig ) error {
	data, err := yaml.Marshal( *c )
	if err != nil {
		return err
	}
	return os.WriteFile( filename, data, 0600 )
}
