package stegano
import (
	"os"
	"fmt"
	"errors"
	"image"
	"path/filepath"

	"bpcs/config"
	"bpcs/stegano/bpcs"
	"bpcs/stegano/img"
	"bpcs/util"
)

var ErrNoCarrier = errors.New("no carrier can hold the payload")

/*
 * Options of a single encode or decode call. The zero value is not usable,
 * start from DefaultOptions or OptionsFromConfig.
 */
type Options struct {
	Threshold	float64
	FlipOutput	bool
	UndoFlips	bool
	Verbose		bool
	OutputDir	string
	RecoveredBase	string
	Logger		*util.Logger
}

func DefaultOptions() Options {
	return OptionsFromConfig( config.DefaultConfig(), util.Discard() )
}

func OptionsFromConfig( conf *config.FullConfig, logger *util.Logger ) Options {
	return Options{
		Threshold: conf.StegConfig.Threshold,
		FlipOutput: conf.StegConfig.FlipOutput,
		UndoFlips: conf.StegConfig.UndoFlips,
		OutputDir: conf.StegConfig.OutputDir,
		RecoveredBase: conf.StegConfig.RecoveredBase,
		Logger: logger,
	}
}

func(o Options) logger() *util.Logger {
	if o.Logger == nil {
		return util.Discard()
	}
	return o.Logger
}

func logPlanes( logger *util.Logger, report *bpcs.Report ) {
	for _, ps := range report.Planes {
		logger.LogInfo( fmt.Sprintf("%s-channel bitplane %d: %d noise-like blocks, %d informative blocks",
			ps.Channel, ps.Bit, ps.Noise, ps.Informative) )
	}
}

/*
 * Hide embeds payload into the carrier image and returns the stego image
 * encoded in format. Nothing is returned if the carrier is too small.
 */
func Hide( carrier []byte, payload []byte, ext string, format string, opts Options ) ([]byte, *bpcs.Report, error) {
	logger := opts.logger()
	ch, err := img.Load( carrier )
	if err != nil {
		return nil, nil, err
	}

	frame := bpcs.NewFrame( payload, ext )
	logger.LogInfo( fmt.Sprintf("Secret size: %d bytes, extension %q, %d chunks with header",
		len(payload), frame.Extension, bpcs.ChunkCount( len(payload) )) )

	stego, report, err := bpcs.Embed( ch, frame, opts.Threshold )
	if report != nil {
		logPlanes( logger, report )
		logger.LogInfo( fmt.Sprintf("Total secret blocks embedded: %d/%d", report.Embedded, report.Total) )
	}
	if err != nil {
		logger.LogError( err )
		return nil, report, err
	}

	var m image.Image = img.FromChannels( stego )
	if opts.FlipOutput {
		m = img.Orient( m )
	}
	data, err := img.Encode( m, format )
	if err != nil {
		return nil, report, err
	}
	return data, report, nil
}

/*
 * Reveal recovers the frame hidden in a stego image. If the marker is not
 * found, the other orientation is tried once.
 */
func Reveal( stego []byte, opts Options ) (*bpcs.Frame, *bpcs.Report, error) {
	logger := opts.logger()
	m, _, err := img.Decode( stego )
	if err != nil {
		return nil, nil, err
	}

	frame, report, err := reveal( m, opts.UndoFlips, opts )
	if errors.Is( err, bpcs.ErrMarkerNotFound ) {
		logger.LogWarning( fmt.Sprintf("Marker not found with undo_flips=%v, retrying with undo_flips=%v",
			opts.UndoFlips, !opts.UndoFlips) )
		frame, report, err = reveal( m, !opts.UndoFlips, opts )
	}
	if err != nil {
		return nil, report, err
	}
	return frame, report, nil
}

func reveal( m image.Image, undoFlips bool, opts Options ) (*bpcs.Frame, *bpcs.Report, error) {
	logger := opts.logger()
	if undoFlips {
		if opts.Verbose {
			logger.LogInfo( "Undoing encoder flips (left-right, then top-bottom)" )
		}
		m = img.Unorient( m )
	}
	frame, report, err := bpcs.Extract( img.ToChannels( m ), opts.Threshold )
	if opts.Verbose && report != nil {
		logPlanes( logger, report )
		logger.LogInfo( fmt.Sprintf("Collected %d blocks (%d bits)", report.NoiseBlocks, report.CapacityBits()) )
		if report.MarkerAt >= 0 {
			logger.LogInfo( fmt.Sprintf("Marker found at bit %d (block %d)",
				report.MarkerAt, report.MarkerAt / bpcs.ChunkBits) )
		}
		if err == nil {
			logger.LogInfo( fmt.Sprintf("Detected extension %q, size %d bytes", frame.Extension, len(frame.Payload)) )
		}
	}
	return frame, report, err
}

/*
 * EncodeFile hides secretPath in carrierPath and writes the stego image to
 * outPath, in the format named by its extension. carrierPath may be a
 * folder, then a carrier large enough is picked from it at random.
 */
func EncodeFile( carrierPath, secretPath, outPath string, exts []string, opts Options ) (*bpcs.Report, error) {
	logger := opts.logger()
	format := img.FormatFromPath( outPath )
	if format == "" {
		return nil, fmt.Errorf("%w: %s", img.ErrUnsupportedFormat, outPath)
	}
	payload, err := os.ReadFile( secretPath )
	if err != nil {
		return nil, err
	}

	if util.IsDir( carrierPath ) {
		carrierPath, err = PickCarrier( carrierPath, exts, len(payload), opts.Threshold )
		if err != nil {
			return nil, err
		}
		logger.LogInfo( fmt.Sprintf("Picked carrier %s", carrierPath) )
	}
	carrier, err := os.ReadFile( carrierPath )
	if err != nil {
		return nil, err
	}

	data, report, err := Hide( carrier, payload, util.SplitExtension( secretPath ), format, opts )
	if err != nil {
		return report, err
	}
	if err = os.WriteFile( outPath, data, 0644 ); err != nil {
		return report, err
	}
	logger.LogInfo( fmt.Sprintf("Secret embedded, saved as %s", outPath) )
	return report, nil
}

// DecodeFile writes the recovered payload into opts.OutputDir and returns its path.
func DecodeFile( stegoPath string, opts Options ) (string, *bpcs.Report, error) {
	logger := opts.logger()
	data, err := os.ReadFile( stegoPath )
	if err != nil {
		return "", nil, err
	}
	frame, report, err := Reveal( data, opts )
	if err != nil {
		logger.LogError( err )
		return "", report, err
	}

	name := filepath.Join( opts.OutputDir, util.RecoveredName( opts.RecoveredBase, frame.Extension ) )
	if err = os.WriteFile( name, frame.Payload, 0600 ); err != nil {
		return "", report, err
	}
	if opts.Verbose {
		logger.LogInfo( fmt.Sprintf("Recovered %d bytes to %s", len(frame.Payload), name) )
	}
	return name, report, nil
}

func CapacityFile( filename string, threshold float64 ) (*bpcs.Report, error) {
	ch, err := img.LoadFile( filename )
	if err != nil {
		return nil, err
	}
	return bpcs.Capacity( ch, threshold )
}

// PickCarrier tries the supported images of folder in random order and
// returns the first one with room for payloadLen bytes.
func PickCarrier( folder string, exts []string, payloadLen int, threshold float64 ) (string, error) {
	files, err := util.ReadFiles( folder, exts )
	if err != nil {
		return "", err
	}
	need := bpcs.ChunkCount( payloadLen )
	for len(files) > 0 {
		var file string
		file, files = util.PickFileAtRandom( files )
		report, err := CapacityFile( file, threshold )
		if err != nil {
			continue
		}
		if report.NoiseBlocks >= need {
			return file, nil
		}
	}
	return "", fmt.Errorf("%w: %d bytes, folder %s", ErrNoCarrier, payloadLen, folder)
}
