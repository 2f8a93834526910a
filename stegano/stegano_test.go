package stegano
import (
	"os"
	"bytes"
	"errors"
	"strings"
	"testing"
	"math/rand"
	"path/filepath"

	"bpcs/stegano/bpcs"
	"bpcs/stegano/img"
	"bpcs/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeCarrier stores a seeded noise image, which is noise-like in every plane.
func writeCarrier( t *testing.T, dir, name string, w, h int, seed int64 ) string {
	t.Helper()
	rnd := rand.New( rand.NewSource( seed ) )
	ch := bpcs.NewChannels( h, w )
	for _, g := range ch {
		rnd.Read( g.Pix )
	}
	data, err := img.Save( ch, img.FormatFromPath( name ) )
	require.NoError( t, err )
	path := filepath.Join( dir, name )
	require.NoError( t, os.WriteFile( path, data, 0600 ) )
	return path
}

func writeSecret( t *testing.T, dir, name string, data []byte ) string {
	t.Helper()
	path := filepath.Join( dir, name )
	require.NoError( t, os.WriteFile( path, data, 0600 ) )
	return path
}

func testOptions( dir string ) Options {
	opts := DefaultOptions()
	opts.OutputDir = dir
	return opts
}

func TestEncodeDecodeFileScenario( t *testing.T ) {
	dir := t.TempDir()
	carrier := writeCarrier( t, dir, "carrier.png", 64, 64, 1 )
	secret := writeSecret( t, dir, "secret.txt", []byte{0x41, 0x42, 0x43} )
	out := filepath.Join( dir, "stego_image.png" )
	opts := testOptions( dir )

	report, err := EncodeFile( carrier, secret, out, nil, opts )
	require.NoError( t, err )
	assert.Equal( t, report.Total, report.Embedded )

	name, _, err := DecodeFile( out, opts )
	require.NoError( t, err )
	assert.Equal( t, filepath.Join( dir, "recovered_secret.txt" ), name )
	assert.True( t, strings.HasSuffix( name, ".txt" ) )

	data, err := os.ReadFile( name )
	require.NoError( t, err )
	assert.Equal( t, []byte("ABC"), data )
}

func TestDecodeRetriesOtherOrientation( t *testing.T ) {
	tests := []struct{
		flip	bool
		undo	bool
	}{
		{true, true},
		{false, false},
		{false, true},
		{true, false},
	}
	dir := t.TempDir()
	carrier := writeCarrier( t, dir, "carrier.png", 64, 48, 2 )
	payload := bytes.Repeat( []byte("orientation "), 40 )

	for _, tc := range tests {
		opts := testOptions( dir )
		opts.FlipOutput = tc.flip
		opts.UndoFlips = tc.undo

		carrierData, err := os.ReadFile( carrier )
		require.NoError( t, err )
		stego, _, err := Hide( carrierData, payload, "md", img.PNG, opts )
		require.NoError( t, err )

		frame, _, err := Reveal( stego, opts )
		if err != nil {
			t.Errorf("flip=%v undo=%v: %v", tc.flip, tc.undo, err)
			continue
		}
		assert.Equal( t, payload, frame.Payload )
		assert.Equal( t, "md", frame.Extension )
	}
}

func TestDecodeImageWithoutPayload( t *testing.T ) {
	dir := t.TempDir()
	noise := writeCarrier( t, dir, "noise.png", 64, 64, 3 )

	name, _, err := DecodeFile( noise, testOptions( dir ) )
	assert.True( t, errors.Is( err, bpcs.ErrMarkerNotFound ), "got %v", err )
	assert.Empty( t, name )
	_, err = os.Stat( filepath.Join( dir, "recovered_secret" ) )
	assert.True( t, os.IsNotExist( err ) )
}

func TestEncodeCapacityExceeded( t *testing.T ) {
	dir := t.TempDir()
	carrier := writeCarrier( t, dir, "small.png", 16, 16, 4 )
	secret := writeSecret( t, dir, "big.bin", bytes.Repeat( []byte{1}, 2000 ) )
	out := filepath.Join( dir, "stego.png" )

	report, err := EncodeFile( carrier, secret, out, nil, testOptions( dir ) )
	assert.True( t, errors.Is( err, bpcs.ErrCapacityExceeded ), "got %v", err )
	require.NotNil( t, report )
	assert.Less( t, report.Embedded, report.Total )
	_, err = os.Stat( out )
	assert.True( t, os.IsNotExist( err ) )
}

func TestEncodeFileFormats( t *testing.T ) {
	dir := t.TempDir()
	carrier := writeCarrier( t, dir, "carrier.bmp", 40, 40, 5 )
	secret := writeSecret( t, dir, "secret", []byte("no extension here") )

	for _, out := range []string{ "stego.png", "stego.bmp", "stego.tiff", "stego.qoi" } {
		path := filepath.Join( dir, out )
		_, err := EncodeFile( carrier, secret, path, nil, testOptions( dir ) )
		require.NoError( t, err, out )

		name, _, err := DecodeFile( path, testOptions( dir ) )
		require.NoError( t, err, out )
		assert.Equal( t, filepath.Join( dir, "recovered_secret" ), name )
		data, err := os.ReadFile( name )
		require.NoError( t, err )
		assert.Equal( t, "no extension here", string(data) )
	}

	_, err := EncodeFile( carrier, secret, filepath.Join( dir, "stego.jpg" ), nil, testOptions( dir ) )
	assert.True( t, errors.Is( err, img.ErrLossyFormat ), "got %v", err )
}

func TestEncodeFromCarrierFolder( t *testing.T ) {
	dir := t.TempDir()
	folder := filepath.Join( dir, "decoys" )
	require.NoError( t, os.Mkdir( folder, 0700 ) )
	writeCarrier( t, folder, "tiny.png", 8, 8, 6 )
	big := writeCarrier( t, folder, "big.png", 64, 64, 7 )
	require.NoError( t, os.WriteFile( filepath.Join( folder, "readme.txt" ), []byte("x"), 0600 ) )

	exts := []string{ "png" }
	picked, err := PickCarrier( folder, exts, 500, bpcs.DefaultThreshold )
	require.NoError( t, err )
	assert.Equal( t, big, picked )

	_, err = PickCarrier( folder, exts, 1000000, bpcs.DefaultThreshold )
	assert.True( t, errors.Is( err, ErrNoCarrier ) )

	secret := writeSecret( t, dir, "notes.txt", bytes.Repeat( []byte("n"), 500 ) )
	out := filepath.Join( dir, "stego.png" )
	_, err = EncodeFile( folder, secret, out, exts, testOptions( dir ) )
	require.NoError( t, err )
	name, _, err := DecodeFile( out, testOptions( dir ) )
	require.NoError( t, err )
	data, _ := os.ReadFile( name )
	assert.Len( t, data, 500 )
}

func TestVerboseDecodeLogs( t *testing.T ) {
	dir := t.TempDir()
	carrier := writeCarrier( t, dir, "carrier.png", 32, 32, 8 )
	secret := writeSecret( t, dir, "s.txt", []byte("hi") )
	out := filepath.Join( dir, "stego.png" )
	_, err := EncodeFile( carrier, secret, out, nil, testOptions( dir ) )
	require.NoError( t, err )

	buf := new(bytes.Buffer)
	opts := testOptions( dir )
	opts.Verbose = true
	opts.Logger = util.NewLoggerTo( &util.LoggerInfo{ Mode: util.Info }, buf )
	_, _, err = DecodeFile( out, opts )
	require.NoError( t, err )

	logs := buf.String()
	assert.Contains( t, logs, "R-channel bitplane 7:" )
	assert.Contains( t, logs, "Marker found at bit 0 (block 0)" )
	assert.Contains( t, logs, "Recovered 2 bytes to" )
}

func TestCapacityFile( t *testing.T ) {
	dir := t.TempDir()
	carrier := writeCarrier( t, dir, "carrier.qoi", 24, 16, 9 )
	report, err := CapacityFile( carrier, bpcs.DefaultThreshold )
	require.NoError( t, err )
	assert.Len( t, report.Planes, 24 )
	assert.Equal( t, 24, report.Width )
	// 2 x 3 blocks per plane
	assert.LessOrEqual( t, report.NoiseBlocks, 24 * 6 )
	assert.Equal( t, report.NoiseBlocks * bpcs.ChunkBits / 8 - bpcs.HeaderSize, report.CapacityBytes() )
}
