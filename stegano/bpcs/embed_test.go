package bpcs
import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedExtractRoundTrip( t *testing.T ) {
	rnd := rand.New( rand.NewSource( 5 ) )
	big := make( []byte, 2000 )
	rnd.Read( big )

	tests := [][]byte{
		nil,
		[]byte{},
		[]byte("ABC"),
		bytes.Repeat( []byte{0}, 500 ),
		bytes.Repeat( []byte{0xff}, 500 ),
		big,
	}
	carrier := noisyChannels( 64, 64, 42 )
	for _, data := range tests {
		stego, report, err := Embed( carrier, NewFrame( data, "bin" ), DefaultThreshold )
		if err != nil {
			t.Fatalf("Failed to embed %d bytes: %v", len(data), err)
		}
		if report.Embedded != report.Total || report.Total != ChunkCount( len(data) ) {
			t.Errorf("Unexpected chunk counters: %d/%d", report.Embedded, report.Total)
		}
		f, _, err := Extract( stego, DefaultThreshold )
		if err != nil {
			t.Fatalf("Failed to extract %d bytes: %v", len(data), err)
		}
		if bytes.Equal( data, f.Payload ) == false || f.Extension != "bin" {
			t.Errorf("Steganography spoiled the data (%d bytes, ext %q)", len(data), f.Extension)
		}
	}
}

func TestEmbedScenarioABC( t *testing.T ) {
	stego, _, err := Embed( noisyChannels( 64, 64, 1 ), NewFrame( []byte{0x41, 0x42, 0x43}, "txt" ), DefaultThreshold )
	require.NoError( t, err )
	f, report, err := Extract( stego, DefaultThreshold )
	require.NoError( t, err )
	assert.Equal( t, []byte("ABC"), f.Payload )
	assert.Equal( t, "txt", f.Extension )
	assert.Equal( t, 0, report.MarkerAt )
}

func TestEmbedKeepsSegmentation( t *testing.T ) {
	carrier := noisyChannels( 32, 40, 9 )
	stego, _, err := Embed( carrier, NewFrame( bytes.Repeat( []byte{0}, 200 ), "" ), DefaultThreshold )
	require.NoError( t, err )
	for c := range carrier {
		before := Split( carrier[c] )
		after := Split( stego[c] )
		for k := 0; k < Planes; k++ {
			assert.Equal( t, Segment( before[k], DefaultThreshold ).Noise,
				Segment( after[k], DefaultThreshold ).Noise, "channel %d plane %d", c, k )
		}
	}
}

func TestEmbedCarriesRemainingPlanes( t *testing.T ) {
	carrier := noisyChannels( 64, 64, 2 )
	original := carrier.Clone()
	stego, report, err := Embed( carrier, NewFrame( []byte("ABC"), "txt" ), DefaultThreshold )
	require.NoError( t, err )

	// the carrier itself is untouched
	for c := range carrier {
		assert.Equal( t, original[c].Pix, carrier[c].Pix )
	}
	// three chunks all land in the MSB plane of R
	assert.Equal( t, 3, report.Planes[0].Chunks )
	require.Len( t, report.Planes, 3 * Planes )
	for _, ps := range report.Planes[1:] {
		assert.Zero( t, ps.Chunks )
	}
	for i := range stego[0].Pix {
		if ( stego[0].Pix[i] ^ carrier[0].Pix[i] ) & 0x7f != 0 {
			t.Fatalf("Lower planes of R were modified at %d", i)
		}
	}
	assert.Equal( t, carrier[1].Pix, stego[1].Pix )
	assert.Equal( t, carrier[2].Pix, stego[2].Pix )
}

func TestCapacityBoundary( t *testing.T ) {
	carrier := noisyChannels( 16, 16, 4 )
	capReport, err := Capacity( carrier, DefaultThreshold )
	require.NoError( t, err )
	blocks := capReport.NoiseBlocks
	require.Greater( t, blocks, 3 )

	exact := capReport.CapacityBytes()
	require.Equal( t, blocks, ChunkCount( exact ) )

	// exactly enough room
	data := bytes.Repeat( []byte{0x5a}, exact )
	stego, report, err := Embed( carrier, NewFrame( data, "dat" ), DefaultThreshold )
	require.NoError( t, err )
	assert.Equal( t, blocks, report.Embedded )
	f, _, err := Extract( stego, DefaultThreshold )
	require.NoError( t, err )
	assert.Equal( t, data, f.Payload )

	// one block short
	n := ( ( blocks + 1 ) * ChunkBits ) / 8 - HeaderSize
	require.Equal( t, blocks + 1, ChunkCount( n ) )
	data = bytes.Repeat( []byte{0x5a}, n )
	stego, report, err = Embed( carrier, NewFrame( data, "dat" ), DefaultThreshold )
	assert.True( t, errors.Is( err, ErrCapacityExceeded ), "got %v", err )
	require.NotNil( t, report )
	assert.Equal( t, blocks, report.Embedded )
	assert.Equal( t, blocks + 1, report.Total )

	_, _, err = Extract( stego, DefaultThreshold )
	assert.True( t, errors.Is( err, ErrPayloadTruncated ), "got %v", err )
}

func TestEmbedIntoFlatCarrier( t *testing.T ) {
	carrier := flatChannels( 32, 32, 0x80 )
	stego, report, err := Embed( carrier, NewFrame( []byte("x"), "" ), DefaultThreshold )
	assert.True( t, errors.Is( err, ErrCapacityExceeded ) )
	assert.Zero( t, report.Embedded )
	assert.Zero( t, report.NoiseBlocks )
	assert.Equal( t, carrier[0].Pix, stego[0].Pix )
}

func TestEmbedPlaneCursor( t *testing.T ) {
	plane := NewBitplane( 8, 24 )
	noise := []Block{ {0, 0}, {0, 16} }
	chunks := make( []Chunk, 3 )
	for i := range chunks[2] {
		chunks[2][i] = uint8( i % 2 )
	}

	cur := EmbedPlane( plane, noise, chunks, Cursor(2), DefaultThreshold )
	assert.Equal( t, Cursor(3), cur )
	assert.Equal( t, chunks[2], blockToChunk( plane.Block( 0, 0 ) ) )
	assert.Equal( t, BlockBits{}, plane.Block( 0, 16 ) )

	// nothing left to embed
	assert.Equal( t, Cursor(3), EmbedPlane( plane, noise, chunks, cur, DefaultThreshold ) )
}

func TestEmbedValidation( t *testing.T ) {
	ch := NewChannels( 8, 8 )
	ch[2] = NewGrid( 8, 16 )
	_, _, err := Embed( ch, NewFrame( nil, "" ), DefaultThreshold )
	assert.True( t, errors.Is( err, ErrDimensionMismatch ) )

	_, _, err = Embed( NewChannels( 8, 8 ), NewFrame( nil, "" ), 0.9 )
	assert.True( t, errors.Is( err, ErrBadThreshold ) )

	var missing Channels
	_, _, err = Collect( missing, DefaultThreshold )
	assert.True( t, errors.Is( err, ErrDimensionMismatch ) )
}
