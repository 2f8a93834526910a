package bpcs
import (
	"fmt"
)

// Cursor is the index of the next chunk to embed.
type Cursor int

/*
 * chunkToBlock lays the chunk out after the flag bit (row 0, col 0).
 * If the block would not be noise-like it is conjugated and flagged, so
 * every written block is found again by Segment on the decoding side.
 */
func chunkToBlock( c *Chunk, threshold float64 ) BlockBits {
	var b BlockBits
	copy( b[1:], c[:] )
	if Complexity( &b ) < threshold {
		conjugate( &b )
		b[0] = 1
	}
	return b
}

func blockToChunk( b BlockBits ) Chunk {
	if b[0] == 1 {
		b[0] = 0
		conjugate( &b )
	}
	var c Chunk
	copy( c[:], b[1:] )
	return c
}

// EmbedPlane overwrites the noise-like blocks of one plane, in order, with
// chunks starting at cur, and returns the cursor past the last chunk written.
func EmbedPlane( plane *Bitplane, noise []Block, chunks []Chunk, cur Cursor, threshold float64 ) Cursor {
	for _, blk := range noise {
		if int(cur) >= len(chunks) {
			break
		}
		bits := chunkToBlock( &chunks[cur], threshold )
		plane.SetBlock( blk.Row, blk.Col, &bits )
		cur++
	}
	return cur
}

/*
 * Embed hides frame in a copy of carrier. The carrier is not modified.
 * Planes left after the last chunk are carried through unchanged, so the
 * result always has eight planes per channel.
 * If the carrier is too small, the partially embedded channels and the
 * report are returned together with ErrCapacityExceeded.
 */
func Embed( carrier Channels, frame *Frame, threshold float64 ) (Channels, *Report, error) {
	if err := ValidateThreshold( threshold ); err != nil {
		return Channels{}, nil, err
	}
	if err := carrier.Validate(); err != nil {
		return Channels{}, nil, err
	}
	chunks, err := frame.Chunks()
	if err != nil {
		return Channels{}, nil, err
	}

	report := newReport( carrier )
	report.Total = len(chunks)
	cur := Cursor(0)
	stego := Walk( carrier, threshold, func( pos PlanePos, plane *Bitplane, seg *Segmentation ) {
		next := EmbedPlane( plane, seg.Noise, chunks, cur, threshold )
		report.add( pos, seg, int(next - cur) )
		cur = next
	})
	report.Embedded = int(cur)

	if report.Embedded < report.Total {
		return stego, report, fmt.Errorf("%w: embedded %d of %d chunks (%d noise-like blocks)",
			ErrCapacityExceeded, report.Embedded, report.Total, report.NoiseBlocks)
	}
	return stego, report, nil
}
