package bpcs
import (
	"bytes"
	"fmt"
	"math"
	"encoding/binary"

	"bpcs/stegano/util"
)

const (
	Magic = "BPCS"
	LengthSize = 4
	ExtensionSize = util.ExtensionSize
	HeaderSize = len(Magic) + LengthSize + ExtensionSize

	// one block carries a conjugation flag plus ChunkBits frame bits
	ChunkBits = BlockBitsLen - 1

	headerBits = ( LengthSize + ExtensionSize ) * 8
)

var magicBits = util.BytesToBits( []byte(Magic) )

/*
 * Frame is the hidden message: Magic, payload length (uint32, big-endian,
 * in bytes), extension field (8 bytes, NUL-padded) and the payload itself.
 */
type Frame struct {
	Extension	string
	Payload		[]byte
}

// Chunk is the share of the serialized frame written into one block.
type Chunk [ChunkBits]uint8

// NewFrame normalizes ext: leading dots and non-ASCII text are dropped and
// the rest is truncated to ExtensionSize bytes.
func NewFrame( payload []byte, ext string ) *Frame {
	return &Frame{
		Extension: util.NormalizeExtension( ext ),
		Payload: payload,
	}
}

func(f *Frame) Bytes() ([]byte, error) {
	if uint64(len(f.Payload)) > math.MaxUint32 {
		return nil, ErrPayloadTooLarge
	}
	result := make( []byte, HeaderSize, HeaderSize + len(f.Payload) )
	copy( result, Magic )
	binary.BigEndian.PutUint32( result[len(Magic):], uint32(len(f.Payload)) )
	// NUL padding comes from make()
	copy( result[ len(Magic) + LengthSize : HeaderSize ], f.Extension )
	return append( result, f.Payload... ), nil
}

func(f *Frame) Chunks() ([]Chunk, error) {
	data, err := f.Bytes()
	if err != nil {
		return nil, err
	}
	return SplitChunks( util.BytesToBits( data ) ), nil
}

// SplitChunks cuts a bitstream into chunks; the last one is right-padded with zeros.
func SplitChunks( bits []uint8 ) []Chunk {
	chunks := make( []Chunk, ( len(bits) + ChunkBits - 1 ) / ChunkBits )
	for i := range chunks {
		copy( chunks[i][:], bits[ i * ChunkBits : ] )
	}
	return chunks
}

// ChunkCount is the number of chunks (and noise-like blocks) a payload of n bytes needs.
func ChunkCount( n int ) int {
	return ( (HeaderSize + n) * 8 + ChunkBits - 1 ) / ChunkBits
}

/*
 * ParseFrame finds the leftmost occurrence of the marker in bits and reads
 * the header and payload following it. It also returns the bit offset of
 * the marker, or -1 if there is none.
 */
func ParseFrame( bits []uint8 ) (*Frame, int, error) {
	at := bytes.Index( bits, magicBits )
	if at < 0 {
		return nil, -1, ErrMarkerNotFound
	}
	pos := at + len(magicBits)
	if len(bits) - pos < headerBits {
		return nil, at, fmt.Errorf("%w: %d bits after marker at bit %d",
			ErrHeaderTruncated, len(bits) - pos, at)
	}
	header := util.BitsToBytes( bits[ pos : pos + headerBits ] )
	pos += headerBits

	length := binary.BigEndian.Uint32( header[:LengthSize] )
	ext := util.DecodeExtension( header[LengthSize:] )

	need := uint64(length) * 8
	if uint64(len(bits) - pos) < need {
		return nil, at, fmt.Errorf("%w: need %d bits, %d left",
			ErrPayloadTruncated, need, len(bits) - pos)
	}
	payload := util.BitsToBytes( bits[ pos : pos + int(need) ] )
	return &Frame{ Extension: ext, Payload: payload }, at, nil
}
