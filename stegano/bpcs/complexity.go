package bpcs
import (
	"fmt"
)

const (
	BlockSize = 8
	BlockBitsLen = BlockSize * BlockSize
	// horizontal plus vertical neighbour pairs in one block
	MaxTransitions = 2 * BlockSize * ( BlockSize - 1 )

	DefaultThreshold = 0.40
	// a conjugated block scores at least 1 - threshold - 2/112,
	// which stays noise-like only up to this value
	MaxThreshold = 0.49
)

// BlockBits is an 8x8 binary block, row-major, one bit per element.
type BlockBits [BlockBitsLen]uint8

var checkerboard = func() BlockBits {
	var b BlockBits
	for r := 0; r < BlockSize; r++ {
		for c := 0; c < BlockSize; c++ {
			b[ r * BlockSize + c ] = uint8( (r + c) % 2 )
		}
	}
	return b
}()

// Checkerboard returns the pattern with every neighbour pair differing; it scores 1.
func Checkerboard() BlockBits {
	return checkerboard
}

// Complexity counts differing horizontal pairs (row-major) and vertical pairs
// (column-major) and divides by MaxTransitions. The result is in [0, 1].
func Complexity( b *BlockBits ) float64 {
	transitions := 0
	for r := 0; r < BlockSize; r++ {
		row := b[ r * BlockSize : (r + 1) * BlockSize ]
		for c := 0; c < BlockSize - 1; c++ {
			if row[c] != row[c+1] {
				transitions++
			}
		}
	}
	for c := 0; c < BlockSize; c++ {
		for r := 0; r < BlockSize - 1; r++ {
			if b[ r * BlockSize + c ] != b[ (r + 1) * BlockSize + c ] {
				transitions++
			}
		}
	}
	return float64(transitions) / MaxTransitions
}

// conjugate XORs the block with the checkerboard, turning a score a into 1 - a.
func conjugate( b *BlockBits ) {
	for i := range b {
		b[i] ^= checkerboard[i]
	}
}

func ValidateThreshold( threshold float64 ) error {
	if threshold <= 0 || threshold > MaxThreshold {
		return fmt.Errorf("%w: %v not in (0, %v]", ErrBadThreshold, threshold, MaxThreshold)
	}
	return nil
}
