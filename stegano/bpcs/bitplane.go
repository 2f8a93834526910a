package bpcs

const (
	Planes = 8
)

// Bitplane holds one bit position of a channel; Bits has one 0/1 element per pixel.
type Bitplane struct {
	Height	int
	Width	int
	Bits	[]uint8
}

func NewBitplane( height, width int ) *Bitplane {
	return &Bitplane{
		Height: height,
		Width: width,
		Bits: make( []uint8, height * width ),
	}
}

/*
 * Split returns the eight bit-planes of a channel. Plane 0 holds the most
 * significant bit, plane 7 the least significant one.
 */
func Split( g *Grid ) [Planes]*Bitplane {
	var planes [Planes]*Bitplane
	for k := range planes {
		planes[k] = NewBitplane( g.Height, g.Width )
	}
	for i, v := range g.Pix {
		for k := 0; k < Planes; k++ {
			planes[k].Bits[i] = ( v >> uint(Planes - 1 - k) ) & 1
		}
	}
	return planes
}

// Join is the inverse of Split. All planes must share the size of planes[0].
func Join( planes [Planes]*Bitplane ) *Grid {
	g := NewGrid( planes[0].Height, planes[0].Width )
	for i := range g.Pix {
		v := uint8(0)
		for k := 0; k < Planes; k++ {
			v = v << 1 | planes[k].Bits[i]
		}
		g.Pix[i] = v
	}
	return g
}

// Block copies the 8x8 block with its top-left corner at (row, col).
func(p *Bitplane) Block( row, col int ) BlockBits {
	var b BlockBits
	for r := 0; r < BlockSize; r++ {
		start := ( row + r ) * p.Width + col
		copy( b[ r * BlockSize : (r + 1) * BlockSize ], p.Bits[ start : start + BlockSize ] )
	}
	return b
}

func(p *Bitplane) SetBlock( row, col int, b *BlockBits ) {
	for r := 0; r < BlockSize; r++ {
		start := ( row + r ) * p.Width + col
		copy( p.Bits[ start : start + BlockSize ], b[ r * BlockSize : (r + 1) * BlockSize ] )
	}
}
