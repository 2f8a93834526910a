package bpcs
import (
	"fmt"
)

// Grid is one 8-bit colour channel stored row-major in a contiguous slice.
type Grid struct {
	Height	int
	Width	int
	Pix	[]uint8
}

func NewGrid( height, width int ) *Grid {
	return &Grid{
		Height: height,
		Width: width,
		Pix: make( []uint8, height * width ),
	}
}

func(g *Grid) At( row, col int ) uint8 {
	return g.Pix[ row * g.Width + col ]
}

func(g *Grid) Set( row, col int, v uint8 ) {
	g.Pix[ row * g.Width + col ] = v
}

func(g *Grid) Clone() *Grid {
	c := NewGrid( g.Height, g.Width )
	copy( c.Pix, g.Pix )
	return c
}

// Channels holds the R, G and B grids of one image, in scan order.
type Channels [3]*Grid

var ChannelNames = [3]string{ "R", "G", "B" }

func NewChannels( height, width int ) Channels {
	return Channels{
		NewGrid( height, width ),
		NewGrid( height, width ),
		NewGrid( height, width ),
	}
}

func(c Channels) Height() int {
	return c[0].Height
}

func(c Channels) Width() int {
	return c[0].Width
}

// Validate checks that all three grids exist and share one size.
func(c Channels) Validate() error {
	for i, g := range c {
		if g == nil {
			return fmt.Errorf("%w: channel %s is missing", ErrDimensionMismatch, ChannelNames[i])
		}
		if g.Height < 0 || g.Width < 0 || len(g.Pix) != g.Height * g.Width {
			return fmt.Errorf("%w: channel %s has %d pixels for %dx%d",
				ErrDimensionMismatch, ChannelNames[i], len(g.Pix), g.Width, g.Height)
		}
		if g.Height != c[0].Height || g.Width != c[0].Width {
			return fmt.Errorf("%w: channel %s is %dx%d, channel R is %dx%d",
				ErrDimensionMismatch, ChannelNames[i], g.Width, g.Height, c[0].Width, c[0].Height)
		}
	}
	return nil
}

func(c Channels) Clone() Channels {
	var out Channels
	for i, g := range c {
		out[i] = g.Clone()
	}
	return out
}
