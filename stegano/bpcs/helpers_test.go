package bpcs
import (
	"math/rand"
)

// noisyChannels fills every channel with seeded random bytes, so every
// bit-plane is random and nearly all of its blocks are noise-like.
func noisyChannels( height, width int, seed int64 ) Channels {
	rnd := rand.New( rand.NewSource( seed ) )
	ch := NewChannels( height, width )
	for _, g := range ch {
		rnd.Read( g.Pix )
	}
	return ch
}

// flatChannels has no noise-like block at all.
func flatChannels( height, width int, v uint8 ) Channels {
	ch := NewChannels( height, width )
	for _, g := range ch {
		for i := range g.Pix {
			g.Pix[i] = v
		}
	}
	return ch
}
