package bpcs

// Block is the origin of an 8x8 block; both coordinates are multiples of 8.
type Block struct {
	Row	int
	Col	int
}

// Segmentation splits the full blocks of a plane by complexity, each list in scan order.
type Segmentation struct {
	Noise		[]Block
	Informative	[]Block
}

/*
 * Segment scans block origins row by row, left to right. Origins whose
 * window would cross the right or bottom edge are skipped, never padded.
 * A block is noise-like when its complexity is >= threshold.
 */
func Segment( p *Bitplane, threshold float64 ) *Segmentation {
	seg := &Segmentation{}
	for row := 0; row + BlockSize <= p.Height; row += BlockSize {
		for col := 0; col + BlockSize <= p.Width; col += BlockSize {
			bits := p.Block( row, col )
			if Complexity( &bits ) >= threshold {
				seg.Noise = append( seg.Noise, Block{ row, col } )
			} else {
				seg.Informative = append( seg.Informative, Block{ row, col } )
			}
		}
	}
	return seg
}
