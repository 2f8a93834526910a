package bpcs

// Collect returns the frame bits of every noise-like block in scan order.
func Collect( ch Channels, threshold float64 ) ([]uint8, *Report, error) {
	if err := ValidateThreshold( threshold ); err != nil {
		return nil, nil, err
	}
	if err := ch.Validate(); err != nil {
		return nil, nil, err
	}
	report := newReport( ch )
	bits := []uint8{}
	walk( ch, threshold, func( pos PlanePos, plane *Bitplane, seg *Segmentation ) {
		for _, blk := range seg.Noise {
			c := blockToChunk( plane.Block( blk.Row, blk.Col ) )
			bits = append( bits, c[:]... )
		}
		report.add( pos, seg, len(seg.Noise) )
	}, false )
	return bits, report, nil
}

// Extract recovers the frame hidden in ch by Embed with the same threshold.
func Extract( ch Channels, threshold float64 ) (*Frame, *Report, error) {
	bits, report, err := Collect( ch, threshold )
	if err != nil {
		return nil, nil, err
	}
	frame, at, err := ParseFrame( bits )
	report.MarkerAt = at
	if err != nil {
		return nil, report, err
	}
	return frame, report, nil
}
