package bpcs

// Capacity segments every plane of ch without modifying it. Use
// Report.CapacityBytes for the largest payload Embed accepts.
func Capacity( ch Channels, threshold float64 ) (*Report, error) {
	if err := ValidateThreshold( threshold ); err != nil {
		return nil, err
	}
	if err := ch.Validate(); err != nil {
		return nil, err
	}
	report := newReport( ch )
	walk( ch, threshold, func( pos PlanePos, plane *Bitplane, seg *Segmentation ) {
		report.add( pos, seg, 0 )
	}, false )
	return report, nil
}
