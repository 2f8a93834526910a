package bpcs

// PlanePos names one step of the scan: a channel (0 = R) and a plane (0 = MSB).
type PlanePos struct {
	Channel	int
	Plane	int
}

func(p PlanePos) ChannelName() string {
	return ChannelNames[ p.Channel ]
}

// BitPosition is the bit of the pixel value held by the plane, 7 for the MSB.
func(p PlanePos) BitPosition() int {
	return Planes - 1 - p.Plane
}

// PlaneVisitor may rewrite the noise-like blocks of plane in place.
type PlaneVisitor func( pos PlanePos, plane *Bitplane, seg *Segmentation )

/*
 * Walk is the scan order shared by embedding and extraction:
 * channels R, G, B; within a channel planes 0 (MSB) to 7 (LSB); within a
 * plane the block order of Segment. Every plane of every channel is visited,
 * and the returned channels are rebuilt from all eight (possibly rewritten)
 * planes.
 */
func Walk( ch Channels, threshold float64, visit PlaneVisitor ) Channels {
	return walk( ch, threshold, visit, true )
}

func walk( ch Channels, threshold float64, visit PlaneVisitor, rebuild bool ) Channels {
	var out Channels
	for c, grid := range ch {
		planes := Split( grid )
		for k, plane := range planes {
			visit( PlanePos{ c, k }, plane, Segment( plane, threshold ) )
		}
		if rebuild {
			out[c] = Join( planes )
		}
	}
	return out
}
