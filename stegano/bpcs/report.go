package bpcs

// PlaneStats describes one (channel, plane) step of the scan.
type PlaneStats struct {
	Channel		string	`json:"channel"`
	Plane		int	`json:"plane"`
	Bit		int	`json:"bit"`
	Noise		int	`json:"noise_blocks"`
	Informative	int	`json:"informative_blocks"`
	// chunks written (embed) or blocks collected (extract)
	Chunks		int	`json:"chunks"`
}

type Report struct {
	Width		int		`json:"width"`
	Height		int		`json:"height"`
	Planes		[]PlaneStats	`json:"planes"`
	NoiseBlocks	int		`json:"noise_blocks"`
	Embedded	int		`json:"embedded_chunks,omitempty"`
	Total		int		`json:"total_chunks,omitempty"`
	MarkerAt	int		`json:"marker_at,omitempty"`
}

func newReport( ch Channels ) *Report {
	return &Report{
		Width: ch.Width(),
		Height: ch.Height(),
		Planes: make( []PlaneStats, 0, len(ch) * Planes ),
	}
}

func(r *Report) add( pos PlanePos, seg *Segmentation, chunks int ) {
	r.Planes = append( r.Planes, PlaneStats{
		Channel: pos.ChannelName(),
		Plane: pos.Plane,
		Bit: pos.BitPosition(),
		Noise: len(seg.Noise),
		Informative: len(seg.Informative),
		Chunks: chunks,
	})
	r.NoiseBlocks += len(seg.Noise)
}

// CapacityBits is the number of frame bits the noise-like blocks can hold.
func(r *Report) CapacityBits() int {
	return r.NoiseBlocks * ChunkBits
}

// CapacityBytes is the largest payload that fits next to the frame header.
func(r *Report) CapacityBytes() int {
	n := r.CapacityBits() / 8 - HeaderSize
	if n < 0 {
		return 0
	}
	return n
}
