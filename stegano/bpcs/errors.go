package bpcs
import (
	"errors"
)

var (
	// the frame marker is absent from the collected bitstream
	ErrMarkerNotFound = errors.New("bpcs: frame marker not found")
	// fewer than 96 bits follow the marker
	ErrHeaderTruncated = errors.New("bpcs: frame header truncated")
	// the declared payload length exceeds the remaining bitstream
	ErrPayloadTruncated = errors.New("bpcs: payload truncated")
	// the carrier has fewer noise-like blocks than the frame has chunks
	ErrCapacityExceeded = errors.New("bpcs: carrier capacity exceeded")
	ErrPayloadTooLarge = errors.New("bpcs: payload larger than 4 GiB")
	ErrDimensionMismatch = errors.New("bpcs: channel dimensions mismatch")
	ErrBadThreshold = errors.New("bpcs: threshold out of range")
)
