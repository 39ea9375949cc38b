package timescale

import (
	"time"
)

// Default is the Matroska default TimecodeScale: 1ms expressed in
// nanoseconds per timecode unit.
const Default = 1000000

// ToScale converts an absolute time to timecode units of the given
// TimecodeScale (nanoseconds per unit), rounding to nearest.
func ToScale(t time.Duration, scale uint64) uint64 {
	return (uint64(t) + scale/2) / scale
}

// ToDuration converts an absolute timecode back to a time.Duration.
func ToDuration(tc uint64, scale uint64) time.Duration {
	return time.Duration(tc * scale)
}

// Relative converts a cluster-relative time (which may be negative) to
// timecode units, rounding towards zero.
func Relative(t time.Duration, scale uint64) int64 {
	return int64(t) / int64(scale)
}
