package webm

import (
	"time"
)

// TrackType is the Matroska TrackType value of a TrackEntry.
type TrackType uint8

const (
	TrackTypeVideo    TrackType = 1
	TrackTypeAudio    TrackType = 2
	TrackTypeSubtitle TrackType = 0x11
)

func (t TrackType) IsVideo() bool { return t == TrackTypeVideo }
func (t TrackType) IsAudio() bool { return t == TrackTypeAudio }

// TrackEntry describes one track of a segment.
type TrackEntry struct {
	Number  uint64
	UID     uint64
	Type    TrackType
	CodecID string
	Name    string
}

// Packet is one demuxed frame (or laced frame group). Data is the block
// payload, untouched; with a lacing mode set it still starts with the lace
// sizing bytes.
type Packet struct {
	TrackNumber uint64
	IsKeyFrame  bool
	Time        time.Duration
	Data        []byte
}
