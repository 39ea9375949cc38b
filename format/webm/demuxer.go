package webm

import (
	"errors"
	"io"
	"time"

	"github.com/mediakit/webm/format/webm/timescale"
	"github.com/mediakit/webm/format/webm/webmio"
)

// Demuxer reads packets out of a WebM/Matroska stream. It walks the element
// stream linearly: Info gives the timecode scale, Tracks the track entries,
// and every Block/SimpleBlock inside a Cluster becomes one Packet.
type Demuxer struct {
	r      *webmio.Document
	scale  uint64
	ctime  uint64
	tracks []TrackEntry
	stage  int
}

func NewDemuxer(r io.Reader) *Demuxer {
	return &Demuxer{
		r:     webmio.InitDocument(r),
		scale: timescale.Default,
	}
}

// Tracks parses up to the first Cluster and returns the track entries found.
func (d *Demuxer) Tracks() ([]TrackEntry, error) {
	if err := d.probe(); err != nil {
		return nil, err
	}
	if len(d.tracks) == 0 {
		return nil, errors.New("webm: tracks not found")
	}
	return d.tracks, nil
}

func (d *Demuxer) probe() error {
	if d.stage != 0 {
		return nil
	}
	for {
		el, err := d.r.ParseElement()
		if err != nil {
			return err
		}
		if d.handleHeaderElement(el) {
			d.stage++
			return nil
		}
	}
}

// handleHeaderElement tracks segment metadata state. It reports true once
// the first Cluster header is reached.
func (d *Demuxer) handleHeaderElement(el webmio.Element) bool {
	switch el.ID {
	case webmio.ElementCluster.ID:
		return true
	case webmio.ElementTimecodeScale.ID:
		if v, err := webmio.UintValue(el); err == nil {
			d.scale = v
		}
	case webmio.ElementTrackEntry.ID:
		d.tracks = append(d.tracks, TrackEntry{})
	case webmio.ElementTrackNumber.ID, webmio.ElementTrackUID.ID,
		webmio.ElementTrackType.ID:
		if len(d.tracks) == 0 {
			break
		}
		entry := &d.tracks[len(d.tracks)-1]
		if v, err := webmio.UintValue(el); err == nil {
			switch el.ID {
			case webmio.ElementTrackNumber.ID:
				entry.Number = v
			case webmio.ElementTrackUID.ID:
				entry.UID = v
			case webmio.ElementTrackType.ID:
				entry.Type = TrackType(v)
			}
		}
	case webmio.ElementCodecID.ID:
		if len(d.tracks) > 0 {
			d.tracks[len(d.tracks)-1].CodecID = string(el.Content)
		}
	case webmio.ElementName.ID:
		if len(d.tracks) > 0 {
			d.tracks[len(d.tracks)-1].Name = string(el.Content)
		}
	}
	return false
}

// ReadPacket returns the next demuxed block. It returns io.EOF at a clean
// end of stream.
func (d *Demuxer) ReadPacket() (Packet, error) {
	if err := d.probe(); err != nil {
		return Packet{}, err
	}

	for {
		el, err := d.r.ParseElement()
		if err != nil {
			return Packet{}, err
		}

		switch el.ID {
		case webmio.ElementTimecode.ID:
			if v, err := webmio.UintValue(el); err == nil {
				d.ctime = v
			}

		case webmio.ElementSimpleBlock.ID:
			sb, err := webmio.DecodeSimpleBlock(el)
			if err != nil {
				return Packet{}, err
			}
			return Packet{
				TrackNumber: sb.TrackNumber,
				IsKeyFrame:  sb.Keyframe,
				Time:        d.blockTime(sb.Timecode),
				Data:        sb.Payload,
			}, nil

		case webmio.ElementBlock.ID:
			b, err := webmio.DecodeBlock(el)
			if err != nil {
				return Packet{}, err
			}
			// Keyframe-ness of a BlockGroup block is signalled by the
			// absence of a ReferenceBlock sibling, which follows the
			// Block itself; a linear reader cannot know it yet.
			return Packet{
				TrackNumber: b.TrackNumber,
				Time:        d.blockTime(b.Timecode),
				Data:        b.Payload,
			}, nil
		}
	}
}

func (d *Demuxer) blockTime(rel int16) time.Duration {
	tc := int64(d.ctime) + int64(rel)
	if tc < 0 {
		tc = 0
	}
	return timescale.ToDuration(uint64(tc), d.scale)
}
