// Package webrtc records incoming WebRTC media tracks as WebM packets.
package webrtc

import (
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/pion/rtp"
	"github.com/pion/rtp/codecs"
	"github.com/pion/webrtc/v3"
	"github.com/pion/webrtc/v3/pkg/media/samplebuilder"

	"github.com/mediakit/webm/format/webm"
)

var (
	ErrorCodecNotSupported = errors.New("webrtc: track codec not supported")
	ErrorTrackNotDeclared  = errors.New("webrtc: no track entry declared for codec")
)

// PacketWriter is where recorded packets go; satisfied by webm.Muxer,
// rec.Muxer and live.Muxer.
type PacketWriter interface {
	WriteHeader(tracks []webm.TrackEntry) error
	WritePacket(pkt webm.Packet) error
}

// Recorder depacketizes remote track RTP into frames and writes them as
// WebM packets. Tracks are declared up front so the header can be written
// before the first frame arrives.
type Recorder struct {
	mu     sync.Mutex
	w      PacketWriter
	tracks []webm.TrackEntry
}

// NewRecorder writes the WebM header for the declared tracks and returns a
// recorder ready to accept remote tracks, typically from OnTrack.
func NewRecorder(w PacketWriter, tracks []webm.TrackEntry) (*Recorder, error) {
	if err := w.WriteHeader(tracks); err != nil {
		return nil, err
	}
	return &Recorder{w: w, tracks: tracks}, nil
}

// HandleTrack reads the remote track until it ends, pushing every
// depacketized frame to the writer. It blocks, so call it from the OnTrack
// goroutine.
func (r *Recorder) HandleTrack(track *webrtc.TrackRemote) error {
	var (
		depacketizer rtp.Depacketizer
		clockRate    uint32
		kind         webm.TrackType
	)
	switch strings.ToLower(track.Codec().MimeType) {
	case strings.ToLower(webrtc.MimeTypeVP8):
		depacketizer = &codecs.VP8Packet{}
		clockRate = 90000
		kind = webm.TrackTypeVideo
	case strings.ToLower(webrtc.MimeTypeOpus):
		depacketizer = &codecs.OpusPacket{}
		clockRate = 48000
		kind = webm.TrackTypeAudio
	default:
		return ErrorCodecNotSupported
	}

	entry := r.entry(kind)
	if entry == nil {
		return ErrorTrackNotDeclared
	}

	builder := samplebuilder.New(10, depacketizer, clockRate)
	var ts time.Duration

	for {
		pkt, _, err := track.ReadRTP()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		builder.Push(pkt)

		for sample := builder.Pop(); sample != nil; sample = builder.Pop() {
			keyframe := true
			if kind == webm.TrackTypeVideo && len(sample.Data) > 0 {
				// VP8 payload header: P bit clear marks a keyframe.
				keyframe = sample.Data[0]&0x01 == 0
			}

			r.mu.Lock()
			err := r.w.WritePacket(webm.Packet{
				TrackNumber: entry.Number,
				IsKeyFrame:  keyframe,
				Time:        ts,
				Data:        sample.Data,
			})
			r.mu.Unlock()
			if err != nil {
				return err
			}
			ts += sample.Duration
		}
	}
}

func (r *Recorder) entry(kind webm.TrackType) *webm.TrackEntry {
	for i := range r.tracks {
		if r.tracks[i].Type == kind {
			return &r.tracks[i]
		}
	}
	return nil
}
