package webm

import (
	"errors"
	"io"
	"math"

	"github.com/google/uuid"

	"github.com/mediakit/webm/format/webm/timescale"
	"github.com/mediakit/webm/format/webm/webmio"
)

const muxerApp = "mediakit-webm"

// Muxer writes a WebM segment: EBML header, segment metadata, then clusters
// of SimpleBlocks. The segment is written with an unknown size so the output
// can be streamed; clusters are buffered and written whole.
type Muxer struct {
	w *webmio.Writer

	scale       uint64
	tracks      []TrackEntry
	cluster     []webmio.Element
	ctime       uint64
	haveCluster bool
	started     bool
}

func NewMuxer(w io.Writer) *Muxer {
	return &Muxer{
		w:     webmio.NewWriter(w),
		scale: timescale.Default,
	}
}

// WriteHeader writes everything up to the first cluster. Tracks without a
// UID get a random one.
func (m *Muxer) WriteHeader(tracks []TrackEntry) (err error) {
	if m.started {
		return errors.New("webm: header already written")
	}
	if len(tracks) == 0 {
		return errors.New("webm: no tracks")
	}

	header := webmio.MasterElement(webmio.ElementEBML,
		webmio.UintElement(webmio.ElementEBMLVersion, 1),
		webmio.UintElement(webmio.ElementEBMLReadVersion, 1),
		webmio.UintElement(webmio.ElementEBMLMaxIDLength, 4),
		webmio.UintElement(webmio.ElementEBMLMaxSizeLength, 8),
		webmio.StringElement(webmio.ElementDocType, "webm"),
		webmio.UintElement(webmio.ElementDocTypeVersion, 2),
		webmio.UintElement(webmio.ElementDocTypeReadVersion, 2),
	)
	if err = m.w.WriteElement(header); err != nil {
		return
	}
	if err = m.w.WriteMasterStart(webmio.ElementSegment, webmio.SizeUnknown); err != nil {
		return
	}

	segmentUID := uuid.New()
	info := webmio.MasterElement(webmio.ElementInfo,
		webmio.UintElement(webmio.ElementTimecodeScale, m.scale),
		webmio.BinaryElement(webmio.ElementSegmentUID, segmentUID[:]),
		webmio.StringElement(webmio.ElementMuxingApp, muxerApp),
		webmio.StringElement(webmio.ElementWritingApp, muxerApp),
	)
	if err = m.w.WriteElement(info); err != nil {
		return
	}

	var entries []webmio.Element
	for _, track := range tracks {
		if track.Number == 0 {
			return errors.New("webm: track number must not be zero")
		}
		if track.UID == 0 {
			u := uuid.New()
			track.UID = uint64(u[0])<<56 | uint64(u[1])<<48 | uint64(u[2])<<40 | uint64(u[3])<<32 |
				uint64(u[4])<<24 | uint64(u[5])<<16 | uint64(u[6])<<8 | uint64(u[7])
		}
		children := []webmio.Element{
			webmio.UintElement(webmio.ElementTrackNumber, track.Number),
			webmio.UintElement(webmio.ElementTrackUID, track.UID),
			webmio.UintElement(webmio.ElementTrackType, uint64(track.Type)),
			webmio.StringElement(webmio.ElementCodecID, track.CodecID),
		}
		if track.Name != "" {
			children = append(children, webmio.StringElement(webmio.ElementName, track.Name))
		}
		entries = append(entries, webmio.MasterElement(webmio.ElementTrackEntry, children...))
		m.tracks = append(m.tracks, track)
	}
	if err = m.w.WriteElement(webmio.MasterElement(webmio.ElementTracks, entries...)); err != nil {
		return
	}

	m.started = true
	return
}

// WritePacket appends a packet to the current cluster, opening a new one on
// a video keyframe or when the relative timecode would no longer fit the
// block's signed 16-bit field.
func (m *Muxer) WritePacket(pkt Packet) error {
	if !m.started {
		return errors.New("webm: WriteHeader not called")
	}

	track := m.track(pkt.TrackNumber)
	if track == nil {
		return errors.New("webm: unknown track number")
	}

	tc := timescale.ToScale(pkt.Time, m.scale)
	rel := int64(tc) - int64(m.ctime)

	if !m.haveCluster || rel > math.MaxInt16 || rel < 0 ||
		(pkt.IsKeyFrame && track.Type.IsVideo()) {
		if err := m.flushCluster(); err != nil {
			return err
		}
		m.ctime = tc
		m.haveCluster = true
		rel = 0
	}

	sb := &webmio.SimpleBlock{
		Block: webmio.Block{
			TrackNumber: pkt.TrackNumber,
			Timecode:    int16(rel),
			Payload:     pkt.Data,
		},
		Keyframe: pkt.IsKeyFrame,
	}
	m.cluster = append(m.cluster, webmio.SimpleBlockElement(sb))
	return nil
}

// WriteTrailer flushes the last buffered cluster.
func (m *Muxer) WriteTrailer() error {
	if !m.started {
		return errors.New("webm: WriteHeader not called")
	}
	return m.flushCluster()
}

func (m *Muxer) flushCluster() error {
	if len(m.cluster) == 0 {
		return nil
	}
	children := append(
		[]webmio.Element{webmio.UintElement(webmio.ElementTimecode, m.ctime)},
		m.cluster...,
	)
	m.cluster = m.cluster[:0]
	return m.w.WriteElement(webmio.MasterElement(webmio.ElementCluster, children...))
}

func (m *Muxer) track(number uint64) *TrackEntry {
	for i := range m.tracks {
		if m.tracks[i].Number == number {
			return &m.tracks[i]
		}
	}
	return nil
}
