package webm

import (
	"bytes"
	"io"
	"testing"
	"time"
)

func TestMuxDemuxRoundTrip(t *testing.T) {
	tracks := []TrackEntry{
		{Number: 1, Type: TrackTypeVideo, CodecID: "V_VP8", Name: "video"},
		{Number: 2, Type: TrackTypeAudio, CodecID: "A_OPUS"},
	}
	packets := []Packet{
		{TrackNumber: 1, IsKeyFrame: true, Time: 0, Data: []byte{0x10, 0x11}},
		{TrackNumber: 2, Time: 10 * time.Millisecond, Data: []byte{0x20}},
		{TrackNumber: 1, Time: 33 * time.Millisecond, Data: []byte{0x12, 0x13, 0x14}},
		{TrackNumber: 1, IsKeyFrame: true, Time: 66 * time.Millisecond, Data: []byte{0x15}},
		{TrackNumber: 2, Time: 70 * time.Millisecond, Data: []byte{0x21, 0x22}},
	}

	var buf bytes.Buffer
	m := NewMuxer(&buf)
	if err := m.WriteHeader(tracks); err != nil {
		t.Fatal(err)
	}
	for _, pkt := range packets {
		if err := m.WritePacket(pkt); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.WriteTrailer(); err != nil {
		t.Fatal(err)
	}

	d := NewDemuxer(bytes.NewReader(buf.Bytes()))
	got, err := d.Tracks()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 tracks, got %d", len(got))
	}
	if got[0].Number != 1 || got[0].Type != TrackTypeVideo || got[0].CodecID != "V_VP8" || got[0].Name != "video" {
		t.Errorf("track 1: %+v", got[0])
	}
	if got[1].Number != 2 || got[1].Type != TrackTypeAudio || got[1].CodecID != "A_OPUS" {
		t.Errorf("track 2: %+v", got[1])
	}
	if got[0].UID == 0 || got[1].UID == 0 {
		t.Error("track UIDs not assigned")
	}

	for i, want := range packets {
		pkt, err := d.ReadPacket()
		if err != nil {
			t.Fatalf("packet %d: %v", i, err)
		}
		if pkt.TrackNumber != want.TrackNumber || pkt.IsKeyFrame != want.IsKeyFrame ||
			pkt.Time != want.Time || !bytes.Equal(pkt.Data, want.Data) {
			t.Errorf("packet %d: expected %+v, got %+v", i, want, pkt)
		}
	}
	if _, err := d.ReadPacket(); err != io.EOF {
		t.Errorf("expected EOF, got %v", err)
	}
}

func TestMuxerErrors(t *testing.T) {
	var buf bytes.Buffer
	m := NewMuxer(&buf)
	if err := m.WritePacket(Packet{TrackNumber: 1}); err == nil {
		t.Error("WritePacket before WriteHeader: expected error")
	}
	if err := m.WriteHeader(nil); err == nil {
		t.Error("empty track list: expected error")
	}
	if err := m.WriteHeader([]TrackEntry{{Number: 0, Type: TrackTypeVideo}}); err == nil {
		t.Error("zero track number: expected error")
	}
	if err := m.WriteHeader([]TrackEntry{{Number: 1, Type: TrackTypeVideo, CodecID: "V_VP8"}}); err != nil {
		t.Fatal(err)
	}
	if err := m.WritePacket(Packet{TrackNumber: 9}); err == nil {
		t.Error("unknown track: expected error")
	}
}

func TestClusterSplitOnKeyframe(t *testing.T) {
	var buf bytes.Buffer
	m := NewMuxer(&buf)
	if err := m.WriteHeader([]TrackEntry{{Number: 1, Type: TrackTypeVideo, CodecID: "V_VP8"}}); err != nil {
		t.Fatal(err)
	}
	times := []time.Duration{0, 33 * time.Millisecond, 66 * time.Millisecond}
	for i, ts := range times {
		pkt := Packet{TrackNumber: 1, Time: ts, Data: []byte{byte(i)}, IsKeyFrame: i != 1}
		if err := m.WritePacket(pkt); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.WriteTrailer(); err != nil {
		t.Fatal(err)
	}

	d := NewDemuxer(bytes.NewReader(buf.Bytes()))
	for i, ts := range times {
		pkt, err := d.ReadPacket()
		if err != nil {
			t.Fatalf("packet %d: %v", i, err)
		}
		if pkt.Time != ts {
			t.Errorf("packet %d: expected time %s, got %s", i, ts, pkt.Time)
		}
	}
}

func TestMuxerRejectsSecondHeader(t *testing.T) {
	var buf bytes.Buffer
	m := NewMuxer(&buf)
	if err := m.WriteHeader([]TrackEntry{{Number: 1, Type: TrackTypeVideo, CodecID: "V_VP8"}}); err != nil {
		t.Fatal(err)
	}
	if err := m.WriteHeader([]TrackEntry{{Number: 2, Type: TrackTypeAudio, CodecID: "A_OPUS"}}); err == nil {
		t.Error("second WriteHeader: expected error")
	}
}
