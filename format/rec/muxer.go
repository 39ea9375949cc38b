// Package rec records a packet stream to rotating WebM files on disk.
package rec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shirou/gopsutil/v3/disk"

	"github.com/mediakit/webm/format/webm"
)

type Muxer struct {
	mpoint []string
	dir    string
	limit  time.Duration

	tracks []webm.TrackEntry
	muxer  *webm.Muxer
	f      *os.File
	start  time.Duration
	opened bool
}

// NewMuxer prepares a recorder that writes segment files of at most limit
// duration. mpoint lists candidate mount points; each new file goes to the
// least used one, under dir.
func NewMuxer(mpoint []string, dir string, limit time.Duration) *Muxer {
	return &Muxer{
		mpoint: mpoint,
		dir:    dir,
		limit:  limit,
	}
}

func (m *Muxer) WriteHeader(tracks []webm.TrackEntry) error {
	if len(tracks) == 0 {
		return errors.New("rec: no tracks")
	}
	m.tracks = tracks
	return nil
}

// WritePacket writes the packet to the current segment file, rotating on a
// video keyframe once the segment duration limit is reached. Rotation waits
// for a keyframe so every file starts decodable.
func (m *Muxer) WritePacket(pkt webm.Packet) error {
	if m.tracks == nil {
		return errors.New("rec: WriteHeader not called")
	}

	rotate := m.opened && m.limit > 0 && pkt.Time-m.start >= m.limit && pkt.IsKeyFrame
	if !m.opened || rotate {
		if err := m.open(pkt.Time); err != nil {
			return err
		}
	}

	pkt.Time -= m.start
	return m.muxer.WritePacket(pkt)
}

func (m *Muxer) open(start time.Duration) error {
	if err := m.Close(); err != nil {
		return err
	}

	dir, err := m.pickMount()
	if err != nil {
		return err
	}
	dir = filepath.Join(dir, m.dir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	name := fmt.Sprintf("%s_%d.webm", uuid.New(), time.Now().UTC().Unix())
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return err
	}

	muxer := webm.NewMuxer(f)
	if err := muxer.WriteHeader(m.tracks); err != nil {
		f.Close()
		return err
	}

	m.f = f
	m.muxer = muxer
	m.start = start
	m.opened = true
	return nil
}

// pickMount returns the candidate mount point with the lowest used space.
func (m *Muxer) pickMount() (string, error) {
	mu := float64(100)
	ui := -1

	for i, mp := range m.mpoint {
		if d, err := disk.Usage(mp); err == nil {
			if d.UsedPercent < mu {
				ui = i
				mu = d.UsedPercent
			}
		}
	}

	if ui == -1 {
		return "", errors.New("rec: no usable mount point")
	}
	return m.mpoint[ui], nil
}

// Close finishes and closes the current segment file, if any.
func (m *Muxer) Close() error {
	if !m.opened {
		return nil
	}
	m.opened = false

	err := m.muxer.WriteTrailer()
	if cerr := m.f.Close(); err == nil {
		err = cerr
	}
	m.muxer = nil
	m.f = nil
	return err
}
