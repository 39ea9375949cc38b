// Package live streams a WebM segment over a websocket connection, one
// binary message per cluster, for consumption by Media Source Extensions.
package live

import (
	"bytes"
	"net"
	"net/http"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"

	"github.com/mediakit/webm/format/webm"
)

type Muxer struct {
	m    *webm.Muxer
	buf  bytes.Buffer
	conn net.Conn
}

// NewMuxer upgrades the request to a websocket and prepares a live muxer on
// it. Client frames are drained and ignored.
func NewMuxer(r *http.Request, w http.ResponseWriter) (*Muxer, error) {
	conn, _, _, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		return nil, err
	}
	go func() {
		defer conn.Close()
		for {
			if _, _, err := wsutil.NextReader(conn, ws.StateServerSide); err != nil {
				return
			}
		}
	}()

	m := &Muxer{conn: conn}
	m.m = webm.NewMuxer(&m.buf)
	return m, nil
}

// WriteHeader sends the initialization segment: EBML header, segment start,
// Info and Tracks.
func (m *Muxer) WriteHeader(tracks []webm.TrackEntry) error {
	if err := m.m.WriteHeader(tracks); err != nil {
		return err
	}
	return m.flush()
}

// WritePacket feeds one packet to the muxer and sends any cluster it
// completed.
func (m *Muxer) WritePacket(pkt webm.Packet) error {
	if err := m.m.WritePacket(pkt); err != nil {
		return err
	}
	return m.flush()
}

func (m *Muxer) flush() error {
	if m.buf.Len() == 0 {
		return nil
	}
	err := wsutil.WriteServerBinary(m.conn, m.buf.Bytes())
	m.buf.Reset()
	return err
}

// Close flushes the final cluster and closes the connection.
func (m *Muxer) Close() error {
	if err := m.m.WriteTrailer(); err != nil {
		m.conn.Close()
		return err
	}
	if err := m.flush(); err != nil {
		m.conn.Close()
		return err
	}
	return m.conn.Close()
}
