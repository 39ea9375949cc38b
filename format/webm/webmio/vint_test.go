package webmio

import (
	"bytes"
	"testing"
)

func TestReadVint(t *testing.T) {
	values := []struct {
		in    []byte
		value uint64
		n     int
	}{
		{[]byte{0x80}, 0, 1},
		{[]byte{0x81}, 1, 1},
		{[]byte{0xff}, 127, 1},
		{[]byte{0x40, 0x01}, 1, 2},
		{[]byte{0x41, 0x2c}, 300, 2},
		{[]byte{0x20, 0x00, 0x01}, 1, 3},
		{[]byte{0x1f, 0xff, 0xff, 0xff}, 1<<28 - 1, 4},
		{[]byte{0x01, 0, 0, 0, 0, 0, 0, 0x01}, 1, 8},
	}
	for _, ex := range values {
		v, n, err := ReadVint(ex.in)
		if err != nil {
			t.Errorf("% 02x: %v", ex.in, err)
			continue
		}
		if v != ex.value || n != ex.n {
			t.Errorf("% 02x: expected (%d,%d), got (%d,%d)", ex.in, ex.value, ex.n, v, n)
		}
	}
}

func TestReadVintInvalid(t *testing.T) {
	for _, in := range [][]byte{
		nil,
		{},
		{0x00},             // length above 8
		{0x40},             // 2-byte vint, 1 byte present
		{0x01, 0, 0, 0, 0}, // 8-byte vint, 5 bytes present
	} {
		if _, _, err := ReadVint(in); err == nil {
			t.Errorf("% 02x: expected error", in)
		}
	}
}

func TestVintSize(t *testing.T) {
	values := []struct {
		value uint64
		n     int
	}{
		{0, 1},
		{126, 1},
		{127, 1},
		{128, 2},
		{1<<14 - 1, 2},
		{1 << 14, 3},
		{1<<49 - 1, 7},
		{1 << 49, 8},
	}
	for _, ex := range values {
		if n := VintSize(ex.value); n != ex.n {
			t.Errorf("%d: expected size %d, got %d", ex.value, ex.n, n)
		}
	}
}

func TestAppendVintRoundTrip(t *testing.T) {
	for _, value := range []uint64{0, 1, 126, 127, 128, 300, 1 << 21, 1<<35 + 17} {
		for n := VintSize(value); n <= 8; n++ {
			buf := AppendVint(nil, value, n)
			if len(buf) != n {
				t.Fatalf("value %d n %d: encoded length %d", value, n, len(buf))
			}
			v, size, err := ReadVint(buf)
			if err != nil {
				t.Fatal(err)
			}
			if v != value || size != n {
				t.Errorf("value %d n %d: decoded (%d,%d)", value, n, v, size)
			}
		}
	}
}

func TestAppendVintMarker(t *testing.T) {
	if buf := AppendVint(nil, 127, 1); !bytes.Equal(buf, []byte{0xff}) {
		t.Errorf("expected ff, got % 02x", buf)
	}
	if buf := AppendVint(nil, 1, 2); !bytes.Equal(buf, []byte{0x40, 0x01}) {
		t.Errorf("expected 40 01, got % 02x", buf)
	}
}
