package timescale

import (
	"testing"
	"time"
)

func TestToScale(t *testing.T) {
	const scale uint64 = Default
	values := []struct {
		T time.Duration
		V uint64
	}{
		{0, 0},
		{time.Millisecond - 1, 1},
		{time.Millisecond + 0, 1},
		{time.Millisecond + 1, 1},
		{time.Second, 1000},
		{time.Second + time.Millisecond/2, 1001},
		{time.Hour, 3600000},
	}
	for _, ex := range values {
		n := ToScale(ex.T, scale)
		if n != ex.V {
			t.Errorf("%d (%s): expected %d, got %d", ex.T, ex.T, ex.V, n)
		}
	}
}

func TestToDuration(t *testing.T) {
	const scale uint64 = Default
	for _, tc := range []uint64{0, 1, 33, 1000, 3600000} {
		if d := ToDuration(tc, scale); ToScale(d, scale) != tc {
			t.Errorf("%d: round trip gave %d", tc, ToScale(d, scale))
		}
	}
}

func TestRelative(t *testing.T) {
	const scale uint64 = Default
	values := []struct {
		T time.Duration
		V int64
	}{
		{0, 0},
		{time.Millisecond, 1},
		{-time.Millisecond, -1},
		{33 * time.Millisecond, 33},
		{-33 * time.Millisecond, -33},
		{999 * time.Microsecond, 0},
		{-999 * time.Microsecond, 0},
	}
	for _, ex := range values {
		n := Relative(ex.T, scale)
		if n != ex.V {
			t.Errorf("%d (%s): expected %d, got %d", ex.T, ex.T, ex.V, n)
		}
	}
}
