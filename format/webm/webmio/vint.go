package webmio

// ReadVint reads an EBML variable-length integer from the start of data.
// It returns the decoded value with the length marker masked out, and the
// number of bytes the vint occupies.
func ReadVint(data []byte) (uint64, int, error) {
	if len(data) == 0 {
		return 0, 0, ErrVint
	}

	b := data[0]
	if b == 0 {
		// A zero first byte would mean a length above 8 bytes,
		// which EBML does not allow for a vint.
		return 0, 0, ErrVint
	}

	n := 1
	for mask := byte(0x80); b&mask == 0; mask >>= 1 {
		n++
	}
	if len(data) < n {
		return 0, 0, ErrVint
	}

	v := uint64(b & (0xff >> n))
	for i := 1; i < n; i++ {
		v = v<<8 | uint64(data[i])
	}

	return v, n, nil
}

// VintSize returns the minimal number of bytes needed to encode value as a
// vint. A 1-byte vint holds up to 127, each extra byte adds 7 value bits.
func VintSize(value uint64) int {
	n := 1
	for value >= 1<<(7*uint(n)) && n < 8 {
		n++
	}
	return n
}

// AppendVint appends value as an n-byte vint to dst. n must be between
// VintSize(value) and 8 or the length marker would collide with value bits.
func AppendVint(dst []byte, value uint64, n int) []byte {
	marker := uint64(1) << (7 * uint(n))
	v := value | marker
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(v>>(8*uint(i))))
	}
	return dst
}
