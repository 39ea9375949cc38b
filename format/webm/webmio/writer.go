package webmio

import (
	"io"
	"math"
)

// SizeUnknown marks an element whose data size is not known up front, such
// as the Segment of a live stream. It is encoded as an all-ones size vint.
const SizeUnknown = ^uint64(0)

// Writer serializes EBML elements, the inverse of Document.
type Writer struct {
	w io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteElement writes one element: id, data size, content. Master elements
// built with MasterElement carry their already-encoded children as content.
func (w *Writer) WriteElement(el Element) error {
	buf := appendElement(nil, el)
	_, err := w.w.Write(buf)
	return err
}

// WriteMasterStart writes only the id and size of a master element; its
// children are written afterwards as separate elements. Pass SizeUnknown
// when the total size is not known yet.
func (w *Writer) WriteMasterStart(reg ElementRegister, size uint64) error {
	buf := appendID(nil, reg.ID)
	buf = appendSize(buf, size)
	_, err := w.w.Write(buf)
	return err
}

// UintElement builds an unsigned integer element using the shortest content
// encoding, one to eight big-endian bytes.
func UintElement(reg ElementRegister, v uint64) Element {
	n := 1
	for v >= 1<<(8*uint(n)) && n < 8 {
		n++
	}
	content := make([]byte, n)
	for i := n - 1; i >= 0; i-- {
		content[i] = byte(v)
		v >>= 8
	}
	return Element{ElementRegister: reg, Size: uint64(n), Content: content}
}

// FloatElement builds a 64-bit float element.
func FloatElement(reg ElementRegister, f float64) Element {
	bits := math.Float64bits(f)
	content := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		content[i] = byte(bits)
		bits >>= 8
	}
	return Element{ElementRegister: reg, Size: 8, Content: content}
}

// StringElement builds a string or UTF-8 element.
func StringElement(reg ElementRegister, s string) Element {
	return Element{ElementRegister: reg, Size: uint64(len(s)), Content: []byte(s)}
}

// BinaryElement builds a binary element around data as-is.
func BinaryElement(reg ElementRegister, data []byte) Element {
	return Element{ElementRegister: reg, Size: uint64(len(data)), Content: data}
}

// MasterElement builds a master element whose content is the concatenated
// encoding of its children.
func MasterElement(reg ElementRegister, children ...Element) Element {
	var content []byte
	for _, child := range children {
		content = appendElement(content, child)
	}
	return Element{ElementRegister: reg, Size: uint64(len(content)), Content: content}
}

func appendElement(dst []byte, el Element) []byte {
	dst = appendID(dst, el.ID)
	dst = appendSize(dst, uint64(len(el.Content)))
	return append(dst, el.Content...)
}

// appendID writes the id's significant bytes; ids are stored with their
// length marker included, so no vint marker is added.
func appendID(dst []byte, id uint32) []byte {
	n := 1
	for id >= 1<<(8*uint(n)) && n < 4 {
		n++
	}
	for i := n - 1; i >= 0; i-- {
		dst = append(dst, byte(id>>(8*uint(i))))
	}
	return dst
}

// appendSize writes a data size vint. The all-ones value of each length
// class is reserved for "unknown", so sizes that would land on it are
// promoted to the next length.
func appendSize(dst []byte, size uint64) []byte {
	if size == SizeUnknown {
		dst = append(dst, 0x01)
		for i := 0; i < 7; i++ {
			dst = append(dst, 0xff)
		}
		return dst
	}

	n := VintSize(size)
	if size == 1<<(7*uint(n))-1 && n < 8 {
		n++
	}
	return AppendVint(dst, size, n)
}
