package webmio

import (
	"io"
)

// Document reads EBML elements from a WebM/Matroska stream.
type Document struct {
	r io.Reader
}

// InitDocument wraps a reader for element parsing. It does not read anything
// until ParseElement is called.
func InitDocument(r io.Reader) *Document {
	return &Document{r: r}
}

// ParseAll parses elements until the stream ends, calling c for each one.
// It returns io.EOF on a clean end of stream.
func (doc *Document) ParseAll(c func(Element)) error {
	for {
		el, err := doc.ParseElement()
		if err != nil {
			return err
		}
		c(el)
	}
}

// ParseElement parses the element starting at the current stream position.
// Master elements are returned without content; their children follow as
// separate elements.
func (doc *Document) ParseElement() (Element, error) {
	var el Element

	id, err := doc.readElementID()
	if err != nil {
		return el, err
	}

	size, err := doc.readElementSize()
	if err != nil {
		return el, err
	}

	el.ElementRegister = GetElementRegister(id)
	el.Size = size

	if el.Type != ElementTypeMaster {
		if size == SizeUnknown {
			return el, ErrParse
		}
		buf := make([]byte, size)
		if _, err := io.ReadFull(doc.r, buf); err != nil {
			if err == io.ErrUnexpectedEOF || err == io.EOF {
				return el, ErrUnexpectedEOF
			}
			return el, err
		}
		el.Content = buf
	}

	return el, nil
}

// readElementID reads a class A-D element id (1-4 bytes). Unlike a size
// vint, the id keeps its length marker bits.
func (doc *Document) readElementID() (uint32, error) {
	b, err := doc.readByte()
	if err != nil {
		return 0, err
	}

	var n int
	switch {
	case b&0x80 != 0:
		n = 1
	case b&0x40 != 0:
		n = 2
	case b&0x20 != 0:
		n = 3
	case b&0x10 != 0:
		n = 4
	default:
		return 0, ErrParse
	}

	id := uint32(b)
	for i := 1; i < n; i++ {
		if b, err = doc.readByte(); err != nil {
			return 0, err
		}
		id = id<<8 | uint32(b)
	}

	return id, nil
}

// readElementSize reads the data size vint following the element id. An
// all-ones vint decodes to SizeUnknown.
func (doc *Document) readElementSize() (uint64, error) {
	b, err := doc.readByte()
	if err != nil {
		return 0, err
	}
	if b == 0 {
		return 0, ErrParse
	}

	n := 1
	for mask := byte(0x80); b&mask == 0; mask >>= 1 {
		n++
	}

	v := uint64(b & (0xff >> n))
	allOnes := v == uint64(0xff>>n)
	for i := 1; i < n; i++ {
		if b, err = doc.readByte(); err != nil {
			return 0, err
		}
		v = v<<8 | uint64(b)
		allOnes = allOnes && b == 0xff
	}

	if allOnes {
		return SizeUnknown, nil
	}
	return v, nil
}

func (doc *Document) readByte() (byte, error) {
	var buf [1]byte
	if _, err := io.ReadFull(doc.r, buf[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return 0, ErrUnexpectedEOF
		}
		return 0, err
	}
	return buf[0], nil
}
