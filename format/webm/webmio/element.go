package webmio

import "fmt"

// ElementRegister identifies a WebM/Matroska element: its EBML id, content
// type and spec name.
type ElementRegister struct {
	ID   uint32
	Type uint8
	Name string
}

// Element is one parsed EBML element. Content is nil for master elements,
// whose children follow in the stream instead.
type Element struct {
	ElementRegister

	Size    uint64
	Content []byte
}

// DecodeBlock converts a parsed element into a Block. The element must carry
// binary content; any other content type fails with ErrElementType rather
// than being reinterpreted.
func DecodeBlock(el Element) (*Block, error) {
	if el.Type != ElementTypeBinary {
		return nil, fmt.Errorf("%w: %s", ErrElementType, el.Name)
	}
	return UnmarshalBlock(el.Content)
}

// DecodeSimpleBlock converts a parsed element into a SimpleBlock. Like
// DecodeBlock it only accepts binary content.
func DecodeSimpleBlock(el Element) (*SimpleBlock, error) {
	if el.Type != ElementTypeBinary {
		return nil, fmt.Errorf("%w: %s", ErrElementType, el.Name)
	}
	return UnmarshalSimpleBlock(el.Content)
}

// UintValue decodes the content of an unsigned integer element, one to
// eight big-endian bytes.
func UintValue(el Element) (uint64, error) {
	if el.Type != ElementTypeUint {
		return 0, fmt.Errorf("%w: %s is not uint", ErrElementType, el.Name)
	}
	if len(el.Content) > 8 {
		return 0, ErrParse
	}
	var v uint64
	for _, b := range el.Content {
		v = v<<8 | uint64(b)
	}
	return v, nil
}

// BlockElement wraps an encoded Block as a Block element ready for a Writer.
func BlockElement(b *Block) Element {
	content := b.Marshal()
	return Element{
		ElementRegister: ElementBlock,
		Size:            uint64(len(content)),
		Content:         content,
	}
}

// SimpleBlockElement wraps an encoded SimpleBlock as a SimpleBlock element.
func SimpleBlockElement(b *SimpleBlock) Element {
	content := b.Marshal()
	return Element{
		ElementRegister: ElementSimpleBlock,
		Size:            uint64(len(content)),
		Content:         content,
	}
}
