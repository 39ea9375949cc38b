package webmio

import "fmt"

// SimpleBlock is a Block with two extra flags packed into bits 7 and 0 of
// the shared flags byte. It is the content of a SimpleBlock element, which
// lives directly in a Cluster without a surrounding BlockGroup.
type SimpleBlock struct {
	Block
	Keyframe    bool
	Discardable bool
}

// UnmarshalSimpleBlock decodes the content of a SimpleBlock element.
func UnmarshalSimpleBlock(data []byte) (*SimpleBlock, error) {
	_, n, err := ReadVint(data)
	if err != nil {
		return nil, err
	}
	if len(data) < n+3 {
		return nil, ErrBlockTruncated
	}
	flags := data[n+2]

	b, err := UnmarshalBlock(data)
	if err != nil {
		return nil, err
	}

	return &SimpleBlock{
		Block:       *b,
		Keyframe:    flags&flagKeyframe != 0,
		Discardable: flags&flagDiscard != 0,
	}, nil
}

// Marshal encodes the embedded Block, then sets the keyframe and discardable
// bits in the flags byte. The bits are ORed in, not cleared first: the Block
// encoder leaves bits 0 and 7 at zero, and a SimpleBlock built around a Block
// with either bit already set is a caller error.
func (b *SimpleBlock) Marshal() []byte {
	buf := b.Block.Marshal()

	_, n, err := ReadVint(buf)
	if err != nil || len(buf) < n+3 {
		// The buffer came out of our own Block encoder; if the flags
		// byte is not where it must be, the codec itself is broken.
		panic(fmt.Sprintf("webmio: invariant: flags byte unaddressable in encoded block (len=%d, err=%v)", len(buf), err))
	}

	if b.Discardable {
		buf[n+2] |= flagDiscard
	}
	if b.Keyframe {
		buf[n+2] |= flagKeyframe
	}

	return buf
}
