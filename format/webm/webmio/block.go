package webmio

// BlockLacing is the frame lacing mode carried in bits 1-2 of the block
// flags byte.
type BlockLacing uint8

const (
	LacingNone      BlockLacing = iota // 00, single frame
	LacingXiph                         // 01
	LacingFixedSize                    // 10
	LacingEBML                         // 11
)

const (
	flagLacingMask = 0x06
	flagInvisible  = 0x08
	flagReserved   = 0x70
	flagKeyframe   = 0x80 // SimpleBlock only
	flagDiscard    = 0x01 // SimpleBlock only
)

// Block is the decoded form of a Matroska/WebM Block element:
//
//	[vint track][2 bytes timecode, big-endian signed][1 byte flags][payload...]
//
// Timecode is relative to the timecode of the containing Cluster. Payload is
// everything after the flags byte and is carried through untouched; with a
// lacing mode set it still contains the lace sizing bytes.
//
// Bits 0 and 7 of the flags byte are reserved as far as Block is concerned;
// they belong to SimpleBlock and are never read or written here.
type Block struct {
	TrackNumber uint64
	Timecode    int16
	Invisible   bool
	Lacing      BlockLacing
	Payload     []byte

	// vint length TrackNumber was decoded from, kept so Marshal
	// reproduces the original bytes even for an oversized encoding.
	// Zero on a fresh Block, meaning minimal.
	trackSize int

	// reserved bits 4-6 of a decoded flags byte, carried through so a
	// decode/encode round trip is byte-exact. Zero on a fresh Block.
	reserved byte
}

// UnmarshalBlock decodes the content of a Block element. The buffer must hold
// at least a track vint, two timecode bytes and the flags byte.
func UnmarshalBlock(data []byte) (*Block, error) {
	track, n, err := ReadVint(data)
	if err != nil {
		return nil, err
	}
	if len(data) < n+3 {
		return nil, ErrBlockTruncated
	}

	flags := data[n+2]
	b := &Block{
		TrackNumber: track,
		Timecode:    int16(uint16(data[n])<<8 | uint16(data[n+1])),
		Invisible:   flags&flagInvisible != 0,
		Lacing:      BlockLacing(flags & flagLacingMask >> 1),
		Payload:     data[n+3:],
		trackSize:   n,
		reserved:    flags & flagReserved,
	}
	return b, nil
}

// Marshal encodes the block back to element content. A block produced by
// UnmarshalBlock re-serializes byte for byte; a freshly constructed block uses
// the minimal vint encoding for its track number. Bits 0 and 7 of the flags
// byte are left clear.
func (b *Block) Marshal() []byte {
	n := b.trackSize
	if n == 0 {
		n = VintSize(b.TrackNumber)
	}

	buf := make([]byte, 0, n+3+len(b.Payload))
	buf = AppendVint(buf, b.TrackNumber, n)
	buf = append(buf, byte(uint16(b.Timecode)>>8), byte(b.Timecode))

	flags := b.reserved
	flags |= byte(b.Lacing) << 1 & flagLacingMask
	if b.Invisible {
		flags |= flagInvisible
	}
	buf = append(buf, flags)

	return append(buf, b.Payload...)
}
