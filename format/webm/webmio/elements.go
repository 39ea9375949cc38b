package webmio

const (
	ElementTypeUnknown uint8 = iota
	ElementTypeMaster
	ElementTypeUint
	ElementTypeInt
	ElementTypeString
	ElementTypeUnicode
	ElementTypeBinary
	ElementTypeFloat
	ElementTypeDate
)

var (
	ElementUnknown            = ElementRegister{0x0, ElementTypeUnknown, "Unknown"}
	ElementEBML               = ElementRegister{0x1a45dfa3, ElementTypeMaster, "EBML"}
	ElementEBMLVersion        = ElementRegister{0x4286, ElementTypeUint, "EBMLVersion"}
	ElementEBMLReadVersion    = ElementRegister{0x42f7, ElementTypeUint, "EBMLReadVersion"}
	ElementEBMLMaxIDLength    = ElementRegister{0x42f2, ElementTypeUint, "EBMLMaxIDLength"}
	ElementEBMLMaxSizeLength  = ElementRegister{0x42f3, ElementTypeUint, "EBMLMaxSizeLength"}
	ElementDocType            = ElementRegister{0x4282, ElementTypeString, "DocType"}
	ElementDocTypeVersion     = ElementRegister{0x4287, ElementTypeUint, "DocTypeVersion"}
	ElementDocTypeReadVersion = ElementRegister{0x4285, ElementTypeUint, "DocTypeReadVersion"}
	ElementVoid               = ElementRegister{0xec, ElementTypeBinary, "Void"}
	ElementCRC32              = ElementRegister{0xbf, ElementTypeBinary, "CRC-32"}
	ElementSegment            = ElementRegister{0x18538067, ElementTypeMaster, "Segment"}
	ElementInfo               = ElementRegister{0x1549a966, ElementTypeMaster, "Info"}
	ElementTimecodeScale      = ElementRegister{0x2ad7b1, ElementTypeUint, "TimecodeScale"}
	ElementSegmentUID         = ElementRegister{0x73a4, ElementTypeBinary, "SegmentUID"}
	ElementDuration           = ElementRegister{0x4489, ElementTypeFloat, "Duration"}
	ElementMuxingApp          = ElementRegister{0x4d80, ElementTypeUnicode, "MuxingApp"}
	ElementWritingApp         = ElementRegister{0x5741, ElementTypeUnicode, "WritingApp"}
	ElementTracks             = ElementRegister{0x1654ae6b, ElementTypeMaster, "Tracks"}
	ElementTrackEntry         = ElementRegister{0xae, ElementTypeMaster, "TrackEntry"}
	ElementTrackNumber        = ElementRegister{0xd7, ElementTypeUint, "TrackNumber"}
	ElementTrackUID           = ElementRegister{0x73c5, ElementTypeUint, "TrackUID"}
	ElementTrackType          = ElementRegister{0x83, ElementTypeUint, "TrackType"}
	ElementFlagLacing         = ElementRegister{0x9c, ElementTypeUint, "FlagLacing"}
	ElementName               = ElementRegister{0x536e, ElementTypeUnicode, "Name"}
	ElementCodecID            = ElementRegister{0x86, ElementTypeString, "CodecID"}
	ElementCodecPrivate       = ElementRegister{0x63a2, ElementTypeBinary, "CodecPrivate"}
	ElementCluster            = ElementRegister{0x1f43b675, ElementTypeMaster, "Cluster"}
	ElementTimecode           = ElementRegister{0xe7, ElementTypeUint, "Timecode"}
	ElementSimpleBlock        = ElementRegister{0xa3, ElementTypeBinary, "SimpleBlock"}
	ElementBlockGroup         = ElementRegister{0xa0, ElementTypeMaster, "BlockGroup"}
	ElementBlock              = ElementRegister{0xa1, ElementTypeBinary, "Block"}
	ElementBlockDuration      = ElementRegister{0x9b, ElementTypeUint, "BlockDuration"}
	ElementReferenceBlock     = ElementRegister{0xfb, ElementTypeInt, "ReferenceBlock"}
)

var registry = map[uint32]ElementRegister{}

func init() {
	for _, reg := range []ElementRegister{
		ElementEBML, ElementEBMLVersion, ElementEBMLReadVersion,
		ElementEBMLMaxIDLength, ElementEBMLMaxSizeLength,
		ElementDocType, ElementDocTypeVersion, ElementDocTypeReadVersion,
		ElementVoid, ElementCRC32,
		ElementSegment, ElementInfo, ElementTimecodeScale, ElementSegmentUID,
		ElementDuration, ElementMuxingApp, ElementWritingApp,
		ElementTracks, ElementTrackEntry, ElementTrackNumber, ElementTrackUID,
		ElementTrackType, ElementFlagLacing, ElementName, ElementCodecID,
		ElementCodecPrivate,
		ElementCluster, ElementTimecode, ElementSimpleBlock,
		ElementBlockGroup, ElementBlock, ElementBlockDuration,
		ElementReferenceBlock,
	} {
		registry[reg.ID] = reg
	}
}

// GetElementRegister resolves a parsed element id. Ids this package does not
// know are returned as ElementUnknown with the id filled in, so callers can
// still skip over them.
func GetElementRegister(id uint32) ElementRegister {
	if reg, ok := registry[id]; ok {
		return reg
	}
	reg := ElementUnknown
	reg.ID = id
	return reg
}
