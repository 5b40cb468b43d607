package fit

// decodeRecordHeader interprets one record-header byte, using the bit
// utilities from bits.go rather than inline masks.
func decodeRecordHeader(b byte) RecordHeader {
	if IsBitSet(b, 7) {
		return RecordHeader{
			Kind:          HeaderCompressedTimestamp,
			LocalMesgNum:  BitRange(b, 5, 6),
			TimeOffsetSec: BitRange(b, 0, 4),
		}
	}
	if IsBitSet(b, 6) {
		return RecordHeader{
			Kind:         HeaderDefinition,
			LocalMesgNum: BitRange(b, 0, 3),
			HasDevFields: IsBitSet(b, 5),
		}
	}
	return RecordHeader{
		Kind:         HeaderData,
		LocalMesgNum: BitRange(b, 0, 3),
	}
}
