package fit

import (
	"encoding/binary"

	"github.com/vlisivka/garminfit/crc16"
)

// builder assembles raw FIT record bytes by hand, the way a hex dump
// would be typed in: header byte, then body bytes in wire order. It
// exists only for tests.
type builder struct{ buf []byte }

func (b *builder) u8(v byte) *builder { b.buf = append(b.buf, v); return b }

func (b *builder) bytes(v ...byte) *builder { b.buf = append(b.buf, v...); return b }

func (b *builder) u16(order binary.ByteOrder, v uint16) *builder {
	var tmp [2]byte
	order.PutUint16(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

func (b *builder) u32(order binary.ByteOrder, v uint32) *builder {
	var tmp [4]byte
	order.PutUint32(tmp[:], v)
	b.buf = append(b.buf, tmp[:]...)
	return b
}

func (b *builder) str(s string, width int) *builder {
	buf := make([]byte, width)
	copy(buf, s)
	b.buf = append(b.buf, buf...)
	return b
}

// buildFile wraps payload (definition + data records) in a valid 12-byte
// file header and a correctly computed trailing CRC, mirroring what a
// real encoder would produce. Using crc16.Checksum here, the same
// algorithm the decoder itself checks against, keeps the fixture
// self-consistent without needing a hand-verified magic CRC constant.
func buildFile(profileVer uint16, payload []byte) []byte {
	hdr := make([]byte, 12)
	hdr[0] = 12
	hdr[1] = 0x10
	binary.LittleEndian.PutUint16(hdr[2:4], profileVer)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(payload)))
	copy(hdr[8:12], fileSignature)

	full := append(append([]byte{}, hdr...), payload...)
	crc := crc16.Checksum(full)
	var crcBuf [2]byte
	binary.LittleEndian.PutUint16(crcBuf[:], crc)
	return append(full, crcBuf[:]...)
}

// fileIDDefinition appends a definition record (local slot localNum,
// architecture arch) for
// FileId with four fields: type, manufacturer, serial_number, time_created.
func fileIDDefinition(b *builder, localNum byte, arch byte, order binary.ByteOrder) {
	b.u8(0x40 | localNum) // definition header, no dev fields
	b.u8(0x00)            // reserved
	b.u8(arch)
	b.u16(order, uint16(MesgNumFileId))
	b.u8(4) // nfields
	b.bytes(0, 1, byte(BaseTypeEnum))
	b.bytes(1, 2, byte(BaseTypeUint16))
	b.bytes(3, 4, byte(BaseTypeUint32z))
	b.bytes(4, 4, byte(BaseTypeUint32))
}
