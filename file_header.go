package fit

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/vlisivka/garminfit/crc16"
)

// decodeHeader reads and validates the 12- or 14-byte FIT file
// header.
func (d *decoder) decodeHeader() error {
	var buf [minHeaderSize]byte
	if err := d.readFull(buf[:]); err != nil {
		return wrapRead("file header", err)
	}

	size := buf[0]
	if size < minHeaderSize || size == minHeaderSize+1 {
		// The size byte is authoritative for how many bytes the header
		// occupies; anything that can't even hold the fixed 12-byte
		// prefix (or the impossible 13) leaves the stream unparseable.
		return errors.Errorf("invalid file header size %d", size)
	}
	if size != minHeaderSize && size != maxHeaderSize && debug {
		logHeaderSizeWarning(size)
	}

	h := Header{
		Size:       size,
		ProtoVer:   buf[1],
		ProfileVer: binary.LittleEndian.Uint16(buf[2:4]),
		DataSize:   binary.LittleEndian.Uint32(buf[4:8]),
	}

	if string(buf[8:12]) != fileSignature {
		var got [4]byte
		copy(got[:], buf[8:12])
		return &BadSignatureError{Got: got}
	}

	if size >= maxHeaderSize {
		var crcBuf [2]byte
		if err := d.readFull(crcBuf[:]); err != nil {
			return wrapRead("header crc", err)
		}
		h.HasCRC = true
		h.CRC = binary.LittleEndian.Uint16(crcBuf[:])
		if h.CRC != 0 {
			computed := crc16.Checksum(buf[:])
			if computed != h.CRC {
				return &BadCRCError{Stored: h.CRC, Computed: computed}
			}
		}
	}

	// A forward-compatible header larger than 14 bytes: consume the
	// extra bytes so record parsing starts at the right offset.
	for extra := int(size) - maxHeaderSize; extra > 0; extra-- {
		if err := d.skipByte(); err != nil {
			return wrapRead("file header", err)
		}
	}

	d.header = h
	return nil
}

func logHeaderSizeWarning(size byte) {
	// Kept as its own function so the hot path above doesn't pay for a
	// Sprintf when debug logging is off.
	logPrintf("unexpected file header size: %d", size)
}
