// Package crc16 implements the FIT SDK's CRC-16 checksum, used to
// validate a FIT file header and its trailing file CRC.
//
// Hash16 is a small streaming type: it can sit behind an io.TeeReader
// and be asked for its running sum once the stream has been consumed.
// The nibble table below comes from the Garmin FIT SDK's published CRC
// algorithm.
package crc16

// table holds the CRC contribution of each possible 4-bit nibble, the
// standard FIT SDK CRC-16 table (polynomial 0x8005, reflected).
var table = [16]uint16{
	0x0000, 0xCC01, 0xD801, 0x1400,
	0xF001, 0x3C00, 0x2800, 0xE401,
	0xA001, 0x6C00, 0x7800, 0xB401,
	0x5000, 0x9C01, 0x8801, 0x4400,
}

// Hash16 accumulates a running FIT CRC-16 over a byte stream.
type Hash16 struct {
	crc uint16
}

// New returns a Hash16 with a zero initial CRC, as required at the start
// of a FIT file header and again at the start of its payload.
func New() *Hash16 {
	return &Hash16{}
}

// Write feeds b into the running CRC and always returns (len(b), nil),
// satisfying io.Writer so a Hash16 can be used as the sink of an
// io.TeeReader.
func (h *Hash16) Write(b []byte) (int, error) {
	for _, c := range b {
		h.crc = step(h.crc, c)
	}
	return len(b), nil
}

// WriteByte feeds a single byte into the running CRC.
func (h *Hash16) WriteByte(b byte) error {
	h.crc = step(h.crc, b)
	return nil
}

// Sum16 returns the current 16-bit CRC value.
func (h *Hash16) Sum16() uint16 { return h.crc }

// Reset zeroes the running CRC.
func (h *Hash16) Reset() { h.crc = 0 }

func step(crc uint16, b byte) uint16 {
	tmp := table[crc&0xF]
	crc = (crc >> 4) & 0x0FFF
	crc = crc ^ tmp ^ table[b&0xF]

	tmp = table[crc&0xF]
	crc = (crc >> 4) & 0x0FFF
	crc = crc ^ tmp ^ table[(b>>4)&0xF]

	return crc
}

// Checksum computes the FIT CRC-16 of b in one call, starting from a zero
// initial value.
func Checksum(b []byte) uint16 {
	h := New()
	_, _ = h.Write(b)
	return h.Sum16()
}
