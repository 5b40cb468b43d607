package fit

import (
	"fmt"

	"github.com/pkg/errors"
)

// BadSignatureError is returned when a file header does not carry the
// ASCII ".FIT" signature at the expected offset.
type BadSignatureError struct {
	Got [4]byte
}

func (e *BadSignatureError) Error() string {
	return fmt.Sprintf("bad file signature: got %q, want \".FIT\"", e.Got[:])
}

// BadCRCError is returned when a computed CRC does not match the CRC
// stored in the file.
type BadCRCError struct {
	Stored   uint16
	Computed uint16
}

func (e *BadCRCError) Error() string {
	return fmt.Sprintf("bad crc: stored %#04x, computed %#04x", e.Stored, e.Computed)
}

// UnknownArchitectureError is returned when a definition record's
// architecture byte is not 0 (little-endian) or 1 (big-endian).
type UnknownArchitectureError byte

func (e UnknownArchitectureError) Error() string {
	return fmt.Sprintf("unknown architecture byte %#x", byte(e))
}

// MissingDefinitionError is returned when a data record references a
// local message number with no prior definition record on that slot.
type MissingDefinitionError byte

func (e MissingDefinitionError) Error() string {
	return fmt.Sprintf("missing definition for local message number %d", byte(e))
}

// InvalidEncodingError is returned when a string field fails UTF-8
// validation.
type InvalidEncodingError struct {
	FieldNum byte
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("invalid utf-8 encoding in field %d", e.FieldNum)
}

// wrapRead adds "reading <context>" framing to a low-level read
// failure.
func wrapRead(context string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, "reading "+context)
}

// wrapDecode adds "decoding <context>" framing to a failure from a
// higher-level decode step.
func wrapDecode(context string, err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, "decoding "+context)
}
