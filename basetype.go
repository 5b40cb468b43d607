package fit

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// BaseType identifies one of the 17 FIT base scalar/array types. The
// numeric values match the FIT SDK's base type IDs; the high bit marks
// types whose size is greater than one byte (and so are endian-sensitive).
type BaseType byte

// The 17 FIT base types.
const (
	BaseTypeEnum    BaseType = 0x00
	BaseTypeSint8   BaseType = 0x01
	BaseTypeUint8   BaseType = 0x02
	BaseTypeString  BaseType = 0x07
	BaseTypeUint8z  BaseType = 0x0A
	BaseTypeByte    BaseType = 0x0D
	BaseTypeSint16  BaseType = 0x83
	BaseTypeUint16  BaseType = 0x84
	BaseTypeSint32  BaseType = 0x85
	BaseTypeUint32  BaseType = 0x86
	BaseTypeFloat32 BaseType = 0x88
	BaseTypeFloat64 BaseType = 0x89
	BaseTypeUint16z BaseType = 0x8B
	BaseTypeUint32z BaseType = 0x8C
	BaseTypeSint64  BaseType = 0x8E
	BaseTypeUint64  BaseType = 0x8F
	BaseTypeUint64z BaseType = 0x90
)

// baseTypeInfo carries the fixed facts about a base type: its element
// width in bytes and a human name for error messages.
type baseTypeInfo struct {
	size int
	name string
}

var baseTypes = map[BaseType]baseTypeInfo{
	BaseTypeEnum:    {1, "enum"},
	BaseTypeSint8:   {1, "sint8"},
	BaseTypeUint8:   {1, "uint8"},
	BaseTypeString:  {1, "string"},
	BaseTypeUint8z:  {1, "uint8z"},
	BaseTypeByte:    {1, "byte"},
	BaseTypeSint16:  {2, "sint16"},
	BaseTypeUint16:  {2, "uint16"},
	BaseTypeSint32:  {4, "sint32"},
	BaseTypeUint32:  {4, "uint32"},
	BaseTypeFloat32: {4, "float32"},
	BaseTypeFloat64: {8, "float64"},
	BaseTypeUint16z: {2, "uint16z"},
	BaseTypeUint32z: {4, "uint32z"},
	BaseTypeSint64:  {8, "sint64"},
	BaseTypeUint64:  {8, "uint64"},
	BaseTypeUint64z: {8, "uint64z"},
}

// Size returns the element width in bytes of one value of this base type.
// For BaseTypeString and BaseTypeByte this is the width of a single
// element of the backing array, not the declared field size.
func (bt BaseType) Size() int {
	info, ok := baseTypes[bt]
	if !ok {
		return 0
	}
	return info.size
}

// Known reports whether bt is one of the 17 recognized FIT base types.
func (bt BaseType) Known() bool {
	_, ok := baseTypes[bt]
	return ok
}

func (bt BaseType) String() string {
	if info, ok := baseTypes[bt]; ok {
		return info.name
	}
	return "unknown"
}

// DecodeScalar decodes exactly one value of bt from b, which must be
// bt.Size() bytes long, using the supplied byte order. BaseTypeByte
// yields only b[0]; whole byte runs are decoded with DecodeBytes.
// BaseTypeString is not scalar and returns an error here; strings are
// decoded with DecodeString.
func (bt BaseType) DecodeScalar(b []byte, order binary.ByteOrder) (interface{}, error) {
	switch bt {
	case BaseTypeEnum, BaseTypeUint8, BaseTypeUint8z:
		return b[0], nil
	case BaseTypeSint8:
		return int8(b[0]), nil
	case BaseTypeSint16:
		return int16(order.Uint16(b)), nil
	case BaseTypeUint16, BaseTypeUint16z:
		return order.Uint16(b), nil
	case BaseTypeSint32:
		return int32(order.Uint32(b)), nil
	case BaseTypeUint32, BaseTypeUint32z:
		return order.Uint32(b), nil
	case BaseTypeSint64:
		return int64(order.Uint64(b)), nil
	case BaseTypeUint64, BaseTypeUint64z:
		return order.Uint64(b), nil
	case BaseTypeFloat32:
		return math.Float32frombits(order.Uint32(b)), nil
	case BaseTypeFloat64:
		return math.Float64frombits(order.Uint64(b)), nil
	case BaseTypeByte:
		return b[0], nil
	default:
		return nil, wrapDecode("base type", &unknownBaseTypeError{bt})
	}
}

type unknownBaseTypeError struct{ bt BaseType }

func (e *unknownBaseTypeError) Error() string {
	return "unrecognized base type id " + byteHex(byte(e.bt))
}

func byteHex(b byte) string {
	const hex = "0123456789abcdef"
	return "0x" + string([]byte{hex[b>>4], hex[b&0xf]})
}

// DecodeString decodes a fixed-length byte run as a NUL-trimmed UTF-8
// string. A run with no NUL terminator is kept whole; a run that fails
// UTF-8 validation returns InvalidEncodingError.
func DecodeString(b []byte) (string, error) {
	n := 0
	for n < len(b) && b[n] != 0x00 {
		n++
	}
	s := b[:n]
	if !utf8.Valid(s) {
		return "", &InvalidEncodingError{}
	}
	return string(s), nil
}

// DecodeBytes copies b verbatim; used for BaseTypeByte runs and for raw
// preservation of unknown fields.
func DecodeBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// IsValid reports whether v, previously decoded as base type bt, is not
// the type's reserved invalid sentinel. Unknown base types are always
// considered valid since there's no sentinel to compare against.
func (bt BaseType) IsValid(v interface{}) bool {
	switch bt {
	case BaseTypeEnum, BaseTypeUint8:
		u, ok := v.(uint8)
		return ok && u != 0xFF
	case BaseTypeByte:
		// Byte fields decode to their whole declared run; the sentinel
		// is every byte 0xFF.
		switch b := v.(type) {
		case []byte:
			for _, c := range b {
				if c != 0xFF {
					return true
				}
			}
			return len(b) == 0
		case uint8:
			return b != 0xFF
		default:
			return false
		}
	case BaseTypeSint8:
		i, ok := v.(int8)
		return ok && i != 0x7F
	case BaseTypeUint8z:
		u, ok := v.(uint8)
		return ok && u != 0x00
	case BaseTypeSint16:
		i, ok := v.(int16)
		return ok && i != 0x7FFF
	case BaseTypeUint16:
		u, ok := v.(uint16)
		return ok && u != 0xFFFF
	case BaseTypeUint16z:
		u, ok := v.(uint16)
		return ok && u != 0x0000
	case BaseTypeSint32:
		i, ok := v.(int32)
		return ok && i != 0x7FFFFFFF
	case BaseTypeUint32:
		u, ok := v.(uint32)
		return ok && u != 0xFFFFFFFF
	case BaseTypeUint32z:
		u, ok := v.(uint32)
		return ok && u != 0x00000000
	case BaseTypeSint64:
		i, ok := v.(int64)
		return ok && i != 0x7FFFFFFFFFFFFFFF
	case BaseTypeUint64:
		u, ok := v.(uint64)
		return ok && u != 0xFFFFFFFFFFFFFFFF
	case BaseTypeUint64z:
		u, ok := v.(uint64)
		return ok && u != 0x0000000000000000
	case BaseTypeFloat32:
		f, ok := v.(float32)
		return ok && !math.IsNaN(float64(f))
	case BaseTypeFloat64:
		f, ok := v.(float64)
		return ok && !math.IsNaN(f)
	case BaseTypeString:
		s, ok := v.(string)
		return ok && s != ""
	default:
		return true
	}
}
