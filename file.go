package fit

import "encoding/binary"

// FieldValue is a single decoded field: either a recognized profile field
// (Known true) carrying a semantic Value plus its scale/offset/units
// annotations, or an opaque field (Known false) carrying only its raw
// bytes and definition number.
type FieldValue struct {
	Num    byte
	Known  bool
	Name   string
	Value  interface{}
	Scale  float64
	Offset float64
	Units  string
	Data   []byte

	// Base and Raw record the wire base type and its pre-profile-kind
	// decoded value, so IsValid can check the correct sentinel even
	// after Value has been wrapped in a profile type (e.g. Sport,
	// DateTime) whose underlying Go type doesn't identify which of the
	// 17 base types produced it.
	Base BaseType
	Raw  interface{}
}

// ScaledValue returns the field's observable value, v/scale - offset, for
// fields whose Value is one of the base numeric Go types. ok is false for
// non-numeric fields (strings, byte arrays, profile enum types) or
// unknown fields.
func (f FieldValue) ScaledValue() (value float64, ok bool) {
	if !f.Known {
		return 0, false
	}
	scale := f.Scale
	if scale == 0 {
		scale = 1
	}
	var v float64
	switch n := f.Value.(type) {
	case uint8:
		v = float64(n)
	case int8:
		v = float64(n)
	case uint16:
		v = float64(n)
	case int16:
		v = float64(n)
	case uint32:
		v = float64(n)
	case int32:
		v = float64(n)
	case uint64:
		v = float64(n)
	case int64:
		v = float64(n)
	case float32:
		v = float64(n)
	case float64:
		v = n
	default:
		return 0, false
	}
	return v/scale - f.Offset, true
}

// IsValid reports whether the field's raw decoded value is not its
// base type's reserved invalid sentinel. Unknown fields are always
// considered valid (there's nothing to invalidate);
// profile types that track their own validity (DateTime, LocalDateTime)
// are asked directly since wrapping can otherwise obscure which base
// type produced the sentinel.
func (f FieldValue) IsValid() bool {
	if !f.Known {
		return true
	}
	switch v := f.Value.(type) {
	case DateTime:
		return v.Valid()
	case LocalDateTime:
		return v.Valid()
	}
	if f.Raw == nil {
		return true
	}
	return f.Base.IsValid(f.Raw)
}

// Message is a decoded data record's content: the global message number
// it was defined against, whether that number is recognized by the
// profile, and the list of decoded fields in wire order. An unrecognized
// message (Known false) still carries every field, each marked Known
// false with its raw bytes preserved.
type Message struct {
	Num    MesgNum
	Name   string
	Known  bool
	Fields []FieldValue
}

// FieldByNum returns the first field with the given definition number, if
// present.
func (m Message) FieldByNum(num byte) (FieldValue, bool) {
	for _, f := range m.Fields {
		if f.Num == num {
			return f, true
		}
	}
	return FieldValue{}, false
}

// HeaderKind distinguishes the three record header shapes.
type HeaderKind int

const (
	HeaderData HeaderKind = iota
	HeaderDefinition
	HeaderCompressedTimestamp
)

// RecordHeader is the decoded form of a record's leading header byte.
type RecordHeader struct {
	Kind          HeaderKind
	LocalMesgNum  byte
	HasDevFields  bool // only meaningful when Kind == HeaderDefinition
	TimeOffsetSec byte // only meaningful when Kind == HeaderCompressedTimestamp
}

// Record is one decoded FIT record: its header, and, for data and
// compressed-timestamp records, the message it carried. Definition
// records carry no Message; they only ever mutate the decoder's
// local-message table.
type Record struct {
	Header  RecordHeader
	Message *Message
}

// UnknownField identifies a field definition number seen under a known
// message number that the profile does not recognize.
type UnknownField struct {
	Num MesgNum
	Def byte
}

// Header is the 12- or 14-byte FIT file header.
type Header struct {
	Size       uint8
	ProtoVer   uint8
	ProfileVer uint16
	DataSize   uint32
	HasCRC     bool
	CRC        uint16
}

// File is the fully decoded output of Decode: the file header and every
// record in stream order, plus tallies of anything the profile did not
// recognize.
type File struct {
	Header          Header
	Records         []Record
	UnknownMessages map[MesgNum]int
	UnknownFields   map[UnknownField]int
}

// decodeFieldValue turns a field definition's raw bytes into a
// FieldValue, consulting the profile for a known (mesgNum, fieldNum)
// pair and otherwise returning an opaque, Known=false value: resolve
// message, resolve field, decode with the chosen base/profile-type
// decoder under order, and attach the profile's static
// scale/offset/units.
func decodeFieldValue(mesgNum MesgNum, fieldNum byte, data []byte, order binary.ByteOrder) (FieldValue, error) {
	spec, found := getFieldSpec(mesgNum, fieldNum)
	if !found {
		return FieldValue{Num: fieldNum, Known: false, Data: DecodeBytes(data)}, nil
	}

	if spec.Base == BaseTypeString {
		s, err := DecodeString(data)
		if err != nil {
			if ie, ok := err.(*InvalidEncodingError); ok {
				ie.FieldNum = fieldNum
			}
			return FieldValue{}, err
		}
		return FieldValue{
			Num: fieldNum, Known: true, Name: spec.Name,
			Value: s, Scale: 1, Units: spec.Units, Data: DecodeBytes(data),
			Base: spec.Base, Raw: s,
		}, nil
	}

	if spec.Base == BaseTypeByte {
		b := DecodeBytes(data)
		return FieldValue{
			Num: fieldNum, Known: true, Name: spec.Name,
			Value: b, Scale: 1, Units: spec.Units, Data: DecodeBytes(data),
			Base: spec.Base, Raw: b,
		}, nil
	}

	size := spec.Base.Size()
	if size == 0 || len(data) == 0 || len(data)%size != 0 {
		// Declared size isn't a whole number of elements of the profile
		// base type. Preserve the raw bytes rather than decoding a
		// truncated prefix and silently dropping the rest.
		return FieldValue{Num: fieldNum, Known: false, Data: DecodeBytes(data)}, nil
	}

	if len(data) > size {
		// Array field (e.g. hrv.time, the per-zone arrays of
		// time_in_zone): decode each element under the definition's
		// byte order.
		vals := make([]interface{}, 0, len(data)/size)
		for off := 0; off < len(data); off += size {
			v, err := spec.Base.DecodeScalar(data[off:off+size], order)
			if err != nil {
				return FieldValue{}, err
			}
			vals = append(vals, v)
		}
		scale := spec.Scale
		if scale == 0 {
			scale = 1
		}
		return FieldValue{
			Num: fieldNum, Known: true, Name: spec.Name,
			Value: vals, Scale: scale, Offset: spec.Offset, Units: spec.Units,
			Data: DecodeBytes(data), Base: spec.Base,
		}, nil
	}

	raw, err := spec.Base.DecodeScalar(data, order)
	if err != nil {
		return FieldValue{}, err
	}

	value := applyProfileKind(spec.Kind, spec.Base, raw)

	scale := spec.Scale
	if scale == 0 {
		scale = 1
	}

	return FieldValue{
		Num: fieldNum, Known: true, Name: spec.Name,
		Value: value, Scale: scale, Offset: spec.Offset, Units: spec.Units,
		Data: DecodeBytes(data), Base: spec.Base, Raw: raw,
	}, nil
}

// applyProfileKind layers a profile (enumerated domain) type
// interpretation atop an already-decoded base type value.
func applyProfileKind(kind profileKind, base BaseType, raw interface{}) interface{} {
	switch kind {
	case kindSport:
		return Sport(toUint8(raw))
	case kindSubSport:
		return SubSport(toUint8(raw))
	case kindEvent:
		return Event(toUint8(raw))
	case kindEventType:
		return EventType(toUint8(raw))
	case kindManufacturer:
		return Manufacturer(toUint16(raw))
	case kindFileType:
		return FileType(toUint8(raw))
	case kindIntensity:
		return Intensity(toUint8(raw))
	case kindSex:
		return Sex(toUint8(raw))
	case kindDisplayMeasure:
		return DisplayMeasure(toUint8(raw))
	case kindBatteryStatus:
		return BatteryStatus(toUint8(raw))
	case kindDateTime:
		return NewDateTime(toUint32(raw))
	case kindLocalDateTime:
		return NewLocalDateTime(toUint32(raw))
	case kindMessageIndex:
		return NewMessageIndex(toUint16(raw))
	case kindLeftRightBalance:
		return LeftRightBalance(toUint8(raw))
	case kindLeftRightBalance100:
		return LeftRightBalance100(toUint16(raw))
	default:
		return raw
	}
}

func toUint8(v interface{}) uint8 {
	if u, ok := v.(uint8); ok {
		return u
	}
	return 0
}

func toUint16(v interface{}) uint16 {
	if u, ok := v.(uint16); ok {
		return u
	}
	return 0
}

func toUint32(v interface{}) uint32 {
	if u, ok := v.(uint32); ok {
		return u
	}
	return 0
}
