package fit

import "encoding/binary"

// maxLocalMesgs is the number of local message slots a normal header
// can address (4 bits); compressed-timestamp headers only ever reach
// the first 4 of these (2 bits).
const maxLocalMesgs = 16

// FieldDef is one 3-byte field definition within a Definition record.
type FieldDef struct {
	Num      byte
	Size     byte
	BaseType BaseType
}

// DevFieldDef is one 3-byte developer field definition: its field
// definition number (scoped to DevDataIndex, resolved via a prior
// FieldDescription message), its declared size, and the developer data
// index that scopes it.
type DevFieldDef struct {
	Num          byte
	Size         byte
	DevDataIndex byte
}

// Definition is a decoded definition record: the architecture and global
// message number it binds its local slot to, plus the ordered field runs
// that define a matching data record's layout.
type Definition struct {
	LocalMesgNum  byte
	Order         binary.ByteOrder
	GlobalMesgNum MesgNum
	Fields        []FieldDef
	DevFields     []DevFieldDef
}

// parseDefinition decodes a definition record's body, having already
// consumed its header byte. Layout: one reserved byte,
// one architecture byte, a 2-byte global message number in that
// architecture, a field count and that many 3-byte field definitions,
// then, if hdr.HasDevFields, a developer field count and that many
// 3-byte developer field definitions.
func (d *decoder) parseDefinition(hdr RecordHeader) (*Definition, error) {
	if err := d.skipByte(); err != nil { // reserved
		return nil, wrapRead("reserved byte", err)
	}

	archByte, err := d.readByte()
	if err != nil {
		return nil, wrapRead("architecture byte", err)
	}

	var order binary.ByteOrder
	switch archByte {
	case 0:
		order = binary.LittleEndian
	case 1:
		order = binary.BigEndian
	default:
		return nil, UnknownArchitectureError(archByte)
	}

	var gmnBuf [2]byte
	if err := d.readFull(gmnBuf[:]); err != nil {
		return nil, wrapRead("global message number", err)
	}
	globalMesgNum := MesgNum(order.Uint16(gmnBuf[:]))

	nfields, err := d.readByte()
	if err != nil {
		return nil, wrapRead("field count", err)
	}

	fields := make([]FieldDef, nfields)
	for i := range fields {
		var buf [3]byte
		if err := d.readFull(buf[:]); err != nil {
			return nil, wrapRead("field definition", err)
		}
		fields[i] = FieldDef{Num: buf[0], Size: buf[1], BaseType: BaseType(buf[2])}
	}

	def := &Definition{
		LocalMesgNum:  hdr.LocalMesgNum,
		Order:         order,
		GlobalMesgNum: globalMesgNum,
		Fields:        fields,
	}

	if !hdr.HasDevFields {
		return def, nil
	}

	ndev, err := d.readByte()
	if err != nil {
		return nil, wrapRead("developer field count", err)
	}
	devFields := make([]DevFieldDef, ndev)
	for i := range devFields {
		var buf [3]byte
		if err := d.readFull(buf[:]); err != nil {
			return nil, wrapRead("developer field definition", err)
		}
		devFields[i] = DevFieldDef{Num: buf[0], Size: buf[1], DevDataIndex: buf[2]}
	}
	def.DevFields = devFields

	return def, nil
}
