package fit

// devFieldKey scopes a developer field definition number to the
// developer data index that declared it, since field_definition_number
// is only unique per developer.
type devFieldKey struct {
	devDataIndex byte
	fieldDefNum  byte
}

// devFieldDescription is the resolved shape of one developer field, as
// declared by a FieldDescription (206) message earlier in the stream.
type devFieldDescription struct {
	Name   string
	Base   BaseType
	Scale  float64
	Offset float64
	Units  string
}

// recordFieldDescription consults a decoded FieldDescription message and,
// if it carries enough fields to resolve a developer field, stores it in
// the decoder's developer-field table for later data records to consult.
// Developer fields are resolved by (devDataIndex, fieldDefNum), not
// discarded as opaque byte-array fields.
func (d *decoder) recordFieldDescription(msg Message) {
	indexF, ok := msg.FieldByNum(0)
	if !ok || !indexF.Known {
		return
	}
	fieldNumF, ok := msg.FieldByNum(1)
	if !ok || !fieldNumF.Known {
		return
	}
	baseTypeF, ok := msg.FieldByNum(2)
	if !ok || !baseTypeF.Known {
		return
	}

	devIndex, ok := indexF.Value.(uint8)
	if !ok {
		return
	}
	fieldNum, ok := fieldNumF.Value.(uint8)
	if !ok {
		return
	}
	baseTypeID, ok := baseTypeF.Value.(uint8)
	if !ok {
		return
	}

	desc := devFieldDescription{Base: BaseType(baseTypeID), Scale: 1}
	if nameF, ok := msg.FieldByNum(3); ok && nameF.Known {
		if s, ok := nameF.Value.(string); ok {
			desc.Name = s
		}
	}
	if scaleF, ok := msg.FieldByNum(6); ok && scaleF.Known {
		if s, ok := scaleF.Value.(uint8); ok && s != 0 {
			desc.Scale = float64(s)
		}
	}
	if offsetF, ok := msg.FieldByNum(7); ok && offsetF.Known {
		if o, ok := offsetF.Value.(int8); ok {
			desc.Offset = float64(o)
		}
	}
	if unitsF, ok := msg.FieldByNum(8); ok && unitsF.Known {
		if s, ok := unitsF.Value.(string); ok {
			desc.Units = s
		}
	}

	if d.devFields == nil {
		d.devFields = make(map[devFieldKey]devFieldDescription)
	}
	d.devFields[devFieldKey{devDataIndex: devIndex, fieldDefNum: fieldNum}] = desc
}

// decodeDevFieldValue resolves a developer field's raw bytes against the
// decoder's developer-field table. Fields with no matching description,
// including every one until a FieldDescription for that (index, num) has
// been seen, decode as opaque, Known=false values carrying the field
// definition number and the raw bytes; the developer data index is not
// recorded on the returned FieldValue.
func (d *decoder) decodeDevFieldValue(fd DevFieldDef, data []byte) FieldValue {
	desc, ok := d.devFields[devFieldKey{devDataIndex: fd.DevDataIndex, fieldDefNum: fd.Num}]
	if !ok {
		return FieldValue{Num: fd.Num, Known: false, Data: DecodeBytes(data)}
	}

	if desc.Base == BaseTypeString {
		s, err := DecodeString(data)
		if err != nil {
			return FieldValue{Num: fd.Num, Known: false, Data: DecodeBytes(data)}
		}
		return FieldValue{
			Num: fd.Num, Known: true, Name: desc.Name, Value: s, Scale: 1, Units: desc.Units,
			Data: DecodeBytes(data), Base: desc.Base, Raw: s,
		}
	}

	if desc.Base == BaseTypeByte {
		// Keep the whole declared run; a scalar read would keep only
		// the first byte of a multi-byte blob field.
		b := DecodeBytes(data)
		return FieldValue{
			Num: fd.Num, Known: true, Name: desc.Name, Value: b,
			Scale: 1, Units: desc.Units, Data: DecodeBytes(data),
			Base: desc.Base, Raw: b,
		}
	}

	size := desc.Base.Size()
	if size == 0 || len(data) != size {
		return FieldValue{Num: fd.Num, Known: false, Data: DecodeBytes(data)}
	}

	raw, err := desc.Base.DecodeScalar(data, d.currentOrder)
	if err != nil {
		return FieldValue{Num: fd.Num, Known: false, Data: DecodeBytes(data)}
	}

	return FieldValue{
		Num: fd.Num, Known: true, Name: desc.Name, Value: raw,
		Scale: desc.Scale, Offset: desc.Offset, Units: desc.Units, Data: DecodeBytes(data),
		Base: desc.Base, Raw: raw,
	}
}
