package fit

// decodeDataRecord decodes one data record's payload against its stored
// definition: read each field run in definition order, dispatch it
// through the profile table, and fold developer fields in afterward. A
// FieldDescription message additionally populates the decoder's
// developer-field table for data records seen later in the stream.
func (d *decoder) decodeDataRecord(def *Definition, f *File) (Message, error) {
	return d.decodeMessageFields(def, f)
}

// decodeMessageFields is the field-extraction loop shared by plain data
// records and compressed-timestamp records, since a compressed-timestamp
// record's payload inherits the layout of the local definition it
// references; only the record's own timestamp handling differs, which
// decodeCompressedTimestampRecord layers on top.
func (d *decoder) decodeMessageFields(def *Definition, f *File) (Message, error) {
	d.currentOrder = def.Order

	spec, known := getMessageSpec(def.GlobalMesgNum)
	msg := Message{Num: def.GlobalMesgNum, Known: known}
	if known {
		msg.Name = spec.Name
	} else {
		f.UnknownMessages[def.GlobalMesgNum]++
	}

	msg.Fields = make([]FieldValue, 0, len(def.Fields)+len(def.DevFields))

	for _, fd := range def.Fields {
		buf := make([]byte, fd.Size)
		if err := d.readFull(buf); err != nil {
			return Message{}, wrapRead("data field", err)
		}

		fv, err := decodeFieldValue(def.GlobalMesgNum, fd.Num, buf, def.Order)
		if err != nil {
			return Message{}, err
		}
		if known && !fv.Known {
			f.UnknownFields[UnknownField{Num: def.GlobalMesgNum, Def: fd.Num}]++
		}
		d.observeTimestampField(fv)
		msg.Fields = append(msg.Fields, fv)
	}

	for _, fd := range def.DevFields {
		buf := make([]byte, fd.Size)
		if err := d.readFull(buf); err != nil {
			return Message{}, wrapRead("developer field", err)
		}
		msg.Fields = append(msg.Fields, d.decodeDevFieldValue(fd, buf))
	}

	if def.GlobalMesgNum == MesgNumFieldDescription {
		d.recordFieldDescription(msg)
	}

	return msg, nil
}

// observeTimestampField updates the decoder's reference time whenever a
// field_num 253 (timestamp) field decodes to a valid DateTime, so a later
// compressed-timestamp header has something to offset from.
func (d *decoder) observeTimestampField(fv FieldValue) {
	if fv.Num != fieldNumTimeStamp {
		return
	}
	dt, ok := fv.Value.(DateTime)
	if !ok || !dt.Valid() {
		return
	}
	d.timestamp = uint32(dt.Unix() - fitEpochOffset)
	d.lastTimeOffset = int32(d.timestamp & compressedTimeMask)
}
