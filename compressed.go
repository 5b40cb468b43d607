package fit

// compressedTimeMask isolates the 5-bit time-offset-in-seconds field of a
// compressed-timestamp header, and is also the modulus used when
// unwrapping that offset against the decoder's running reference time.
const compressedTimeMask = 0x1F

// decodeCompressedTimestampRecord decodes a compressed-timestamp record's
// payload using the layout of its referenced definition, then overrides or
// synthesizes that message's timestamp field from the header-carried
// delta.
//
// Folding the offset directly into a new absolute timestamp on every
// compressed record would lose precision across a run of compressed
// records sharing one reference second, so the last full timestamp
// instead advances by the wrapped difference between the new and
// previous 5-bit offsets, as the FIT SDK describes.
func (d *decoder) decodeCompressedTimestampRecord(hdr RecordHeader, def *Definition, f *File) (Message, error) {
	msg, err := d.decodeMessageFields(def, f)
	if err != nil {
		return Message{}, err
	}

	if d.timestamp == 0 {
		if debug {
			logPrintf("compressed timestamp header for local mesg %d with no reference time yet", hdr.LocalMesgNum)
		}
		return msg, nil
	}

	offset := int32(hdr.TimeOffsetSec)
	delta := (offset - d.lastTimeOffset) & compressedTimeMask
	d.timestamp += uint32(delta)
	d.lastTimeOffset = offset

	dt := NewDateTime(d.timestamp)
	for i := range msg.Fields {
		if msg.Fields[i].Num == fieldNumTimeStamp {
			msg.Fields[i].Known = true
			msg.Fields[i].Value = dt
			msg.Fields[i].Scale = 1
			return msg, nil
		}
	}

	name := ""
	if spec, known := getMessageSpec(def.GlobalMesgNum); known {
		if fs, ok := spec.Fields[fieldNumTimeStamp]; ok {
			name = fs.Name
		}
	}
	msg.Fields = append(msg.Fields, FieldValue{
		Num: fieldNumTimeStamp, Known: true, Name: name, Value: dt, Scale: 1,
	})
	return msg, nil
}
