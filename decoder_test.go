package fit

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vlisivka/garminfit/crc16"
)

// TestDecodeMinimalFileId decodes a single definition record followed
// by one data record populating FileId.
func TestDecodeMinimalFileId(t *testing.T) {
	order := binary.LittleEndian

	var b builder
	fileIDDefinition(&b, 0, 0, order)

	b.u8(0x00) // data header, local 0
	b.u8(byte(FileActivity))
	b.u16(order, 1)          // manufacturer = garmin
	b.u32(order, 12345)      // serial_number
	b.u32(order, 1000000000) // time_created

	raw := buildFile(2166, b.buf)

	f, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if f.Header.DataSize != uint32(len(b.buf)) {
		t.Errorf("data size = %d, want %d", f.Header.DataSize, len(b.buf))
	}
	if len(f.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(f.Records))
	}

	msg := f.Records[0].Message
	if msg == nil || !msg.Known || msg.Num != MesgNumFileId {
		t.Fatalf("got %+v, want a known FileId message", msg)
	}

	typeF, ok := msg.FieldByNum(0)
	if !ok || typeF.Value != FileActivity {
		t.Errorf("type field = %+v, want FileActivity", typeF)
	}
	mfgF, ok := msg.FieldByNum(1)
	if !ok || mfgF.Value != Manufacturer(1) {
		t.Errorf("manufacturer field = %+v, want Manufacturer(1)", mfgF)
	}
	serialF, ok := msg.FieldByNum(3)
	if !ok || serialF.Value != uint32(12345) {
		t.Errorf("serial_number field = %+v, want 12345", serialF)
	}
	timeF, ok := msg.FieldByNum(4)
	if !ok {
		t.Fatal("missing time_created field")
	}
	dt, ok := timeF.Value.(DateTime)
	if !ok || !dt.Valid() {
		t.Errorf("time_created = %+v, want a valid DateTime", timeF.Value)
	}
}

// TestDecodeRecordAltitudeScaling checks a Record message's Altitude
// field with scale=5, offset=500 decoding raw 2500 to an observable
// value of 0.0.
func TestDecodeRecordAltitudeScaling(t *testing.T) {
	order := binary.LittleEndian

	var b builder
	b.u8(0x41) // definition header, local 1
	b.u8(0x00) // reserved
	b.u8(0x00) // arch little-endian
	b.u16(order, uint16(MesgNumRecord))
	b.u8(1) // nfields
	b.bytes(2, 2, byte(BaseTypeUint16)) // altitude

	b.u8(0x01) // data header, local 1
	b.u16(order, 2500)

	raw := buildFile(2166, b.buf)

	f, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	msg := f.Records[0].Message
	altF, ok := msg.FieldByNum(2)
	if !ok {
		t.Fatal("missing altitude field")
	}
	v, ok := altF.ScaledValue()
	if !ok {
		t.Fatal("expected altitude to be scalable")
	}
	if v != 0.0 {
		t.Errorf("altitude value = %v, want 0.0", v)
	}
}

// TestDecodeInvalidHeartRateSentinel checks that a heart_rate field of
// 0xFF decodes without error but reports invalid.
func TestDecodeInvalidHeartRateSentinel(t *testing.T) {
	order := binary.LittleEndian

	var b builder
	b.u8(0x42) // definition header, local 2
	b.u8(0x00)
	b.u8(0x00)
	b.u16(order, uint16(MesgNumRecord))
	b.u8(1)
	b.bytes(3, 1, byte(BaseTypeUint8)) // heart_rate

	b.u8(0x02) // data header, local 2
	b.u8(0xFF)

	raw := buildFile(2166, b.buf)

	f, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	hrF, ok := f.Records[0].Message.FieldByNum(3)
	if !ok {
		t.Fatal("missing heart_rate field")
	}
	if hrF.Value != uint8(0xFF) {
		t.Errorf("heart_rate value = %v, want 0xFF", hrF.Value)
	}
	if hrF.IsValid() {
		t.Error("0xFF heart_rate should be reported invalid")
	}
}

// TestDecodeEndianSwap decodes two definitions on different slots, one
// little-endian and one big-endian, each decoding their own multi-byte
// field correctly and independently.
func TestDecodeEndianSwap(t *testing.T) {
	var b builder

	// Slot 0: little-endian Record with one uint16 field
	// (speed field, 2 bytes).
	b.u8(0x40)
	b.u8(0x00)
	b.u8(0x00) // arch 0: LE
	b.u16(binary.LittleEndian, uint16(MesgNumRecord))
	b.u8(1)
	b.bytes(6, 2, byte(BaseTypeUint16)) // speed
	b.u8(0x00)
	b.u16(binary.LittleEndian, 2500)

	// Slot 1: big-endian.
	b.u8(0x41)
	b.u8(0x00)
	b.u8(0x01) // arch 1: BE
	b.u16(binary.BigEndian, uint16(MesgNumRecord))
	b.u8(1)
	b.bytes(6, 2, byte(BaseTypeUint16))
	b.u8(0x01)
	b.u16(binary.BigEndian, 2500)

	raw := buildFile(2166, b.buf)

	f, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(f.Records))
	}
	for i, rec := range f.Records {
		speedF, ok := rec.Message.FieldByNum(6)
		if !ok || speedF.Value != uint16(2500) {
			t.Errorf("record %d: speed = %+v, want 2500", i, speedF)
		}
	}
}

// TestDecodeCompressedTimestamp runs the compressed-timestamp flow end
// to end: an absolute-timestamp Record establishes a reference time,
// then a compressed-timestamp record derives its timestamp from the
// header delta alone.
func TestDecodeCompressedTimestamp(t *testing.T) {
	order := binary.LittleEndian

	var b builder
	b.u8(0x40) // definition, local 0
	b.u8(0x00)
	b.u8(0x00)
	b.u16(order, uint16(MesgNumRecord))
	b.u8(1)
	b.bytes(253, 4, byte(BaseTypeUint32)) // timestamp

	b.u8(0x00) // data, local 0
	b.u32(order, 1000000000)

	// Compressed timestamp record: bit7 set, local=0, offset=5. Its
	// payload inherits the slot-0 layout, so it still carries a 4-byte
	// timestamp field; write the invalid sentinel and expect the decoder
	// to override it with the decompressed value.
	b.u8(0x80 | 5)
	b.u32(order, 0xFFFFFFFF)

	raw := buildFile(2166, b.buf)

	f, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if len(f.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(f.Records))
	}

	firstTS, ok := f.Records[0].Message.FieldByNum(253)
	if !ok {
		t.Fatal("missing timestamp on first record")
	}
	firstDT := firstTS.Value.(DateTime)

	secondTS, ok := f.Records[1].Message.FieldByNum(253)
	if !ok {
		t.Fatal("missing synthesized timestamp on compressed record")
	}
	secondDT := secondTS.Value.(DateTime)

	gotDelta := secondDT.Unix() - firstDT.Unix()
	if gotDelta != 5 {
		t.Errorf("compressed timestamp delta = %d, want 5", gotDelta)
	}
}

// TestDecodeMissingDefinition checks that a data record referencing an
// undefined local slot fails with MissingDefinitionError.
func TestDecodeMissingDefinition(t *testing.T) {
	var b builder
	b.u8(0x00) // data header, local 0, no prior definition
	b.u8(0x01)

	raw := buildFile(2166, b.buf)

	_, err := Decode(bytes.NewReader(raw))
	if err == nil {
		t.Fatal("expected an error")
	}
	if !containsMissingDefinition(err) {
		t.Errorf("got %v, want a MissingDefinitionError in the chain", err)
	}
}

func containsMissingDefinition(err error) bool {
	for err != nil {
		if _, ok := err.(MissingDefinitionError); ok {
			return true
		}
		cause, ok := err.(interface{ Cause() error })
		if !ok {
			return false
		}
		err = cause.Cause()
	}
	return false
}

// TestDecodeUnknownArchitecture checks that an architecture byte
// outside {0,1} fails with UnknownArchitectureError.
func TestDecodeUnknownArchitecture(t *testing.T) {
	var b builder
	b.u8(0x40)
	b.u8(0x00)
	b.u8(0x02) // invalid architecture
	b.u16(binary.LittleEndian, uint16(MesgNumRecord))
	b.u8(0)

	raw := buildFile(2166, b.buf)

	_, err := Decode(bytes.NewReader(raw))
	if err == nil {
		t.Fatal("expected an error")
	}
	var archErr UnknownArchitectureError
	found := false
	for e := err; e != nil; {
		if ae, ok := e.(UnknownArchitectureError); ok {
			archErr = ae
			found = true
			break
		}
		cause, ok := e.(interface{ Cause() error })
		if !ok {
			break
		}
		e = cause.Cause()
	}
	if !found || archErr != 2 {
		t.Errorf("got %v, want UnknownArchitectureError(2)", err)
	}
}

// TestDecodeUnknownMessage checks that an unrecognized global message
// number decodes as Message{Known: false} carrying the raw bytes, not
// a decode failure.
func TestDecodeUnknownMessage(t *testing.T) {
	order := binary.LittleEndian

	var b builder
	b.u8(0x40)
	b.u8(0x00)
	b.u8(0x00)
	b.u16(order, 9999) // unrecognized global mesg num
	b.u8(1)
	b.bytes(0, 2, byte(BaseTypeUint16))

	b.u8(0x00)
	b.u16(order, 0xBEEF)

	raw := buildFile(2166, b.buf)

	f, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	msg := f.Records[0].Message
	if msg.Known {
		t.Fatal("message with an unrecognized global number should be Known=false")
	}
	if msg.Num != 9999 {
		t.Errorf("mesg num = %d, want 9999", msg.Num)
	}
	if f.UnknownMessages[9999] != 1 {
		t.Errorf("UnknownMessages[9999] = %d, want 1", f.UnknownMessages[9999])
	}
	fv, ok := msg.FieldByNum(0)
	if !ok || fv.Known {
		t.Fatalf("field = %+v, want an opaque unknown field", fv)
	}
	if len(fv.Data) != 2 {
		t.Errorf("data len = %d, want 2", len(fv.Data))
	}
}

// TestDecodeUnknownFieldOnKnownMessage checks that an unrecognized
// field definition number on a known message surfaces as that
// message's own Unknown field variant and is tallied.
func TestDecodeUnknownFieldOnKnownMessage(t *testing.T) {
	order := binary.LittleEndian

	var b builder
	b.u8(0x40)
	b.u8(0x00)
	b.u8(0x00)
	b.u16(order, uint16(MesgNumRecord))
	b.u8(1)
	b.bytes(200, 1, byte(BaseTypeUint8)) // not in the Record table

	b.u8(0x00)
	b.u8(42)

	raw := buildFile(2166, b.buf)

	f, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	msg := f.Records[0].Message
	if !msg.Known {
		t.Fatal("Record itself should be known")
	}
	fv, ok := msg.FieldByNum(200)
	if !ok || fv.Known {
		t.Fatalf("field 200 = %+v, want an opaque unknown field", fv)
	}
	key := UnknownField{Num: MesgNumRecord, Def: 200}
	if f.UnknownFields[key] != 1 {
		t.Errorf("UnknownFields[%v] = %d, want 1", key, f.UnknownFields[key])
	}
}

// TestDecode14ByteHeader checks that a 14-byte file header is accepted
// (the other tests use 12-byte headers), with a zero header CRC value
// skipping verification.
func TestDecode14ByteHeader(t *testing.T) {
	order := binary.LittleEndian

	var b builder
	fileIDDefinition(&b, 0, 0, order)
	b.u8(0x00)
	b.u8(byte(FileActivity))
	b.u16(order, 1)
	b.u32(order, 1)
	b.u32(order, 1000000000)
	payload := b.buf

	hdr := make([]byte, 14)
	hdr[0] = 14
	hdr[1] = 0x10
	binary.LittleEndian.PutUint16(hdr[2:4], 2166)
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(payload)))
	copy(hdr[8:12], fileSignature)
	// hdr[12:14] left as 0x0000: header CRC slot present, not checked.

	full := append(append([]byte{}, hdr...), payload...)
	crc := crc16.Checksum(full)
	var crcBuf [2]byte
	binary.LittleEndian.PutUint16(crcBuf[:], crc)
	raw := append(full, crcBuf[:]...)

	f, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if f.Header.Size != 14 || !f.Header.HasCRC {
		t.Errorf("header = %+v, want Size=14 HasCRC=true", f.Header)
	}
	if len(f.Records) != 1 {
		t.Fatalf("got %d records, want 1", len(f.Records))
	}
}

// TestDecodeBadCRC checks that a corrupted trailing CRC is rejected.
func TestDecodeBadCRC(t *testing.T) {
	order := binary.LittleEndian

	var b builder
	fileIDDefinition(&b, 0, 0, order)
	b.u8(0x00)
	b.u8(byte(FileActivity))
	b.u16(order, 1)
	b.u32(order, 1)
	b.u32(order, 1000000000)

	raw := buildFile(2166, b.buf)
	raw[len(raw)-1] ^= 0xFF // corrupt the trailing CRC

	_, err := Decode(bytes.NewReader(raw))
	if err == nil {
		t.Fatal("expected a bad crc error")
	}
}

// TestCheckIntegrity verifies both the accepting and rejecting paths of
// the records-free integrity check.
func TestCheckIntegrity(t *testing.T) {
	order := binary.LittleEndian

	var b builder
	fileIDDefinition(&b, 0, 0, order)
	b.u8(0x00)
	b.u8(byte(FileActivity))
	b.u16(order, 1)
	b.u32(order, 1)
	b.u32(order, 1000000000)
	raw := buildFile(2166, b.buf)

	if err := CheckIntegrity(bytes.NewReader(raw), false); err != nil {
		t.Fatalf("CheckIntegrity on a well-formed file: %v", err)
	}

	corrupted := append([]byte{}, raw...)
	corrupted[len(corrupted)-2] ^= 0xFF
	if err := CheckIntegrity(bytes.NewReader(corrupted), false); err == nil {
		t.Fatal("expected CheckIntegrity to reject a corrupted trailing crc")
	}
}

// TestDecodeHeaderAndFileID decodes only as far as the leading FileId
// message.
func TestDecodeHeaderAndFileID(t *testing.T) {
	order := binary.LittleEndian

	var b builder
	fileIDDefinition(&b, 0, 0, order)
	b.u8(0x00)
	b.u8(byte(FileActivity))
	b.u16(order, 1)
	b.u32(order, 42)
	b.u32(order, 1000000000)
	raw := buildFile(2166, b.buf)

	h, msg, err := DecodeHeaderAndFileID(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	if h.DataSize != uint32(len(b.buf)) {
		t.Errorf("data size = %d, want %d", h.DataSize, len(b.buf))
	}
	if msg == nil || msg.Num != MesgNumFileId {
		t.Fatalf("message = %+v, want FileId", msg)
	}
	serialF, ok := msg.FieldByNum(3)
	if !ok || serialF.Value != uint32(42) {
		t.Errorf("serial_number = %+v, want 42", serialF)
	}
}

// TestDecodeByteFieldValidity decodes a DeveloperDataId message whose
// developer_id carries ordinary bytes and whose application_id is the
// all-0xFF sentinel, and checks IsValid on both.
func TestDecodeByteFieldValidity(t *testing.T) {
	order := binary.LittleEndian

	var b builder
	b.u8(0x40)
	b.u8(0x00)
	b.u8(0x00)
	b.u16(order, uint16(MesgNumDeveloperDataId))
	b.u8(2)
	b.bytes(0, 4, byte(BaseTypeByte)) // developer_id
	b.bytes(1, 4, byte(BaseTypeByte)) // application_id

	b.u8(0x00)
	b.bytes(0x01, 0x02, 0x03, 0x04)
	b.bytes(0xFF, 0xFF, 0xFF, 0xFF)

	raw := buildFile(2166, b.buf)

	f, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	msg := f.Records[0].Message

	devID, ok := msg.FieldByNum(0)
	if !ok || !devID.Known {
		t.Fatalf("developer_id = %+v, want a known byte field", devID)
	}
	if !devID.IsValid() {
		t.Error("developer_id with ordinary bytes should be valid")
	}
	if !bytes.Equal(devID.Value.([]byte), []byte{0x01, 0x02, 0x03, 0x04}) {
		t.Errorf("developer_id value = %v, want the full declared run", devID.Value)
	}

	appID, ok := msg.FieldByNum(1)
	if !ok || !appID.Known {
		t.Fatalf("application_id = %+v, want a known byte field", appID)
	}
	if appID.IsValid() {
		t.Error("all-0xFF application_id should be reported invalid")
	}
}

// TestDecodeDeterministic checks that the same bytes always decode to
// the same records.
func TestDecodeDeterministic(t *testing.T) {
	order := binary.LittleEndian

	var b builder
	fileIDDefinition(&b, 0, 0, order)
	b.u8(0x00)
	b.u8(byte(FileActivity))
	b.u16(order, 1)
	b.u32(order, 77)
	b.u32(order, 1000000000)

	b.u8(0x41) // definition, local 1
	b.u8(0x00)
	b.u8(0x00)
	b.u16(order, uint16(MesgNumRecord))
	b.u8(2)
	b.bytes(3, 1, byte(BaseTypeUint8))  // heart_rate
	b.bytes(6, 2, byte(BaseTypeUint16)) // speed
	b.u8(0x01)
	b.u8(150)
	b.u16(order, 3300)

	raw := buildFile(2166, b.buf)

	first, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	second, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}

	opts := cmp.AllowUnexported(DateTime{}, LocalDateTime{})
	if diff := cmp.Diff(first.Records, second.Records, opts); diff != "" {
		t.Errorf("records differ between decodes (-first +second):\n%s", diff)
	}
}

// TestDecodeHrvArrayField decodes an hrv message whose single time field
// carries multiple beat intervals in one declared byte run.
func TestDecodeHrvArrayField(t *testing.T) {
	order := binary.LittleEndian

	var b builder
	b.u8(0x40)
	b.u8(0x00)
	b.u8(0x00)
	b.u16(order, uint16(MesgNumHrv))
	b.u8(1)
	b.bytes(0, 8, byte(BaseTypeUint16)) // time: four uint16 intervals

	b.u8(0x00)
	b.u16(order, 850)
	b.u16(order, 863)
	b.u16(order, 841)
	b.u16(order, 0xFFFF)

	raw := buildFile(2166, b.buf)

	f, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	fv, ok := f.Records[0].Message.FieldByNum(0)
	if !ok || !fv.Known {
		t.Fatalf("time field = %+v, want a known hrv.time field", fv)
	}
	want := []interface{}{uint16(850), uint16(863), uint16(841), uint16(0xFFFF)}
	if diff := cmp.Diff(want, fv.Value); diff != "" {
		t.Errorf("hrv.time elements (-want +got):\n%s", diff)
	}
	if fv.Scale != 1000 || fv.Units != "s" {
		t.Errorf("annotations = scale %v units %q, want 1000 and \"s\"", fv.Scale, fv.Units)
	}
}
