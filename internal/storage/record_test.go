package storage

import (
	"errors"
	"testing"
)

func buildVarint(v int64) []byte {
	// All test values here fit in a single byte.
	return []byte{byte(v)}
}

func TestParseRecordHeaderSchemaRow(t *testing.T) {
	typ := "table"
	name := "tbl1"
	tblName := "tbl1"
	sql := "CREATE TABLE tbl1(one text, two int)"

	serials := []int64{
		int64(len(typ))*2 + 13,
		int64(len(name))*2 + 13,
		int64(len(tblName))*2 + 13,
		1, // rootpage as I8
		int64(len(sql))*2 + 13,
	}
	var headerBody []byte
	for _, s := range serials {
		headerBody = append(headerBody, buildVarint(s)...)
	}
	headerLength := int64(1 + len(headerBody))

	var payload []byte
	payload = append(payload, buildVarint(headerLength)...)
	payload = append(payload, headerBody...)
	payload = append(payload, []byte(typ)...)
	payload = append(payload, []byte(name)...)
	payload = append(payload, []byte(tblName)...)
	payload = append(payload, byte(2)) // rootpage = 2
	payload = append(payload, []byte(sql)...)

	if headerLength != 6 {
		t.Fatalf("expected header length 6, got %d", headerLength)
	}

	header, err := ParseRecordHeader(payload)
	if err != nil {
		t.Fatal(err)
	}
	if len(header.Fields) != 5 {
		t.Fatalf("fields = %+v", header.Fields)
	}

	v0, err := decodeField(payload, header.Fields[0])
	if err != nil || v0.Kind != KindString || v0.Str != "table" {
		t.Fatalf("field0 = %+v err=%v", v0, err)
	}
	v1, err := decodeField(payload, header.Fields[1])
	if err != nil || v1.Kind != KindString || v1.Str != "tbl1" {
		t.Fatalf("field1 = %+v err=%v", v1, err)
	}
	v3, err := decodeField(payload, header.Fields[3])
	if err != nil || v3.Kind != KindInt || v3.Int != 2 {
		t.Fatalf("field3 = %+v err=%v", v3, err)
	}
	v4, err := decodeField(payload, header.Fields[4])
	if err != nil || v4.Kind != KindString || v4.Str != sql {
		t.Fatalf("field4 = %+v err=%v", v4, err)
	}
}

func TestParseRecordHeaderZeroAndOne(t *testing.T) {
	payload := []byte{3, 8, 9}
	header, err := ParseRecordHeader(payload)
	if err != nil {
		t.Fatal(err)
	}
	v0, _ := decodeField(payload, header.Fields[0])
	v1, _ := decodeField(payload, header.Fields[1])
	if v0.Kind != KindInt || v0.Int != 0 {
		t.Fatalf("zero field = %+v", v0)
	}
	if v1.Kind != KindInt || v1.Int != 1 {
		t.Fatalf("one field = %+v", v1)
	}
}

func TestParseRecordHeaderBadLength(t *testing.T) {
	payload := []byte{200}
	if _, err := ParseRecordHeader(payload); !errors.Is(err, ErrBadRecordHeader) {
		t.Fatalf("err = %v", err)
	}
}

func TestDecodeFieldInvalidUTF8(t *testing.T) {
	payload := []byte{2, 15, 0xff, 0xfe}
	header, err := ParseRecordHeader(payload)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := decodeField(payload, header.Fields[0]); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("err = %v", err)
	}
}

func TestFieldTypeFromSerialUnsupported(t *testing.T) {
	if _, _, err := fieldTypeFromSerial(10); !errors.Is(err, ErrUnsupportedSerialType) {
		t.Fatalf("err = %v", err)
	}
	if _, _, err := fieldTypeFromSerial(11); !errors.Is(err, ErrUnsupportedSerialType) {
		t.Fatalf("err = %v", err)
	}
}
