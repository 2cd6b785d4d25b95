package storage

import (
	"fmt"
	"unicode/utf8"
)

// RecordFieldType is the decoded meaning of a record's serial type, per the
// SQLite record format: small fixed-width integers and floats, the two
// constant fields baked into the serial type itself, and variable-length
// string/blob fields whose length is carried in the serial type too.
type RecordFieldType int

const (
	FieldNull RecordFieldType = iota
	FieldI8
	FieldI16
	FieldI24
	FieldI32
	FieldI48
	FieldI64
	FieldFloat
	FieldZero
	FieldOne
	FieldString
	FieldBlob
)

func fieldTypeFromSerial(serial int64) (RecordFieldType, int, error) {
	switch {
	case serial == 0:
		return FieldNull, 0, nil
	case serial == 1:
		return FieldI8, 1, nil
	case serial == 2:
		return FieldI16, 2, nil
	case serial == 3:
		return FieldI24, 3, nil
	case serial == 4:
		return FieldI32, 4, nil
	case serial == 5:
		return FieldI48, 6, nil
	case serial == 6:
		return FieldI64, 8, nil
	case serial == 7:
		return FieldFloat, 8, nil
	case serial == 8:
		return FieldZero, 0, nil
	case serial == 9:
		return FieldOne, 0, nil
	case serial == 10 || serial == 11:
		return 0, 0, fmt.Errorf("%w: %d", ErrUnsupportedSerialType, serial)
	case serial >= 12 && serial%2 == 0:
		return FieldBlob, int((serial - 12) / 2), nil
	case serial >= 13 && serial%2 == 1:
		return FieldString, int((serial - 13) / 2), nil
	default:
		return 0, 0, fmt.Errorf("%w: %d", ErrUnsupportedSerialType, serial)
	}
}

// RecordField is one column's type and byte offset within the record's
// payload, with Length meaningful only for String and Blob fields.
type RecordField struct {
	Offset int
	Type   RecordFieldType
	Length int
}

// RecordHeader is the parsed header of a table row: the ordered list of
// column types and where each column's bytes begin in the payload.
type RecordHeader struct {
	Fields []RecordField
}

// ParseRecordHeader decodes a record header from the start of a leaf cell's
// payload.
func ParseRecordHeader(buf []byte) (RecordHeader, error) {
	n, headerLength := ReadVarintAt(buf, 0)
	if headerLength < int64(n) || int(headerLength) > len(buf) {
		return RecordHeader{}, fmt.Errorf("%w: header length %d, buffer %d bytes", ErrBadRecordHeader, headerLength, len(buf))
	}
	var fields []RecordField
	offset := int(headerLength)
	pos := int(n)
	for pos < int(headerLength) {
		dn, serial := ReadVarintAt(buf, pos)
		if dn == 0 {
			break
		}
		pos += int(dn)
		ftype, size, err := fieldTypeFromSerial(serial)
		if err != nil {
			return RecordHeader{}, err
		}
		fields = append(fields, RecordField{Offset: offset, Type: ftype, Length: size})
		offset += size
	}
	return RecordHeader{Fields: fields}, nil
}

func decodeField(payload []byte, f RecordField) (Value, error) {
	switch f.Type {
	case FieldNull:
		return Value{Kind: KindNull}, nil
	case FieldI8:
		return Value{Kind: KindInt, Int: ReadI8At(payload, f.Offset)}, nil
	case FieldI16:
		return Value{Kind: KindInt, Int: ReadI16At(payload, f.Offset)}, nil
	case FieldI24:
		return Value{Kind: KindInt, Int: ReadI24At(payload, f.Offset)}, nil
	case FieldI32:
		return Value{Kind: KindInt, Int: ReadI32At(payload, f.Offset)}, nil
	case FieldI48:
		return Value{Kind: KindInt, Int: ReadI48At(payload, f.Offset)}, nil
	case FieldI64:
		return Value{Kind: KindInt, Int: ReadI64At(payload, f.Offset)}, nil
	case FieldFloat:
		return Value{Kind: KindFloat, Float: ReadF64At(payload, f.Offset)}, nil
	case FieldZero:
		return Value{Kind: KindInt, Int: 0}, nil
	case FieldOne:
		return Value{Kind: KindInt, Int: 1}, nil
	case FieldString:
		raw, err := sliceField(payload, f)
		if err != nil {
			return Value{}, err
		}
		if !utf8.Valid(raw) {
			return Value{}, fmt.Errorf("%w", ErrInvalidUTF8)
		}
		return Value{Kind: KindString, Str: string(raw)}, nil
	case FieldBlob:
		raw, err := sliceField(payload, f)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindBlob, Blob: raw}, nil
	default:
		return Value{}, fmt.Errorf("%w: unrecognized field type %d", ErrBadRecordHeader, f.Type)
	}
}

func sliceField(payload []byte, f RecordField) ([]byte, error) {
	end := f.Offset + f.Length
	if f.Offset < 0 || end > len(payload) {
		return nil, fmt.Errorf("%w: field [%d:%d] out of bounds for %d-byte payload", ErrBadRecordHeader, f.Offset, end, len(payload))
	}
	return payload[f.Offset:end], nil
}
