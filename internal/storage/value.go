package storage

import "fmt"

// ValueKind discriminates the decoded form of a record field.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindInt
	KindFloat
	KindString
	KindBlob
)

// Value is a decoded record field. Only the member matching Kind is
// meaningful. Blob is a view over the cell's payload bytes and must not be
// retained past the lifetime of the page that produced it; Str is a copy.
type Value struct {
	Kind  ValueKind
	Int   int64
	Float float64
	Str   string
	Blob  []byte
}

func (v Value) String() string {
	switch v.Kind {
	case KindNull:
		return "NULL"
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindFloat:
		return fmt.Sprintf("%g", v.Float)
	case KindString:
		return v.Str
	case KindBlob:
		return fmt.Sprintf("<blob %d bytes>", len(v.Blob))
	default:
		return "<invalid>"
	}
}
