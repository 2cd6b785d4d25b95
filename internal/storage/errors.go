package storage

import "errors"

// Sentinel errors identify the failure taxonomy a reader can produce while
// walking a database file. Every decode failure wraps one of these so
// callers can match with errors.Is instead of parsing messages.
var (
	ErrIO                    = errors.New("io error")
	ErrInvalidHeader         = errors.New("invalid database header")
	ErrInvalidPageSize       = errors.New("invalid page size")
	ErrShortPageHeader       = errors.New("short page header")
	ErrUnknownPageType       = errors.New("unknown page type")
	ErrCellDecode            = errors.New("cell decode error")
	ErrBadRecordHeader       = errors.New("bad record header")
	ErrUnsupportedSerialType = errors.New("unsupported serial type")
	ErrInvalidUTF8           = errors.New("invalid utf8 in string field")
	ErrFieldOutOfRange       = errors.New("field index out of range")
)
