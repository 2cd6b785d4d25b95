package storage

// positionedPage pairs a decoded page with a cursor into its cell array,
// the traversal unit the scanner pushes and pops as it walks the btree.
type positionedPage struct {
	page    *Page
	cellNum int
}

func (pp *positionedPage) nextCell() (Cell, bool) {
	if pp.cellNum < len(pp.page.Cells) {
		c := pp.page.Cells[pp.cellNum]
		pp.cellNum++
		return c, true
	}
	return nil, false
}

// nextPagePointer yields the rightmost child of an interior page exactly
// once, after all of its regular cells have been consumed by nextCell.
func (pp *positionedPage) nextPagePointer() (uint32, bool) {
	if pp.page.Header.Type != PageTypeTableInterior {
		return 0, false
	}
	if pp.cellNum == len(pp.page.Cells) {
		pp.cellNum = len(pp.page.Cells) + 1
		return pp.page.Header.RightmostPointer, true
	}
	return 0, false
}

type elemKind int

const (
	elemDone elemKind = iota
	elemDescend
	elemRecord
)

type scanElem struct {
	kind     elemKind
	descend  uint32
	cursor   *Cursor
}

// Scanner performs a depth-first walk of a table btree rooted at a given
// page, yielding one Cursor per leaf record in key order.
type Scanner struct {
	pager *Pager
	root  int
	stack []*positionedPage
	err   error
}

func newScanner(pager *Pager, root int) *Scanner {
	return &Scanner{pager: pager, root: root}
}

func (s *Scanner) nextElem() (scanElem, error) {
	if len(s.stack) == 0 {
		page, err := s.pager.ReadPage(s.root)
		if err != nil {
			return scanElem{}, err
		}
		s.stack = append(s.stack, &positionedPage{page: page})
	}

	top := s.stack[len(s.stack)-1]
	if ptr, ok := top.nextPagePointer(); ok {
		return scanElem{kind: elemDescend, descend: ptr}, nil
	}

	cell, ok := top.nextCell()
	if !ok {
		return scanElem{kind: elemDone}, nil
	}

	switch c := cell.(type) {
	case TableLeafCell:
		header, err := ParseRecordHeader(c.Payload)
		if err != nil {
			return scanElem{}, err
		}
		cur := &Cursor{header: header, payload: c.Payload, RowID: c.RowID}
		return scanElem{kind: elemRecord, cursor: cur}, nil
	case TableInteriorCell:
		return scanElem{kind: elemDescend, descend: c.LeftChildPage}, nil
	default:
		return scanElem{kind: elemDone}, nil
	}
}

// NextRecord advances the scan and returns the next record's cursor. It
// returns (nil, nil) once the btree has been fully walked.
func (s *Scanner) NextRecord() (*Cursor, error) {
	if s.err != nil {
		return nil, s.err
	}
	for {
		elem, err := s.nextElem()
		if err != nil {
			s.err = err
			return nil, err
		}
		switch elem.kind {
		case elemRecord:
			return elem.cursor, nil
		case elemDescend:
			page, err := s.pager.ReadPage(int(elem.descend))
			if err != nil {
				s.err = err
				return nil, err
			}
			s.stack = append(s.stack, &positionedPage{page: page})
		case elemDone:
			if len(s.stack) > 1 {
				s.stack = s.stack[:len(s.stack)-1]
				continue
			}
			return nil, nil
		}
	}
}

// Cursor exposes one decoded row: its row id and typed access to its
// columns.
type Cursor struct {
	header  RecordHeader
	payload []byte
	RowID   int64
}

// NumFields reports how many columns this row's record header describes.
func (c *Cursor) NumFields() int {
	return len(c.header.Fields)
}

// Field decodes column n. It returns ErrFieldOutOfRange for an index outside
// [0, NumFields), and otherwise whatever decode error the column produced
// (for example ErrInvalidUTF8 on a malformed string).
func (c *Cursor) Field(n int) (Value, error) {
	if n < 0 || n >= len(c.header.Fields) {
		return Value{}, ErrFieldOutOfRange
	}
	return decodeField(c.payload, c.header.Fields[n])
}
