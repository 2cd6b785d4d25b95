package storage

import "fmt"

// Page is a fully decoded btree page: its header, the raw cell pointer
// array (already adjusted to be relative to the page's own content), and
// the decoded cells in pointer order.
type Page struct {
	Header       PageHeader
	CellPointers []uint16
	Cells        []Cell
}

// ParsePage decodes one page's worth of bytes. pageNum distinguishes page 1,
// whose first HeaderSize bytes hold the database header rather than btree
// content, from every other page.
func ParsePage(buf []byte, pageNum int) (Page, error) {
	ptrOffset := 0
	if pageNum == 1 {
		ptrOffset = HeaderSize
	}
	var content []byte
	if ptrOffset <= len(buf) {
		content = buf[ptrOffset:]
	}
	header, err := parsePageHeader(content)
	if err != nil {
		return Page{}, err
	}
	hsize := header.ByteSize()
	var ptrBuf []byte
	if hsize <= len(content) {
		ptrBuf = content[hsize:]
	}
	pointers := parseCellPointers(ptrBuf, int(header.CellCount), uint16(ptrOffset))

	cells := make([]Cell, 0, len(pointers))
	for _, ptr := range pointers {
		if int(ptr) > len(content) {
			return Page{}, fmt.Errorf("%w: page %d: cell pointer %d out of range", ErrCellDecode, pageNum, ptr)
		}
		cellBuf := content[ptr:]
		var cell Cell
		var err error
		switch header.Type {
		case PageTypeTableLeaf:
			cell, err = parseTableLeafCell(cellBuf)
		case PageTypeTableInterior:
			cell, err = parseTableInteriorCell(cellBuf)
		}
		if err != nil {
			return Page{}, fmt.Errorf("%w: page %d: %v", ErrCellDecode, pageNum, err)
		}
		cells = append(cells, cell)
	}
	return Page{Header: header, CellPointers: pointers, Cells: cells}, nil
}

// parseCellPointers reads n big-endian cell pointer offsets from buf,
// stopping early if the buffer runs out before n have been read, and
// subtracts ptrOffset so the result is relative to the page's content.
func parseCellPointers(buf []byte, n int, ptrOffset uint16) []uint16 {
	pointers := make([]uint16, 0, n)
	for i := 0; i < n; i++ {
		off := 2 * i
		if off+2 > len(buf) {
			break
		}
		_, v := ReadBEWordAt(buf, off)
		pointers = append(pointers, v-ptrOffset)
	}
	return pointers
}
