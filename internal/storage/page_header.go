package storage

import "fmt"

// PageHeader is the 8-byte (leaf) or 12-byte (interior) header at the start
// of a btree page. RightmostPointer is only meaningful when Type is
// PageTypeTableInterior.
type PageHeader struct {
	Type                 PageType
	FirstFreeblock       uint16
	CellCount            uint16
	CellContentOffset    uint32
	FragmentedBytesCount uint8
	RightmostPointer     uint32
}

// ByteSize returns how many bytes of the page this header itself occupies.
func (h PageHeader) ByteSize() int {
	if h.Type == PageTypeTableInterior {
		return 12
	}
	return 8
}

func parsePageHeader(buf []byte) (PageHeader, error) {
	if len(buf) < 7 {
		return PageHeader{}, fmt.Errorf("%w: need 7 bytes, got %d", ErrShortPageHeader, len(buf))
	}
	pageType, err := parsePageType(buf[0])
	if err != nil {
		return PageHeader{}, err
	}
	_, firstFreeblock := ReadBEWordAt(buf, 1)
	_, cellCount := ReadBEWordAt(buf, 3)
	_, rawContentOffset := ReadBEWordAt(buf, 5)
	contentOffset := uint32(rawContentOffset)
	if rawContentOffset == 0 {
		contentOffset = 65536
	}
	var fragmented byte
	if len(buf) > 7 {
		fragmented = buf[7]
	}
	h := PageHeader{
		Type:                 pageType,
		FirstFreeblock:       firstFreeblock,
		CellCount:            cellCount,
		CellContentOffset:    contentOffset,
		FragmentedBytesCount: fragmented,
	}
	if pageType == PageTypeTableInterior {
		_, rightmost := ReadBEDoubleWordAt(buf, 8)
		h.RightmostPointer = rightmost
	}
	return h, nil
}
