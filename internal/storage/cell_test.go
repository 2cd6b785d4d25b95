package storage

import "testing"

func TestParseTableLeafCellTruncated(t *testing.T) {
	buf := []byte{10, 2, 127}
	c, err := parseTableLeafCell(buf)
	if err != nil {
		t.Fatal(err)
	}
	leaf, ok := c.(TableLeafCell)
	if !ok {
		t.Fatalf("wrong type %T", c)
	}
	if leaf.Size != 10 || leaf.RowID != 2 {
		t.Fatalf("%+v", leaf)
	}
	if len(leaf.Payload) != 1 || leaf.Payload[0] != 127 {
		t.Fatalf("payload = %v", leaf.Payload)
	}
}

func TestParseTableLeafCellFullPayload(t *testing.T) {
	buf := []byte{3, 7, 'a', 'b', 'c'}
	c, err := parseTableLeafCell(buf)
	if err != nil {
		t.Fatal(err)
	}
	leaf := c.(TableLeafCell)
	if string(leaf.Payload) != "abc" {
		t.Fatalf("payload = %q", leaf.Payload)
	}
}

func TestParseTableInteriorCell(t *testing.T) {
	buf := []byte{0, 0, 0, 5, 0x2a}
	c, err := parseTableInteriorCell(buf)
	if err != nil {
		t.Fatal(err)
	}
	interior := c.(TableInteriorCell)
	if interior.LeftChildPage != 5 || interior.Key != 0x2a {
		t.Fatalf("%+v", interior)
	}
}
