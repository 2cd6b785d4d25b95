package storage

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
)

var errShortRead = errors.New("short read")

type countingReaderAt struct {
	data  []byte
	reads int
}

func (c *countingReaderAt) ReadAt(p []byte, off int64) (int, error) {
	c.reads++
	n := copy(p, c.data[off:])
	return n, nil
}

func TestPagerCachesPages(t *testing.T) {
	const pageSize = 512
	data := make([]byte, pageSize*2)
	data[pageSize] = byte(PageTypeTableLeaf)
	binary.BigEndian.PutUint16(data[pageSize+5:pageSize+7], 0)

	reader := &countingReaderAt{data: data}
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	pager := newPager(reader, pageSize, log)

	p1, err := pager.ReadPage(2)
	if err != nil {
		t.Fatal(err)
	}
	if reader.reads != 1 {
		t.Fatalf("reads = %d", reader.reads)
	}
	p2, err := pager.ReadPage(2)
	if err != nil {
		t.Fatal(err)
	}
	if reader.reads != 1 {
		t.Fatalf("expected cache hit, reads = %d", reader.reads)
	}
	if p1 != p2 {
		t.Fatalf("expected same pointer from cache")
	}
}

func TestPagerPropagatesIOError(t *testing.T) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	pager := newPager(&failingReaderAt{}, 512, log)
	if _, err := pager.ReadPage(1); err == nil {
		t.Fatal("expected error")
	}
}

type failingReaderAt struct{}

func (failingReaderAt) ReadAt(p []byte, off int64) (int, error) {
	return 0, errShortRead
}
