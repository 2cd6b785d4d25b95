package storage

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Database is a read-only handle on a SQLite-format file: its header plus a
// pager for demand-loading pages. It never writes to the underlying file.
type Database struct {
	Header DbHeader
	pager  *Pager
	file   *os.File
	log    *logrus.Logger
}

// Open reads and validates the database header at path and returns a handle
// ready for scanning. A nil logger is replaced with a logrus.Logger left at
// its default level.
func Open(path string, log *logrus.Logger) (*Database, error) {
	if log == nil {
		log = logrus.New()
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrIO, path, err)
	}

	headerBuf := make([]byte, HeaderSize)
	if _, err := io.ReadFull(file, headerBuf); err != nil {
		file.Close()
		return nil, fmt.Errorf("%w: read header: %v", ErrIO, err)
	}
	header, err := ParseHeader(headerBuf)
	if err != nil {
		file.Close()
		return nil, err
	}

	log.WithField("page_size", header.PageSize).Info("opened database")
	return &Database{
		Header: header,
		pager:  newPager(file, header.PageSize, log),
		file:   file,
		log:    log,
	}, nil
}

// Close releases the underlying file descriptor.
func (d *Database) Close() error {
	return d.file.Close()
}

// Scan starts a new depth-first walk of the table btree rooted at rootPage.
func (d *Database) Scan(rootPage int) *Scanner {
	return newScanner(d.pager, rootPage)
}

// ReadPage exposes the pager's decoded page for callers (such as a REPL's
// diagnostic commands) that need to inspect page structure directly.
func (d *Database) ReadPage(n int) (*Page, error) {
	return d.pager.ReadPage(n)
}
