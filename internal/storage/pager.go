package storage

import (
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// pageReader is the minimal file-like surface the pager needs; satisfied by
// *os.File and, in tests, by anything backed by an in-memory buffer.
type pageReader interface {
	io.ReaderAt
}

// Pager demand-loads pages from the underlying file and caches every page
// it has ever decoded for the lifetime of the Database. There is no
// eviction: this reader never writes, so a page's decoded form never goes
// stale.
type Pager struct {
	mu       sync.Mutex
	file     pageReader
	pageSize uint32
	cache    map[int]*Page
	log      *logrus.Logger
}

func newPager(file pageReader, pageSize uint32, log *logrus.Logger) *Pager {
	return &Pager{
		file:     file,
		pageSize: pageSize,
		cache:    make(map[int]*Page),
		log:      log,
	}
}

// ReadPage returns the decoded page n, loading and caching it on first
// access. Page numbers are 1-based; pages on disk occupy
// [(n-1)*pageSize, n*pageSize).
func (p *Pager) ReadPage(n int) (*Page, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if page, ok := p.cache[n]; ok {
		p.log.WithField("page", n).Debug("pager cache hit")
		return page, nil
	}

	offset := int64(n-1) * int64(p.pageSize)
	buf := make([]byte, p.pageSize)
	if _, err := p.file.ReadAt(buf, offset); err != nil {
		p.log.WithError(err).WithField("page", n).Error("failed to read page")
		return nil, fmt.Errorf("%w: read page %d at offset %d: %v", ErrIO, n, offset, err)
	}

	page, err := ParsePage(buf, n)
	if err != nil {
		return nil, err
	}
	p.cache[n] = &page
	p.log.WithFields(logrus.Fields{"page": n, "cells": len(page.Cells)}).Debug("decoded page")
	return p.cache[n], nil
}
