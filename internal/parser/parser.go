// Package parser splits measurement records out of a byte buffer and feeds
// them into a table.
package parser

import (
	"bytes"

	"onebrc/internal/digest"
	"onebrc/internal/fixedpoint"
	"onebrc/internal/table"
)

const (
	Delimiter  = ';'
	Terminator = '\n'
)

type Parser struct {
	hash  digest.Func
	table *table.Table
}

func New(hash digest.Func, t *table.Table) *Parser {
	return &Parser{hash: hash, table: t}
}

// Parse aggregates every complete record in buf and returns the length of
// the unterminated tail, which the caller must hand in again.
//
// Records reference buf directly; nothing is copied except the name of a
// station seen for the first time.
func (p *Parser) Parse(buf []byte) int {
	start, delim := 0, -1
	for i, c := range buf {
		switch c {
		case Delimiter:
			delim = i
		case Terminator:
			// a record without a delimiter is dropped
			if delim >= start {
				p.add(buf[start:delim], buf[delim+1:i])
			}
			start = i + 1
		}
	}
	return len(buf) - start
}

// Record aggregates a single record given without its terminator.
func (p *Parser) Record(line []byte) {
	delim := bytes.LastIndexByte(line, Delimiter)
	if delim < 0 {
		return
	}
	p.add(line[:delim], line[delim+1:])
}

func (p *Parser) add(key, value []byte) {
	p.table.Add(p.hash(key), key, fixedpoint.Decode(value))
}
