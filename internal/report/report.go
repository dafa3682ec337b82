// Package report renders the merged statistics.
package report

import (
	"io"
	"slices"
	"strings"

	"onebrc/internal/fixedpoint"
	"onebrc/internal/table"
)

// Entry is one output line item. Values are in tenths.
type Entry struct {
	Name  string
	Min   int64
	Max   int64
	Sum   int64
	Count int64
}

// Mean is the rounded average in tenths.
func (e Entry) Mean() int64 { return fixedpoint.Average(e.Sum, e.Count) }

// Entries returns the table's stations sorted by name, byte-wise.
func Entries(t *table.Table) []Entry {
	es := make([]Entry, 0, t.Len())
	t.Each(func(s *table.Summary) {
		es = append(es, Entry{Name: s.Name, Min: s.Min, Max: s.Max, Sum: s.Sum, Count: s.Count})
	})
	slices.SortFunc(es, func(a, b Entry) int { return strings.Compare(a.Name, b.Name) })
	return es
}

// Append renders es as {name=min/mean/max, ...}.
func Append(dst []byte, es []Entry) []byte {
	dst = append(dst, '{')
	for i, e := range es {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		dst = append(dst, e.Name...)
		dst = append(dst, '=')
		dst = fixedpoint.AppendTenths(dst, e.Min)
		dst = append(dst, '/')
		dst = fixedpoint.AppendTenths(dst, e.Mean())
		dst = append(dst, '/')
		dst = fixedpoint.AppendTenths(dst, e.Max)
	}
	return append(dst, '}')
}

// Write emits es as a single newline-terminated line.
func Write(w io.Writer, es []Entry) error {
	buf := make([]byte, 0, 32*len(es)+3)
	buf = append(Append(buf, es), '\n')
	_, err := w.Write(buf)
	return err
}
