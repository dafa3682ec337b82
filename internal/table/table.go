// Package table aggregates per-station statistics keyed by name digest.
package table

import "github.com/dolthub/swiss"

const initialCapacity = 1 << 14

// Summary holds the running statistics of one station, in tenths.
type Summary struct {
	Name  string
	Min   int64
	Max   int64
	Sum   int64
	Count int64

	// next chains stations whose names share a digest.
	next *Summary
}

func newSummary(name string, v int64) *Summary {
	return &Summary{Name: name, Min: v, Max: v, Sum: v, Count: 1}
}

func (s *Summary) observe(v int64) {
	s.Min = min(s.Min, v)
	s.Max = max(s.Max, v)
	s.Sum += v
	s.Count++
}

func (s *Summary) absorb(o *Summary) {
	s.Min = min(s.Min, o.Min)
	s.Max = max(s.Max, o.Max)
	s.Sum += o.Sum
	s.Count += o.Count
}

// Table maps a name digest to its Summary. A Table is not safe for
// concurrent use; each worker owns its own.
//
// By default a digest hit is confirmed against the stored name and
// colliding names are kept apart in a chain. A trusting table skips the
// comparison, so names sharing a digest are folded into whichever name
// arrived first.
type Table struct {
	m     *swiss.Map[uint64, *Summary]
	trust bool
	n     int
}

func New(trust bool) *Table {
	return &Table{
		m:     swiss.NewMap[uint64, *Summary](initialCapacity),
		trust: trust,
	}
}

// Add records one measurement v for the station key with digest d.
// key is copied only when the station is first seen.
func (t *Table) Add(d uint64, key []byte, v int64) {
	s, ok := t.m.Get(d)
	if !ok {
		t.m.Put(d, newSummary(string(key), v))
		t.n++
		return
	}
	if !t.trust {
		for string(key) != s.Name {
			if s.next == nil {
				s.next = newSummary(string(key), v)
				t.n++
				return
			}
			s = s.next
		}
	}
	s.observe(v)
}

// Combine folds a whole Summary into the table under digest d.
// o is never retained.
func (t *Table) Combine(d uint64, o *Summary) {
	s, ok := t.m.Get(d)
	if !ok {
		t.m.Put(d, o.detached())
		t.n++
		return
	}
	if !t.trust {
		for o.Name != s.Name {
			if s.next == nil {
				s.next = o.detached()
				t.n++
				return
			}
			s = s.next
		}
	}
	s.absorb(o)
}

func (s *Summary) detached() *Summary {
	c := *s
	c.next = nil
	return &c
}

// Len reports the number of distinct stations held.
func (t *Table) Len() int { return t.n }

// Each calls fn for every Summary in unspecified order.
func (t *Table) Each(fn func(s *Summary)) {
	t.each(func(_ uint64, s *Summary) { fn(s) })
}

func (t *Table) each(fn func(d uint64, s *Summary)) {
	t.m.Iter(func(d uint64, s *Summary) bool {
		for ; s != nil; s = s.next {
			fn(d, s)
		}
		return false
	})
}

// Get finds a station by name with a full scan. Meant for tests and
// diagnostics, not the hot path.
func (t *Table) Get(name string) (*Summary, bool) {
	var found *Summary
	t.Each(func(s *Summary) {
		if found == nil && s.Name == name {
			found = s
		}
	})
	return found, found != nil
}
