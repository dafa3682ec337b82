// Package chunk splits a measurements file into record-aligned byte ranges
// and scans each range into a table.
package chunk

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"onebrc/internal/parser"
)

// ErrNoWorkers is returned when a plan is requested for fewer than one range.
var ErrNoWorkers = errors.New("worker count must be positive")

// probeSize is how much is read at a time while looking for a terminator.
const probeSize = 128

// ByteRange is the half-open interval [Start, Start+Length) of the file.
type ByteRange struct {
	Start  int64
	Length int64
}

func (r ByteRange) End() int64 { return r.Start + r.Length }

func (r ByteRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End())
}

// Plan divides the first size bytes of r into n contiguous ranges. Every
// boundary other than 0 and size sits right after a terminator, found by
// scanning forward from i*size/n. When the scan runs off the end the
// boundary is size, leaving the trailing ranges empty.
func Plan(r io.ReaderAt, size int64, n int) ([]ByteRange, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrNoWorkers, n)
	}

	bounds := make([]int64, n+1)
	bounds[n] = size
	probe := make([]byte, probeSize)
	for i := 1; i < n; i++ {
		b, err := alignForward(r, size*int64(i)/int64(n), size, probe)
		if err != nil {
			return nil, err
		}
		bounds[i] = b
	}

	ranges := make([]ByteRange, n)
	for i := range ranges {
		ranges[i] = ByteRange{Start: bounds[i], Length: bounds[i+1] - bounds[i]}
	}
	return ranges, nil
}

func alignForward(r io.ReaderAt, at, size int64, probe []byte) (int64, error) {
	for at < size {
		want := min(int64(len(probe)), size-at)
		n, err := r.ReadAt(probe[:want], at)
		if i := bytes.IndexByte(probe[:n], parser.Terminator); i >= 0 {
			return at + int64(i) + 1, nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("align boundary at %d: %w", at, err)
		}
		if n == 0 {
			break
		}
		at += int64(n)
	}
	return size, nil
}
