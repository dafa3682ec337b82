package chunk

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/bytedance/gopkg/lang/mcache"

	"onebrc/internal/parser"
)

// ErrRecordTooLong means a single record does not fit in the read buffer.
var ErrRecordTooLong = errors.New("record longer than read buffer")

// DefaultBufferSize is the read size used per refill.
const DefaultBufferSize = 2 << 20

// cursor tracks a worker's progress through its range. consumed counts
// bytes fully aggregated; carry is the partial record left at the end of
// the last fill, re-read at the start of the next one.
type cursor struct {
	consumed int64
	carry    int
}

func (c *cursor) advance(n, carry int) {
	c.consumed += int64(n - carry)
	c.carry = carry
}

// Process streams rng through a bufSize buffer and feeds it to p.
// Reads never go past the end of rng. A final record with no terminator
// is still aggregated when it ends the range.
func Process(ctx context.Context, r io.ReaderAt, rng ByteRange, p *parser.Parser, bufSize int) error {
	if bufSize <= 0 {
		bufSize = DefaultBufferSize
	}
	buf := mcache.Malloc(bufSize)
	defer mcache.Free(buf)

	var c cursor
	for c.consumed < rng.Length {
		if err := ctx.Err(); err != nil {
			return err
		}

		off := rng.Start + c.consumed
		want := min(int64(len(buf)), rng.Length-c.consumed)
		n, err := r.ReadAt(buf[:want], off)
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read %s at %d: %w", rng, off, err)
		}
		if n == 0 {
			return nil
		}
		if int64(n) < want {
			return fmt.Errorf("read %s at %d: %w", rng, off, io.ErrUnexpectedEOF)
		}

		carry := p.Parse(buf[:n])
		if carry > 0 && c.consumed+int64(n) == rng.Length {
			p.Record(buf[n-carry : n])
			carry = 0
		}
		if carry == n {
			return fmt.Errorf("read %s at %d: %w", rng, off, ErrRecordTooLong)
		}
		c.advance(n, carry)
	}
	return nil
}
