// Package engine runs the full scan: plan, parallel chunk workers, merge
// and report.
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"time"

	"golang.org/x/exp/mmap"
	"golang.org/x/sync/errgroup"

	"onebrc/internal/chunk"
	"onebrc/internal/digest"
	"onebrc/internal/parser"
	"onebrc/internal/report"
	"onebrc/internal/table"
)

type Config struct {
	// Workers is the number of ranges scanned in parallel.
	Workers int
	// BufferSize is the per-worker read buffer.
	BufferSize int
	// Digest names the key digest, see digest.Names.
	Digest string
	// TrustDigest skips the name comparison on a digest hit.
	TrustDigest bool
	// Mmap reads through a memory mapping instead of pread.
	Mmap   bool
	Logger *slog.Logger
}

func DefaultConfig() Config {
	return Config{
		Workers:    runtime.NumCPU(),
		BufferSize: chunk.DefaultBufferSize,
		Digest:     "fold",
		Logger:     slog.Default(),
	}
}

type source interface {
	io.ReaderAt
	io.Closer
}

func open(path string, useMmap bool) (source, int64, error) {
	if useMmap {
		r, err := mmap.Open(path)
		if err != nil {
			return nil, 0, fmt.Errorf("mmap %s: %w", path, err)
		}
		return r, int64(r.Len()), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return f, fi.Size(), nil
}

// Parse scans the file at path and returns the merged statistics.
func Parse(ctx context.Context, path string, cfg Config) (*table.Table, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	hash, err := digest.Lookup(cfg.Digest)
	if err != nil {
		return nil, err
	}

	src, size, err := open(path, cfg.Mmap)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	start := time.Now()
	ranges, err := chunk.Plan(src, size, cfg.Workers)
	if err != nil {
		return nil, fmt.Errorf("plan %s: %w", path, err)
	}
	log.Debug("planned", "path", path, "size", size, "ranges", len(ranges), "elapsed", time.Since(start))

	tables := make([]*table.Table, len(ranges))
	g, gctx := errgroup.WithContext(ctx)
	for i, rng := range ranges {
		tables[i] = table.New(cfg.TrustDigest)
		p := parser.New(hash, tables[i])
		rng := rng
		g.Go(func() error {
			return chunk.Process(gctx, src, rng, p, cfg.BufferSize)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan %s: %w", path, err)
	}
	log.Debug("scanned", "elapsed", time.Since(start))

	merged := table.Merge(cfg.TrustDigest, tables...)
	log.Debug("merged", "stations", merged.Len(), "elapsed", time.Since(start))
	return merged, nil
}

// Run parses path and writes the report line to w.
func Run(ctx context.Context, path string, w io.Writer, cfg Config) error {
	t, err := Parse(ctx, path, cfg)
	if err != nil {
		return err
	}
	return report.Write(w, report.Entries(t))
}
