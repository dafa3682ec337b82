package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"onebrc/internal/digest"
	"onebrc/internal/engine"
)

func main() {
	cfg := engine.DefaultConfig()
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "number of parallel chunk workers")
	flag.IntVar(&cfg.BufferSize, "buffer", cfg.BufferSize, "read buffer size per worker, in bytes")
	flag.StringVar(&cfg.Digest, "digest", cfg.Digest, "station name digest: "+strings.Join(digest.Names(), ", "))
	flag.BoolVar(&cfg.TrustDigest, "trust-digest", false, "treat equal digests as equal names")
	flag.BoolVar(&cfg.Mmap, "mmap", false, "read the input through a memory mapping")
	verbose := flag.Bool("v", false, "log timings to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [measurements file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	cfg.Logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	inputFile := "measurements_1b.txt"
	if flag.NArg() > 0 {
		inputFile = flag.Arg(0)
	}

	out := bufio.NewWriter(os.Stdout)
	if err := engine.Run(context.Background(), inputFile, out, cfg); err != nil {
		cfg.Logger.Error("run failed", "file", inputFile, "err", err)
		os.Exit(1)
	}
	if err := out.Flush(); err != nil {
		cfg.Logger.Error("write output", "err", err)
		os.Exit(1)
	}
}
