package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/bzbcodec"
)

func main() {
	algo := flag.String("algo", "deflate", "Codec to use: lz77, lzw, huffman, deflate or all")
	path := flag.String("in", "", "File whose bytes are compressed (required)")
	maxOffset := flag.Int("max-offset", 255, "LZ77 window size")
	maxLength := flag.Int("max-length", 254, "Longest LZ77 codeword")
	chunkSize := flag.Int("chunk-size", 64*1024, "Deflate chunk size in symbols")
	verbose := flag.Bool("v", false, "Log codec decisions")
	flag.Parse()

	if *path == "" {
		fmt.Fprintln(os.Stderr, "Error: --in is required")
		flag.Usage()
		os.Exit(1)
	}

	if *verbose {
		bzbcodec.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	raw, err := os.ReadFile(*path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	src := make([]int64, len(raw))
	for i, b := range raw {
		src[i] = int64(b)
	}

	names := []string{*algo}
	if *algo == "all" {
		names = names[:0]
		for _, alg := range bzbcodec.Algorithms() {
			names = append(names, alg.String())
		}
	}

	opts := []bzbcodec.Option{
		bzbcodec.WithMaxOffset(*maxOffset),
		bzbcodec.WithMaxLength(*maxLength),
		bzbcodec.WithChunkSize(*chunkSize),
	}

	p := message.NewPrinter(language.English)
	p.Printf("%s: %d symbols, %d raw bits\n", *path, len(src), bzbcodec.RawBits(src))

	failed := false
	for _, name := range names {
		if err := run(p, name, src, opts); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
			failed = true
		}
	}
	if failed {
		os.Exit(1)
	}
}

func run(p *message.Printer, name string, src []int64, opts []bzbcodec.Option) error {
	c, err := bzbcodec.New(name, opts...)
	if err != nil {
		return err
	}

	t0 := time.Now()
	artifact, err := c.Encode(src)
	if err != nil {
		return err
	}
	encodeTime := time.Since(t0)

	t0 = time.Now()
	out, err := c.Decode(artifact)
	if err != nil {
		return err
	}
	decodeTime := time.Since(t0)

	if !slices.Equal(src, out) {
		return fmt.Errorf("round trip mismatch: %d symbols in, %d out", len(src), len(out))
	}

	bits := bzbcodec.EncodedBits(artifact)
	ratio := 0.0
	if raw := bzbcodec.RawBits(src); raw != 0 {
		ratio = float64(bits) / float64(raw)
	}
	p.Printf("%-8s %d bits (%.1f%%), encode %v, decode %v\n",
		c.Algorithm(), bits, 100*ratio, encodeTime.Round(time.Millisecond), decodeTime.Round(time.Millisecond))
	return nil
}
