package bzbcodec

import (
	"log/slog"
	"strings"

	"github.com/chronos-tachyon/bzbcodec/codecerr"
	"github.com/chronos-tachyon/bzbcodec/deflate"
	"github.com/chronos-tachyon/bzbcodec/huffman"
	"github.com/chronos-tachyon/bzbcodec/lz77"
	"github.com/chronos-tachyon/bzbcodec/lzw"
)

// Algorithm selects a codec
type Algorithm int

const (
	LZ77 Algorithm = iota
	LZW
	Huffman
	Deflate
)

var algorithmNames = [...]string{
	LZ77:    "lz77",
	LZW:     "lzw",
	Huffman: "huffman",
	Deflate: "deflate",
}

// Algorithms lists every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{LZ77, LZW, Huffman, Deflate}
}

func (a Algorithm) String() string {
	if a >= 0 && int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return "unknown"
}

// ParseAlgorithm returns the Algorithm with the given name, ignoring case.
func ParseAlgorithm(name string) (Algorithm, error) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for a, n := range algorithmNames {
		if n == lower {
			return Algorithm(a), nil
		}
	}
	return 0, codecerr.Configf("unknown codec %q (want one of lz77, lzw, huffman, deflate)", name)
}

// Codec compresses sequences of symbols into an Artifact and back.
type Codec interface {
	Algorithm() Algorithm

	// Encode compresses src.  src is not retained.
	Encode(src []int64) (Artifact, error)

	// Decode reverses Encode.  It returns no partial output on error.
	Decode(a Artifact) ([]int64, error)
}

// New returns the Codec named by name ("lz77", "lzw", "huffman" or
// "deflate").
//
// The lzw codec seeds its dictionary with the symbols [0, 256) unless
// WithAlphabetSize says otherwise, and fails with ErrEncode on any symbol
// outside that range.  Signed audio samples, for example, need an offset
// into a wider alphabet or one of the other codecs.
func New(name string, opts ...Option) (Codec, error) {
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return NewCodec(alg, opts...)
}

// NewCodec returns the Codec for alg.
func NewCodec(alg Algorithm, opts ...Option) (Codec, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt.apply(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var c Codec
	switch alg {
	case LZ77:
		c = lz77Codec{cfg}
	case LZW:
		c = lzwCodec{cfg}
	case Huffman:
		c = huffmanCodec{cfg}
	case Deflate:
		c = deflateCodec{cfg}
	default:
		return nil, codecerr.Configf("unknown algorithm %d", int(alg))
	}
	cfg.logger().Debug("codec created", "algorithm", alg.String(),
		"maxOffset", cfg.MaxOffset, "maxLength", cfg.MaxLength, "chunkSize", cfg.ChunkSize)
	return c, nil
}

// artifactFor checks that a was produced by alg.
func artifactFor[T Artifact](a Artifact, alg Algorithm) (T, error) {
	var zero T
	if a == nil {
		return zero, codecerr.Decodef("%s: nil artifact", alg)
	}
	t, ok := a.(T)
	if !ok || a.Algorithm() != alg {
		return zero, codecerr.Decodef("%s: cannot decode %s artifact", alg, a.Algorithm())
	}
	if any(t) == any(zero) {
		return zero, codecerr.Decodef("%s: nil artifact", alg)
	}
	return t, nil
}

// type lz77Codec {{{

type lz77Codec struct {
	cfg config
}

func (c lz77Codec) logger() *slog.Logger { return c.cfg.logger() }

func (lz77Codec) Algorithm() Algorithm { return LZ77 }

func (c lz77Codec) Encode(src []int64) (Artifact, error) {
	codewords, err := lz77.Compress(src, c.cfg.MaxOffset, c.cfg.MaxLength)
	if err != nil {
		return nil, err
	}
	return &LZ77Artifact{Codewords: codewords}, nil
}

func (c lz77Codec) Decode(a Artifact) ([]int64, error) {
	art, err := artifactFor[*LZ77Artifact](a, LZ77)
	if err != nil {
		return nil, err
	}
	return lz77.Decompress(art.Codewords)
}

// }}}

// type lzwCodec {{{

type lzwCodec struct {
	cfg config
}

func (c lzwCodec) logger() *slog.Logger { return c.cfg.logger() }

func (lzwCodec) Algorithm() Algorithm { return LZW }

func (c lzwCodec) Encode(src []int64) (Artifact, error) {
	codes, err := lzw.CompressAlphabet(src, c.cfg.AlphabetSize)
	if err != nil {
		return nil, err
	}
	return &LZWArtifact{Codes: codes, AlphabetSize: c.cfg.AlphabetSize}, nil
}

func (c lzwCodec) Decode(a Artifact) ([]int64, error) {
	art, err := artifactFor[*LZWArtifact](a, LZW)
	if err != nil {
		return nil, err
	}
	if art.AlphabetSize < 1 {
		return nil, codecerr.Decodef("%s: artifact alphabet size %d must be positive", LZW, art.AlphabetSize)
	}
	return lzw.DecompressAlphabet(art.Codes, art.AlphabetSize)
}

// }}}

// type huffmanCodec {{{

type huffmanCodec struct {
	cfg config
}

func (c huffmanCodec) logger() *slog.Logger { return c.cfg.logger() }

func (huffmanCodec) Algorithm() Algorithm { return Huffman }

func (c huffmanCodec) Encode(src []int64) (Artifact, error) {
	bits, table, err := huffman.Encode(src)
	if err != nil {
		return nil, err
	}
	return &HuffmanArtifact{Bits: bits, Table: table}, nil
}

func (c huffmanCodec) Decode(a Artifact) ([]int64, error) {
	art, err := artifactFor[*HuffmanArtifact](a, Huffman)
	if err != nil {
		return nil, err
	}
	return huffman.Decode(art.Bits, art.Table)
}

// }}}

// type deflateCodec {{{

type deflateCodec struct {
	cfg config
}

func (c deflateCodec) logger() *slog.Logger { return c.cfg.logger() }

func (deflateCodec) Algorithm() Algorithm { return Deflate }

func (c deflateCodec) Encode(src []int64) (Artifact, error) {
	chunks, err := deflate.Encode(src, c.cfg.deflateOptions())
	if err != nil {
		return nil, err
	}
	return &DeflateArtifact{Chunks: chunks}, nil
}

func (c deflateCodec) Decode(a Artifact) ([]int64, error) {
	art, err := artifactFor[*DeflateArtifact](a, Deflate)
	if err != nil {
		return nil, err
	}
	return deflate.Decode(art.Chunks)
}

// }}}
