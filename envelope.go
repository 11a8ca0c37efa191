package bzbcodec

import (
	"log/slog"

	"github.com/chronos-tachyon/bzbcodec/codecerr"
)

// MediaKind names the kind of media a sequence was flattened from.
type MediaKind string

const (
	MediaImage MediaKind = "image"
	MediaVideo MediaKind = "video"
	MediaAudio MediaKind = "audio"
	MediaText  MediaKind = "text"
)

// Metadata describes how a flat sequence maps back onto its media.  The
// codecs never interpret it; it only travels alongside the artifact.
type Metadata struct {
	Kind MediaKind

	// Shape holds the dimensions the sequence was flattened from, e.g.
	// {height, width, channels} for an image or {frames, height, width,
	// channels} for a video.
	Shape []int

	// SampleRate is the audio sample rate or video frame rate.
	SampleRate int

	// Channels is the number of interleaved audio channels.
	Channels int
}

// Envelope carries an Artifact together with the Metadata of the sequence
// it encodes.
type Envelope struct {
	Algorithm Algorithm
	Artifact  Artifact
	Metadata  Metadata
}

// Seal encodes src with c and wraps the result with meta.
func Seal(c Codec, src []int64, meta Metadata) (*Envelope, error) {
	artifact, err := c.Encode(src)
	if err != nil {
		return nil, err
	}
	codecLogger(c).Debug("sealed envelope", "algorithm", c.Algorithm().String(), "kind", string(meta.Kind), "symbols", len(src))
	return &Envelope{
		Algorithm: c.Algorithm(),
		Artifact:  artifact,
		Metadata:  cloneMetadata(meta),
	}, nil
}

// Open decodes the artifact in env with c.  c must use the algorithm env
// was sealed with.
func Open(c Codec, env *Envelope) ([]int64, Metadata, error) {
	if env == nil {
		return nil, Metadata{}, codecerr.Decodef("nil envelope")
	}
	if env.Algorithm != c.Algorithm() {
		return nil, Metadata{}, codecerr.Decodef("envelope sealed with %s, opened with %s", env.Algorithm, c.Algorithm())
	}
	out, err := c.Decode(env.Artifact)
	if err != nil {
		return nil, Metadata{}, err
	}
	return out, cloneMetadata(env.Metadata), nil
}

// NumSymbols returns the product of the shape's dimensions, or 0 for an
// empty shape.
func (m Metadata) NumSymbols() int {
	if len(m.Shape) == 0 {
		return 0
	}
	n := 1
	for _, dim := range m.Shape {
		n *= dim
	}
	return n
}

func cloneMetadata(m Metadata) Metadata {
	if m.Shape != nil {
		m.Shape = append([]int(nil), m.Shape...)
	}
	return m
}

// codecLogger returns the logger c was built with, or the global logger for
// Codec implementations from outside this package.
func codecLogger(c Codec) *slog.Logger {
	if lc, ok := c.(interface{ logger() *slog.Logger }); ok {
		return lc.logger()
	}
	return log
}
