// Package bzbcodec is a suite of interchangeable compressors for sequences
// of integer symbols such as pixel channel values, audio samples or text
// bytes.
//
// Four algorithms are available, selected by name:
//
//	lz77     sliding-window back-references (package lz77)
//	lzw      adaptive dictionary substitution (package lzw)
//	huffman  minimum-redundancy prefix codes (package huffman)
//	deflate  chunked LZ77 with Huffman-coded fields (package deflate)
//
// Every Codec satisfies Decode(Encode(s)) == s.  Codecs keep no state
// between calls and are safe for concurrent use.
package bzbcodec
