// Package huffman implements minimum-redundancy prefix codes over integer
// symbols.  The code for each symbol is the root-to-leaf path of a Huffman
// tree built from the symbol frequencies of the input, left branches labelled
// '0' and right branches labelled '1'.
//
// Ties between equal frequencies are broken by first-seen order, so a given
// input always produces the same tree.  The code table is not
// self-describing: it travels alongside the encoded Bitstring and must be
// handed back to Decode.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
