package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"

	"github.com/chronos-tachyon/bzbcodec/codecerr"
)

// Encoder builds a Huffman code for one input sequence.
type Encoder struct {
	nodes   []node
	order   []int64
	codes   Table
	minSize byte
	maxSize byte
}

// Init initializes this Encoder from the symbols of src.  Symbols are
// counted in first-seen order, and that order breaks ties between equal
// frequencies while the tree is built.
//
// An empty src yields an Encoder with an empty table.  Init fails only if the
// tree is deeper than a Code can hold.
//
func (e *Encoder) Init(src []int64) error {
	nodes, order := countFrequencies(src)
	*e = Encoder{order: order, codes: make(Table, len(order))}

	switch len(order) {
	case 0:
		return nil
	case 1:
		e.nodes = nodes
		e.codes[order[0]] = MakeCode(1, 0)
		e.minSize, e.maxSize = 1, 1
		return nil
	}

	root := buildTree(&nodes)
	e.nodes = nodes
	return assignCodes(e.nodes, root, e.codes, &e.minSize, &e.maxSize)
}

// Encode returns the Code for symbol, or false if symbol was not part of the
// input given to Init.
func (e Encoder) Encode(symbol int64) (Code, bool) {
	hc, found := e.codes[symbol]
	return hc, found
}

// Table returns a copy of the code table.
func (e Encoder) Table() Table {
	out := make(Table, len(e.codes))
	for symbol, hc := range e.codes {
		out[symbol] = hc
	}
	return out
}

// MinSize is the bit length of the shortest code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// NumSymbols is the number of distinct symbols in the code.
func (e Encoder) NumSymbols() int {
	return len(e.order)
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Symbols are listed in first-seen order.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for _, symbol := range e.order {
		fmt.Fprintf(&buf, "\tEncode(%d) = %q\n", symbol, e.codes[symbol].String())
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// node is one slot of the tree arena: either a leaf carrying a symbol, or a
// branch referring to two earlier slots by index.
type node struct {
	leaf   bool
	symbol int64
	freq   uint64
	left   int32
	right  int32
}

// countFrequencies returns one leaf per distinct symbol, in first-seen
// order, along with the symbols themselves in the same order.
func countFrequencies(src []int64) ([]node, []int64) {
	index := make(map[int64]int32)
	var nodes []node
	var order []int64
	for _, symbol := range src {
		if i, found := index[symbol]; found {
			nodes[i].freq++
			continue
		}
		assert.Assertf(len(nodes) < math.MaxInt32/2, "too many distinct symbols: %d", len(nodes))
		index[symbol] = int32(len(nodes))
		nodes = append(nodes, node{leaf: true, symbol: symbol, freq: 1})
		order = append(order, symbol)
	}
	return nodes, order
}

// buildTree appends the branch nodes to *nodes and returns the index of the
// root.
//
// The leaves are seeded into a minheap keyed by (frequency, sequence number),
// with each leaf's sequence number being its first-seen index.  We then pop
// the two lowest entries, combine them into a branch (first popped on the
// left), and push the branch back with the next sequence number, until one
// entry remains.
//
func buildTree(nodes *[]node) int32 {
	numLeaves := len(*nodes)
	list := make([]heapEntry, numLeaves, 2*numLeaves)
	for i := range list {
		list[i] = heapEntry{freq: (*nodes)[i].freq, seq: uint64(i), index: int32(i)}
	}

	h := freqHeap{list}
	h.Init()

	nextSeq := uint64(numLeaves)
	for h.Len() > 1 {
		a := heap.Pop(&h).(heapEntry)
		b := heap.Pop(&h).(heapEntry)

		index := int32(len(*nodes))
		*nodes = append(*nodes, node{freq: a.freq + b.freq, left: a.index, right: b.index})
		heap.Push(&h, heapEntry{freq: a.freq + b.freq, seq: nextSeq, index: index})
		nextSeq++
	}

	root := heap.Pop(&h).(heapEntry)
	assert.Assertf(int(root.index) == len(*nodes)-1, "root %d is not the last node (%d)", root.index, len(*nodes)-1)
	return root.index
}

// assignCodes walks the tree from root and records the path to every leaf
// in codes.  It also computes minSize and maxSize while it's there.
func assignCodes(nodes []node, root int32, codes Table, minSize *byte, maxSize *byte) error {
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children

	type stackItem struct {
		index int32
		code  Code
		x     byte
	}

	stack := make([]stackItem, 0, log2int(len(nodes)))
	var hasMinMax bool

	processChild := func(index int32, hc Code) {
		n := &nodes[index]
		if !n.leaf {
			stack = append(stack, stackItem{index: index, code: hc})
			return
		}

		codes[n.symbol] = hc
		if !hasMinMax {
			hasMinMax = true
			*minSize = hc.Size
			*maxSize = hc.Size
		}
		if *minSize > hc.Size {
			*minSize = hc.Size
		}
		if *maxSize < hc.Size {
			*maxSize = hc.Size
		}
	}

	stack = append(stack, stackItem{index: root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		if x < 2 && top.code.Size >= maxBitsPerCode {
			return codecerr.Encodef("huffman tree is deeper than %d bits", maxBitsPerCode)
		}
		switch x {
		case 0:
			processChild(nodes[top.index].left, top.code.Append(false))
		case 1:
			processChild(nodes[top.index].right, top.code.Append(true))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
	return nil
}

// type heapEntry + type freqHeap {{{

type heapEntry struct {
	freq  uint64
	seq   uint64
	index int32
}

type freqHeap struct {
	list []heapEntry
}

func (h *freqHeap) Init() {
	heap.Init(h)
}

func (h *freqHeap) Len() int {
	return len(h.list)
}

func (h *freqHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *freqHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	return a.seq < b.seq
}

func (h *freqHeap) Push(x interface{}) {
	h.list = append(h.list, x.(heapEntry))
}

func (h *freqHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*freqHeap)(nil)

// }}}
