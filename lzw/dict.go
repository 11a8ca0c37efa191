package lzw

import (
	"github.com/chronos-tachyon/assert"
)

// noCode marks an empty current word.
const noCode = -1

// trieKey names the dictionary entry that extends the word for prefix by
// one symbol.
type trieKey struct {
	prefix int
	symbol int64
}

// trie is the encoder's dictionary.  Single symbols are implicit: the code
// for symbol s is s itself.
type trie struct {
	next  map[trieKey]int
	count int
}

func newTrie(alphabet int) *trie {
	return &trie{next: make(map[trieKey]int), count: alphabet}
}

func (t *trie) lookup(prefix int, symbol int64) (int, bool) {
	code, found := t.next[trieKey{prefix, symbol}]
	return code, found
}

func (t *trie) insert(prefix int, symbol int64) {
	t.next[trieKey{prefix, symbol}] = t.count
	t.count++
}

// entry is the decoder's view of one dictionary code: the word for prefix
// followed by last.
type entry struct {
	prefix int
	last   int64
	length int
}

// table is the decoder's dictionary.  Codes below alphabet are implicit.
type table struct {
	alphabet int
	entries  []entry
}

func newTable(alphabet int, hint int) *table {
	return &table{alphabet: alphabet, entries: make([]entry, 0, hint)}
}

func (t *table) size() int {
	return t.alphabet + len(t.entries)
}

func (t *table) wordLen(code int) int {
	if code < t.alphabet {
		return 1
	}
	return t.entries[code-t.alphabet].length
}

func (t *table) add(prefix int, last int64) {
	t.entries = append(t.entries, entry{prefix: prefix, last: last, length: t.wordLen(prefix) + 1})
}

// appendWord appends the word for code to dst.  The word is written back to
// front by following prefix links.
func (t *table) appendWord(dst []int64, code int) []int64 {
	n := t.wordLen(code)
	start := len(dst)
	for i := 0; i < n; i++ {
		dst = append(dst, 0)
	}
	for i := start + n - 1; code >= t.alphabet; i-- {
		e := t.entries[code-t.alphabet]
		dst[i] = e.last
		code = e.prefix
	}
	assert.Assertf(code >= 0 && code < t.alphabet, "lzw: word root %d outside alphabet", code)
	dst[start] = int64(code)
	return dst
}
