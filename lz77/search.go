package lz77

import (
	"github.com/chronos-tachyon/assert"
)

// match describes a back-reference candidate.
type match struct {
	len int
	off int
}

// findLongestMatch scans the window behind head, nearest offset first, for
// the longest run equal to the symbols starting at head.  A later offset
// replaces the best so far only if it is strictly longer, so ties go to the
// nearest offset.  The run may extend past head into the symbols it is
// copying.  A zero-length match means src[head] does not occur in the
// window.
func findLongestMatch(src []int64, head, maxOffset, maxLength int) match {
	best := match{}
	limit := len(src) - head
	if limit > maxLength {
		limit = maxLength
	}
	maxDist := maxOffset
	if head < maxDist {
		maxDist = head
	}

	for offset := 1; offset <= maxDist; offset++ {
		checkPos := head - offset
		if src[checkPos] != src[head] {
			continue
		}
		length := 1
		for length < limit && src[checkPos+length] == src[head+length] {
			length++
		}
		if length > best.len {
			best = match{len: length, off: offset}
			if length == limit {
				break
			}
		}
	}

	assert.Assertf(best.len <= limit, "match length %d exceeds limit %d", best.len, limit)
	return best
}

// literalRun counts how many times src[head] repeats from head onwards,
// capped at maxLength.
func literalRun(src []int64, head, maxLength int) int {
	n := 1
	for n < maxLength && head+n < len(src) && src[head+n] == src[head] {
		n++
	}
	return n
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
