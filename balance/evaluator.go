package balance

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/swiss"
)

func hashDiffKey(k *string, seed uintptr) uintptr {
	return uintptr(xxhash.Sum64String(*k) ^ uint64(seed))
}

var firstSeenOptions = []swiss.Option[string, int]{
	swiss.WithHash[string, int](hashDiffKey),
}

// span is the half-open byte range [start, end).
type span struct {
	start, end int
}

func (s span) len() int { return s.end - s.start }

// evaluator finds, for one subset at a time, the longest region made only of
// subset members where every member occurs equally often.
//
// The difference vector counts[0]-counts[j] is encoded as a string of
// varints. Two positions with the same key saw equal increments of every
// member in between.
type evaluator struct {
	pos    [256]int // subset position of each byte, -1 if not a member
	counts []int
	buf    []byte
	zero   string

	// first maps a difference key to the earliest position it was seen at
	// since the last reset.
	first swiss.Map[string, int]
}

func newEvaluator() *evaluator {
	e := &evaluator{}
	for i := range e.pos {
		e.pos[i] = -1
	}
	e.first.Init(8, firstSeenOptions...)
	return e
}

func (e *evaluator) longest(s string, subset []byte) span {
	k := len(subset)
	for i, c := range subset {
		e.pos[c] = i
	}
	defer func() {
		for _, c := range subset {
			e.pos[c] = -1
		}
	}()

	if cap(e.counts) < k {
		e.counts = make([]int, k)
	}
	e.counts = e.counts[:k]
	e.zero = string(make([]byte, k-1)) // varint(0) is a single 0x00
	e.reset(-1)

	var best span
	for i := 0; i < len(s); i++ {
		p := e.pos[s[i]]
		if p < 0 {
			e.reset(i)
			continue
		}
		e.counts[p]++
		key := e.key()
		if at, ok := e.first.Get(key); ok {
			if i-at > best.len() {
				best = span{start: at + 1, end: i + 1}
			}
		} else {
			e.first.Put(key, i)
		}
	}
	return best
}

// reset zeroes the counts and forgets every key, treating position at as the
// point just before a fresh segment. The map keeps its capacity.
func (e *evaluator) reset(at int) {
	clear(e.counts)
	e.first.Clear()
	e.first.Put(e.zero, at)
}

func (e *evaluator) key() string {
	e.buf = e.buf[:0]
	for j := 1; j < len(e.counts); j++ {
		e.buf = binary.AppendVarint(e.buf, int64(e.counts[0]-e.counts[j]))
	}
	return string(e.buf)
}
