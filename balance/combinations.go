package balance

import "iter"

// Combinations yields every k-element subset of {0, ..., m-1} as an ascending
// index slice, in lexicographic order. The yielded slice is reused between
// iterations; copy it to keep it.
func Combinations(m, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k <= 0 || k > m {
			return
		}
		idx := make([]int, k)
		for i := range idx {
			idx[i] = i
		}
		for {
			if !yield(idx) {
				return
			}
			if !nextCombination(idx, m) {
				return
			}
		}
	}
}

// nextCombination advances idx in place to the next combination of
// len(idx) elements out of m, returning false after the last one.
func nextCombination(idx []int, m int) bool {
	k := len(idx)
	i := k - 1
	for i >= 0 && idx[i] == i+m-k {
		i--
	}
	if i < 0 {
		return false
	}
	idx[i]++
	for j := i + 1; j < k; j++ {
		idx[j] = idx[j-1] + 1
	}
	return true
}
