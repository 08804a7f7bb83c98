package balance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluator(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		subset   string
		expected span
	}{
		{name: "balanced prefix", input: "abbac", subset: "ab", expected: span{0, 4}},
		{name: "three letters", input: "aabcc", subset: "abc", expected: span{1, 4}},
		{name: "suffix pair", input: "abcbc", subset: "bc", expected: span{1, 5}},
		{name: "outsider resets", input: "aab#ab", subset: "ab", expected: span{1, 3}},
		{name: "region after outsider", input: "a#abab", subset: "ab", expected: span{2, 6}},
		{name: "outsider forgets earlier keys", input: "bba#b", subset: "ab", expected: span{1, 3}},
		{name: "many outsiders", input: strings.Repeat("ab#", 50) + "abab", subset: "ab", expected: span{150, 154}},
		{name: "never balanced", input: "aaaa", subset: "ab", expected: span{}},
		{name: "only outsiders", input: "cccc", subset: "ab", expected: span{}},
		{name: "empty input", input: "", subset: "ab", expected: span{}},
	}

	e := newEvaluator()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, e.longest(tc.input, []byte(tc.subset)))
		})
	}
}

func TestEvaluator_ReusedAcrossSubsets(t *testing.T) {
	assert := assert.New(t)
	e := newEvaluator()

	assert.Equal(span{0, 6}, e.longest("aaabbbccc", []byte("ab")))
	// a was a member of the previous subset and must now act as an outsider.
	assert.Equal(span{3, 9}, e.longest("aaabbbccc", []byte("bc")))
	assert.Equal(span{0, 9}, e.longest("aaabbbccc", []byte("abc")))

	for i, p := range e.pos {
		assert.Equal(-1, p, "position table not restored for byte %d", i)
	}
}

func TestEvaluator_KeyEncoding(t *testing.T) {
	assert := assert.New(t)
	e := newEvaluator()

	e.counts = []int{3, 1, 3}
	k1 := e.key()
	e.counts = []int{5, 3, 5}
	k2 := e.key()
	e.counts = []int{3, 3, 1}
	k3 := e.key()

	assert.Equal(k1, k2, "equal differences must give equal keys")
	assert.NotEqual(k1, k3)

	e.counts = []int{4, 4, 4}
	e.zero = string(make([]byte, 2))
	assert.Equal(e.zero, e.key())
}

func BenchmarkEvaluatorReset(b *testing.B) {
	s := strings.Repeat("ab#", 1000)
	subset := []byte("ab")
	e := newEvaluator()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.longest(s, subset)
	}
}

func BenchmarkLongest(b *testing.B) {
	s := strings.Repeat("abcdefgh#", 2000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Longest(s)
	}
}
