// Package balance finds the longest balanced substring of a string: the
// longest region that is either a run of one repeated character, or a region
// over some set of two or more distinct letters in which every letter of the
// set occurs the same number of times.
//
// The search tries every subset of the letters present in the input, so its
// cost grows exponentially with the number of distinct letters. Use
// WithMaxSubset to bound it.
package balance

// Result describes the longest balanced substring found.
type Result struct {
	Length int `json:"length"`
	// Start and End delimit the substring as s[Start:End].
	Start int `json:"start"`
	End   int `json:"end"`
	// Letters holds the balanced letters in discovery order. A run reports
	// its single repeated character.
	Letters string `json:"letters"`
}

// Substring returns the part of s that r describes.
func (r Result) Substring(s string) string {
	return s[r.Start:r.End]
}

// Finder searches strings for balanced substrings. A Finder holds no state
// between calls and may be used from several goroutines.
type Finder struct {
	alphabet  Alphabet
	maxSubset int
}

type Option func(*Finder)

// WithAlphabet sets the characters that may form balanced subsets.
func WithAlphabet(a Alphabet) Option {
	return func(f *Finder) {
		if a != nil {
			f.alphabet = a
		}
	}
}

// WithMaxSubset limits the size of the letter subsets tried. Zero or less
// means no limit; 1 only considers single-character runs.
func WithMaxSubset(k int) Option {
	return func(f *Finder) {
		f.maxSubset = k
	}
}

// New creates a Finder. Without options it uses the Lowercase alphabet and
// tries subsets of every size.
func New(opts ...Option) *Finder {
	f := &Finder{alphabet: Lowercase}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Finder) Alphabet() Alphabet { return f.alphabet }

// Letters returns the distinct alphabet members of s in order of first
// appearance. Its length drives the cost of Find.
func (f *Finder) Letters(s string) string {
	return string(discoverLetters(s, f.alphabet))
}

// SubsetSizes returns the range of subset sizes Find tries for m distinct
// letters. The range is empty when hi < lo.
func (f *Finder) SubsetSizes(m int) (lo, hi int) {
	hi = m
	if f.maxSubset > 0 && f.maxSubset < hi {
		hi = f.maxSubset
	}
	return 2, hi
}

// Longest returns the length of the longest balanced substring of s, or 0
// for the empty string.
func (f *Finder) Longest(s string) int {
	return f.Find(s).Length
}

// Find returns the longest balanced substring of s. When several substrings
// share the maximum length, the first one found wins: runs before subsets,
// smaller subsets before larger ones, and leftmost within a subset.
func (f *Finder) Find(s string) Result {
	if len(s) == 0 {
		return Result{}
	}

	best := longestRun(s)

	letters := discoverLetters(s, f.alphabet)
	minSize, maxSize := f.SubsetSizes(len(letters))

	e := newEvaluator()
	subset := make([]byte, 0, len(letters))
	for size := minSize; size <= maxSize; size++ {
		for idx := range Combinations(len(letters), size) {
			subset = subset[:0]
			for _, i := range idx {
				subset = append(subset, letters[i])
			}
			if sp := e.longest(s, subset); sp.len() > best.Length {
				best = Result{
					Length:  sp.len(),
					Start:   sp.start,
					End:     sp.end,
					Letters: string(subset),
				}
			}
		}
	}
	return best
}

// longestRun scans for the longest run of one repeated byte. s must not be
// empty.
func longestRun(s string) Result {
	best := Result{Length: 1, Start: 0, End: 1, Letters: s[:1]}
	start := 0
	for i := 1; i < len(s); i++ {
		if s[i] != s[i-1] {
			start = i
			continue
		}
		if n := i + 1 - start; n > best.Length {
			best = Result{Length: n, Start: start, End: i + 1, Letters: s[i : i+1]}
		}
	}
	return best
}

var defaultFinder = New()

// Longest returns the length of the longest balanced substring of s over the
// lowercase alphabet.
func Longest(s string) int {
	return defaultFinder.Longest(s)
}

// Find is Finder.Find over the lowercase alphabet.
func Find(s string) Result {
	return defaultFinder.Find(s)
}
