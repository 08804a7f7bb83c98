package balance

import (
	"fmt"
	"strings"
)

// Alphabet is a bounded character set known up front. Characters outside the
// alphabet never join a balanced subset; they split the string instead.
type Alphabet interface {
	// Index maps c into [0, Size()) or reports false if c is not a member.
	Index(c byte) (int, bool)
	Size() int
	Name() string
}

type lowercase struct{}

func (lowercase) Index(c byte) (int, bool) {
	if c < 'a' || c > 'z' {
		return 0, false
	}
	return int(c - 'a'), true
}

func (lowercase) Size() int    { return 26 }
func (lowercase) Name() string { return "lowercase" }

// printable ASCII without space: '!' .. '~'
type ascii struct{}

func (ascii) Index(c byte) (int, bool) {
	if c < '!' || c > '~' {
		return 0, false
	}
	return int(c - '!'), true
}

func (ascii) Size() int    { return '~' - '!' + 1 }
func (ascii) Name() string { return "ascii" }

var (
	// Lowercase is the 26 letters a-z.
	Lowercase Alphabet = lowercase{}
	// ASCII is every printable, non-space ASCII byte.
	ASCII Alphabet = ascii{}
)

// AlphabetByName looks up a built-in alphabet. The empty name selects
// Lowercase.
func AlphabetByName(name string) (Alphabet, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "lowercase", "lower":
		return Lowercase, nil
	case "ascii":
		return ASCII, nil
	default:
		return nil, fmt.Errorf("unknown alphabet %q, expected 'lowercase' or 'ascii'", name)
	}
}

// discoverLetters returns the distinct members of alpha that occur in s, in
// order of first appearance.
func discoverLetters(s string, alpha Alphabet) []byte {
	seen := make([]bool, alpha.Size())
	var letters []byte
	for i := 0; i < len(s); i++ {
		idx, ok := alpha.Index(s[i])
		if !ok || seen[idx] {
			continue
		}
		seen[idx] = true
		letters = append(letters, s[i])
	}
	return letters
}
