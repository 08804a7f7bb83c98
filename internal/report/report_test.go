package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hayeah/balsub/balance"
	"github.com/hayeah/balsub/internal/assert"
)

func entriesFor(inputs ...string) []Entry {
	entries := make([]Entry, len(inputs))
	for i, in := range inputs {
		entries[i] = Entry{Input: in, Result: balance.Find(in)}
	}
	return entries
}

var demo = []string{"aa", "abbac", "aabcc", "aba", "abcbc", "aaabbbccc"}

func TestParseFormat(t *testing.T) {
	a := assert.New(t)

	for in, expected := range map[string]Format{
		"":        Plain,
		"plain":   Plain,
		"TABLE":   Table,
		"explain": Explain,
		" json ":  JSON,
	} {
		f, err := ParseFormat(in)
		a.NoError(err)
		a.Equal(expected, f)
	}

	_, err := ParseFormat("yaml")
	a.Error(err)
}

func TestWrite_Plain(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer

	a.NoError(NewWriter(Plain, &buf).Write(entriesFor(demo...)))
	a.EqualLines([]string{"2", "4", "3", "2", "4", "9"}, buf.String())
}

func TestWrite_PlainEmpty(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer

	a.NoError(NewWriter(Plain, &buf).Write(entriesFor("", "x")))
	a.EqualLines([]string{"0", "1"}, buf.String())
}

func TestWrite_Table(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer

	a.NoError(NewWriter(Table, &buf).Write(entriesFor("abcbc", "")))
	out := buf.String()

	a.Contains(out, "Input")
	a.Contains(out, "Substring")
	a.Contains(out, "[1,5)")
	a.Contains(out, "bcbc")
	a.Contains(out, `""`)
}

func TestWrite_Explain(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer

	a.NoError(NewWriter(Explain, &buf).Write(entriesFor("abbac", "aabcc", "")))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)

	a.Contains(lines[0], "[abba]c")
	a.Contains(lines[0], "length=4 span=[0,4) letters=ab")
	a.Contains(lines[1], "a[abc]c")
	a.Contains(lines[2], "length=0")
}

func TestWrite_JSON(t *testing.T) {
	a := assert.New(t)
	var buf bytes.Buffer

	a.NoError(NewWriter(JSON, &buf).Write(entriesFor("aaabbbccc")))

	var got Entry
	a.NoError(json.Unmarshal(buf.Bytes(), &got))
	a.Equal("aaabbbccc", got.Input)
	a.Equal(balance.Result{Length: 9, Start: 0, End: 9, Letters: "abc"}, got.Result)
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := NewWriter(Format("yaml"), &buf).Write(entriesFor("aa"))
	assert.New(t).Error(err)
}
