package source

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// -----------------------------------------------------------------------------
// helpers
// -----------------------------------------------------------------------------

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	fp := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(fp), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(fp, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	return fp
}

// -----------------------------------------------------------------------------
// pickLoader dispatch
// -----------------------------------------------------------------------------

func TestPickLoader_Dispatch(t *testing.T) {
	ctx := context.Background()
	assert := assert.New(t)

	// ── 1. stdin ─────────────────────────────────────────────────────────────
	ld, err := pickLoader("-")
	assert.NoError(err)
	stdinLoader, ok := ld.(*StdinLoader)
	assert.True(ok, "expected loader to be *StdinLoader")
	stdinLoader.Reader = bytes.NewBufferString("aa\n\n  abbac \r\naba\n")

	got, err := ld.Load(ctx)
	assert.NoError(err)
	assert.Equal([]string{"aa", "abbac", "aba"}, got)

	// ── 2. literal (both aliases) ────────────────────────────────────────────
	ld, err = pickLoader("text:abcbc")
	assert.NoError(err)
	got, _ = ld.Load(ctx)
	assert.Equal([]string{"abcbc"}, got)

	ld, err = pickLoader("literal:")
	assert.NoError(err)
	got, _ = ld.Load(ctx)
	assert.Equal([]string{""}, got, "an empty literal is still one input")

	// ── 3. file ──────────────────────────────────────────────────────────────
	fp := writeFile(t, t.TempDir(), "inputs.txt", "aabcc\naaabbbccc\n")
	for _, spec := range []string{fp, "file:" + fp} {
		ld, err = pickLoader(spec)
		assert.NoError(err)
		got, err = ld.Load(ctx)
		assert.NoError(err)
		assert.Equal([]string{"aabcc", "aaabbbccc"}, got)
	}

	// ── 4. clipboard aliases ─────────────────────────────────────────────────
	for _, spec := range []string{"clipboard", "paste", "CLIPBOARD"} {
		ld, err = pickLoader(spec)
		assert.NoError(err)
		_, ok = ld.(*ClipboardLoader)
		assert.True(ok, "expected %q to pick the clipboard", spec)
	}

	// ── 5. unknown ───────────────────────────────────────────────────────────
	_, err = pickLoader("noscheme://foo")
	assert.True(errors.Is(err, ErrUnknownSource))

	_, err = pickLoader(t.TempDir())
	assert.True(errors.Is(err, ErrUnknownSource), "directories are not inputs")
}

func TestClipboardLoader(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	ld := &ClipboardLoader{ReadAll: func() (string, error) { return "aa\nabbac", nil }}
	got, err := ld.Load(ctx)
	assert.NoError(err)
	assert.Equal([]string{"aa", "abbac"}, got)

	ld = &ClipboardLoader{ReadAll: func() (string, error) { return "", errors.New("no display") }}
	_, err = ld.Load(ctx)
	assert.ErrorContains(err, "no display")
}

func TestGlobLoader(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "abbac\n")
	writeFile(t, dir, "a.txt", "aa\n")
	writeFile(t, dir, "nested/deep/c.txt", "aba\n")
	writeFile(t, dir, "skip.md", "zzz\n")

	ld, err := pickLoader("glob:" + filepath.Join(dir, "**", "*.txt"))
	assert.NoError(err)
	got, err := ld.Load(ctx)
	assert.NoError(err)
	assert.Equal([]string{"aa", "abbac", "aba"}, got)

	_, err = pickLoader("glob:")
	assert.Error(err)
}

func TestFileLoader_Missing(t *testing.T) {
	ld, err := pickLoader("file:" + filepath.Join(t.TempDir(), "missing.txt"))
	assert.NoError(t, err)
	_, err = ld.Load(context.Background())
	assert.Error(t, err)
}

// -----------------------------------------------------------------------------
// LoadAll behaviour
// -----------------------------------------------------------------------------

func TestLoadAll_Order(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	fp := writeFile(t, t.TempDir(), "inputs.txt", "from-file\n")

	got, err := LoadAll(ctx, []string{"text:first", fp, "text:last"})
	assert.NoError(err)
	assert.Equal([]string{"first", "from-file", "last"}, got)

	got, err = LoadAll(ctx, nil)
	assert.NoError(err)
	assert.Empty(got)

	_, err = LoadAll(ctx, []string{"text:ok", "nope:nothing-here"})
	assert.True(errors.Is(err, ErrUnknownSource))
}

func TestPickLoader_HomeExpansion(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	home := t.TempDir()
	t.Setenv("HOME", home)
	writeFile(t, home, "inputs.txt", "aaabbbccc\n")

	ld, err := pickLoader("~/inputs.txt")
	assert.NoError(err)

	got, err := ld.Load(ctx)
	assert.NoError(err)
	assert.Equal([]string{"aaabbbccc"}, got)
}
