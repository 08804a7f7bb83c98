// Package source resolves input specifications into the strings to evaluate.
// A spec is one of "-" (stdin), "<scheme>:<arg>", a bare scheme alias such as
// "clipboard", or a path to an existing file. Text sources yield one input per
// non-empty line; literal sources yield their body verbatim.
package source

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/bmatcuk/doublestar/v4"
)

// ErrUnknownSource is returned for specs that match no scheme and no file.
var ErrUnknownSource = errors.New("unrecognised input source")

// Loader produces the inputs of one source spec.
type Loader interface {
	Load(ctx context.Context) ([]string, error)
}

// LoaderFactory turns a raw spec into a Loader.
type LoaderFactory func(arg string) (Loader, error)

var loaderRegistry = map[string]LoaderFactory{}

// RegisterScheme installs a factory under one or more scheme names.
func RegisterScheme(factory LoaderFactory, names ...string) {
	for _, n := range names {
		loaderRegistry[strings.ToLower(n)] = factory
	}
}

// ─── Stdin ────────────────────────────────────────────────────────────────────

type StdinLoader struct {
	Reader io.Reader // defaults to os.Stdin
}

func (l *StdinLoader) Load(ctx context.Context) ([]string, error) {
	reader := l.Reader
	if reader == nil {
		reader = os.Stdin
	}
	return readLines(reader)
}

// ─── Clipboard ───────────────────────────────────────────────────────────────

type ClipboardLoader struct {
	ReadAll func() (string, error) // defaults to clipboard.ReadAll
}

func (l *ClipboardLoader) Load(ctx context.Context) ([]string, error) {
	readAll := l.ReadAll
	if readAll == nil {
		readAll = clipboard.ReadAll
	}
	text, err := readAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read clipboard: %w", err)
	}
	return readLines(strings.NewReader(text))
}

func clipboardFactory(arg string) (Loader, error) { return &ClipboardLoader{}, nil }

// ─── Literal text ────────────────────────────────────────────────────────────

// LiteralLoader yields Text as a single input, even when it is empty.
type LiteralLoader struct{ Text string }

func (l *LiteralLoader) Load(ctx context.Context) ([]string, error) {
	return []string{l.Text}, nil
}

func literalFactory(arg string) (Loader, error) {
	if i := strings.IndexRune(arg, ':'); i >= 0 {
		arg = arg[i+1:]
	}
	return &LiteralLoader{Text: arg}, nil
}

// ─── File ────────────────────────────────────────────────────────────────────

type FileLoader struct{ Path string }

func (l *FileLoader) Load(ctx context.Context) ([]string, error) {
	f, err := os.Open(l.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()
	return readLines(f)
}

func fileFactory(arg string) (Loader, error) {
	if i := strings.IndexRune(arg, ':'); i >= 0 {
		arg = arg[i+1:]
	}
	if arg == "" {
		return nil, fmt.Errorf("file source needs a path")
	}
	return &FileLoader{Path: expandHome(arg)}, nil
}

// ─── Glob ────────────────────────────────────────────────────────────────────

// GlobLoader reads every regular file matching Pattern, in lexical order.
// Patterns support "**" for recursive matching.
type GlobLoader struct{ Pattern string }

func (l *GlobLoader) Load(ctx context.Context) ([]string, error) {
	matches, err := doublestar.FilepathGlob(l.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern %q: %w", l.Pattern, err)
	}
	sort.Strings(matches)

	var inputs []string
	for _, path := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines, err := (&FileLoader{Path: path}).Load(ctx)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, lines...)
	}
	return inputs, nil
}

func globFactory(arg string) (Loader, error) {
	if i := strings.IndexRune(arg, ':'); i >= 0 {
		arg = arg[i+1:]
	}
	if arg == "" {
		return nil, fmt.Errorf("glob source needs a pattern")
	}
	return &GlobLoader{Pattern: expandHome(arg)}, nil
}

func init() {
	RegisterScheme(clipboardFactory, "clipboard", "paste")
	RegisterScheme(literalFactory, "text", "literal")
	RegisterScheme(fileFactory, "file")
	RegisterScheme(globFactory, "glob")
}

// LoadAll resolves every spec and concatenates the inputs in spec order.
func LoadAll(ctx context.Context, specs []string) ([]string, error) {
	var inputs []string
	for _, raw := range specs {
		loader, err := pickLoader(raw)
		if err != nil {
			return nil, err
		}
		got, err := loader.Load(ctx)
		if err != nil {
			return nil, fmt.Errorf("source %q: %w", raw, err)
		}
		inputs = append(inputs, got...)
	}
	return inputs, nil
}

// pickLoader decides which Loader handles one spec.
//
// Decision ladder (top-to-bottom):
//  1. "-"                       → stdin
//  2. "<scheme>:…"              → registry lookup on the part before the first ':'
//  3. bare alias ("clipboard")  → registry lookup on the whole word
//  4. existing file (~/ expanded) → file loader
//  5. none of the above         → ErrUnknownSource
func pickLoader(arg string) (Loader, error) {
	if arg == "-" {
		return &StdinLoader{}, nil
	}

	if idx := strings.IndexRune(arg, ':'); idx > 0 {
		if factory, ok := loaderRegistry[strings.ToLower(arg[:idx])]; ok {
			return factory(arg)
		}
	}

	if factory, ok := loaderRegistry[strings.ToLower(arg)]; ok {
		return factory("")
	}

	path := expandHome(arg)
	if info, err := os.Stat(path); err == nil && !info.IsDir() {
		return &FileLoader{Path: path}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownSource, arg)
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

// readLines returns the trimmed, non-empty lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
