// Package report renders evaluation results. All output goes to an injected
// writer, so every format is testable without a terminal.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"

	"github.com/hayeah/balsub/balance"
)

// Entry pairs an input with the result computed for it.
type Entry struct {
	Input  string         `json:"input"`
	Result balance.Result `json:"result"`
}

type Format string

const (
	// Plain prints one length per line, in input order.
	Plain   Format = "plain"
	Table   Format = "table"
	Explain Format = "explain"
	// JSON prints one object per line.
	JSON Format = "json"
)

var formats = []Format{Plain, Table, Explain, JSON}

func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Plain, nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown format %q, expected one of plain, table, explain, json", s)
}

// Writer renders entries in one format.
type Writer struct {
	Format Format
	Out    io.Writer
}

func NewWriter(format Format, out io.Writer) *Writer {
	return &Writer{Format: format, Out: out}
}

func (w *Writer) Write(entries []Entry) error {
	switch w.Format {
	case Plain, "":
		return writePlain(w.Out, entries)
	case Table:
		return writeTable(w.Out, entries)
	case Explain:
		return writeExplain(w.Out, entries)
	case JSON:
		return writeJSON(w.Out, entries)
	default:
		return fmt.Errorf("unknown format %q", w.Format)
	}
}

func writePlain(out io.Writer, entries []Entry) error {
	for _, e := range entries {
		if _, err := fmt.Fprintln(out, e.Result.Length); err != nil {
			return err
		}
	}
	return nil
}

func writeJSON(out io.Writer, entries []Entry) error {
	enc := json.NewEncoder(out)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(out io.Writer, entries []Entry) error {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Input", "Length", "Span", "Letters", "Substring"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, e := range entries {
		table.Append([]string{
			displayInput(e.Input),
			strconv.Itoa(e.Result.Length),
			formatSpan(e.Result),
			e.Result.Letters,
			e.Result.Substring(e.Input),
		})
	}
	table.Render()
	return nil
}

// writeExplain prints each input with the balanced substring bracketed and
// highlighted.
func writeExplain(out io.Writer, entries []Entry) error {
	renderer := lipgloss.NewRenderer(out)
	highlight := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	dim := renderer.NewStyle().Faint(true)

	for _, e := range entries {
		r := e.Result
		var line string
		if r.Length == 0 {
			line = dim.Render(displayInput(e.Input))
		} else {
			line = e.Input[:r.Start] +
				highlight.Render("["+r.Substring(e.Input)+"]") +
				e.Input[r.End:]
		}
		summary := dim.Render(fmt.Sprintf("length=%d span=%s letters=%s", r.Length, formatSpan(r), r.Letters))
		if _, err := fmt.Fprintf(out, "%s  %s\n", line, summary); err != nil {
			return err
		}
	}
	return nil
}

func formatSpan(r balance.Result) string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}

func displayInput(s string) string {
	if s == "" {
		return `""`
	}
	return s
}
