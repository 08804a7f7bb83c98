package main

import (
	"fmt"
	"os"

	"github.com/alexflint/go-arg"
)

// Args defines the command-line arguments. Without a subcommand balsub
// evaluates the demonstration inputs.
type Args struct {
	Run     *RunCmd     `arg:"subcommand:run" help:"Evaluate strings and print the longest balanced substring length"`
	History *HistoryCmd `arg:"subcommand:history" help:"List stored results"`

	Config  string `arg:"-c,--config" help:"Config file (default: ./balsub.toml if present)"`
	Verbose bool   `arg:"-v,--verbose" help:"Enable debug logging"`
}

// RunCmd contains the arguments for the 'run' subcommand
type RunCmd struct {
	Inputs    []string `arg:"positional" help:"Strings to evaluate"`
	Sources   []string `arg:"-s,--source,separate" help:"Input sources: '-' for stdin, file paths, text:<s>, glob:<pattern>, clipboard (repeatable)"`
	Format    string   `arg:"-f,--format" help:"Output format: plain, table, explain, json"`
	Alphabet  string   `arg:"--alphabet" help:"Characters that may balance: lowercase or ascii"`
	MaxSubset *int     `arg:"--max-subset" help:"Largest letter subset to try (0 = no limit)"`
	Record    bool     `arg:"--record" help:"Store results in the history database"`
	Copy      bool     `arg:"--copy" help:"Also copy the output to the clipboard"`
}

// HistoryCmd contains the arguments for the 'history' subcommand
type HistoryCmd struct {
	ID    int64  `arg:"positional" help:"Show a single run"`
	Input string `arg:"-i,--input" help:"Show the newest run of this string"`
	Limit int    `arg:"-n,--limit" default:"20" help:"Number of runs to list (0 = all)"`
}

func (Args) Description() string {
	return "balsub finds the longest balanced substring: a run of one character, or a region where a set of distinct letters all occur equally often."
}

func main() {
	var args Args
	arg.MustParse(&args)

	app, err := InitApp(&args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// SIGINT cancels app.Shutdown; the shutdown handler then exits with 130
	if err := app.Run(app.Shutdown); err != nil {
		if app.Shutdown.Err() != nil {
			select {}
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
