package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/hayeah/goo"
	"github.com/olekukonko/tablewriter"

	"github.com/hayeah/balsub/balance"
	"github.com/hayeah/balsub/internal/history"
	"github.com/hayeah/balsub/internal/report"
	"github.com/hayeah/balsub/internal/source"
)

// demoInputs are evaluated when no inputs are given anywhere.
var demoInputs = []string{"aa", "abbac", "aabcc", "aba", "abcbc", "aaabbbccc"}

// Above this many distinct letters an unbounded search tries over a million
// subsets.
const expensiveLetterCount = 20

type App struct {
	Args      *Args
	Logger    *slog.Logger
	Shutdown  *goo.ShutdownContext
	Settings  *Settings
	Finder    *balance.Finder
	OpenStore StoreOpener
	Stdout    io.Writer
	Clipboard ClipboardWriter
}

func (app *App) Run(ctx context.Context) error {
	switch {
	case app.Args.History != nil:
		return app.handleHistoryCommand(ctx, app.Args.History)
	default:
		return app.handleRunCommand(ctx)
	}
}

func (app *App) collectInputs(ctx context.Context) ([]string, error) {
	inputs := append([]string(nil), app.Settings.Inputs...)

	if len(app.Settings.Sources) > 0 {
		loaded, err := source.LoadAll(ctx, app.Settings.Sources)
		if err != nil {
			return nil, fmt.Errorf("failed to load inputs: %w", err)
		}
		inputs = append(inputs, loaded...)
	}

	if len(inputs) == 0 && len(app.Settings.Sources) == 0 {
		app.Logger.Debug("no inputs given, using demonstration inputs")
		inputs = demoInputs
	}
	return inputs, nil
}

func (app *App) handleRunCommand(ctx context.Context) error {
	inputs, err := app.collectInputs(ctx)
	if err != nil {
		return err
	}

	entries := make([]report.Entry, 0, len(inputs))
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return err
		}

		letters := app.Finder.Letters(input)
		if _, hi := app.Finder.SubsetSizes(len(letters)); hi > expensiveLetterCount {
			app.Logger.Warn("input has many distinct letters, search may be slow; consider --max-subset",
				"letters", len(letters), "length", len(input))
		}

		result := app.Finder.Find(input)
		app.Logger.Debug("evaluated input",
			"input", input,
			"length", result.Length,
			"start", result.Start,
			"end", result.End,
			"letters", result.Letters,
		)
		entries = append(entries, report.Entry{Input: input, Result: result})
	}

	if app.Settings.Record {
		// an interrupt waits for the write to finish before exiting
		err := app.Shutdown.BlockExit(func() error {
			return app.record(ctx, entries)
		})
		if err != nil {
			return err
		}
	}

	var copied bytes.Buffer
	out := app.Stdout
	if app.Settings.Copy {
		out = io.MultiWriter(app.Stdout, &copied)
	}

	if err := report.NewWriter(app.Settings.Format, out).Write(entries); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if app.Settings.Copy {
		if err := app.Clipboard(copied.String()); err != nil {
			return fmt.Errorf("failed to copy output to clipboard: %w", err)
		}
		app.Logger.Info("copied output to clipboard", "bytes", copied.Len())
	}
	return nil
}

func (app *App) record(ctx context.Context, entries []report.Entry) error {
	store, err := app.OpenStore()
	if err != nil {
		return err
	}
	defer store.Close()

	alphabet := app.Finder.Alphabet().Name()
	for _, e := range entries {
		id, err := store.Record(ctx, e.Input, alphabet, e.Result)
		if err != nil {
			return err
		}
		app.Logger.Debug("recorded run", "id", id, "input", e.Input)
	}
	return nil
}

func (app *App) handleHistoryCommand(ctx context.Context, cmd *HistoryCmd) error {
	store, err := app.OpenStore()
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case cmd.ID != 0:
		run, err := store.Get(ctx, cmd.ID)
		if err != nil {
			return err
		}
		return app.showRun(run)
	case cmd.Input != "":
		run, err := store.Latest(ctx, cmd.Input, app.Settings.Alphabet.Name())
		if err != nil {
			return err
		}
		return app.showRun(run)
	}

	runs, err := store.List(ctx, cmd.Limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(app.Stdout, "No runs recorded.")
		return nil
	}
	writeRuns(app.Stdout, runs)
	return nil
}

func (app *App) showRun(run *history.Run) error {
	fmt.Fprintf(app.Stdout, "Run %d (%s, %s)\n", run.ID, run.Alphabet, run.CreatedAt.Format("2006-01-02 15:04:05"))
	return report.NewWriter(report.Explain, app.Stdout).Write([]report.Entry{
		{Input: run.Input, Result: run.Result()},
	})
}

func writeRuns(w io.Writer, runs []history.Run) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Input", "Alphabet", "Length", "Letters", "Created"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, run := range runs {
		table.Append([]string{
			strconv.FormatInt(run.ID, 10),
			run.Input,
			run.Alphabet,
			strconv.Itoa(run.Length),
			run.Letters,
			run.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}
	table.Render()
}
