package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/atotto/clipboard"
	"github.com/google/wire"
	"github.com/hayeah/goo"
	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/hayeah/balsub/balance"
	"github.com/hayeah/balsub/internal/config"
	"github.com/hayeah/balsub/internal/history"
	"github.com/hayeah/balsub/internal/report"
)

// Settings is the config file merged with command-line overrides.
type Settings struct {
	Alphabet    balance.Alphabet
	MaxSubset   int
	Format      report.Format
	Inputs      []string
	Sources     []string
	Record      bool
	Copy        bool
	HistoryPath string
}

// StoreOpener opens the history database on demand, so runs that never touch
// history never create it.
type StoreOpener func() (*history.Store, error)

// ClipboardWriter receives the rendered output when --copy is set.
type ClipboardWriter func(text string) error

func ProvideConfig(args *Args) (*config.Config, error) {
	return config.Load(args.Config)
}

func ProvideLogger(args *Args, cfg *config.Config) (*slog.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	if args.Verbose {
		level = slog.LevelDebug
	}
	return newLogger(os.Stderr, level, !term.IsTerminal(int(os.Stderr.Fd()))), nil
}

func newLogger(w io.Writer, level slog.Level, noColor bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}

func ProvideSettings(args *Args, cfg *config.Config) (*Settings, error) {
	run := args.Run
	if run == nil {
		run = &RunCmd{}
	}

	alphabetName := cfg.Alphabet
	if run.Alphabet != "" {
		alphabetName = run.Alphabet
	}
	alphabet, err := balance.AlphabetByName(alphabetName)
	if err != nil {
		return nil, err
	}

	formatName := cfg.Format
	if run.Format != "" {
		formatName = run.Format
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return nil, err
	}

	maxSubset := cfg.MaxSubset
	if run.MaxSubset != nil {
		maxSubset = *run.MaxSubset
	}
	if maxSubset < 0 {
		return nil, fmt.Errorf("max subset must not be negative, got %d", maxSubset)
	}

	s := &Settings{
		Alphabet:    alphabet,
		MaxSubset:   maxSubset,
		Format:      format,
		Inputs:      run.Inputs,
		Sources:     run.Sources,
		Record:      run.Record || cfg.History.Enabled,
		Copy:        run.Copy,
		HistoryPath: cfg.History.Path,
	}
	if len(s.Inputs) == 0 && len(s.Sources) == 0 {
		s.Inputs = cfg.Inputs
		s.Sources = cfg.Sources
	}
	return s, nil
}

func ProvideFinder(s *Settings) *balance.Finder {
	return balance.New(
		balance.WithAlphabet(s.Alphabet),
		balance.WithMaxSubset(s.MaxSubset),
	)
}

func ProvideStoreOpener(s *Settings, logger *slog.Logger) StoreOpener {
	return func() (*history.Store, error) {
		logger.Debug("opening history", "path", s.HistoryPath)
		return history.Open(s.HistoryPath, logger)
	}
}

func ProvideStdout() io.Writer { return os.Stdout }

func ProvideClipboardWriter() ClipboardWriter { return clipboard.WriteAll }

// collect all the necessary providers
var Wires = wire.NewSet(
	ProvideConfig,
	ProvideLogger,
	goo.ProvideShutdownContext,
	ProvideSettings,
	ProvideFinder,
	ProvideStoreOpener,
	ProvideStdout,
	ProvideClipboardWriter,
	wire.Struct(new(App), "*"),
)
