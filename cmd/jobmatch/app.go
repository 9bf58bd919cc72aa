package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/job-matcher/internal/backend"
	"github.com/jonathan/job-matcher/internal/config"
	"github.com/jonathan/job-matcher/internal/observability"
	"github.com/jonathan/job-matcher/internal/types"
)

// Output formats.
const (
	formatJSON = "json"
	formatText = "text"
)

// app holds the state shared by every command: persistent flags and the
// configuration, backend flags and logger built from them.
type app struct {
	configPath string
	verbose    bool
	format     string
	disable    []string

	cfg    config.Config
	flags  *backend.Flags
	logger *slog.Logger
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.format != formatJSON && a.format != formatText {
		return fmt.Errorf("invalid --format %q: must be json or text", a.format)
	}

	cfg := config.Defaults()
	if a.configPath != "" {
		fileCfg, err := config.LoadConfig(a.configPath)
		if err != nil {
			return err
		}
		if err := fileCfg.Validate(); err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if a.verbose {
		cfg.Verbose = true
	}

	flags, err := cfg.Flags()
	if err != nil {
		return fmt.Errorf("invalid backend settings: %w", err)
	}
	for _, name := range a.disable {
		if err := flags.Set(backend.Name(name), backend.Unavailable); err != nil {
			return fmt.Errorf("invalid --disable value: %w", err)
		}
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}

	a.cfg = cfg
	a.flags = flags
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	return nil
}

// writeJSON writes v as indented JSON to path, or to w when path is empty.
func writeJSON(w io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err := w.Write(data)
		return err
	}

	// Ensure output directory exists
	outputDir := filepath.Dir(path)
	if outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", path, err)
	}
	return nil
}

// printer returns a text-mode printer when --format text is set, nil otherwise.
func (a *app) printer(w io.Writer) *observability.Printer {
	if a.format != formatText {
		return nil
	}
	return observability.NewPrinter(w)
}

// writeReport writes report as JSON to path, or prints it to w in text mode.
func (a *app) writeReport(w io.Writer, path string, report *types.MatchReport, jobs []types.JobPosting) error {
	if p := a.printer(w); p != nil && path == "" {
		p.PrintMatchReport(report, jobs)
		return nil
	}
	return writeJSON(w, path, report)
}

// languageFlag parses an optional --lang value. Empty means detect.
func languageFlag(s string) (*types.Language, error) {
	if s == "" {
		return nil, nil
	}
	lang, err := types.ParseLanguage(s)
	if err != nil {
		return nil, fmt.Errorf("invalid --lang: %w", err)
	}
	return &lang, nil
}
