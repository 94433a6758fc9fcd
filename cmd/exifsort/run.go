package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"exifsort/internal/config"
	"exifsort/internal/logging"
	"exifsort/internal/organizer"
	"exifsort/internal/preflight"
	"exifsort/internal/services"
)

type runOptions struct {
	inDir          string
	outDir         string
	configPath     string
	logLevel       string
	fullScan       bool
	workers        int
	workersChanged bool
}

func runOrganize(cmd *cobra.Command, opts runOptions) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.fullScan {
		cfg.Scan.FullScan = true
	}
	if opts.workersChanged {
		cfg.Scan.Workers = opts.workers
	}
	if level := strings.TrimSpace(opts.logLevel); level != "" {
		cfg.Log.Level = strings.ToLower(level)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	inDir, err := config.ExpandPath(opts.inDir)
	if err != nil {
		return fmt.Errorf("in-dir: %w", err)
	}
	outDir, err := config.ExpandPath(opts.outDir)
	if err != nil {
		return fmt.Errorf("out-dir: %w", err)
	}

	logger, err := buildLogger(cfg)
	if err != nil {
		return err
	}

	stdout := cmd.OutOrStdout()
	colorize := shouldColorize(stdout)

	for _, result := range preflight.Run(inDir, outDir) {
		kind := statusOK
		if !result.Passed {
			kind = statusWarn
		}
		fmt.Fprintln(stdout, renderStatusLine(result.Name, kind, result.Detail, colorize))
	}

	ctx := services.WithRunID(cmd.Context(), services.NewRunID())

	reporter := newProgressReporter(cmd.ErrOrStderr(), logger)
	org := organizer.New(cfg, logger, inDir, outDir)
	org.SetProgress(reporter.observe)

	summary, err := org.Run(ctx)
	reporter.finish()
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, renderSummary(summary))
	printProblems(cmd.ErrOrStderr(), summary)
	return nil
}

func buildLogger(cfg *config.Config) (*slog.Logger, error) {
	paths := []string{"stderr"}
	if cfg.Paths.LogDir != "" {
		paths = append(paths, filepath.Join(cfg.Paths.LogDir, "exifsort.log"))
	}
	return logging.New(logging.Options{
		Level:       cfg.Log.Level,
		Format:      cfg.Log.Format,
		OutputPaths: paths,
	})
}
