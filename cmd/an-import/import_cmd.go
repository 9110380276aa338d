package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/surj/an-import/internal/config"
	"github.com/surj/an-import/internal/core"
	"github.com/surj/an-import/internal/importer"
	"github.com/surj/an-import/internal/logging"
	"github.com/surj/an-import/internal/osdi"
	"github.com/surj/an-import/internal/report"
	"github.com/surj/an-import/internal/tags"
)

func newImportCmd(cfg *config.Config) *cobra.Command {
	var (
		opts       config.Options
		end, count int
	)

	cmd := &cobra.Command{
		Use:   "import [profile] <input.csv>",
		Short: "Import a NationBuilder people export",
		Long: `Import a NationBuilder people export (CSV) into Action Network.

The profile selects the API token and, unless --group is given, the
column of the tag mapping file whose tags are added for this chapter.`,
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Profile = cfg.Files.DefaultProfile
			opts.InputFile = args[len(args)-1]
			if len(args) == 2 {
				opts.Profile = args[0]
			}
			if cmd.Flags().Changed("end") {
				opts.End = &end
			}
			if cmd.Flags().Changed("count") {
				opts.Count = &count
			}
			if err := opts.Validate(); err != nil {
				return err
			}
			return runImport(cmd.Context(), cfg, opts)
		},
	}

	f := cmd.Flags()
	f.SetNormalizeFunc(underscoreFlags)
	f.StringVarP(&opts.Group, "group", "g", "", "Action Network group whose mapping column to use (default: profile)")
	f.IntVarP(&opts.Start, "start", "s", 1, "First row to process (starting at 1)")
	f.IntVarP(&end, "end", "e", 0, "Last row to process")
	f.IntVarP(&count, "count", "c", 0, "Number of rows to process")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log request and response bodies")
	f.BoolVarP(&opts.IncludeUnsubscribed, "unsubscribed", "u", false, "Include unsubscribed people")
	f.BoolVarP(&opts.Force, "force", "f", false, "Force subscribe of existing people")
	f.BoolVarP(&opts.DryRun, "dry-run", "d", false, "Process the export but send nothing")
	f.StringVarP(&opts.MappingFile, "mapping", "m", cfg.Files.MappingFile, "Tag mapping CSV")
	f.StringVar(&opts.ProfilesFile, "profiles", cfg.Files.ProfilesFile, "Profiles file with API tokens")
	f.StringVar(&opts.ReportPath, "report", "", "Write an HTML run report to this path")
	f.BoolVar(&opts.NormalizeStates, "normalize-states", false, "Convert US state names to 2-letter codes")

	return cmd
}

func runImport(ctx context.Context, cfg *config.Config, opts config.Options) error {
	ctx = logging.WithRun(ctx, logging.NewRunID())
	logger := logging.FromContext(ctx)

	profiles, err := config.LoadProfiles(opts.ProfilesFile)
	if err != nil {
		return err
	}
	token, err := profiles.Token(opts.Profile)
	if err != nil {
		return err
	}
	logger.Info("API token found", "profile", opts.Profile)

	table, err := tags.LoadFile(opts.MappingFile, opts.Chapter())
	if err != nil {
		return err
	}
	logger.Info("tag mapping loaded",
		"file", opts.MappingFile,
		"chapter", table.Chapter(),
		"entries", table.Len(),
		"duplicates", len(table.Duplicates()),
	)

	var client importer.Client
	if !opts.DryRun {
		c, err := osdi.New(cfg.API.BaseURL, token,
			osdi.WithTimeout(cfg.API.Timeout),
			osdi.WithLogger(logger),
		)
		if err != nil {
			return withCode(exitConfig, err)
		}
		client = c
	}

	in, err := os.Open(opts.InputFile)
	if err != nil {
		return core.NewConfigurationError(opts.InputFile, "cannot open input", err)
	}
	defer in.Close()

	resolver := tags.NewResolver(table, tags.NewWarnedSet(), logger)
	driver := importer.NewDriver(opts, client, resolver, logger)

	attrs := []any{"input", opts.InputFile, "start", opts.Start, "dry_run", opts.DryRun}
	if end, ok := opts.EndIndex(); ok {
		attrs = append(attrs, "end", end)
	}
	logger.Info("import started", attrs...)

	sum, runErr := driver.Run(ctx, in)
	sum.Log(logger)

	if opts.ReportPath != "" {
		if err := writeReport(ctx, opts.ReportPath, sum); err != nil {
			logger.Error("report not written", "path", opts.ReportPath, "error", err)
			if runErr == nil {
				return err
			}
		} else {
			logger.Info("report written", "path", opts.ReportPath)
		}
	}

	return runErr
}

func writeReport(ctx context.Context, path string, sum importer.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	if err := report.Render(ctx, f, sum); err != nil {
		_ = f.Close()
		return fmt.Errorf("render report: %w", err)
	}
	return f.Close()
}
