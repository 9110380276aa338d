package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/surj/an-import/internal/config"
	"github.com/surj/an-import/internal/core"
)

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "an-import",
		Short:         "Import NationBuilder people into Action Network",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withCode(exitUsage, err)
	})

	cmd.AddCommand(newImportCmd(cfg))
	cmd.AddCommand(newTagsCmd(cfg))
	cmd.AddCommand(newMappingCmd(cfg))
	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, cfg *config.Config, args []string) int {
	cmd := newRootCmd(cfg)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	if core.IsUserFacing(err) {
		fmt.Fprintln(os.Stderr, core.FormatUserError(err))
	}
	fmt.Fprintln(os.Stderr, "error:", err.Error())
	return exitCode(err)
}

// usageArgs marks positional argument errors as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return withCode(exitUsage, check(cmd, args))
	}
}

// underscoreFlags accepts --dry_run style spellings for --dry-run.
func underscoreFlags(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}
