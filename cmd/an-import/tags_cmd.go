package main

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/surj/an-import/internal/config"
	"github.com/surj/an-import/internal/osdi"
	"github.com/surj/an-import/internal/tags"
)

type tagsOptions struct {
	profile      string
	group        string
	profilesFile string
	mappingFile  string
	check        bool
}

func newTagsCmd(cfg *config.Config) *cobra.Command {
	var opts tagsOptions

	cmd := &cobra.Command{
		Use:   "tags [profile]",
		Short: "List the tags Action Network already knows",
		Long: `List the tags visible to the profile's API token.

Action Network only lists tags the group has used so far. With --check,
mapping targets for the chapter that are not yet listed are printed too.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.profile = cfg.Files.DefaultProfile
			if len(args) == 1 {
				opts.profile = args[0]
			}
			return runTags(cmd.Context(), cfg, opts, cmd.OutOrStdout())
		},
	}

	f := cmd.Flags()
	f.SetNormalizeFunc(underscoreFlags)
	f.StringVarP(&opts.group, "group", "g", "", "Mapping column to check (default: profile)")
	f.StringVar(&opts.profilesFile, "profiles", cfg.Files.ProfilesFile, "Profiles file with API tokens")
	f.StringVarP(&opts.mappingFile, "mapping", "m", cfg.Files.MappingFile, "Tag mapping CSV")
	f.BoolVar(&opts.check, "check", false, "Report mapping targets missing from Action Network")

	return cmd
}

func runTags(ctx context.Context, cfg *config.Config, opts tagsOptions, out io.Writer) error {
	profiles, err := config.LoadProfiles(opts.profilesFile)
	if err != nil {
		return err
	}
	token, err := profiles.Token(opts.profile)
	if err != nil {
		return err
	}

	client, err := osdi.New(cfg.API.BaseURL, token, osdi.WithTimeout(cfg.API.Timeout))
	if err != nil {
		return withCode(exitConfig, err)
	}
	names, err := client.ListTags(ctx)
	if err != nil {
		return withCode(exitExternal, err)
	}

	sort.Strings(names)
	for _, n := range names {
		fmt.Fprintln(out, n)
	}

	if !opts.check {
		return nil
	}

	chapter := opts.group
	if chapter == "" {
		chapter = opts.profile
	}
	table, err := tags.LoadFile(opts.mappingFile, chapter)
	if err != nil {
		return err
	}

	missing := missingTargets(table, names)
	if len(missing) == 0 {
		fmt.Fprintln(out, "\nall mapping targets exist")
		return nil
	}
	fmt.Fprintf(out, "\nmapping targets not yet in Action Network (%d):\n", len(missing))
	for _, t := range missing {
		fmt.Fprintln(out, "  "+t)
	}
	return nil
}

// missingTargets lists the distinct tags the table can add that are not in
// remote, sorted.
func missingTargets(table *tags.Table, remote []string) []string {
	known := make(map[string]bool, len(remote))
	for _, n := range remote {
		known[n] = true
	}

	seen := make(map[string]bool)
	var missing []string
	for _, e := range table.Entries() {
		for _, t := range e.Contributes() {
			if t == "" || known[t] || seen[t] {
				continue
			}
			seen[t] = true
			missing = append(missing, t)
		}
	}
	sort.Strings(missing)
	return missing
}
