package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/surj/an-import/internal/config"
	"github.com/surj/an-import/internal/tags"
)

func newMappingCmd(cfg *config.Config) *cobra.Command {
	var mappingFile string

	cmd := &cobra.Command{
		Use:   "mapping [chapter]",
		Short: "Show the tag mapping for a chapter",
		Long: `Load the tag mapping file for a chapter and print it, so the file can be
checked before a run. Old tags listed on more than one row are reported.`,
		Args: usageArgs(cobra.MaximumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			chapter := cfg.Files.DefaultProfile
			if len(args) == 1 {
				chapter = args[0]
			}

			table, err := tags.LoadFile(mappingFile, chapter)
			if err != nil {
				return err
			}
			return printMapping(cmd.OutOrStdout(), table)
		},
	}

	cmd.Flags().StringVarP(&mappingFile, "mapping", "m", cfg.Files.MappingFile, "Tag mapping CSV")
	return cmd
}

func printMapping(out io.Writer, table *tags.Table) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "OLD TAG\tKIND\tNEW TAGS\n")
	for _, e := range table.Entries() {
		target := tags.IgnoreMarker
		if !e.IsIgnored() {
			target = strings.Join(e.NewTags, ", ")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.OldTag, e.Kind, target)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d old tags for chapter %q\n", table.Len(), table.Chapter())
	if dups := table.Duplicates(); len(dups) > 0 {
		fmt.Fprintf(out, "duplicated old tags (last row wins): %s\n", strings.Join(dups, ", "))
	}
	return nil
}
