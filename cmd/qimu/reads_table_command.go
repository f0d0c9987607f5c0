package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"qimu/internal/reads"
)

func newReadsTableCommand(ctx *commandContext) *cobra.Command {
	var (
		extensions   []string
		forwardTags  []string
		reverseTags  []string
		separators   []string
		stripStrings []string
		singleEnd    bool
		formatName   string
		tableSep     string
		colID        string
		colForward   string
		colReverse   string
		absolute     bool
	)

	cmd := &cobra.Command{
		Use:   "reads-table PATH...",
		Short: "Generate a sample table from directories of sequencing reads",
		Long: `Scan the given directories for sequencing read files and print a table
mapping sample IDs to read file paths.

Forward and reverse reads are paired by filename tags; sample IDs are
derived from the filenames and shortened to their first unique token.
Flag defaults come from the configuration file.`,
		Example: `  # Paired-end reads with stock tags
  qimu reads-table /data/run42/

  # Multiple directories with custom tags
  qimu reads-table dir1/ dir2/ -1 _fwd_ -2 _rev_

  # Force single-end mode
  qimu reads-table /data/run42/ --single-end

  # QIIME2 manifest with absolute paths
  qimu reads-table /data/run42/ --format manifest`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			// Flags left at their defaults fall back to configured values.
			flags := cmd.Flags()
			if !flags.Changed("extensions") {
				extensions = cfg.Scan.Extensions
			}
			if !flags.Changed("tag-for") {
				forwardTags = cfg.Scan.ForwardTags
			}
			if !flags.Changed("tag-rev") {
				reverseTags = cfg.Scan.ReverseTags
			}
			if !flags.Changed("separators") {
				separators = cfg.Scan.Separators
			}
			if !flags.Changed("strip") {
				stripStrings = cfg.Scan.StripStrings
			}
			if !flags.Changed("tab-sep") {
				tableSep = cfg.Output.Separator
			}
			if !flags.Changed("col-id") {
				colID = cfg.Output.IDColumn
			}
			if !flags.Changed("col-for") {
				colForward = cfg.Output.ForwardColumn
			}
			if !flags.Changed("col-rev") {
				colReverse = cfg.Output.ReverseColumn
			}
			if !flags.Changed("abs") {
				absolute = cfg.Output.AbsolutePaths
			}

			// Resolve the preset before scanning so an unknown name fails
			// without touching the filesystem.
			opts := reads.TableOptions{
				Separator:     tableSep,
				IDColumn:      colID,
				ForwardColumn: colForward,
				ReverseColumn: colReverse,
				AbsolutePaths: absolute,
			}
			if formatName != "" {
				opts, err = reads.PresetTableOptions(formatName)
				if err != nil {
					return err
				}
			}

			logger.Debug("scanning directories",
				"paths", args,
				"extensions", extensions,
				"forward_tags", forwardTags,
				"reverse_tags", reverseTags,
				"separators", separators,
				"strip_strings", stripStrings,
				"single_end", singleEnd,
			)

			run, err := reads.BuildRun(args, reads.BuildOptions{
				Extensions:     extensions,
				ForwardTags:    forwardTags,
				ReverseTags:    reverseTags,
				Separators:     separators,
				StripStrings:   stripStrings,
				ForceSingleEnd: singleEnd,
			})
			if err != nil {
				return err
			}

			if run.Len() == 0 {
				printWarning(cmd.ErrOrStderr(), "no read files found")
				return nil
			}

			readType := reads.SingleEnd
			if run.PairedEnd() {
				readType = reads.PairedEnd
			}
			logger.Info("samples discovered", "count", run.Len(), "read_type", readType.String())

			fmt.Fprintln(cmd.OutOrStdout(), run.Table(opts))
			return nil
		},
	}

	defaults := reads.DefaultTableOptions()
	flags := cmd.Flags()
	flags.StringArrayVarP(&extensions, "extensions", "e", []string{".fastq", ".fastq.gz"}, "File extensions to include (repeatable)")
	flags.StringArrayVarP(&forwardTags, "tag-for", "1", []string{"_R1_", "_1."}, "Tags indicating forward reads (repeatable)")
	flags.StringArrayVarP(&reverseTags, "tag-rev", "2", []string{"_R2_", "_2."}, "Tags indicating reverse reads (repeatable)")
	flags.StringArrayVarP(&separators, "separators", "s", []string{"_"}, "Characters used to split sample names (repeatable)")
	flags.StringArrayVar(&stripStrings, "strip", nil, "Strings to remove from sample IDs (repeatable)")
	flags.BoolVar(&singleEnd, "single-end", false, "Force loading reads as single-end (default: autodetect)")
	flags.StringVarP(&formatName, "format", "f", "", "Predefined output format (manifest, ampliseq, mag)")
	flags.StringVar(&tableSep, "tab-sep", defaults.Separator, "Column separator")
	flags.StringVar(&colID, "col-id", defaults.IDColumn, "Column name for sample ID")
	flags.StringVar(&colForward, "col-for", defaults.ForwardColumn, "Column name for forward reads")
	flags.StringVar(&colReverse, "col-rev", defaults.ReverseColumn, "Column name for reverse reads")
	flags.BoolVar(&absolute, "abs", false, "Print absolute paths (default: relative)")

	return cmd
}
