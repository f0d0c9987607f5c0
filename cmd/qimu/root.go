package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool
	var debugFlag bool
	var logFileFlag string

	ctx := newCommandContext(&configFlag, &verboseFlag, &debugFlag, &logFileFlag)

	rootCmd := &cobra.Command{
		Use:           "qimu",
		Short:         "Command-line toolset for bioinformatics",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Enable verbose output (log level info)")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug output (log level debug)")
	rootCmd.PersistentFlags().StringVar(&logFileFlag, "log", "", "Save the log to FILE in addition to stderr")

	rootCmd.AddCommand(newReadsTableCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
