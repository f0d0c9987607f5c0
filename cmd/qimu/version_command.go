package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is the qimu release version. Overridden at build time via
// -ldflags "-X main.Version=...".
var Version = "0.3.0"

func newVersionCommand() *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !full {
				fmt.Fprintln(out, Version)
				return nil
			}

			fmt.Fprintf(out, "qimu %s\n", Version)
			info, ok := debug.ReadBuildInfo()
			if !ok {
				return nil
			}
			fmt.Fprintf(out, "go %s\n", info.GoVersion)
			for _, dep := range info.Deps {
				fmt.Fprintf(out, "%s %s\n", dep.Path, dep.Version)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Include Go and dependency versions")
	return cmd
}
