/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/cristianoliveira/holiday-explorer/internal/logging"
	"github.com/cristianoliveira/holiday-explorer/internal/version"
	"github.com/spf13/cobra"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Show the current version of holiday-explorer, and the log file when file logging is on.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "holiday-explorer version %s\n", version.String())
			if path := logging.CurrentLogFile(); path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "log file: %s\n", path)
			}
			return nil
		},
	}
}
