/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/cristianoliveira/holiday-explorer/internal/holiday"
	"github.com/spf13/cobra"
)

// NewYearsCmd creates the years command.
func NewYearsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List selectable years",
		Long:  `List the years the explorer offers, oldest first.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, y := range holiday.Years() {
				fmt.Fprintln(cmd.OutOrStdout(), y)
			}
			return nil
		},
	}
}
