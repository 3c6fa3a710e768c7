/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/holiday-explorer/internal/client"
	"github.com/cristianoliveira/holiday-explorer/internal/logging"
	"github.com/cristianoliveira/holiday-explorer/internal/tui/state"
	"github.com/spf13/cobra"
)

// runProgram runs the interactive program on the terminal.
func runProgram(m tea.Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// NewTUICmd creates the interactive explorer command.
func NewTUICmd(newFetcher func() client.Fetcher, run func(tea.Model) error) *cobra.Command {
	if newFetcher == nil || run == nil {
		panic("NewTUICmd: dependencies cannot be nil")
	}

	return &cobra.Command{
		Use:   "tui",
		Short: "Explore holidays interactively",
		Long: `Open the interactive explorer.

Type a country code or name, pick a year with the arrow keys and press Enter.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			country, year := defaultCriteria()
			model := state.NewModel(newFetcher(),
				state.WithDefaults(country, year),
				state.WithStagger(configuredStagger()),
				state.WithLogger(logging.GetGlobal()),
				state.WithContext(cmd.Context()),
			)
			return run(model)
		},
	}
}
