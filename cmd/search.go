/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/cristianoliveira/holiday-explorer/internal/client"
	"github.com/cristianoliveira/holiday-explorer/internal/config"
	"github.com/cristianoliveira/holiday-explorer/internal/explorer"
	"github.com/cristianoliveira/holiday-explorer/internal/format"
	"github.com/cristianoliveira/holiday-explorer/internal/holiday"
	"github.com/cristianoliveira/holiday-explorer/internal/logging"
	"github.com/cristianoliveira/holiday-explorer/internal/render"
	"github.com/spf13/cobra"
)

const searchCommandLong = `Search the holidays of one country and year and print them.

Country and year may be given as flags or as positional arguments.
Unset values fall back to default_country and default_year from the configuration.

USAGE:
    holiday-explorer search [COUNTRY] [YEAR] [OPTIONS]

OPTIONS:
    --country <code>     ISO country code, e.g. US
    --year <year>        Year, e.g. 2024
    --format <format>    Output format: text (default), html

EXIT STATUS:
    0 when holidays or an empty result are shown, 1 when the search fails.`

// NewSearchCmd creates the search command with explicit dependencies.
func NewSearchCmd(newFetcher func() client.Fetcher) *cobra.Command {
	if newFetcher == nil {
		panic("NewSearchCmd: fetcher dependency cannot be nil")
	}

	var country string
	var year string
	var outputFormat string

	searchCmd := &cobra.Command{
		Use:   "search [COUNTRY] [YEAR]",
		Short: "Search holidays for a country and year",
		Long:  searchCommandLong,
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			defCountry, defYear := defaultCriteria()
			if !cmd.Flags().Changed("country") {
				country = defCountry
			}
			if !cmd.Flags().Changed("year") {
				year = defYear
			}
			if len(args) > 0 {
				country = args[0]
			}
			if len(args) > 1 {
				year = args[1]
			}
			if !cmd.Flags().Changed("format") {
				outputFormat = config.Get("output_format", string(format.FormatterTypeText))
			}
			if err := validateFormat(outputFormat); err != nil {
				return err
			}

			view := format.NewView(format.FormatterType(outputFormat), cmd.OutOrStdout())
			orch := explorer.New(view, newFetcher(),
				explorer.WithLogger(logging.GetGlobal()),
				explorer.WithRenderer(render.NewRenderer(configuredStagger())))

			state := orch.Search(cmd.Context(), holiday.Criteria{Country: country, Year: year})
			if err := view.Flush(); err != nil {
				return fmt.Errorf("failed to write results: %w", err)
			}
			if state == explorer.ErrorShown {
				return errSearchFailed
			}
			return nil
		},
	}

	searchCmd.Flags().StringVar(&country, "country", "", "ISO country code, e.g. US")
	searchCmd.Flags().StringVar(&year, "year", "", "Year, e.g. 2024")
	searchCmd.Flags().StringVar(&outputFormat, "format", "text", "Output format: text (default), html")

	return searchCmd
}

func validateFormat(f string) error {
	switch format.FormatterType(f) {
	case format.FormatterTypeText, format.FormatterTypeHTML:
		return nil
	}
	return fmt.Errorf("invalid format: %s (must be text or html)", f)
}
