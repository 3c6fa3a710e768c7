/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/cristianoliveira/holiday-explorer/internal/holiday"
	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

// NewCountriesCmd creates the countries command.
func NewCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries [QUERY]",
		Short: "List selectable countries",
		Long: `List the country codes the explorer offers.

With QUERY, only countries whose code or name fuzzy-match it are listed, best match first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			countries := holiday.Countries
			if len(args) == 1 {
				countries = matchCountries(args[0])
			}
			if len(countries) == 0 {
				return fmt.Errorf("no country matches %q", args[0])
			}
			for _, c := range countries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", c.Code, c.Name)
			}
			return nil
		},
	}
}

func matchCountries(query string) []holiday.Country {
	choices := make([]string, len(holiday.Countries))
	for i, c := range holiday.Countries {
		choices[i] = strings.ToLower(c.Code + " " + c.Name)
	}
	matches := fuzzy.Find(strings.ToLower(strings.TrimSpace(query)), choices)
	out := make([]holiday.Country, 0, len(matches))
	for _, m := range matches {
		out = append(out, holiday.Countries[m.Index])
	}
	return out
}
