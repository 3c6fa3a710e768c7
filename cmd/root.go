/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/cristianoliveira/holiday-explorer/internal/colors"
	"github.com/cristianoliveira/holiday-explorer/internal/config"
	"github.com/cristianoliveira/holiday-explorer/internal/logging"
	"github.com/cristianoliveira/holiday-explorer/internal/version"
	"github.com/spf13/cobra"
)

// errSearchFailed is returned when a search ends in the error state.
// The message has already been shown, so Execute does not print it again.
var errSearchFailed = errors.New("search failed")

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:           "holiday-explorer",
	Short:         "Browse public holidays by country and year.",
	Long:          `Browse public holidays by country and year.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		colors.SetDebug(config.GetBool("debug", false))
		colors.SetQuiet(config.GetBool("quiet", false))
		if err := logging.InitGlobal(); err != nil {
			colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logging.ShutdownGlobal()
	},
}

// Execute adds all child commands to the root command and runs it.
// This is called by main.main().
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := RootCmd.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, errSearchFailed) {
		colors.Error(err.Error())
	}
	return err
}

func init() {
	RootCmd.Version = version.String()

	// Hide the completion command
	RootCmd.CompletionOptions.HiddenDefaultCmd = true

	RootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		printHelpText(cmd)
	})

	tuiCmd := NewTUICmd(defaultFetcher, runProgram)
	RootCmd.RunE = tuiCmd.RunE
	RootCmd.AddCommand(
		tuiCmd,
		NewSearchCmd(defaultFetcher),
		NewCountriesCmd(),
		NewYearsCmd(),
		NewVersionCmd(),
	)
}

func printHelpText(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	if cmd != cmd.Root() {
		fmt.Fprintln(out, strings.TrimSpace(cmd.Long))
		// Commands with a hand-written usage section already list their options.
		if !strings.Contains(cmd.Long, "USAGE:") {
			fmt.Fprintf(out, "\nUSAGE:\n    %s\n", cmd.UseLine())
		}
		return
	}

	commandOrder := []string{"tui", "search", "countries", "years", "version"}

	var cmdLines []string
	for _, name := range commandOrder {
		var found *cobra.Command
		for _, c := range cmd.Commands() {
			if c.Name() == name {
				found = c
				break
			}
		}
		if found == nil {
			continue
		}
		cmdLines = append(cmdLines, fmt.Sprintf("    %-16s %s", found.Name(), found.Short))
	}

	helpText := fmt.Sprintf(`holiday-explorer %s

Browse public holidays by country and year.

USAGE:
    holiday-explorer [COMMAND] [OPTIONS]

Without a command the interactive explorer starts.

COMMANDS:
%s

OPTIONS:
    -h, --help      Show help message

Configuration is read from $XDG_CONFIG_HOME/holiday-explorer/config.toml
and %s* environment variables.
`, version.String(), strings.Join(cmdLines, "\n"), config.EnvPrefix)
	fmt.Fprint(out, helpText)
}
