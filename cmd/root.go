package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "manaview",
	Short: "Terminal viewer for trading card collections",
	Long: `Manaview is a command-line viewer for trading card game collections.
It renders a card's metadata and artwork in the terminal, with mana costs
shown as colored symbols and card art as ANSI half-block graphics.`,
}

func init() {
	RootCmd.AddCommand(validateCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
