// Package cmd implements the goodfoods CLI using cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"
const logo = "🍽️"

var configPath string

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "goodfoods",
	Short: logo + " goodfoods — AI restaurant reservation assistant",
	Long:  logo + " goodfoods — a conversational restaurant-reservation assistant backed by an LLM",
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Version = version
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default ~/.goodfoods/config.json)")

	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(gatewayCmd)
	rootCmd.AddCommand(catalogCmd)
}
