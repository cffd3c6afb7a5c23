// Package main is the entry point for the character creation gRPC server and
// its command line client
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-chargen/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "rpg-chargen",
	Short: "RPG character creation gRPC server",
	Long: `rpg-chargen rolls 4d6-drop-lowest ability scores, lets players assign them,
applies a racial bonus and exports the finished character as JSON or PDF.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	serverCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
