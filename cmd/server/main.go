// Package main is the entry point for the map generator service and tools
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/dominions-mapgen/cmd/server/client"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "mapgen",
	Short: "Dominions scenario map generator",
	Long: `mapgen turns a selection of factions, commanders and units into a
Dominions .map file. It serves the generator over HTTP and gRPC and manages
the nation and unit catalog the generator validates against.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file read before the environment")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
