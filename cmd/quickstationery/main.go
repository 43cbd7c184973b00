package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "quickstationery",
	Short: "QuickStationery — stationery shop CLI",
	Long:  "QuickStationery is a small stationery storefront. Use this CLI to serve it and manage its record store.",
}

func init() {
	// Server
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(routeListCmd)

	// Record store
	rootCmd.AddCommand(storeResetCmd)
	rootCmd.AddCommand(storePathCmd)
	rootCmd.AddCommand(seedCmd)

	// Catalog
	rootCmd.AddCommand(catalogListCmd)
}
