// Package main is the operator CLI for the tax site: quote a questionnaire,
// inspect uploaded documents and list locally captured leads.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taxctl",
	Short: "Operator tools for the tax preparation site",
	Long:  "taxctl prices questionnaire answers with the same engine as the site, lists uploaded lead documents and shows leads captured without a CRM.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
