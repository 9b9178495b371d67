// Package main provides the entry point for the CareerMate mentor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mentor",
	Short: "CareerMate conversational career mentor",
	Long:  "CareerMate is an interactive career mentor: it classifies what you type, suggests roles for your skills or chosen field, and generates study roadmaps and live job listings for a selected role.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
