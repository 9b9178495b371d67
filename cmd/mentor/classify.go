package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-mentor/internal/classify"
	"github.com/jonathan/career-mentor/internal/render"
)

var classifyCommand = &cobra.Command{
	Use:   "classify <text>",
	Short: "Classify a message without starting a session",
	Long:  "Runs the intent classifier on the given text and prints whether it reads as a skill statement, a domain mention, or plain conversation.",
	Args:  cobra.MinimumNArgs(1),
	Run:   runClassifyCmd,
}

func init() {
	rootCmd.AddCommand(classifyCommand)
}

func runClassifyCmd(_ *cobra.Command, args []string) {
	text := strings.Join(args, " ")
	result := classify.Classify(text)

	printer := render.NewPrinter(os.Stdout)
	printer.PrintClassification(result.Kind.String(), result.Domains, result.Domain)
}
