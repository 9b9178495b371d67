package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/career-mentor/internal/render"
	"github.com/jonathan/career-mentor/internal/taxonomy"
)

var rolesCommand = &cobra.Command{
	Use:   "roles <domain>",
	Short: "Print the role catalog for a domain",
	Long:  "Prints the fallback role list for a career domain (data, ai, web, cloud, ...). Unknown domains print the data list, matching what a live session would suggest.",
	Args:  cobra.ExactArgs(1),
	Run:   runRolesCmd,
}

func init() {
	rootCmd.AddCommand(rolesCommand)
}

func runRolesCmd(_ *cobra.Command, args []string) {
	domain := taxonomy.Domain(strings.ToLower(strings.TrimSpace(args[0])))
	roles := taxonomy.RolesFor(domain)

	printer := render.NewPrinter(os.Stdout)
	printer.PrintRoleCatalog(domain, roles)
}
