// Package main provides the CLI entrypoint for accessor-audit.
//
// accessor-audit is the static companion of the accessor engine:
//   - Loads Go packages (go/types) to discover struct properties
//   - Mirrors the runtime shape classifier over the loaded types
//   - Reports the accessor strategy every property would bind to
//   - Flags shapes the uniform contract cannot serve (stack-only values,
//     setters that lose writes to a copy)
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "accessor-audit",
	Short: "Static audit of property accessor strategies",
	Long:  `accessor-audit loads Go packages and reports, per exported struct type, the accessor strategy each property would bind to and the shapes that cannot be served`,
}

func main() {
	rootCmd.AddCommand(scanCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
