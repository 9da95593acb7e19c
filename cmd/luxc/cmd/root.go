// Package cmd implements the luxc command-line interface: a cobra root
// command plus compile/lex/parse/version subcommands, one file per
// subcommand.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "luxc",
	Short: "lux ahead-of-time compiler",
	Long: `luxc is an ahead-of-time compiler for lux, a small systems language.

It translates lux source through a token-windowed lexer, a recursive-
descent parser that builds a typed AST and scope graph in one pass, a
fixed-point type resolver, and an emitter that writes AT&T-syntax x86-64
assembly.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
