package cmd

import (
	"fmt"
	"os"

	"github.com/luxlang/luxc/internal/ast"
	"github.com/luxlang/luxc/internal/errsink"
	"github.com/luxlang/luxc/internal/lexer"
	"github.com/luxlang/luxc/internal/parser"
	"github.com/luxlang/luxc/internal/printer"
	"github.com/luxlang/luxc/internal/types"
	"github.com/spf13/cobra"
)

var parseSkipTyping bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse lux source and print the resulting AST",
	Long: `Parse lux source code and display the Abstract Syntax Tree.

By default the tree is also run through type resolution, so printed
declarations show typedef references and inferred types already resolved
(struct sizes and member offsets are not printed). Pass
--skip-typing to dump the tree exactly as the parser produced it.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseSkipTyping, "skip-typing", false, "dump the AST before type resolution")
}

func runParse(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	sink := errsink.New(filename, source)
	lex := lexer.New(filename, source, sink)
	p := parser.New(lex, sink, filename)
	unit := p.ParseCodeUnit()

	if !parseSkipTyping {
		prog := &ast.Program{Units: []*ast.CodeUnit{unit}}
		types.New(sink).ResolveProgram(prog)
	}

	printer.New(os.Stdout).CodeUnit(unit)
	return nil
}
