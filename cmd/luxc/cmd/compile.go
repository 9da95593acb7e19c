package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/luxlang/luxc/internal/ast"
	"github.com/luxlang/luxc/internal/emitter"
	"github.com/luxlang/luxc/internal/errsink"
	"github.com/luxlang/luxc/internal/lexer"
	"github.com/luxlang/luxc/internal/parser"
	"github.com/luxlang/luxc/internal/types"
	"github.com/spf13/cobra"
)

var (
	outputFile    string
	compileVerbose bool
)

var compileCmd = &cobra.Command{
	Use:   "compile [file]",
	Short: "Compile a lux source file to x86-64 assembly",
	Long: `Compile a lux program to AT&T-syntax x86-64 assembly.

Examples:
  # Compile a source file, writing main.s
  luxc compile main.lux

  # Compile with a custom output path
  luxc compile main.lux -o main.s`,
	Args: cobra.ExactArgs(1),
	RunE: compileSource,
}

func init() {
	rootCmd.AddCommand(compileCmd)

	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: the input path with its extension replaced by .s)")
	compileCmd.Flags().BoolVarP(&compileVerbose, "verbose", "v", false, "verbose output")
}

func compileSource(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Compiling %s...\n", filename)
	}

	sink := errsink.New(filename, source)

	lex := lexer.New(filename, source, sink)
	p := parser.New(lex, sink, filename)
	unit := p.ParseCodeUnit()

	prog := &ast.Program{Units: []*ast.CodeUnit{unit}}

	resolver := types.New(sink)
	resolver.ResolveProgram(prog)

	outFile := outputFile
	if outFile == "" {
		ext := filepath.Ext(filename)
		if ext != "" {
			outFile = strings.TrimSuffix(filename, ext) + ".s"
		} else {
			outFile = filename + ".s"
		}
	}

	out, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", outFile, err)
	}
	defer out.Close()

	e := emitter.New(out, sink)
	e.EmitProgram(prog)

	if compileVerbose {
		fmt.Fprintf(os.Stderr, "Assembly written to %s\n", outFile)
	} else {
		fmt.Printf("Compiled %s -> %s\n", filename, outFile)
	}

	return nil
}
