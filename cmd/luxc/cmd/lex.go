package cmd

import (
	"fmt"
	"os"

	"github.com/luxlang/luxc/internal/errsink"
	"github.com/luxlang/luxc/internal/lexer"
	"github.com/luxlang/luxc/internal/token"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a lux file and print the resulting tokens",
	Long: `Tokenize a lux program and print the resulting token stream.

This command is useful for debugging the lexer and understanding how lux
source is tokenized.`,
	Args: cobra.ExactArgs(1),
	RunE: lexSource,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
}

func lexSource(_ *cobra.Command, args []string) error {
	filename := args[0]

	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	source := string(content)

	sink := errsink.New(filename, source)
	lex := lexer.New(filename, source, sink)

	count := 0
	for {
		tok := lex.Current()
		printToken(tok)
		count++
		if tok.Kind == token.EOF {
			break
		}
		lex.Next()
	}

	fmt.Fprintf(os.Stderr, "%d tokens\n", count)
	return nil
}

func printToken(tok token.Token) {
	output := fmt.Sprintf("[%-14s]", tok.Kind)
	if tok.Lexeme == "" {
		output += fmt.Sprintf(" %s", tok.Kind)
	} else {
		output += fmt.Sprintf(" %q", tok.Lexeme)
	}
	if showPos {
		output += fmt.Sprintf(" @%d:%d", tok.Pos.Line, tok.Pos.Column)
	}
	fmt.Println(output)
}
