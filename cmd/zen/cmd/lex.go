package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zen-lang/zen/internal/lexer"
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a ZEN file and print the resulting tokens",
	Long: `Tokenize (lex) a ZEN program and print the resulting token stream.
This is the --debug-lexer dump spec.md §6 names as a recognized flag,
exposed here as its own subcommand.`,
	Args: cobra.ExactArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)
}

func lexScript(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		exitCode = ExitIOError
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	tokens, lexErrs := lexer.Tokenize(string(content))
	for _, tok := range tokens {
		fmt.Println(tok.String())
	}

	if len(lexErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		exitCode = ExitSyntaxError
		return fmt.Errorf("lexing failed with %d error(s)", len(lexErrs))
	}

	exitCode = ExitSuccess
	return nil
}
