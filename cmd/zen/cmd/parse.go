package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zen-lang/zen/internal/parser"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a ZEN file and print the AST",
	Long: `Parse ZEN source and print the Abstract Syntax Tree via each node's
String() method — the --debug-ast dump spec.md §6 names as a recognized
flag, exposed here as its own subcommand.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	filename := args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		exitCode = ExitIOError
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	prog, lexErrs, parseErrs := parser.Parse(string(content))
	if len(lexErrs) > 0 || len(parseErrs) > 0 {
		for _, e := range lexErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		for _, e := range parseErrs {
			fmt.Fprintln(os.Stderr, e.Error())
		}
		exitCode = ExitSyntaxError
		return fmt.Errorf("parsing failed with %d error(s)", len(lexErrs)+len(parseErrs))
	}

	fmt.Print(prog.String())
	exitCode = ExitSuccess
	return nil
}
