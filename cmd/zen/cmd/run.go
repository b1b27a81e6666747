package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zen-lang/zen/internal/evaluator"
	"github.com/zen-lang/zen/internal/parser"
	"github.com/zen-lang/zen/internal/scope"
	"github.com/zen-lang/zen/internal/stdlib"
	"github.com/zen-lang/zen/internal/value"
)

var (
	debugAST bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a ZEN script",
	Long: `Execute a ZEN program from a file.

Examples:
  zen run script.zen
  zen run --debug-ast script.zen`,
	Args: cobra.ExactArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&debugAST, "debug-ast", false, "dump the parsed AST before evaluation")
}

func runScript(_ *cobra.Command, args []string) error {
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

	if debugAST {
		fmt.Fprintln(os.Stderr, "AST:")
		fmt.Fprint(os.Stderr, prog.String())
	}

	root := scope.New()
	stdlib.Register(root, stdlib.Options{Stdout: os.Stdout, Stdin: os.Stdin})

	result := evaluator.New().EvalProgram(prog, root)
	if result != nil && result.Kind == value.KindError {
		fmt.Fprintf(os.Stderr, "Error: %s (code: %d)\n", result.Err.Message, result.Err.Code)
		exitCode = ExitEvalError
		return fmt.Errorf("evaluation failed")
	}

	exitCode = ExitSuccess
	return nil
}
