package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information, set by build flags (mirrors the teacher's
// cmd/dwscript/cmd/root.go Version/GitCommit/BuildDate pattern).
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "zen",
	Short: "ZEN interpreter",
	Long: `zen is an interpreter for ZEN, a small dynamically-typed scripting
language with indentation-delimited blocks, no semicolons, no parentheses
on calls, and natural-language-flavored syntax.`,
	Version: Version,
}

// Exit codes per spec.md §6: 0 success, 1 evaluation produced an Error
// value at top level, 2 lexer/parser error, 3 I/O error.
const (
	ExitSuccess     = 0
	ExitEvalError   = 1
	ExitSyntaxError = 2
	ExitIOError     = 3
)

// Execute runs the root command and returns the process exit code. cobra's
// own RunE error return only distinguishes "failed" from "succeeded"; each
// subcommand instead sets its own exit code explicitly via a package-level
// variable so the four-way 0/1/2/3 distinction spec.md §6 requires
// survives past cobra's single error return.
func Execute() int {
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if exitCode == ExitSuccess {
			exitCode = ExitEvalError
		}
		return exitCode
	}
	return exitCode
}

// exitCode is set by a subcommand's RunE before returning, so Execute can
// surface the right code after cobra unwinds.
var exitCode int

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
}
