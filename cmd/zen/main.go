// Command zen is the ZEN interpreter CLI: run, lex, parse, repl, version.
package main

import (
	"os"

	"github.com/zen-lang/zen/cmd/zen/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
