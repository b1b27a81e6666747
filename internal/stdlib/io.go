package stdlib

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/zen-lang/zen/internal/scope"
	"github.com/zen-lang/zen/internal/value"
)

// registerIO installs `print` and `readLine`, spec.md §6's only two I/O
// built-ins. Both write to/read from injected streams rather than
// os.Stdout/os.Stdin directly, matching the teacher's Context.Write /
// Context.WriteLine indirection.
func registerIO(root *scope.Scope, out io.Writer, in *bufio.Reader) {
	define(root, "print", func(args []*value.Value) *value.Value {
		parts := make([]string, len(args))
		for i, a := range args {
			parts[i] = value.ToString(a)
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
		return value.NewNull()
	})

	define(root, "readLine", func(args []*value.Value) *value.Value {
		line, err := in.ReadString('\n')
		if err != nil && line == "" {
			return value.NewNull()
		}
		return value.NewString(strings.TrimRight(line, "\r\n"))
	})
}
