// Package stdlib implements spec.md §6's host function surface: the fixed
// set of built-ins (print, readLine, toNumber, toString, jsonParse,
// jsonStringify, length, split, join, toUpperCase, toLowerCase, random,
// round) plus the supplemented yamlParse/yamlStringify pair and the
// newSet/setAdd/setHas/setRemove/setLength/setToArray and
// newPriorityQueue/pqPush/pqPop/pqPeek/pqLength container functions.
// Each function is registered as an ordinary KindFunction
// host Value
// (value.NewHostFunction), so a ZEN program cannot tell a built-in apart
// from a user-defined function at the call site.
//
// Grounded on internal/interp/builtins/registry.go's Category/Registry
// shape, generalized from a case-insensitive name->FunctionInfo lookup
// table to direct registration into a scope.Scope (ZEN has no separate
// built-in-lookup path distinct from variable lookup — spec.md §6 says
// "the stdlib is registered as named host functions in the root scope").
package stdlib

import (
	"bufio"
	"io"
	"math/rand"

	"github.com/zen-lang/zen/internal/scope"
	"github.com/zen-lang/zen/internal/value"
)

// Options configures the I/O streams stdlib functions read from and write
// to, mirroring the teacher's injected io.Writer rather than hard-coding
// os.Stdout/os.Stdin so tests and the REPL can both supply their own.
type Options struct {
	Stdout io.Writer
	Stdin  io.Reader
	Rand   *rand.Rand
}

// Register installs every stdlib host function into root, in the category
// groupings the teacher's registry uses purely as source-file organization
// (CategoryIO, CategoryConversion, CategoryString, CategoryEncoding,
// CategorySystem) since ZEN itself has no user-visible notion of category.
func Register(root *scope.Scope, opts Options) {
	if opts.Stdin == nil {
		opts.Stdin = io.LimitReader(nil, 0)
	}
	reader := bufio.NewReader(opts.Stdin)
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(1))
	}

	registerIO(root, opts.Stdout, reader)
	registerConversion(root)
	registerStrings(root)
	registerEncoding(root)
	registerSystem(root, opts.Rand)
	registerContainers(root)
}

func define(root *scope.Scope, name string, host func(args []*value.Value) *value.Value) {
	root.Define(name, value.NewHostFunction(name, host))
}
