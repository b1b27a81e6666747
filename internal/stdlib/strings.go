package stdlib

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/zen-lang/zen/internal/scope"
	"github.com/zen-lang/zen/internal/value"
)

// registerStrings installs `length`, `split`, `join`, `toUpperCase`, and
// `toLowerCase`.
//
// toUpperCase/toLowerCase go through golang.org/x/text/cases rather than
// strings.ToUpper/ToLower, matching the teacher's locale-aware casing
// pattern in vm_builtins_string.go (CompareLocaleStr uses
// golang.org/x/text/language + collate for the same reason: ASCII-only
// folding mishandles non-ASCII string *data*, even though ZEN identifiers
// themselves stay ASCII-only per spec.md's non-goals).
func registerStrings(root *scope.Scope) {
	var (
		upper = cases.Upper(language.Und)
		lower = cases.Lower(language.Und)
	)

	define(root, "length", func(args []*value.Value) *value.Value {
		return value.NewNumber(float64(value.Length(arg(args, 0))))
	})

	define(root, "split", func(args []*value.Value) *value.Value {
		s, sep := arg(args, 0), arg(args, 1)
		if s.Kind != value.KindString || sep.Kind != value.KindString {
			return typeMismatchErr("split", s)
		}
		parts := strings.Split(s.Str, sep.Str)
		out := value.NewArray(len(parts))
		for _, p := range parts {
			out.Arr = append(out.Arr, value.NewString(p))
		}
		return out
	})

	define(root, "join", func(args []*value.Value) *value.Value {
		arr, sep := arg(args, 0), arg(args, 1)
		if arr.Kind != value.KindArray || sep.Kind != value.KindString {
			return typeMismatchErr("join", arr)
		}
		parts := make([]string, len(arr.Arr))
		for i, v := range arr.Arr {
			parts[i] = value.ToString(v)
		}
		return value.NewString(strings.Join(parts, sep.Str))
	})

	define(root, "toUpperCase", func(args []*value.Value) *value.Value {
		s := arg(args, 0)
		if s.Kind != value.KindString {
			return typeMismatchErr("toUpperCase", s)
		}
		return value.NewString(upper.String(s.Str))
	})

	define(root, "toLowerCase", func(args []*value.Value) *value.Value {
		s := arg(args, 0)
		if s.Kind != value.KindString {
			return typeMismatchErr("toLowerCase", s)
		}
		return value.NewString(lower.String(s.Str))
	})
}
