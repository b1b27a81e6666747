package stdlib

import (
	"github.com/zen-lang/zen/internal/scope"
	"github.com/zen-lang/zen/internal/value"
)

// registerContainers installs constructors and mutators for the Set and
// PriorityQueue container kinds spec.md §4.1 adds to Value's public
// constructor contract ("plus set/priority-queue constructors") but gives no
// dedicated literal syntax: `newSet`/`newPriorityQueue` and their companion
// functions are the only way a ZEN program reaches them, the same surface
// treatment jsonParse/jsonStringify give the JSON document shape.
func registerContainers(root *scope.Scope) {
	define(root, "newSet", func(args []*value.Value) *value.Value {
		return value.NewSet()
	})

	define(root, "setAdd", func(args []*value.Value) *value.Value {
		s := arg(args, 0)
		if s.Kind != value.KindSet {
			return typeMismatchErr("setAdd", s)
		}
		s.Set.Add(arg(args, 1))
		return s
	})

	define(root, "setHas", func(args []*value.Value) *value.Value {
		s := arg(args, 0)
		if s.Kind != value.KindSet {
			return typeMismatchErr("setHas", s)
		}
		return value.NewBool(s.Set.Has(arg(args, 1)))
	})

	define(root, "setRemove", func(args []*value.Value) *value.Value {
		s := arg(args, 0)
		if s.Kind != value.KindSet {
			return typeMismatchErr("setRemove", s)
		}
		return value.NewBool(s.Set.Remove(arg(args, 1)))
	})

	define(root, "setLength", func(args []*value.Value) *value.Value {
		s := arg(args, 0)
		if s.Kind != value.KindSet {
			return typeMismatchErr("setLength", s)
		}
		return value.NewNumber(float64(s.Set.Len()))
	})

	define(root, "setToArray", func(args []*value.Value) *value.Value {
		s := arg(args, 0)
		if s.Kind != value.KindSet {
			return typeMismatchErr("setToArray", s)
		}
		elems := s.Set.Elements()
		out := value.NewArray(len(elems))
		for _, e := range elems {
			out.Arr = append(out.Arr, value.Ref(e))
		}
		return out
	})

	define(root, "newPriorityQueue", func(args []*value.Value) *value.Value {
		return value.NewPriorityQueue()
	})

	define(root, "pqPush", func(args []*value.Value) *value.Value {
		pq := arg(args, 0)
		if pq.Kind != value.KindPriorityQueue {
			return typeMismatchErr("pqPush", pq)
		}
		priority := arg(args, 2)
		if priority.Kind != value.KindNumber {
			return typeMismatchErr("pqPush", priority)
		}
		pq.PQueue.Push(arg(args, 1), priority.Num)
		return pq
	})

	define(root, "pqPop", func(args []*value.Value) *value.Value {
		pq := arg(args, 0)
		if pq.Kind != value.KindPriorityQueue {
			return typeMismatchErr("pqPop", pq)
		}
		item, ok := pq.PQueue.Pop()
		if !ok {
			return value.NewNull()
		}
		return item
	})

	define(root, "pqPeek", func(args []*value.Value) *value.Value {
		pq := arg(args, 0)
		if pq.Kind != value.KindPriorityQueue {
			return typeMismatchErr("pqPeek", pq)
		}
		item, ok := pq.PQueue.Peek()
		if !ok {
			return value.NewNull()
		}
		return value.Ref(item)
	})

	define(root, "pqLength", func(args []*value.Value) *value.Value {
		pq := arg(args, 0)
		if pq.Kind != value.KindPriorityQueue {
			return typeMismatchErr("pqLength", pq)
		}
		return value.NewNumber(float64(pq.PQueue.Len()))
	})
}
