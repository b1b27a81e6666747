// Package scope implements ZEN's binding environment: a parent-chained
// symbol table, one per function activation (ZEN has no block scoping —
// an entire function body shares one scope).
package scope

import "github.com/zen-lang/zen/internal/value"

// Scope is a name-to-value binding table with an optional parent for
// lexical lookup of enclosing (captured) bindings.
type Scope struct {
	store  map[string]*value.Value
	parent *Scope
}

// New creates a root scope with no parent — used for the program's global
// scope.
func New() *Scope {
	return &Scope{store: make(map[string]*value.Value)}
}

// NewEnclosed creates a scope whose lookups fall through to parent when a
// name isn't bound locally. Used for function activations, which capture
// their defining scope as parent (closures).
func NewEnclosed(parent *Scope) *Scope {
	return &Scope{store: make(map[string]*value.Value), parent: parent}
}

// Define binds name to val in this scope, overwriting any existing local
// binding. This is the only write operation ZEN's `set` uses: per spec,
// `set` always binds/rebinds in the current function-local scope, never an
// enclosing one, so there is no separate "assign to an outer scope"
// operation the way most lexically-scoped languages have one.
func (s *Scope) Define(name string, val *value.Value) {
	if existing, ok := s.store[name]; ok && existing != val {
		value.Unref(existing)
	}
	s.store[name] = val
}

// Lookup searches this scope, then walks the parent chain, returning the
// bound value and true, or (nil, false) if name is unbound anywhere in the
// chain.
func (s *Scope) Lookup(name string) (*value.Value, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if v, ok := cur.store[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// LookupLocal searches only this scope, without walking the parent chain.
func (s *Scope) LookupLocal(name string) (*value.Value, bool) {
	v, ok := s.store[name]
	return v, ok
}

// Has reports whether name is bound in this scope or any ancestor.
func (s *Scope) Has(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// Parent returns the enclosing scope, or nil for the root.
func (s *Scope) Parent() *Scope { return s.parent }

// Names returns the names bound directly in this scope (not ancestors),
// in no particular order.
func (s *Scope) Names() []string {
	names := make([]string, 0, len(s.store))
	for name := range s.store {
		names = append(names, name)
	}
	return names
}

// Release unrefs every value bound directly in this scope. The evaluator
// does not call it: a function activation's scope keeps the references
// of its bindings after the function returns.
func (s *Scope) Release() {
	for _, v := range s.store {
		value.Unref(v)
	}
}
