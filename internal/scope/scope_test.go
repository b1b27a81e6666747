package scope

import (
	"testing"

	"github.com/zen-lang/zen/internal/value"
)

func TestDefineAndLookupLocal(t *testing.T) {
	s := New()
	s.Define("x", value.NewNumber(1))
	v, ok := s.Lookup("x")
	if !ok || v.Num != 1 {
		t.Fatalf("expected x=1, got %v ok=%v", v, ok)
	}
}

func TestLookupWalksParentChain(t *testing.T) {
	parent := New()
	parent.Define("y", value.NewNumber(42))
	child := NewEnclosed(parent)

	v, ok := child.Lookup("y")
	if !ok || v.Num != 42 {
		t.Fatalf("expected inherited y=42, got %v ok=%v", v, ok)
	}
}

func TestDefineAlwaysBindsLocalNotParent(t *testing.T) {
	parent := New()
	parent.Define("x", value.NewNumber(1))
	child := NewEnclosed(parent)

	child.Define("x", value.NewNumber(2))

	childVal, _ := child.Lookup("x")
	parentVal, _ := parent.Lookup("x")
	if childVal.Num != 2 {
		t.Fatalf("expected child x=2, got %v", childVal.Num)
	}
	if parentVal.Num != 1 {
		t.Fatalf("expected parent x to remain 1, got %v", parentVal.Num)
	}
}

func TestLookupLocalDoesNotSeeParent(t *testing.T) {
	parent := New()
	parent.Define("z", value.NewNumber(7))
	child := NewEnclosed(parent)

	_, ok := child.LookupLocal("z")
	if ok {
		t.Fatalf("expected LookupLocal to not find parent-only binding")
	}
}

func TestHasUndefinedName(t *testing.T) {
	s := New()
	if s.Has("nope") {
		t.Fatalf("expected Has to be false for undefined name")
	}
}
