package il

import (
	"testing"

	"github.com/vylang/abicore/fetype"
)

func TestSeqCollapsesSingleItem(t *testing.T) {
	lit := Lit(1)
	got := Seq(lit)
	if got != lit {
		t.Fatalf("Seq(single) = %v, want the same node back", got)
	}
}

func TestSeqDropsNils(t *testing.T) {
	a, b := Lit(1), Lit(2)
	got := Seq(a, nil, b)
	if got.Value != "seq" || len(got.Args) != 2 {
		t.Fatalf("Seq with a nil: got %d args, want 2", len(got.Args))
	}
	if got.Args[0] != a || got.Args[1] != b {
		t.Fatal("Seq did not preserve ordering of non-nil items")
	}
}

func TestSeqAllNilEmpty(t *testing.T) {
	got := Seq(nil, nil)
	if got.Value != "seq" || len(got.Args) != 0 {
		t.Fatalf("Seq(nil, nil) = %v, want empty seq", got)
	}
}

func TestWithShape(t *testing.T) {
	n := With("x", Lit(5), Sym("x"))
	if n.Value != "with" || len(n.Args) != 3 {
		t.Fatalf("With: unexpected shape %v", n)
	}
	if n.Args[0].Value != "x" {
		t.Errorf("With: bound name = %q, want %q", n.Args[0].Value, "x")
	}
}

func TestSetShape(t *testing.T) {
	n := Set("x", Lit(1))
	if n.Value != "set" || len(n.Args) != 2 || n.Args[0].Value != "x" {
		t.Fatalf("Set: unexpected shape %v", n)
	}
}

func TestFromListPassesThroughNode(t *testing.T) {
	n := Lit(1)
	if got := FromList(n); got != n {
		t.Error("FromList(*Node) should return the same pointer")
	}
	v := *Lit(2)
	got := FromList(v)
	if got.Int.Int64() != 2 {
		t.Error("FromList(Node) should dereference correctly")
	}
}

func TestFromListPanicsOnUnrecognized(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unrecognized raw tree")
		}
	}()
	FromList("not a node")
}

func TestStringRendering(t *testing.T) {
	n := Seq(MStore(Sym("dst"), Lit(42)), Lit(32))
	got := n.String()
	want := "(seq (mstore dst 42) 32)"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringBytesData(t *testing.T) {
	n := BytesData([]byte{0xde, 0xad})
	if got, want := n.String(), "0xdead"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWithTypeAndLocationDoNotMutateOriginal(t *testing.T) {
	base := Sym("x")
	typed := base.WithType(fetype.BaseType(fetype.Uint256))
	located := typed.WithLocation(Memory)

	if base.Typ != nil || base.Location != LocationNone {
		t.Fatal("WithType/WithLocation must not mutate the receiver")
	}
	if typed.Location != LocationNone {
		t.Fatal("WithType must not set Location")
	}
	if located.Typ == nil || located.Typ.BaseName != fetype.Uint256 {
		t.Fatal("WithLocation must preserve the type set by WithType")
	}
	if located.Location != Memory {
		t.Fatal("WithLocation did not set Location")
	}
}
