package il

import (
	"testing"

	"github.com/vylang/abicore/fetype"
)

func TestMakeSetterScalarFromLiteral(t *testing.T) {
	dst := Ref("dst_loc", fetype.BaseType(fetype.Uint256), Memory)
	src := Lit(7)
	got := MakeSetter(dst, src)
	want := "(mstore dst_loc 7)"
	if got.String() != want {
		t.Errorf("MakeSetter = %q, want %q", got.String(), want)
	}
}

func TestMakeSetterScalarFromLocatedSource(t *testing.T) {
	dst := Ref("dst_loc", fetype.BaseType(fetype.Uint256), Memory)
	src := Ref("other", fetype.BaseType(fetype.Uint256), Memory)
	got := MakeSetter(dst, src)
	want := "(mstore dst_loc (mload other))"
	if got.String() != want {
		t.Errorf("MakeSetter = %q, want %q", got.String(), want)
	}
}

func TestMakeSetterPanicsOnNonMemoryDst(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for non-memory dst location")
		}
	}()
	dst := Ref("dst_loc", fetype.BaseType(fetype.Uint256), Storage)
	MakeSetter(dst, Lit(1))
}

func TestMakeSetterByteArrayFromLiteral(t *testing.T) {
	dst := Ref("dst_loc", fetype.ByteArrayType(32), Memory)
	src := BytesData([]byte{1, 2, 3})
	got := MakeSetter(dst, src).String()
	want := "(seq (mstore dst_loc 3) (mstoredata (add dst_loc 32)))"
	if got != want {
		t.Errorf("MakeSetter = %q, want %q", got, want)
	}
}

func TestMakeSetterByteArrayFromLocatedSourceCopies(t *testing.T) {
	dst := Ref("dst_loc", fetype.ByteArrayType(32), Memory)
	src := Ref("src_loc", fetype.ByteArrayType(32), Memory)
	got := MakeSetter(dst, src).String()
	want := "(seq (mstore dst_loc (mload src_loc)) (mcopy (add dst_loc 32) (add src_loc 32) (ceil32 (mload src_loc))))"
	if got != want {
		t.Errorf("MakeSetter = %q, want %q", got, want)
	}
}

func TestVariableOffsetTupleStaticMember(t *testing.T) {
	tup := fetype.TupleType(
		[]string{"a", "b"},
		[]fetype.Type{fetype.BaseType(fetype.Uint256), fetype.BaseType(fetype.Address)},
	)
	n := Ref("base", tup, Memory)
	child := VariableOffset(n, 1, false)
	want := "(add base 32)"
	if child.String() != want {
		t.Errorf("VariableOffset = %q, want %q", child.String(), want)
	}
	if child.Location != Memory {
		t.Error("static member should carry the parent's location unchanged")
	}
}

func TestVariableOffsetTupleByKey(t *testing.T) {
	tup := fetype.TupleType(
		[]string{"a", "b"},
		[]fetype.Type{fetype.BaseType(fetype.Uint256), fetype.BaseType(fetype.Address)},
	)
	n := Ref("base", tup, Memory)
	child := VariableOffset(n, "b", false)
	want := "(add base 32)"
	if child.String() != want {
		t.Errorf("VariableOffset = %q, want %q", child.String(), want)
	}
}

func TestVariableOffsetDynamicMemberDereferences(t *testing.T) {
	tup := fetype.TupleType(
		[]string{"a", "b"},
		[]fetype.Type{fetype.BaseType(fetype.Uint256), fetype.ByteArrayType(64)},
	)
	n := Ref("base", tup, Memory)
	child := VariableOffset(n, 1, false)
	want := "(mload (add base 32))"
	if child.String() != want {
		t.Errorf("VariableOffset = %q, want %q", child.String(), want)
	}
}

func TestVariableOffsetListIndex(t *testing.T) {
	lt := fetype.ListType(fetype.BaseType(fetype.Uint256), 4)
	n := Ref("arr", lt, Memory)
	child := VariableOffset(n, 2, false)
	want := "(add arr 64)"
	if child.String() != want {
		t.Errorf("VariableOffset = %q, want %q", child.String(), want)
	}
}

func TestVariableOffsetUnknownKeyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on unknown tuple key")
		}
	}()
	tup := fetype.TupleType([]string{"a"}, []fetype.Type{fetype.BaseType(fetype.Uint256)})
	n := Ref("base", tup, Memory)
	VariableOffset(n, "nope", false)
}
