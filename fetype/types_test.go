package fetype

import "testing"

func TestTupleTypeKeyMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on mismatched keys/members")
		}
	}()
	TupleType([]string{"a", "b"}, []Type{BaseType(Uint256)})
}

func TestListTypeNegativeCountPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on negative count")
		}
	}()
	ListType(BaseType(Uint256), -1)
}

func TestIsScalar(t *testing.T) {
	cases := []struct {
		name string
		typ  Type
		want bool
	}{
		{"base", BaseType(Uint256), true},
		{"bytearray", ByteArrayType(32), true},
		{"string", StringType(32), true},
		{"tuple", TupleType(nil, nil), false},
		{"list", ListType(BaseType(Bool), 3), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.typ.IsScalar(); got != c.want {
				t.Errorf("IsScalar() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestTupleAccessors(t *testing.T) {
	members := []Type{BaseType(Uint256), BaseType(Address)}
	tup := TupleType([]string{"amount", "to"}, members)

	if got := tup.TupleKeys(); len(got) != 2 || got[0] != "amount" || got[1] != "to" {
		t.Fatalf("unexpected keys: %v", got)
	}
	if got := tup.TupleMembers(); len(got) != 2 {
		t.Fatalf("unexpected members: %v", got)
	}
}
