package abitype

import "testing"

func TestGIntMSelectorName(t *testing.T) {
	cases := []struct {
		d    Descriptor
		want string
	}{
		{GIntM(256, false), "uint256"},
		{GIntM(128, true), "int128"},
		{Address(), "address"},
		{Bool(), "bool"},
		{BytesM(32), "bytes32"},
		{Function(), "function"},
		{FixedMxN(168, 10, true), "fixed168x10"},
		{FixedMxN(128, 18, false), "ufixed128x18"},
	}
	for _, c := range cases {
		if got := c.d.SelectorName(); got != c.want {
			t.Errorf("SelectorName() = %q, want %q", got, c.want)
		}
	}
}

func TestGIntMInvalidMBitsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid m_bits")
		}
	}()
	GIntM(9, false)
}

func TestFixedMxNInvalidNPlacesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for invalid n_places")
		}
	}()
	FixedMxN(256, 81, true)
}

func TestBytesMBounds(t *testing.T) {
	if !panics(func() { BytesM(0) }) {
		t.Fatal("expected panic for BytesM(0)")
	}
	if !panics(func() { BytesM(33) }) {
		t.Fatal("expected panic for BytesM(33)")
	}
	BytesM(32) // should not panic
}

func panics(f func()) (didPanic bool) {
	defer func() {
		if recover() != nil {
			didPanic = true
		}
	}()
	f()
	return false
}

// Scalar descriptor query table (spec section 3.1).
func TestScalarQueries(t *testing.T) {
	scalars := []Descriptor{
		GIntM(256, false),
		GIntM(128, true),
		Address(),
		Bool(),
		FixedMxN(168, 10, true),
		BytesM(32),
		Function(),
	}
	for _, d := range scalars {
		if d.IsDynamic() {
			t.Errorf("%s: expected IsDynamic()=false", d.SelectorName())
		}
		if d.StaticSize() != 32 {
			t.Errorf("%s: expected StaticSize()=32, got %d", d.SelectorName(), d.StaticSize())
		}
		if d.DynamicSizeBound() != 0 {
			t.Errorf("%s: expected DynamicSizeBound()=0, got %d", d.SelectorName(), d.DynamicSizeBound())
		}
		if d.IsTuple() {
			t.Errorf("%s: expected IsTuple()=false", d.SelectorName())
		}
	}
}

func TestStaticArray(t *testing.T) {
	sub := GIntM(8, false)
	arr := StaticArray(sub, 2)

	if arr.IsDynamic() {
		t.Error("StaticArray(uint8,2): expected non-dynamic")
	}
	if got, want := arr.StaticSize(), 64; got != want {
		t.Errorf("StaticSize() = %d, want %d", got, want)
	}
	if got, want := arr.SelectorName(), "uint8[2]"; got != want {
		t.Errorf("SelectorName() = %q, want %q", got, want)
	}
	if !arr.IsTuple() {
		t.Error("StaticArray: expected IsTuple()=true")
	}
}

func TestStaticArrayZeroElements(t *testing.T) {
	// Boundary behaviour from spec section 8.
	arr := StaticArray(Bytes(10), 0)
	if got, want := arr.StaticSize(), 0; got != want {
		t.Errorf("StaticSize() = %d, want %d", got, want)
	}
	if got, want := arr.DynamicSizeBound(), 0; got != want {
		t.Errorf("DynamicSizeBound() = %d, want %d", got, want)
	}
}

func TestBytesZeroBound(t *testing.T) {
	// Boundary behaviour from spec section 8: length word only, still
	// padded to the word.
	b := Bytes(0)
	if got, want := b.DynamicSizeBound(), 32; got != want {
		t.Errorf("DynamicSizeBound() = %d, want %d", got, want)
	}
}

func TestEmptyTuple(t *testing.T) {
	tup := Tuple(nil)
	if got, want := tup.StaticSize(), 0; got != want {
		t.Errorf("StaticSize() = %d, want %d", got, want)
	}
	if tup.IsDynamic() {
		t.Error("Tuple(nil): expected non-dynamic")
	}
}

func TestTupleDynamicPropagation(t *testing.T) {
	tup := Tuple([]Descriptor{GIntM(256, false), Bytes(4), GIntM(256, false)})
	if !tup.IsDynamic() {
		t.Fatal("expected tuple with a dynamic member to be dynamic")
	}
	if got, want := tup.StaticSize(), 32; got != want {
		t.Errorf("dynamic tuple StaticSize() = %d, want %d", got, want)
	}
}

func TestDynamicArrayIsNotTuple(t *testing.T) {
	// The discrepancy noted in spec section 3.1: DynamicArray reports
	// IsTuple()=false even though its tail carries an inline head/tail
	// section.
	da := DynamicArray(GIntM(256, false), 4)
	if da.IsTuple() {
		t.Error("DynamicArray: expected IsTuple()=false")
	}
	if !da.IsDynamic() {
		t.Error("DynamicArray: expected IsDynamic()=true")
	}
	if got, want := da.StaticSize(), 32; got != want {
		t.Errorf("StaticSize() = %d, want %d", got, want)
	}
}

func TestInvariant1DynamicImpliesBound(t *testing.T) {
	all := []Descriptor{
		GIntM(256, false), Address(), Bool(), FixedMxN(168, 10, true),
		BytesM(32), Function(), StaticArray(GIntM(256, false), 3),
		Bytes(10), String(10), DynamicArray(GIntM(256, false), 3),
		Tuple([]Descriptor{GIntM(256, false), Bytes(4)}),
	}
	for _, d := range all {
		if !d.IsDynamic() && d.DynamicSizeBound() != 0 {
			t.Errorf("%s: non-dynamic descriptor has nonzero DynamicSizeBound()", d.SelectorName())
		}
	}
}
