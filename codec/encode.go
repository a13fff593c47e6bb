package codec

import (
	"github.com/vylang/abicore/abitype"
	"github.com/vylang/abicore/fetype"
	"github.com/vylang/abicore/il"
)

// Named IL locals the encoder uses, one set per nesting level (spec
// section 3.4): dstBegin is the buffer's base address, dstLoc is the
// current head write cursor, dynOfst is the current tail write offset
// relative to dstBegin. Each recursive level rebinds these via a fresh
// `with`, shadowing the enclosing level's bindings of the same name
// (spec section 5, section 9).
const (
	dstBegin = "dst"
	dstLoc   = "dst_loc"
	dynOfst  = "dyn_ofst"
)

// Encode emits an IL program writing node's value into the buffer dstExpr
// evaluates to (spec section 4.D, the abi-encode operation). bufSize, when
// non-nil, caps the declared buffer in bytes and is checked against the
// worst-case static-size + dynamic-size-bound of node's type. When
// returns is true, the program's final value is the number of bytes
// written.
//
// Emitter time and output size are O(n^2) in the maximum nesting depth,
// because each recursive call re-walks its child list to compute the
// dynamic section's start offset (the dyn_ofst start value below). This is
// deliberate: real contracts have shallow nesting, and the quadratic
// blowup only bites at depths no realistic ABI signature reaches.
func Encode(dstExpr *il.Node, node *il.Node, bufSize *int, returns bool) (*il.Node, error) {
	if node.Typ == nil {
		panic("codec: Encode: node has no front-end type")
	}
	parentT := abitype.AbiTypeOf(*node.Typ)

	if bufSize != nil {
		needed := parentT.StaticSize() + parentT.DynamicSizeBound()
		if *bufSize < needed {
			return nil, bufferTooSmall(*bufSize, needed)
		}
	}

	os := ChildList(node)

	var items []*il.Node
	for i, o := range os {
		childT := abitype.AbiTypeOf(*o.Typ)

		var item *il.Node
		switch {
		case parentT.IsTuple() && childT.IsDynamic():
			writeOfst := il.MStore(il.Sym(dstLoc), il.Sym(dynOfst))
			childDst := il.Add(il.Sym(dstBegin), il.Sym(dynOfst))
			childProgram, err := Encode(childDst, o, nil, true)
			if err != nil {
				return nil, err
			}
			// Incrementing dyn_ofst by the child's return value is elided
			// when this is the last dynamic member of a non-returning
			// tuple (spec section 4.D's opt-in optimisation); always
			// emitting it is simpler and still correct, so this
			// implementation does not take that optimisation.
			incr := il.Set(dynOfst, il.Add(il.Sym(dynOfst), childProgram))
			item = il.Seq(writeOfst, incr)

		case parentT.IsTuple():
			// C is static: this recursion bottoms out in a scalar/tuple store.
			childProgram, err := Encode(il.Sym(dstLoc), o, nil, false)
			if err != nil {
				return nil, err
			}
			item = childProgram

		case o.Typ.Kind == fetype.KindBase:
			d := il.Ref(dstLoc, *o.Typ, il.Memory)
			item = il.MakeSetter(d, o)

		case o.Typ.Kind == fetype.KindByteArray || o.Typ.Kind == fetype.KindString:
			d := il.Ref(dstLoc, *o.Typ, il.Memory)
			item = il.Seq(il.MakeSetter(d, o), il.ZeroPad(d))

		default:
			panic("codec: Encode: unreachable child type " + o.Typ.String())
		}

		items = append(items, item)

		if i+1 != len(os) {
			items = append(items, il.Set(dstLoc, il.Add(il.Sym(dstLoc), il.Lit(int64(childT.StaticSize())))))
		}
		// The last advance is always elided (spec section 4.D point 3).
	}

	if returns {
		switch {
		case !parentT.IsDynamic():
			items = append(items, il.Lit(int64(parentT.StaticSize())))
		case parentT.IsTuple():
			items = append(items, il.Sym(dynOfst))
		case node.Typ.Kind == fetype.KindByteArray || node.Typ.Kind == fetype.KindString:
			// head-slot (32) plus zero-padded body length, read from the
			// length word just written.
			items = append(items, il.Ceil32(il.Add(il.Lit(32), il.MLoad(il.Sym(dstLoc)))))
		default:
			panic("codec: Encode: unreachable return-value case for " + node.Typ.String())
		}
	}

	body := il.Seq(items...)

	if parentT.IsDynamic() && parentT.IsTuple() {
		start := 0
		for _, o := range os {
			start += abitype.AbiTypeOf(*o.Typ).StaticSize()
		}
		body = il.With(dynOfst, il.Lit(int64(start)), body)
	}
	// When the type is not a dynamic tuple, no dyn_ofst allocation is
	// needed at all (spec section 4.D): it is simply never referenced.

	return il.With(dstBegin, dstExpr, il.With(dstLoc, il.Sym(dstBegin), body)), nil
}
