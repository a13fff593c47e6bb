package codec

import (
	"github.com/vylang/abicore/abitype"
	"github.com/vylang/abicore/il"
)

const (
	srcBegin = "src"
	srcLoc   = "src_loc"
)

// Decode emits an IL program reading the ABI buffer srcExpr evaluates to
// into the typed destination dstNode (spec section 4.E, the abi-decode
// operation). No length validation is performed against the buffer; it is
// assumed well-formed — a deliberate trust boundary, the caller is
// responsible for bounding the input (spec section 4.E).
//
// Per spec section 9's open question about the source's shadowed
// src_loc (there, the loop variable is rebound to a typed IL-node that
// also serves as a plain string name), this implementation keeps src_loc
// as a single stable symbol name throughout and builds a freshly typed
// reference from it wherever one is needed, rather than mutating what the
// name is bound to mid-loop.
func Decode(dstNode *il.Node, srcExpr *il.Node) (*il.Node, error) {
	if dstNode.Typ == nil {
		panic("codec: Decode: dstNode has no front-end type")
	}
	parentT := abitype.AbiTypeOf(*dstNode.Typ)

	os := ChildList(dstNode)

	var items []*il.Node
	for i, c := range os {
		childT := abitype.AbiTypeOf(*c.Typ)

		var item *il.Node
		switch {
		case parentT.IsTuple() && childT.IsDynamic():
			childLoc := il.Add(il.Sym(srcBegin), il.MLoad(il.Sym(srcLoc)))
			childProgram, err := Decode(c, childLoc)
			if err != nil {
				return nil, err
			}
			item = childProgram

		case parentT.IsTuple():
			childProgram, err := Decode(c, il.Sym(srcLoc))
			if err != nil {
				return nil, err
			}
			item = childProgram

		default:
			srcRef := il.Ref(srcLoc, *c.Typ, il.Memory)
			item = il.MakeSetter(c, srcRef)
		}

		items = append(items, item)

		if i+1 != len(os) {
			items = append(items, il.Set(srcLoc, il.Add(il.Sym(srcLoc), il.Lit(int64(childT.StaticSize())))))
		}
		// The last pointer increment is always elided.
	}

	body := il.Seq(items...)
	return il.With(srcBegin, srcExpr, il.With(srcLoc, il.Sym(srcBegin), body)), nil
}
