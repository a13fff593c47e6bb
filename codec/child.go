// Package codec implements the child enumerator, encoder and decoder
// (spec sections 4.C, 4.D, 4.E): the operations that, given an IL-node
// annotated with a front-end type, walk the ABI type descriptor algebra
// in package abitype and emit the IL program that reads or writes an
// ABI-conformant byte buffer.
package codec

import (
	"fmt"

	"github.com/vylang/abicore/fetype"
	"github.com/vylang/abicore/il"
)

// ChildList enumerates the ordered child IL-nodes of n, whose front-end
// type must be composite or scalar (spec section 4.C). It never allocates
// IL runtime cells; it only composes subtree references.
func ChildList(n *il.Node) []*il.Node {
	if n.Typ == nil {
		panic(fmt.Sprintf("codec: ChildList: node has no front-end type: %s", n))
	}

	switch n.Typ.Kind {
	case fetype.KindBase, fetype.KindByteArray, fetype.KindString:
		return []*il.Node{n}

	case fetype.KindTupleLike:
		if n.Value == "multi" {
			return n.Args
		}
		keys := n.Typ.TupleKeys()
		out := make([]*il.Node, len(keys))
		for i, k := range keys {
			out[i] = il.VariableOffset(n, k, false)
		}
		return out

	case fetype.KindList:
		if n.Value == "multi" {
			return n.Args
		}
		out := make([]*il.Node, n.Typ.Count)
		for i := 0; i < n.Typ.Count; i++ {
			out[i] = il.VariableOffset(n, i, false)
		}
		return out

	default:
		panic(fmt.Sprintf("codec: ChildList: unrecognized front-end type %s", n.Typ))
	}
}
