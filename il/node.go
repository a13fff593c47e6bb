// Package il is a minimal, concrete realization of the host compiler's
// intermediate-language node tree (spec section 3.3/3.4/6). The real IL —
// its lowering to assembly, its optimizer, its pretty-printer used in
// diagnostics — lives in the compiler this codec is part of; this package
// only gives the codec's output a printable, executable shape so the
// module is self-contained and its own test suite can run end to end.
package il

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/vylang/abicore/fetype"
)

// Location names where a Node's address expression points.
type Location int

const (
	LocationNone Location = iota
	Memory
	Storage
	Calldata
	Code
)

func (l Location) String() string {
	switch l {
	case Memory:
		return "memory"
	case Storage:
		return "storage"
	case Calldata:
		return "calldata"
	case Code:
		return "code"
	default:
		return "none"
	}
}

// Node is an opaque, recursively printable S-expression: a head Value
// (operator, literal marker or symbolic name), an ordered list of child
// Args, an optional front-end type annotation and an optional location.
//
// Value "lit" carries its payload in Int. Value "bytesdata" carries its
// payload in Data (a literal byte-array/string value, used only as the
// source operand of MakeSetter). Value "multi" marks a literal aggregate
// whose Args are its elements in declared order (section 3.3). Any other
// Value is either an IL operator name (seq, with, set, mstore, mload,
// add, ceil32, mstoredata, zeropad, mcopy) or a symbolic name (a bound local).
type Node struct {
	Value    string
	Args     []*Node
	Int      *big.Int
	Data     []byte
	Typ      *fetype.Type
	Location Location
}

// WithType returns a shallow copy of n annotated with the given front-end type.
func (n *Node) WithType(t fetype.Type) *Node {
	cp := *n
	cp.Typ = &t
	return &cp
}

// WithLocation returns a shallow copy of n annotated with the given location.
func (n *Node) WithLocation(loc Location) *Node {
	cp := *n
	cp.Location = loc
	return &cp
}

// Sym builds a symbolic reference to a named local (an address expression
// or scalar value, depending on context).
func Sym(name string) *Node {
	return &Node{Value: name}
}

// Ref builds a symbolic address reference of the given type and location —
// the typed "location node" shape add-variable-offset and make-setter operate on.
func Ref(name string, t fetype.Type, loc Location) *Node {
	return &Node{Value: name, Typ: &t, Location: loc}
}

// Lit builds an untyped, unlocated integer literal.
func Lit(n int64) *Node {
	return &Node{Value: "lit", Int: big.NewInt(n)}
}

// LitBig builds an untyped, unlocated integer literal from a big.Int.
func LitBig(n *big.Int) *Node {
	return &Node{Value: "lit", Int: new(big.Int).Set(n)}
}

// BytesData builds an unlocated literal byte-array/string value.
func BytesData(data []byte) *Node {
	cp := make([]byte, len(data))
	copy(cp, data)
	return &Node{Value: "bytesdata", Data: cp}
}

// Multi builds a literal aggregate: a tuple/list value whose elements are
// given directly in args, not by reference to a composite in memory.
func Multi(args ...*Node) *Node {
	return &Node{Value: "multi", Args: args}
}

func Seq(items ...*Node) *Node {
	items = dropNil(items)
	if len(items) == 1 {
		return items[0]
	}
	return &Node{Value: "seq", Args: items}
}

// With binds name to init for the evaluation of body — a fresh lexical
// scope; a nested With using the same name shadows the outer one.
func With(name string, init, body *Node) *Node {
	return &Node{Value: "with", Args: []*Node{Sym(name), init, body}}
}

func Set(name string, expr *Node) *Node {
	return &Node{Value: "set", Args: []*Node{Sym(name), expr}}
}

func MStore(addr, word *Node) *Node {
	return &Node{Value: "mstore", Args: []*Node{addr, word}}
}

func MLoad(addr *Node) *Node {
	return &Node{Value: "mload", Args: []*Node{addr}}
}

func Add(a, b *Node) *Node {
	return &Node{Value: "add", Args: []*Node{a, b}}
}

func Ceil32(x *Node) *Node {
	return &Node{Value: "ceil32", Args: []*Node{x}}
}

// MStoreData stores a literal run of bytes starting at addr. It is the
// concrete body make-setter uses for the data section of a byte-array or
// string; see the package doc for why it exists.
func MStoreData(addr *Node, data []byte) *Node {
	cp := make([]byte, len(data))
	copy(cp, data)
	return &Node{Value: "mstoredata", Args: []*Node{addr}, Data: cp}
}

// ZeroPad is the concrete body of the zero-pad primitive (section 3, Out
// of scope; section 3.4): given the address of a byte-array/string's
// length word, it zero-fills the tail from the actual length up to the
// next 32-byte boundary.
func ZeroPad(lengthWordAddr *Node) *Node {
	return &Node{Value: "zeropad", Args: []*Node{lengthWordAddr}}
}

// MCopy copies length bytes from srcAddr to dstAddr. It is a vocabulary
// extension beyond section 6's operator list, needed only by MakeSetter's
// buffer-to-buffer byte-array/string copy path (make-setter is declared an
// external primitive in the spec; a real compiler would lower this copy
// further, that lowering is out of scope here).
func MCopy(dstAddr, srcAddr, length *Node) *Node {
	return &Node{Value: "mcopy", Args: []*Node{dstAddr, srcAddr, length}}
}

// FromList canonicalizes a raw value into a *Node. A *Node passes through
// unchanged; anything else is an invariant violation, since this package
// has no other raw-tree surface to canonicalize from.
func FromList(raw any) *Node {
	switch v := raw.(type) {
	case *Node:
		return v
	case Node:
		return &v
	default:
		panic(fmt.Sprintf("il: FromList: unrecognized raw tree %#v", raw))
	}
}

func dropNil(items []*Node) []*Node {
	out := items[:0:0]
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

// String renders n as an S-expression, for diagnostics and golden-file tests.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	switch n.Value {
	case "lit":
		b.WriteString(n.Int.String())
		return
	case "bytesdata":
		fmt.Fprintf(b, "0x%x", n.Data)
		return
	}
	if len(n.Args) == 0 && n.Value != "seq" && n.Value != "multi" {
		// A symbolic name prints bare, not as a zero-argument call.
		b.WriteString(n.Value)
		return
	}
	b.WriteByte('(')
	b.WriteString(n.Value)
	for _, a := range n.Args {
		b.WriteByte(' ')
		if a == nil {
			b.WriteString("nil")
			continue
		}
		a.write(b)
	}
	b.WriteByte(')')
}
