package il

import (
	"fmt"

	"github.com/vylang/abicore/abitype"
	"github.com/vylang/abicore/fetype"
)

// MakeSetter is the external primitive named in spec section 3 (Out of
// scope) and used throughout section 4.D/4.E: it emits an IL subtree
// copying a value from a typed source location to a typed destination
// location. dst must carry a Base or byte-array-like (ByteArray/String)
// front-end type and a Memory location — the only location this minimal,
// self-contained implementation covers, since memory-to-memory copies are
// all the codec's own bit-exact and round-trip tests ever exercise (spec
// section 8). Any other dst location or dst type panics. A located source
// is read with mload whatever its Location says.
func MakeSetter(dst, src *Node) *Node {
	if dst.Typ == nil {
		panic(fmt.Sprintf("il: MakeSetter: dst has no type: %s", dst))
	}
	if dst.Location != Memory {
		panic(fmt.Sprintf("il: MakeSetter: unsupported dst location %s", dst.Location))
	}

	switch dst.Typ.Kind {
	case fetype.KindBase:
		return MStore(dst, scalarWordOf(src))

	case fetype.KindByteArray, fetype.KindString:
		return setterForByteArrayLike(dst, src)

	default:
		panic(fmt.Sprintf("il: MakeSetter: dst type %s is not scalar or byte-array-like", dst.Typ))
	}
}

// scalarWordOf returns the expression evaluating to the raw 32-byte word a
// scalar source node holds: the node itself if it already IS the word
// value (a literal, or an arithmetic expression), or a dereference if it
// is a reference to another location.
func scalarWordOf(src *Node) *Node {
	if src.Location == LocationNone {
		return src
	}
	return MLoad(src)
}

func setterForByteArrayLike(dst, src *Node) *Node {
	if src.Location == LocationNone {
		if src.Value != "bytesdata" {
			panic(fmt.Sprintf("il: MakeSetter: unlocated byte-array-like source must be a literal, got %s", src))
		}
		storeLen := MStore(dst, Lit(int64(len(src.Data))))
		dataAddr := Add(dst, Lit(32))
		storeData := MStoreData(dataAddr, src.Data)
		return Seq(storeLen, storeData)
	}

	// Buffer-to-buffer copy: src is itself a length-prefixed byte-array/
	// string elsewhere in memory.
	length := MLoad(src)
	storeLen := MStore(dst, length)
	srcData := Add(src, Lit(32))
	dstData := Add(dst, Lit(32))
	copyData := MCopy(dstData, srcData, Ceil32(length))
	return Seq(storeLen, copyData)
}

// VariableOffset is the external primitive named in spec section 3 (Out
// of scope) and used by the child enumerator (section 4.C): given a
// reference `n` to a composite value and a key (a tuple member name, or
// an int list index), it yields the child's IL subtree. arrayBoundsCheck
// mirrors the real compiler's optional bounds-check emission; this codec
// only ever calls it with false (section 4.C) so it is accepted but
// unused here — see spec section 9.
//
// The composite is assumed laid out natively in n's location with one
// head slot per member, each slot sized exactly like that member's ABI
// static size: scalars and inlined static composites occupy their ABI
// static size in place, and dynamic members occupy a single 32-byte
// pointer slot that is dereferenced on the way out. This mirrors how a
// real compiler represents an in-memory tuple/array before ABI encoding.
func VariableOffset(n *Node, key any, arrayBoundsCheck bool) *Node {
	_ = arrayBoundsCheck
	if n.Typ == nil {
		panic(fmt.Sprintf("il: VariableOffset: n has no type: %s", n))
	}

	var childType fetype.Type
	var offset int

	switch n.Typ.Kind {
	case fetype.KindTupleLike:
		idx, ok := key.(int)
		if !ok {
			k, ok2 := key.(string)
			if !ok2 {
				panic(fmt.Sprintf("il: VariableOffset: tuple key must be string or int, got %#v", key))
			}
			idx = indexOfKey(n.Typ.Keys, k)
		}
		members := n.Typ.TupleMembers()
		for i := 0; i < idx; i++ {
			offset += abitype.AbiTypeOf(members[i]).StaticSize()
		}
		childType = members[idx]

	case fetype.KindList:
		idx, ok := key.(int)
		if !ok {
			panic(fmt.Sprintf("il: VariableOffset: list key must be int, got %#v", key))
		}
		elemSize := abitype.AbiTypeOf(*n.Typ.Elem).StaticSize()
		offset = idx * elemSize
		childType = *n.Typ.Elem

	default:
		panic(fmt.Sprintf("il: VariableOffset: n type %s is not a composite", n.Typ))
	}

	addrExpr := Add(n, Lit(int64(offset)))
	childDesc := abitype.AbiTypeOf(childType)
	if childDesc.IsDynamic() {
		return MLoad(addrExpr).WithType(childType).WithLocation(n.Location)
	}
	return addrExpr.WithType(childType).WithLocation(n.Location)
}

func indexOfKey(keys []string, k string) int {
	for i, kk := range keys {
		if kk == k {
			return i
		}
	}
	panic(fmt.Sprintf("il: VariableOffset: unknown tuple key %q", k))
}
