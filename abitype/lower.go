package abitype

import "github.com/vylang/abicore/fetype"

// AbiTypeOf lowers a front-end type into its ABI descriptor (spec section
// 4.B). Tuples and static arrays recurse; ByteArray/String carry their
// bound straight through. decimal lowers to a signed FixedMxN(168,10),
// matching both spec.md section 3.2 and original_source's abi_type_of.
//
// DynamicArray is not exercised by the currently lowered front-end
// alphabet (fetype has no dynamic-array variant yet) but the descriptor
// constructor exists for forward compatibility — see abitype.DynamicArray
// and spec.md section 4.B / section 9.
func AbiTypeOf(t fetype.Type) Descriptor {
	switch t.Kind {
	case fetype.KindBase:
		switch t.BaseName {
		case fetype.Uint256:
			return GIntM(256, false)
		case fetype.Int128:
			return GIntM(128, true)
		case fetype.Address:
			return Address()
		case fetype.Bytes32:
			return BytesM(32)
		case fetype.Bool:
			return Bool()
		case fetype.Decimal:
			return FixedMxN(168, 10, true)
		default:
			panic(invariantViolation("AbiTypeOf: unrecognized base type %q", t.BaseName))
		}

	case fetype.KindTupleLike:
		members := t.TupleMembers()
		subs := make([]Descriptor, len(members))
		for i, m := range members {
			subs[i] = AbiTypeOf(m)
		}
		return Tuple(subs)

	case fetype.KindList:
		return StaticArray(AbiTypeOf(*t.Elem), t.Count)

	case fetype.KindByteArray:
		return Bytes(t.MaxLen)

	case fetype.KindString:
		return String(t.MaxLen)

	default:
		panic(invariantViolation("AbiTypeOf: unrecognized front-end type %v", t))
	}
}
