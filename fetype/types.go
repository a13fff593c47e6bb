// Package fetype is a minimal stand-in for the compiler's front-end type
// tree: the typed value variants that a source expression can carry before
// it reaches the ABI codec. The real front-end type tree (parsing,
// inference, diagnostics) lives upstream of this package; fetype only
// carries the alphabet the codec needs to dispatch on (see abitype.AbiTypeOf).
package fetype

import "fmt"

// Kind tags which variant a Type value holds.
type Kind int

const (
	KindBase Kind = iota
	KindTupleLike
	KindList
	KindByteArray
	KindString
)

// Recognized Base type names.
const (
	Uint256 = "uint256"
	Int128  = "int128"
	Address = "address"
	Bytes32 = "bytes32"
	Bool    = "bool"
	Decimal = "decimal"
)

// Type is a tagged value: exactly the attributes for Kind are meaningful.
type Type struct {
	Kind Kind

	// KindBase
	BaseName string

	// KindTupleLike
	Keys    []string
	Members []Type

	// KindList
	Elem  *Type
	Count int

	// KindByteArray / KindString
	MaxLen int
}

func BaseType(name string) Type {
	return Type{Kind: KindBase, BaseName: name}
}

// TupleType builds an ordered, named tuple. len(keys) must equal len(members);
// a mismatch is a compiler-invariant bug and panics, matching the eager
// validation style of abitype's constructors.
func TupleType(keys []string, members []Type) Type {
	if len(keys) != len(members) {
		panic(fmt.Sprintf("fetype: tuple key/member count mismatch: %d keys, %d members", len(keys), len(members)))
	}
	return Type{Kind: KindTupleLike, Keys: keys, Members: members}
}

func ListType(elem Type, count int) Type {
	if count < 0 {
		panic("fetype: negative list count")
	}
	e := elem
	return Type{Kind: KindList, Elem: &e, Count: count}
}

func ByteArrayType(maxlen int) Type {
	if maxlen < 0 {
		panic("fetype: negative ByteArray maxlen")
	}
	return Type{Kind: KindByteArray, MaxLen: maxlen}
}

func StringType(maxlen int) Type {
	if maxlen < 0 {
		panic("fetype: negative String maxlen")
	}
	return Type{Kind: KindString, MaxLen: maxlen}
}

// TupleKeys returns the declared member names in order. Only meaningful for
// KindTupleLike; returns nil otherwise.
func (t Type) TupleKeys() []string {
	return t.Keys
}

// TupleMembers returns the ordered child types. Only meaningful for
// KindTupleLike; returns nil otherwise.
func (t Type) TupleMembers() []Type {
	return t.Members
}

func (t Type) IsScalar() bool {
	return t.Kind == KindBase || t.Kind == KindByteArray || t.Kind == KindString
}

func (t Type) String() string {
	switch t.Kind {
	case KindBase:
		return t.BaseName
	case KindTupleLike:
		return fmt.Sprintf("tuple%v", t.Keys)
	case KindList:
		return fmt.Sprintf("%s[%d]", t.Elem.String(), t.Count)
	case KindByteArray:
		return fmt.Sprintf("bytes<=%d", t.MaxLen)
	case KindString:
		return fmt.Sprintf("string<=%d", t.MaxLen)
	default:
		return "<invalid fetype.Type>"
	}
}
