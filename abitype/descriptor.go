// Package abitype implements the ABI type descriptor hierarchy (spec
// section 3.1, 4.A): a polymorphic set of descriptors mirroring the
// Ethereum Contract ABI's static/dynamic partitioning, plus the lowering
// from the compiler's front-end type tree into that descriptor algebra
// (spec section 4.B).
//
// Per the design note in spec section 9, this is a tagged variant with a
// pattern-matching table of the five queries, not an inheritance chain:
// Address, Bool and Function are constructor sugar over GIntM/BytesM,
// kept as distinct tags only because SelectorName differs.
package abitype

import "fmt"

// Kind tags which ABI descriptor variant a Descriptor holds.
type Kind int

const (
	KGIntM Kind = iota
	KAddress
	KBool
	KFixedMxN
	KBytesM
	KFunction
	KStaticArray
	KBytes
	KString
	KDynamicArray
	KTuple
)

// Descriptor is the ABI-level type value derived from a front-end type,
// carrying the five query operations (spec section 3.1). Descriptors are
// plain, immutable value objects with unexported fields. The struct holds a
// pointer and a slice, so it is not comparable with ==, and this package
// defines no equality method.
type Descriptor struct {
	kind Kind

	// GIntM / FixedMxN
	mBits  int
	signed bool

	// FixedMxN
	nPlaces int

	// BytesM
	mBytes int

	// StaticArray / DynamicArray
	sub    *Descriptor
	mElems int // StaticArray element count
	bound  int // DynamicArray element bound

	// Bytes / String
	bytesBound int

	// Tuple
	subs []Descriptor
}

// GIntM constructs an unsigned/signed m-bit integer descriptor. 0<m<=256,
// m%8==0; any other value is an InvariantViolation (spec section 7).
func GIntM(mBits int, signed bool) Descriptor {
	if mBits <= 0 || mBits > 256 || mBits%8 != 0 {
		panic(invariantViolation("GIntM: invalid m_bits %d", mBits))
	}
	return Descriptor{kind: KGIntM, mBits: mBits, signed: signed}
}

// Address is uint160, sugar kept distinct only for its selector name.
func Address() Descriptor {
	return Descriptor{kind: KAddress, mBits: 160, signed: false}
}

// Bool is uint8 restricted to {0,1} at the value level (spec section 1,
// Non-goals: this codec never validates that restriction), sugar kept
// distinct only for its selector name.
func Bool() Descriptor {
	return Descriptor{kind: KBool, mBits: 8, signed: false}
}

// FixedMxN constructs a fixed-point descriptor. 0<m<=256, m%8==0, 0<n<=80.
func FixedMxN(mBits, nPlaces int, signed bool) Descriptor {
	if mBits <= 0 || mBits > 256 || mBits%8 != 0 {
		panic(invariantViolation("FixedMxN: invalid m_bits %d", mBits))
	}
	if nPlaces <= 0 || nPlaces > 80 {
		panic(invariantViolation("FixedMxN: invalid n_places %d", nPlaces))
	}
	return Descriptor{kind: KFixedMxN, mBits: mBits, nPlaces: nPlaces, signed: signed}
}

// BytesM constructs a fixed-size binary descriptor. 0<m<=32.
func BytesM(mBytes int) Descriptor {
	if mBytes <= 0 || mBytes > 32 {
		panic(invariantViolation("BytesM: invalid m_bytes %d", mBytes))
	}
	return Descriptor{kind: KBytesM, mBytes: mBytes}
}

// Function is an address followed by a 4-byte selector, encoded
// identically to bytes24 (spec section 3.1 and
// original_source/vyper/codegen/abi.py — see SPEC_FULL.md section 7).
func Function() Descriptor {
	return Descriptor{kind: KFunction, mBytes: 24}
}

// StaticArray constructs a fixed-length array descriptor. m_elems>=0.
func StaticArray(sub Descriptor, mElems int) Descriptor {
	if mElems < 0 {
		panic(invariantViolation("StaticArray: invalid m_elems %d", mElems))
	}
	return Descriptor{kind: KStaticArray, sub: &sub, mElems: mElems}
}

// Bytes constructs a dynamic byte-string descriptor with a declared
// maximum length. bound>=0.
func Bytes(bound int) Descriptor {
	if bound < 0 {
		panic(invariantViolation("Bytes: negative bytes_bound %d", bound))
	}
	return Descriptor{kind: KBytes, bytesBound: bound}
}

// String constructs a dynamic string descriptor with a declared maximum
// length. bound>=0.
func String(bound int) Descriptor {
	if bound < 0 {
		panic(invariantViolation("String: negative bytes_bound %d", bound))
	}
	return Descriptor{kind: KString, bytesBound: bound}
}

// DynamicArray constructs a variable-length array descriptor with a
// declared maximum element count. Not exercised by the currently lowered
// front-end alphabet (spec section 4.B); kept for forward compatibility.
func DynamicArray(sub Descriptor, elemsBound int) Descriptor {
	if elemsBound < 0 {
		panic(invariantViolation("DynamicArray: negative bound %d", elemsBound))
	}
	return Descriptor{kind: KDynamicArray, sub: &sub, bound: elemsBound}
}

// Tuple constructs an ordered-member tuple descriptor.
func Tuple(subs []Descriptor) Descriptor {
	return Descriptor{kind: KTuple, subs: subs}
}

func (d Descriptor) Kind() Kind { return d.kind }

// Sub returns the element descriptor of a StaticArray/DynamicArray.
func (d Descriptor) Sub() Descriptor { return *d.sub }

// Elems returns the member descriptors of a Tuple, in order.
func (d Descriptor) Elems() []Descriptor { return d.subs }

// IsDynamic reports whether d has a tail (spec section 3.1).
func (d Descriptor) IsDynamic() bool {
	switch d.kind {
	case KStaticArray:
		return d.sub.IsDynamic()
	case KBytes, KString, KDynamicArray:
		return true
	case KTuple:
		for _, s := range d.subs {
			if s.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// StaticSize returns the slot size (bytes) this descriptor occupies in a
// parent aggregate's head (spec section 3.1).
func (d Descriptor) StaticSize() int {
	switch d.kind {
	case KStaticArray:
		return d.mElems * d.sub.StaticSize()
	case KTuple:
		if d.IsDynamic() {
			return 32
		}
		total := 0
		for _, s := range d.subs {
			total += s.StaticSize()
		}
		return total
	default:
		// all scalars, Bytes/String/DynamicArray (offset slot)
		return 32
	}
}

// DynamicSizeBound returns an upper bound on the bytes this descriptor
// contributes to the tail (spec section 3.1).
func (d Descriptor) DynamicSizeBound() int {
	switch d.kind {
	case KStaticArray:
		return d.mElems * d.sub.DynamicSizeBound()
	case KBytes, KString:
		return 32 + ceil32(d.bytesBound)
	case KDynamicArray:
		return d.sub.DynamicSizeBound() * d.bound
	case KTuple:
		total := 0
		for _, s := range d.subs {
			total += s.DynamicSizeBound()
		}
		return total
	default:
		return 0
	}
}

// SelectorName returns the canonical textual form used to derive a
// function selector hash (spec section 3.1, section 6 Bit-exact contract).
func (d Descriptor) SelectorName() string {
	switch d.kind {
	case KGIntM:
		if d.signed {
			return fmt.Sprintf("int%d", d.mBits)
		}
		return fmt.Sprintf("uint%d", d.mBits)
	case KAddress:
		return "address"
	case KBool:
		return "bool"
	case KFixedMxN:
		prefix := "u"
		if d.signed {
			prefix = ""
		}
		// Correctly interpolated, per spec section 9's open question:
		// the original source left this as a literal, unsubstituted string.
		return fmt.Sprintf("%sfixed%dx%d", prefix, d.mBits, d.nPlaces)
	case KBytesM:
		return fmt.Sprintf("bytes%d", d.mBytes)
	case KFunction:
		return "function"
	case KStaticArray:
		return fmt.Sprintf("%s[%d]", d.sub.SelectorName(), d.mElems)
	case KBytes:
		return "bytes"
	case KString:
		return "string"
	case KDynamicArray:
		return fmt.Sprintf("%s[]", d.sub.SelectorName())
	case KTuple:
		// unused at the Tuple level per spec section 3.1 ("— (unused here)");
		// still provided so tuple-of-tuple selector names can be assembled
		// by a caller that walks descriptors directly.
		names := make([]string, len(d.subs))
		for i, s := range d.subs {
			names[i] = s.SelectorName()
		}
		return "(" + joinComma(names) + ")"
	default:
		panic(unreachable("SelectorName: unknown kind %d", d.kind))
	}
}

// IsTuple reports whether the descriptor is treated as a tuple at the ABI
// level — i.e. whether the codec lays out its children as head slots (with
// a tail for dynamic members) rather than writing it as one value. Whether
// a member gets an offset word inside its parent depends on IsDynamic, not
// on IsTuple (spec section 3.1's discrepancy note: DynamicArray is NOT a
// tuple even though its tail carries an inline head/tail section;
// StaticArray IS a tuple even though it has no offset of its own).
func (d Descriptor) IsTuple() bool {
	switch d.kind {
	case KStaticArray, KTuple:
		return true
	default:
		return false
	}
}

func joinComma(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ","
		}
		out += s
	}
	return out
}

func ceil32(x int) int {
	return (x + 31) / 32 * 32
}
