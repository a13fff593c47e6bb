// Package convert lowers go-ethereum's accounts/abi.Type — the ABI surface
// real contract JSON and human-readable signatures actually produce — into
// this module's abitype.Descriptor algebra (abitype.AbiTypeOf's counterpart
// for real-world input, rather than the compiler's fixed fetype alphabet).
//
// Grounded on the teacher's GenTypeIdentifier/GenTupleIdentifier/
// TupleStructName (root utils.go, struct.go): those walk the same
// ethabi.Type switch to name generated Go identifiers; ToDescriptor walks it
// to build the codec's own descriptor tree instead.
package convert

import (
	"encoding/hex"
	"fmt"
	"strings"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vylang/abicore/abitype"
)

// titleCaser exports ABI parameter names as Go-style exported identifiers.
// Grounded on the teacher's own var Title = cases.Title(...) (root
// generator.go, generator/utils.go), which did the same for its generated
// struct fields; NoLower preserves an already-capitalized acronym like "ID".
var titleCaser = cases.Title(language.English, cases.NoLower)

// FieldName turns an ABI parameter name (or a fallback like "arg0") into the
// exported Go identifier a hand-written binding would use for it.
func FieldName(name string) string {
	if name == "" {
		return ""
	}
	return titleCaser.String(name)
}

// ToDescriptor lowers a single go-ethereum ABI type into an abitype.Descriptor.
func ToDescriptor(t ethabi.Type) (abitype.Descriptor, error) {
	switch t.T {
	case ethabi.UintTy:
		return abitype.GIntM(t.Size, false), nil
	case ethabi.IntTy:
		return abitype.GIntM(t.Size, true), nil
	case ethabi.AddressTy:
		return abitype.Address(), nil
	case ethabi.BoolTy:
		return abitype.Bool(), nil
	case ethabi.StringTy:
		return abitype.String(0), nil
	case ethabi.BytesTy:
		return abitype.Bytes(0), nil
	case ethabi.FixedBytesTy:
		return abitype.BytesM(t.Size), nil
	case ethabi.FunctionTy:
		return abitype.Function(), nil
	case ethabi.FixedPointTy:
		// go-ethereum does not carry a decimal place count for fixedMxN; the
		// ecosystem has never shipped a Solidity compiler that emits one, so
		// this mirrors the teacher's own stance (pkg/abi/types.go never
		// implements FixedPointTy either) by using the ABI default 10^18.
		return abitype.FixedMxN(t.Size, 18, true), nil
	case ethabi.SliceTy:
		elem, err := ToDescriptor(*t.Elem)
		if err != nil {
			return abitype.Descriptor{}, err
		}
		return abitype.DynamicArray(elem, 0), nil
	case ethabi.ArrayTy:
		elem, err := ToDescriptor(*t.Elem)
		if err != nil {
			return abitype.Descriptor{}, err
		}
		return abitype.StaticArray(elem, t.Size), nil
	case ethabi.TupleTy:
		subs := make([]abitype.Descriptor, len(t.TupleElems))
		for i, e := range t.TupleElems {
			d, err := ToDescriptor(*e)
			if err != nil {
				return abitype.Descriptor{}, err
			}
			subs[i] = d
		}
		return abitype.Tuple(subs), nil
	default:
		return abitype.Descriptor{}, fmt.Errorf("convert: unsupported ABI type %s", t.String())
	}
}

// MethodSelector computes the 4-byte function selector for m the way the
// ABI wire format demands: keccak256 of "name(type1,type2,...)" using each
// descriptor's own SelectorName, not ethabi's Method.Sig (this module's
// descriptors are the ground truth for the selector-name text, including
// the FixedMxN interpolation fix noted in SPEC_FULL.md section 8).
//
// Adapted from the teacher's root utils.go identifier()/GenTupleIdentifier,
// which hash a similar joined-signature string for generated-code naming
// rather than for the wire selector.
func MethodSelector(name string, inputs []ethabi.Type) ([4]byte, error) {
	names := make([]string, len(inputs))
	for i, t := range inputs {
		d, err := ToDescriptor(t)
		if err != nil {
			return [4]byte{}, err
		}
		names[i] = d.SelectorName()
	}
	sig := fmt.Sprintf("%s(%s)", name, strings.Join(names, ","))
	hash := crypto.Keccak256([]byte(sig))

	var sel [4]byte
	copy(sel[:], hash[:4])
	return sel, nil
}

// MethodSelectorHex is MethodSelector formatted for display.
func MethodSelectorHex(name string, inputs []ethabi.Type) (string, error) {
	sel, err := MethodSelector(name, inputs)
	if err != nil {
		return "", err
	}
	return "0x" + hex.EncodeToString(sel[:]), nil
}
