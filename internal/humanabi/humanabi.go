// Package humanabi parses human-readable function signatures directly into
// abitype.Descriptor trees, bypassing the JSON ABI intermediate the teacher
// routed through (root human.go parses into a JSON-ABI map, which then goes
// through go-ethereum's abi.JSON and internal/convert.ToDescriptor). This
// package serves only the subset SPEC_FULL.md's domain stack needs —
// function parameter lists — and skips events, constructors, structs and
// state-mutability, none of which bear on the descriptor algebra.
//
// Grounded on the teacher's root human.go: paramRegex/typeWithoutTupleRegex
// and the hand-rolled splitByCommaOutsideParentheses/parenthesis-counting
// routines reappear here verbatim in spirit, retargeted to emit
// abitype.Descriptor values instead of map[string]interface{} JSON nodes.
package humanabi

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vylang/abicore/abitype"
)

var (
	functionRegex = regexp.MustCompile(`^function\s+(\w+)\s*\((.*)\)$`)
	typeNameRegex = regexp.MustCompile(`^(\S+?)((?:\[\d*\])*)$`)
)

// Signature is one parsed function signature: its name and the descriptors
// of its ordered parameter list.
type Signature struct {
	Name   string
	Inputs []abitype.Descriptor

	// ParamNames holds each parameter's declared name, or "" when the
	// signature omitted one (e.g. a bare tuple or array type with no
	// trailing identifier). Parallel to Inputs.
	ParamNames []string
}

// Parse parses a single line of the form "function name(type1,type2,...)".
// Return clauses, visibility/state-mutability modifiers, events and structs
// are not supported — this helper exists only to get parameter descriptors
// for the codec demo in cmd/abidump, not to be a full ABI front end.
func Parse(line string) (Signature, error) {
	line = strings.TrimSpace(line)
	m := functionRegex.FindStringSubmatch(line)
	if m == nil {
		return Signature{}, fmt.Errorf("humanabi: unrecognized signature: %q", line)
	}

	params, err := splitTopLevel(m[2])
	if err != nil {
		return Signature{}, err
	}

	inputs := make([]abitype.Descriptor, len(params))
	names := make([]string, len(params))
	for i, p := range params {
		p = strings.TrimSpace(p)
		d, err := parseType(p)
		if err != nil {
			return Signature{}, fmt.Errorf("humanabi: parameter %d of %q: %w", i, line, err)
		}
		inputs[i] = d
		names[i] = paramName(p)
	}

	return Signature{Name: m[1], Inputs: inputs, ParamNames: names}, nil
}

var identRegex = regexp.MustCompile(`^[A-Za-z_]\w*$`)

// paramName returns a parameter's declared trailing identifier, if any
// ("uint256 amount" -> "amount"), or "" for a bare type with no name
// (including a tuple/array type whose last whitespace-separated field is
// still part of the type, e.g. a trailing "]" or ")").
func paramName(p string) string {
	fields := strings.Fields(p)
	if len(fields) < 2 {
		return ""
	}
	last := fields[len(fields)-1]
	if !identRegex.MatchString(last) {
		return ""
	}
	return last
}

// splitTopLevel splits a parameter list on commas that are not nested
// inside a tuple's parentheses.
func splitTopLevel(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var parts []string
	var cur strings.Builder
	depth := 0
	for _, ch := range s {
		switch ch {
		case '(':
			depth++
			cur.WriteRune(ch)
		case ')':
			depth--
			cur.WriteRune(ch)
		case ',':
			if depth == 0 {
				parts = append(parts, cur.String())
				cur.Reset()
				continue
			}
			cur.WriteRune(ch)
		default:
			cur.WriteRune(ch)
		}
	}
	parts = append(parts, cur.String())

	if depth != 0 {
		return nil, fmt.Errorf("humanabi: unbalanced parentheses in %q", s)
	}
	return parts, nil
}

// parseType parses a single parameter's type text, including any trailing
// array brackets, into a descriptor. A tuple parameter may carry a trailing
// name; parseType only looks at the leading "(...)" type and ignores it.
func parseType(typeStr string) (abitype.Descriptor, error) {
	if strings.HasPrefix(typeStr, "(") {
		return parseTupleType(typeStr)
	}

	// Strip a trailing parameter name, if present (e.g. "uint256 amount").
	fields := strings.Fields(typeStr)
	if len(fields) == 0 {
		return abitype.Descriptor{}, fmt.Errorf("humanabi: empty type")
	}
	typeStr = fields[0]

	m := typeNameRegex.FindStringSubmatch(typeStr)
	if m == nil {
		return abitype.Descriptor{}, fmt.Errorf("humanabi: invalid type %q", typeStr)
	}
	base, brackets := m[1], m[2]

	d, err := parseBaseType(base)
	if err != nil {
		return abitype.Descriptor{}, err
	}
	return wrapArrays(d, brackets)
}

func parseTupleType(s string) (abitype.Descriptor, error) {
	depth := 0
	end := -1
	for i, ch := range s {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				end = i
			}
		}
		if end != -1 {
			break
		}
	}
	if end == -1 {
		return abitype.Descriptor{}, fmt.Errorf("humanabi: unbalanced tuple in %q", s)
	}

	inner, err := splitTopLevel(s[1:end])
	if err != nil {
		return abitype.Descriptor{}, err
	}
	subs := make([]abitype.Descriptor, len(inner))
	for i, p := range inner {
		d, err := parseType(strings.TrimSpace(p))
		if err != nil {
			return abitype.Descriptor{}, err
		}
		subs[i] = d
	}
	tup := abitype.Tuple(subs)

	brackets := strings.TrimSpace(s[end+1:])
	// A trailing name may follow the brackets; only the bracket run matters.
	if idx := strings.IndexAny(brackets, " \t"); idx != -1 {
		brackets = brackets[:idx]
	}
	return wrapArrays(tup, brackets)
}

// wrapArrays applies a run of "[]"/"[N]" suffixes left to right: the
// bracket adjacent to the base type wraps first (innermost), and the
// right-most bracket group wraps last (outermost) — e.g. T[2][3] is an
// array of 3 elements each of type T[2], matching Solidity's declaration
// order.
func wrapArrays(elem abitype.Descriptor, brackets string) (abitype.Descriptor, error) {
	groups := regexp.MustCompile(`\[\d*\]`).FindAllString(brackets, -1)
	for i := 0; i < len(groups); i++ {
		g := groups[i]
		size := g[1 : len(g)-1]
		if size == "" {
			elem = abitype.DynamicArray(elem, 0)
			continue
		}
		n, err := strconv.Atoi(size)
		if err != nil {
			return abitype.Descriptor{}, fmt.Errorf("humanabi: invalid array size %q", g)
		}
		elem = abitype.StaticArray(elem, n)
	}
	return elem, nil
}

func parseBaseType(base string) (abitype.Descriptor, error) {
	switch {
	case base == "address":
		return abitype.Address(), nil
	case base == "bool":
		return abitype.Bool(), nil
	case base == "string":
		return abitype.String(0), nil
	case base == "bytes":
		return abitype.Bytes(0), nil
	case base == "function":
		return abitype.Function(), nil
	case strings.HasPrefix(base, "bytes"):
		n, err := strconv.Atoi(base[len("bytes"):])
		if err != nil {
			return abitype.Descriptor{}, fmt.Errorf("humanabi: invalid fixed-bytes type %q", base)
		}
		return abitype.BytesM(n), nil
	case strings.HasPrefix(base, "uint"):
		return parseIntType(base, "uint", false)
	case strings.HasPrefix(base, "int"):
		return parseIntType(base, "int", true)
	default:
		return abitype.Descriptor{}, fmt.Errorf("humanabi: unrecognized type %q (struct references are not supported)", base)
	}
}

func parseIntType(base, prefix string, signed bool) (abitype.Descriptor, error) {
	sizeStr := base[len(prefix):]
	if sizeStr == "" {
		return abitype.GIntM(256, signed), nil
	}
	n, err := strconv.Atoi(sizeStr)
	if err != nil {
		return abitype.Descriptor{}, fmt.Errorf("humanabi: invalid integer type %q", base)
	}
	return abitype.GIntM(n, signed), nil
}
