// Command abidump loads a contract ABI — either JSON (go-ethereum's own
// format) or a handful of human-readable function signatures — and prints
// each function's descriptor tree, bit-exactness metadata and four-byte
// selector, then emits the IL program abi-encode would produce for one
// worked example.
//
// Adapted from the teacher's cmd/main.go: same -input/-var flag
// shape and the same Go-source-file/-var extraction path for embedding
// ABI text in a .go file, retargeted from "generate per-method Go
// marshal/unmarshal code" to "dump the descriptor algebra and a sample IL
// tree" (this module builds codec programs from fetype, not from ethabi,
// so there is no direct method-to-IL pipeline to generate against real
// ABI JSON — see DESIGN.md section 5).
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log"
	"os"
	"strings"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"golang.org/x/tools/imports"

	"github.com/vylang/abicore/abitype"
	"github.com/vylang/abicore/codec"
	"github.com/vylang/abicore/fetype"
	"github.com/vylang/abicore/il"
	"github.com/vylang/abicore/il/interp"
	"github.com/vylang/abicore/internal/convert"
	"github.com/vylang/abicore/internal/humanabi"
)

func main() {
	var (
		inputFile  = flag.String("input", "", "Input file (.json ABI or .go source file with -var)")
		varName    = flag.String("var", "", "Variable name holding human-readable signatures (for .go inputs)")
		structName = flag.String("struct", "", "If set, also emit a Go struct literal named <struct>Args for each method's inputs")
	)
	flag.Parse()

	if *inputFile == "" {
		log.Fatal("-input flag is required")
	}

	methods, err := loadMethods(*inputFile, *varName)
	if err != nil {
		log.Fatalf("failed to load ABI: %v", err)
	}

	for _, m := range methods {
		if err := dumpMethod(m); err != nil {
			log.Fatalf("dumping %s: %v", m.name, err)
		}
		if *structName != "" {
			src, err := renderArgsStruct(*structName, m)
			if err != nil {
				log.Fatalf("rendering struct for %s: %v", m.name, err)
			}
			fmt.Println(src)
		}
	}

	fmt.Println()
	fmt.Println("--- sample IL program: abi-encode(uint256, bytes) ---")
	dumpSampleEncode()
}

type namedInputs struct {
	name       string
	inputs     []ethabi.Type
	paramNames []string // parallel to inputs; "" where unknown
}

func loadMethods(inputFile, varName string) ([]namedInputs, error) {
	switch {
	case strings.HasSuffix(inputFile, ".json"):
		raw, err := os.ReadFile(inputFile)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", inputFile, err)
		}
		parsed, err := ethabi.JSON(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("parse ABI JSON: %w", err)
		}
		out := make([]namedInputs, 0, len(parsed.Methods))
		for _, m := range parsed.Methods {
			types := make([]ethabi.Type, len(m.Inputs))
			names := make([]string, len(m.Inputs))
			for i, arg := range m.Inputs {
				types[i] = arg.Type
				names[i] = arg.Name
			}
			out = append(out, namedInputs{name: m.Name, inputs: types, paramNames: names})
		}
		return out, nil

	case strings.HasSuffix(inputFile, ".go"):
		if varName == "" {
			return nil, fmt.Errorf("-var is required when -input is a .go file")
		}
		lines, err := extractStringSliceVar(inputFile, varName)
		if err != nil {
			return nil, err
		}
		out := make([]namedInputs, 0, len(lines))
		for _, line := range lines {
			sig, err := humanabi.Parse(line)
			if err != nil {
				return nil, err
			}
			types := make([]ethabi.Type, len(sig.Inputs))
			for i, d := range sig.Inputs {
				t, err := descriptorToEthType(d)
				if err != nil {
					return nil, err
				}
				types[i] = t
			}
			out = append(out, namedInputs{name: sig.Name, inputs: types, paramNames: sig.ParamNames})
		}
		return out, nil

	default:
		return nil, fmt.Errorf("unsupported input file type: %s (expected .go or .json)", inputFile)
	}
}

// descriptorToEthType is the narrow reverse of convert.ToDescriptor, needed
// only because humanabi parses straight into abitype.Descriptor while
// convert.MethodSelector wants ethabi.Type — both are equally valid ABI
// surfaces, so round-tripping a selector name through ethabi.NewType is
// simpler than a second selector-hashing code path.
func descriptorToEthType(d abitype.Descriptor) (ethabi.Type, error) {
	return ethabi.NewType(d.SelectorName(), "", nil)
}

func dumpMethod(m namedInputs) error {
	sel, err := convert.MethodSelectorHex(m.name, m.inputs)
	if err != nil {
		return err
	}

	fmt.Printf("function %s(", m.name)
	descs := make([]abitype.Descriptor, len(m.inputs))
	for i, t := range m.inputs {
		d, err := convert.ToDescriptor(t)
		if err != nil {
			return err
		}
		descs[i] = d
		if i > 0 {
			fmt.Print(", ")
		}
		fmt.Print(d.SelectorName())
	}
	fmt.Printf(") selector=%s\n", sel)

	for i, d := range descs {
		field := convert.FieldName(m.paramNames[i])
		if field == "" {
			field = convert.FieldName(fmt.Sprintf("arg%d", i))
		}
		fmt.Printf("  %s: static_size=%d dynamic_size_bound=%d is_dynamic=%v is_tuple=%v\n",
			field, d.StaticSize(), d.DynamicSizeBound(), d.IsDynamic(), d.IsTuple())
	}
	return nil
}

// dumpSampleEncode runs the full fetype -> il -> interp pipeline on one
// hand-built value (a tuple of a uint256 and a dynamic bytes), printing the
// emitted program and its executed byte layout — the part real ABI JSON
// input cannot drive directly, since codec.Encode works over the
// compiler's front-end type tree, not over ethabi.Type (DESIGN.md
// section 5).
func dumpSampleEncode() {
	tt := fetype.TupleType([]string{"id", "memo"}, []fetype.Type{
		fetype.BaseType(fetype.Uint256), fetype.ByteArrayType(32),
	})
	id := il.Lit(42).WithType(fetype.BaseType(fetype.Uint256))
	memo := il.BytesData([]byte("hello")).WithType(fetype.ByteArrayType(32))
	value := il.Multi(id, memo).WithType(tt)

	prog, err := codec.Encode(il.Lit(0), value, nil, true)
	if err != nil {
		log.Fatalf("encode: %v", err)
	}

	fmt.Println(prog.String())

	ret, mem, err := interp.Run(prog)
	if err != nil {
		log.Fatalf("run: %v", err)
	}
	fmt.Printf("wrote %d bytes (returned length %s): %x\n", len(mem), ret, mem)
}

// renderArgsStruct emits a Go struct literal for a method's argument list,
// named <name>Args, and formats it with goimports the way the
// teacher's generator.GenerateFromABI formats its generated code (root
// generator.go) rather than emitting raw unformatted text.
func renderArgsStruct(name string, m namedInputs) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "package main\n\ntype %sArgs struct {\n", convert.FieldName(name))
	for i, t := range m.inputs {
		d, err := convert.ToDescriptor(t)
		if err != nil {
			return "", err
		}
		field := convert.FieldName(m.paramNames[i])
		if field == "" {
			field = convert.FieldName(fmt.Sprintf("arg%d", i))
		}
		fmt.Fprintf(&b, "\t%s %s // %s\n", field, goFieldType(d), d.SelectorName())
	}
	b.WriteString("}\n")

	out, err := imports.Process("abidump_struct.go", []byte(b.String()), nil)
	if err != nil {
		return "", fmt.Errorf("format generated struct: %w", err)
	}
	return string(out), nil
}

// goFieldType is a rough, display-only mapping from an ABI descriptor to the
// Go type a hand-written binding would declare for it; it does not need to
// be exact since nothing consumes its output programmatically.
func goFieldType(d abitype.Descriptor) string {
	switch {
	case d.IsTuple():
		return "struct{ /* " + d.SelectorName() + " */ }"
	case d.SelectorName() == "address":
		return "[20]byte"
	case d.SelectorName() == "bool":
		return "bool"
	case d.SelectorName() == "bytes" || d.SelectorName() == "string":
		return "[]byte"
	default:
		return "*big.Int"
	}
}

func extractStringSliceVar(filename, varName string) ([]string, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	var lines []string
	ast.Inspect(f, func(n ast.Node) bool {
		decl, ok := n.(*ast.GenDecl)
		if !ok || decl.Tok != token.VAR {
			return true
		}
		for _, spec := range decl.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for i, name := range vs.Names {
				if name.Name != varName || i >= len(vs.Values) {
					continue
				}
				comp, ok := vs.Values[i].(*ast.CompositeLit)
				if !ok {
					continue
				}
				for _, elt := range comp.Elts {
					if lit, ok := elt.(*ast.BasicLit); ok && lit.Kind == token.STRING {
						unquoted := strings.Trim(lit.Value, "`\"")
						lines = append(lines, unquoted)
					}
				}
			}
		}
		return true
	})

	if len(lines) == 0 {
		return nil, fmt.Errorf("variable %s not found or empty in %s", varName, filename)
	}
	return lines, nil
}
