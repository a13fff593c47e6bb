// Package interp is a reference execution model for package il's node
// trees: a flat, growable byte memory plus 256-bit word arithmetic,
// enough to discharge this codec's own bit-exact-output and round-trip
// test suite (spec section 8). It is explicitly not a general EVM — real
// execution, gas accounting and the rest of the EVM instruction set are
// out of scope (spec section 1, Non-goals: "no EVM execution").
package interp

import (
	"fmt"
	"math"

	"github.com/holiman/uint256"

	"github.com/vylang/abicore/il"
)

// Machine holds the flat memory buffer and the lexical environment for one
// top-level program evaluation.
type Machine struct {
	Memory []byte
	env    map[string]*uint256.Int
}

func New() *Machine {
	return &Machine{env: make(map[string]*uint256.Int)}
}

// Run evaluates program and returns its final word, if any (the trailing
// return value of an encoder/decoder program that was built with
// returns=true), plus the resulting memory.
func Run(program *il.Node) (*uint256.Int, []byte, error) {
	m := New()
	v, err := m.Eval(program)
	return v, m.Memory, err
}

// Eval evaluates a single node. Side-effecting operators (mstore, set,
// mstoredata, zeropad) return a value too — callers that only care about
// the side effect (e.g. a seq item) just discard it.
func (m *Machine) Eval(n *il.Node) (*uint256.Int, error) {
	if n == nil {
		return uint256.NewInt(0), nil
	}

	switch n.Value {
	case "lit":
		v, overflow := uint256.FromBig(n.Int)
		if overflow {
			return nil, fmt.Errorf("interp: literal %s overflows 256 bits", n.Int)
		}
		return v, nil

	case "seq":
		var last *uint256.Int = uint256.NewInt(0)
		for _, a := range n.Args {
			v, err := m.Eval(a)
			if err != nil {
				return nil, err
			}
			last = v
		}
		return last, nil

	case "with":
		name := n.Args[0].Value
		init, err := m.Eval(n.Args[1])
		if err != nil {
			return nil, err
		}
		old, hadOld := m.env[name]
		m.env[name] = init
		result, err := m.Eval(n.Args[2])
		if hadOld {
			m.env[name] = old
		} else {
			delete(m.env, name)
		}
		return result, err

	case "set":
		name := n.Args[0].Value
		if _, ok := m.env[name]; !ok {
			return nil, fmt.Errorf("%w: %s", il.ErrUnboundSymbol, name)
		}
		v, err := m.Eval(n.Args[1])
		if err != nil {
			return nil, err
		}
		m.env[name] = v
		return v, nil

	case "mstore":
		addr, err := m.evalAddr(n.Args[0])
		if err != nil {
			return nil, err
		}
		word, err := m.Eval(n.Args[1])
		if err != nil {
			return nil, err
		}
		m.writeWord(addr, word)
		return word, nil

	case "mload":
		addr, err := m.evalAddr(n.Args[0])
		if err != nil {
			return nil, err
		}
		return m.readWord(addr), nil

	case "add":
		a, err := m.Eval(n.Args[0])
		if err != nil {
			return nil, err
		}
		b, err := m.Eval(n.Args[1])
		if err != nil {
			return nil, err
		}
		return new(uint256.Int).Add(a, b), nil

	case "ceil32":
		x, err := m.Eval(n.Args[0])
		if err != nil {
			return nil, err
		}
		return ceil32(x), nil

	case "mstoredata":
		addr, err := m.evalAddr(n.Args[0])
		if err != nil {
			return nil, err
		}
		m.ensureLen(addr + len(n.Data))
		copy(m.Memory[addr:], n.Data)
		return uint256.NewInt(uint64(len(n.Data))), nil

	case "mcopy":
		dst, err := m.evalAddr(n.Args[0])
		if err != nil {
			return nil, err
		}
		src, err := m.evalAddr(n.Args[1])
		if err != nil {
			return nil, err
		}
		length, err := m.Eval(n.Args[2])
		if err != nil {
			return nil, err
		}
		l := int(length.Uint64())
		m.ensureLen(src + l)
		m.ensureLen(dst + l)
		tmp := make([]byte, l)
		copy(tmp, m.Memory[src:src+l])
		copy(m.Memory[dst:dst+l], tmp)
		return uint256.NewInt(uint64(l)), nil

	case "zeropad":
		lenWordAddr, err := m.evalAddr(n.Args[0])
		if err != nil {
			return nil, err
		}
		length := int(m.readWord(lenWordAddr).Uint64())
		dataStart := lenWordAddr + 32
		padEnd := dataStart + pad32(length)
		m.ensureLen(padEnd)
		for i := dataStart + length; i < padEnd; i++ {
			m.Memory[i] = 0
		}
		return uint256.NewInt(0), nil

	default:
		if len(n.Args) == 0 {
			v, ok := m.env[n.Value]
			if !ok {
				return nil, fmt.Errorf("%w: %s", il.ErrUnboundSymbol, n.Value)
			}
			return v, nil
		}
		return nil, fmt.Errorf("%w: %s", il.ErrUnknownOperator, n.Value)
	}
}

func (m *Machine) evalAddr(n *il.Node) (int, error) {
	v, err := m.Eval(n)
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() || v.Uint64() > uint64(math.MaxInt32) {
		return 0, il.ErrAddressOutOfRange
	}
	return int(v.Uint64()), nil
}

func (m *Machine) ensureLen(end int) {
	if len(m.Memory) < end {
		m.Memory = append(m.Memory, make([]byte, end-len(m.Memory))...)
	}
}

func (m *Machine) writeWord(addr int, word *uint256.Int) {
	m.ensureLen(addr + 32)
	b := word.Bytes32()
	copy(m.Memory[addr:addr+32], b[:])
}

func (m *Machine) readWord(addr int) *uint256.Int {
	m.ensureLen(addr + 32)
	var b [32]byte
	copy(b[:], m.Memory[addr:addr+32])
	return new(uint256.Int).SetBytes(b[:])
}

func ceil32(x *uint256.Int) *uint256.Int {
	return pad32Word(x)
}

func pad32Word(x *uint256.Int) *uint256.Int {
	rem := new(uint256.Int).Mod(x, uint256.NewInt(32))
	if rem.IsZero() {
		return new(uint256.Int).Set(x)
	}
	return new(uint256.Int).Add(x, new(uint256.Int).Sub(uint256.NewInt(32), rem))
}

func pad32(n int) int {
	return (n + 31) / 32 * 32
}
