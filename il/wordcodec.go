package il

import (
	"math"
	"math/big"
)

// Word-level encode/decode helpers: every ABI scalar, regardless of its
// front-end flavor (GIntM, Address, Bool, FixedMxN, BytesM, Function), is
// ultimately just a raw 32-byte big-endian word once it reaches memory —
// exactly like an EVM stack word. These helpers turn a semantic scalar
// value into that raw word (and back), so MStore/MLoad never need to know
// about signedness or byte-alignment: they just move 256-bit words.
//
// Adapted from the teacher's pkg/abi/encoding.go and utils.go (EncodeBigInt/
// DecodeBigInt, Pad32) — the same two's-complement and byte-count math,
// retargeted from "encode a Go value into an ABI byte slice" to "encode a
// scalar value into the raw word an IL mstore writes".

var tt256 = new(big.Int).Lsh(big.NewInt(1), 256)

// Pad32 rounds n up to the next multiple of 32 — the Go-side counterpart of
// the IL "ceil32" operator, used when the emitter needs a compile-time
// constant rather than a runtime value.
func Pad32(n int) int {
	return (n + 31) / 32 * 32
}

// EncodeGIntMWord encodes a signed or unsigned m-bit integer into its raw
// 256-bit ABI word (two's complement for negative signed values).
func EncodeGIntMWord(mBits int, signed bool, v *big.Int) (*big.Int, error) {
	if v.Sign() < 0 && !signed {
		return nil, ErrNegativeValue
	}
	width := uint(mBits)
	if signed {
		width--
	}
	limit := new(big.Int).Lsh(big.NewInt(1), width)
	if v.Cmp(limit) >= 0 || v.Cmp(new(big.Int).Neg(limit)) < 0 {
		return nil, ErrIntegerTooLarge
	}
	if v.Sign() < 0 {
		return new(big.Int).And(v, new(big.Int).Sub(tt256, big.NewInt(1))), nil
	}
	return new(big.Int).Set(v), nil
}

// DecodeGIntMWord recovers the signed or unsigned m-bit integer a raw word holds.
func DecodeGIntMWord(mBits int, signed bool, word *big.Int) (*big.Int, error) {
	v := new(big.Int).Set(word)
	if !signed {
		return v, nil
	}
	// A word with bit 255 set is a sign-extended negative value, the form
	// EncodeGIntMWord writes for every width.
	if v.Cmp(new(big.Int).Lsh(big.NewInt(1), 255)) >= 0 {
		return new(big.Int).Sub(v, tt256), nil
	}
	if mBits < 256 {
		signBoundary := new(big.Int).Lsh(big.NewInt(1), uint(mBits-1))
		if v.Cmp(signBoundary) >= 0 {
			modulus := new(big.Int).Lsh(big.NewInt(1), uint(mBits))
			v.Sub(v, modulus)
		}
	}
	return v, nil
}

// EncodeBytesMWord left-aligns a fixed-size byte string (bytesM, 0<M<=32)
// into its raw word — unlike integers, bytesM data occupies the
// most-significant bytes and is zero-padded on the right.
func EncodeBytesMWord(mBytes int, data []byte) (*big.Int, error) {
	if len(data) > mBytes {
		return nil, ErrBytesTooLarge
	}
	buf := make([]byte, 32)
	copy(buf, data) // left-aligned; remaining bytes already zero
	return new(big.Int).SetBytes(buf), nil
}

// DecodeBytesMWord recovers the mBytes left-aligned bytes from a raw word.
func DecodeBytesMWord(mBytes int, word *big.Int) []byte {
	buf := make([]byte, 32)
	word.FillBytes(buf)
	return buf[:mBytes]
}

func EncodeBoolWord(b bool) *big.Int {
	if b {
		return big.NewInt(1)
	}
	return big.NewInt(0)
}

// DecodeBoolWord interprets a raw word as a bool. Per spec, the codec never
// validates that the word is restricted to {0,1} (that is a runtime
// concern explicitly out of scope); any nonzero word decodes true.
func DecodeBoolWord(word *big.Int) bool {
	return word.Sign() != 0
}

func EncodeAddressWord(addr [20]byte) *big.Int {
	buf := make([]byte, 32)
	copy(buf[12:], addr[:])
	return new(big.Int).SetBytes(buf)
}

func DecodeAddressWord(word *big.Int) [20]byte {
	var addr [20]byte
	buf := make([]byte, 32)
	word.FillBytes(buf)
	copy(addr[:], buf[12:32])
	return addr
}

// maxMemAddr bounds addresses the reference interpreter will allocate for,
// guarding against runaway buffers in malformed test input.
const maxMemAddr = math.MaxInt32
