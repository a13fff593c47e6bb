package il

import "errors"

// Sentinel errors for the word-codec helpers and the reference
// interpreter. Mirrors the teacher's errors.go: package-level error
// values rather than ad hoc fmt.Errorf strings at the leaves.
var (
	// ErrNegativeValue is returned when a negative value is given for an
	// unsigned-only encoding.
	ErrNegativeValue = errors.New("il: negative value for unsigned encoding")

	// ErrIntegerTooLarge is returned when a value does not fit the
	// declared bit width.
	ErrIntegerTooLarge = errors.New("il: integer too large for declared width")

	// ErrBytesTooLarge is returned when a bytesM literal exceeds M bytes.
	ErrBytesTooLarge = errors.New("il: byte string exceeds declared width")

	// ErrUnboundSymbol is returned by the reference interpreter when a
	// node references a local that was never bound by an enclosing With.
	ErrUnboundSymbol = errors.New("il: unbound symbol")

	// ErrUnknownOperator is returned by the reference interpreter for any
	// Node.Value outside the vocabulary listed in the Node doc.
	ErrUnknownOperator = errors.New("il: unknown operator")

	// ErrAddressOutOfRange guards the reference interpreter's memory
	// model against runaway addresses in malformed input.
	ErrAddressOutOfRange = errors.New("il: address out of range")
)
