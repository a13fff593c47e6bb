package abitype

import (
	"errors"
	"fmt"
)

// Two error kinds, matching spec section 7: both indicate a compiler bug,
// are never recovered or retried, and abort the current compilation via
// panic with a diagnostic naming the violated condition — mirroring the
// teacher's own "unknown static type" / "impossible" panics in
// generator.go for cases the type system should have excluded.
var (
	// ErrInvariantViolation tags an illegal descriptor parameter or an
	// unrecognized front-end type. A too-small encode buffer is reported
	// separately, as codec.ErrBufferTooSmall.
	ErrInvariantViolation = errors.New("abitype: invariant violation")

	// ErrUnreachable tags a case the type system should have excluded.
	ErrUnreachable = errors.New("abitype: unreachable")
)

func invariantViolation(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}

func unreachable(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrUnreachable, fmt.Sprintf(format, args...))
}
