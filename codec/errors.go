package codec

import (
	"errors"
	"fmt"
)

// ErrBufferTooSmall is the codec-level spelling of spec section 4.D's
// encode precondition: buf-size, when supplied, must be at least
// static-size + dynamic-size-bound of the encoded type. Per spec section 9
// this uses the documented byte-unit contract, not the source's
// inconsistent factor-of-32.
var ErrBufferTooSmall = errors.New("codec: buffer provided to Encode is not large enough")

func bufferTooSmall(bufSize, needed int) error {
	return fmt.Errorf("%w: have %d, need %d", ErrBufferTooSmall, bufSize, needed)
}
