package field

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds indicates a requested field does not fit within the buffer:
// the offset is negative, or offset plus width exceeds the buffer length.
// Every failure returned by this package wraps it.
var ErrOutOfBounds = errors.New("field: out of bounds")

func boundsErr(off, width, bufLen int) error {
	return fmt.Errorf("%w: off=%d width=%d len=%d", ErrOutOfBounds, off, width, bufLen)
}

// check validates that width bytes starting at off fit in a buffer of bufLen
// bytes. width is a small positive constant here, so bufLen-width cannot
// underflow and the comparison is safe even for off near MaxInt.
func check(bufLen, off, width int) error {
	if off < 0 || off > bufLen-width {
		return boundsErr(off, width, bufLen)
	}
	return nil
}
