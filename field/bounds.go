package field

import (
	"fmt"
	"math"
)

// addSafe adds two non-negative ints, returning ok = false on overflow.
func addSafe(a, b int) (int, bool) {
	if a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// mulSafe multiplies two non-negative ints, returning ok = false on overflow.
// Needed for count * elementSize in array validation.
func mulSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// Has reports whether b[off:off+n] is within bounds.
func Has(b []byte, off, n int) bool {
	_, err := Slice(b, off, n)
	return err == nil
}

// Slice returns the sub-slice [off:off+n] when it fits within b, and
// ErrOutOfBounds otherwise. It is the raw-bytes counterpart of the typed
// readers, for variable-width fields such as identifiers and padding runs.
func Slice(b []byte, off, n int) ([]byte, error) {
	if off < 0 || n < 0 {
		return nil, boundsErr(off, n, len(b))
	}
	end, ok := addSafe(off, n)
	if !ok || end > len(b) {
		return nil, boundsErr(off, n, len(b))
	}
	return b[off:end], nil
}

// CheckArray validates that count elements of elemSize bytes fit in a buffer
// of bufLen bytes starting at off, guarding every intermediate product and
// sum against overflow. It returns the end offset of the run:
//
//	end, err := field.CheckArray(len(data), off, int(count), recordSize)
//	if err != nil {
//	    return fmt.Errorf("directory records: %w", err)
//	}
//	// safe to iterate from off to end
func CheckArray(bufLen, off, count, elemSize int) (int, error) {
	if off < 0 || count < 0 || elemSize < 0 {
		return 0, fmt.Errorf("%w: off=%d count=%d elemSize=%d", ErrOutOfBounds, off, count, elemSize)
	}
	total, ok := mulSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("%w: count=%d * elemSize=%d overflows", ErrOutOfBounds, count, elemSize)
	}
	end, ok := addSafe(off, total)
	if !ok || end > bufLen {
		return 0, boundsErr(off, total, bufLen)
	}
	return end, nil
}
