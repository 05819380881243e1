// Package field decodes fixed-width integer and string fields from raw byte
// buffers, the way on-disk structures of binary image formats store them.
//
// All readers take an explicit offset into a caller-owned slice and return a
// typed OutOfBounds error when the requested field does not fit the buffer.
// The functions never mutate the buffer, never retain it past the call, and
// hold no state, so they are safe for unsynchronized concurrent use.
//
// Multi-byte fields default to little-endian assembly; big-endian variants
// carry the BE suffix for formats that store both byte orders side by side.
package field
