package field

import "encoding/binary"

// U8 reads the unsigned byte at off.
func U8(b []byte, off int) (uint8, error) {
	if err := check(len(b), off, 1); err != nil {
		return 0, err
	}
	return b[off], nil
}

// I8 reads the byte at off as a two's-complement signed value.
func I8(b []byte, off int) (int8, error) {
	if err := check(len(b), off, 1); err != nil {
		return 0, err
	}
	return int8(b[off]), nil
}

// U16LE reads a little-endian uint16 at off.
func U16LE(b []byte, off int) (uint16, error) {
	if err := check(len(b), off, 2); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b[off:]), nil
}

// U32LE reads a little-endian uint32 at off.
func U32LE(b []byte, off int) (uint32, error) {
	if err := check(len(b), off, 4); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[off:]), nil
}

// U64LE reads a little-endian uint64 at off.
func U64LE(b []byte, off int) (uint64, error) {
	if err := check(len(b), off, 8); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b[off:]), nil
}

// I16LE reads a little-endian int16 at off.
func I16LE(b []byte, off int) (int16, error) {
	v, err := U16LE(b, off)
	return int16(v), err
}

// I32LE reads a little-endian int32 at off.
func I32LE(b []byte, off int) (int32, error) {
	v, err := U32LE(b, off)
	return int32(v), err
}

// I64LE reads a little-endian int64 at off.
func I64LE(b []byte, off int) (int64, error) {
	v, err := U64LE(b, off)
	return int64(v), err
}
