package field

import "encoding/binary"

// Checked encoders mirroring the readers. They exist for building fixtures
// and for writers layered on the same wire format; a decoded value written
// back with the matching Put round-trips bit for bit.

// PutU16LE writes v at off in little-endian order.
func PutU16LE(b []byte, off int, v uint16) error {
	if err := check(len(b), off, 2); err != nil {
		return err
	}
	binary.LittleEndian.PutUint16(b[off:], v)
	return nil
}

// PutU32LE writes v at off in little-endian order.
func PutU32LE(b []byte, off int, v uint32) error {
	if err := check(len(b), off, 4); err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b[off:], v)
	return nil
}

// PutU64LE writes v at off in little-endian order.
func PutU64LE(b []byte, off int, v uint64) error {
	if err := check(len(b), off, 8); err != nil {
		return err
	}
	binary.LittleEndian.PutUint64(b[off:], v)
	return nil
}

// PutI32LE writes v at off in little-endian order.
func PutI32LE(b []byte, off int, v int32) error {
	return PutU32LE(b, off, uint32(v))
}

// PutU16BE writes v at off in big-endian order.
func PutU16BE(b []byte, off int, v uint16) error {
	if err := check(len(b), off, 2); err != nil {
		return err
	}
	binary.BigEndian.PutUint16(b[off:], v)
	return nil
}

// PutU32BE writes v at off in big-endian order.
func PutU32BE(b []byte, off int, v uint32) error {
	if err := check(len(b), off, 4); err != nil {
		return err
	}
	binary.BigEndian.PutUint32(b[off:], v)
	return nil
}
