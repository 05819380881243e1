package field

import "encoding/binary"

// Big-endian variants for formats that store both byte orders side by side
// (ISO9660 both-byte-order fields, network-order framing).

// U16BE reads a big-endian uint16 at off.
func U16BE(b []byte, off int) (uint16, error) {
	if err := check(len(b), off, 2); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b[off:]), nil
}

// U32BE reads a big-endian uint32 at off.
func U32BE(b []byte, off int) (uint32, error) {
	if err := check(len(b), off, 4); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[off:]), nil
}

// U64BE reads a big-endian uint64 at off.
func U64BE(b []byte, off int) (uint64, error) {
	if err := check(len(b), off, 8); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b[off:]), nil
}

// I32BE reads a big-endian int32 at off.
func I32BE(b []byte, off int) (int32, error) {
	v, err := U32BE(b, off)
	return int32(v), err
}
