package field

// Reader is a cursor over a byte slice for decoding packed structures field
// by field. It is a convenience built entirely on the free functions: each
// read decodes at the current position and advances by the field width. On
// error the position is left unchanged, so a caller can recover by seeking.
//
// A Reader is not safe for concurrent use; share the underlying slice and
// give each goroutine its own Reader instead.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a Reader positioned at the start of b. The slice is
// borrowed, not copied; the caller must not mutate it mid-decode.
func NewReader(b []byte) *Reader {
	return &Reader{data: b}
}

// Pos returns the current decode position.
func (r *Reader) Pos() int { return r.pos }

// Len returns the total length of the underlying slice.
func (r *Reader) Len() int { return len(r.data) }

// Remaining returns the number of bytes left to decode.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Seek moves the decode position to off.
func (r *Reader) Seek(off int) error {
	if off < 0 || off > len(r.data) {
		return boundsErr(off, 0, len(r.data))
	}
	r.pos = off
	return nil
}

// Skip advances the decode position by n bytes without reading them.
func (r *Reader) Skip(n int) error {
	if _, err := Slice(r.data, r.pos, n); err != nil {
		return err
	}
	r.pos += n
	return nil
}

// Bytes returns the next n raw bytes and advances past them. The returned
// slice aliases the underlying buffer.
func (r *Reader) Bytes(n int) ([]byte, error) {
	s, err := Slice(r.data, r.pos, n)
	if err != nil {
		return nil, err
	}
	r.pos += n
	return s, nil
}

// U8 decodes the next unsigned byte.
func (r *Reader) U8() (uint8, error) {
	v, err := U8(r.data, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos++
	return v, nil
}

// I8 decodes the next byte as a signed value.
func (r *Reader) I8() (int8, error) {
	v, err := I8(r.data, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos++
	return v, nil
}

// U16LE decodes the next little-endian uint16.
func (r *Reader) U16LE() (uint16, error) {
	v, err := U16LE(r.data, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos += 2
	return v, nil
}

// U32LE decodes the next little-endian uint32.
func (r *Reader) U32LE() (uint32, error) {
	v, err := U32LE(r.data, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos += 4
	return v, nil
}

// U64LE decodes the next little-endian uint64.
func (r *Reader) U64LE() (uint64, error) {
	v, err := U64LE(r.data, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos += 8
	return v, nil
}

// I16LE decodes the next little-endian int16.
func (r *Reader) I16LE() (int16, error) {
	v, err := r.U16LE()
	return int16(v), err
}

// I32LE decodes the next little-endian int32.
func (r *Reader) I32LE() (int32, error) {
	v, err := r.U32LE()
	return int32(v), err
}

// U16BE decodes the next big-endian uint16.
func (r *Reader) U16BE() (uint16, error) {
	v, err := U16BE(r.data, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos += 2
	return v, nil
}

// U32BE decodes the next big-endian uint32.
func (r *Reader) U32BE() (uint32, error) {
	v, err := U32BE(r.data, r.pos)
	if err != nil {
		return 0, err
	}
	r.pos += 4
	return v, nil
}
