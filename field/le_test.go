package field

import (
	"errors"
	"math"
	"testing"
)

func TestU8(t *testing.T) {
	data := []byte{0x00, 0x7f, 0x80, 0xff}
	want := []uint8{0, 127, 128, 255}
	for off, w := range want {
		got, err := U8(data, off)
		if err != nil {
			t.Fatalf("U8(off=%d): %v", off, err)
		}
		if got != w {
			t.Fatalf("U8(off=%d) = %d, want %d", off, got, w)
		}
	}
}

func TestI8(t *testing.T) {
	data := []byte{0x00, 0x7f, 0x80, 0xff}
	want := []int8{0, 127, -128, -1}
	for off, w := range want {
		got, err := I8(data, off)
		if err != nil {
			t.Fatalf("I8(off=%d): %v", off, err)
		}
		if got != w {
			t.Fatalf("I8(off=%d) = %d, want %d", off, got, w)
		}
	}
}

func TestLittleEndianAssembly(t *testing.T) {
	if got, err := U16LE([]byte{0x34, 0x12}, 0); err != nil || got != 0x1234 {
		t.Fatalf("U16LE = 0x%x, %v, want 0x1234", got, err)
	}
	if got, err := U32LE([]byte{0x78, 0x56, 0x34, 0x12}, 0); err != nil || got != 0x12345678 {
		t.Fatalf("U32LE = 0x%x, %v, want 0x12345678", got, err)
	}
	data := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}
	if got, err := U64LE(data, 0); err != nil || got != 0xefcdab8967452301 {
		t.Fatalf("U64LE = 0x%x, %v, want 0xefcdab8967452301", got, err)
	}
}

func TestU32LETopBitIsNotASign(t *testing.T) {
	got, err := U32LE([]byte{0xff, 0xff, 0xff, 0xff}, 0)
	if err != nil {
		t.Fatalf("U32LE: %v", err)
	}
	if got != 4294967295 {
		t.Fatalf("U32LE = %d, want 4294967295", got)
	}
}

func TestSignedLE(t *testing.T) {
	if got, _ := I16LE([]byte{0xff, 0xff}, 0); got != -1 {
		t.Fatalf("I16LE(ffff) = %d, want -1", got)
	}
	if got, _ := I16LE([]byte{0x00, 0x80}, 0); got != math.MinInt16 {
		t.Fatalf("I16LE(0080) = %d, want %d", got, math.MinInt16)
	}
	if got, _ := I32LE([]byte{0xfe, 0xff, 0xff, 0xff}, 0); got != -2 {
		t.Fatalf("I32LE = %d, want -2", got)
	}
	if got, _ := I64LE([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 0); got != -1 {
		t.Fatalf("I64LE = %d, want -1", got)
	}
}

func TestReadAtOffset(t *testing.T) {
	data := []byte{0xde, 0xad, 0x34, 0x12, 0x78, 0x56}
	if got, _ := U16LE(data, 2); got != 0x1234 {
		t.Fatalf("U16LE(off=2) = 0x%x, want 0x1234", got)
	}
	if got, _ := U32LE(data, 2); got != 0x56781234 {
		t.Fatalf("U32LE(off=2) = 0x%x, want 0x56781234", got)
	}
}

func TestFinalValidOffset(t *testing.T) {
	data := []byte{0x00, 0x00, 0x34, 0x12}
	if got, err := U16LE(data, len(data)-2); err != nil || got != 0x1234 {
		t.Fatalf("U16LE at last valid offset = 0x%x, %v", got, err)
	}
	if got, err := U8(data, len(data)-1); err != nil || got != 0x12 {
		t.Fatalf("U8 at last valid offset = 0x%x, %v", got, err)
	}
	if got, err := U32LE(data, 0); err != nil || got != 0x12340000 {
		t.Fatalf("U32LE spanning whole buffer = 0x%x, %v", got, err)
	}
}

func TestOutOfBounds(t *testing.T) {
	data := []byte{0x01}

	if _, err := U16LE(data, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("U16LE on 1-byte buffer: err = %v, want ErrOutOfBounds", err)
	}
	if _, err := U32LE(data, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("U32LE on 1-byte buffer: err = %v, want ErrOutOfBounds", err)
	}
	if _, err := U8(data, 1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("U8 past end: err = %v, want ErrOutOfBounds", err)
	}
	if _, err := U8(data, -1); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("negative offset: err = %v, want ErrOutOfBounds", err)
	}
	if _, err := I8(nil, 0); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("nil buffer: err = %v, want ErrOutOfBounds", err)
	}

	// off+width must not wrap around.
	if _, err := U64LE(data, math.MaxInt-4); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("near-MaxInt offset: err = %v, want ErrOutOfBounds", err)
	}
}
