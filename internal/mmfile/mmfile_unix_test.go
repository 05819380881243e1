//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/apaulsen/lekit/field"
)

func TestMapDecodableUnix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "image.bin")
	// 8-byte image: u32le then u32be of the same value.
	want := []byte{0x78, 0x56, 0x34, 0x12, 0x12, 0x34, 0x56, 0x78}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	defer func() {
		if cleanupErr := cleanup(); cleanupErr != nil {
			t.Fatalf("cleanup: %v", cleanupErr)
		}
	}()

	if len(data) != len(want) {
		t.Fatalf("len mismatch: got %d want %d", len(data), len(want))
	}
	le, err := field.U32LE(data, 0)
	if err != nil {
		t.Fatalf("U32LE: %v", err)
	}
	be, err := field.U32BE(data, 4)
	if err != nil {
		t.Fatalf("U32BE: %v", err)
	}
	if le != 0x12345678 || be != 0x12345678 {
		t.Fatalf("decoded le=0x%x be=0x%x, want 0x12345678", le, be)
	}
}

func TestMapZeroLengthUnix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	data, cleanup, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(data) != 0 {
		t.Fatalf("expected zero-length mapping, got %d", len(data))
	}
	if cleanup == nil {
		t.Fatalf("expected cleanup function")
	}
	if cleanupErr := cleanup(); cleanupErr != nil {
		t.Fatalf("cleanup: %v", cleanupErr)
	}
}

func TestMapMissingFile(t *testing.T) {
	if _, _, err := Map(filepath.Join(t.TempDir(), "nope.bin")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
