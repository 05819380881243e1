package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apaulsen/lekit/field"
	"github.com/apaulsen/lekit/internal/mmfile"
)

var (
	getOffset int
	getType   string
	getLength int
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().IntVar(&getOffset, "offset", 0, "Byte offset of the field")
	cmd.Flags().StringVar(&getType, "type", "u32le", "Field type (u8, i8, u16le, i16le, u32le, i32le, u64le, i64le, u16be, u32be, u64be, i32be, latin1, ucs2le, ucs2be)")
	cmd.Flags().IntVar(&getLength, "length", 0, "Byte width for string field types")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <image>",
		Short: "Decode a single field at an offset",
		Long: `The get command decodes one fixed-width field from an image file.

Example:
  lectl get image.iso --offset 32768 --type u8
  lectl get image.iso --offset 32848 --type u32le
  lectl get image.iso --offset 32808 --type latin1 --length 32`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args[0])
		},
	}
}

// decodedField is the result of decoding one field, shaped for both text and
// JSON output.
type decodedField struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Value  string `json:"value"`
	Hex    string `json:"hex,omitempty"`
}

func decodeField(data []byte, off int, typ string, length int) (decodedField, error) {
	out := decodedField{Type: typ, Offset: off}

	var (
		uv  uint64
		sv  int64
		err error
	)
	signed := false

	switch typ {
	case "u8":
		var v uint8
		v, err = field.U8(data, off)
		uv = uint64(v)
	case "i8":
		var v int8
		v, err = field.I8(data, off)
		sv, signed = int64(v), true
	case "u16le":
		var v uint16
		v, err = field.U16LE(data, off)
		uv = uint64(v)
	case "i16le":
		var v int16
		v, err = field.I16LE(data, off)
		sv, signed = int64(v), true
	case "u32le":
		var v uint32
		v, err = field.U32LE(data, off)
		uv = uint64(v)
	case "i32le":
		var v int32
		v, err = field.I32LE(data, off)
		sv, signed = int64(v), true
	case "u64le":
		uv, err = field.U64LE(data, off)
	case "i64le":
		sv, err = field.I64LE(data, off)
		signed = true
	case "u16be":
		var v uint16
		v, err = field.U16BE(data, off)
		uv = uint64(v)
	case "u32be":
		var v uint32
		v, err = field.U32BE(data, off)
		uv = uint64(v)
	case "u64be":
		uv, err = field.U64BE(data, off)
	case "i32be":
		var v int32
		v, err = field.I32BE(data, off)
		sv, signed = int64(v), true
	case "latin1":
		var s string
		s, err = field.StringLatin1(data, off, length)
		out.Value = s
		return out, err
	case "ucs2le":
		var s string
		s, err = field.StringUCS2LE(data, off, length)
		out.Value = s
		return out, err
	case "ucs2be":
		var s string
		s, err = field.StringUCS2BE(data, off, length)
		out.Value = s
		return out, err
	default:
		return out, fmt.Errorf("unknown field type %q", typ)
	}
	if err != nil {
		return out, err
	}

	if signed {
		out.Value = fmt.Sprintf("%d", sv)
		out.Hex = fmt.Sprintf("%#x", uint64(sv))
	} else {
		out.Value = fmt.Sprintf("%d", uv)
		out.Hex = fmt.Sprintf("%#x", uv)
	}
	return out, nil
}

func runGet(path string) error {
	printVerbose("Mapping image: %s\n", path)

	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer cleanup()

	out, err := decodeField(data, getOffset, getType, getLength)
	if err != nil {
		return fmt.Errorf("failed to decode field: %w", err)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if out.Hex != "" {
		fmt.Printf("%s @ %d = %s (%s)\n", out.Type, out.Offset, out.Value, out.Hex)
	} else {
		fmt.Printf("%s @ %d = %q\n", out.Type, out.Offset, out.Value)
	}
	return nil
}
