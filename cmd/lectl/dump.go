package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apaulsen/lekit/field"
	"github.com/apaulsen/lekit/internal/mmfile"
)

var (
	dumpOffset int
	dumpLength int
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpOffset, "offset", 0, "Byte offset to start dumping from")
	cmd.Flags().IntVar(&dumpLength, "length", 256, "Number of bytes to dump")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump <image>",
		Short: "Hex dump a bounded region of an image",
		Long: `The dump command prints a hex/ASCII dump of a region of the image.

Example:
  lectl dump image.iso --offset 32768 --length 64`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args[0])
		},
	}
}

func runDump(path string) error {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer cleanup()

	region, err := field.Slice(data, dumpOffset, dumpLength)
	if err != nil {
		return fmt.Errorf("failed to dump region: %w", err)
	}

	d := hex.Dumper(os.Stdout)
	defer d.Close()
	if _, err := d.Write(region); err != nil {
		return err
	}
	return nil
}
