package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apaulsen/lekit/field"
	"github.com/apaulsen/lekit/internal/mmfile"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <image>",
		Short: "Show size and leading bytes of an image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

type imageInfo struct {
	Path  string `json:"path"`
	Size  int    `json:"size"`
	First string `json:"first_bytes,omitempty"`
}

func runInfo(path string) error {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	defer cleanup()

	info := imageInfo{Path: path, Size: len(data)}
	n := len(data)
	if n > 16 {
		n = 16
	}
	if lead, err := field.Slice(data, 0, n); err == nil && n > 0 {
		info.First = fmt.Sprintf("% x", lead)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Printf("%s\n", info.Path)
	fmt.Printf("  size: %d bytes\n", info.Size)
	if info.First != "" {
		fmt.Printf("  first bytes: %s\n", info.First)
	}
	return nil
}
