package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/diskfs/go-blockfs/util"
)

var dumpCmd = &cobra.Command{
	Use:   "dump IMAGE BLOCK",
	Short: "Hex-dump a single logical block, e.g. to inspect the superblock or a directory block",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid block number %q: %w", args[1], err)
		}
		fs, err := openImage(args[0])
		if err != nil {
			return err
		}
		block, err := fs.ReadBlock(b)
		if err != nil {
			return err
		}
		fmt.Print(util.DumpByteSlice(block[:], 16, true, true, false, nil))
		return nil
	},
}
