package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cpCmd = &cobra.Command{
	Use:   "cp IMAGE DEST SRC",
	Short: "Copy a regular file's content onto another path within the image",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := openImage(args[0])
		if err != nil {
			return err
		}
		dest, src := args[1], args[2]
		if err := fs.Cp(dest, src); err != nil {
			return err
		}
		fmt.Printf("%s: copied %s to %s\n", args[0], src, dest)
		return nil
	},
}
