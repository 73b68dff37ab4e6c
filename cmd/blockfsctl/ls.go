package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/diskfs/go-blockfs/filesystem/blockfs"
)

var lsCmd = &cobra.Command{
	Use:   "ls IMAGE [PATH]",
	Short: "List the contents of a folder",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/"
		if len(args) == 2 {
			path = args[1]
		}
		fs, err := openImage(args[0])
		if err != nil {
			return err
		}
		entries, err := fs.Ls(path)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Println(formatEntry(e))
		}
		return nil
	},
}

func formatEntry(e blockfs.Entry) string {
	kind := "f"
	if e.Type == blockfs.TypeFolder {
		kind = "d"
	}
	return fmt.Sprintf("%s %6d %s", kind, e.InodeID, e.Name)
}
