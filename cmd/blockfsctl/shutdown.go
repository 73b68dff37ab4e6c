package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var shutdownCmd = &cobra.Command{
	Use:   "shutdown IMAGE",
	Short: "Flush the superblock and close the image cleanly",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := openImage(args[0])
		if err != nil {
			return err
		}
		if err := fs.Shutdown(); err != nil {
			return err
		}
		fmt.Printf("%s: shut down\n", args[0])
		return nil
	},
}
