package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir IMAGE PATH",
	Short: "Create a new folder",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := openImage(args[0])
		if err != nil {
			return err
		}
		if err := fs.Mkdir(args[1]); err != nil {
			return err
		}
		fmt.Printf("%s: created %s\n", args[0], args[1])
		return nil
	},
}
