package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var touchCmd = &cobra.Command{
	Use:   "touch IMAGE PATH",
	Short: "Create a new, empty file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, err := openImage(args[0])
		if err != nil {
			return err
		}
		if err := fs.Touch(args[1]); err != nil {
			return err
		}
		fmt.Printf("%s: created %s\n", args[0], args[1])
		return nil
	},
}
