package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init IMAGE",
	Short: "Create a new image and format it, or format an existing unformatted image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		fs, err := openImage(path)
		if err != nil {
			fs, err = createImage(path)
			if err != nil {
				return err
			}
		}
		if err := fs.Init(); err != nil {
			return err
		}
		fmt.Printf("%s: formatted\n", path)
		return nil
	},
}
