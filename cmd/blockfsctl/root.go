package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "blockfsctl",
	Short: "Create and inspect blockfs images",
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
		return nil
	}

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(mkdirCmd)
	rootCmd.AddCommand(touchCmd)
	rootCmd.AddCommand(cpCmd)
	rootCmd.AddCommand(shutdownCmd)
	rootCmd.AddCommand(dumpCmd)
}
