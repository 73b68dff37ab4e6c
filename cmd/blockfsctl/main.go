// Command blockfsctl creates, formats and inspects blockfs images from the
// shell. Each invocation opens the image, performs exactly one operation,
// and exits - there is no interactive shell here, unlike the filesystem
// driver this tool wraps, which was built as a REPL.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
