// Command vtdemo runs a shell inside a PTY, drives it through a
// vtcore.Terminal, and passes the resulting screen through to the host
// terminal. It exists to exercise vtcore against a real interactive
// shell session.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "vtdemo",
		Short: "Drive a shell through vtcore and mirror it to the host terminal",
	}

	root.AddCommand(newRunCmd())
	root.AddCommand(newDumpCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
