// Command bidipoly is the CLI front end for the bidirectional type checker:
// an interactive REPL and a non-interactive "check" mode, grounded on the
// teacher's cmd/ailang layout but using cobra (carried over from the
// example pack's day61_container_runtime-style command tree) in place of
// the teacher's own hand-rolled flag parsing.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is set by ldflags during release builds; "dev" otherwise.
var Version = "dev"

func main() {
	root := &cobra.Command{
		Use:     "bidipoly",
		Short:   "A bidirectional type checker for higher-rank predicative polymorphism",
		Version: Version,
	}

	root.AddCommand(newReplCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newVersionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
