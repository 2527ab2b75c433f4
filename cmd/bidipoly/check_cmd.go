package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/polylambda/bidipoly/internal/driver"
	"github.com/polylambda/bidipoly/internal/types"
)

func newCheckCmd() *cobra.Command {
	var trace bool

	cmd := &cobra.Command{
		Use:   "check [expr] [file...]",
		Short: "Judge an expression (or file, or stdin) non-interactively, without the REPL loop",
		Long: "check judges one expression per argument, or one per line of each file " +
			"argument, or one per line of stdin if no arguments are given. Each line " +
			"is judged against a fresh context, same as the REPL.",
		RunE: func(cmd *cobra.Command, args []string) error {
			var tracer types.Tracer
			if trace {
				tracer = newStderrTracer()
			}

			failed := false
			judgeLine := func(src string) {
				ctx := types.NewCtx()
				if tracer != nil {
					ctx.SetTracer(tracer)
				}
				res, err := driver.InferSource(ctx, src)
				if err != nil {
					failed = true
					fmt.Fprintf(os.Stderr, "%s %s: %v\n", color.RedString("error:"), src, err)
					return
				}
				fmt.Printf("%s : %s\n", res.Term, color.YellowString(res.Type))
			}

			if len(args) == 0 {
				scanner := bufio.NewScanner(os.Stdin)
				for scanner.Scan() {
					line := scanner.Text()
					if line == "" {
						continue
					}
					judgeLine(line)
				}
				if failed {
					return fmt.Errorf("one or more expressions failed to check")
				}
				return nil
			}

			for _, arg := range args {
				if info, err := os.Stat(arg); err == nil && !info.IsDir() {
					f, err := os.Open(arg)
					if err != nil {
						return err
					}
					scanner := bufio.NewScanner(f)
					for scanner.Scan() {
						line := scanner.Text()
						if line == "" {
							continue
						}
						judgeLine(line)
					}
					f.Close()
					continue
				}
				judgeLine(arg)
			}

			if failed {
				return fmt.Errorf("one or more expressions failed to check")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "log every context operation to stderr")
	return cmd
}
