package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/polylambda/bidipoly/internal/repl"
)

func newReplCmd() *cobra.Command {
	var trace bool
	var configPath string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Start the interactive judge loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := repl.New(Version)

			traceWanted := trace
			if configPath != "" {
				cfg, err := repl.LoadConfig(configPath)
				if err != nil {
					return fmt.Errorf("loading config %s: %w", configPath, err)
				}
				r.ApplyConfig(cfg)
				traceWanted = traceWanted || cfg.Trace
			}
			if traceWanted {
				r.EnableTrace(newStderrTracer())
			}

			r.Start(os.Stdin, os.Stdout)
			return nil
		},
	}

	cmd.Flags().BoolVar(&trace, "trace", false, "log every context operation to stderr")
	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML file of REPL defaults (prompt, trace)")
	return cmd
}
