package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, stamped at release time:
//
//	go build -ldflags "-X main.version=v0.3.0 -X main.commit=$(git rev-parse --short HEAD) -X main.date=$(date -u +%Y-%m-%d)" ./cmd/linkpage
var (
	version = "0.0.0-dev"
	commit  = "unknown"
	date    = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the linkpage build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "linkpage %s (commit %s, built %s)\n", version, commit, date)
			return nil
		},
	}
}
