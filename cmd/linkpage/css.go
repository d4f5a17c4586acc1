package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newCSSCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "css",
		Short: "Print the custom properties and classes the current theme applies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags, "render css")
			if err != nil {
				return err
			}
			defer app.Close()

			out := cmd.OutOrStdout()
			fmt.Fprint(out, app.Doc.Stylesheet())
			fmt.Fprintf(out, "/* root: %s */\n", strings.Join(app.Doc.Root().Classes, " "))
			fmt.Fprintf(out, "/* main: %s */\n", strings.Join(app.Doc.Main().Classes, " "))
			return nil
		},
	}
}
