package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/linkpage/internal/config"
	"github.com/alexisbeaulieu97/linkpage/internal/links"
	"github.com/alexisbeaulieu97/linkpage/internal/theme"
)

type showOptions struct {
	yamlOutput bool
}

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the public face of the page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.yamlOutput, "yaml", false, "Output profile and links as a seed YAML document")

	return cmd
}

func runShow(cmd *cobra.Command, rootFlags *rootFlags, opts *showOptions) error {
	app, err := newAppContext(cmd, rootFlags, "show page")
	if err != nil {
		return err
	}
	defer app.Close()

	seed := config.Seed{
		Profile: app.Page.Profile.Profile(),
		Links:   app.Page.Links.Links(),
	}

	if opts.yamlOutput {
		data, err := config.MarshalSeed(seed)
		if err != nil {
			return newCommandError("show page", "encoding YAML", err, "Report this issue; the page content could not be serialised.")
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	renderShowText(cmd.OutOrStdout(), seed, app.Page.Theme.Settings(), app.Page.Theme.Appearance())
	return nil
}

func renderShowText(w io.Writer, seed config.Seed, settings theme.Settings, appearance theme.Appearance) {
	name := seed.Profile.Name
	if seed.Profile.Verified {
		name += " (verified)"
	}
	fmt.Fprintf(w, "Name:       %s\n", name)
	fmt.Fprintf(w, "Bio:        %s\n", valueOrFallback(seed.Profile.Bio, "(no bio)"))
	fmt.Fprintf(w, "Avatar:     %s\n", valueOrFallback(seed.Profile.AvatarURL, "(none)"))
	fmt.Fprintf(w, "Background: %s\n", seed.Profile.SecondaryBg)
	fmt.Fprintf(w, "Theme:      %s, %s\n", theme.DisplayName(settings.ColorTheme), appearance)

	fmt.Fprintf(w, "\nLinks (%d):\n", len(seed.Links))
	if len(seed.Links) == 0 {
		fmt.Fprintln(w, "  (none)")
		return
	}
	for _, l := range seed.Links {
		fmt.Fprintf(w, "  - %-24s %-9s %s\n", l.Title, links.KindOf(l.URL), valueOrFallback(l.URL, "(no url)"))
	}
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
