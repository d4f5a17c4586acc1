package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/linkpage/internal/theme"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range theme.ThemeNames() {
				colors := theme.GetThemeColors(name)
				primary := theme.HexOf(colors.Primary)
				chip := lipgloss.NewStyle().Foreground(lipgloss.Color(primary)).Render("██")
				fmt.Fprintf(out, "%s %-8s %-8s %s %s %s\n",
					chip, name, theme.DisplayName(name),
					primary, theme.HexOf(colors.Secondary), theme.HexOf(colors.Accent))
			}
			return nil
		},
	}
}
