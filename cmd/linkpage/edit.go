package main

import (
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/linkpage/internal/tui"
)

func newEditCmd(rootFlags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "Open the interactive page editor",
		Long:  `Open the page in a terminal UI. Press e to flip between the view and edit sides; changes to the theme are saved as you make them.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd, rootFlags)
		},
	}
}

func runEdit(cmd *cobra.Command, rootFlags *rootFlags) error {
	if !isInteractive(cmd) {
		return newCommandError("open editor", "checking terminal", errors.New("stdin and stdout must be a terminal"), "Run 'linkpage edit' from an interactive shell, or use 'linkpage theme set' for scripted changes.")
	}

	app, err := newAppContext(cmd, rootFlags, "open editor")
	if err != nil {
		return err
	}
	defer app.Close()

	app.Logger.Info("launching editor")
	program := tea.NewProgram(tui.NewModel(app.Page, app.Notices), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return newCommandError("open editor", "running terminal UI", err, "Check that your terminal supports the alternate screen.")
	}

	if err := app.Page.Theme.PersistErr(); err != nil {
		app.Logger.Warn("last theme change was not saved", "error", err)
	}
	app.Logger.Info("editor closed")
	return nil
}

func isInteractive(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(in.Fd())) {
		return false
	}
	out, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(out.Fd()))
}
