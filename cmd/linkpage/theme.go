package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/linkpage/internal/theme"
	"github.com/alexisbeaulieu97/linkpage/pkg/diff"
)

type themeSetOptions struct {
	showDiff bool
}

// themeSetters maps the field names accepted by 'theme set' to store updates.
var themeSetters = map[string]func(*theme.Store, string) error{
	"color":    func(s *theme.Store, v string) error { return s.UpdateColorTheme(v) },
	"gradient": func(s *theme.Store, v string) error { return s.UpdateGradient(v) },
	"pattern":  func(s *theme.Store, v string) error { return s.UpdatePattern(theme.Pattern(v)) },
	"font":     func(s *theme.Store, v string) error { return s.UpdateFont(theme.Font(v)) },
	"radius":   func(s *theme.Store, v string) error { return s.UpdateBorderRadius(theme.BorderRadius(v)) },
	"shadow": func(s *theme.Store, v string) error {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("shadow expects true or false: %w", err)
		}
		s.ToggleShadow(on)
		return nil
	},
	"glass": func(s *theme.Store, v string) error {
		on, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("glass expects true or false: %w", err)
		}
		s.ToggleGlassmorphism(on)
		return nil
	},
	"opacity": func(s *theme.Store, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("opacity expects a number: %w", err)
		}
		return s.UpdateCardOpacity(f)
	},
	"speed": func(s *theme.Store, v string) error {
		f, err := strconv.ParseFloat(strings.TrimSuffix(v, "ms"), 64)
		if err != nil {
			return fmt.Errorf("speed expects milliseconds: %w", err)
		}
		return s.UpdateAnimationSpeed(f)
	},
}

func themeFieldNames() []string {
	names := make([]string, 0, len(themeSetters))
	for name := range themeSetters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newThemeCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and change the saved theme settings",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the current theme settings as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeShow(cmd, rootFlags)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Restore the default theme settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runThemeChange(cmd, rootFlags, "reset theme", false, func(s *theme.Store) error {
				s.ResetToDefaults()
				return nil
			})
		},
	})

	setOpts := &themeSetOptions{}
	setCmd := &cobra.Command{
		Use:       "set <field> <value>",
		Short:     "Change one theme setting",
		Long:      "Change one theme setting. Fields: " + strings.Join(themeFieldNames(), ", ") + ".",
		Args:      cobra.ExactArgs(2),
		ValidArgs: themeFieldNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			field := strings.ToLower(args[0])
			setter, ok := themeSetters[field]
			if !ok {
				return newCommandError("update theme", fmt.Sprintf("looking up field %q", args[0]), errors.New("unknown theme field"), "Use one of: "+strings.Join(themeFieldNames(), ", ")+".")
			}
			return runThemeChange(cmd, rootFlags, "update theme", setOpts.showDiff, func(s *theme.Store) error {
				return setter(s, args[1])
			})
		},
	}
	setCmd.Flags().BoolVar(&setOpts.showDiff, "diff", false, "Print a diff of the stored settings")
	cmd.AddCommand(setCmd)

	for _, a := range []theme.Appearance{theme.AppearanceDark, theme.AppearanceLight} {
		appearance := a
		cmd.AddCommand(&cobra.Command{
			Use:   string(appearance),
			Short: fmt.Sprintf("Switch to the %s appearance", appearance),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runThemeChange(cmd, rootFlags, "switch appearance", false, func(s *theme.Store) error {
					return s.SetAppearance(appearance)
				})
			},
		})
	}

	return cmd
}

type themeReport struct {
	Settings   theme.Settings   `json:"settings"`
	Appearance theme.Appearance `json:"appearance"`
	Source     theme.Source     `json:"source"`
	Adjusted   []string         `json:"adjusted,omitempty"`
}

func runThemeShow(cmd *cobra.Command, rootFlags *rootFlags) error {
	app, err := newAppContext(cmd, rootFlags, "show theme")
	if err != nil {
		return err
	}
	defer app.Close()

	store := app.Page.Theme
	last := store.LastLoad()
	report := themeReport{
		Settings:   store.Settings(),
		Appearance: store.Appearance(),
		Source:     last.Source,
		Adjusted:   last.Adjusted,
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

func runThemeChange(cmd *cobra.Command, rootFlags *rootFlags, operation string, showDiff bool, change func(*theme.Store) error) error {
	app, err := newAppContext(cmd, rootFlags, operation)
	if err != nil {
		return err
	}
	defer app.Close()

	store := app.Page.Theme
	before, err := indentedSettings(store.Settings())
	if err != nil {
		return newCommandError(operation, "encoding settings", err, "Report this issue; the settings could not be serialised.")
	}

	if err := change(store); err != nil {
		return newCommandError(operation, "applying change", err, "Run 'linkpage theme set --help' or 'linkpage themes' to see accepted values.")
	}

	if err := store.PersistErr(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: change applied but not saved: %v\n", err)
	}

	if showDiff {
		after, err := indentedSettings(store.Settings())
		if err != nil {
			return newCommandError(operation, "encoding settings", err, "Report this issue; the settings could not be serialised.")
		}
		if !diff.Changed(before, after) {
			fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), diff.Unified(before, after, "before", "after"))
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s, %s\n", theme.DisplayName(store.Settings().ColorTheme), store.Appearance())
	return nil
}

func indentedSettings(s theme.Settings) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
