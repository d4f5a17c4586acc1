package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

// setupHome points the user config directory at a temporary directory and
// returns a settings file path inside it.
func setupHome(t *testing.T) string {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("LINKPAGE_STORAGE_BACKEND", "")
	t.Setenv("LINKPAGE_STORAGE_PATH", "")
	t.Setenv("LINKPAGE_SEED", "")
	return filepath.Join(home, "settings.json")
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetIn(&bytes.Buffer{})
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
