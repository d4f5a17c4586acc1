package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/linkpage/internal/config"
)

func TestShowCommandPrintsDefaultPage(t *testing.T) {
	store := setupHome(t)

	stdout, _, err := executeCommand(t, "--store", store, "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Name:       Your Name (verified)")
	assert.Contains(t, stdout, "Theme:      Default, light")
	assert.Contains(t, stdout, "Links (4):")
	assert.Contains(t, stdout, "(no url)")
	assert.Contains(t, stdout, "linkedin")
}

func TestRootCommandDefaultsToShow(t *testing.T) {
	store := setupHome(t)

	stdout, _, err := executeCommand(t, "--store", store)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Links (4):")
}

func TestShowCommandYAMLRoundTripsThroughSeed(t *testing.T) {
	store := setupHome(t)

	stdout, _, err := executeCommand(t, "--store", store, "show", "--yaml")
	require.NoError(t, err)

	var seed config.Seed
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &seed))
	assert.Equal(t, config.DefaultSeed(), seed)
}

func TestShowCommandUsesSeedFile(t *testing.T) {
	store := setupHome(t)
	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`profile:
  name: Sam Rivera
  bio: Maps and trains
  secondaryBg: bg-blue-50
links:
  - id: gh
    title: Code
    url: https://github.com/example
`), 0o644))

	stdout, _, err := executeCommand(t, "--store", store, "--seed", seedPath, "show")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Name:       Sam Rivera\n")
	assert.Contains(t, stdout, "Links (1):")
	assert.Contains(t, stdout, "github")
}

func TestShowCommandRejectsBadSeed(t *testing.T) {
	store := setupHome(t)
	seedPath := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(seedPath, []byte(`links:
  - id: a
    title: One
    url: not a url
`), 0o644))

	_, _, err := executeCommand(t, "--store", store, "--seed", seedPath, "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading seed")
}
