package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/twsort/internal/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadJSONC(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".twsortrc.json")
	writeFile(t, path, `{
		// custom class-bearing attributes
		"tailwindAttributes": ["tw", "classList"],
		"tailwindFunctions": ["clsx", "cn"],
	}`)

	opts, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"tw", "classList"}, opts.TailwindAttributes)
	assert.Equal(t, []string{"clsx", "cn"}, opts.TailwindFunctions)
	assert.False(t, opts.TailwindPreserveWhitespace)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".twsortrc.yaml")
	writeFile(t, path, "tailwindFunctions:\n  - tw\ntailwindPreserveWhitespace: true\n")

	opts, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"tw"}, opts.TailwindFunctions)
	assert.True(t, opts.TailwindPreserveWhitespace)
}

func TestLoadInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".twsortrc.json")
	writeFile(t, path, `{"tailwindAttributes": "not a list"}`)

	_, err := config.Load(path)
	assert.Error(t, err)
}

func TestDiscoverWalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, ".twsortrc.yml"), "tailwindFunctions: [cva]\n")
	nested := filepath.Join(root, "src", "components")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	rc, ok := config.Discover(nested)
	require.True(t, ok)
	assert.Equal(t, filepath.Join(root, ".twsortrc.yml"), rc)

	opts, err := config.LoadForFile(filepath.Join(nested, "button.tsx"))
	require.NoError(t, err)
	assert.Equal(t, []string{"cva"}, opts.TailwindFunctions)
}

func TestDiscoverMissing(t *testing.T) {
	dir := t.TempDir()

	_, ok := config.Discover(dir)
	assert.False(t, ok)

	opts, err := config.LoadForFile(filepath.Join(dir, "app.jsx"))
	require.NoError(t, err)
	assert.Equal(t, config.DefaultOptions(), opts)
}
