// Package config holds the formatter options and the rc-file loader.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Options configures which source constructs are treated as class-bearing
// and how their class lists are rewritten.
type Options struct {
	// TailwindAttributes lists attribute names treated as class-bearing in
	// addition to the fixed defaults class and className.
	TailwindAttributes []string `json:"tailwindAttributes,omitempty" yaml:"tailwindAttributes,omitempty"`

	// TailwindFunctions lists bare function names (e.g. clsx, cn, tw)
	// whose string and template arguments are treated as class lists.
	// Unset means no function calls match.
	TailwindFunctions []string `json:"tailwindFunctions,omitempty" yaml:"tailwindFunctions,omitempty"`

	// TailwindPreserveWhitespace disables boundary splitting and
	// whitespace normalization: each template fragment is registered
	// whole and reinserted verbatim after sorting.
	TailwindPreserveWhitespace bool `json:"tailwindPreserveWhitespace,omitempty" yaml:"tailwindPreserveWhitespace,omitempty"`

	// OrderFile points at a class ordering policy file, one class name
	// per line. Empty means class lists keep their original order and
	// only whitespace handling applies.
	OrderFile string `json:"orderFile,omitempty" yaml:"orderFile,omitempty"`
}

// DefaultOptions returns the zero configuration: default attributes only,
// no functions, boundary splitting enabled.
func DefaultOptions() Options {
	return Options{}
}

// rcNames are the rc file names recognized by Discover, in lookup order.
var rcNames = []string{
	".twsortrc.json",
	".twsortrc.yaml",
	".twsortrc.yml",
}

// Load reads options from an rc file. JSON files may contain comments and
// trailing commas (JSONC); .yaml/.yml files are parsed as YAML.
func Load(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read config: %w", err)
	}

	opts := DefaultOptions()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &opts); err != nil {
			return Options{}, fmt.Errorf("parse YAML config %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(jsonc.ToJSON(data), &opts); err != nil {
			return Options{}, fmt.Errorf("parse JSON config %s: %w", path, err)
		}
	}
	return opts, nil
}

// Discover walks up from dir looking for an rc file and returns the first
// match. The second result is false when no rc file exists on the path to
// the filesystem root.
func Discover(dir string) (string, bool) {
	for {
		for _, name := range rcNames {
			candidate := filepath.Join(dir, name)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// LoadForFile resolves the options governing path: an rc file discovered
// from the file's directory upward, or the defaults when none exists.
// Discovery and parse failures never abort formatting; the caller decides
// whether to surface the error.
func LoadForFile(path string) (Options, error) {
	dir := filepath.Dir(path)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	rc, ok := Discover(dir)
	if !ok {
		return DefaultOptions(), nil
	}
	return Load(rc)
}
