// Command twsort sorts Tailwind CSS class lists in JS/TS, HTML, and CSS
// sources. By default the rewritten file is printed to stdout; --write
// updates files in place, and --lsp runs a language server over stdio.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/bmatcuk/doublestar/v4"

	"bennypowers.dev/twsort/internal/config"
	"bennypowers.dev/twsort/internal/format"
	"bennypowers.dev/twsort/internal/log"
	"bennypowers.dev/twsort/internal/lsp"
	"bennypowers.dev/twsort/internal/parser"
	"bennypowers.dev/twsort/internal/sorter"
	"bennypowers.dev/twsort/internal/version"
)

var (
	write      = kingpin.Flag("write", "Rewrite files in place instead of printing to stdout").Short('w').Bool()
	check      = kingpin.Flag("check", "Exit non-zero if any file would change, without writing").Bool()
	configPath = kingpin.Flag("config", "Path to a .twsortrc config file, overriding discovery").String()
	orderFile  = kingpin.Flag("order-file", "Path to a class ordering policy file, one class per line").String()
	runLSP     = kingpin.Flag("lsp", "Run as a language server over stdio").Bool()
	patterns   = kingpin.Arg("files", "Files or doublestar glob patterns (e.g. 'src/**/*.tsx')").Strings()
)

func main() {
	kingpin.Version(version.GetFullVersion())
	kingpin.Parse()

	if *runLSP {
		server := lsp.NewServer(version.GetVersion())
		defer server.Close()
		if err := server.RunStdio(); err != nil {
			log.Error("Server error: %v", err)
			os.Exit(1)
		}
		return
	}
	defer parser.ClosePools()

	if len(*patterns) == 0 {
		kingpin.Fatalf("no files given (or use --lsp)")
	}

	files, err := expandPatterns(*patterns)
	if err != nil {
		kingpin.Fatalf("%s", err)
	}
	if len(files) == 0 {
		kingpin.Fatalf("no files matched")
	}

	changed := 0
	failed := false
	for _, file := range files {
		didChange, err := processFile(file)
		if err != nil {
			log.Error("%s: %v", file, err)
			failed = true
			continue
		}
		if didChange {
			changed++
		}
	}

	if failed || (*check && changed > 0) {
		os.Exit(1)
	}
}

// expandPatterns resolves doublestar globs to file paths. Arguments
// without glob metacharacters pass through so that missing files are
// reported instead of silently skipped.
func expandPatterns(patterns []string) ([]string, error) {
	var files []string
	seen := map[string]bool{}
	for _, pattern := range patterns {
		if !hasGlobMeta(pattern) {
			if !seen[pattern] {
				seen[pattern] = true
				files = append(files, pattern)
			}
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	return files, nil
}

func hasGlobMeta(pattern string) bool {
	for _, r := range pattern {
		switch r {
		case '*', '?', '[', '{':
			return true
		}
	}
	return false
}

// processFile rewrites one file and reports whether it changed.
func processFile(path string) (bool, error) {
	languageID, ok := parser.LanguageForPath(path)
	if !ok {
		return false, fmt.Errorf("unsupported file type")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return false, err
	}
	content := string(data)

	opts, err := loadOptions(path)
	if err != nil {
		return false, err
	}

	srt, err := resolveSorter(opts)
	if err != nil {
		return false, err
	}

	rewritten, err := parser.RewriteDocument(content, languageID, &opts, srt)
	if err != nil {
		return false, err
	}
	didChange := rewritten != content

	switch {
	case *check:
		if didChange {
			fmt.Fprintln(os.Stderr, path)
		}
	case *write:
		if didChange {
			if err := writeBack(path, []byte(rewritten)); err != nil {
				return false, err
			}
		}
	default:
		fmt.Print(rewritten)
	}
	return didChange, nil
}

// loadOptions picks the options for a file: the --config file when
// given, an rc file discovered from the file's directory otherwise.
// The --order-file flag wins over either.
func loadOptions(path string) (config.Options, error) {
	var opts config.Options
	var err error
	if *configPath != "" {
		opts, err = config.Load(*configPath)
	} else {
		opts, err = config.LoadForFile(path)
	}
	if err != nil {
		return config.Options{}, err
	}
	if *orderFile != "" {
		opts.OrderFile = *orderFile
	}
	return opts, nil
}

func resolveSorter(opts config.Options) (format.Sorter, error) {
	if opts.OrderFile == "" {
		return sorter.Identity{}, nil
	}
	return sorter.LoadPolicy(opts.OrderFile)
}

// writeBack preserves the file's permission bits.
func writeBack(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, info.Mode().Perm())
}
