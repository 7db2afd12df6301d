// Package parser dispatches class-list rewriting to the per-language
// tree-sitter rewriters.
package parser

import (
	"path/filepath"

	"bennypowers.dev/twsort/internal/config"
	"bennypowers.dev/twsort/internal/format"
	"bennypowers.dev/twsort/internal/parser/css"
	"bennypowers.dev/twsort/internal/parser/html"
	"bennypowers.dev/twsort/internal/parser/js"
)

// rewriteLanguages maps language IDs to the rewriter they use.
var rewriteLanguages = map[string]string{
	"javascript":      "js",
	"javascriptreact": "js",
	"typescript":      "js",
	"typescriptreact": "js",
	"html":            "html",
	"css":             "css",
}

// extensionLanguages maps file extensions to language IDs, mirroring the
// IDs an LSP client would send for the same files.
var extensionLanguages = map[string]string{
	".js":   "javascript",
	".mjs":  "javascript",
	".cjs":  "javascript",
	".jsx":  "javascriptreact",
	".ts":   "typescript",
	".mts":  "typescript",
	".cts":  "typescript",
	".tsx":  "typescriptreact",
	".html": "html",
	".htm":  "html",
	".css":  "css",
}

// IsSupportedLanguage returns true if the language has a rewriter
func IsSupportedLanguage(languageID string) bool {
	_, ok := rewriteLanguages[languageID]
	return ok
}

// LanguageForPath infers the language ID from a file path's extension.
// The second result is false for unsupported extensions.
func LanguageForPath(path string) (string, bool) {
	id, ok := extensionLanguages[filepath.Ext(path)]
	return id, ok
}

// RewriteDocument rewrites the class lists in any supported document
// type. Unsupported language IDs return the content unchanged.
func RewriteDocument(content, languageID string, opts *config.Options, s format.Sorter) (string, error) {
	switch rewriteLanguages[languageID] {
	case "js":
		p := js.AcquireParser()
		defer js.ReleaseParser(p)
		return p.Rewrite(content, opts, s)

	case "html":
		p := html.AcquireParser()
		defer html.ReleaseParser(p)
		return p.Rewrite(content, opts, s)

	case "css":
		p := css.AcquireParser()
		defer css.ReleaseParser(p)
		return p.Rewrite(content, opts, s)

	default:
		return content, nil
	}
}

// ClosePools closes every pooled parser. Call on shutdown.
func ClosePools() {
	js.ClosePool()
	html.ClosePool()
	css.ClosePool()
}
