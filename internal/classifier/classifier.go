// Package classifier decides which attribute names and call targets are
// class-bearing. The predicates are pure and total: unknown names and
// missing configuration resolve to "not a tailwind site" rather than an
// error, since a formatter must never abort on a classification miss.
package classifier

import (
	"slices"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"bennypowers.dev/twsort/internal/collections"
	"bennypowers.dev/twsort/internal/config"
)

// defaultAttributes are class-bearing regardless of configuration.
var defaultAttributes = collections.NewSet("class", "className")

// IsTailwindAttribute reports whether name denotes a class-bearing
// attribute: one of the fixed defaults or a configured extra. Matching is
// exact and case-sensitive.
func IsTailwindAttribute(name string, opts *config.Options) bool {
	if defaultAttributes.Has(name) {
		return true
	}
	if opts == nil {
		return false
	}
	return slices.Contains(opts.TailwindAttributes, name)
}

// IsTailwindCall reports whether callee is a bare identifier naming a
// configured class-bearing function. Member accesses and computed callees
// never match, and an absent function list matches nothing.
func IsTailwindCall(callee *sitter.Node, source []byte, opts *config.Options) bool {
	if callee == nil || opts == nil || len(opts.TailwindFunctions) == 0 {
		return false
	}
	if callee.Kind() != "identifier" {
		return false
	}
	name := string(source[callee.StartByte():callee.EndByte()])
	return slices.Contains(opts.TailwindFunctions, name)
}

// IsTailwindFunctionName is the name-only form of IsTailwindCall, for
// hosts that have already resolved the callee to a bare identifier.
func IsTailwindFunctionName(name string, opts *config.Options) bool {
	if opts == nil {
		return false
	}
	return slices.Contains(opts.TailwindFunctions, name)
}
