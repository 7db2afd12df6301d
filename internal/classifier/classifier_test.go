package classifier_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"bennypowers.dev/twsort/internal/classifier"
	"bennypowers.dev/twsort/internal/config"
)

func TestIsTailwindAttribute(t *testing.T) {
	custom := &config.Options{TailwindAttributes: []string{"tw", "classList"}}

	tests := []struct {
		name string
		attr string
		opts *config.Options
		want bool
	}{
		{"default class", "class", nil, true},
		{"default className", "className", nil, true},
		{"case sensitive", "Class", nil, false},
		{"unknown without config", "tw", nil, false},
		{"configured extra", "tw", custom, true},
		{"another configured extra", "classList", custom, true},
		{"unconfigured name", "style", custom, false},
		{"defaults still match with config", "class", custom, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.IsTailwindAttribute(tt.attr, tt.opts))
		})
	}
}

// calleeNode parses source as an expression statement and returns the
// function child of the first call_expression.
func calleeNode(t *testing.T, source string) (*sitter.Node, []byte) {
	t.Helper()

	parser := sitter.NewParser()
	require.NoError(t, parser.SetLanguage(sitter.NewLanguage(tree_sitter_javascript.Language())))
	t.Cleanup(parser.Close)

	src := []byte(source)
	tree := parser.Parse(src, nil)
	require.NotNil(t, tree)
	t.Cleanup(tree.Close)

	var call *sitter.Node
	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if call != nil {
			return
		}
		if node.Kind() == "call_expression" {
			call = node
			return
		}
		for i := uint(0); i < node.ChildCount(); i++ {
			walk(node.Child(i))
		}
	}
	walk(tree.RootNode())
	require.NotNil(t, call, "no call_expression in %q", source)

	return call.ChildByFieldName("function"), src
}

func TestIsTailwindCall(t *testing.T) {
	opts := &config.Options{TailwindFunctions: []string{"clsx", "tw"}}

	tests := []struct {
		name   string
		source string
		opts   *config.Options
		want   bool
	}{
		{"configured bare identifier", `clsx("a b")`, opts, true},
		{"unconfigured identifier", `cn("a b")`, opts, false},
		{"member access never matches", `styles.clsx("a b")`, opts, false},
		{"computed callee never matches", `fns["clsx"]("a b")`, opts, false},
		{"unset function list", `clsx("a b")`, nil, false},
		{"empty function list", `clsx("a b")`, &config.Options{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			callee, src := calleeNode(t, tt.source)
			assert.Equal(t, tt.want, classifier.IsTailwindCall(callee, src, tt.opts))
		})
	}
}
