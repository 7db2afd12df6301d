// Package css rewrites Tailwind class lists in @apply at-rules. The list
// after @apply is a direct class list with no expression boundaries, so
// the whole of it is registered and the sorter owns its whitespace.
package css

import (
	"fmt"
	"strings"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_css "github.com/tree-sitter/tree-sitter-css/bindings/go"

	"bennypowers.dev/twsort/internal/config"
	"bennypowers.dev/twsort/internal/format"
	"bennypowers.dev/twsort/internal/textedit"
)

// Parser rewrites @apply class lists in CSS
type Parser struct {
	parser *sitter.Parser
}

var cssLang = sitter.NewLanguage(tree_sitter_css.Language())

// parserPool is a pool of reusable CSS parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(cssLang); err != nil {
			panic(fmt.Sprintf("failed to set CSS language: %v", err))
		}
		return &Parser{parser: parser}
	},
}

// AcquireParser gets a parser from the pool
func AcquireParser() *Parser {
	p := parserPool.Get().(*Parser)
	p.parser.Reset()
	return p
}

// ReleaseParser returns a parser to the pool
func ReleaseParser(p *Parser) {
	if p != nil {
		parserPool.Put(p)
	}
}

// Close closes the parser and releases its resources
func (p *Parser) Close() {
	if p.parser != nil {
		p.parser.Close()
	}
}

// ClosePool closes all parsers in the pool
func ClosePool() {
	for range 100 {
		if p, ok := parserPool.Get().(*Parser); ok && p != nil {
			p.Close()
		}
	}
}

// Rewrite returns source with every @apply class list replaced by the
// sorter's output. Options are accepted for interface symmetry with the
// other language rewriters; @apply has no configurable surface.
func (p *Parser) Rewrite(source string, _ *config.Options, s format.Sorter) (string, error) {
	src := []byte(source)
	tree := p.parser.Parse(src, nil)
	if tree == nil {
		return "", fmt.Errorf("failed to parse CSS source")
	}
	defer tree.Close()

	reg := &format.Registry{}
	var edits []textedit.Edit
	walkTree(tree.RootNode(), src, reg, s, &edits)

	return textedit.Apply(src, edits), nil
}

// walkTree recursively collects @apply rewrites. Unknown at-rules surface
// as postcss_statement or at_rule nodes depending on their shape, so both
// kinds are inspected.
func walkTree(node *sitter.Node, src []byte, reg *format.Registry, s format.Sorter, edits *[]textedit.Edit) {
	if node == nil {
		return
	}

	kind := node.Kind()
	if kind == "postcss_statement" || kind == "at_rule" {
		handleAtRule(node, src, reg, s, edits)
	}

	for i := uint(0); i < node.ChildCount(); i++ {
		walkTree(node.Child(i), src, reg, s, edits)
	}
}

// handleAtRule rewrites the class list of an @apply statement, keeping
// the keyword and trailing semicolon in place.
func handleAtRule(node *sitter.Node, src []byte, reg *format.Registry, s format.Sorter, edits *[]textedit.Edit) {
	if node.ChildCount() == 0 {
		return
	}
	keyword := node.Child(0)
	if keyword.Kind() != "at_keyword" || string(src[keyword.StartByte():keyword.EndByte()]) != "@apply" {
		return
	}

	raw := string(src[keyword.EndByte():node.EndByte()])
	semi := ""
	if body := strings.TrimRight(raw, " \t\r\n"); strings.HasSuffix(body, ";") {
		raw = body[:len(body)-1]
		semi = ";"
	}

	list := strings.TrimSpace(raw)
	if list == "" {
		return
	}

	buf := &format.Buffer{}
	format.WriteStringLiteral(list, true, reg, buf)
	*edits = append(*edits, textedit.Edit{
		Start: keyword.EndByte(),
		End:   node.EndByte(),
		Text:  " " + format.Render(buf, reg, s) + semi,
	})
}
