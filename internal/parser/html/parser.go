// Package html rewrites Tailwind class lists in HTML class attributes.
// An HTML attribute value is always a direct value: there are no adjacent
// expressions to protect, so the whole value is registered and the sorter
// owns its whitespace.
package html

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_html "github.com/tree-sitter/tree-sitter-html/bindings/go"

	"bennypowers.dev/twsort/internal/classifier"
	"bennypowers.dev/twsort/internal/config"
	"bennypowers.dev/twsort/internal/format"
	"bennypowers.dev/twsort/internal/textedit"
)

// Parser rewrites class attributes in HTML documents
type Parser struct {
	parser    *sitter.Parser
	attrQuery *sitter.Query
}

var htmlLang = sitter.NewLanguage(tree_sitter_html.Language())

// parserPool is a pool of reusable HTML parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(htmlLang); err != nil {
			panic(fmt.Sprintf("failed to set HTML language: %v", err))
		}

		// Two patterns: quoted and bare attribute values.
		attrQuery, qerr := sitter.NewQuery(htmlLang, `
			(attribute
				(attribute_name) @attr_name
				(quoted_attribute_value (attribute_value) @attr_value))
			(attribute
				(attribute_name) @attr_name
				(attribute_value) @attr_value)
		`)
		if qerr != nil {
			panic(fmt.Sprintf("failed to compile attribute query: %v", qerr))
		}

		return &Parser{
			parser:    parser,
			attrQuery: attrQuery,
		}
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
	if p.attrQuery != nil {
		p.attrQuery.Close()
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

// Rewrite returns source with every class-bearing attribute value
// replaced by the sorter's output for it.
func (p *Parser) Rewrite(source string, opts *config.Options, s format.Sorter) (string, error) {
	src := []byte(source)
	tree := p.parser.Parse(src, nil)
	if tree == nil {
		return "", fmt.Errorf("failed to parse HTML source")
	}
	defer tree.Close()

	reg := &format.Registry{}
	var edits []textedit.Edit

	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(p.attrQuery, tree.RootNode(), src)
	for match := matches.Next(); match != nil; match = matches.Next() {
		var name string
		var value sitter.Node
		foundValue := false

		for _, capture := range match.Captures {
			switch p.attrQuery.CaptureNames()[capture.Index] {
			case "attr_name":
				name = string(src[capture.Node.StartByte():capture.Node.EndByte()])
			case "attr_value":
				value = capture.Node
				foundValue = true
			}
		}

		if !foundValue || !classifier.IsTailwindAttribute(name, opts) {
			continue
		}

		content := string(src[value.StartByte():value.EndByte()])
		buf := &format.Buffer{}
		format.WriteStringLiteral(content, true, reg, buf)
		edits = append(edits, textedit.Edit{
			Start: value.StartByte(),
			End:   value.EndByte(),
			Text:  format.Render(buf, reg, s),
		})
	}

	return textedit.Apply(src, edits), nil
}
