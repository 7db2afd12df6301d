// Package js rewrites Tailwind class lists in JavaScript, TypeScript, and
// JSX/TSX sources. Class-bearing sites are JSX attributes (class,
// className, plus configured extras) and calls to configured functions;
// within a site, string literals and template literals are split by the
// format package and their sortable regions replaced with sorted output.
package js

import (
	"fmt"
	"sync"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"bennypowers.dev/twsort/internal/classifier"
	"bennypowers.dev/twsort/internal/config"
	"bennypowers.dev/twsort/internal/format"
	"bennypowers.dev/twsort/internal/textedit"
)

// Parser rewrites class lists in JS/TS source
type Parser struct {
	parser    *sitter.Parser
	attrQuery *sitter.Query
	callQuery *sitter.Query
}

var jsLang = sitter.NewLanguage(tree_sitter_javascript.Language())

// parserPool is a pool of reusable JS parsers
var parserPool = sync.Pool{
	New: func() any {
		parser := sitter.NewParser()
		if err := parser.SetLanguage(jsLang); err != nil {
			panic(fmt.Sprintf("failed to set JS language: %v", err))
		}

		attrQuery, qerr := sitter.NewQuery(jsLang, `
			(jsx_attribute
				(property_identifier) @name
				(_) @value)
		`)
		if qerr != nil {
			panic(fmt.Sprintf("failed to compile attribute query: %v", qerr))
		}

		// arguments is either an (arguments) list or, for tagged
		// templates like tw`...`, the template_string itself.
		callQuery, qerr := sitter.NewQuery(jsLang, `
			(call_expression
				function: (identifier) @callee
				arguments: (_) @args)
		`)
		if qerr != nil {
			panic(fmt.Sprintf("failed to compile call query: %v", qerr))
		}

		return &Parser{
			parser:    parser,
			attrQuery: attrQuery,
			callQuery: callQuery,
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
	if p.callQuery != nil {
		p.callQuery.Close()
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

// Rewrite returns source with every class-bearing site's sortable regions
// replaced by the sorter's output. One registry spans the whole pass, so
// every occurrence gets its own monotonically increasing handle.
func (p *Parser) Rewrite(source string, opts *config.Options, s format.Sorter) (string, error) {
	if opts == nil {
		defaults := config.DefaultOptions()
		opts = &defaults
	}

	src := []byte(source)
	tree := p.parser.Parse(src, nil)
	if tree == nil {
		return "", fmt.Errorf("failed to parse JS source")
	}
	defer tree.Close()

	rw := &rewriter{
		src:    src,
		opts:   opts,
		sorter: s,
		reg:    &format.Registry{},
		seen:   map[[2]uint]bool{},
	}

	root := tree.RootNode()
	p.collectAttributeSites(rw, root)
	p.collectCallSites(rw, root)

	return textedit.Apply(src, rw.edits), nil
}

// rewriter carries one pass's registry and accumulated edits.
type rewriter struct {
	src    []byte
	opts   *config.Options
	sorter format.Sorter
	reg    *format.Registry
	edits  []textedit.Edit
	seen   map[[2]uint]bool
}

func (p *Parser) collectAttributeSites(rw *rewriter, root *sitter.Node) {
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(p.attrQuery, root, rw.src)
	for match := matches.Next(); match != nil; match = matches.Next() {
		var name string
		var value sitter.Node
		foundValue := false

		for _, capture := range match.Captures {
			switch p.attrQuery.CaptureNames()[capture.Index] {
			case "name":
				name = string(rw.src[capture.Node.StartByte():capture.Node.EndByte()])
			case "value":
				value = capture.Node
				foundValue = true
			}
		}

		if !foundValue || !classifier.IsTailwindAttribute(name, rw.opts) {
			continue
		}
		rw.attributeValue(&value)
	}
}

func (p *Parser) collectCallSites(rw *rewriter, root *sitter.Node) {
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()

	matches := cursor.Matches(p.callQuery, root, rw.src)
	for match := matches.Next(); match != nil; match = matches.Next() {
		var callee, args sitter.Node
		foundCallee, foundArgs := false, false

		for _, capture := range match.Captures {
			switch p.callQuery.CaptureNames()[capture.Index] {
			case "callee":
				callee = capture.Node
				foundCallee = true
			case "args":
				args = capture.Node
				foundArgs = true
			}
		}

		if !foundCallee || !foundArgs || !classifier.IsTailwindCall(&callee, rw.src, rw.opts) {
			continue
		}

		switch args.Kind() {
		case "template_string":
			rw.rewriteTemplate(&args)
		case "arguments":
			for i := uint(0); i < args.ChildCount(); i++ {
				rw.walkExpression(args.Child(i))
			}
		}
	}
}

// attributeValue dispatches on the shape of a class-bearing attribute's
// value. A plain string is the attribute value itself; anything inside a
// {...} container is reached indirectly and gets nested semantics.
func (rw *rewriter) attributeValue(value *sitter.Node) {
	switch value.Kind() {
	case "string":
		rw.rewriteString(value, true)
	case "jsx_expression":
		for i := uint(0); i < value.ChildCount(); i++ {
			rw.walkExpression(value.Child(i))
		}
	}
}

// walkExpression rewrites every string and template literal in an
// expression subtree. Substitutions inside a rewritten template are left
// verbatim, so the walk never descends past a template boundary.
func (rw *rewriter) walkExpression(node *sitter.Node) {
	switch node.Kind() {
	case "string":
		rw.rewriteString(node, false)
		return
	case "template_string":
		rw.rewriteTemplate(node)
		return
	}
	for i := uint(0); i < node.ChildCount(); i++ {
		rw.walkExpression(node.Child(i))
	}
}

// rewriteString replaces the interior of a quoted string node.
func (rw *rewriter) rewriteString(node *sitter.Node, direct bool) {
	start, end := node.StartByte()+1, node.EndByte()-1
	if end < start || !rw.claim(start, end) {
		return
	}
	content := string(rw.src[start:end])

	buf := &format.Buffer{}
	format.WriteStringLiteral(content, direct, rw.reg, buf)
	rw.edits = append(rw.edits, textedit.Edit{Start: start, End: end, Text: format.Render(buf, rw.reg, rw.sorter)})
}

// rewriteTemplate replaces a whole template literal. Fragments go through
// boundary splitting; backticks, substitutions, and escapes pass through
// verbatim.
func (rw *rewriter) rewriteTemplate(tpl *sitter.Node) {
	if !rw.claim(tpl.StartByte(), tpl.EndByte()) {
		return
	}
	buf := &format.Buffer{}
	for i := uint(0); i < tpl.ChildCount(); i++ {
		child := tpl.Child(i)
		if child.Kind() == "string_fragment" {
			position, exprCount := format.TemplatePosition(child)
			content := string(rw.src[child.StartByte():child.EndByte()])
			format.WriteTemplateFragment(content, rw.opts.TailwindPreserveWhitespace, position, exprCount, rw.reg, buf)
			continue
		}
		buf.WriteText(string(rw.src[child.StartByte():child.EndByte()]))
	}
	rw.edits = append(rw.edits, textedit.Edit{Start: tpl.StartByte(), End: tpl.EndByte(), Text: format.Render(buf, rw.reg, rw.sorter)})
}

// claim marks a span as rewritten. Attribute and call traversals can
// reach the same literal; whichever gets there first owns the edit, and
// both would have produced the same replacement.
func (rw *rewriter) claim(start, end uint) bool {
	key := [2]uint{start, end}
	if rw.seen[key] {
		return false
	}
	rw.seen[key] = true
	return true
}
