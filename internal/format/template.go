package format

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// templateParents are the node kinds whose children form an alternating
// sequence of literal fragments and interpolated expressions. The JS
// grammar produces template_string; template_literal_type is the
// type-level form some grammars expose with the same shape.
var templateParents = map[string]bool{
	"template_string":       true,
	"template_literal_type": true,
}

// TemplatePosition locates a string_fragment within its parent template
// and reports its ordinal index together with the number of interpolated
// expressions. The index is the count of substitutions preceding the
// fragment, which equals the fragment's quasi index even when empty
// fragments between adjacent substitutions produce no node.
//
// Unrecognized parents and unmatched fragments resolve to (0, 0), treating
// the fragment as the sole, first quasi. Template handling must never fail
// a formatting pass, so there is no error return.
func TemplatePosition(fragment *sitter.Node) (position, exprCount int) {
	if fragment == nil {
		return 0, 0
	}
	parent := fragment.Parent()
	if parent == nil || !templateParents[parent.Kind()] {
		return 0, 0
	}

	found := false
	preceding := 0
	for i := uint(0); i < parent.ChildCount(); i++ {
		child := parent.Child(i)
		switch child.Kind() {
		case "template_substitution":
			exprCount++
			if !found {
				preceding++
			}
		case "string_fragment":
			if child.StartByte() == fragment.StartByte() && child.EndByte() == fragment.EndByte() {
				found = true
			}
		}
	}

	if !found {
		return 0, 0
	}
	return preceding, exprCount
}

// WriteTemplateFragment splits one template literal fragment into an
// ignored prefix, a sortable middle, and an ignored suffix, then writes
// the pieces to buf in source order.
//
// Class text that touches an adjacent substitution with no separating
// whitespace is glued to that expression and must stay verbatim; only the
// whitespace-delimited middle is registered for sorting. Whitespace runs
// at the sortable boundary collapse to single spaces, since the sorter is
// defined over whitespace-insensitive token lists.
func WriteTemplateFragment(content string, preserveWhitespace bool, position, exprCount int, reg *Registry, buf *Buffer) {
	if preserveWhitespace {
		buf.WriteClassRef(reg.Add(content))
		return
	}

	isFirst := position == 0
	isLast := position >= exprCount

	ignoreFirst := !isFirst && !startsWithASCIISpace(content)
	ignoreLast := !isLast && !endsWithASCIISpace(content)

	firstWS, lastWS := -1, -1
	if ignoreFirst {
		firstWS = indexASCIISpace(content)
		if firstWS < 0 {
			// No whitespace anywhere: the whole fragment is glued to the
			// preceding expression and must not be reordered or padded.
			buf.WriteText(content)
			return
		}
	}
	if ignoreLast {
		lastWS = lastIndexASCIISpace(content)
		if lastWS < 0 {
			// Symmetric case: glued to the following expression.
			buf.WriteText(content)
			return
		}
	}

	// Partition into prefix | sortable | suffix. A single whitespace run
	// cannot anchor both ends, so coincident indices fall back to the
	// prefix-only split.
	var prefix, sortable, suffix string
	switch {
	case firstWS >= 0 && lastWS >= 0 && firstWS < lastWS:
		prefix, sortable, suffix = content[:firstWS], content[firstWS:lastWS+1], content[lastWS+1:]
	case firstWS >= 0:
		prefix, sortable = content[:firstWS], content[firstWS:]
	case lastWS >= 0:
		sortable, suffix = content[:lastWS+1], content[lastWS+1:]
	default:
		sortable = content
	}

	if prefix != "" {
		buf.WriteText(prefix)
	}

	trimmed := trimASCIISpace(sortable)
	if trimmed == "" {
		// Whitespace-only sortable region normalizes to a single space.
		if sortable != "" {
			buf.WriteText(" ")
		}
	} else {
		if !isFirst || prefix != "" {
			buf.WriteText(" ")
		}
		buf.WriteClassRef(reg.Add(trimmed))
		if !isLast || suffix != "" {
			buf.WriteText(" ")
		}
	}

	if suffix != "" {
		buf.WriteText(suffix)
	}
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func startsWithASCIISpace(s string) bool {
	return s != "" && isASCIISpace(s[0])
}

func endsWithASCIISpace(s string) bool {
	return s != "" && isASCIISpace(s[len(s)-1])
}

func indexASCIISpace(s string) int {
	for i := 0; i < len(s); i++ {
		if isASCIISpace(s[i]) {
			return i
		}
	}
	return -1
}

func lastIndexASCIISpace(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if isASCIISpace(s[i]) {
			return i
		}
	}
	return -1
}

func trimASCIISpace(s string) string {
	start := 0
	for start < len(s) && isASCIISpace(s[start]) {
		start++
	}
	end := len(s)
	for end > start && isASCIISpace(s[end-1]) {
		end--
	}
	return s[start:end]
}
