package format

import "strings"

// Element is one unit of formatter output: either a verbatim text run or a
// reference to a registered class list, resolved after sorting.
type Element struct {
	kind  elementKind
	text  string
	class int
}

type elementKind uint8

const (
	elementText elementKind = iota
	elementClassRef
)

// Text creates a verbatim text element.
func Text(s string) Element {
	return Element{kind: elementText, text: s}
}

// ClassRef creates an element referring to a registry entry.
func ClassRef(index int) Element {
	return Element{kind: elementClassRef, class: index}
}

// Buffer accumulates output elements in traversal order.
type Buffer struct {
	elements []Element
}

// WriteText appends a verbatim text run.
func (b *Buffer) WriteText(s string) {
	b.elements = append(b.elements, Text(s))
}

// WriteClassRef appends a reference to registry entry index.
func (b *Buffer) WriteClassRef(index int) {
	b.elements = append(b.elements, ClassRef(index))
}

// Elements returns the accumulated elements in write order.
func (b *Buffer) Elements() []Element {
	return b.elements
}

// Sorter reorders a raw class list. Implementations live outside this
// package; rendering only substitutes their output for registered refs.
type Sorter interface {
	Sort(classList string) string
}

// Render resolves buf to final text, replacing each class ref with the
// sorter's output for its registered text.
func Render(buf *Buffer, reg *Registry, s Sorter) string {
	var sb strings.Builder
	for _, el := range buf.elements {
		switch el.kind {
		case elementText:
			sb.WriteString(el.text)
		case elementClassRef:
			sb.WriteString(s.Sort(reg.At(el.class)))
		}
	}
	return sb.String()
}
