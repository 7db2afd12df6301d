package format

// WriteStringLiteral handles a quoted class list outside any template
// structure. A literal used directly as an attribute value is registered
// whole; the sorter owns its whitespace. A literal reached indirectly,
// such as an argument of a class-bearing function call, keeps its leading
// and trailing whitespace runs verbatim and registers only the middle, so
// the sorter's trimming cannot eat whitespace the source relies on.
func WriteStringLiteral(content string, directAttributeValue bool, reg *Registry, buf *Buffer) {
	if directAttributeValue {
		buf.WriteClassRef(reg.Add(content))
		return
	}

	lead := 0
	for lead < len(content) && isASCIISpace(content[lead]) {
		lead++
	}
	trail := len(content)
	for trail > lead && isASCIISpace(content[trail-1]) {
		trail--
	}

	if lead > 0 {
		buf.WriteText(content[:lead])
	}
	if middle := content[lead:trail]; middle != "" {
		buf.WriteClassRef(reg.Add(middle))
	}
	if trail < len(content) {
		buf.WriteText(content[trail:])
	}
}
