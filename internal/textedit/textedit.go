// Package textedit applies byte-span replacements to source text.
package textedit

import (
	"sort"
	"strings"
)

// Edit replaces source bytes [Start, End) with Text.
type Edit struct {
	Start uint
	End   uint
	Text  string
}

// Apply splices edits into source in ascending span order. When spans
// nest or overlap the earliest (outermost) edit wins and the contained
// one is dropped, so rewrites stay deterministic when sites nest.
func Apply(source []byte, edits []Edit) string {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End > sorted[j].End
	})

	var sb strings.Builder
	cursor := uint(0)
	for _, e := range sorted {
		if e.Start < cursor {
			continue
		}
		sb.Write(source[cursor:e.Start])
		sb.WriteString(e.Text)
		cursor = e.End
	}
	sb.Write(source[cursor:])
	return sb.String()
}
