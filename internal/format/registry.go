package format

// Registry records every class list captured during one formatting pass.
// Entries are appended in traversal order and addressed by index. The same
// text registered twice yields two entries, because each occurrence is
// sorted and reinserted at its own spot in the output.
type Registry struct {
	classes []string
}

// Add appends text and returns its index. Indexes increase monotonically
// within a pass and are never reused.
func (r *Registry) Add(text string) int {
	r.classes = append(r.classes, text)
	return len(r.classes) - 1
}

// At returns the text registered at index.
func (r *Registry) At(index int) string {
	return r.classes[index]
}

// Len returns the number of registered entries.
func (r *Registry) Len() int {
	return len(r.classes)
}
