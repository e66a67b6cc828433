package document

import "strings"

// Path is a dotted identifier chain naming a field elsewhere in the
// document: an integer's clock map, a sequence's length, or a variant's
// tag (spec.md §4.1, Glossary "Dotted path"). The resolver flattens both
// `.` and `->` postfix chains into this same flat form (spec.md §9).
type Path []string

// String renders the path in its canonical dotted form, regardless of
// whether the source used `.` or `->`.
func (p Path) String() string {
	return strings.Join([]string(p), ".")
}

// First returns the path's first component, or "" if the path is empty.
func (p Path) First() string {
	if len(p) == 0 {
		return ""
	}
	return p[0]
}
