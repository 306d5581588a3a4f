// Package sexp provides a lightweight S-expression parser for KiCad
// footprint files. Unlike general-purpose sexp libraries, token text keeps
// its original quoting, so a quoted source token like "F.Cu" survives the
// round trip byte for byte. The rewrite pipeline depends on that.
package sexp

// Sexp represents an S-expression node.
// It is either a leaf (atom) or a list.
type Sexp interface {
	// IsLeaf returns true if this is an atom (not a list)
	IsLeaf() bool

	// String returns the source-form text of the node
	String() string
}

// Symbol represents an atomic token (identifier, number, quoted string).
// Quoted strings keep their surrounding quotes.
type Symbol string

func (s Symbol) IsLeaf() bool   { return true }
func (s Symbol) String() string { return string(s) }

// List represents an ordered list of S-expressions
type List struct {
	elements []Sexp
}

func (l *List) IsLeaf() bool { return false }

// Len returns the number of elements in the list
func (l *List) Len() int {
	return len(l.elements)
}

// Get returns the element at the given index, or nil when out of range
func (l *List) Get(index int) Sexp {
	if index < 0 || index >= len(l.elements) {
		return nil
	}
	return l.elements[index]
}

// Elements returns the ordered elements of the list
func (l *List) Elements() []Sexp {
	return l.elements
}

func (l *List) String() string {
	result := "("
	for i, elem := range l.elements {
		if i > 0 {
			result += " "
		}
		result += elem.String()
	}
	result += ")"
	return result
}
