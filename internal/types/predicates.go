package types

// Identical reports whether x and y are identical types.
// Types from the same Table are identical exactly when they are the same
// pointer; nil (no value) is identical only to nil.
func Identical(x, y Type) bool {
	return x == y
}

// HasValue reports whether an expression of type t produces a value.
// Calls of procedures without a result have no type.
func HasValue(t Type) bool {
	return t != nil
}

// TypeString returns the display form of t used in diagnostics.
// The absent type of a valueless expression reads "no value".
func TypeString(t Type) string {
	if t == nil {
		return "no value"
	}
	return t.String()
}
