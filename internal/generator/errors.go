package generator

import "fmt"

// Construct classifies which syntactic category an unsupported node belongs
// to. One value per error in the taxonomy.
type Construct string

const (
	ConstructItem       Construct = "item"
	ConstructStatement  Construct = "statement"
	ConstructExpression Construct = "expression"
	ConstructLiteral    Construct = "literal"
	ConstructPattern    Construct = "pattern"
	ConstructPath       Construct = "path"
)

// UnsupportedError reports a syntax-tree node outside the supported subset.
// It identifies the offending category and the source construct so callers
// can tell "the input uses a construct this engine does not model" apart
// from a tooling bug.
type UnsupportedError struct {
	Construct Construct
	Detail    string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported %s: %s", e.Construct, e.Detail)
}

func unsupported(c Construct, detail string) error {
	return &UnsupportedError{Construct: c, Detail: detail}
}
