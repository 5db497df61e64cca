package ast

// BinaryOp enumerates the source language's binary operators. Symbols are
// emitted verbatim; the generator performs no respelling for the target
// language.
type BinaryOp int

const (
	OpAdd BinaryOp = iota // +
	OpSub                 // -
	OpMul                 // *
	OpDiv                 // /
	OpRem                 // %
	OpAnd                 // &&
	OpOr                  // ||
	OpBitXor              // ^
	OpBitAnd              // &
	OpBitOr               // |
	OpShl                 // <<
	OpShr                 // >>
	OpEq                  // ==
	OpLt                  // <
	OpLe                  // <=
	OpNe                  // !=
	OpGe                  // >=
	OpGt                  // >
)

var opSymbols = map[BinaryOp]string{
	OpAdd:    "+",
	OpSub:    "-",
	OpMul:    "*",
	OpDiv:    "/",
	OpRem:    "%",
	OpAnd:    "&&",
	OpOr:     "||",
	OpBitXor: "^",
	OpBitAnd: "&",
	OpBitOr:  "|",
	OpShl:    "<<",
	OpShr:    ">>",
	OpEq:     "==",
	OpLt:     "<",
	OpLe:     "<=",
	OpNe:     "!=",
	OpGe:     ">=",
	OpGt:     ">",
}

var symbolOps = func() map[string]BinaryOp {
	m := make(map[string]BinaryOp, len(opSymbols))
	for op, sym := range opSymbols {
		m[sym] = op
	}
	return m
}()

// String returns the operator's canonical textual symbol.
func (op BinaryOp) String() string {
	if sym, ok := opSymbols[op]; ok {
		return sym
	}
	return "?"
}

// OpFromSymbol maps an operator spelling back to its BinaryOp. The second
// result is false for spellings outside the supported set.
func OpFromSymbol(sym string) (BinaryOp, bool) {
	op, ok := symbolOps[sym]
	return op, ok
}
