// Package ast defines the syntax tree consumed by the Lua generator.
//
// Each syntactic category is a closed tagged union: an interface with a
// marker method, one concrete struct per supported shape, plus a catch-all
// Unsupported* shape carrying the name of the source construct it stands in
// for. The generator dispatches exhaustively and rejects the catch-alls, so
// adding a supported shape is a single-point change.
package ast

type NodeKind string

const (
	KindModule             NodeKind = "Module"
	KindFuncDecl           NodeKind = "FunctionDefinition"
	KindBlock              NodeKind = "Block"
	KindExprStmt           NodeKind = "ExpressionStatement"
	KindLetStmt            NodeKind = "LetStatement"
	KindStringLit          NodeKind = "StringLiteral"
	KindIntLit             NodeKind = "IntegerLiteral"
	KindPathExpr           NodeKind = "PathExpression"
	KindCallExpr           NodeKind = "CallExpression"
	KindBinaryExpr         NodeKind = "BinaryExpression"
	KindAssignExpr         NodeKind = "AssignmentExpression"
	KindCompoundAssignExpr NodeKind = "CompoundAssignmentExpression"
	KindReturnExpr         NodeKind = "ReturnExpression"
	KindLoopExpr           NodeKind = "LoopExpression"
	KindIfExpr             NodeKind = "IfExpression"
	KindBreakExpr          NodeKind = "BreakExpression"
	KindIdentPattern       NodeKind = "IdentifierPattern"
	KindPathPattern        NodeKind = "PathPattern"
	KindUnsupportedItem    NodeKind = "UnsupportedItem"
	KindUnsupportedStmt    NodeKind = "UnsupportedStatement"
	KindUnsupportedExpr    NodeKind = "UnsupportedExpression"
	KindUnsupportedLit     NodeKind = "UnsupportedLiteral"
	KindUnsupportedPattern NodeKind = "UnsupportedPattern"
)

type Node interface {
	Kind() NodeKind
}

// Marker interfaces, one per syntactic category.

type Item interface {
	Node
	itemNode()
}

type Stmt interface {
	Node
	stmtNode()
}

type Expr interface {
	Node
	exprNode()
}

type Pattern interface {
	Node
	patternNode()
}

// Module is the root of translation: an ordered sequence of items.
type Module struct {
	Items []Item
}

func (*Module) Kind() NodeKind { return KindModule }

// Path is a qualified name. The generator only accepts single-segment
// paths; the parser still records every segment for diagnostics.
type Path struct {
	Segments []string
}

// Param is a function parameter. The declared type is carried because the
// source tree has one, but the target language is untyped and it is never
// emitted.
type Param struct {
	Pat  Pattern
	Type string
}

// Block is an ordered, indentation-scoped statement sequence.
type Block struct {
	Stmts []Stmt
}

func (*Block) Kind() NodeKind { return KindBlock }

// Items.

// FuncDecl is a function definition. It doubles as a statement so that
// functions can nest.
type FuncDecl struct {
	Name   string
	Params []Param
	Body   *Block
}

func (*FuncDecl) Kind() NodeKind { return KindFuncDecl }
func (*FuncDecl) itemNode()      {}
func (*FuncDecl) stmtNode()      {}

// UnsupportedItem stands in for any item variant outside the supported
// subset. Construct names the source grammar construct.
type UnsupportedItem struct {
	Construct string
}

func (*UnsupportedItem) Kind() NodeKind { return KindUnsupportedItem }
func (*UnsupportedItem) itemNode()      {}
func (*UnsupportedItem) stmtNode()      {}

// Statements.

// ExprStmt is an expression in statement position. Semi records whether the
// source carried a trailing semicolon; both forms emit identically.
type ExprStmt struct {
	X    Expr
	Semi bool
}

func (*ExprStmt) Kind() NodeKind { return KindExprStmt }
func (*ExprStmt) stmtNode()      {}

// LetStmt is a local binding. Init may be nil.
type LetStmt struct {
	Pat  Pattern
	Init Expr
}

func (*LetStmt) Kind() NodeKind { return KindLetStmt }
func (*LetStmt) stmtNode()      {}

type UnsupportedStmt struct {
	Construct string
}

func (*UnsupportedStmt) Kind() NodeKind { return KindUnsupportedStmt }
func (*UnsupportedStmt) stmtNode()      {}

// Expressions.

type StringLit struct {
	Value string
}

func (*StringLit) Kind() NodeKind { return KindStringLit }
func (*StringLit) exprNode()      {}

// IntLit holds the literal's value. Source literals are unsigned; negation
// is a unary expression upstream.
type IntLit struct {
	Value uint64
}

func (*IntLit) Kind() NodeKind { return KindIntLit }
func (*IntLit) exprNode()      {}

type PathExpr struct {
	Path Path
}

func (*PathExpr) Kind() NodeKind { return KindPathExpr }
func (*PathExpr) exprNode()      {}

type CallExpr struct {
	Fun  Expr
	Args []Expr
}

func (*CallExpr) Kind() NodeKind { return KindCallExpr }
func (*CallExpr) exprNode()      {}

type BinaryExpr struct {
	Op   BinaryOp
	X, Y Expr
}

func (*BinaryExpr) Kind() NodeKind { return KindBinaryExpr }
func (*BinaryExpr) exprNode()      {}

type AssignExpr struct {
	Target Expr
	Value  Expr
}

func (*AssignExpr) Kind() NodeKind { return KindAssignExpr }
func (*AssignExpr) exprNode()      {}

// CompoundAssignExpr is `target op= value`. The generator desugars it into
// `target = target op value`.
type CompoundAssignExpr struct {
	Op     BinaryOp
	Target Expr
	Value  Expr
}

func (*CompoundAssignExpr) Kind() NodeKind { return KindCompoundAssignExpr }
func (*CompoundAssignExpr) exprNode()      {}

// ReturnExpr returns from the enclosing function. Value may be nil.
type ReturnExpr struct {
	Value Expr
}

func (*ReturnExpr) Kind() NodeKind { return KindReturnExpr }
func (*ReturnExpr) exprNode()      {}

// LoopExpr is an unconditional loop.
type LoopExpr struct {
	Body *Block
}

func (*LoopExpr) Kind() NodeKind { return KindLoopExpr }
func (*LoopExpr) exprNode()      {}

// IfExpr is a conditional. At most one of ElseIf and Else is non-nil; an
// else-if chain hangs off ElseIf.
type IfExpr struct {
	Cond   Expr
	Then   *Block
	ElseIf *IfExpr
	Else   *Block
}

func (*IfExpr) Kind() NodeKind { return KindIfExpr }
func (*IfExpr) exprNode()      {}

// BreakExpr exits the enclosing loop. Value may be nil.
type BreakExpr struct {
	Value Expr
}

func (*BreakExpr) Kind() NodeKind { return KindBreakExpr }
func (*BreakExpr) exprNode()      {}

type UnsupportedExpr struct {
	Construct string
}

func (*UnsupportedExpr) Kind() NodeKind { return KindUnsupportedExpr }
func (*UnsupportedExpr) exprNode()      {}

// UnsupportedLit stands in for literal kinds other than string and integer.
type UnsupportedLit struct {
	Construct string
}

func (*UnsupportedLit) Kind() NodeKind { return KindUnsupportedLit }
func (*UnsupportedLit) exprNode()      {}

// Patterns.

type IdentPattern struct {
	Name string
}

func (*IdentPattern) Kind() NodeKind { return KindIdentPattern }
func (*IdentPattern) patternNode()   {}

// PathPattern is a pattern written as a qualified name. Only single-segment
// paths survive translation.
type PathPattern struct {
	Path Path
}

func (*PathPattern) Kind() NodeKind { return KindPathPattern }
func (*PathPattern) patternNode()   {}

type UnsupportedPattern struct {
	Construct string
}

func (*UnsupportedPattern) Kind() NodeKind { return KindUnsupportedPattern }
func (*UnsupportedPattern) patternNode()   {}
