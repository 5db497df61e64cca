// Package generator translates a parsed syntax tree into Lua source text.
//
// Translation is a single recursive-descent pass: one function per
// syntactic category, each writing directly to a shared emitter. There is no
// intermediate representation and no node is revisited after emission. Any
// node outside the supported subset stops the run with an UnsupportedError;
// no partial output survives a failure.
//
// Operator symbols are emitted verbatim (`!=`, `&&`, `||` are not respelled
// for Lua); callers own operator compatibility.
package generator

import (
	"fmt"
	"strconv"

	"github.com/rualang/rua/internal/ast"
	"github.com/rualang/rua/internal/config"
)

// Generator is created once per input program and discarded after its
// buffer is read. It holds no state beyond the emitter.
type Generator struct {
	out *emitter
}

func New(cfg *config.Config) *Generator {
	width := cfg.Indent
	if width <= 0 {
		width = config.DefaultIndent
	}
	return &Generator{out: newEmitter(width)}
}

// Module is the top-level entry point: it translates the module's items in
// declaration order and returns the full output buffer. On any failure the
// buffer is discarded and only the error is returned.
func (g *Generator) Module(m *ast.Module) ([]byte, error) {
	g.out.reset()
	for _, item := range m.Items {
		if err := g.item(item); err != nil {
			return nil, err
		}
		// Blank line separator between functions.
		g.out.newline()
	}
	return g.out.bytes(), nil
}

func (g *Generator) item(item ast.Item) error {
	switch it := item.(type) {
	case *ast.FuncDecl:
		g.out.writeString("function " + it.Name)
		if err := g.params(it.Params); err != nil {
			return err
		}
		g.out.newline()
		if err := g.block(it.Body); err != nil {
			return err
		}
		g.end()
		g.out.newline()
		return nil
	case *ast.UnsupportedItem:
		return unsupported(ConstructItem, it.Construct)
	default:
		return unsupported(ConstructItem, string(item.Kind()))
	}
}

// block translates the statements one level deeper. The net depth change
// across a block is always zero, even on failure.
func (g *Generator) block(b *ast.Block) error {
	return g.out.nest(func() error {
		for _, s := range b.Stmts {
			if err := g.stmt(s); err != nil {
				return err
			}
		}
		return nil
	})
}

func (g *Generator) stmt(s ast.Stmt) error {
	g.out.writeIndent()
	switch st := s.(type) {
	case *ast.FuncDecl:
		if err := g.item(st); err != nil {
			return err
		}
	case *ast.ExprStmt:
		// The trailing-separator form emits identically to the bare form.
		if err := g.expr(st.X); err != nil {
			return err
		}
	case *ast.LetStmt:
		g.out.writeString("local ")
		if err := g.pattern(st.Pat); err != nil {
			return err
		}
		if st.Init != nil {
			g.out.writeString(" = ")
			if err := g.expr(st.Init); err != nil {
				return err
			}
		}
	case *ast.UnsupportedItem:
		return unsupported(ConstructItem, st.Construct)
	case *ast.UnsupportedStmt:
		return unsupported(ConstructStatement, st.Construct)
	default:
		return unsupported(ConstructStatement, string(s.Kind()))
	}
	// One statement per line, terminated here and nowhere else.
	g.out.newline()
	return nil
}

func (g *Generator) expr(e ast.Expr) error {
	switch x := e.(type) {
	case *ast.StringLit:
		g.out.writeString(quoteString(x.Value))
	case *ast.IntLit:
		g.out.writeString(strconv.FormatUint(x.Value, 10))
	case *ast.PathExpr:
		return g.path(x.Path)
	case *ast.CallExpr:
		if err := g.expr(x.Fun); err != nil {
			return err
		}
		return g.tuple(x.Args)
	case *ast.BinaryExpr:
		return g.op(x.Op, x.X, x.Y)
	case *ast.AssignExpr:
		if err := g.expr(x.Target); err != nil {
			return err
		}
		g.out.writeString(" = ")
		return g.expr(x.Value)
	case *ast.CompoundAssignExpr:
		// x op= y desugars to x = x op y.
		if err := g.expr(x.Target); err != nil {
			return err
		}
		g.out.writeString(" = ")
		return g.op(x.Op, x.Target, x.Value)
	case *ast.ReturnExpr:
		g.out.writeString("return")
		if x.Value != nil {
			g.out.writeString(" ")
			return g.expr(x.Value)
		}
	case *ast.LoopExpr:
		g.out.writeString("while true do\n")
		if err := g.block(x.Body); err != nil {
			return err
		}
		g.end()
	case *ast.IfExpr:
		return g.conditional(x)
	case *ast.BreakExpr:
		g.out.writeString("break")
		if x.Value != nil {
			g.out.writeString(" ")
			return g.expr(x.Value)
		}
	case *ast.UnsupportedLit:
		return unsupported(ConstructLiteral, x.Construct)
	case *ast.UnsupportedExpr:
		return unsupported(ConstructExpression, x.Construct)
	default:
		return unsupported(ConstructExpression, string(e.Kind()))
	}
	return nil
}

func (g *Generator) conditional(x *ast.IfExpr) error {
	g.out.writeString("if ")
	if err := g.expr(x.Cond); err != nil {
		return err
	}
	g.out.writeString(" then\n")
	if err := g.block(x.Then); err != nil {
		return err
	}
	cur := x
	for cur.ElseIf != nil {
		cur = cur.ElseIf
		g.out.writeIndent()
		g.out.writeString("elseif ")
		if err := g.expr(cur.Cond); err != nil {
			return err
		}
		g.out.writeString(" then\n")
		if err := g.block(cur.Then); err != nil {
			return err
		}
	}
	if cur.Else != nil {
		g.out.writeIndent()
		g.out.writeString("else\n")
		if err := g.block(cur.Else); err != nil {
			return err
		}
	}
	g.end()
	return nil
}

func (g *Generator) op(op ast.BinaryOp, lhs, rhs ast.Expr) error {
	if err := g.expr(lhs); err != nil {
		return err
	}
	g.out.writeString(" " + op.String() + " ")
	return g.expr(rhs)
}

func (g *Generator) pattern(p ast.Pattern) error {
	switch pt := p.(type) {
	case *ast.IdentPattern:
		g.out.writeString(pt.Name)
		return nil
	case *ast.PathPattern:
		return g.path(pt.Path)
	case *ast.UnsupportedPattern:
		return unsupported(ConstructPattern, pt.Construct)
	default:
		return unsupported(ConstructPattern, string(p.Kind()))
	}
}

// path accepts exactly one segment; the target has no qualified names.
func (g *Generator) path(p ast.Path) error {
	if len(p.Segments) != 1 {
		return unsupported(ConstructPath, joinSegments(p.Segments))
	}
	g.out.writeString(p.Segments[0])
	return nil
}

// tuple emits a parenthesized, comma-space-separated argument list.
func (g *Generator) tuple(args []ast.Expr) error {
	g.out.writeString("(")
	for i, arg := range args {
		if i > 0 {
			g.out.writeString(", ")
		}
		if err := g.expr(arg); err != nil {
			return err
		}
	}
	g.out.writeString(")")
	return nil
}

// params is tuple's counterpart for parameter patterns; declared types are
// discarded.
func (g *Generator) params(params []ast.Param) error {
	g.out.writeString("(")
	for i, p := range params {
		if i > 0 {
			g.out.writeString(", ")
		}
		if err := g.pattern(p.Pat); err != nil {
			return err
		}
	}
	g.out.writeString(")")
	return nil
}

// end closes a block at the enclosing indentation.
func (g *Generator) end() {
	g.out.writeIndent()
	g.out.writeString("end")
}

// quoteString renders a Lua single-quoted string. Backslash, quote, and
// control characters are escaped so embedded quotes cannot break the
// generated program.
func quoteString(s string) string {
	var b []byte
	b = append(b, '\'')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '\\':
			b = append(b, '\\', '\\')
		case '\'':
			b = append(b, '\\', '\'')
		case '\n':
			b = append(b, '\\', 'n')
		case '\r':
			b = append(b, '\\', 'r')
		case '\t':
			b = append(b, '\\', 't')
		default:
			if c < 0x20 || c == 0x7f {
				// Fixed-width decimal: Lua reads up to three digits after
				// the backslash, so \1 followed by a literal digit would
				// merge into a different byte.
				b = append(b, fmt.Sprintf("\\%03d", c)...)
			} else {
				b = append(b, c)
			}
		}
	}
	b = append(b, '\'')
	return string(b)
}

func joinSegments(segments []string) string {
	out := ""
	for i, seg := range segments {
		if i > 0 {
			out += "::"
		}
		out += seg
	}
	return out
}
