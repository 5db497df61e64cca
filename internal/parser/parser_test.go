package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rualang/rua/internal/ast"
)

func parseModule(t *testing.T, source string) *ast.Module {
	t.Helper()
	p, err := New()
	require.NoError(t, err)
	t.Cleanup(p.Close)

	mod, err := p.ParseModule([]byte(source))
	require.NoError(t, err)
	return mod
}

func TestParseModule_Function(t *testing.T) {
	mod := parseModule(t, "fn add(a: u32, b: u32) -> u32 {\n    return a + b;\n}\n")

	require.Len(t, mod.Items, 1)
	fn, ok := mod.Items[0].(*ast.FuncDecl)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)

	require.Len(t, fn.Params, 2)
	assert.Equal(t, &ast.IdentPattern{Name: "a"}, fn.Params[0].Pat)
	assert.Equal(t, "u32", fn.Params[0].Type)
	assert.Equal(t, &ast.IdentPattern{Name: "b"}, fn.Params[1].Pat)

	require.Len(t, fn.Body.Stmts, 1)
	stmt, ok := fn.Body.Stmts[0].(*ast.ExprStmt)
	require.True(t, ok)
	assert.True(t, stmt.Semi)

	ret, ok := stmt.X.(*ast.ReturnExpr)
	require.True(t, ok)
	bin, ok := ret.Value.(*ast.BinaryExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, bin.Op)
}

func TestParseModule_LetAndCall(t *testing.T) {
	mod := parseModule(t, "fn main() {\n    let x = f(1, \"a\");\n}\n")

	fn := mod.Items[0].(*ast.FuncDecl)
	require.Len(t, fn.Body.Stmts, 1)
	let, ok := fn.Body.Stmts[0].(*ast.LetStmt)
	require.True(t, ok)
	assert.Equal(t, &ast.IdentPattern{Name: "x"}, let.Pat)

	call, ok := let.Init.(*ast.CallExpr)
	require.True(t, ok)
	assert.Equal(t, &ast.PathExpr{Path: ast.Path{Segments: []string{"f"}}}, call.Fun)
	require.Len(t, call.Args, 2)
	assert.Equal(t, &ast.IntLit{Value: 1}, call.Args[0])
	assert.Equal(t, &ast.StringLit{Value: "a"}, call.Args[1])
}

func TestParseModule_LoopIfBreak(t *testing.T) {
	source := "fn main() {\n" +
		"    loop {\n" +
		"        if x == 3 {\n" +
		"            break 1;\n" +
		"        }\n" +
		"        x += 1;\n" +
		"    }\n" +
		"}\n"
	mod := parseModule(t, source)

	fn := mod.Items[0].(*ast.FuncDecl)
	loopStmt := fn.Body.Stmts[0].(*ast.ExprStmt)
	loop, ok := loopStmt.X.(*ast.LoopExpr)
	require.True(t, ok)
	require.Len(t, loop.Body.Stmts, 2)

	cond, ok := loop.Body.Stmts[0].(*ast.ExprStmt).X.(*ast.IfExpr)
	require.True(t, ok)
	assert.Nil(t, cond.Else)
	brk, ok := cond.Then.Stmts[0].(*ast.ExprStmt).X.(*ast.BreakExpr)
	require.True(t, ok)
	assert.Equal(t, &ast.IntLit{Value: 1}, brk.Value)

	compound, ok := loop.Body.Stmts[1].(*ast.ExprStmt).X.(*ast.CompoundAssignExpr)
	require.True(t, ok)
	assert.Equal(t, ast.OpAdd, compound.Op)
}

func TestParseModule_ElseAndElseIf(t *testing.T) {
	source := "fn main() {\n" +
		"    if a == 1 {\n" +
		"        f();\n" +
		"    } else if a == 2 {\n" +
		"        g();\n" +
		"    } else {\n" +
		"        h();\n" +
		"    }\n" +
		"}\n"
	mod := parseModule(t, source)

	fn := mod.Items[0].(*ast.FuncDecl)
	ifExpr, ok := fn.Body.Stmts[0].(*ast.ExprStmt).X.(*ast.IfExpr)
	require.True(t, ok)
	assert.Nil(t, ifExpr.Else)
	require.NotNil(t, ifExpr.ElseIf)
	assert.Nil(t, ifExpr.ElseIf.ElseIf)
	assert.NotNil(t, ifExpr.ElseIf.Else)
}

func TestParseModule_LabeledBreakKeepsValue(t *testing.T) {
	source := "fn main() {\n" +
		"    'outer: loop {\n" +
		"        break 'outer;\n" +
		"        break 'outer 5;\n" +
		"    }\n" +
		"}\n"
	mod := parseModule(t, source)

	fn := mod.Items[0].(*ast.FuncDecl)
	loop, ok := fn.Body.Stmts[0].(*ast.ExprStmt).X.(*ast.LoopExpr)
	require.True(t, ok)
	require.Len(t, loop.Body.Stmts, 2)

	bare, ok := loop.Body.Stmts[0].(*ast.ExprStmt).X.(*ast.BreakExpr)
	require.True(t, ok)
	assert.Nil(t, bare.Value, "label must not be mistaken for a break value")

	valued, ok := loop.Body.Stmts[1].(*ast.ExprStmt).X.(*ast.BreakExpr)
	require.True(t, ok)
	assert.Equal(t, &ast.IntLit{Value: 5}, valued.Value)
}

func TestParseModule_TailExpressionHasNoSeparator(t *testing.T) {
	mod := parseModule(t, "fn one() -> u32 {\n    1\n}\n")

	fn := mod.Items[0].(*ast.FuncDecl)
	require.Len(t, fn.Body.Stmts, 1)
	stmt := fn.Body.Stmts[0].(*ast.ExprStmt)
	assert.False(t, stmt.Semi)
	assert.Equal(t, &ast.IntLit{Value: 1}, stmt.X)
}

func TestParseModule_UnsupportedConstructsLowerToCatchAlls(t *testing.T) {
	source := "struct Point { x: u32 }\n" +
		"fn main() {\n" +
		"    let (a, b) = pair;\n" +
		"    let p = m::f();\n" +
		"    let f = 1.5;\n" +
		"}\n"
	mod := parseModule(t, source)

	require.Len(t, mod.Items, 2)
	item, ok := mod.Items[0].(*ast.UnsupportedItem)
	require.True(t, ok)
	assert.Equal(t, "struct_item", item.Construct)

	fn := mod.Items[1].(*ast.FuncDecl)
	require.Len(t, fn.Body.Stmts, 3)

	tuplePat, ok := fn.Body.Stmts[0].(*ast.LetStmt).Pat.(*ast.UnsupportedPattern)
	require.True(t, ok)
	assert.Equal(t, "tuple_pattern", tuplePat.Construct)

	call, ok := fn.Body.Stmts[1].(*ast.LetStmt).Init.(*ast.CallExpr)
	require.True(t, ok)
	scoped, ok := call.Fun.(*ast.PathExpr)
	require.True(t, ok)
	assert.Equal(t, []string{"m", "f"}, scoped.Path.Segments)

	lit, ok := fn.Body.Stmts[2].(*ast.LetStmt).Init.(*ast.UnsupportedLit)
	require.True(t, ok)
	assert.Equal(t, "float_literal", lit.Construct)
}

func TestParseModule_SyntaxErrorIsFatal(t *testing.T) {
	p, err := New()
	require.NoError(t, err)
	defer p.Close()

	_, err = p.ParseModule([]byte("fn broken( {"))
	assert.Error(t, err)
}

func TestParseIntegerText(t *testing.T) {
	cases := []struct {
		text string
		want uint64
		ok   bool
	}{
		{"0", 0, true},
		{"42", 42, true},
		{"1_000", 1000, true},
		{"7u32", 7, true},
		{"10i64", 10, true},
		{"0xff", 255, true},
		{"0b101", 5, true},
		{"not a number", 0, false},
	}
	for _, tc := range cases {
		got, ok := parseIntegerText(tc.text)
		assert.Equal(t, tc.ok, ok, "text %q", tc.text)
		if tc.ok {
			assert.Equal(t, tc.want, got, "text %q", tc.text)
		}
	}
}

func TestUnescapeSequence(t *testing.T) {
	cases := map[string]string{
		`\n`:        "\n",
		`\t`:        "\t",
		`\\`:        "\\",
		`\"`:        "\"",
		`\x41`:      "A",
		`\u{1F600}`: "\U0001F600",
	}
	for seq, want := range cases {
		assert.Equal(t, want, unescapeSequence(seq), "sequence %q", seq)
	}
}
