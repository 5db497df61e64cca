package parser

import (
	"strings"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/rualang/rua/internal/ast"
)

func lowerItem(node *sitter.Node, source []byte) ast.Item {
	switch node.Kind() {
	case "function_item":
		return lowerFunction(node, source)
	default:
		return &ast.UnsupportedItem{Construct: node.Kind()}
	}
}

func lowerFunction(node *sitter.Node, source []byte) ast.Item {
	body := node.ChildByFieldName("body")
	if body == nil {
		return &ast.UnsupportedItem{Construct: node.Kind()}
	}

	fn := &ast.FuncDecl{
		Name: sliceContent(node.ChildByFieldName("name"), source),
		Body: lowerBlock(body, source),
	}

	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := uint(0); i < params.NamedChildCount(); i++ {
			child := params.NamedChild(i)
			if child == nil || isIgnorableNode(child) {
				continue
			}
			if child.Kind() != "parameter" {
				fn.Params = append(fn.Params, ast.Param{Pat: &ast.UnsupportedPattern{Construct: child.Kind()}})
				continue
			}
			fn.Params = append(fn.Params, ast.Param{
				Pat:  lowerPattern(child.ChildByFieldName("pattern"), source),
				Type: sliceContent(child.ChildByFieldName("type"), source),
			})
		}
	}

	return fn
}

func lowerBlock(node *sitter.Node, source []byte) *ast.Block {
	block := &ast.Block{}
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil || isIgnorableNode(child) {
			continue
		}
		if stmt := lowerStmt(child, source); stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
	}
	return block
}

func lowerStmt(node *sitter.Node, source []byte) ast.Stmt {
	kind := node.Kind()
	switch kind {
	case "let_declaration":
		let := &ast.LetStmt{Pat: lowerPattern(node.ChildByFieldName("pattern"), source)}
		if value := node.ChildByFieldName("value"); value != nil {
			let.Init = lowerExpr(value, source)
		}
		return let
	case "expression_statement":
		inner := firstNamedChild(node)
		if inner == nil {
			return &ast.UnsupportedStmt{Construct: kind}
		}
		return &ast.ExprStmt{X: lowerExpr(inner, source), Semi: hasSemicolon(node)}
	case "empty_statement":
		return nil
	}
	if isItemKind(kind) {
		item := lowerItem(node, source)
		if stmt, ok := item.(ast.Stmt); ok {
			return stmt
		}
		return &ast.UnsupportedStmt{Construct: kind}
	}
	// A block's trailing expression appears as a direct child with no
	// statement wrapper.
	return &ast.ExprStmt{X: lowerExpr(node, source), Semi: false}
}

func isItemKind(kind string) bool {
	switch kind {
	case "use_declaration", "macro_definition", "extern_crate_declaration":
		return true
	}
	return strings.HasSuffix(kind, "_item")
}

func lowerExpr(node *sitter.Node, source []byte) ast.Expr {
	switch node.Kind() {
	case "integer_literal":
		value, ok := parseIntegerText(sliceContent(node, source))
		if !ok {
			return &ast.UnsupportedLit{Construct: node.Kind()}
		}
		return &ast.IntLit{Value: value}

	case "string_literal", "raw_string_literal":
		return lowerStringLiteral(node, source)

	case "float_literal", "boolean_literal", "char_literal":
		return &ast.UnsupportedLit{Construct: node.Kind()}

	case "identifier":
		return &ast.PathExpr{Path: ast.Path{Segments: []string{sliceContent(node, source)}}}

	case "scoped_identifier":
		return &ast.PathExpr{Path: ast.Path{Segments: scopedSegments(node, source)}}

	case "call_expression":
		call := &ast.CallExpr{Fun: lowerExpr(node.ChildByFieldName("function"), source)}
		if args := node.ChildByFieldName("arguments"); args != nil {
			for i := uint(0); i < args.NamedChildCount(); i++ {
				child := args.NamedChild(i)
				if child == nil || isIgnorableNode(child) {
					continue
				}
				call.Args = append(call.Args, lowerExpr(child, source))
			}
		}
		return call

	case "binary_expression":
		symbol := sliceContent(node.ChildByFieldName("operator"), source)
		op, ok := ast.OpFromSymbol(symbol)
		if !ok {
			return &ast.UnsupportedExpr{Construct: "operator " + symbol}
		}
		return &ast.BinaryExpr{
			Op: op,
			X:  lowerExpr(node.ChildByFieldName("left"), source),
			Y:  lowerExpr(node.ChildByFieldName("right"), source),
		}

	case "assignment_expression":
		return &ast.AssignExpr{
			Target: lowerExpr(node.ChildByFieldName("left"), source),
			Value:  lowerExpr(node.ChildByFieldName("right"), source),
		}

	case "compound_assignment_expr":
		symbol := strings.TrimSuffix(sliceContent(node.ChildByFieldName("operator"), source), "=")
		op, ok := ast.OpFromSymbol(symbol)
		if !ok {
			return &ast.UnsupportedExpr{Construct: "operator " + symbol + "="}
		}
		return &ast.CompoundAssignExpr{
			Op:     op,
			Target: lowerExpr(node.ChildByFieldName("left"), source),
			Value:  lowerExpr(node.ChildByFieldName("right"), source),
		}

	case "return_expression":
		ret := &ast.ReturnExpr{}
		if value := firstNamedChild(node); value != nil {
			ret.Value = lowerExpr(value, source)
		}
		return ret

	case "break_expression":
		brk := &ast.BreakExpr{}
		for i := uint(0); i < node.NamedChildCount(); i++ {
			child := node.NamedChild(i)
			if child == nil || isIgnorableNode(child) || child.Kind() == "label" {
				continue
			}
			brk.Value = lowerExpr(child, source)
			break
		}
		return brk

	case "loop_expression":
		if body := node.ChildByFieldName("body"); body != nil {
			return &ast.LoopExpr{Body: lowerBlock(body, source)}
		}
		return &ast.UnsupportedExpr{Construct: node.Kind()}

	case "if_expression":
		return lowerIf(node, source)

	default:
		return &ast.UnsupportedExpr{Construct: node.Kind()}
	}
}

func lowerIf(node *sitter.Node, source []byte) ast.Expr {
	cond := node.ChildByFieldName("condition")
	consequence := node.ChildByFieldName("consequence")
	if cond == nil || consequence == nil {
		return &ast.UnsupportedExpr{Construct: node.Kind()}
	}

	out := &ast.IfExpr{
		Cond: lowerExpr(cond, source),
		Then: lowerBlock(consequence, source),
	}

	alternative := node.ChildByFieldName("alternative")
	if alternative == nil {
		return out
	}
	branch := firstNamedChild(alternative)
	switch {
	case branch == nil:
		return out
	case branch.Kind() == "block":
		out.Else = lowerBlock(branch, source)
	case branch.Kind() == "if_expression":
		elseIf, ok := lowerIf(branch, source).(*ast.IfExpr)
		if !ok {
			return &ast.UnsupportedExpr{Construct: branch.Kind()}
		}
		out.ElseIf = elseIf
	default:
		return &ast.UnsupportedExpr{Construct: branch.Kind()}
	}
	return out
}

func lowerStringLiteral(node *sitter.Node, source []byte) ast.Expr {
	var b strings.Builder
	for i := uint(0); i < node.NamedChildCount(); i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Kind() {
		case "string_content":
			b.WriteString(sliceContent(child, source))
		case "escape_sequence":
			b.WriteString(unescapeSequence(sliceContent(child, source)))
		default:
			return &ast.UnsupportedLit{Construct: node.Kind()}
		}
	}
	return &ast.StringLit{Value: b.String()}
}

func scopedSegments(node *sitter.Node, source []byte) []string {
	var segments []string
	if path := node.ChildByFieldName("path"); path != nil {
		if path.Kind() == "scoped_identifier" {
			segments = append(segments, scopedSegments(path, source)...)
		} else {
			segments = append(segments, sliceContent(path, source))
		}
	}
	if name := node.ChildByFieldName("name"); name != nil {
		segments = append(segments, sliceContent(name, source))
	}
	return segments
}

func lowerPattern(node *sitter.Node, source []byte) ast.Pattern {
	if node == nil {
		return &ast.UnsupportedPattern{Construct: "missing pattern"}
	}
	switch node.Kind() {
	case "identifier":
		return &ast.IdentPattern{Name: sliceContent(node, source)}
	case "scoped_identifier":
		return &ast.PathPattern{Path: ast.Path{Segments: scopedSegments(node, source)}}
	default:
		return &ast.UnsupportedPattern{Construct: node.Kind()}
	}
}
