// Package parser turns Rust source text into the syntax tree the generator
// consumes. It wraps the tree-sitter Rust grammar and lowers the parse tree
// node-by-node; constructs outside the supported subset lower to the
// matching Unsupported node so the generator stays the single point of
// rejection.
package parser

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"

	"github.com/rualang/rua/internal/ast"
)

// Parser wraps a tree-sitter parser configured for the Rust grammar.
type Parser struct {
	parser *sitter.Parser
}

// New constructs a parser with the Rust language loaded.
func New() (*Parser, error) {
	lang := sitter.NewLanguage(tree_sitter_rust.Language())
	if lang == nil {
		return nil, fmt.Errorf("parser: rust grammar not available")
	}

	p := sitter.NewParser()
	if err := p.SetLanguage(lang); err != nil {
		return nil, fmt.Errorf("parser: %w", err)
	}

	return &Parser{parser: p}, nil
}

// Close releases parser resources.
func (p *Parser) Close() {
	if p == nil || p.parser == nil {
		return
	}
	p.parser.Close()
}

// ParseModule parses source into a module. Lexical errors are fatal here;
// the generator never sees a tree that failed to parse.
func (p *Parser) ParseModule(source []byte) (*ast.Module, error) {
	if p == nil || p.parser == nil {
		return nil, fmt.Errorf("parser: nil parser")
	}

	tree := p.parser.Parse(source, nil)
	defer tree.Close()

	root := tree.RootNode()
	if root == nil || root.Kind() != "source_file" {
		return nil, fmt.Errorf("parser: unexpected root node")
	}
	if root.HasError() {
		return nil, fmt.Errorf("parser: syntax errors present")
	}

	items := make([]ast.Item, 0, root.NamedChildCount())
	for i := uint(0); i < root.NamedChildCount(); i++ {
		node := root.NamedChild(i)
		if isIgnorableNode(node) {
			continue
		}
		items = append(items, lowerItem(node, source))
	}

	return &ast.Module{Items: items}, nil
}
