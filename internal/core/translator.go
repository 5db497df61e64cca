// Package core wires the pipeline together: read one source file, parse it,
// translate it, and write one text stream.
package core

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rualang/rua/internal/config"
	"github.com/rualang/rua/internal/generator"
	"github.com/rualang/rua/internal/parser"
)

// Banner marks the start of generated output on the diagnostic stream. It
// never enters the program text.
const Banner = "-------------------- GENERATED ------------------------"

// Translator runs one source file through the parse/translate pipeline.
type Translator struct {
	Config *config.Config

	// Stdout receives the program text when Config.Output is empty; Stderr
	// receives diagnostics. Both default to the process streams.
	Stdout io.Writer
	Stderr io.Writer
}

func NewTranslator(cfg *config.Config) *Translator {
	return &Translator{
		Config: cfg,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run translates the file at path. Either the whole program is written, or
// nothing is: any parse or translation failure returns before a byte of
// program text leaves the pipeline.
func (t *Translator) Run(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	slog.Info("loaded source", "file", path, "bytes", len(source))

	p, err := parser.New()
	if err != nil {
		return err
	}
	defer p.Close()

	mod, err := p.ParseModule(source)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	slog.Debug("parsed module", "items", len(mod.Items))

	out, err := generator.New(t.Config).Module(mod)
	if err != nil {
		return fmt.Errorf("translate %s: %w", path, err)
	}
	slog.Debug("translation complete", "bytes", len(out))

	if t.Config.Banner {
		fmt.Fprintln(t.Stderr, Banner)
	}

	if t.Config.Output != "" {
		if err := os.WriteFile(t.Config.Output, out, 0644); err != nil {
			return fmt.Errorf("write %s: %w", t.Config.Output, err)
		}
		slog.Info("wrote output", "file", t.Config.Output)
		return nil
	}

	if _, err := t.Stdout.Write(out); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}
