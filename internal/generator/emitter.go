package generator

import (
	"bytes"
	"strings"
)

// emitter is the shared output accumulator: an append-only buffer plus the
// current block-nesting depth. Every translation function writes through it.
type emitter struct {
	buf    bytes.Buffer
	depth  int
	indent string
}

func newEmitter(indentWidth int) *emitter {
	return &emitter{indent: strings.Repeat(" ", indentWidth)}
}

func (e *emitter) writeString(s string) {
	e.buf.WriteString(s)
}

// writeIndent prefixes statement-level content with the current depth's run
// of spaces.
func (e *emitter) writeIndent() {
	for i := 0; i < e.depth; i++ {
		e.buf.WriteString(e.indent)
	}
}

func (e *emitter) newline() {
	e.buf.WriteByte('\n')
}

// nest runs f one block deeper. The depth is restored even when f fails, so
// a failed block never leaks indentation into its siblings.
func (e *emitter) nest(f func() error) error {
	e.depth++
	defer func() { e.depth-- }()
	return f()
}

func (e *emitter) bytes() []byte {
	out := make([]byte, e.buf.Len())
	copy(out, e.buf.Bytes())
	return out
}

func (e *emitter) reset() {
	e.buf.Reset()
	e.depth = 0
}
