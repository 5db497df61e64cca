package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpFromSymbol_RoundTrip(t *testing.T) {
	for op, sym := range opSymbols {
		got, ok := OpFromSymbol(sym)
		assert.True(t, ok, "symbol %q should resolve", sym)
		assert.Equal(t, op, got, "symbol %q", sym)
		assert.Equal(t, sym, got.String())
	}
}

func TestOpFromSymbol_Unknown(t *testing.T) {
	for _, sym := range []string{"~=", "and", "or", "**", ""} {
		_, ok := OpFromSymbol(sym)
		assert.False(t, ok, "symbol %q must not resolve", sym)
	}
}
