package core

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"

	"github.com/rualang/rua/internal/config"
)

func writeSource(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.rs")
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

func TestTranslator_Golden(t *testing.T) {
	fixtures, err := filepath.Glob(filepath.Join("testdata", "*.txtar"))
	require.NoError(t, err)
	require.NotEmpty(t, fixtures)

	for _, fixture := range fixtures {
		name := strings.TrimSuffix(filepath.Base(fixture), ".txtar")
		t.Run(name, func(t *testing.T) {
			archive, err := txtar.ParseFile(fixture)
			require.NoError(t, err)

			files := make(map[string][]byte, len(archive.Files))
			for _, f := range archive.Files {
				files[f.Name] = f.Data
			}
			require.Contains(t, files, "input.rs")
			require.Contains(t, files, "expected.lua")

			var stdout, stderr bytes.Buffer
			tr := NewTranslator(config.Default())
			tr.Stdout = &stdout
			tr.Stderr = &stderr

			require.NoError(t, tr.Run(writeSource(t, files["input.rs"])))
			assert.Equal(t, string(files["expected.lua"]), stdout.String())
			assert.Contains(t, stderr.String(), Banner)
		})
	}
}

func TestTranslator_OutputFile(t *testing.T) {
	cfg := config.Default()
	cfg.Banner = false
	cfg.Output = filepath.Join(t.TempDir(), "out.lua")

	var stdout, stderr bytes.Buffer
	tr := NewTranslator(cfg)
	tr.Stdout = &stdout
	tr.Stderr = &stderr

	require.NoError(t, tr.Run(writeSource(t, []byte("fn main() {\n    return;\n}\n"))))

	content, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Equal(t, "function main()\n  return\nend\n\n", string(content))
	assert.Empty(t, stdout.String(), "program text goes to the output file")
	assert.Empty(t, stderr.String(), "banner disabled")
}

func TestTranslator_UnsupportedConstructProducesNoOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	tr := NewTranslator(config.Default())
	tr.Stdout = &stdout
	tr.Stderr = &stderr

	err := tr.Run(writeSource(t, []byte("fn main() {\n    let v = 1.5;\n}\n")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported literal")
	assert.Empty(t, stdout.String())
}

func TestTranslator_MissingFile(t *testing.T) {
	tr := NewTranslator(config.Default())
	err := tr.Run(filepath.Join(t.TempDir(), "absent.rs"))
	assert.Error(t, err)
}
