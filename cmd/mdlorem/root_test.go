package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/mdlorem/internal/lorem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRoot_MarkdownMatchesLibrary(t *testing.T) {
	out, err := execute(t, "--seed", "cli", "--blocks", "5", "--list-style", "ordered", "--header-style", "SETEXT")
	require.NoError(t, err)

	cfg := lorem.DefaultConfig()
	cfg.Seed, cfg.Blocks = "cli", 5
	cfg.ListStyle, cfg.HeaderStyle = lorem.ListOrdered, lorem.HeaderSetext
	want, err := lorem.Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, want+"\n", out)
}

func TestRoot_DisableFlags(t *testing.T) {
	out, err := execute(t, "--headers=false", "--lists=false", "--code=false", "--quotes=false",
		"--emphasis=false", "--strong=false", "--links=false", "--code-spans=false", "--blocks", "4")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n\n"), 4)
	assert.NotContains(t, out, "*")
	assert.NotContains(t, out, "`")
}

func TestRoot_HTMLToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.html")
	out, err := execute(t, "--format", "html", "--header-freq", "1", "--out", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<h1>")
}

func TestRoot_Languages(t *testing.T) {
	out, err := execute(t, "--languages")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(out, "\n"), "Latin")
}

func TestRoot_Render(t *testing.T) {
	out, err := execute(t, "--render", "--style", "notty", "--header-freq", "1", "--blocks", "1", "--links=false")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))
}

func TestRoot_Errors(t *testing.T) {
	_, err := execute(t, "--language", "Klingon")
	assert.ErrorIs(t, err, lorem.ErrUnsupportedLanguage)

	_, err = execute(t, "--header-style", "fancy")
	assert.ErrorIs(t, err, lorem.ErrInvalidConfig)

	_, err = execute(t, "--format", "pdf")
	assert.Error(t, err)

	_, err = execute(t, "unexpected-arg")
	assert.Error(t, err)
}

func TestRoot_FormatCheckedBeforeGenerating(t *testing.T) {
	// A bad language would fail generation; the format error must win.
	_, err := execute(t, "--format", "pdf", "--language", "Klingon")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
	assert.NotErrorIs(t, err, lorem.ErrUnsupportedLanguage)

	_, err = execute(t, "--render", "--format", "pdf")
	assert.ErrorContains(t, err, "unsupported format")

	out, err := execute(t, "--render", "--format", "html")
	assert.ErrorContains(t, err, "--format html")
	assert.NotContains(t, out, "<")
}
