package html

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sonnes/provertoml/core"
	"github.com/sonnes/provertoml/reader/envelope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *core.ProverInput {
	t.Helper()
	p, err := (&envelope.Reader{}).ReadFile("../../reader/envelope/testdata/inputs.json")
	require.NoError(t, err)
	return p
}

func TestRenderPage(t *testing.T) {
	r := New()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, loadFixture(t)))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Prover.toml</title>")
	assert.Contains(t, out, "tailwindcss")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<code>dkim_header_sequence</code>")
	// chroma inline styles on the highlighted block.
	assert.Contains(t, out, `style="`)
	assert.Contains(t, out, "<pre")
}

func TestRenderTitle(t *testing.T) {
	r := New()
	r.Title = "handleCommand <fixture>"
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, loadFixture(t)))

	out := buf.String()
	assert.Contains(t, out, "<title>handleCommand &lt;fixture&gt;</title>")
	assert.NotContains(t, out, "<fixture>")
}

func TestMarkdown(t *testing.T) {
	p := loadFixture(t)
	p.Body = core.Section{}

	md := Markdown("Prover.toml", p)

	assert.Contains(t, md, "# Prover.toml\n")
	assert.Contains(t, md, "| `body` | _empty_ |")
	assert.Contains(t, md, "| `dkim_header_sequence` | `index`, `length` |")
	assert.Contains(t, md, "| `pubkey` | `modulus`, `redc` |")
	assert.Contains(t, md, "```toml\nbody_hash_index = \"5\"\n")
	assert.True(t, strings.HasSuffix(md, "redc = [\"300\", \"400\"]\n```\n"))
}

func TestMarkdownFenceOutgrowsBackticks(t *testing.T) {
	p := loadFixture(t)
	// A closing fence must start a line, so only a value with a newline
	// followed by a backtick run could end the block early.
	p.BodyHashIndex = "x\n````\n# injected"

	md := Markdown("Prover.toml", p)

	assert.Contains(t, md, "\n`````toml\nbody_hash_index = \"x\n````\n# injected\"\n")
	assert.True(t, strings.HasSuffix(md, "redc = [\"300\", \"400\"]\n`````\n"))

	var buf bytes.Buffer
	require.NoError(t, New().Render(&buf, p))
	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "<pre"), "the whole fixture stays in one code block")
	assert.NotContains(t, out, "<h1>injected</h1>")
}

func TestCodeFence(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "no backticks", src: "a = \"1\"\n", want: "```"},
		{name: "short run", src: "a = \"`x``\"\n", want: "```"},
		{name: "triple run", src: "a = \"```\"\n", want: "````"},
		{name: "longest run wins", src: "a = \"``\"\nb = \"`````\"\n", want: "``````"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codeFence([]byte(tt.src)))
		})
	}
}
