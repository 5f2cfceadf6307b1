// Package toml renders a ProverInput as Prover.toml: flat key = value lines
// followed by bracketed sections.
//
// Values are written inside double quotes exactly as decoded. Nothing is
// escaped, so the output matches what the prover fixtures were generated with.
package toml

import (
	"bytes"
	"io"
	"strings"

	"github.com/sonnes/provertoml/core"
)

// Renderer renders a ProverInput to Prover.toml.
type Renderer struct{}

// New creates a TOML Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes p to w. Lines are newline-joined with a single trailing newline.
func (r *Renderer) Render(w io.Writer, p *core.ProverInput) error {
	_, err := io.WriteString(w, strings.Join(Lines(p), "\n")+"\n")
	return err
}

// Bytes returns the rendered file contents.
func Bytes(p *core.ProverInput) []byte {
	var buf bytes.Buffer
	_ = New().Render(&buf, p)
	return buf.Bytes()
}

// Lines returns the output lines in order, without terminators.
func Lines(p *core.ProverInput) []string {
	var lines []string
	for _, e := range p.Entries() {
		lines = append(lines, FormatEntry(e))
	}
	for _, g := range p.Groups() {
		lines = append(lines, SectionLines(g)...)
	}
	return lines
}

// SectionLines renders a group as a blank line, a [name] header and one line
// per entry. Absent section sub-keys were dropped at decode time.
func SectionLines(g core.Group) []string {
	lines := []string{"", "[" + g.Name + "]"}
	for _, e := range g.Entries {
		lines = append(lines, FormatEntry(e))
	}
	return lines
}

// FormatEntry renders one key = value line.
func FormatEntry(e core.Entry) string {
	if e.Value.Kind == core.KindList {
		return e.Key + " = " + FormatList(e.Value.List)
	}
	return e.Key + " = " + quote(e.Value.Scalar)
}

// FormatList renders ["a", "b"]. An empty list renders as [].
func FormatList(l core.List) string {
	parts := make([]string, len(l))
	for i, s := range l {
		parts[i] = quote(s)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func quote(s core.Scalar) string {
	return `"` + string(s) + `"`
}
