// Package json renders the decoded ProverInput as JSON, in schema order.
package json

import (
	"encoding/json"
	"io"

	"github.com/sonnes/provertoml/core"
)

// Renderer renders a ProverInput to JSON.
type Renderer struct {
	// Indent controls pretty-printing. When true, output is indented.
	Indent bool
}

// New creates a JSON Renderer with indentation enabled.
func New() *Renderer {
	return &Renderer{Indent: true}
}

// Render writes p to w followed by a newline.
func (r *Renderer) Render(w io.Writer, p *core.ProverInput) error {
	enc := json.NewEncoder(w)
	if r.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(p)
}
