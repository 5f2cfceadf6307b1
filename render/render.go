// Package render defines the interface for rendering a ProverInput into
// various output formats.
package render

import (
	"io"

	"github.com/sonnes/provertoml/core"
)

// Renderer writes a ProverInput to the given writer in a specific format.
type Renderer interface {
	Render(w io.Writer, p *core.ProverInput) error
}
