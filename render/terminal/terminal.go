// Package terminal renders a ProverInput as a colored preview: a summary
// header followed by the highlighted Prover.toml body.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/charmbracelet/x/ansi"
	"github.com/charmbracelet/x/term"
	"github.com/sonnes/provertoml/core"
	"github.com/sonnes/provertoml/render/toml"
)

const (
	defaultWidth     = 100
	defaultFormatter = "terminal256"
	defaultStyle     = "dracula"
)

// Renderer pretty-prints a ProverInput to the terminal.
type Renderer struct {
	// Width overrides terminal width detection. Zero means auto-detect.
	Width int

	// Title is shown in the header. Defaults to "Prover.toml".
	Title string

	// Formatter and Style select the chroma formatter and style used for the
	// TOML body. Empty means terminal256 and dracula.
	Formatter string
	Style     string
}

// New creates a terminal Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render writes the summary header and the highlighted TOML to w.
func (r *Renderer) Render(w io.Writer, p *core.ProverInput) error {
	width := r.termWidth()

	writeHeader(w, r.title(), p, width)
	writeSeparator(w, width)

	src := string(toml.Bytes(p))
	if err := quick.Highlight(w, src, "toml", r.formatter(), r.style()); err != nil {
		return fmt.Errorf("highlight: %w", err)
	}
	return nil
}

func (r *Renderer) termWidth() int {
	if r.Width > 0 {
		return r.Width
	}
	if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil && w > 0 {
		return w
	}
	return defaultWidth
}

func (r *Renderer) title() string {
	if r.Title != "" {
		return r.Title
	}
	return "Prover.toml"
}

func (r *Renderer) formatter() string {
	if r.Formatter != "" {
		return r.Formatter
	}
	return defaultFormatter
}

func (r *Renderer) style() string {
	if r.Style != "" {
		return r.Style
	}
	return defaultStyle
}

// stats counts what the fixture will contain.
type stats struct {
	scalars  int
	lists    int
	elements int
	sections int
	skipped  int // absent optional section sub-keys
}

func collectStats(p *core.ProverInput) stats {
	var s stats
	count := func(e core.Entry) {
		if e.Value.Kind == core.KindList {
			s.lists++
			s.elements += len(e.Value.List)
		} else {
			s.scalars++
		}
	}
	for _, e := range p.Entries() {
		count(e)
	}
	for _, g := range p.Groups() {
		s.sections++
		for _, e := range g.Entries {
			count(e)
		}
	}
	for _, sf := range core.Sections {
		s.skipped += 4 - len(sf.Get(p).Entries())
	}
	return s
}

// writeHeader renders the title row, the section list and the counters.
func writeHeader(w io.Writer, title string, p *core.ProverInput, width int) {
	s := collectStats(p)

	row1 := styleTitle.Render(title) + "  " +
		styleScalarCount.Render(fmt.Sprintf("%d scalars", s.scalars)) + " " +
		styleListCount.Render(fmt.Sprintf("%d lists", s.lists))
	fmt.Fprintln(w, ansi.Truncate(row1, width, "..."))

	var names []string
	for _, g := range p.Groups() {
		names = append(names, "["+g.Name+"]")
	}
	fmt.Fprintln(w, ansi.Truncate(styleMeta.Render(strings.Join(names, "  ")), width, "..."))

	fmt.Fprintln(w)
	writeCounters(w, []counter{
		{s.scalars + s.lists, "FIELDS"},
		{s.elements, "ELEMENTS"},
		{s.sections, "SECTIONS"},
		{s.skipped, "SKIPPED"},
	})
}

type counter struct {
	value int
	label string
}

// writeCounters renders counters in two rows: values then labels.
func writeCounters(w io.Writer, counters []counter) {
	var values, labels []string
	for _, c := range counters {
		formatted := formatNumber(c.value)
		colWidth := max(len(formatted), len(c.label))
		values = append(values, fmt.Sprintf("%*s", colWidth, formatted))
		labels = append(labels, fmt.Sprintf("%-*s", colWidth, c.label))
	}

	fmt.Fprintln(w, "  "+styleStat.Render(strings.Join(values, "    ")))
	fmt.Fprintln(w, "  "+styleStatLabel.Render(strings.Join(labels, "    ")))
}

// writeSeparator renders a horizontal rule.
func writeSeparator(w io.Writer, width int) {
	n := min(width, 72)
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleSeparator.Render(strings.Repeat("─", n)))
}

func formatNumber(n int) string {
	if n < 0 {
		return "-" + formatNumber(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return formatNumber(n/1000) + "," + fmt.Sprintf("%03d", n%1000)
}
