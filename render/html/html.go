// Package html renders a ProverInput as a standalone HTML page styled with
// Tailwind CSS v4 (CDN) and syntax highlighting via goldmark + chroma.
package html

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/sonnes/provertoml/core"
	"github.com/sonnes/provertoml/render/toml"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
)

//go:embed templates/*.html
var content embed.FS

// Renderer renders a ProverInput to a standalone HTML page.
type Renderer struct {
	md   goldmark.Markdown
	tmpl *template.Template

	// Title is the page title and heading. Defaults to "Prover.toml".
	Title string
}

// New creates an HTML Renderer with goldmark configured for GFM and syntax highlighting.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("dracula"),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(false), // inline styles for standalone pages
				),
			),
		),
	)

	tmpl := template.Must(template.New("page.html").ParseFS(content, "templates/*.html"))

	return &Renderer{md: md, tmpl: tmpl}
}

type pageData struct {
	Title string
	Body  template.HTML
}

// Render writes p as a complete HTML page to w.
func (r *Renderer) Render(w io.Writer, p *core.ProverInput) error {
	title := r.Title
	if title == "" {
		title = "Prover.toml"
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(Markdown(title, p)), &buf); err != nil {
		return fmt.Errorf("goldmark convert: %w", err)
	}

	return r.tmpl.ExecuteTemplate(w, "page.html", pageData{
		Title: title,
		Body:  template.HTML(buf.String()),
	})
}

// Markdown builds the page source: a heading, a section summary table and the
// fixture in a toml code fence.
func Markdown(title string, p *core.ProverInput) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", escapeMarkdown(title))

	sb.WriteString("| Section | Keys |\n|---|---|\n")
	for _, g := range p.Groups() {
		keys := make([]string, len(g.Entries))
		for i, e := range g.Entries {
			keys[i] = "`" + e.Key + "`"
		}
		cell := strings.Join(keys, ", ")
		if cell == "" {
			cell = "_empty_"
		}
		fmt.Fprintf(&sb, "| `%s` | %s |\n", g.Name, cell)
	}

	src := toml.Bytes(p)
	fence := codeFence(src)
	sb.WriteString("\n" + fence + "toml\n")
	sb.Write(src)
	sb.WriteString(fence + "\n")
	return sb.String()
}

// codeFence returns a backtick fence one longer than the longest backtick run
// in src, and at least three long, so fixture values cannot close it early.
func codeFence(src []byte) string {
	longest, run := 0, 0
	for _, c := range src {
		if c == '`' {
			run++
			longest = max(longest, run)
		} else {
			run = 0
		}
	}
	return strings.Repeat("`", max(3, longest+1))
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`, "*", `\*`, "_", `\_`, "`", "\\`", "#", `\#`, "[", `\[`, "]", `\]`, "<", "&lt;",
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
