package main

import (
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/sonnes/provertoml/core"
	"github.com/sonnes/provertoml/reader"
	"github.com/sonnes/provertoml/reader/envelope"
	"github.com/sonnes/provertoml/reader/plain"
	"github.com/sonnes/provertoml/render"
	htmlrender "github.com/sonnes/provertoml/render/html"
	jsonrender "github.com/sonnes/provertoml/render/json"
	"github.com/sonnes/provertoml/render/terminal"
	"github.com/sonnes/provertoml/render/toml"
	"github.com/urfave/cli/v3"
)

// app holds reader and renderer registries used by CLI commands.
type app struct {
	readers   map[string]func(opts core.DecodeOptions) reader.Reader
	renderers map[string]func(title string) render.Renderer
}

func newApp() *app {
	return &app{
		readers: map[string]func(opts core.DecodeOptions) reader.Reader{
			"envelope": func(opts core.DecodeOptions) reader.Reader { return &envelope.Reader{Options: opts} },
			"plain":    func(opts core.DecodeOptions) reader.Reader { return &plain.Reader{Options: opts} },
		},
		renderers: map[string]func(title string) render.Renderer{
			"toml": func(string) render.Renderer { return toml.New() },
			"json": func(string) render.Renderer { return jsonrender.New() },
			"terminal": func(title string) render.Renderer {
				r := terminal.New()
				r.Title = title
				return r
			},
			"html": func(title string) render.Renderer {
				r := htmlrender.New()
				r.Title = title
				return r
			},
		},
	}
}

func (a *app) reader(name string, opts core.DecodeOptions) (reader.Reader, error) {
	fn, ok := a.readers[name]
	if !ok {
		return nil, fmt.Errorf("unknown input format %q", name)
	}
	return fn(opts), nil
}

func (a *app) renderer(name, title string) (render.Renderer, error) {
	fn, ok := a.renderers[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q", name)
	}
	return fn(title), nil
}

// config is the resolved set of input flags shared by all commands.
type config struct {
	Dir    string
	Input  string
	Output string
	From   string
	Strict bool
}

func (c config) inputPath() string  { return resolve(c.Dir, c.Input) }
func (c config) outputPath() string { return resolve(c.Dir, c.Output) }

// resolve joins name onto dir unless name is already absolute.
func resolve(dir, name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func inputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "dir",
			Aliases: []string{"d"},
			Usage:   "Fixture directory; relative --input and --output paths resolve against it",
			Value:   ".",
		},
		&cli.StringFlag{
			Name:  "input",
			Usage: "Input file name",
			Value: "inputs.json",
		},
		&cli.StringFlag{
			Name:  "output",
			Usage: "Output file name",
			Value: "Prover.toml",
		},
		&cli.StringFlag{
			Name:  "from",
			Usage: "Input format: envelope (JSON text in an \"input\" field) or plain (bare object)",
			Value: "envelope",
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Reject keys that are not part of the prover schema",
		},
	}
}

func configFrom(cmd *cli.Command) config {
	return config{
		Dir:    cmd.String("dir"),
		Input:  cmd.String("input"),
		Output: cmd.String("output"),
		From:   cmd.String("from"),
		Strict: cmd.Bool("strict"),
	}
}

// readInput decodes the configured input file. Unknown keys are logged at
// debug level unless strict mode turns them into errors.
func (a *app) readInput(cfg config) (*core.ProverInput, error) {
	opts := core.DecodeOptions{
		Strict: cfg.Strict,
		OnUnknown: func(path string) {
			log.Debug("ignoring unknown key", "key", path)
		},
	}

	r, err := a.reader(cfg.From, opts)
	if err != nil {
		return nil, err
	}

	path := cfg.inputPath()
	log.Info("reading inputs", "path", path)

	p, err := r.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return p, nil
}
