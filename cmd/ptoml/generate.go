package main

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/sonnes/provertoml/fixture"
	"github.com/sonnes/provertoml/render/toml"
	"github.com/urfave/cli/v3"
)

func generateCmd(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "Write Prover.toml from inputs.json",
		Description: `Decodes the input file, validates that every required field is
present and writes the fixture atomically. An existing output file is
replaced; on any error it is left as it was.`,
		Flags: inputFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out, err := generate(newApp(), configFrom(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "✓ Successfully generated %s\n", out)
			return nil
		},
	}
}

// generate reads the input, renders it and writes the output file. Returns the
// path written.
func generate(a *app, cfg config) (string, error) {
	p, err := a.readInput(cfg)
	if err != nil {
		return "", err
	}

	out := cfg.outputPath()
	log.Info("writing fixture", "path", out)

	if err := fixture.WriteFile(out, toml.Bytes(p)); err != nil {
		return "", fmt.Errorf("write %s: %w", out, err)
	}
	return out, nil
}
