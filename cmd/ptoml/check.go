package main

import (
	"context"
	"fmt"
	"io"

	"github.com/sonnes/provertoml/fixture"
	"github.com/sonnes/provertoml/render/toml"
	"github.com/urfave/cli/v3"
)

func checkCmd(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "check",
		Usage: "Verify that Prover.toml matches what generate would write",
		Description: `Renders the input in memory and compares it byte for byte with the
existing output file. Exits non-zero when the file is missing or stale.
Never writes.`,
		Flags: inputFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			out, err := check(newApp(), configFrom(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "✓ %s is up to date\n", out)
			return nil
		},
	}
}

func check(a *app, cfg config) (string, error) {
	p, err := a.readInput(cfg)
	if err != nil {
		return "", err
	}

	out := cfg.outputPath()
	if err := fixture.Check(out, toml.Bytes(p)); err != nil {
		return "", err
	}
	return out, nil
}
