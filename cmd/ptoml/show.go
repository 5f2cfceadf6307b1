package main

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"
)

func showCmd(stdout io.Writer) *cli.Command {
	flags := append(inputFlags(), &cli.StringFlag{
		Name:    "o",
		Aliases: []string{"format"},
		Usage:   "Output format: terminal, toml, json, html",
		Value:   "terminal",
	})

	return &cli.Command{
		Name:  "show",
		Usage: "Print the decoded input to stdout without writing any file",
		Flags: flags,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return show(newApp(), configFrom(cmd), cmd.String("o"), stdout)
		},
	}
}

func show(a *app, cfg config, format string, w io.Writer) error {
	rnd, err := a.renderer(format, cfg.outputPath())
	if err != nil {
		return err
	}

	p, err := a.readInput(cfg)
	if err != nil {
		return err
	}

	if err := rnd.Render(w, p); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}
