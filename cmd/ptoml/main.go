package main

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

func main() {
	if err := newRoot(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// newRoot builds the ptoml command tree. Running it with no subcommand
// behaves like "generate" with default flags. Confirmation lines go to stdout.
func newRoot(stdout io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "ptoml",
		Usage: "Generate Prover.toml fixtures from inputs.json",
		Description: `Reads an inputs.json envelope, decodes the JSON text stored in its
"input" field and writes the prover fields into Prover.toml in a fixed
order. Every required field must be present; nothing is written otherwise.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log",
				Usage: "Log level: debug, info, warn, error",
				Value: "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := log.ParseLevel(cmd.String("log"))
			if err != nil {
				return ctx, err
			}
			log.SetLevel(level)
			return ctx, nil
		},
		DefaultCommand: "generate",
		Commands: []*cli.Command{
			generateCmd(stdout),
			checkCmd(stdout),
			showCmd(stdout),
		},
	}
}
