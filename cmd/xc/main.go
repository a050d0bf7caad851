// xc is the X compiler's command-line entry point (spec.md §6): invoked as
// `xc <path>` with exactly one positional argument, it reads path, runs it
// through the full pipeline, and either writes "<path>.c" or reports
// diagnostics to stderr.
//
// Grounded on rhino1998-aeon/cmd/aeon/main.go's shape: signal.NotifyContext
// for interrupt handling, a urfave/cli/v3 Command with an Action closure
// that validates argument count before doing any work, and a final
// cmd.Run(ctx, os.Args) + log.Fatalln(err) at the bottom of main.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
	"github.com/xc-lang/xc/pkg/module"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cmd := &cli.Command{
		Name:      "xc",
		Usage:     "The X compiler",
		ArgsUsage: "<path>",
		Action:    run,
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		log.Fatalln(err)
	}
}

func run(ctx context.Context, c *cli.Command) error {
	if c.Args().Len() != 1 {
		return fmt.Errorf("must provide exactly one source file as argument")
	}
	path := c.Args().First()

	logger := slog.Default()
	mod := module.New(logger, module.Config{Path: path})

	out, err := mod.Compile(ctx, os.Stderr)
	if err != nil {
		if errors.Is(err, module.ErrCompilationFailed) {
			// Diagnostics have already been written to stderr; exit
			// non-zero without piling a second error message on top.
			os.Exit(1)
		}
		return err
	}

	if err := os.WriteFile(out.Name, []byte(out.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
