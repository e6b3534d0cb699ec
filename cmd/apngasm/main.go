// Command apngasm merges PNG files into an animated PNG.
//
//	apngasm assemble --delay 100 --out anim.png frame1.png frame2.png ...
//	apngasm assemble --config job.yaml
//	apngasm inspect anim.png
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"
)

// Version information
const version = "v0.1.0"

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "apngasm: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:      "apngasm",
		Usage:     "merge PNG frames into an animated PNG",
		Version:   version,
		Writer:    os.Stdout,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			assembleCommand(),
			inspectCommand(),
		},
	}
}

func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logLevel := slog.LevelInfo
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
	return ctx, nil
}
