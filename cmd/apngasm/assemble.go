package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	apng "github.com/Jarigyani/apng-generater"
	"github.com/Jarigyani/apng-generater/internal/config"
)

func assembleCommand() *cli.Command {
	return &cli.Command{
		Name:      "assemble",
		Usage:     "merge PNG files, key frame first, into one APNG",
		ArgsUsage: "FRAME.png [FRAME.png...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML job file listing frames, delay_ms and output",
			},
			&cli.IntFlag{
				Name:    "delay",
				Aliases: []string{"d"},
				Value:   config.DefaultDelayMs,
				Usage:   "frame delay in milliseconds",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output file (default apng-<uuid>.png)",
			},
		},
		Action: runAssemble,
	}
}

func runAssemble(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadJob(cmd)
	if err != nil {
		return err
	}
	if cfg.Debug {
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	start := time.Now()
	images := make([][]byte, len(cfg.Frames))
	var inputBytes uint64
	for i, path := range cfg.Frames {
		if err := ctx.Err(); err != nil {
			return err
		}
		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read frame: %w", err)
		}
		slog.Debug("apngasm: frame loaded", "frame", i, "path", path, "size", humanize.Bytes(uint64(len(b))))
		images[i] = b
		inputBytes += uint64(len(b))
	}

	out, err := apng.Assemble(images, cfg.Delay())
	if err != nil {
		return fmt.Errorf("failed to assemble %d frames: %w", len(images), err)
	}

	output := cfg.Output
	if output == "" {
		output = "apng-" + uuid.NewString() + ".png"
	}
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(output, out, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	slog.Info("apngasm: animation written",
		"output", output,
		"frames", len(images),
		"delay_ms", cfg.Delay(),
		"input", humanize.Bytes(inputBytes),
		"size", humanize.Bytes(uint64(len(out))),
		"elapsed", time.Since(start).Round(time.Microsecond),
	)
	fmt.Fprintln(cmd.Root().Writer, output)
	return nil
}

// loadJob builds the job from --config, letting arguments and flags that
// were set explicitly take precedence over the file.
func loadJob(cmd *cli.Command) (*config.Config, error) {
	cfg := &config.Config{}
	if path := cmd.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}

	if cmd.Args().Present() {
		cfg.Frames = cmd.Args().Slice()
	}
	if cmd.IsSet("delay") || cfg.DelayMs == nil {
		d := cmd.Int("delay")
		if d < 0 || d > math.MaxUint16 {
			return nil, fmt.Errorf("--delay must be between 0 and %d", math.MaxUint16)
		}
		delay := int(d)
		cfg.DelayMs = &delay
	}
	if cmd.IsSet("out") {
		cfg.Output = cmd.String("out")
	}
	if cmd.Root().Bool("debug") {
		cfg.Debug = true
	}

	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid job: %w", err)
	}
	return cfg, nil
}
