package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	apng "github.com/Jarigyani/apng-generater"
)

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "describe the animation chunks of a PNG file",
		ArgsUsage: "FILE.png",
		Action:    runInspect,
	}
}

func runInspect(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("inspect takes exactly one file")
	}
	path := cmd.Args().First()
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	a, err := apng.Inspect(b)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	w := cmd.Root().Writer
	h := a.Header
	fmt.Fprintf(w, "%s: %dx%d %s, %d-bit, %s\n", path, h.Width, h.Height, h.ColorType, h.BitDepth, humanize.Bytes(uint64(len(b))))
	if a.Control == nil {
		fmt.Fprintln(w, "not animated")
	} else {
		loops := "loops forever"
		if a.Control.NumPlays > 0 {
			loops = fmt.Sprintf("plays %d times", a.Control.NumPlays)
		}
		fmt.Fprintf(w, "animation: %d frames, %s\n", a.Control.NumFrames, loops)
	}
	for i, f := range a.Frames {
		c := f.Control
		fmt.Fprintf(w, "frame %d: seq %d, %dx%d at (%d,%d), delay %d/%d, %d chunks, %s\n",
			i, c.SequenceNumber, c.Width, c.Height, c.XOffset, c.YOffset,
			c.DelayNum, c.DelayDen, f.DataChunks, humanize.Bytes(uint64(f.DataBytes)))
	}
	for _, k := range slices.Sorted(maps.Keys(a.Text)) {
		fmt.Fprintf(w, "text: %s = %s\n", k, a.Text[k])
	}
	if a.Control != nil {
		if err := a.CheckSequence(); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}
