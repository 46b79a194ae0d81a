// Command sspedemo exercises the handle-coupling engine headless: it
// builds a small wave path, drags one handle of a mirrored anchor
// through an arc, and writes before/after PNG snapshots.
package main

import (
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/regalagram/sspe"
)

func main() {
	app := &cli.App{
		Name:  "sspedemo",
		Usage: "demonstrate control-handle coupling on a sample path",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "width", Value: 480, Usage: "image width"},
			&cli.IntFlag{Name: "height", Value: 320, Usage: "image height"},
			&cli.StringFlag{Name: "out", Value: "sspedemo", Usage: "output file prefix"},
			&cli.IntFlag{Name: "steps", Value: 16, Usage: "drag steps"},
			&cli.BoolFlag{Name: "verbose", Usage: "log engine decisions to stderr"},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("verbose") {
		sspe.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	w := c.Int("width")
	h := c.Int("height")
	cx := float64(w) / 2
	cy := float64(h) / 2

	doc := sspe.NewDocument()
	sp := doc.AddPath().AddSubPath()
	sp.MoveTo(sspe.Pt(cx-180, cy))
	c1 := sp.CubicTo(
		sspe.Pt(cx-140, cy-80),
		sspe.Pt(cx-60, cy-80),
		sspe.Pt(cx, cy),
	)
	sp.CubicTo(
		sspe.Pt(cx+60, cy+80),
		sspe.Pt(cx+140, cy+80),
		sspe.Pt(cx+180, cy),
	)

	keys := &sspe.ManualKeySource{}
	engine, err := sspe.NewEngine(doc, sspe.WithKeySource(keys))
	if err != nil {
		return err
	}
	defer engine.Cleanup()

	frames := 0
	engine.AddListener(func() { frames++ })

	prefix := c.String("out")
	if err := writePNG(prefix+"-before.png", sspe.Snapshot(engine, w, h)); err != nil {
		return err
	}

	// Rotate the outgoing handle of the middle anchor through a quarter
	// turn, the way a pointer drag would arrive in small increments.
	info := engine.Classify(c1)
	if info == nil || info.Incoming == nil {
		return fmt.Errorf("middle anchor has no incoming handle")
	}
	anchor := info.Anchor
	start := *info.Incoming
	radius := anchor.Distance(start)
	startAngle := math.Atan2(start.Y-anchor.Y, start.X-anchor.X)

	steps := c.Int("steps")
	engine.StartDrag(c1, sspe.HandleOutgoing, start)
	for k := 1; k <= steps; k++ {
		t := float64(k) / float64(steps)
		ang := startAngle + t*math.Pi/2
		engine.UpdateDrag(sspe.Pt(
			anchor.X+radius*math.Cos(ang),
			anchor.Y+radius*math.Sin(ang),
		))
		// Pace the replay so sample velocity stays under the coupling
		// gate, as a real pointer drag would.
		time.Sleep(15 * time.Millisecond)
	}
	engine.EndDrag()

	if err := writePNG(prefix+"-after.png", sspe.Snapshot(engine, w, h)); err != nil {
		return err
	}

	fmt.Printf("wrote %s-before.png and %s-after.png (%d listener notifications)\n",
		prefix, prefix, frames)
	return nil
}

func writePNG(name string, img *image.RGBA) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
