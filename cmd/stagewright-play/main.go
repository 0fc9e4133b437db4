// Command stagewright-play is a minimal CLI player: it opens a binary
// action stream, drives an engine.Engine through it via engine.Play, and
// prints the total number of presented frames and draw calls to stdout
// when playback ends. It stands in
// for the external rasterizer (out of scope; see DESIGN.md) with a
// logging Renderer, the way a smoke-test harness would before a real GPU
// backend is wired in.
//
// Usage:
//
//	stagewright-play [-v] [-frames N] <stream-file>
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/phanxgames/stagewright"
	"github.com/phanxgames/stagewright/action"
	"github.com/phanxgames/stagewright/engine"
	"github.com/phanxgames/stagewright/library"
	"github.com/phanxgames/stagewright/shape"
	"github.com/phanxgames/stagewright/wire"
)

var (
	verbose   = flag.Bool("v", false, "log every engine tick and frame")
	maxFrames = flag.Int("frames", 0, "stop after N presented frames (0 = play the whole stream)")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		usage()
		os.Exit(2)
	}

	if err := run(args[0]); err != nil {
		fmt.Fprintln(os.Stderr, "stagewright-play:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: stagewright-play [-v] [-frames N] <stream-file>")
	flag.PrintDefaults()
}

func run(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	header, reader, err := wire.ReadHeader(f)
	if err != nil {
		return fmt.Errorf("reading header: %w", err)
	}

	lib := library.New()
	eng := engine.New(lib, header.StageSize, 1.0/float64(header.FPS))
	eng.SetDebugMode(*verbose)

	list := action.NewList(func() []action.Action {
		var batch []action.Action
		for len(batch) < 64 {
			a, ok, err := reader.Next()
			if err != nil {
				if *verbose {
					log.Println("stream read error:", err)
				}
				break
			}
			if !ok {
				break
			}
			batch = append(batch, a)
		}
		return batch
	})

	if err := eng.Initialize(list); err != nil {
		return fmt.Errorf("initializing: %w", err)
	}

	frames := 0
	r := &loggingRenderer{verbose: *verbose}
	err = eng.Play(list, r, engine.PlaybackConfig{
		SecondsPerFrame: 1.0 / float64(header.FPS),
		OnFrameComplete: func() bool {
			frames++
			if *maxFrames > 0 && frames >= *maxFrames {
				return false
			}
			return true
		},
	})
	if err != nil {
		return err
	}
	fmt.Printf("played %d frame(s), %d draw call(s)\n", frames, r.draws)
	return nil
}

// loggingRenderer implements engine.Renderer by counting draw calls
// instead of rasterizing, standing in for the out-of-scope GPU backend.
type loggingRenderer struct {
	verbose bool
	draws   int
}

func (r *loggingRenderer) StartFrame(size stagewright.Vector2I) {
	if r.verbose {
		log.Printf("start_frame %dx%d", size.X, size.Y)
	}
}

func (r *loggingRenderer) SetBackground(c stagewright.Color) {
	if r.verbose {
		log.Printf("set_background %+v", c)
	}
}

func (r *loggingRenderer) DrawShape(s shape.Shape, worldTransform stagewright.Affine, coloring stagewright.Coloring) {
	r.draws++
}

func (r *loggingRenderer) DrawBitmap(bmp library.Pattern, viewRect stagewright.Rect, worldTransform stagewright.Affine, tint stagewright.Coloring) {
	r.draws++
}

func (r *loggingRenderer) EndFrame() {
	if r.verbose {
		log.Printf("end_frame (%d draws so far)", r.draws)
	}
}
