package main

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"path/filepath"
	"strings"

	"CanvasScroll/internal/export"
	"CanvasScroll/internal/geom"
	"CanvasScroll/internal/input"
	"CanvasScroll/internal/state"
	"CanvasScroll/internal/surface"
	"CanvasScroll/internal/viewport"

	"github.com/spf13/cobra"
)

var (
	output string
	trace  bool

	replayMarker   []float64
	replayPenWidth float64
)

var replayCmd = &cobra.Command{
	Use:   "replay <script.json>",
	Short: "Replay a recorded input script without opening a window",
	Long: `Replay feeds a JSON event script to the viewport or memo engine and
writes the final surface. The output format follows the file extension:
.png is the rendered raster, .pdf is a vector page.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVarP(&output, "output", "o", "", "write the result to this .png or .pdf file")
	replayCmd.Flags().BoolVar(&trace, "trace", false, "print every surface call")
	replayCmd.Flags().Float64SliceVar(&replayMarker, "marker", defaultMarker, "viewport marker circle as x,y,radius")
	replayCmd.Flags().Float64Var(&replayPenWidth, "pen-width", state.DefaultStyle.Width, "memo pen width in pixels")
}

func runReplay(cmd *cobra.Command, args []string) error {
	script, err := input.LoadScript(args[0])
	if err != nil {
		return err
	}

	raster := surface.NewRaster(script.Width, script.Height, color.White)
	defer raster.Close()

	rec := surface.NewRecorder(raster)
	size := geom.Pt(float64(script.Width), float64(script.Height))

	var writePDF func(io.Writer) error
	switch script.Mode {
	case input.ModeViewport:
		marker, err := markerOption(replayMarker)
		if err != nil {
			return err
		}
		v := viewport.New(rec, size, marker)
		v.Render()
		if err := input.PlayViewport(script, input.NewViewportController(v)); err != nil {
			return fmt.Errorf("replaying %s: %w", args[0], err)
		}
		s := v.State()
		log.Printf("[REPLAY] viewport ends at origin %v scale %.3f", s.Origin, s.Scale)
		writePDF = func(w io.Writer) error { return export.ViewportPDF(w, v) }

	case input.ModeMemo:
		pen, err := penOption(replayPenWidth)
		if err != nil {
			return err
		}
		memo := state.NewMemo(rec, geom.RectFromSize(size), pen)
		input.PlayMemo(script, input.NewMemoController(memo))
		committed, redo := memo.Counts()
		log.Printf("[REPLAY] memo ends with %d strokes, %d to redo", committed, redo)
		writePDF = func(w io.Writer) error { return export.MemoPDF(w, memo.Committed(), memo.Style()) }
	}

	if trace {
		for _, op := range rec.Ops() {
			fmt.Fprintln(cmd.OutOrStdout(), op)
		}
	}

	if output == "" {
		return nil
	}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".png":
		return export.WriteFile(output, func(w io.Writer) error { return export.PNG(w, raster) })
	case ".pdf":
		return export.WriteFile(output, writePDF)
	}
	return fmt.Errorf("unsupported output format %q", filepath.Ext(output))
}
