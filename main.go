package main

import (
	"fmt"
	"log/slog"
	"os"

	"CanvasScroll/internal/geom"
	"CanvasScroll/internal/state"
	"CanvasScroll/internal/ui"
	"CanvasScroll/internal/viewport"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	viewportWidth, viewportHeight int
	viewportMarker                []float64
	memoWidth, memoHeight         int
	memoPenWidth                  float64
)

var defaultMarker = []float64{100, 50, 10}

var rootCmd = &cobra.Command{
	Use:   "canvasscroll",
	Short: "Pan/zoom viewport and freehand memo experiments",
	Long: `canvasscroll hosts two small drawing experiments:
  - a viewport that pans with the pointer and zooms around it
  - a freehand memo with undo and redo

Examples:
  canvasscroll viewport                      # open the pan/zoom window
  canvasscroll memo --width 400              # open the memo window
  canvasscroll replay session.json -o out.png`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
}

var viewportCmd = &cobra.Command{
	Use:   "viewport",
	Short: "Open the pan/zoom window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkSize(viewportWidth, viewportHeight); err != nil {
			return err
		}
		marker, err := markerOption(viewportMarker)
		if err != nil {
			return err
		}
		ui.RunViewport(viewportWidth, viewportHeight, marker)
		return nil
	},
}

var memoCmd = &cobra.Command{
	Use:   "memo",
	Short: "Open the freehand memo window",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkSize(memoWidth, memoHeight); err != nil {
			return err
		}
		pen, err := penOption(memoPenWidth)
		if err != nil {
			return err
		}
		ui.RunMemo(memoWidth, memoHeight, pen)
		return nil
	},
}

func checkSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid size %dx%d", width, height)
	}
	return nil
}

// markerOption reads a --marker value of x,y,radius in logical units.
func markerOption(m []float64) (viewport.Option, error) {
	if len(m) != 3 {
		return nil, fmt.Errorf("marker wants x,y,radius, got %d values", len(m))
	}
	if !(m[2] > 0) {
		return nil, fmt.Errorf("invalid marker radius %v", m[2])
	}
	return viewport.WithMarker(geom.Pt(m[0], m[1]), m[2]), nil
}

func penOption(width float64) (state.MemoOption, error) {
	if !(width > 0) {
		return nil, fmt.Errorf("invalid pen width %v", width)
	}
	pen := state.DefaultStyle
	pen.Width = width
	return state.WithStyle(pen), nil
}

func init() {
	// Fyne fails to parse the locale when LANG=C.
	if lang := os.Getenv("LANG"); lang == "" || lang == "C" {
		os.Setenv("LANG", "en_US.UTF-8")
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log rasterizer diagnostics")

	viewportCmd.Flags().IntVar(&viewportWidth, "width", 300, "viewport width in pixels")
	viewportCmd.Flags().IntVar(&viewportHeight, "height", 200, "viewport height in pixels")
	viewportCmd.Flags().Float64SliceVar(&viewportMarker, "marker", defaultMarker, "marker circle as x,y,radius in logical units")
	memoCmd.Flags().IntVar(&memoWidth, "width", 300, "memo width in pixels")
	memoCmd.Flags().IntVar(&memoHeight, "height", 300, "memo height in pixels")
	memoCmd.Flags().Float64Var(&memoPenWidth, "pen-width", state.DefaultStyle.Width, "pen width in pixels")

	rootCmd.AddCommand(viewportCmd, memoCmd, replayCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
