package ui

import (
	"fmt"
	"io"
	"log"
	"strings"

	"CanvasScroll/internal/export"
	"CanvasScroll/internal/viewport"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewZoomSlider returns a slider over the zoom notches that stays in step
// with wheel zooming on w.
func NewZoomSlider(w *ViewportWidget) *widget.Slider {
	slider := widget.NewSlider(viewport.SliderMin, viewport.SliderMax)
	slider.Step = 1
	slider.SetValue(w.Controller().SliderValue())
	slider.OnChanged = w.SetSlider
	w.Controller().OnSlider = slider.SetValue
	return slider
}

// NewViewportToolbar lays out the zoom slider and a status line.
func NewViewportToolbar(w *ViewportWidget) fyne.CanvasObject {
	status := widget.NewLabel(describeState(w.Controller().Viewport().State()))
	w.OnChanged = func(s viewport.State) {
		status.SetText(describeState(s))
	}

	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(200, 35)), NewZoomSlider(w))

	return container.NewHBox(
		widget.NewLabel("Zoom:"),
		sliderContainer,
		widget.NewSeparator(),
		status,
		layout.NewSpacer(),
	)
}

// NewMemoToolbar lays out undo, redo, clear and export actions.
func NewMemoToolbar(w *MemoWidget, win fyne.Window) fyne.CanvasObject {
	status := widget.NewLabel(describeHistory(w.Controller().Memo().Counts()))
	w.OnChanged = func(committed, redo int) {
		status.SetText(describeHistory(committed, redo))
	}

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentUndoIcon(), w.Undo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), w.Redo),
		widget.NewToolbarAction(theme.DeleteIcon(), w.Clear),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			showExport(w, win)
		}),
	)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		status,
		layout.NewSpacer(),
	)
}

// showExport asks for a file and writes the memo as PDF, or as PNG when the
// chosen name ends in .png.
func showExport(w *MemoWidget, win fyne.Window) {
	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		if writer == nil {
			return
		}
		defer func() {
			if err := writer.Close(); err != nil {
				log.Printf("[EXPORT] closing %s: %v", writer.URI(), err)
			}
		}()

		if err := exportMemo(w, writer, writer.URI().Extension()); err != nil {
			log.Printf("[EXPORT] %v", err)
			dialog.ShowError(err, win)
		}
	}, win)
}

func exportMemo(w *MemoWidget, out io.Writer, ext string) error {
	memo := w.Controller().Memo()
	switch strings.ToLower(ext) {
	case ".png":
		return export.PNG(out, w.Raster())
	case ".pdf", "":
		return export.MemoPDF(out, memo.Committed(), memo.Style())
	}
	return fmt.Errorf("unsupported export format %q", ext)
}
