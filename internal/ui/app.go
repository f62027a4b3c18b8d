package ui

import (
	"CanvasScroll/internal/state"
	"CanvasScroll/internal/viewport"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
)

// RunViewport opens the pan/zoom window and blocks until it is closed.
func RunViewport(width, height int, opts ...viewport.Option) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Canvas Scroll")

	board := NewViewportWidget(width, height, opts...)
	toolbar := NewViewportToolbar(board)

	myWindow.SetContent(container.NewBorder(toolbar, nil, nil, nil, container.NewCenter(board)))
	myWindow.Resize(fyne.NewSize(float32(width)+40, float32(height)+80))
	myWindow.ShowAndRun()
}

// RunMemo opens the freehand memo window and blocks until it is closed.
func RunMemo(width, height int, opts ...state.MemoOption) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Memo")

	board := NewMemoWidget(width, height, opts...)
	toolbar := NewMemoToolbar(board, myWindow)

	myWindow.SetContent(container.NewBorder(toolbar, nil, nil, nil, container.NewCenter(board)))
	myWindow.Resize(fyne.NewSize(float32(width)+40, float32(height)+80))
	myWindow.ShowAndRun()
}
