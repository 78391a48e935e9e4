package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"go.uber.org/zap"

	"LocalPaint/internal/surface"
	"LocalPaint/internal/tools"
)

// Window and canvas size.
const (
	CanvasWidth  = 1280
	CanvasHeight = 800
)

func RunApp() {
	myApp := app.New()
	myWindow := myApp.NewWindow("Local Paint")
	myWindow.Resize(fyne.NewSize(CanvasWidth, CanvasHeight))

	surf := surface.NewRaster(CanvasWidth, CanvasHeight)
	defer func() {
		if err := surf.Close(); err != nil {
			zap.L().Named("ui").Warn("closing surface", zap.Error(err))
		}
	}()

	// Create the interactive board widget
	board := NewBoardWidget(tools.NewController(surf, tools.DefaultSettings()), surf)

	// Create the toolbar and pass it a reference to the board
	toolbar := NewToolbar(board, myWindow)

	// Set up the main layout
	content := container.NewBorder(toolbar, board.statusBar, nil, nil, container.NewScroll(board))

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}
