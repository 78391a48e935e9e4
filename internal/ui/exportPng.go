package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"go.uber.org/zap"
)

// showExportDialog asks for a destination and saves the canvas there.
// Cancelling writes nothing.
func showExportDialog(win fyne.Window, board *BoardWidget) {
	d := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			zap.L().Named("ui").Error("export dialog", zap.Error(err))
			return
		}
		if w == nil {
			return
		}
		board.SaveToFile(w)
	}, win)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
	d.SetFileName("canvas.png")
	d.Show()
}
