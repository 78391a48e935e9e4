package ui

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"LocalPaint/internal/brush"
	"LocalPaint/internal/export"
	"LocalPaint/internal/tools"
)

// Surface is the pixel buffer shown by the board.
type Surface interface {
	tools.Canvas
	Width() int
	Height() int
	Image() image.Image
}

// BoardWidget shows the canvas and feeds primary-button gestures to the
// controller.
type BoardWidget struct {
	widget.BaseWidget
	ctrl      *tools.Controller
	surface   Surface
	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(ctrl *tools.Controller, s Surface) *BoardWidget {
	b := &BoardWidget{
		ctrl:      ctrl,
		surface:   s,
		statusBar: widget.NewLabel(""),
	}
	b.ExtendBaseWidget(b)
	b.updateStatus()
	return b
}

func (b *BoardWidget) Controller() *tools.Controller { return b.ctrl }

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.ctrl.Press(float64(e.Position.X), float64(e.Position.Y))
	b.Refresh()
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.ctrl.Drag(float64(e.Position.X), float64(e.Position.Y))
	b.Refresh()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.release()
}

// DragEnd can arrive with or without a MouseUp depending on the driver;
// the controller ignores the second release.
func (b *BoardWidget) DragEnd() {
	b.release()
}

func (b *BoardWidget) release() {
	b.ctrl.Release()
	b.updateStatus()
	b.Refresh()
}

func (b *BoardWidget) SelectBrush(k brush.Kind) {
	b.ctrl.SelectBrush(k)
	b.updateStatus()
}

func (b *BoardWidget) SelectEraser() {
	b.ctrl.SelectEraser()
	b.updateStatus()
}

func (b *BoardWidget) SelectPen() {
	b.ctrl.SelectPen()
	b.updateStatus()
}

func (b *BoardWidget) SetColor(c color.Color) {
	b.ctrl.SetColor(c)
}

func (b *BoardWidget) SetStroke(size float64) {
	b.ctrl.SetSize(size)
	b.updateStatus()
}

// ClearCanvas wipes every pixel of the board.
func (b *BoardWidget) ClearCanvas() {
	b.ctrl.Clear()
	b.Refresh()
}

// SaveToFile writes the canvas as PNG and closes the writer. Failures are
// only logged.
func (b *BoardWidget) SaveToFile(w io.WriteCloser) {
	log := zap.L().Named("ui")
	if u, ok := w.(fyne.URIWriteCloser); ok && u.URI() != nil {
		log = log.With(zap.String("uri", u.URI().String()))
	}
	if err := export.WritePNG(w, b.surface.Image()); err != nil {
		log.Error("export failed", zap.Error(err))
		return
	}
	log.Info("canvas exported", zap.Int("width", export.Width), zap.Int("height", export.Height))
}

func (b *BoardWidget) updateStatus() {
	s := b.ctrl.Settings()
	b.statusBar.SetText(fmt.Sprintf("%s | %s | size %.0f", b.ctrl.Tool(), s.Kind, s.Size))
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(color.White)
	r.raster = canvas.NewRaster(func(_, _ int) image.Image {
		return b.surface.Image()
	})
	r.raster.ScaleMode = canvas.ImageScalePixels
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	raster     *canvas.Raster
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.raster}
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.raster.Resize(r.MinSize())
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.board.surface.Width()), float32(r.board.surface.Height()))
}

func (r *boardWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}
