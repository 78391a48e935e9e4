package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"LocalPaint/internal/brush"
	"LocalPaint/internal/tools"
)

var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
}

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

func brushNames() []string {
	kinds := brush.Kinds()
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	return names
}

// --- The Main Toolbar ---
func NewToolbar(board *BoardWidget, win fyne.Window) fyne.CanvasObject {
	settings := board.Controller().Settings()

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), board.SelectPen), // Pen
		widget.NewToolbarAction(theme.DeleteIcon(), board.SelectEraser),      // Eraser
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentClearIcon(), board.ClearCanvas),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), func() {
			showExportDialog(win, board)
		}),
	)

	// --- Brush Selection ---
	brushSelect := widget.NewSelect(brushNames(), nil)
	brushSelect.SetSelected(settings.Kind.String())
	brushSelect.OnChanged = func(name string) {
		k, err := brush.ParseKind(name)
		if err != nil {
			zap.L().Named("ui").Error("brush selection failed", zap.Error(err))
			return
		}
		board.SelectBrush(k)
	}

	// --- Color Palette ---
	colorBox := container.NewHBox()
	for _, c := range palette {
		colorBox.Add(newColorSwatch(c, board.SetColor))
	}
	picker := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		dialog.ShowColorPicker("Brush Color", "Choose a brush color", board.SetColor, win)
	})

	// --- Stroke Width Slider ---
	strokeSlider := widget.NewSlider(tools.MinSize, tools.MaxSize)
	strokeSlider.SetValue(settings.Size)
	strokeSlider.OnChanged = board.SetStroke
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), strokeSlider)

	// --- Assemble everything ---
	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Brush:"),
		brushSelect,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		picker,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		layout.NewSpacer(),
	)
}
