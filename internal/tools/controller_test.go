package tools

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"LocalPaint/internal/brush"
	"LocalPaint/internal/brush/brushtest"
	"LocalPaint/internal/state"
)

func newTestController(kind brush.Kind, size float64) (*Controller, *brushtest.Recorder) {
	rec := brushtest.NewRecorder(1280, 800)
	s := DefaultSettings()
	s.Kind = kind
	s.Size = size
	return NewController(rec, s), rec
}

func observeLogs(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	t.Cleanup(restore)
	return logs
}

func TestPressDragReleaseRound(t *testing.T) {
	c, rec := newTestController(brush.Round, 2)

	c.Press(10, 10)
	c.Drag(20, 10)
	c.Release()

	fills := rec.Filter(brushtest.FillOval)
	require.Len(t, fills, 11)
	assert.Len(t, rec.Commands, 11)

	prev := fills[0].Bounds
	assert.Equal(t, state.Rect{X: 10, Y: 10, W: 2, H: 2}, prev)
	for _, f := range fills[1:] {
		gap := state.Pt(prev.X, prev.Y).DistanceTo(state.Pt(f.Bounds.X, f.Bounds.Y))
		assert.LessOrEqual(t, gap, 1.0)
		prev = f.Bounds
	}
	assert.Equal(t, 20.0, prev.X)

	strokes := c.Brush().Strokes()
	require.Len(t, strokes, 1)
	assert.Equal(t, 11, strokes[0].Len())
}

func TestDragAcrossSeveralEvents(t *testing.T) {
	c, rec := newTestController(brush.Square, 1)

	c.Press(0, 0)
	c.Drag(3, 0)
	c.Drag(3, 4)
	c.Drag(3.5, 4) // below one unit: nothing interpolated
	c.Release()

	assert.Len(t, rec.Filter(brushtest.FillRect), 1+3+4)
}

func TestDragWithoutPressIgnored(t *testing.T) {
	c, rec := newTestController(brush.Round, 2)

	c.Drag(50, 50)
	c.Release()

	assert.Empty(t, rec.Commands)
	assert.Empty(t, c.Brush().Strokes())
}

func TestShapeBrushThroughController(t *testing.T) {
	c, rec := newTestController(brush.Rectangle, 5)

	c.Press(0, 0)
	c.Drag(4, 0)
	c.Release()

	fills := rec.Filter(brushtest.FillRect)
	require.Len(t, fills, 5) // 4 interpolated previews + final fill
	assert.Equal(t, state.Rect{X: 0, Y: 0, W: 4, H: 0}, fills[len(fills)-1].Bounds)
}

func TestEraserClearsAnchoredSquares(t *testing.T) {
	c, rec := newTestController(brush.Round, 6)

	c.SelectEraser()
	assert.Equal(t, ToolEraser, c.Tool())

	c.Press(10, 10)
	c.Drag(30, 10)

	want := []brushtest.Command{
		{Op: brushtest.ClearRect, Bounds: state.Rect{X: 10, Y: 10, W: 6, H: 6}},
		{Op: brushtest.ClearRect, Bounds: state.Rect{X: 30, Y: 10, W: 6, H: 6}},
	}
	assert.Equal(t, want, rec.Commands, "erasing is not interpolated")
	assert.Empty(t, c.Brush().Strokes())
}

func TestEraserRevertsAfterOneGesture(t *testing.T) {
	c, rec := newTestController(brush.Round, 4)

	c.SelectEraser()
	c.Press(1, 1)
	c.Release()
	assert.Equal(t, ToolBrush, c.Tool())

	rec.Reset()
	c.Press(5, 5)
	c.Release()
	assert.Equal(t, brushtest.FillOval, rec.Commands[0].Op)
}

func TestSelectPen(t *testing.T) {
	c, _ := newTestController(brush.Round, 4)

	c.SelectEraser()
	c.SelectPen()
	assert.Equal(t, ToolBrush, c.Tool())
	assert.Equal(t, "Brush", c.Tool().String())
	assert.Equal(t, "Eraser", ToolEraser.String())
}

func TestEraserUsesCurrentSize(t *testing.T) {
	c, rec := newTestController(brush.Round, 4)

	c.SelectEraser()
	c.SetSize(12)
	c.Press(0, 0)

	require.Len(t, rec.Commands, 1)
	assert.Equal(t, state.Rect{W: 12, H: 12}, rec.Commands[0].Bounds)
}

func TestSelectBrushKeepsSettings(t *testing.T) {
	c, rec := newTestController(brush.Round, 4)
	green := color.NRGBA{G: 255, A: 255}

	c.SetColor(green)
	c.SetSize(7)
	old := c.Brush()

	c.SelectBrush(brush.Square)
	require.NotSame(t, old, c.Brush())
	assert.Equal(t, brush.Square, c.Brush().Kind())
	assert.Equal(t, 7.0, c.Brush().Size())
	assert.Equal(t, green, c.Brush().Color())
	assert.Equal(t, brush.Square, c.Settings().Kind)

	c.Press(0, 0)
	c.Release()
	assert.Equal(t, []brushtest.Command{
		{Op: brushtest.FillRect, Bounds: state.Rect{W: 7, H: 7}, Color: green},
	}, rec.Commands)
}

func TestSelectBrushDoesNotLeaveEraser(t *testing.T) {
	c, _ := newTestController(brush.Round, 4)

	c.SelectEraser()
	c.SelectBrush(brush.Graphite)
	assert.Equal(t, ToolEraser, c.Tool())
}

func TestSelectBrushFailureKeepsActive(t *testing.T) {
	logs := observeLogs(t)
	c, _ := newTestController(brush.Circle, 4)
	old := c.Brush()

	c.SelectBrush(brush.Kind(99))

	assert.Same(t, old, c.Brush())
	assert.Equal(t, brush.Circle, c.Settings().Kind)
	require.Equal(t, 1, logs.FilterMessage("brush selection failed").Len())
}

func TestNewControllerFallsBack(t *testing.T) {
	logs := observeLogs(t)
	rec := brushtest.NewRecorder(10, 10)

	c := NewController(rec, Settings{Size: -3, Kind: brush.Kind(-1)})

	assert.Equal(t, brush.Round, c.Brush().Kind())
	assert.Equal(t, DefaultSettings().Size, c.Brush().Size())
	assert.Equal(t, 1, logs.Len())
}

func TestSetSizeIgnoresNonPositive(t *testing.T) {
	c, _ := newTestController(brush.Round, 4)

	c.SetSize(0)
	c.SetSize(-2)
	assert.Equal(t, 4.0, c.Settings().Size)
	assert.Equal(t, 4.0, c.Brush().Size())
}

func TestSetColorConvertsToNRGBA(t *testing.T) {
	c, _ := newTestController(brush.Round, 4)

	c.SetColor(color.White)
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, c.Brush().Color())
}

func TestClearWipesCanvasBounds(t *testing.T) {
	c, rec := newTestController(brush.Round, 4)

	c.Clear()

	assert.Equal(t, []brushtest.Command{
		{Op: brushtest.ClearRect, Bounds: state.Rect{W: 1280, H: 800}},
	}, rec.Commands)
}
