package export

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// Size of every exported image, regardless of the canvas size.
const (
	Width  = 1080
	Height = 790
)

// Snapshot flattens src onto an opaque white Width×Height image. src is
// anchored at the top-left; anything beyond the export area is cropped.
func Snapshot(src image.Image) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
	return dst
}

// EncodePNG writes the snapshot of src to w.
func EncodePNG(w io.Writer, src image.Image) error {
	if err := png.Encode(w, Snapshot(src)); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// WritePNG encodes src into wc and closes it. The close error is reported
// when encoding succeeded.
func WritePNG(wc io.WriteCloser, src image.Image) (err error) {
	defer func() {
		if cerr := wc.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close export: %w", cerr)
		}
	}()
	return EncodePNG(wc, src)
}
