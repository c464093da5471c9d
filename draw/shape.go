package draw

import (
	"image"
	"image/color"
)

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws the outline of rect. The outline lies inside rect.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	rect = rect.Canon()
	if rect.Empty() {
		return
	}
	var (
		x = rect.Min.X
		y = rect.Min.Y
		w = rect.Dx()
		h = rect.Dy()
	)
	HorizontalLine(dst, x, y, w, c)
	HorizontalLine(dst, x, y+h-1, w, c)
	VerticalLine(dst, x, y, h, c)
	VerticalLine(dst, x+w-1, y, h, c)
}

// Grid outlines each of the rectangles.
func Grid(dst Image, rects []image.Rectangle, c color.Color) {
	for _, r := range rects {
		Rectangle(dst, r, c)
	}
}
