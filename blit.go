package ninescale

import (
	"context"
	"image"
	"log/slog"
)

// Surface is a drawing target that can copy a scaled region of an image.
type Surface interface {
	// CopyScaledRegion copies sr from src, scaled to fill dr. The source
	// rectangle is relative to src.Bounds().Min.
	CopyScaledRegion(src image.Image, sr, dr image.Rectangle)
}

// CellPos is the position of a cell in the 3×3 grid.
type CellPos uint8

// Grid positions.
const (
	TopLeft CellPos = iota
	MiddleLeft
	BottomLeft
	TopCenter
	Center
	BottomCenter
	TopRight
	MiddleRight
	BottomRight
)

var cellPosNames = [...]string{
	TopLeft:      "top-left",
	MiddleLeft:   "middle-left",
	BottomLeft:   "bottom-left",
	TopCenter:    "top-center",
	Center:       "center",
	BottomCenter: "bottom-center",
	TopRight:     "top-right",
	MiddleRight:  "middle-right",
	BottomRight:  "bottom-right",
}

func (p CellPos) String() string {
	if int(p) < len(cellPosNames) {
		return cellPosNames[p]
	}
	return "invalid"
}

// Cell is one copy operation of a nine-slice blit.
type Cell struct {
	Pos CellPos
	Src image.Rectangle
	Dst image.Rectangle
}

// rect builds a rectangle without canonicalizing it, so negative spans stay
// visible to the surface.
func rect(x, y, w, h int) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: x, Y: y},
		Max: image.Point{X: x + w, Y: y + h},
	}
}

// Cells returns the copy operations for rendering d into the destination
// rectangle at (x, y) with the given size, in blit order: left column, center
// column, right column, each from top to bottom. Cells with a zero or
// negative source span are left out.
//
// The right and bottom destination edges are measured from width and height
// alone; x and y are not added to them.
func Cells(d Descriptor, x, y, width, height int) []Cell {
	var (
		leftW   = d.Slice.Left
		rightW  = d.Slice.Right
		topH    = d.Slice.Top
		bottomH = d.Slice.Bottom

		srcLeft    = d.Clip.X
		srcRight   = d.Clip.X + d.Clip.Width - rightW
		srcTop     = d.Clip.Y
		srcBottom  = d.Clip.Y + d.Clip.Height - bottomH
		srcCenterX = srcLeft + leftW
		srcCenterY = srcTop + topH
		srcCenterW = d.Clip.Width - leftW - rightW
		srcCenterH = d.Clip.Height - topH - bottomH

		dstLeft    = x
		dstRight   = width - rightW
		dstTop     = y
		dstBottom  = height - bottomH
		dstCenterX = dstLeft + leftW
		dstCenterY = dstTop + topH
		dstCenterW = width - leftW - rightW
		dstCenterH = height - topH - bottomH
	)

	cells := make([]Cell, 0, 9)
	add := func(pos CellPos, src, dst image.Rectangle) {
		cells = append(cells, Cell{Pos: pos, Src: src, Dst: dst})
	}

	if leftW > 0 {
		if topH > 0 {
			add(TopLeft,
				rect(srcLeft, srcTop, leftW, topH),
				rect(dstLeft, dstTop, leftW, topH))
		}
		if srcCenterH > 0 {
			add(MiddleLeft,
				rect(srcLeft, srcCenterY, leftW, srcCenterH),
				rect(dstLeft, dstCenterY, leftW, dstCenterH))
		}
		if bottomH > 0 {
			add(BottomLeft,
				rect(srcLeft, srcBottom, leftW, bottomH),
				rect(dstLeft, dstBottom, leftW, bottomH))
		}
	}
	if srcCenterW > 0 {
		if topH > 0 {
			add(TopCenter,
				rect(srcCenterX, srcTop, srcCenterW, topH),
				rect(dstCenterX, dstTop, dstCenterW, topH))
		}
		if srcCenterH > 0 {
			add(Center,
				rect(srcCenterX, srcCenterY, srcCenterW, srcCenterH),
				rect(dstCenterX, dstCenterY, dstCenterW, dstCenterH))
		}
		if bottomH > 0 {
			add(BottomCenter,
				rect(srcCenterX, srcBottom, srcCenterW, bottomH),
				rect(dstCenterX, dstBottom, dstCenterW, bottomH))
		}
	}
	if rightW > 0 {
		if topH > 0 {
			add(TopRight,
				rect(srcRight, srcTop, rightW, topH),
				rect(dstRight, dstTop, rightW, topH))
		}
		if srcCenterH > 0 {
			add(MiddleRight,
				rect(srcRight, srcCenterY, rightW, srcCenterH),
				rect(dstRight, dstCenterY, rightW, dstCenterH))
		}
		if bottomH > 0 {
			add(BottomRight,
				rect(srcRight, srcBottom, rightW, bottomH),
				rect(dstRight, dstBottom, rightW, bottomH))
		}
	}
	return cells
}

// Blit draws src onto s using nine-slice scaling of d into the destination
// rectangle at (x, y) with the given size. The center cell is always drawn
// when its source span is positive; Descriptor.Fill is left to the caller.
func Blit(s Surface, src image.Image, d Descriptor, x, y, width, height int) {
	cells := Cells(d, x, y, width, height)
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("ninescale: blit",
			slog.Any("clip", d.Clip.Rect()),
			slog.Any("slice", d.Slice),
			slog.Any("dst", image.Rect(x, y, x+width, y+height)),
			slog.Int("cells", len(cells)),
			slog.Any("skipped", skipped(cells)))
	}
	for _, c := range cells {
		s.CopyScaledRegion(src, c.Src, c.Dst)
	}
}

// skipped returns the grid positions missing from cells.
func skipped(cells []Cell) []string {
	var present [len(cellPosNames)]bool
	for _, c := range cells {
		present[c.Pos] = true
	}
	var names []string
	for pos, ok := range present {
		if !ok {
			names = append(names, CellPos(pos).String())
		}
	}
	return names
}
