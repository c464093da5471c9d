// Package draw provides the raster drawing surface for nine-slice renders.
package draw

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"strings"

	xdraw "golang.org/x/image/draw"
)

// Errors
var (
	ErrUnknownInterpolator = errors.New("draw: unknown interpolator")
)

// Image is an alias for [image/draw.Image].
type Image = draw.Image

// Op is an alias for image/draw.Op
type Op = draw.Op

const (
	// Over specifies ``(src in mask) over dst''.
	Over Op = iota

	// Src specifies ``src in mask''.
	Src
)

// Interpolator is an alias for [golang.org/x/image/draw.Interpolator].
type Interpolator = xdraw.Interpolator

// Interpolators by name, as accepted by [ParseInterpolator].
var interpolators = map[string]Interpolator{
	"nearest":         xdraw.NearestNeighbor,
	"approx-bilinear": xdraw.ApproxBiLinear,
	"bilinear":        xdraw.BiLinear,
	"catmull-rom":     xdraw.CatmullRom,
}

// ParseInterpolator returns the interpolator with the given name. An empty
// name selects bilinear, which matches browser canvas smoothing.
func ParseInterpolator(name string) (Interpolator, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return xdraw.BiLinear, nil
	}
	if i, ok := interpolators[name]; ok {
		return i, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownInterpolator, name)
}

// Draw calls [DrawMask] with a nil mask.
func Draw(dst Image, r image.Rectangle, src image.Image, sp image.Point, op Op) {
	DrawMask(dst, r, src, sp, nil, image.Point{}, op)
}

// DrawMask aligns r.Min in dst with sp in src and mp in mask and then replaces the rectangle r
// in dst with the result of a Porter-Duff composition. A nil mask is treated as opaque.
func DrawMask(dst Image, r image.Rectangle, src image.Image, sp image.Point, mask image.Image, mp image.Point, op Op) {
	draw.DrawMask(dst, r, src, sp, mask, mp, op)
}

// Surface copies scaled image regions onto a destination image.
type Surface struct {
	// Dst is the destination image.
	Dst Image

	// Interpolator resamples cells whose source and destination sizes differ.
	Interpolator Interpolator

	// Op is the compositing operator.
	Op Op
}

// NewSurface returns a bilinear, [Over] compositing surface drawing to dst.
func NewSurface(dst Image) *Surface {
	return &Surface{
		Dst:          dst,
		Interpolator: xdraw.BiLinear,
		Op:           Over,
	}
}

// CopyScaledRegion copies sr from src, scaled to fill dr. The source rectangle
// is relative to src.Bounds().Min. Empty rectangles are ignored.
func (s *Surface) CopyScaledRegion(src image.Image, sr, dr image.Rectangle) {
	if sr.Empty() || dr.Empty() {
		return
	}
	sr = sr.Add(src.Bounds().Min)
	if sr.Size() == dr.Size() {
		Draw(s.Dst, dr, src, sr.Min, s.Op)
		return
	}
	i := s.Interpolator
	if i == nil {
		i = xdraw.BiLinear
	}
	i.Scale(s.Dst, dr, src, sr, s.Op, nil)
}
