package ninescale

import "image"

// Optional is a pixel value that may be absent.
//
// A zero Value is treated the same as an absent one by Normalize.
type Optional struct {
	Value int
	Valid bool
}

// Some returns a present Optional holding v.
func Some(v int) Optional {
	return Optional{Value: v, Valid: true}
}

// get returns the value, or 0 when absent.
func (o Optional) get() int {
	if !o.Valid {
		return 0
	}
	return o.Value
}

type argKind uint8

const (
	argNone argKind = iota
	argScalar
	argSeq
	argFields
)

// ClipFields is the named-field form of a clip argument.
type ClipFields struct {
	X, Y, Width, Height Optional
}

// Clip is a raw clip argument. The zero value means "no clip": the whole
// image is used.
type Clip struct {
	kind   argKind
	seq    []int
	fields ClipFields
}

// ClipScalar is a clip argument of a single number, the X coordinate.
func ClipScalar(x int) Clip {
	return Clip{kind: argScalar, seq: []int{x}}
}

// ClipSeq is a positional clip argument: x, y, width, height.
// Missing trailing values are absent.
func ClipSeq(v ...int) Clip {
	return Clip{kind: argSeq, seq: append([]int(nil), v...)}
}

// ClipNamed is a clip argument with named fields.
func ClipNamed(f ClipFields) Clip {
	return Clip{kind: argFields, fields: f}
}

// IsZero reports whether no clip argument was given.
func (c Clip) IsZero() bool {
	return c.kind == argNone
}

func (c Clip) resolve() ClipFields {
	switch c.kind {
	case argScalar:
		return ClipFields{X: Some(c.seq[0])}
	case argSeq:
		var f ClipFields
		for i, p := range []*Optional{&f.X, &f.Y, &f.Width, &f.Height} {
			if i < len(c.seq) {
				*p = Some(c.seq[i])
			}
		}
		return f
	case argFields:
		return c.fields
	default:
		return ClipFields{}
	}
}

// SliceFields is the named-field form of a slice argument.
type SliceFields struct {
	Top, Right, Bottom, Left Optional
}

// Slice is a raw slice argument, modeled on border-image-slice.
type Slice struct {
	kind   argKind
	seq    []int
	fields SliceFields
}

// SliceScalar is a slice argument of a single number, the top inset. The
// fallback cascade spreads it to all four sides.
func SliceScalar(top int) Slice {
	return Slice{kind: argScalar, seq: []int{top}}
}

// SliceSeq is a positional slice argument: top, right, bottom, left.
// Missing trailing values are absent.
func SliceSeq(v ...int) Slice {
	return Slice{kind: argSeq, seq: append([]int(nil), v...)}
}

// SliceNamed is a slice argument with named fields.
func SliceNamed(f SliceFields) Slice {
	return Slice{kind: argFields, fields: f}
}

// IsZero reports whether no slice argument was given.
func (s Slice) IsZero() bool {
	return s.kind == argNone
}

func (s Slice) resolve() SliceFields {
	switch s.kind {
	case argScalar:
		return SliceFields{Top: Some(s.seq[0])}
	case argSeq:
		var f SliceFields
		for i, p := range []*Optional{&f.Top, &f.Right, &f.Bottom, &f.Left} {
			if i < len(s.seq) {
				*p = Some(s.seq[i])
			}
		}
		return f
	case argFields:
		return s.fields
	default:
		return SliceFields{}
	}
}

// Options are the raw render options for one element state.
type Options struct {
	// Clip selects the part of the source image to slice.
	Clip Clip

	// Slice holds the slice insets.
	Slice Slice

	// Fill paints the center cell in the generated border-image rule.
	Fill bool
}

// ClipRect is a sub-rectangle of the source image.
type ClipRect struct {
	X, Y, Width, Height int
}

// Rect returns c as an image.Rectangle.
func (c ClipRect) Rect() image.Rectangle {
	return image.Rect(c.X, c.Y, c.X+c.Width, c.Y+c.Height)
}

// SliceInsets are the distances from each clip edge to the grid lines.
type SliceInsets struct {
	Top, Right, Bottom, Left int
}

// Descriptor is the fully resolved geometry of a render.
type Descriptor struct {
	Clip  ClipRect
	Slice SliceInsets
	Fill  bool
}

// Normalize resolves opts against an image of the given size. It never fails;
// every absent value is defaulted.
func Normalize(size image.Point, opts Options) Descriptor {
	return Descriptor{
		Clip:  normalizeClip(size, opts.Clip.resolve()),
		Slice: normalizeSlice(opts.Slice.resolve()),
		Fill:  opts.Fill,
	}
}

func normalizeClip(size image.Point, f ClipFields) ClipRect {
	c := ClipRect{
		X:      f.X.get(),
		Y:      f.Y.get(),
		Width:  f.Width.get(),
		Height: f.Height.get(),
	}
	if c.Width == 0 {
		c.Width = size.X - c.X
	}
	if c.Height == 0 {
		c.Height = size.Y - c.Y
	}
	return c
}

func normalizeSlice(f SliceFields) SliceInsets {
	s := SliceInsets{
		Top:    f.Top.get(),
		Right:  f.Right.get(),
		Bottom: f.Bottom.get(),
		Left:   f.Left.get(),
	}

	// The order matters: a lone value ends up on all four sides.
	fallback(&s.Bottom, s.Top)
	fallback(&s.Top, s.Bottom)
	fallback(&s.Left, s.Right)
	fallback(&s.Right, s.Left)

	fallback(&s.Top, s.Left)
	fallback(&s.Bottom, s.Left)
	fallback(&s.Left, s.Bottom)
	fallback(&s.Right, s.Bottom)
	return s
}

func fallback(dst *int, v int) {
	if *dst == 0 {
		*dst = v
	}
}
