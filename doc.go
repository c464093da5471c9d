// Package ninescale renders nine-slice scaled images, the raster half of a
// CSS border-image background.
//
// A render takes raw [Options] (clip and slice arguments in scalar, sequence
// or named-field form), resolves them with [Normalize] into a [Descriptor],
// and draws the 3×3 grid of cells onto a [Surface] with [Blit]:
//
//	d := ninescale.Normalize(src.Bounds().Size(), ninescale.Options{
//		Clip:  ninescale.ClipSeq(185, 0, 93),
//		Slice: ninescale.SliceScalar(2),
//		Fill:  true,
//	})
//	dst := image.NewRGBA(image.Rect(0, 0, 200, 60))
//	ninescale.Blit(draw.NewSurface(dst), src, d, 0, 0, 200, 60)
//
// Corners are copied unscaled, edges are stretched along one axis and the
// center along both. Cells with a zero or negative span are skipped; none of
// the functions in this package fail.
package ninescale
