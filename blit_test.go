package ninescale

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type copyCall struct {
	src, dst image.Rectangle
}

type recordingSurface struct {
	calls []copyCall
}

func (s *recordingSurface) CopyScaledRegion(_ image.Image, sr, dr image.Rectangle) {
	s.calls = append(s.calls, copyCall{sr, dr})
}

func descriptor(clip ClipRect, slice SliceInsets) Descriptor {
	return Descriptor{Clip: clip, Slice: slice}
}

func TestBlitScenario(t *testing.T) {
	d := Normalize(image.Pt(256, 64), Options{
		Clip:  ClipSeq(185, 0, 93),
		Slice: SliceScalar(2),
	})

	s := new(recordingSurface)
	Blit(s, image.NewRGBA(image.Rect(0, 0, 256, 64)), d, 0, 0, 200, 60)

	want := []copyCall{
		{image.Rect(185, 0, 187, 2), image.Rect(0, 0, 2, 2)},
		{image.Rect(185, 2, 187, 62), image.Rect(0, 2, 2, 58)},
		{image.Rect(185, 62, 187, 64), image.Rect(0, 58, 2, 60)},
		{image.Rect(187, 0, 276, 2), image.Rect(2, 0, 198, 2)},
		{image.Rect(187, 2, 276, 62), image.Rect(2, 2, 198, 58)},
		{image.Rect(187, 62, 276, 64), image.Rect(2, 58, 198, 60)},
		{image.Rect(276, 0, 278, 2), image.Rect(198, 0, 200, 2)},
		{image.Rect(276, 2, 278, 62), image.Rect(198, 2, 200, 58)},
		{image.Rect(276, 62, 278, 64), image.Rect(198, 58, 200, 60)},
	}
	assert.Equal(t, want, s.calls)
}

func TestCellsOrder(t *testing.T) {
	cells := Cells(descriptor(ClipRect{0, 0, 10, 10}, SliceInsets{2, 2, 2, 2}), 0, 0, 20, 20)
	require.Len(t, cells, 9)

	var got []CellPos
	for _, c := range cells {
		got = append(got, c.Pos)
	}
	assert.Equal(t, []CellPos{
		TopLeft, MiddleLeft, BottomLeft,
		TopCenter, Center, BottomCenter,
		TopRight, MiddleRight, BottomRight,
	}, got)
}

func TestCellsCornersUnscaled(t *testing.T) {
	cells := Cells(descriptor(ClipRect{0, 0, 10, 10}, SliceInsets{1, 2, 3, 4}), 0, 0, 50, 40)
	for _, c := range cells {
		switch c.Pos {
		case TopLeft, BottomLeft, TopRight, BottomRight:
			assert.Equal(t, c.Src.Size(), c.Dst.Size(), c.Pos.String())
		}
	}
}

func TestCellsNoSideColumns(t *testing.T) {
	cells := Cells(descriptor(ClipRect{0, 0, 10, 10}, SliceInsets{Top: 2, Bottom: 2}), 0, 0, 20, 20)

	var got []CellPos
	for _, c := range cells {
		got = append(got, c.Pos)
	}
	assert.Equal(t, []CellPos{TopCenter, Center, BottomCenter}, got)
}

func TestCellsDegenerateCenterColumn(t *testing.T) {
	for _, width := range []int{4, 6} {
		cells := Cells(descriptor(ClipRect{0, 0, width, 10}, SliceInsets{2, 3, 2, 3}), 0, 0, 20, 20)
		for _, c := range cells {
			switch c.Pos {
			case TopCenter, Center, BottomCenter:
				t.Errorf("clip width %d: unexpected %s cell", width, c.Pos)
			}
			assert.False(t, c.Src.Empty(), "clip width %d: %s has an empty source", width, c.Pos)
		}
		assert.Len(t, cells, 6)
	}
}

func TestCellsDegenerateMiddleRow(t *testing.T) {
	cells := Cells(descriptor(ClipRect{0, 0, 10, 4}, SliceInsets{2, 2, 2, 2}), 0, 0, 20, 20)

	var got []CellPos
	for _, c := range cells {
		got = append(got, c.Pos)
	}
	assert.Equal(t, []CellPos{
		TopLeft, BottomLeft,
		TopCenter, BottomCenter,
		TopRight, BottomRight,
	}, got)
}

func TestCellsZeroSlice(t *testing.T) {
	cells := Cells(descriptor(ClipRect{3, 4, 10, 10}, SliceInsets{}), 0, 0, 30, 20)
	require.Len(t, cells, 1)
	assert.Equal(t, Cell{
		Pos: Center,
		Src: image.Rect(3, 4, 13, 14),
		Dst: image.Rect(0, 0, 30, 20),
	}, cells[0])
}

func TestCellsCoverDestination(t *testing.T) {
	tests := []struct {
		clip          ClipRect
		slice         SliceInsets
		width, height int
	}{
		{ClipRect{0, 0, 10, 10}, SliceInsets{2, 2, 2, 2}, 200, 60},
		{ClipRect{5, 5, 20, 30}, SliceInsets{1, 2, 3, 4}, 17, 9},
		{ClipRect{0, 0, 10, 10}, SliceInsets{Left: 3, Right: 3}, 40, 40},
		{ClipRect{0, 0, 10, 10}, SliceInsets{}, 1, 1},
	}
	for _, test := range tests {
		cells := Cells(descriptor(test.clip, test.slice), 0, 0, test.width, test.height)
		require.NotEmpty(t, cells)

		var (
			bounds image.Rectangle
			area   int
		)
		for _, c := range cells {
			bounds = bounds.Union(c.Dst)
			area += c.Dst.Dx() * c.Dst.Dy()
		}
		assert.Equal(t, image.Rect(0, 0, test.width, test.height), bounds)
		assert.Equal(t, test.width*test.height, area)
	}
}

func TestCellsDestinationOrigin(t *testing.T) {
	// Right and bottom edges ignore the destination origin.
	cells := Cells(descriptor(ClipRect{0, 0, 10, 10}, SliceInsets{2, 2, 2, 2}), 5, 7, 20, 20)
	require.Len(t, cells, 9)

	assert.Equal(t, image.Rect(5, 7, 7, 9), cells[0].Dst)
	assert.Equal(t, image.Rect(18, 18, 20, 20), cells[8].Dst)
	assert.Equal(t, image.Rect(7, 9, 23, 25), cells[4].Dst)
}

func TestCellPosString(t *testing.T) {
	assert.Equal(t, "top-left", TopLeft.String())
	assert.Equal(t, "bottom-right", BottomRight.String())
	assert.Equal(t, "invalid", CellPos(42).String())
}
