package ninescale

import (
	"fmt"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeClip(t *testing.T) {
	size := image.Pt(100, 50)
	tests := []struct {
		name string
		clip Clip
		want ClipRect
	}{
		{"absent", Clip{}, ClipRect{0, 0, 100, 50}},
		{"scalar", ClipScalar(10), ClipRect{10, 0, 90, 50}},
		{"empty sequence", ClipSeq(), ClipRect{0, 0, 100, 50}},
		{"sequence x", ClipSeq(10), ClipRect{10, 0, 90, 50}},
		{"sequence x y", ClipSeq(10, 5), ClipRect{10, 5, 90, 45}},
		{"sequence x y w", ClipSeq(10, 5, 20), ClipRect{10, 5, 20, 45}},
		{"sequence full", ClipSeq(10, 5, 20, 30), ClipRect{10, 5, 20, 30}},
		{"named x", ClipNamed(ClipFields{X: Some(10)}), ClipRect{10, 0, 90, 50}},
		{"named height", ClipNamed(ClipFields{Y: Some(20), Height: Some(10)}), ClipRect{0, 20, 100, 10}},
		{"zero width is absent", ClipNamed(ClipFields{X: Some(40), Width: Some(0)}), ClipRect{40, 0, 60, 50}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := Normalize(size, Options{Clip: test.clip})
			assert.Equal(t, test.want, d.Clip)
		})
	}
}

func TestNormalizeSliceForms(t *testing.T) {
	tests := []struct {
		name  string
		slice Slice
		want  SliceInsets
	}{
		{"absent", Slice{}, SliceInsets{}},
		{"scalar", SliceScalar(5), SliceInsets{5, 5, 5, 5}},
		{"sequence top", SliceSeq(4), SliceInsets{4, 4, 4, 4}},
		{"sequence top right", SliceSeq(4, 6), SliceInsets{4, 6, 4, 6}},
		{"sequence three", SliceSeq(1, 2, 3), SliceInsets{1, 2, 3, 2}},
		{"sequence full", SliceSeq(1, 2, 3, 4), SliceInsets{1, 2, 3, 4}},
		{"named right", SliceNamed(SliceFields{Right: Some(3)}), SliceInsets{3, 3, 3, 3}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			d := Normalize(image.Pt(10, 10), Options{Slice: test.slice})
			assert.Equal(t, test.want, d.Slice)
		})
	}
}

// TestNormalizeSliceCascade covers every combination of present named fields,
// with top=1, right=2, bottom=3 and left=4.
func TestNormalizeSliceCascade(t *testing.T) {
	want := map[uint8]SliceInsets{
		0b0000: {0, 0, 0, 0},
		0b1000: {1, 1, 1, 1},
		0b0100: {2, 2, 2, 2},
		0b0010: {3, 3, 3, 3},
		0b0001: {4, 4, 4, 4},
		0b1100: {1, 2, 1, 2},
		0b1010: {1, 3, 3, 3},
		0b1001: {1, 4, 1, 4},
		0b0110: {3, 2, 3, 2},
		0b0101: {4, 2, 4, 4},
		0b0011: {3, 4, 3, 4},
		0b1110: {1, 2, 3, 2},
		0b1101: {1, 2, 1, 4},
		0b1011: {1, 4, 3, 4},
		0b0111: {3, 2, 3, 4},
		0b1111: {1, 2, 3, 4},
	}
	for mask := uint8(0); mask < 16; mask++ {
		var f SliceFields
		if mask&0b1000 != 0 {
			f.Top = Some(1)
		}
		if mask&0b0100 != 0 {
			f.Right = Some(2)
		}
		if mask&0b0010 != 0 {
			f.Bottom = Some(3)
		}
		if mask&0b0001 != 0 {
			f.Left = Some(4)
		}
		t.Run(fmt.Sprintf("%04b", mask), func(t *testing.T) {
			d := Normalize(image.Pt(10, 10), Options{Slice: SliceNamed(f)})
			assert.Equal(t, want[mask], d.Slice)
		})
	}
}

func TestNormalizeFill(t *testing.T) {
	assert.False(t, Normalize(image.Pt(1, 1), Options{}).Fill)
	assert.True(t, Normalize(image.Pt(1, 1), Options{Fill: true}).Fill)
}

func TestNormalizeScenario(t *testing.T) {
	d := Normalize(image.Pt(256, 64), Options{
		Clip:  ClipSeq(185, 0, 93),
		Slice: SliceScalar(2),
		Fill:  true,
	})
	assert.Equal(t, Descriptor{
		Clip:  ClipRect{X: 185, Y: 0, Width: 93, Height: 64},
		Slice: SliceInsets{Top: 2, Right: 2, Bottom: 2, Left: 2},
		Fill:  true,
	}, d)
}

func TestClipSeqCopies(t *testing.T) {
	v := []int{1, 2, 3, 4}
	c := ClipSeq(v...)
	v[0] = 99
	assert.Equal(t, 1, Normalize(image.Pt(10, 10), Options{Clip: c}).Clip.X)
}
