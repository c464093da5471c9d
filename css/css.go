// Package css encodes rendered nine-slice surfaces as border-image rules.
package css

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"

	"github.com/BeatGlow/ninescale"
)

// IDPlaceholder is replaced by "#" and the element id in rule selectors.
const IDPlaceholder = "#ID"

// EmptyURL is the data URL of an image without pixels.
const EmptyURL = "data:,"

// DataURL encodes img as a PNG data URL. An empty image yields [EmptyURL].
func DataURL(img image.Image) (string, error) {
	if img.Bounds().Empty() {
		return EmptyURL, nil
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("css: encode png: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Selector expands the ID placeholder in selector with the element id.
func Selector(selector, id string) string {
	return strings.ReplaceAll(selector, IDPlaceholder, "#"+id)
}

// Rule returns a border-image rule for selector using the slice insets and
// fill flag of d and the image at url.
func Rule(selector, id string, d ninescale.Descriptor, url string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s { border-image: url(%s) %d %d %d %d",
		Selector(selector, id), url,
		d.Slice.Top, d.Slice.Right, d.Slice.Bottom, d.Slice.Left)
	if d.Fill {
		b.WriteString(" fill")
	}
	b.WriteString("; }\n")
	return b.String()
}
