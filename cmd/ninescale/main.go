// Command ninescale renders nine-slice border-image backgrounds to CSS.
//
// Usage:
//
//	ninescale [flags] <job.toml>
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BeatGlow/ninescale"
	"github.com/BeatGlow/ninescale/config"
	"github.com/BeatGlow/ninescale/draw"
	"github.com/BeatGlow/ninescale/style"
)

func main() {
	widthFlag := flag.Int("width", 0, "Element width (overrides the job file)")
	heightFlag := flag.Int("height", 0, "Element height (overrides the job file)")
	idFlag := flag.String("id", "", "Element id (overrides the job file)")
	interpFlag := flag.String("interp", "", "Interpolator: nearest, approx-bilinear, bilinear or catmull-rom")
	outFlag := flag.String("out", "", "CSS output file (default: stdout)")
	previewFlag := flag.String("preview", "", "Write a PNG preview of each rule; with several rules %d is replaced by (or the name suffixed with) the rule index")
	gridFlag := flag.Bool("grid", false, "Outline the nine-slice cells in previews")
	debugFlag := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <job.toml>\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	if *debugFlag {
		ninescale.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	job, err := config.Load(flag.Arg(0))
	if err != nil {
		fatal(err)
	}
	if *widthFlag > 0 {
		job.Element.Width = *widthFlag
	}
	if *heightFlag > 0 {
		job.Element.Height = *heightFlag
	}
	if *idFlag != "" {
		job.Element.ID = *idFlag
	}
	if *interpFlag != "" {
		job.Interpolation = *interpFlag
	}

	interp, err := draw.ParseInterpolator(job.Interpolation)
	if err != nil {
		fatal(err)
	}

	src, err := style.LoadSource(job.Source)
	if err != nil {
		fatal(err)
	}

	var (
		el = &style.Element{
			ID:     job.Element.ID,
			Width:  job.Element.Width,
			Height: job.Element.Height,
		}
		rules = job.StyleRules()
		sheet = style.NewSheet()
	)
	sheet.Interpolator = interp

	text, _, err := sheet.Apply(el, src, rules)
	if err != nil {
		fatal(err)
	}

	if err = writeCSS(*outFlag, text); err != nil {
		fatal(err)
	}

	if *previewFlag != "" && (el.Width <= 0 || el.Height <= 0) {
		fmt.Fprintf(os.Stderr, "element is %dx%d, no previews written\n", el.Width, el.Height)
	} else if *previewFlag != "" {
		for i, rule := range rules {
			name := previewName(*previewFlag, i, len(rules))
			if err = writePreview(name, src, rule, el, interp, *gridFlag); err != nil {
				fatal(err)
			}
			fmt.Fprintf(os.Stderr, "preview of %q written to %s\n", rule.Selector, name)
		}
	}
}

// writeCSS writes text to the file name, or to stdout when name is empty.
func writeCSS(name, text string) error {
	if name == "" {
		_, err := io.WriteString(os.Stdout, text)
		return err
	}
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if _, err = io.WriteString(f, text); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// previewName returns the preview file name of rule i out of n. With more
// than one rule, "%d" in pattern is replaced by i, or i is appended to the
// base name when pattern has no "%d".
func previewName(pattern string, i, n int) string {
	if n <= 1 {
		return pattern
	}
	index := strconv.Itoa(i)
	if strings.Contains(pattern, "%d") {
		return strings.ReplaceAll(pattern, "%d", index)
	}
	ext := filepath.Ext(pattern)
	return strings.TrimSuffix(pattern, ext) + "-" + index + ext
}

var gridColor = color.RGBA{R: 0xff, G: 0x00, B: 0xff, A: 0xff}

func writePreview(name string, src *style.Source, rule style.Rule, el *style.Element, interp draw.Interpolator, grid bool) error {
	img, d := style.Render(src, rule.Options, el.Width, el.Height, interp)
	if grid {
		cells := ninescale.Cells(d, 0, 0, el.Width, el.Height)
		rects := make([]image.Rectangle, len(cells))
		for i, c := range cells {
			rects[i] = c.Dst
		}
		draw.Grid(img, rects, gridColor)
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err = png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
