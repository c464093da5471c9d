// Package config reads nine-slice render jobs from TOML files.
//
// A job names a source image, the element to render for and either a single
// set of options at the top level or a list of per-selector rules:
//
//	source = "round_button.png"
//
//	[element]
//	id = "button"
//	width = 200
//	height = 60
//
//	[[rule]]
//	selector = "#ID:hover"
//	clip = [93, 0, 93]
//	slice = 2
//	fill = true
//
// clip and slice accept a number, an array or a table, like the arguments of
// [ninescale.Options].
package config

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/BeatGlow/ninescale"
	"github.com/BeatGlow/ninescale/css"
	"github.com/BeatGlow/ninescale/style"
)

// Errors
var (
	ErrInvalidValue = errors.New("config: invalid value")
)

// Job is a render job.
type Job struct {
	// Source is the source image path, relative to the job file.
	Source string `toml:"source"`

	// Interpolation names the resampling filter, see draw.ParseInterpolator.
	Interpolation string `toml:"interpolation"`

	// Element is the element to render for.
	Element Element `toml:"element"`

	// Clip, Slice and Fill describe a single background for the "#ID"
	// selector. When Clip or Slice is set, Rules are ignored.
	Clip  Clip  `toml:"clip"`
	Slice Slice `toml:"slice"`
	Fill  bool  `toml:"fill"`

	// Rules are per-selector backgrounds.
	Rules []Rule `toml:"rule"`
}

// Element is the element size and id.
type Element struct {
	ID     string `toml:"id"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Rule is a background for one selector.
type Rule struct {
	Selector string `toml:"selector"`
	Clip     Clip   `toml:"clip"`
	Slice    Slice  `toml:"slice"`
	Fill     bool   `toml:"fill"`
}

// Decode parses a job from TOML text.
func Decode(text string) (*Job, error) {
	var job Job
	if _, err := toml.Decode(text, &job); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &job, nil
}

// Load reads the job file at path. A relative Source is resolved against the
// directory of the file.
func Load(path string) (*Job, error) {
	var job Job
	if _, err := toml.DecodeFile(path, &job); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if job.Source != "" && !filepath.IsAbs(job.Source) {
		job.Source = filepath.Join(filepath.Dir(path), job.Source)
	}
	return &job, nil
}

// StyleRules returns the style rules of the job.
func (j *Job) StyleRules() []style.Rule {
	if !j.Clip.IsZero() || !j.Slice.IsZero() {
		return style.Single(ninescale.Options{
			Clip:  j.Clip.Clip,
			Slice: j.Slice.Slice,
			Fill:  j.Fill,
		})
	}

	rules := make([]style.Rule, 0, len(j.Rules))
	for _, r := range j.Rules {
		selector := r.Selector
		if selector == "" {
			selector = css.IDPlaceholder
		}
		rules = append(rules, style.Rule{
			Selector: selector,
			Options: ninescale.Options{
				Clip:  r.Clip.Clip,
				Slice: r.Slice.Slice,
				Fill:  r.Fill,
			},
		})
	}
	return rules
}

// Clip is a clip argument decoded from a number, an array of up to four
// numbers or a table with x, y, width and height keys.
type Clip struct {
	ninescale.Clip
}

// UnmarshalTOML implements toml.Unmarshaler.
func (c *Clip) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case map[string]any:
		var f ninescale.ClipFields
		if err := fields(v, map[string]*ninescale.Optional{
			"x":      &f.X,
			"y":      &f.Y,
			"width":  &f.Width,
			"height": &f.Height,
		}); err != nil {
			return fmt.Errorf("clip: %w", err)
		}
		c.Clip = ninescale.ClipNamed(f)
	case []any:
		seq, err := sequence(v, 4)
		if err != nil {
			return fmt.Errorf("clip: %w", err)
		}
		c.Clip = ninescale.ClipSeq(seq...)
	default:
		n, err := number(v)
		if err != nil {
			return fmt.Errorf("clip: %w", err)
		}
		c.Clip = ninescale.ClipScalar(n)
	}
	return nil
}

// Slice is a slice argument decoded from a number, an array of up to four
// numbers or a table with top, right, bottom and left keys.
type Slice struct {
	ninescale.Slice
}

// UnmarshalTOML implements toml.Unmarshaler.
func (s *Slice) UnmarshalTOML(v any) error {
	switch v := v.(type) {
	case map[string]any:
		var f ninescale.SliceFields
		if err := fields(v, map[string]*ninescale.Optional{
			"top":    &f.Top,
			"right":  &f.Right,
			"bottom": &f.Bottom,
			"left":   &f.Left,
		}); err != nil {
			return fmt.Errorf("slice: %w", err)
		}
		s.Slice = ninescale.SliceNamed(f)
	case []any:
		seq, err := sequence(v, 4)
		if err != nil {
			return fmt.Errorf("slice: %w", err)
		}
		s.Slice = ninescale.SliceSeq(seq...)
	default:
		n, err := number(v)
		if err != nil {
			return fmt.Errorf("slice: %w", err)
		}
		s.Slice = ninescale.SliceScalar(n)
	}
	return nil
}

func number(v any) (int, error) {
	switch v := v.(type) {
	case int64:
		return int(v), nil
	case float64:
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("%w: %v is not a whole number", ErrInvalidValue, v)
		}
		return int(v), nil
	default:
		return 0, fmt.Errorf("%w: %T", ErrInvalidValue, v)
	}
}

func sequence(values []any, limit int) ([]int, error) {
	if len(values) > limit {
		return nil, fmt.Errorf("%w: more than %d values", ErrInvalidValue, limit)
	}
	seq := make([]int, len(values))
	for i, v := range values {
		n, err := number(v)
		if err != nil {
			return nil, err
		}
		seq[i] = n
	}
	return seq, nil
}

func fields(table map[string]any, keys map[string]*ninescale.Optional) error {
	for key, v := range table {
		dst, ok := keys[key]
		if !ok {
			return fmt.Errorf("%w: unknown key %q", ErrInvalidValue, key)
		}
		n, err := number(v)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = ninescale.Some(n)
	}
	return nil
}
