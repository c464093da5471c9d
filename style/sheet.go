// Package style turns nine-slice renders into per-element style sheets.
//
// A [Sheet] renders every rule of an element at the element's current size,
// encodes each render as a data URL and emits one border-image rule per
// selector. Renders are cached per element and redone only when the element
// size or source image changes.
package style

import (
	"image"
	"log/slog"
	"reflect"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/BeatGlow/ninescale"
	"github.com/BeatGlow/ninescale/css"
	"github.com/BeatGlow/ninescale/draw"
)

func logger() *slog.Logger {
	return ninescale.Logger()
}

// Element is the box a background is rendered for.
type Element struct {
	// ID is the element id. Elements without one are assigned an id on
	// their first render.
	ID string

	// Width of the element's border box in pixels.
	Width int

	// Height of the element's border box in pixels.
	Height int
}

// Rule pairs a selector with render options. Selectors may use
// [css.IDPlaceholder] to refer to the element.
type Rule struct {
	Selector string
	Options  ninescale.Options
}

// Single returns the rule set for an element with one background state.
func Single(opts ninescale.Options) []Rule {
	return []Rule{{Selector: css.IDPlaceholder, Options: opts}}
}

// Render draws src with nine-slice scaling into a new width×height image.
func Render(src *Source, opts ninescale.Options, width, height int, interp draw.Interpolator) (*image.RGBA, ninescale.Descriptor) {
	var (
		d   = ninescale.Normalize(src.Size(), opts)
		dst = image.NewRGBA(image.Rect(0, 0, width, height))
		s   = draw.NewSurface(dst)
	)
	if interp != nil {
		s.Interpolator = interp
	}
	ninescale.Blit(s, src.Image, d, 0, 0, width, height)
	return dst, d
}

type entry struct {
	width  int
	height int
	source string
	rules  []Rule
	css    string
}

func (e entry) matches(el *Element, src *Source, rules []Rule) bool {
	return e.width == el.Width &&
		e.height == el.Height &&
		e.source == src.Name &&
		reflect.DeepEqual(e.rules, rules)
}

// Sheet holds the rendered rules of a set of elements. Calls on one Sheet are
// serialized.
type Sheet struct {
	// Interpolator used for stretched cells; nil means bilinear.
	Interpolator draw.Interpolator

	// NewID generates ids for elements without one; nil means a random
	// UUID.
	NewID func() string

	mu      sync.Mutex
	entries map[string]entry
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{entries: make(map[string]entry)}
}

func (s *Sheet) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

// Apply returns the CSS for el, rendering src once per rule. When el has the
// same size, source and rules as on its last render, the cached CSS is
// returned and rendered is false.
//
// An element with no area gets rules pointing at [css.EmptyURL].
func (s *Sheet) Apply(el *Element, src *Source, rules []Rule) (text string, rendered bool, err error) {
	if len(rules) == 0 {
		return "", false, ErrNoRules
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if el.ID == "" {
		el.ID = s.newID()
	}
	if s.entries == nil {
		s.entries = make(map[string]entry)
	}

	log := logger().With("element", el.ID)
	if e, ok := s.entries[el.ID]; ok && e.matches(el, src, rules) {
		log.Debug("style: unchanged, using cached rules")
		return e.css, false, nil
	}

	var b strings.Builder
	for _, rule := range rules {
		if el.Width <= 0 || el.Height <= 0 {
			d := ninescale.Normalize(src.Size(), rule.Options)
			b.WriteString(css.Rule(rule.Selector, el.ID, d, css.EmptyURL))
			continue
		}
		img, d := Render(src, rule.Options, el.Width, el.Height, s.Interpolator)
		url, err := css.DataURL(img)
		if err != nil {
			return "", false, err
		}
		b.WriteString(css.Rule(rule.Selector, el.ID, d, url))
	}

	s.entries[el.ID] = entry{
		width:  el.Width,
		height: el.Height,
		source: src.Name,
		rules:  slices.Clone(rules),
		css:    b.String(),
	}
	log.Debug("style: rendered",
		"width", el.Width,
		"height", el.Height,
		"source", src.Name,
		"rules", len(rules))
	return b.String(), true, nil
}

// Forget drops the cached rules of the element with the given id.
func (s *Sheet) Forget(id string) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

// String returns the rules of all elements, ordered by element id.
func (s *Sheet) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.entries))
	for id := range s.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var b strings.Builder
	for _, id := range ids {
		b.WriteString(s.entries[id].css)
	}
	return b.String()
}
