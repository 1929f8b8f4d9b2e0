// Package animations is the closed set of decorative animation styles the
// templates can ask for. Each Variant maps to one row of CSS parameters.
// Content tables hold Variant values directly, so there is no lookup by
// name at render time.
package animations

import (
	"fmt"
	"html/template"
	"time"
)

// Variant is one animation style.
type Variant uint8

const (
	None Variant = iota
	LensFocus
	LensFlare
	FilmReel
	FilmStrip
	CinematicCard
	LightLeak
	ApertureReveal
	ParallaxDrift

	variantCount
)

// Params holds the presentation parameters for a Variant.
type Params struct {
	Name         string
	Class        string
	Duration     time.Duration
	Delay        time.Duration
	Easing       string
	ReducedClass string // used when the visitor prefers reduced motion
}

var table = [variantCount]Params{
	None:           {Name: "none", Class: "", Easing: "linear"},
	LensFocus:      {Name: "lens-focus", Class: "anim-lens-focus", Duration: 1200 * time.Millisecond, Easing: "cubic-bezier(0.22, 1, 0.36, 1)", ReducedClass: "anim-fade"},
	LensFlare:      {Name: "lens-flare", Class: "anim-lens-flare", Duration: 1800 * time.Millisecond, Delay: 200 * time.Millisecond, Easing: "ease-out", ReducedClass: "anim-fade"},
	FilmReel:       {Name: "film-reel", Class: "anim-film-reel", Duration: 6 * time.Second, Easing: "linear", ReducedClass: "anim-static"},
	FilmStrip:      {Name: "film-strip", Class: "anim-film-strip", Duration: 9 * time.Second, Easing: "linear", ReducedClass: "anim-static"},
	CinematicCard:  {Name: "cinematic-card", Class: "anim-cinematic-card", Duration: 700 * time.Millisecond, Delay: 100 * time.Millisecond, Easing: "cubic-bezier(0.16, 1, 0.3, 1)", ReducedClass: "anim-fade"},
	LightLeak:      {Name: "light-leak", Class: "anim-light-leak", Duration: 4 * time.Second, Easing: "ease-in-out", ReducedClass: "anim-static"},
	ApertureReveal: {Name: "aperture-reveal", Class: "anim-aperture", Duration: 900 * time.Millisecond, Easing: "cubic-bezier(0.65, 0, 0.35, 1)", ReducedClass: "anim-fade"},
	ParallaxDrift:  {Name: "parallax-drift", Class: "anim-parallax", Duration: 12 * time.Second, Easing: "linear", ReducedClass: "anim-static"},
}

// All returns every variant except None.
func All() []Variant {
	out := make([]Variant, 0, variantCount-1)
	for v := None + 1; v < variantCount; v++ {
		out = append(out, v)
	}
	return out
}

// Params returns the table row for v; out-of-range values get None's row.
func (v Variant) Params() Params {
	if v >= variantCount {
		return table[None]
	}
	return table[v]
}

func (v Variant) String() string { return v.Params().Name }

// Class returns the CSS classes for v, including the reduced-motion class.
func (v Variant) Class() string {
	s := v.Params()
	if s.Class == "" {
		return ""
	}
	if s.ReducedClass == "" {
		return s.Class
	}
	return s.Class + " motion-reduce:" + s.ReducedClass
}

// Style returns the inline CSS custom properties the stylesheet reads.
func (v Variant) Style() template.CSS {
	s := v.Params()
	if s.Class == "" {
		return ""
	}
	return template.CSS(fmt.Sprintf("--anim-duration:%dms;--anim-delay:%dms;--anim-easing:%s",
		s.Duration.Milliseconds(), s.Delay.Milliseconds(), s.Easing))
}
