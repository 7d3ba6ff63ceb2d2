// internal/render/palette.go
// Package render draws board views as plain-text tables for the terminal.
package render

import (
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mwiater/llmcompare/internal/catalog"
	"github.com/mwiater/llmcompare/internal/compare"
)

// Palette colors table cells. A disabled palette returns text unchanged.
type Palette struct {
	enabled bool
	above   *color.Color
	near    *color.Color
	below   *color.Color
	header  *color.Color
	muted   *color.Color
	free    *color.Color
}

// NewPalette returns a palette. When enabled is false no escape codes are emitted.
func NewPalette(enabled bool) Palette {
	p := Palette{
		enabled: enabled,
		above:   color.New(color.FgGreen),
		near:    color.New(color.FgYellow),
		below:   color.New(color.FgRed),
		header:  color.New(color.Bold, color.FgCyan),
		muted:   color.New(color.FgHiBlack),
		free:    color.New(color.Bold, color.FgGreen),
	}
	for _, c := range []*color.Color{p.above, p.near, p.below, p.header, p.muted, p.free} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Enabled reports whether the palette emits color.
func (p Palette) Enabled() bool { return p.enabled }

// Tier colors s by comparison tier: green, yellow or red.
func (p Palette) Tier(t compare.Tier, s string) string {
	switch t {
	case compare.TierAbove:
		return p.above.Sprint(s)
	case compare.TierNear:
		return p.near.Sprint(s)
	case compare.TierBelow:
		return p.below.Sprint(s)
	}
	return s
}

// Header styles a table heading.
func (p Palette) Header(s string) string { return p.header.Sprint(s) }

// Muted styles secondary text.
func (p Palette) Muted(s string) string { return p.muted.Sprint(s) }

// Free styles the FREE label.
func (p Palette) Free(s string) string { return p.free.Sprint(s) }

// Category colors s with the category's hex color.
func (p Palette) Category(c catalog.Category, s string) string {
	if !p.enabled {
		return s
	}
	r, g, b, ok := hexRGB(c.Color())
	if !ok {
		return s
	}
	cc := color.RGB(r, g, b)
	cc.EnableColor()
	return cc.Sprint(s)
}

func hexRGB(hex string) (int, int, int, bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
