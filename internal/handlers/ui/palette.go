package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B int
}

// namedColors covers the CSS color keywords theme profiles may use.
var namedColors = map[string]RGB{
	"black":       {0, 0, 0},
	"white":       {255, 255, 255},
	"gray":        {128, 128, 128},
	"grey":        {128, 128, 128},
	"silver":      {192, 192, 192},
	"red":         {255, 0, 0},
	"green":       {0, 128, 0},
	"lightgreen":  {144, 238, 144},
	"lime":        {0, 255, 0},
	"blue":        {0, 0, 255},
	"navy":        {0, 0, 128},
	"cyan":        {0, 255, 255},
	"aqua":        {0, 255, 255},
	"magenta":     {255, 0, 255},
	"fuchsia":     {255, 0, 255},
	"yellow":      {255, 255, 0},
	"orange":      {255, 165, 0},
	"amber":       {255, 191, 0},
	"purple":      {128, 0, 128},
	"teal":        {0, 128, 128},
	"olive":       {128, 128, 0},
	"maroon":      {128, 0, 0},
	"darkgreen":   {0, 100, 0},
	"lightgray":   {211, 211, 211},
	"lightgrey":   {211, 211, 211},
	"darkgray":    {169, 169, 169},
	"darkgrey":    {169, 169, 169},
	"forestgreen": {34, 139, 34},
}

// ParseColor accepts a CSS color keyword, #rgb or #rrggbb.
func ParseColor(spec string) (RGB, error) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if !strings.HasPrefix(s, "#") {
		return RGB{}, fmt.Errorf("unknown color %q", spec)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex color %q", spec)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex color %q: %w", spec, err)
	}
	return RGB{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}, nil
}

/*
NewStyle builds a printer with the given foreground and background.
An unparsable value leaves that side at the terminal default and is
reported in the returned error; the style is still usable.
*/
func NewStyle(fg, bg string) (*color.Color, error) {
	style := color.New()
	var errs []string

	if c, err := ParseColor(fg); err == nil {
		style.AddRGB(c.R, c.G, c.B)
	} else {
		errs = append(errs, "foreground: "+err.Error())
	}
	if c, err := ParseColor(bg); err == nil {
		style.AddBgRGB(c.R, c.G, c.B)
	} else {
		errs = append(errs, "background: "+err.Error())
	}

	if len(errs) > 0 {
		return style, fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return style, nil
}
