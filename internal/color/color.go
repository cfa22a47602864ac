// Package color provides the RGBA color model used by themes.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color with channels in [0, 1].
// Channels may leave that range during arithmetic; formatting clamps them.
type Color struct {
	R, G, B, A float64
}

// New returns a color from its four channels.
func New(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Default returns opaque black.
func Default() Color {
	return Color{A: 1}
}

// LengthError is returned when a hex string has an unsupported length.
type LengthError struct {
	N int
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("invalid hex color length: %d", e.N)
}

// DigitError is returned when a hex string contains a non-hex digit.
type DigitError struct {
	Hex string
	Err error
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("invalid hex digit in %q: %v", e.Hex, e.Err)
}

func (e *DigitError) Unwrap() error { return e.Err }

// FromHex parses #RGB, #RGBA, #RRGGBB or #RRGGBBAA. The leading # is optional.
func FromHex(s string) (Color, error) {
	hex := strings.TrimLeft(s, "#")

	var width int
	switch len(hex) {
	case 3, 4:
		width = 1
	case 6, 8:
		width = 2
	default:
		return Color{}, &LengthError{N: len(hex)}
	}

	channels := [4]uint64{255, 255, 255, 255}
	for i := 0; i*width < len(hex); i++ {
		v, err := strconv.ParseUint(hex[i*width:(i+1)*width], 16, 8)
		if err != nil {
			return Color{}, &DigitError{Hex: s, Err: err}
		}
		if width == 1 {
			v *= 17 // f -> ff
		}
		channels[i] = v
	}

	return Color{
		R: float64(channels[0]) / 255.0,
		G: float64(channels[1]) / 255.0,
		B: float64(channels[2]) / 255.0,
		A: float64(channels[3]) / 255.0,
	}, nil
}

// MustHex is FromHex for literals known to be valid. It panics otherwise.
func MustHex(s string) Color {
	c, err := FromHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Lighten moves each channel toward 1 by factor. Alpha is unchanged.
func (c Color) Lighten(factor float64) Color {
	return Color{
		R: math.Min(c.R+(1-c.R)*factor, 1),
		G: math.Min(c.G+(1-c.G)*factor, 1),
		B: math.Min(c.B+(1-c.B)*factor, 1),
		A: c.A,
	}
}

// Darken scales each channel toward 0 by factor. Alpha is unchanged.
func (c Color) Darken(factor float64) Color {
	return Color{
		R: math.Max(c.R*(1-factor), 0),
		G: math.Max(c.G*(1-factor), 0),
		B: math.Max(c.B*(1-factor), 0),
		A: c.A,
	}
}

// WithAlpha returns a copy with alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// IsDark reports whether the mean of the RGB channels is below 0.5.
func (c Color) IsDark() bool {
	return (c.R+c.G+c.B)/3 < 0.5
}

func byteOf(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(v, 1)) * 255))
}

// Hex formats the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", byteOf(c.R), byteOf(c.G), byteOf(c.B))
}

// HexA formats the color as #rrggbbaa.
func (c Color) HexA() string {
	return fmt.Sprintf("%s%02x", c.Hex(), byteOf(c.A))
}

// String returns Hex for opaque colors and HexA otherwise.
func (c Color) String() string {
	if byteOf(c.A) == 255 {
		return c.Hex()
	}
	return c.HexA()
}

// HyprRGBA formats the color the way Hyprland config values expect it: rgba(rrggbbaa).
func (c Color) HyprRGBA() string {
	return "rgba(" + strings.TrimPrefix(c.HexA(), "#") + ")"
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := FromHex(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Lipgloss converts the color for terminal styling. Alpha is dropped.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Colorful converts the color to a clamped go-colorful value. Alpha is dropped.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
}

// Luminance returns the relative luminance (WCAG) of the color.
func (c Color) Luminance() float64 {
	r, g, b := c.Colorful().LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}
