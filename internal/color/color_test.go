package color

import (
	"errors"
	"fmt"
	"strconv"
	"testing"
)

func TestFromHex(t *testing.T) {
	c, err := FromHex("#ff0000")
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if c.R != 1 || c.G != 0 || c.B != 0 || c.A != 1 {
		t.Errorf("FromHex(#ff0000) = %+v, want opaque red", c)
	}

	c, err = FromHex("1a1b26")
	if err != nil {
		t.Fatalf("FromHex without #: %v", err)
	}
	if d := c.R - 26.0/255.0; d > 1e-12 || d < -1e-12 {
		t.Errorf("R = %v, want %v", c.R, 26.0/255.0)
	}
}

func TestFromHex_ShortForms(t *testing.T) {
	short, err := FromHex("#f00")
	if err != nil {
		t.Fatalf("FromHex(#f00): %v", err)
	}
	long, err := FromHex("#ff0000")
	if err != nil {
		t.Fatalf("FromHex(#ff0000): %v", err)
	}
	if short != long {
		t.Errorf("#f00 = %+v, want %+v", short, long)
	}

	withAlpha, err := FromHex("#f008")
	if err != nil {
		t.Fatalf("FromHex(#f008): %v", err)
	}
	if withAlpha.A != float64(0x88)/255.0 {
		t.Errorf("alpha = %v, want %v", withAlpha.A, float64(0x88)/255.0)
	}
}

func TestFromHex_EightDigits(t *testing.T) {
	c, err := FromHex("#00000080")
	if err != nil {
		t.Fatalf("FromHex: %v", err)
	}
	if c.A != 128.0/255.0 {
		t.Errorf("alpha = %v, want %v", c.A, 128.0/255.0)
	}
}

func TestFromHex_InvalidLength(t *testing.T) {
	for _, s := range []string{"f", "#ff", "fffff", "#fffffff", "fffffffff", "", "#"} {
		_, err := FromHex(s)
		var lenErr *LengthError
		if !errors.As(err, &lenErr) {
			t.Errorf("FromHex(%q) error = %v, want LengthError", s, err)
		}
	}

	_, err := FromHex("#12345")
	var lenErr *LengthError
	if errors.As(err, &lenErr) && lenErr.N != 5 {
		t.Errorf("LengthError.N = %d, want 5", lenErr.N)
	}
}

func TestFromHex_InvalidDigit(t *testing.T) {
	for _, s := range []string{"#gg0000", "#12345z", "xyz", "#-1-1"} {
		_, err := FromHex(s)
		var digitErr *DigitError
		if !errors.As(err, &digitErr) {
			t.Errorf("FromHex(%q) error = %v, want DigitError", s, err)
			continue
		}
		var numErr *strconv.NumError
		if !errors.As(err, &numErr) {
			t.Errorf("FromHex(%q) should wrap strconv.NumError", s)
		}
	}
}

func TestHex_RoundTrip(t *testing.T) {
	// every channel value, in each position
	for v := 0; v < 256; v++ {
		for _, s := range []string{
			fmt.Sprintf("#%02x0000", v),
			fmt.Sprintf("#00%02x00", v),
			fmt.Sprintf("#0000%02x", v),
			fmt.Sprintf("#%02x%02x%02x", v, 255-v, v/2),
		} {
			c, err := FromHex(s)
			if err != nil {
				t.Fatalf("FromHex(%q): %v", s, err)
			}
			if got := c.Hex(); got != s {
				t.Fatalf("round trip %q -> %q", s, got)
			}
		}
	}
}

func TestLightenDarken_Bounds(t *testing.T) {
	colors := []Color{
		MustHex("#000000"),
		MustHex("#ffffff"),
		MustHex("#1e1e2e"),
		MustHex("#cdd6f4"),
		MustHex("#80808040"),
	}
	factors := []float64{0, 0.05, 0.15, 0.3, 0.5, 0.99, 1}

	for _, c := range colors {
		for _, f := range factors {
			l := c.Lighten(f)
			if l.R < c.R || l.G < c.G || l.B < c.B {
				t.Errorf("%s.Lighten(%v) = %+v decreased a channel", c, f, l)
			}
			if l.R > 1 || l.G > 1 || l.B > 1 {
				t.Errorf("%s.Lighten(%v) = %+v exceeds 1", c, f, l)
			}
			if l.A != c.A {
				t.Errorf("%s.Lighten(%v) changed alpha", c, f)
			}

			d := c.Darken(f)
			if d.R > c.R || d.G > c.G || d.B > c.B {
				t.Errorf("%s.Darken(%v) = %+v increased a channel", c, f, d)
			}
			if d.R < 0 || d.G < 0 || d.B < 0 {
				t.Errorf("%s.Darken(%v) = %+v below 0", c, f, d)
			}
			if d.A != c.A {
				t.Errorf("%s.Darken(%v) changed alpha", c, f)
			}
		}
	}
}

func TestLighten_Saturates(t *testing.T) {
	c := New(0.5, 0.5, 0.5, 1).Lighten(2)
	if c.R != 1 || c.G != 1 || c.B != 1 {
		t.Errorf("Lighten(2) = %+v, want channels clamped to 1", c)
	}
	c = New(0.5, 0.5, 0.5, 1).Darken(2)
	if c.R != 0 || c.G != 0 || c.B != 0 {
		t.Errorf("Darken(2) = %+v, want channels clamped to 0", c)
	}
}

func TestWithAlpha(t *testing.T) {
	c := MustHex("#cdd6f4")
	got := c.WithAlpha(0.5)
	if got.A != 0.5 {
		t.Errorf("alpha = %v, want 0.5", got.A)
	}
	if got.R != c.R || got.G != c.G || got.B != c.B {
		t.Error("WithAlpha changed color channels")
	}
	if c.A != 1 {
		t.Error("WithAlpha mutated receiver")
	}
}

func TestDefault(t *testing.T) {
	if d := Default(); d != New(0, 0, 0, 1) {
		t.Errorf("Default() = %+v, want opaque black", d)
	}
}

func TestIsDark(t *testing.T) {
	if New(0.5, 0.5, 0.5, 1).IsDark() {
		t.Error("mean 0.5 should not be dark")
	}
	if !New(0.499999, 0.499999, 0.499999, 1).IsDark() {
		t.Error("mean 0.499999 should be dark")
	}
}

func TestFormatting(t *testing.T) {
	c := MustHex("#cdd6f4")
	if got := c.String(); got != "#cdd6f4" {
		t.Errorf("String() = %q", got)
	}
	if got := c.HexA(); got != "#cdd6f4ff" {
		t.Errorf("HexA() = %q", got)
	}
	if got := c.HyprRGBA(); got != "rgba(cdd6f4ff)" {
		t.Errorf("HyprRGBA() = %q", got)
	}
	if got := c.WithAlpha(0).String(); got != "#cdd6f400" {
		t.Errorf("transparent String() = %q", got)
	}
	if got := string(c.Lipgloss()); got != "#cdd6f4" {
		t.Errorf("Lipgloss() = %q", got)
	}
}

func TestUnmarshalText(t *testing.T) {
	var c Color
	if err := c.UnmarshalText([]byte("#a6e3a1")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if c.Hex() != "#a6e3a1" {
		t.Errorf("got %s, want #a6e3a1", c.Hex())
	}
	if err := c.UnmarshalText([]byte("#zz")); err == nil {
		t.Error("expected error for invalid text")
	}
}

func TestLuminance(t *testing.T) {
	if l := MustHex("#ffffff").Luminance(); l < 0.99 {
		t.Errorf("white luminance = %v", l)
	}
	if l := MustHex("#000000").Luminance(); l != 0 {
		t.Errorf("black luminance = %v", l)
	}
}
