package theme

import (
	"errors"
	"strings"
	"testing"

	"github.com/wonderland-desktop/wonderctl/internal/color"
)

func TestDerive_Dark(t *testing.T) {
	fg := color.MustHex("#cdd6f4")
	bg := color.MustHex("#1e1e2e")

	th := Derive(fg, bg)

	if !th.IsDark() {
		t.Fatal("#1e1e2e should be dark")
	}
	if th.Primary != fg {
		t.Errorf("Primary = %s, want %s", th.Primary, fg)
	}
	if th.Border != bg.Lighten(0.15) {
		t.Errorf("Border = %+v, want %+v", th.Border, bg.Lighten(0.15))
	}
	if th.Surface != bg.Lighten(0.08) {
		t.Errorf("Surface = %+v, want bg.Lighten(0.08)", th.Surface)
	}
	if th.TextMuted != fg.Darken(0.3) {
		t.Errorf("TextMuted = %+v, want fg.Darken(0.3)", th.TextMuted)
	}
	if th.Secondary != fg.Darken(0.2) {
		t.Errorf("Secondary = %+v, want fg.Darken(0.2)", th.Secondary)
	}
	if th.BorderActive != fg {
		t.Errorf("BorderActive = %+v, want fg", th.BorderActive)
	}
}

func TestDerive_Light(t *testing.T) {
	fg := color.MustHex("#4c4f69")
	bg := color.MustHex("#eff1f5")

	th := Derive(fg, bg)

	if th.IsDark() {
		t.Fatal("#eff1f5 should be light")
	}
	if th.Surface != bg.Darken(0.05) {
		t.Errorf("Surface = %+v, want bg.Darken(0.05)", th.Surface)
	}
	if th.TextMuted != fg.Lighten(0.3) {
		t.Errorf("TextMuted = %+v, want fg.Lighten(0.3)", th.TextMuted)
	}
	if th.Border != bg.Darken(0.15) {
		t.Errorf("Border = %+v, want bg.Darken(0.15)", th.Border)
	}
}

func TestDerive_Boundary(t *testing.T) {
	fg := color.MustHex("#000000")

	half := Derive(fg, color.New(0.5, 0.5, 0.5, 1))
	if half.Surface != half.Background.Darken(0.05) {
		t.Error("mean 0.5 should take the light branch")
	}

	below := Derive(fg, color.New(0.499999, 0.499999, 0.499999, 1))
	if below.Surface != below.Background.Lighten(0.08) {
		t.Error("mean 0.499999 should take the dark branch")
	}
}

func TestDerive_StatusColors(t *testing.T) {
	th := Derive(color.MustHex("#ffffff"), color.MustHex("#000000"))

	tests := []struct {
		name string
		got  color.Color
		want string
	}{
		{"error", th.Error, "#f38ba8"},
		{"warning", th.Warning, "#f9e2af"},
		{"success", th.Success, "#a6e3a1"},
	}
	for _, tt := range tests {
		if tt.got.Hex() != tt.want {
			t.Errorf("%s = %s, want %s", tt.name, tt.got, tt.want)
		}
	}
}

func TestConstantOr_Fallback(t *testing.T) {
	fg := color.MustHex("#abcdef")
	if got := constantOr("#nothex", fg); got != fg {
		t.Errorf("constantOr() = %s, want fallback %s", got, fg)
	}
}

func TestPalette(t *testing.T) {
	th := Derive(color.MustHex("#cdd6f4"), color.MustHex("#1e1e2e"))
	p := th.Palette()
	if len(p) != 11 {
		t.Fatalf("palette has %d entries, want 11", len(p))
	}
	if p[0].Name != "foreground" || p[len(p)-1].Name != "text_muted" {
		t.Errorf("unexpected palette order: %v", p)
	}
}

func TestParseSeeds(t *testing.T) {
	css := `
  @define-color foreground #111111;
@define-color foreground_alt #222222;
@define-color background   #333333 ;
@define-color
@define-color foreground #444444;
`
	fg, bg, err := ParseSeeds(strings.NewReader(css))
	if err != nil {
		t.Fatalf("ParseSeeds: %v", err)
	}
	if fg.Hex() != "#444444" {
		t.Errorf("foreground = %s, want last declaration #444444", fg)
	}
	if bg.Hex() != "#333333" {
		t.Errorf("background = %s, want #333333", bg)
	}
}

func TestParseSeeds_LongLines(t *testing.T) {
	long := strings.Repeat("a", 200000)
	css := "/* " + long + " */\r\n" +
		"@define-color foreground #ffffff; /* " + long + " */\r\n" +
		"@define-color background #000000;"

	fg, bg, err := ParseSeeds(strings.NewReader(css))
	if err != nil {
		t.Fatalf("ParseSeeds: %v", err)
	}
	if fg.Hex() != "#ffffff" || bg.Hex() != "#000000" {
		t.Errorf("seeds = %s, %s", fg.Hex(), bg.Hex())
	}
}

func TestParseSeeds_MissingForegroundFirst(t *testing.T) {
	_, _, err := ParseSeeds(strings.NewReader("body { color: red; }\n"))
	var missing *MissingColorError
	if !errors.As(err, &missing) {
		t.Fatalf("error = %v, want MissingColorError", err)
	}
	if missing.Name != "foreground" {
		t.Errorf("missing = %q, want foreground", missing.Name)
	}
}

func TestParseSeeds_InvalidDigit(t *testing.T) {
	_, _, err := ParseSeeds(strings.NewReader("@define-color foreground #gggggg;\n"))
	var digitErr *color.DigitError
	if !errors.As(err, &digitErr) {
		t.Errorf("error = %v, want color.DigitError", err)
	}
}
