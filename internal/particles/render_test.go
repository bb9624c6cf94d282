package particles

import (
	"errors"
	"math"
	"testing"
)

func TestLinkAlphaDistanceLaw(t *testing.T) {
	t.Parallel()

	tests := []struct {
		theme Theme
		scale float64
	}{
		{theme: ThemeDark, scale: 0.36},
		{theme: ThemeLight, scale: 0.26},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(string(tt.theme), func(t *testing.T) {
			t.Parallel()
			pal := PaletteFor(tt.theme)

			if a, ok := pal.LinkAlpha(0); !ok || a != tt.scale {
				t.Fatalf("LinkAlpha(0) = %v, %t; want %v, true", a, ok, tt.scale)
			}
			if a, ok := pal.LinkAlpha(LinkDistance); !ok || a != 0 {
				t.Fatalf("LinkAlpha(%v) = %v, %t; want 0, true", LinkDistance, a, ok)
			}
			if _, ok := pal.LinkAlpha(LinkDistance + 1e-9); ok {
				t.Fatalf("LinkAlpha beyond LinkDistance should not link")
			}

			prev := math.Inf(1)
			for d := 0.0; d <= LinkDistance; d += 0.5 {
				a, ok := pal.LinkAlpha(d)
				if !ok {
					t.Fatalf("LinkAlpha(%v) not linked", d)
				}
				if a > prev {
					t.Fatalf("alpha increased at d=%v: %v > %v", d, a, prev)
				}
				prev = a
			}
		})
	}
}

func TestLinkColorAlpha(t *testing.T) {
	t.Parallel()

	pal := PaletteFor(ThemeDark)
	tests := []struct {
		alpha float64
		want  uint8
	}{
		{alpha: 0, want: 0},
		{alpha: 0.36, want: 92},
		{alpha: 1, want: 255},
		{alpha: 2, want: 255},
		{alpha: -1, want: 0},
	}
	for _, tt := range tests {
		c := pal.LinkColor(tt.alpha)
		if c.A != tt.want {
			t.Fatalf("LinkColor(%v).A = %d, want %d", tt.alpha, c.A, tt.want)
		}
		if c.R != pal.Line.R || c.G != pal.Line.G || c.B != pal.Line.B {
			t.Fatalf("LinkColor changed RGB: %+v vs %+v", c, pal.Line)
		}
	}
}

func TestPaletteSelection(t *testing.T) {
	t.Parallel()

	dark := PaletteFor(ThemeDark)
	if dark.Point.A != 191 || dark.Line.G != 216 {
		t.Fatalf("dark palette = %+v", dark)
	}
	light := PaletteFor(ThemeLight)
	if light.Point.A != 153 || light.Line.G != 183 {
		t.Fatalf("light palette = %+v", light)
	}
	if PaletteFor(Theme("sepia")) != light {
		t.Fatalf("unknown theme should fall back to the light palette")
	}
}

func TestParseTheme(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Theme
		err  error
	}{
		{in: "dark", want: ThemeDark},
		{in: " Light ", want: ThemeLight},
		{in: "DARK", want: ThemeDark},
		{in: "sepia", err: ErrUnknownTheme},
		{in: "", err: ErrUnknownTheme},
	}
	for _, tt := range tests {
		got, err := ParseTheme(tt.in)
		if !errors.Is(err, tt.err) {
			t.Fatalf("ParseTheme(%q) error = %v, want %v", tt.in, err, tt.err)
		}
		if got != tt.want {
			t.Fatalf("ParseTheme(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestThemeToggle(t *testing.T) {
	t.Parallel()

	if ThemeDark.Toggle() != ThemeLight || ThemeLight.Toggle() != ThemeDark {
		t.Fatalf("Toggle should flip dark and light")
	}
}

func TestRenderDrawsPointsThenLinks(t *testing.T) {
	t.Parallel()

	field := []Particle{
		{X: 0, Y: 0, Radius: 1.5},
		{X: 100, Y: 0, Radius: 2},
		{X: 300, Y: 0, Radius: 3},
	}
	pal := PaletteFor(ThemeDark)
	c := &recordCanvas{}

	links := Render(c, field, 400, 300, pal)

	if links != 1 || len(c.lines) != 1 {
		t.Fatalf("links = %d (recorded %d), want 1", links, len(c.lines))
	}
	if c.ops[0] != "clear" {
		t.Fatalf("first op = %q, want clear", c.ops[0])
	}
	if len(c.circles) != 3 {
		t.Fatalf("circles = %d, want 3", len(c.circles))
	}
	for i, ci := range c.circles {
		if ci.x != field[i].X || ci.y != field[i].Y || ci.r != field[i].Radius || ci.clr != pal.Point {
			t.Fatalf("circle %d = %+v, want particle %+v with point colour", i, ci, field[i])
		}
	}

	l := c.lines[0]
	if l.x0 != 0 || l.x1 != 100 || l.width != LinkWidth {
		t.Fatalf("line = %+v", l)
	}
	wantAlpha := pal.LinkColor((1 - 100/LinkDistance) * pal.AlphaScale)
	if l.clr != wantAlpha {
		t.Fatalf("line colour = %+v, want %+v", l.clr, wantAlpha)
	}
}

func TestRenderLinksEveryPairOnce(t *testing.T) {
	t.Parallel()

	var field []Particle
	for i := 0; i < 10; i++ {
		field = append(field, Particle{X: float64(i * 5), Y: float64(i * 3), Radius: 1})
	}
	c := &recordCanvas{}

	if links := Render(c, field, 200, 200, PaletteFor(ThemeLight)); links != 45 {
		t.Fatalf("links = %d, want 45", links)
	}

	seen := map[[4]float64]bool{}
	for _, l := range c.lines {
		key := [4]float64{l.x0, l.y0, l.x1, l.y1}
		rev := [4]float64{l.x1, l.y1, l.x0, l.y0}
		if seen[key] || seen[rev] {
			t.Fatalf("pair drawn twice: %+v", l)
		}
		seen[key] = true
	}
}

func TestRenderLinkAtExactDistance(t *testing.T) {
	t.Parallel()

	field := []Particle{{X: 0, Y: 0}, {X: LinkDistance, Y: 0}, {X: 2*LinkDistance + 0.01, Y: 0}}
	c := &recordCanvas{}

	if links := Render(c, field, 400, 100, PaletteFor(ThemeDark)); links != 1 {
		t.Fatalf("links = %d, want 1", links)
	}
	if c.lines[0].clr.A != 0 {
		t.Fatalf("alpha at LinkDistance = %d, want 0", c.lines[0].clr.A)
	}
}
