package export

import (
	"strings"
	"testing"

	"github.com/san-kum/particlefield/internal/sim"
)

func TestFieldToSVG(t *testing.T) {
	rs := []sim.Renderable{
		{X: 0, Y: 0, Color: "#00ccff"},
		{X: -100, Y: 50, Color: "#ff8800"},
	}
	svg := FieldToSVG(rs, 800, 600, 7)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(svg, `viewBox="0 0 800 600"`) {
		t.Error("missing viewBox")
	}
	// origin maps to image center
	if !strings.Contains(svg, `<circle cx="400.0" cy="300.0" r="7.0" fill="#00ccff"/>`) {
		t.Errorf("origin circle missing:\n%s", svg)
	}
	// world y up: positive Y moves toward the top of the image
	if !strings.Contains(svg, `<circle cx="300.0" cy="250.0" r="7.0" fill="#ff8800"/>`) {
		t.Errorf("offset circle missing:\n%s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("missing closing tag")
	}
}

func TestFieldToSVGEmptyColor(t *testing.T) {
	svg := FieldToSVG([]sim.Renderable{{X: 0, Y: 0}}, 100, 100, 2)
	if !strings.Contains(svg, `fill="#00ff00"`) {
		t.Error("empty color should fall back to default")
	}
}

func TestFieldToSVGBadViewport(t *testing.T) {
	if got := FieldToSVG(nil, 0, 100, 2); got != "" {
		t.Errorf("zero width should produce empty output, got %q", got)
	}
	if got := FieldToSVG(nil, 100, -5, 2); got != "" {
		t.Errorf("negative height should produce empty output, got %q", got)
	}
}

func TestFieldToSVGNoRenderables(t *testing.T) {
	svg := FieldToSVG(nil, 100, 100, 2)
	if strings.Contains(svg, "<circle") {
		t.Error("no renderables should yield no circles")
	}
	if !strings.Contains(svg, `fill="#0a0a0a"`) {
		t.Error("background rect missing")
	}
}
