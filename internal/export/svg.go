package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/particlefield/internal/sim"
)

// FieldToSVG renders the renderable list as filled circles in an SVG
// snapshot of the viewport. World origin maps to the image center,
// y up.
func FieldToSVG(rs []sim.Renderable, width, height, radius float64) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	for _, r := range rs {
		cx := r.X + width/2
		cy := height/2 - r.Y
		color := r.Color
		if color == "" {
			color = "#00ff00"
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
`, cx, cy, radius, color))
	}

	sb.WriteString("</svg>")
	return sb.String()
}
