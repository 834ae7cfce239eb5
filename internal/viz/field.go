package viz

import (
	"math"

	"github.com/san-kum/particlefield/internal/sim"
)

// DrawField projects the simulation viewport (world origin at the
// center, y up) onto the canvas sub-pixel grid and draws every
// renderable as a filled circle with a rotation tick.
func DrawField(c *Canvas, rs []sim.Renderable, width, height, radius float64) {
	if width <= 0 || height <= 0 {
		return
	}
	pw := float64(c.Width * 2)
	ph := float64(c.Height * 4)
	sx := pw / width
	sy := ph / height

	for _, r := range rs {
		px := int((r.X + width/2) * sx)
		py := int((height/2 - r.Y) * sy)
		pr := int(radius * sx)
		c.FillCircle(px, py, pr, r.Color)

		// rotation tick from center to rim
		if pr >= 2 {
			tx := px + int(float64(pr)*math.Cos(r.Angle))
			ty := py - int(float64(pr)*math.Sin(r.Angle))
			c.DrawLine(px, py, tx, ty, r.Color)
		}
	}
}
