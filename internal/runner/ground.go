package runner

// Ground is the scrolling terrain strip. The strip is twice the field width
// and its offset wraps after one field width, so it always covers the field.
type Ground struct {
	Offset float64 // in (-Width, 0]
	Width  float64 // field width
}

// NewGround creates a strip for a field of the given width.
func NewGround(width float64) *Ground {
	return &Ground{Width: width}
}

// Update scrolls the strip left by speed. A strip without width stays put.
func (g *Ground) Update(speed float64) {
	if g.Width <= 0 {
		g.Offset = 0
		return
	}
	g.Offset -= speed
	for g.Offset <= -g.Width {
		g.Offset += g.Width
	}
}

// Reset puts the strip back at its origin.
func (g *Ground) Reset() {
	g.Offset = 0
}
