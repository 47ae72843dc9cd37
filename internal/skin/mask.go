package skin

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Mask is a binary opacity grid. A mask is stretched over the rectangle its
// sprite is drawn in, so one cell covers (width/cols) x (height/rows) world units.
type Mask struct {
	cols, rows int
	bits       []bool
}

// ParseMask builds a mask from rows of '#' (opaque) and '.' or ' ' (transparent).
func ParseMask(lines []string) (*Mask, error) {
	if len(lines) == 0 {
		return nil, fmt.Errorf("skin: empty mask")
	}
	cols := len(lines[0])
	if cols == 0 {
		return nil, fmt.Errorf("skin: empty mask row")
	}

	m := &Mask{cols: cols, rows: len(lines), bits: make([]bool, cols*len(lines))}
	for y, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("skin: mask row %d has %d cells, expected %d", y, len(line), cols)
		}
		for x := 0; x < cols; x++ {
			switch line[x] {
			case '#':
				m.bits[y*cols+x] = true
			case '.', ' ':
			default:
				return nil, fmt.Errorf("skin: mask row %d: unexpected %q", y, line[x])
			}
		}
	}
	return m, nil
}

// parseMaskBlock splits a YAML block scalar into mask rows.
func parseMaskBlock(block string) (*Mask, error) {
	var lines []string
	for _, l := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		lines = append(lines, strings.TrimRight(l, "\r"))
	}
	return ParseMask(lines)
}

// Cols returns the mask width in cells.
func (m *Mask) Cols() int { return m.cols }

// Rows returns the mask height in cells.
func (m *Mask) Rows() int { return m.rows }

// Opaque reports whether the cell at (col, row) is set. Out of range is transparent.
func (m *Mask) Opaque(col, row int) bool {
	if col < 0 || row < 0 || col >= m.cols || row >= m.rows {
		return false
	}
	return m.bits[row*m.cols+col]
}

// OpaqueAt samples the mask stretched over a w x h rectangle at the point
// (px, py) relative to that rectangle's top-left corner.
func (m *Mask) OpaqueAt(px, py, w, h float64) bool {
	if w <= 0 || h <= 0 || px < 0 || py < 0 || px >= w || py >= h {
		return false
	}
	col := int(px * float64(m.cols) / w)
	row := int(py * float64(m.rows) / h)
	return m.Opaque(col, row)
}

// Count returns the number of opaque cells.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// Bounds returns the tight bounding box of the opaque cells, in cells.
// A fully transparent mask has an empty bounding box at the origin.
func (m *Mask) Bounds() core.Rect {
	minX, minY := m.cols, m.rows
	maxX, maxY := -1, -1
	for y := 0; y < m.rows; y++ {
		for x := 0; x < m.cols; x++ {
			if !m.bits[y*m.cols+x] {
				continue
			}
			minX = core.Min(minX, x)
			minY = core.Min(minY, y)
			maxX = core.Max(maxX, x)
			maxY = core.Max(maxY, y)
		}
	}
	if maxX < 0 {
		return core.Rect{}
	}
	return core.NewRect(minX, minY, maxX-minX+1, maxY-minY+1)
}
