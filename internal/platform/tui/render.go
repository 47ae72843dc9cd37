package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/runner"
	"github.com/vovakirdan/tui-runner/internal/skin"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:       lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:      lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:        lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:     lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:        lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:       lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightWhite: lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			// Collect consecutive cells with same color
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// hudRows is the number of screen rows above the play field.
const hudRows = 1

// ScreenPresenter draws session snapshots into a character screen. World
// coordinates are scaled so the whole field fits below the HUD row.
type ScreenPresenter struct {
	screen *core.Screen
	skin   *skin.Profile
	title  string
	last   runner.Snapshot
}

// NewScreenPresenter creates a presenter drawing into screen with profile.
func NewScreenPresenter(screen *core.Screen, profile *skin.Profile, title string) *ScreenPresenter {
	return &ScreenPresenter{screen: screen, skin: profile, title: title}
}

// Present draws one frame.
func (p *ScreenPresenter) Present(snap runner.Snapshot) {
	p.last = snap
	p.Redraw()
}

// Redraw draws the last snapshot again, e.g. after a resize.
func (p *ScreenPresenter) Redraw() {
	s := p.screen
	snap := p.last
	s.Clear()
	if snap.FieldWidth <= 0 || snap.FieldHeight <= 0 || s.Width() == 0 || s.Height() <= hudRows {
		return
	}

	v := newViewport(snap.FieldWidth, snap.FieldHeight, s.Width(), s.Height()-hudRows)

	cloud := p.skin.Sprite(skin.Cloud)
	for _, c := range snap.Clouds {
		p.fill(v, core.NewRectF(c.X, c.Y, c.Width, c.Height), cloud, 0)
	}

	p.drawGround(v, snap)

	for _, o := range snap.Obstacles {
		sp := p.skin.Sprite(o.Kind.SpriteKey())
		p.fill(v, core.NewRectF(o.X, o.Y, o.Width, o.Height), sp, o.Frame)
	}

	pl := snap.Player
	sp := p.skin.Sprite(pl.Sprite)
	rect := sp.DrawRect(pl.X, pl.Y)
	if pl.Frame%2 == 1 && sp.Bob > 0 {
		// Second run/duck frame is drawn slightly shorter
		rect = core.NewRectF(rect.X, rect.Y+sp.Bob, rect.W, rect.H-sp.Bob)
	}
	p.fill(v, rect, sp, pl.Frame)

	p.drawHUD(snap)

	switch snap.State {
	case runner.NotStarted:
		p.drawMessage(p.title, "Press SPACE to start")
	case runner.GameOver:
		p.drawMessage("GAME OVER", fmt.Sprintf("Score: %d  |  SPACE/R restart  |  B menu  |  Q quit", snap.Score))
	}
}

// fill paints the cells covered by a world rectangle with the sprite glyph.
// With a mask, only cells whose centre samples an opaque mask cell are painted.
func (p *ScreenPresenter) fill(v viewport, r core.RectF, sp skin.Sprite, frame int) {
	cells := v.cells(r)
	mask := sp.Mask(frame)
	for y := cells.Y; y < cells.Bottom(); y++ {
		for x := cells.X; x < cells.Right(); x++ {
			if mask != nil {
				wx, wy := v.world(x, y)
				if !mask.OpaqueAt(wx-r.X, wy-r.Y, r.W, r.H) {
					continue
				}
			}
			p.screen.SetColored(x, y+hudRows, sp.Glyph, sp.Color)
		}
	}
}

func (p *ScreenPresenter) drawGround(v viewport, snap runner.Snapshot) {
	g := p.skin.Sprite(skin.Ground)
	pattern := []rune(g.Pattern)
	if len(pattern) == 0 {
		pattern = []rune{'_'}
	}
	row := core.Min(v.row(core.ClampF(snap.GroundY, 0, snap.FieldHeight)), v.rows-1)
	if len(pattern) == 1 {
		p.screen.DrawHLine(0, row+hudRows, v.cols, pattern[0], g.Color)
		return
	}
	// Pattern cells scroll with the strip offset
	shift := int(math.Floor(-snap.GroundOffset * v.sx))
	for x := 0; x < v.cols; x++ {
		r := pattern[(x+shift)%len(pattern)]
		p.screen.SetColored(x, row+hudRows, r, g.Color)
	}
}

func (p *ScreenPresenter) drawHUD(snap runner.Snapshot) {
	left := fmt.Sprintf(" %s  Score: %05d  HI: %05d ", p.title, snap.Score, snap.HighScore)
	p.screen.DrawTextColored(0, 0, left, core.ColorBrightWhite)

	right := fmt.Sprintf(" Spd: %.1f ", snap.Speed)
	x := p.screen.Width() - len(right)
	if x > len([]rune(left)) {
		p.screen.DrawTextColored(x, 0, right, core.ColorGray)
	}
}

func (p *ScreenPresenter) drawMessage(title, subtitle string) {
	s := p.screen
	w := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	h := 4
	box := core.NewRect((s.Width()-w)/2, (s.Height()-h)/2, w, h)
	s.DrawRect(box, ' ')
	s.DrawBox(box)
	s.DrawTextCentered(box.Y+1, title)
	s.DrawTextCentered(box.Y+2, subtitle)
}

// Last returns the most recently presented snapshot.
func (p *ScreenPresenter) Last() runner.Snapshot {
	return p.last
}

// viewport maps world units to screen cells.
type viewport struct {
	sx, sy     float64
	cols, rows int
}

func newViewport(fieldW, fieldH float64, cols, rows int) viewport {
	return viewport{
		sx:   float64(cols) / fieldW,
		sy:   float64(rows) / fieldH,
		cols: cols,
		rows: rows,
	}
}

// cells returns the cell rectangle covered by r, clipped to the viewport.
// Every non-empty rectangle inside the field covers at least one cell.
func (v viewport) cells(r core.RectF) core.Rect {
	x0 := int(math.Floor(r.X * v.sx))
	y0 := int(math.Floor(r.Y * v.sy))
	x1 := int(math.Ceil(r.Right() * v.sx))
	y1 := int(math.Ceil(r.Bottom() * v.sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	x0 = core.Clamp(x0, 0, v.cols)
	x1 = core.Clamp(x1, 0, v.cols)
	y0 = core.Clamp(y0, 0, v.rows)
	y1 = core.Clamp(y1, 0, v.rows)
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// world returns the world point at the centre of a cell.
func (v viewport) world(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / v.sx, (float64(row) + 0.5) / v.sy
}

// row returns the screen row of a world y.
func (v viewport) row(y float64) int {
	return int(math.Floor(y * v.sy))
}
