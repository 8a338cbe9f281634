package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/quizjump/internal/boss"
	"github.com/vovakirdan/quizjump/internal/core"
	"github.com/vovakirdan/quizjump/internal/game"
	"github.com/vovakirdan/quizjump/internal/level"
)

// hudRows is the number of screen rows above the world view.
const hudRows = 2

// viewport maps world pixels onto screen cells below the HUD.
type viewport struct {
	screen  *core.Screen
	top     int
	bottom  int
	sx, sy  float64
	cameraY float64
}

func newViewport(s *core.Screen, worldWidth, viewHeight, cameraY float64) viewport {
	rows := max(s.Height()-hudRows, 1)
	return viewport{
		screen:  s,
		top:     hudRows,
		bottom:  hudRows + rows,
		sx:      float64(s.Width()) / worldWidth,
		sy:      float64(rows) / viewHeight,
		cameraY: cameraY,
	}
}

// cell returns the screen cell holding a world point.
func (v viewport) cell(x, y float64) (int, int) {
	col := int(math.Floor(x * v.sx))
	row := v.top + int(math.Floor((y-v.cameraY)*v.sy))
	return col, row
}

// span returns the half-open cell range covered by a world box, at least
// one cell in each direction.
func (v viewport) span(b core.Box) (col0, row0, col1, row1 int) {
	col0, row0 = v.cell(b.X, b.Y)
	col1 = max(int(math.Ceil(b.Right()*v.sx)), col0+1)
	row1 = max(v.top+int(math.Ceil((b.Bottom()-v.cameraY)*v.sy)), row0+1)
	return col0, row0, col1, row1
}

func (v viewport) set(col, row int, r rune, c core.Color) {
	if row < v.top || row >= v.bottom {
		return
	}
	v.screen.SetColored(col, row, r, c)
}

func (v viewport) fill(b core.Box, r rune, c core.Color) {
	col0, row0, col1, row1 := v.span(b)
	for row := row0; row < row1; row++ {
		for col := col0; col < col1; col++ {
			v.set(col, row, r, c)
		}
	}
}

// label centers text on the middle row of a world box.
func (v viewport) label(b core.Box, text string, c core.Color) {
	col0, row0, col1, row1 := v.span(b)
	runes := []rune(text)
	col := col0 + (col1-col0-len(runes))/2
	row := (row0 + row1 - 1) / 2
	for i, r := range runes {
		v.set(col+i, row, r, c)
	}
}

// drawWorld renders the world view of a running session.
func drawWorld(s *core.Screen, w *game.World, viewHeight float64) {
	v := newViewport(s, w.Width, viewHeight, w.CameraY)

	v.fill(w.Ground, '▀', core.ColorGray)
	if w.CheckpointGround != nil {
		cg := *w.CheckpointGround
		cg.H = 1
		v.fill(cg, '─', core.ColorGray)
	}

	for _, p := range w.Platforms {
		drawPlatform(v, p)
	}

	for _, c := range w.Collectibles {
		switch c.Kind {
		case game.CollectCoin:
			v.label(c.Box, "$", core.ColorBrightYellow)
		case game.CollectShield:
			v.label(c.Box, "◈", core.ColorPurple)
		}
	}

	if w.Boss.Active() {
		drawBoss(v, w.Boss)
	}

	for _, p := range w.Particles {
		col, row := v.cell(p.X, p.Y)
		glyph := '·'
		if p.Alpha() > 0.5 {
			glyph = '*'
		}
		v.set(col, row, glyph, p.Color)
	}

	v.fill(w.Player.Box(), '█', core.ColorBrightWhite)
}

func drawPlatform(v viewport, p level.Platform) {
	color := p.Color
	if p.Wrong {
		color = core.ColorGray
	}
	v.fill(p.Box, '▄', color)

	text := fmt.Sprintf("%s: %d", p.Label, p.Answer)
	col0, _, col1, _ := v.span(p.Box)
	if len(text) > col1-col0 {
		text = strconv.Itoa(p.Answer)
	}
	v.label(p.Box, text, core.ColorBrightWhite)
}

func drawBoss(v viewport, e *boss.Encounter) {
	if e.Phase == boss.PhaseLever {
		v.fill(e.Lever.Box, '▬', core.ColorOrange)
		v.label(e.Lever.Box, "LEVER", core.ColorBrightWhite)
	} else {
		v.fill(e.Lever.Box, '▁', core.ColorGray)
	}

	for _, b := range e.Balls {
		box := core.NewBox(b.X-b.Radius, b.Y-b.Radius, 2*b.Radius, 2*b.Radius)
		switch b.Kind {
		case boss.KindHeart:
			v.label(box, "♥", core.ColorRed)
		case boss.KindPowerUp:
			v.label(box, "◈", core.ColorPurple)
		default:
			v.fill(box, '●', core.ColorBrightBlue)
			v.label(box, strconv.Itoa(b.Answer), core.ColorBrightWhite)
		}
	}
}

// hudStyle holds what the HUD needs besides the snapshot.
type hudStyle struct {
	maxHearts int
	compact   bool
	shake     int
	feedback  string
	kind      game.FeedbackKind
}

// drawHUD renders the problem line and the status line.
func drawHUD(s *core.Screen, snap game.Snapshot, h hudStyle) {
	problem := snap.Problem
	if snap.BossRound {
		problem = "BOSS  " + problem
	}
	s.DrawTextCentered(0, problem, core.ColorBrightWhite)

	col := 1 + h.shake
	for i := 0; i < h.maxHearts; i++ {
		if i < snap.Hearts {
			s.SetColored(col+i, 1, '♥', core.ColorRed)
		} else {
			s.SetColored(col+i, 1, '♡', core.ColorGray)
		}
	}
	col = h.maxHearts + 3

	var parts []string
	if h.compact {
		parts = []string{
			fmt.Sprintf("S%d", snap.Score),
			fmt.Sprintf("B%d", snap.Best),
			fmt.Sprintf("x%d", snap.Multiplier),
		}
	} else {
		parts = []string{
			fmt.Sprintf("Score %d", snap.Score),
			fmt.Sprintf("Best %d", snap.Best),
			fmt.Sprintf("Streak %d", snap.Streak),
			fmt.Sprintf("x%d", snap.Multiplier),
		}
	}
	parts = append(parts, fmt.Sprintf("$%d", snap.Coins))
	if snap.Inventory.Shield > 0 {
		parts = append(parts, fmt.Sprintf("◈%d", snap.Inventory.Shield))
	}
	if snap.Inventory.ExtraLife > 0 {
		parts = append(parts, fmt.Sprintf("+%d", snap.Inventory.ExtraLife))
	}
	status := strings.Join(parts, "  ")
	s.DrawTextColored(col, 1, status, core.ColorDefault)

	if h.feedback != "" {
		c := core.ColorGreen
		if h.kind == game.FeedbackWrong {
			c = core.ColorRed
		}
		x := max(s.Width()-len([]rune(h.feedback))-1, col+len([]rune(status))+2)
		s.DrawTextColored(x, 1, h.feedback, c)
	}
}

// drawOverlay draws a centered framed panel.
func drawOverlay(s *core.Screen, title string, titleColor core.Color, lines []string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 6
	height := len(lines) + 4

	r := core.NewRect((s.Width()-width)/2, (s.Height()-height)/2, width, height)
	s.DrawRect(r, ' ', core.ColorDefault)
	s.DrawBox(r, core.ColorGray)
	s.DrawTextCentered(r.Y+1, title, titleColor)
	for i, l := range lines {
		s.DrawTextCentered(r.Y+3+i, l, core.ColorDefault)
	}
}
