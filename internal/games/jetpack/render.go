package jetpack

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/jetpack-arcade/internal/core"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 2

// Glyphs
const (
	groundTopChar = '▀'
	groundChar    = '░'
	obstacleChar  = '▓'
	bossChar      = '█'
	shotChar      = '─'
	enemyShotChar = '•'
	pilotChar     = '▒'
	helmetChar    = '◉'
	fuelFull      = '█'
	fuelEmpty     = '░'
)

// view maps world coordinates onto the playfield cells of a screen.
type view struct {
	dst    *core.Screen
	sx, sy float64
}

func newView(dst *core.Screen, worldW, worldH float64) view {
	rows := max(1, dst.Height()-hudRows)
	return view{
		dst: dst,
		sx:  float64(dst.Width()) / worldW,
		sy:  float64(rows) / worldH,
	}
}

func (v view) cell(p core.Vec) (int, int) {
	return int(math.Floor(p.X * v.sx)), hudRows + int(math.Floor(p.Y*v.sy))
}

func (v view) set(p core.Vec, r rune, c core.Color) {
	x, y := v.cell(p)
	if y < hudRows {
		return
	}
	v.dst.SetColored(x, y, r, c)
}

// fill paints every cell a world rectangle touches, at least one cell.
func (v view) fill(rect core.Rect, r rune, c core.Color) {
	x0, y0 := v.cell(core.Vec{X: rect.X, Y: rect.Y})
	x1, y1 := v.cell(core.Vec{X: rect.Right(), Y: rect.Bottom()})
	y0 = max(y0, hudRows)
	for y := y0; y <= max(y0, y1-1); y++ {
		for x := x0; x <= max(x0, x1-1); x++ {
			v.dst.SetColored(x, y, r, c)
		}
	}
}

// disc paints the cells whose centers fall inside a world circle.
func (v view) disc(circle core.Circle, r rune, c core.Color) {
	b := circle.Bounds()
	x0, y0 := v.cell(core.Vec{X: b.X, Y: b.Y})
	x1, y1 := v.cell(core.Vec{X: b.Right(), Y: b.Bottom()})
	for y := max(y0, hudRows); y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			center := core.Vec{X: (float64(x) + 0.5) / v.sx, Y: (float64(y-hudRows) + 0.5) / v.sy}
			if core.Dist(center, circle.C) <= circle.R {
				v.dst.SetColored(x, y, r, c)
			}
		}
	}
}

// Render draws the current mode into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 20 || dst.Height() < 8 {
		dst.DrawText(0, 0, "Terminal too small")
		return
	}

	switch g.mode {
	case ModeStart:
		g.renderStart(dst)
	case ModeScoreboard:
		g.renderScoreboard(dst)
	default:
		g.renderField(dst)
		g.renderHUD(dst)
		if g.mode == ModeGameOver {
			g.renderGameOver(dst)
		} else if g.paused {
			drawPanel(dst, core.ColorBrightWhite, "PAUSED", "P to resume")
		}
	}
}

func (g *Game) renderField(dst *core.Screen) {
	r := g.run
	w := g.cfg.World
	v := newView(dst, w.Width, w.Height)

	_, gy := v.cell(core.Vec{Y: w.GroundY()})
	dst.DrawHLine(0, gy, dst.Width(), groundTopChar, core.ColorGray)
	for y := gy + 1; y < dst.Height(); y++ {
		dst.DrawHLine(0, y, dst.Width(), groundChar, core.ColorGray)
	}

	for _, p := range r.Particles.Particles {
		c := p.Color
		if p.Alpha() < 0.3 {
			c = c.Dim()
		}
		v.set(p.Pos, particleGlyph(p), c)
	}
	for _, o := range r.Obstacles {
		v.fill(o.Rect, obstacleChar, core.ColorWhite)
	}
	for _, p := range r.Pickups {
		v.set(p.Shape().Circle.C, p.Kind.Glyph(), pickupColor(p.Kind))
	}
	for _, e := range r.Enemies {
		v.fill(e.Shape().Rect, enemyGlyph(e.Kind), enemyColor(e.Kind))
	}
	if b := r.Boss; b != nil {
		if s := b.Shape(); s.Kind == core.ShapeCircle {
			v.disc(s.Circle, bossChar, bossColor(b.Kind()))
		} else {
			v.fill(s.Rect, bossChar, bossColor(b.Kind()))
		}
	}
	for _, s := range r.Shots {
		v.set(s.Pos, shotChar, core.ColorBrightYellow)
	}
	for _, s := range r.EnemyShots {
		v.set(s.Pos, enemyShotChar, core.ColorBrightRed)
	}

	p := r.Player
	color := core.ColorCyan
	if p.Shields > 0 {
		color = core.ColorBrightBlue
	}
	v.fill(core.NewRect(p.X, p.Y, p.W, p.H), pilotChar, color)
	v.set(core.Vec{X: p.X + p.W/2, Y: p.Hitbox().Y}, helmetChar, core.ColorBrightCyan)
}

func (g *Game) renderHUD(dst *core.Screen) {
	r := g.run
	p := r.Player

	const barW = 10
	filled := int(math.Round(p.Fuel / g.cfg.Physics.MaxFuel * barW))
	fuel := strings.Repeat(string(fuelFull), filled) + strings.Repeat(string(fuelEmpty), barW-filled)
	fuelColor := core.ColorGreen
	if filled <= barW/4 {
		fuelColor = core.ColorRed
	}

	x := 1
	x = hudText(dst, x, 0, fmt.Sprintf("SCORE %d", r.Score()), core.ColorBrightWhite)
	x = hudText(dst, x, 0, fmt.Sprintf("%dm", int(r.Distance/10)), core.ColorWhite)
	x = hudText(dst, x, 0, "FUEL", core.ColorWhite)
	x = hudText(dst, x-1, 0, fuel, fuelColor)
	x = hudText(dst, x, 0, strings.Repeat("◆", p.Shields)+strings.Repeat("◇", p.maxShields-p.Shields), core.ColorBrightBlue)
	if m := r.Effects.Multiplier; m > 1 {
		hudText(dst, x, 0, fmt.Sprintf("x%d", m), core.ColorBrightYellow)
	}

	x = 1
	for _, kind := range expiryOrder {
		if !r.Effects.Active(kind) {
			continue
		}
		secs := int(math.Ceil(r.Effects.Remaining(kind) / 1000))
		x = hudText(dst, x, 1, fmt.Sprintf("%c %s %ds", kind.Glyph(), kind, secs), pickupColor(kind))
	}

	switch {
	case r.Boss != nil:
		b := r.Boss
		label := fmt.Sprintf("%s ", b.Kind())
		bar := int(math.Ceil(b.Health / b.MaxHealth * 20))
		right := dst.Width() - 1 - 20 - utf8.RuneCountInString(label)
		dst.DrawTextColored(right, 1, label, bossColor(b.Kind()))
		dst.DrawTextColored(right+utf8.RuneCountInString(label), 1, strings.Repeat("█", bar)+strings.Repeat("░", 20-bar), core.ColorRed)
	case r.Gate.Approaching:
		warn := "!! BOSS INCOMING !!"
		dst.DrawTextColored(dst.Width()-1-utf8.RuneCountInString(warn), 1, warn, core.ColorBrightRed)
	}
}

// hudText writes text at x and returns the column after it plus a gap.
func hudText(dst *core.Screen, x, y int, text string, c core.Color) int {
	dst.DrawTextColored(x, y, text, c)
	return x + utf8.RuneCountInString(text) + 2
}

func (g *Game) renderStart(dst *core.Screen) {
	h := dst.Height()
	top := max(1, h/2-6)

	dst.DrawTextCentered(top, "J E T P A C K   R A I D", core.ColorBrightCyan)
	dst.DrawTextCentered(top+1, g.title, core.ColorGray)
	dst.DrawTextCentered(top+3, "Pilot: "+g.pilot.Name, core.ColorWhite)
	if len(g.highScores) > 0 {
		best := g.highScores[0]
		dst.DrawTextCentered(top+4, fmt.Sprintf("Top score: %d by %s", best.Score, best.Name), core.ColorBrightYellow)
	}
	dst.DrawTextCentered(top+6, "ENTER or SPACE to launch", core.ColorBrightWhite)
	dst.DrawTextCentered(top+7, "SPACE fly  F fire  P pause  S scores  Q quit", core.ColorGray)
}

func (g *Game) renderGameOver(dst *core.Screen) {
	r := g.run
	drawPanel(dst, core.ColorBrightRed,
		"GAME OVER",
		fmt.Sprintf("Score %d  Distance %dm  Kills %d  Bosses %d", r.Score(), int(r.Distance/10), r.Kills, r.Gate.Cycle),
		"R restart  S scores  Q quit",
	)
}

func (g *Game) renderScoreboard(dst *core.Screen) {
	dst.DrawTextCentered(1, "HIGH SCORES", core.ColorBrightYellow)
	if len(g.highScores) == 0 {
		dst.DrawTextCentered(3, "No scores yet", core.ColorGray)
	}
	for i, rec := range g.highScores {
		color := core.ColorWhite
		if rec.PlayerID == g.pilot.ID {
			color = core.ColorBrightCyan
		}
		line := fmt.Sprintf("%2d. %-16s %8d  %s", i+1, rec.Name, rec.Score, rec.Date)
		dst.DrawTextCentered(3+i, line, color)
	}
	dst.DrawTextCentered(dst.Height()-2, "ENTER back  R new run  Q quit", core.ColorGray)
}

// drawPanel draws a centered box with a title and lines of text.
func drawPanel(dst *core.Screen, c core.Color, title string, lines ...string) {
	w := utf8.RuneCountInString(title)
	for _, l := range lines {
		w = max(w, utf8.RuneCountInString(l))
	}
	boxW := min(dst.Width(), w+4)
	boxH := 4 + len(lines)
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, c)
	dst.DrawTextCentered(boxY+1, title, c)
	for i, l := range lines {
		dst.DrawTextCentered(boxY+3+i, l, core.ColorWhite)
	}
}

func particleGlyph(p *Particle) rune {
	if p.Shape == ParticleShard {
		return '\''
	}
	switch a := p.Alpha(); {
	case a > 0.6:
		return '*'
	case a > 0.3:
		return '+'
	default:
		return '.'
	}
}

func enemyGlyph(k EnemyKind) rune {
	switch k {
	case EnemyInterceptor:
		return '◀'
	case EnemyTurret:
		return '▣'
	default:
		return '◆'
	}
}

func enemyColor(k EnemyKind) core.Color {
	switch k {
	case EnemyInterceptor:
		return core.ColorOrange
	case EnemyTurret:
		return core.ColorMagenta
	default:
		return core.ColorRed
	}
}

func bossColor(k BossKind) core.Color {
	switch k {
	case BossTank:
		return core.ColorGreen
	case BossShip:
		return core.ColorBlue
	default:
		return core.ColorBrightMagenta
	}
}

func pickupColor(k PowerupKind) core.Color {
	switch k {
	case PowerupCoin, PowerupMultiplier:
		return core.ColorBrightYellow
	case PowerupFuel:
		return core.ColorGreen
	case PowerupShield:
		return core.ColorBrightBlue
	case PowerupWeapon, PowerupSpread, PowerupRapid:
		return core.ColorOrange
	case PowerupMagnet:
		return core.ColorMagenta
	default:
		return core.ColorBrightCyan
	}
}
