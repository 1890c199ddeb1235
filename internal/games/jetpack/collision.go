package jetpack

import (
	"slices"

	"github.com/vovakirdan/jetpack-arcade/internal/core"
)

// The passes below each move one collection and resolve its contacts.
// Collections are walked back to front so removal never skips an element.
// Lethal contacts go through triggerGameOver, which only fires once, so a
// pass may keep running after the pilot is down.

// passObstacles: a shield charge destroys the obstacle, otherwise the run ends.
func (g *Game) passObstacles(dtMs float64) {
	r := g.run
	for i := len(r.Obstacles) - 1; i >= 0; i-- {
		o := r.Obstacles[i]
		o.Update(dtMs, r.Speed)

		if r.Player.Hits(o.Shape()) {
			if r.Player.AbsorbHit() {
				r.Particles.Explode(o.Rect.Center(), 10, core.ColorGray, 5*refFrameMs, 20*refFrameMs)
				g.sound.Play(core.CueDestroy, 0.1)
				r.Obstacles = slices.Delete(r.Obstacles, i, i+1)
				continue
			}
			g.triggerGameOver()
		}
		if o.Offscreen() {
			r.Obstacles = slices.Delete(r.Obstacles, i, i+1)
		}
	}
}

// passPickups: touching a pickup activates it. A downed pilot collects nothing.
func (g *Game) passPickups(dtMs float64) {
	r := g.run
	magnet := r.Effects.Active(PowerupMagnet)
	pilot := r.Player.Center()

	for i := len(r.Pickups) - 1; i >= 0; i-- {
		p := r.Pickups[i]
		p.Update(dtMs, r.Speed, magnet, pilot, g.cfg.Powerups)

		if g.mode == ModePlaying && r.Player.Hits(p.Shape()) {
			g.activate(p.Kind)
			r.Particles.Explode(p.Shape().Circle.C, 10, pickupColor(p.Kind), 3*refFrameMs, 15*refFrameMs)
			r.Pickups = slices.Delete(r.Pickups, i, i+1)
			continue
		}
		if p.Offscreen() {
			r.Pickups = slices.Delete(r.Pickups, i, i+1)
		}
	}
}

// passShots: each player shot hits at most one target, checked as
// obstacles, then enemies, then the boss.
func (g *Game) passShots(dtMs float64) {
	r := g.run
	w := g.cfg.World
	for i := len(r.Shots) - 1; i >= 0; i-- {
		s := r.Shots[i]
		s.Update(dtMs)

		hit := g.resolveShot(s)
		if hit || s.Offscreen(w.Width, w.Height) {
			if hit {
				r.Particles.Explode(s.Pos.Add(core.Vec{X: playerShotW}), 3, core.ColorBrightYellow, 2*refFrameMs, 8*refFrameMs)
			}
			r.Shots = slices.Delete(r.Shots, i, i+1)
		}
	}
}

// resolveShot applies s to the first thing it touches and reports whether
// the shot was consumed.
func (g *Game) resolveShot(s *Projectile) bool {
	r := g.run
	shape := s.Shape()

	for _, o := range r.Obstacles {
		if shape.Overlaps(o.Shape()) {
			r.Particles.Explode(s.Pos, 5, core.ColorWhite, 2*refFrameMs, 8*refFrameMs)
			return true
		}
	}
	for j := len(r.Enemies) - 1; j >= 0; j-- {
		e := r.Enemies[j]
		if e.Destroyed || !shape.Overlaps(e.Shape()) {
			continue
		}
		if e.TakeDamage(s.Damage) {
			g.killEnemy(e)
		}
		return true
	}
	if b := r.Boss; b != nil && b.Active && !b.Defeated() && shape.Overlaps(b.Shape()) {
		b.Damage(s.Damage)
		return true
	}
	return false
}

// killEnemy scores a destroyed enemy and may drop loot where it died.
func (g *Game) killEnemy(e *Enemy) {
	r := g.run
	c := e.Center()

	r.Kills++
	r.bonus += int(e.MaxHealth * g.cfg.Scoring.EnemyKillScale * float64(r.Effects.Multiplier))
	r.Particles.Explode(c, 10+2*int(e.MaxHealth), enemyColor(e.Kind), 5*refFrameMs, 25*refFrameMs)
	g.sound.Play(core.CueDestroy, 0.15)

	pu := g.cfg.Powerups
	switch {
	case g.rng.Chance(pu.LootCoinP):
		r.Pickups = append(r.Pickups, newPickup(PowerupCoin, c.X, c.Y, pu, g.rng))
	case g.rng.Chance(pu.LootFuelP):
		r.Pickups = append(r.Pickups, newPickup(PowerupFuel, c.X, c.Y, pu, g.rng))
	}
}

// passEnemies: enemies move and fire. A shield charge destroys an enemy on
// contact, otherwise the run ends.
func (g *Game) passEnemies(dtMs float64) {
	r := g.run
	w := g.cfg.World
	ratio := r.Speed / g.cfg.Speed.Initial
	target := r.Player.Center()

	for i := len(r.Enemies) - 1; i >= 0; i-- {
		e := r.Enemies[i]
		if e.Destroyed {
			r.Enemies = slices.Delete(r.Enemies, i, i+1)
			continue
		}
		if e.Update(dtMs, r.Speed, ratio, w.Width, w.GroundY()) {
			g.enemyFire(e.Center(), e.AimAt(target, g.rng), 1)
			g.sound.Play(core.CueEnemyShot, 0.2)
		}

		if r.Player.Hits(e.Shape()) {
			if r.Player.AbsorbHit() {
				if e.TakeDamage(e.Health) {
					g.killEnemy(e)
				}
			} else {
				g.triggerGameOver()
			}
		}
		if e.Destroyed || e.Offscreen() {
			r.Enemies = slices.Delete(r.Enemies, i, i+1)
		}
	}
}

// enemyFire spawns one hostile shot whose speed follows world speed.
func (g *Game) enemyFire(from core.Vec, angle, speedMult float64) {
	w := g.cfg.Weapons
	speed := (w.EnemyShotSpeed + w.EnemyShotScale*g.run.Speed) * speedMult
	g.run.EnemyShots = append(g.run.EnemyShots, newEnemyShot(from, angle, speed, w.EnemyShotRadius))
}

// passEnemyShots: a shot hitting the pilot spends a shield charge or ends
// the run. Obstacles soak up shots without taking damage.
func (g *Game) passEnemyShots(dtMs float64) {
	r := g.run
	w := g.cfg.World
	for i := len(r.EnemyShots) - 1; i >= 0; i-- {
		s := r.EnemyShots[i]
		s.Update(dtMs)
		shape := s.Shape()

		consumed := false
		if r.Player.Hits(shape) {
			consumed = true
			if r.Player.AbsorbHit() {
				r.Particles.Explode(s.Pos, 8, core.ColorBrightRed, 3*refFrameMs, 12*refFrameMs)
			} else {
				g.triggerGameOver()
			}
		} else {
			for _, o := range r.Obstacles {
				if shape.Overlaps(o.Shape()) {
					consumed = true
					r.Particles.Explode(s.Pos, 5, core.ColorWhite, 2*refFrameMs, 8*refFrameMs)
					break
				}
			}
		}
		if consumed || s.Offscreen(w.Width, w.Height) {
			r.EnemyShots = slices.Delete(r.EnemyShots, i, i+1)
		}
	}
}
