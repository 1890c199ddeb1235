package jetpack

import "github.com/vovakirdan/jetpack-arcade/internal/core"

// Owner tags who fired a projectile.
type Owner uint8

const (
	OwnerPlayer Owner = iota
	OwnerEnemy
)

// Player shots are thin rectangles centered on their Y.
const (
	playerShotW = 20
	playerShotH = 4
)

// Projectile is a shot in flight. Player shots collide as rectangles,
// enemy shots as circles.
type Projectile struct {
	Owner  Owner
	Pos    core.Vec // Player: left end of the shot; enemy: center
	Vel    core.Vec // Units per reference frame
	Angle  float64
	Damage float64 // Player shots only
	R      float64 // Enemy shots only
}

func newPlayerShot(at core.Vec, angle, speed, damage float64) *Projectile {
	return &Projectile{
		Owner:  OwnerPlayer,
		Pos:    at,
		Vel:    core.FromAngle(angle, speed),
		Angle:  angle,
		Damage: damage,
	}
}

func newEnemyShot(at core.Vec, angle, speed, radius float64) *Projectile {
	return &Projectile{
		Owner: OwnerEnemy,
		Pos:   at,
		Vel:   core.FromAngle(angle, speed),
		Angle: angle,
		R:     radius,
	}
}

// Update moves the projectile by dtMs milliseconds.
func (p *Projectile) Update(dtMs float64) {
	p.Pos = p.Pos.Add(p.Vel.Scale(dtMs / refFrameMs))
}

// Shape returns the projectile's collision geometry.
func (p *Projectile) Shape() core.Shape {
	if p.Owner == OwnerPlayer {
		return core.RectShape(core.NewRect(p.Pos.X, p.Pos.Y-playerShotH/2, playerShotW, playerShotH))
	}
	return core.CircleShape(core.Circle{C: p.Pos, R: p.R})
}

// Offscreen reports whether the projectile has fully left the world.
func (p *Projectile) Offscreen(worldW, worldH float64) bool {
	b := p.Shape().Bounds()
	return b.Right() < 0 || b.X > worldW || b.Bottom() < 0 || b.Y > worldH
}
