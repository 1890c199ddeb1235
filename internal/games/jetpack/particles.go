package jetpack

import (
	"math"

	"github.com/vovakirdan/jetpack-arcade/internal/core"
)

// ParticleShape selects how a particle is drawn.
type ParticleShape uint8

const (
	ParticleRound ParticleShape = iota // Soft debris and exhaust
	ParticleShard                      // Fast shrapnel
)

// maxParticles bounds the emitter so long fights stay cheap to render.
const maxParticles = 600

// Particle is a purely visual, time-decaying body.
type Particle struct {
	Pos       core.Vec
	Vel       core.Vec // Units per reference frame
	Drag      float64  // Velocity multiplier per reference frame
	Life      float64  // ms left
	StartLife float64
	StartSize float64
	Color     core.Color
	Shape     ParticleShape
}

// Update applies drag and velocity, then ages the particle.
func (p *Particle) Update(dtMs float64) {
	k := dtMs / refFrameMs
	p.Vel = p.Vel.Scale(math.Pow(p.Drag, k))
	p.Pos = p.Pos.Add(p.Vel.Scale(k))
	p.Life -= dtMs
}

// Alpha returns the remaining opacity in [0, 1].
func (p *Particle) Alpha() float64 {
	if p.StartLife <= 0 {
		return 0
	}
	return core.ClampF(p.Life/p.StartLife, 0, 1)
}

// Size returns the current size; particles shrink to nothing as they fade.
func (p *Particle) Size() float64 {
	return p.StartSize * p.Alpha()
}

// Finished reports whether the particle's lifetime is over.
func (p *Particle) Finished() bool {
	return p.Life < 0
}

// Emitter owns the live particles.
type Emitter struct {
	Particles []*Particle
	rng       *RNG
}

func newEmitter(rng *RNG) *Emitter {
	return &Emitter{Particles: make([]*Particle, 0, 128), rng: rng}
}

func (e *Emitter) add(p *Particle) {
	if len(e.Particles) >= maxParticles {
		return
	}
	e.Particles = append(e.Particles, p)
}

// Explode scatters count particles from at. Most are round debris with
// heavy drag; the rest are faster shrapnel that keeps its speed longer.
func (e *Emitter) Explode(at core.Vec, count int, c core.Color, minMs, maxMs float64) {
	for i := 0; i < count; i++ {
		vel := core.FromAngle(e.rng.Angle(), e.rng.Range(1, 6))
		life := e.rng.Range(minMs, maxMs)
		size := e.rng.Range(3, 10)
		pos := at.Add(core.Vec{X: e.rng.Range(-5, 5), Y: e.rng.Range(-5, 5)})

		if e.rng.Chance(0.7) {
			e.add(&Particle{Pos: pos, Vel: vel, Drag: 0.9, Life: life, StartLife: life, StartSize: size, Color: c})
			continue
		}
		life *= 0.8
		e.add(&Particle{
			Pos:       pos,
			Vel:       vel.Scale(e.rng.Range(1.2, 1.8)),
			Drag:      0.98,
			Life:      life,
			StartLife: life,
			StartSize: size * e.rng.Range(0.5, 0.8),
			Color:     core.ColorGray,
			Shape:     ParticleShard,
		})
	}
}

// Jet emits one exhaust puff falling away from the nozzle.
func (e *Emitter) Jet(at core.Vec) {
	life := e.rng.Range(15, 25) * refFrameMs
	e.add(&Particle{
		Pos:       at,
		Vel:       core.Vec{X: e.rng.Range(-0.5, 0.5), Y: e.rng.Range(1, 3)},
		Drag:      0.95,
		Life:      life,
		StartLife: life,
		StartSize: e.rng.Range(6, 12),
		Color:     core.ColorOrange,
	})
}

// Update ages every particle and drops finished ones.
func (e *Emitter) Update(dtMs float64) {
	for i := len(e.Particles) - 1; i >= 0; i-- {
		p := e.Particles[i]
		p.Update(dtMs)
		if p.Finished() {
			e.Particles = append(e.Particles[:i], e.Particles[i+1:]...)
		}
	}
}

// Clear drops every particle.
func (e *Emitter) Clear() {
	e.Particles = e.Particles[:0]
}
