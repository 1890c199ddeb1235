package jetpack

import (
	"testing"

	"github.com/vovakirdan/jetpack-arcade/internal/core"
)

func TestParticleFades(t *testing.T) {
	p := &Particle{Vel: core.Vec{X: 10}, Drag: 0.9, Life: 100, StartLife: 100, StartSize: 8}

	p.Update(50)
	if p.Alpha() != 0.5 {
		t.Errorf("alpha = %v, want 0.5", p.Alpha())
	}
	if p.Size() != 4 {
		t.Errorf("size = %v, want 4", p.Size())
	}
	if p.Vel.X >= 10 {
		t.Error("drag should slow the particle")
	}
	if p.Finished() {
		t.Error("particle with life left is not finished")
	}

	p.Update(51)
	if !p.Finished() || p.Alpha() != 0 {
		t.Errorf("finished=%v alpha=%v after its lifetime", p.Finished(), p.Alpha())
	}
}

func TestEmitterLifecycle(t *testing.T) {
	e := newEmitter(NewRNG(3))
	e.Explode(core.Vec{X: 100, Y: 100}, 40, core.ColorRed, 100, 200)
	e.Jet(core.Vec{X: 10, Y: 10})
	if len(e.Particles) != 41 {
		t.Fatalf("particles = %d, want 41", len(e.Particles))
	}

	shards := 0
	for _, p := range e.Particles {
		if p.Shape == ParticleShard {
			shards++
			if p.Drag != 0.98 || p.Color != core.ColorGray {
				t.Errorf("unexpected shard %+v", p)
			}
		}
	}
	if shards == 0 || shards == 40 {
		t.Errorf("expected a mix of debris and shrapnel, got %d shards", shards)
	}

	// Explosion debris lives at most 200 ms; exhaust at most 25 reference frames.
	e.Update(201)
	for _, p := range e.Particles {
		if p.Color != core.ColorOrange {
			t.Errorf("explosion particle outlived its lifetime: %+v", p)
		}
	}
	e.Update(25 * refFrameMs)
	if len(e.Particles) != 0 {
		t.Errorf("%d particles left", len(e.Particles))
	}
}

func TestEmitterCap(t *testing.T) {
	e := newEmitter(NewRNG(1))
	e.Explode(core.Vec{}, maxParticles+50, core.ColorRed, 100, 200)
	if len(e.Particles) != maxParticles {
		t.Errorf("particles = %d, want cap %d", len(e.Particles), maxParticles)
	}
	e.Clear()
	if len(e.Particles) != 0 {
		t.Error("Clear should drop every particle")
	}
}
