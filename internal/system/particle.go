package system

import (
	"cake-defense/internal/component"
	"cake-defense/internal/entity"
	"cake-defense/internal/types"
	"cake-defense/internal/utils"
)

const (
	particleLife    = 30
	particleSpread  = 4.0 // velocity range, centred on zero
	particleGravity = 0.1
)

// ParticleSystem drives the cosmetic death sparks.
type ParticleSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

func NewParticleSystem(world *entity.World, rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{world: world, rng: rng}
}

// Burst spawns n particles at (x, y).
func (s *ParticleSystem) Burst(x, y float64, n int) {
	for i := 0; i < n; i++ {
		id := s.world.NewEntity()
		s.world.Particles.Add(id, &component.Particle{
			X:       x,
			Y:       y,
			VX:      s.rng.Signed(particleSpread),
			VY:      s.rng.Signed(particleSpread),
			Life:    particleLife,
			MaxLife: particleLife,
		})
	}
}

func (s *ParticleSystem) Update() {
	s.world.Particles.Each(func(_ types.EntityID, p *component.Particle) bool {
		p.X += p.VX
		p.Y += p.VY
		p.VY += particleGravity
		p.Life--
		if p.Life <= 0 {
			p.Dead = true
		}
		return true
	})
}
