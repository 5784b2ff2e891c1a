// internal/entity/world.go
package entity

import (
	"cake-defense/internal/component"
	"cake-defense/internal/types"
)

// World owns every entity collection of a session.
type World struct {
	NextID      types.EntityID
	Ants        *Arena[component.Ant]
	Towers      *Arena[component.Tower]
	Projectiles *Arena[component.Projectile]
	Particles   *Arena[component.Particle]
}

func NewWorld() *World {
	return &World{
		NextID:      1,
		Ants:        NewArena[component.Ant](),
		Towers:      NewArena[component.Tower](),
		Projectiles: NewArena[component.Projectile](),
		Particles:   NewArena[component.Particle](),
	}
}

// NewEntity hands out the next ID. IDs are never reused within a session.
func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Purge removes dead ants, projectiles and particles. Towers are only
// removed by explicit sells.
func (w *World) Purge() (ants, projectiles, particles int) {
	ants = w.Ants.Sweep(func(a *component.Ant) bool { return !a.Alive() })
	projectiles = w.Projectiles.Sweep(func(p *component.Projectile) bool { return p.Dead })
	particles = w.Particles.Sweep(func(p *component.Particle) bool { return p.Dead })
	return ants, projectiles, particles
}

// Reset clears every collection and restarts ID allocation.
func (w *World) Reset() {
	w.NextID = 1
	w.Ants.Clear()
	w.Towers.Clear()
	w.Projectiles.Clear()
	w.Particles.Clear()
}

// LiveAnts counts ants that are not dead.
func (w *World) LiveAnts() int {
	n := 0
	w.Ants.Each(func(_ types.EntityID, a *component.Ant) bool {
		if a.Alive() {
			n++
		}
		return true
	})
	return n
}
