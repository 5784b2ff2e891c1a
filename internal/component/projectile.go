// internal/component/projectile.go
package component

import (
	"cake-defense/internal/defs"
	"cake-defense/internal/types"
)

// Projectile is a fired shot. Its velocity is fixed at creation.
type Projectile struct {
	ID       types.EntityID
	Kind     defs.TowerKind
	X, Y     float64
	VX, VY   float64
	Damage   int
	TargetID types.EntityID
	SourceID types.EntityID
	Dead     bool
	Hit      bool
}

// NewProjectile aims a shot from (x, y) at (tx, ty). A shot fired from the
// target's own position has zero velocity and resolves on its first update.
func NewProjectile(id types.EntityID, kind defs.TowerKind, x, y, tx, ty, speed float64, damage int, target, source types.EntityID) *Projectile {
	p := &Projectile{
		ID:       id,
		Kind:     kind,
		X:        x,
		Y:        y,
		Damage:   damage,
		TargetID: target,
		SourceID: source,
	}
	dx, dy := tx-x, ty-y
	if dist := hypot(dx, dy); dist > 0 {
		p.VX = dx / dist * speed
		p.VY = dy / dist * speed
	}
	return p
}
