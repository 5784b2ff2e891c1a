// internal/system/projectile.go
package system

import (
	"cake-defense/internal/component"
	"cake-defense/internal/defs"
	"cake-defense/internal/entity"
	"cake-defense/internal/types"
	"cake-defense/internal/utils"
)

// ProjectileSystem управляет движением снарядов и нанесением урона.
// Снаряд летит по прямой и попадает только в того муравья, в которого стреляли.
type ProjectileSystem struct {
	world   *entity.World
	balance *defs.Balance
}

func NewProjectileSystem(world *entity.World, balance *defs.Balance) *ProjectileSystem {
	return &ProjectileSystem{world: world, balance: balance}
}

func (s *ProjectileSystem) Update() {
	phys := s.balance.Physics
	s.world.Projectiles.Each(func(_ types.EntityID, proj *component.Projectile) bool {
		if proj.Dead {
			return true
		}
		proj.X += proj.VX
		proj.Y += proj.VY

		target, ok := s.world.Ants.Get(proj.TargetID)
		if ok && target.Alive() && utils.Distance(proj.X, proj.Y, target.X, target.Y) < phys.HitRadius {
			s.hitTarget(proj, target)
			return true
		}

		if !s.balance.Canvas.Contains(proj.X, proj.Y) {
			proj.Dead = true
		} else if proj.VX == 0 && proj.VY == 0 {
			// A motionless shot that missed will never leave the field.
			proj.Dead = true
		}
		return true
	})
}

func (s *ProjectileSystem) hitTarget(proj *component.Projectile, target *component.Ant) {
	if proj.Hit {
		return
	}
	proj.Hit = true
	proj.Dead = true
	target.TakeDamage(proj.Damage)

	if !proj.Kind.Splashes() {
		return
	}
	phys := s.balance.Physics
	splash := int(float64(proj.Damage) * phys.SplashFactor)
	s.world.Ants.Each(func(_ types.EntityID, ant *component.Ant) bool {
		if ant == target || !ant.Alive() {
			return true
		}
		if utils.Distance(proj.X, proj.Y, ant.X, ant.Y) < phys.SplashRadius {
			ant.TakeDamage(splash)
		}
		return true
	})
}
