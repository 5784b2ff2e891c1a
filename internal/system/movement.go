// internal/system/movement.go
package system

import (
	"math"

	"cake-defense/internal/component"
	"cake-defense/internal/defs"
	"cake-defense/internal/entity"
	"cake-defense/internal/types"
	"cake-defense/internal/utils"
)

// MovementSystem обновляет позиции муравьёв: движение по точкам пути
// вперемешку с блужданием, обход башен и отскок от краёв поля.
type MovementSystem struct {
	world   *entity.World
	balance *defs.Balance
	rng     *utils.PRNGService
	planner *PathPlanner
}

func NewMovementSystem(world *entity.World, balance *defs.Balance, rng *utils.PRNGService, planner *PathPlanner) *MovementSystem {
	return &MovementSystem{world: world, balance: balance, rng: rng, planner: planner}
}

func (s *MovementSystem) Update() {
	s.world.Ants.Each(func(_ types.EntityID, ant *component.Ant) bool {
		if ant.Alive() && !ant.ReachedCake {
			s.updateAnt(ant)
		}
		return true
	})
}

func (s *MovementSystem) updateAnt(ant *component.Ant) {
	threshold := s.balance.Physics.WaypointThreshold

	wp, ok := ant.CurrentWaypoint()
	if !ok {
		// Returning ants wait at the end of their path for the delivery check.
		return
	}
	if utils.Distance(ant.X, ant.Y, wp.X, wp.Y) > threshold {
		s.steer(ant, wp)
		if wp, ok = ant.CurrentWaypoint(); !ok {
			return
		}
	}
	if utils.Distance(ant.X, ant.Y, wp.X, wp.Y) <= threshold {
		if ant.AdvanceWaypoint() && !ant.Returning() {
			ant.ReachedCake = true
		}
	}
}

func (s *MovementSystem) steer(ant *component.Ant, wp component.Waypoint) {
	st := s.balance.Steering
	speed := ant.Speed(s.balance.AntRules.CarrySpeedFactor)

	ant.WanderTimer++
	if float64(ant.WanderTimer) > float64(st.WanderMinTicks)+s.rng.Float64()*st.WanderRandomTicks {
		if s.rng.Float64() < st.SharpTurnChance {
			ant.WanderAngle += s.rng.Signed(st.SharpTurn)
		} else {
			ant.WanderAngle += s.rng.Signed(st.SmallTurn)
		}
		ant.WanderTimer = 0
	}

	targetAngle := utils.Angle(ant.X, ant.Y, wp.X, wp.Y)
	ant.WanderAngle += utils.AngleDifference(ant.WanderAngle, targetAngle) * st.WanderEasing

	// Goal and wander directions are weighted independently, then rescaled
	// to the ant's speed.
	moveX := math.Cos(targetAngle)*st.GoalWeight + math.Cos(ant.WanderAngle)*st.WanderWeight
	moveY := math.Sin(targetAngle)*st.GoalWeight + math.Sin(ant.WanderAngle)*st.WanderWeight
	if l := math.Hypot(moveX, moveY); l > 0 {
		moveX = moveX / l * speed
		moveY = moveY / l * speed
	}

	jitter := s.rng.Signed(st.LateralJitter)
	moveX += math.Cos(ant.WanderAngle+math.Pi/2) * jitter
	moveY += math.Sin(ant.WanderAngle+math.Pi/2) * jitter

	avoidX, avoidY, blocked := s.avoidance(ant, ant.X+moveX, ant.Y+moveY, speed)
	moveX += avoidX
	moveY += avoidY

	if blocked && ant.TurnAroundCooldown == 0 {
		ant.WanderAngle += math.Pi + s.rng.Signed(st.TurnAroundSpread)
		ant.SetPath(s.planner.For(ant))
		ant.TurnAroundCooldown = st.TurnAroundCooldown
	} else if ant.TurnAroundCooldown > 0 {
		ant.TurnAroundCooldown--
	}

	ant.X += moveX
	ant.Y += moveY
	ant.Heading = math.Atan2(moveY, moveX)
	s.keepInBounds(ant)
}

// avoidance sums a linear push away from every tower inside the soft radius
// and reports whether the proposed position would enter a tower's hard
// collision radius.
func (s *MovementSystem) avoidance(ant *component.Ant, proposedX, proposedY, speed float64) (float64, float64, bool) {
	phys := s.balance.Physics
	var ax, ay float64
	blocked := false
	s.world.Towers.Each(func(_ types.EntityID, t *component.Tower) bool {
		if utils.Distance(proposedX, proposedY, t.X, t.Y) < phys.HardCollisionRadius {
			blocked = true
			return true
		}
		d := utils.Distance(ant.X, ant.Y, t.X, t.Y)
		if d < phys.AvoidanceRadius {
			strength := (phys.AvoidanceRadius - d) / phys.AvoidanceRadius
			angle := utils.Angle(t.X, t.Y, ant.X, ant.Y)
			ax += math.Cos(angle) * strength * speed * phys.AvoidanceDamping
			ay += math.Sin(angle) * strength * speed * phys.AvoidanceDamping
		}
		return true
	})
	return ax, ay, blocked
}

// keepInBounds clamps the ant to the playfield and turns it around when it
// touches an edge.
func (s *MovementSystem) keepInBounds(ant *component.Ant) {
	c := s.balance.Canvas
	ant.X = utils.Clamp(ant.X, c.Margin, c.Width-c.Margin)
	ant.Y = utils.Clamp(ant.Y, c.Margin, c.Height-c.Margin)
	if ant.X <= c.Margin || ant.X >= c.Width-c.Margin {
		ant.WanderAngle += math.Pi
	}
	if ant.Y <= c.Margin || ant.Y >= c.Height-c.Margin {
		ant.WanderAngle += math.Pi
	}
}
