package system

import (
	"cake-defense/internal/component"
	"cake-defense/internal/defs"
	"cake-defense/internal/entity"
	"cake-defense/internal/event"
	"cake-defense/internal/types"
	"cake-defense/internal/utils"
)

// Threat classes used by target selection.
const (
	PriorityCarrier  = 100.0 // returning with a slice
	PriorityOutbound = 50.0
	PriorityDecoy    = 10.0 // returning empty-handed
	DistancePenalty  = 10.0
)

// CombatSystem drives tower attacks: every tick each tower re-scores the
// ants in range and fires at the best one when its timer allows.
type CombatSystem struct {
	world           *entity.World
	balance         *defs.Balance
	eventDispatcher *event.Dispatcher
}

func NewCombatSystem(world *entity.World, balance *defs.Balance, eventDispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{world: world, balance: balance, eventDispatcher: eventDispatcher}
}

func (s *CombatSystem) Update() {
	s.world.Towers.Each(func(_ types.EntityID, tower *component.Tower) bool {
		tower.FireTimer++
		target := s.FindTarget(tower)
		tower.Target = 0
		if target == nil {
			return true
		}
		tower.Target = target.ID
		tower.Heading = utils.Angle(tower.X, tower.Y, target.X, target.Y)
		if tower.FireTimer >= tower.FireInterval {
			s.fire(tower, target)
			tower.FireTimer = 0
		}
		return true
	})
}

// TargetPriority scores an ant at distance d from a tower with the given
// range. Higher is better.
func TargetPriority(ant *component.Ant, d, towerRange float64) float64 {
	var priority float64
	switch {
	case ant.Carrying && ant.Returning():
		priority = PriorityCarrier
	case !ant.Returning():
		priority = PriorityOutbound
	default:
		priority = PriorityDecoy
	}
	return priority - d/towerRange*DistancePenalty
}

// FindTarget returns the highest scoring live ant in range, or nil. On an
// equal score the first ant found is kept unless a later one is strictly
// closer.
func (s *CombatSystem) FindTarget(tower *component.Tower) *component.Ant {
	var best *component.Ant
	bestPriority := -1.0
	closest := tower.Range

	s.world.Ants.Each(func(_ types.EntityID, ant *component.Ant) bool {
		if !ant.Alive() {
			return true
		}
		d := utils.Distance(tower.X, tower.Y, ant.X, ant.Y)
		if d > tower.Range {
			return true
		}
		p := TargetPriority(ant, d, tower.Range)
		if p > bestPriority || (p == bestPriority && d < closest) {
			best = ant
			bestPriority = p
			closest = d
		}
		return true
	})
	return best
}

func (s *CombatSystem) fire(tower *component.Tower, target *component.Ant) {
	id := s.world.NewEntity()
	proj := component.NewProjectile(id, tower.Kind, tower.X, tower.Y, target.X, target.Y,
		s.balance.Physics.ProjectileSpeed, tower.Damage, target.ID, tower.ID)
	s.world.Projectiles.Add(id, proj)

	s.eventDispatcher.Emit(event.TowerFired, event.TowerData{
		ID:     tower.ID,
		Kind:   tower.Kind,
		X:      tower.X,
		Y:      tower.Y,
		Level:  tower.Level,
		Target: target.ID,
	})
}
