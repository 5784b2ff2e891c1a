package system

import (
	"cake-defense/internal/component"
	"cake-defense/internal/defs"
	"cake-defense/internal/entity"
	"cake-defense/internal/event"
	"cake-defense/internal/utils"
)

type fixture struct {
	balance    *defs.Balance
	world      *entity.World
	rng        *utils.PRNGService
	dispatcher *event.Dispatcher
	planner    *PathPlanner
	events     map[event.EventType]int
}

func newFixture() *fixture {
	f := &fixture{
		balance:    defs.DefaultBalance(),
		world:      entity.NewWorld(),
		rng:        utils.NewPRNGService(99),
		dispatcher: event.NewDispatcher(),
		events:     map[event.EventType]int{},
	}
	f.planner = NewPathPlanner(f.balance, f.rng)
	f.dispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) { f.events[e.Type]++ }), event.AllTypes...)
	return f
}

func (f *fixture) addAnt(kind defs.AntKind, x, y float64) *component.Ant {
	def := f.balance.Ants.Get(kind)
	stats := component.AntStats{Health: def.Health, Speed: def.Speed, Radius: def.Radius, Reward: def.Reward}
	ant := component.NewAnt(f.world.NewEntity(), kind, x, y, stats, 0, 0)
	f.world.Ants.Add(ant.ID, ant)
	return ant
}

func (f *fixture) addTower(kind defs.TowerKind, x, y float64) *component.Tower {
	tower := component.NewTower(f.world.NewEntity(), kind, x, y, f.balance.Towers.Get(kind), f.balance.TowerRules)
	f.world.Towers.Add(tower.ID, tower)
	return tower
}

func makeCarrier(ant *component.Ant) {
	ant.State = component.AntReturning
	ant.Carrying = true
}
