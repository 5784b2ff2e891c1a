// internal/app/game.go
package app

import (
	"fmt"
	"log"

	"cake-defense/internal/component"
	"cake-defense/internal/defs"
	"cake-defense/internal/entity"
	"cake-defense/internal/event"
	"cake-defense/internal/system"
	"cake-defense/internal/types"
	"cake-defense/internal/utils"
)

// Game holds the simulation and runs it one fixed tick at a time.
type Game struct {
	Balance          *defs.Balance
	World            *entity.World
	EventDispatcher  *event.Dispatcher
	Rng              *utils.PRNGService
	Planner          *system.PathPlanner
	WaveController   *system.WaveController
	MovementSystem   *system.MovementSystem
	CombatSystem     *system.CombatSystem
	ProjectileSystem *system.ProjectileSystem
	ParticleSystem   *system.ParticleSystem

	selectedType defs.TowerKind
}

// NewGame initializes a new game instance. The balance is copied, so later
// edits by the caller do not reach the session. A zero seed picks one from
// the clock.
func NewGame(balance *defs.Balance, seed int64) (*Game, error) {
	if balance == nil {
		balance = defs.DefaultBalance()
	}
	if err := balance.Validate(); err != nil {
		return nil, fmt.Errorf("invalid balance: %w", err)
	}
	balance = balance.Clone()

	world := entity.NewWorld()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(seed)
	planner := system.NewPathPlanner(balance, rng)

	g := &Game{
		Balance:          balance,
		World:            world,
		EventDispatcher:  eventDispatcher,
		Rng:              rng,
		Planner:          planner,
		WaveController:   system.NewWaveController(world, balance, rng, planner, eventDispatcher),
		MovementSystem:   system.NewMovementSystem(world, balance, rng, planner),
		CombatSystem:     system.NewCombatSystem(world, balance, eventDispatcher),
		ProjectileSystem: system.NewProjectileSystem(world, balance),
		ParticleSystem:   system.NewParticleSystem(world, rng),
		selectedType:     defs.TowerLight,
	}
	log.Printf("Game: new session with seed %d", rng.Seed())
	return g, nil
}

// Step advances the simulation by one tick. It does nothing unless the game
// is playing and reports whether a tick ran.
func (g *Game) Step() bool {
	if g.WaveController.State() != component.Playing {
		return false
	}

	g.WaveController.Update()
	g.MovementSystem.Update()
	g.CombatSystem.Update()
	g.ProjectileSystem.Update()
	g.ParticleSystem.Update()

	// Убитых оплачиваем до доставок: последний кусок торта завершает игру.
	g.processKills()
	g.processArrivals()
	g.processDeliveries()

	g.World.Purge()
	return true
}

// processArrivals hands slices to ants that finished their outbound path.
func (g *Game) processArrivals() {
	g.World.Ants.Each(func(_ types.EntityID, ant *component.Ant) bool {
		if ant.Alive() && ant.ReachedCake {
			g.WaveController.OnAntReachedCake(ant)
		}
		return true
	})
}

// processDeliveries checks returning ants against the anthill.
func (g *Game) processDeliveries() {
	home := g.Balance.Anthill
	radius := g.Balance.Physics.DeliveryRadius
	g.World.Ants.Each(func(_ types.EntityID, ant *component.Ant) bool {
		if !ant.Alive() || !ant.Returning() {
			return true
		}
		if utils.Distance(ant.X, ant.Y, home.X, home.Y) >= radius {
			return true
		}
		if ant.Carrying {
			g.WaveController.OnAntDelivered(ant)
		} else {
			ant.ResumeExploring()
			ant.SetPath(g.Planner.Outbound())
		}
		return true
	})
}

// processKills pays for every ant killed this tick and leaves a few sparks.
func (g *Game) processKills() {
	var killed []*component.Ant
	totalLoss := 0.0
	g.World.Ants.Each(func(_ types.EntityID, ant *component.Ant) bool {
		if ant.JustDied && !ant.Rewarded {
			killed = append(killed, ant)
			if ant.MaxHealth > 0 {
				totalLoss += float64(ant.MaxHealth-ant.Health) / float64(ant.MaxHealth)
			}
		}
		return true
	})
	if len(killed) == 0 {
		return
	}

	averageLoss := totalLoss / float64(len(killed))
	for _, ant := range killed {
		g.WaveController.OnAntKilled(ant, averageLoss)
		g.ParticleSystem.Burst(ant.X, ant.Y, g.Balance.Economy.KillParticles)
	}
}

// TogglePause switches between playing and paused.
func (g *Game) TogglePause() bool {
	return g.WaveController.TogglePause()
}

// Restart discards the session and starts over with the same seed.
// Event subscriptions survive.
func (g *Game) Restart() {
	g.World.Reset()
	g.Rng.Reset()
	g.WaveController.Reset()
	g.selectedType = defs.TowerLight
	log.Println("Game: restarted")
	g.EventDispatcher.Emit(event.GameRestarted, nil)
}

// State returns the session phase.
func (g *Game) State() component.GameState {
	return g.WaveController.State()
}
