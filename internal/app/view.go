package app

import (
	"cake-defense/internal/component"
	"cake-defense/internal/defs"
	"cake-defense/internal/types"
)

// AntView is a read-only copy of an ant for drawing.
type AntView struct {
	ID          types.EntityID
	Kind        defs.AntKind
	X, Y        float64
	Heading     float64
	Radius      float64
	HealthRatio float64
	Phase       component.AntPhase
	Carrying    bool
}

type TowerView struct {
	ID      types.EntityID
	Kind    defs.TowerKind
	X, Y    float64
	Heading float64
	Level   int
	Range   float64
	Target  types.EntityID
}

type ProjectileView struct {
	Kind   defs.TowerKind
	X, Y   float64
	VX, VY float64
}

type ParticleView struct {
	X, Y  float64
	Alpha float64
}

type CakeView struct {
	X, Y            float64
	TotalSlices     int
	RemainingSlices int
	SlicesDelivered int
	SliceAngles     []float64
}

// Stats is the economy read-out polled by the HUD.
type Stats struct {
	State           component.GameState
	Tick            uint64
	Money           int
	Score           int
	Wave            int
	Difficulty      float64
	RemainingSlices int
	TotalSlices     int
	SlicesDelivered int
	LiveAnts        int
	AntsKilled      int
	Towers          int
	SelectedType    defs.TowerKind
	SelectedPrice   int
	GameOverReason  string
	GameOverMessage string
}

// Snapshot is everything a frontend needs to draw one frame.
type Snapshot struct {
	Anthill     defs.Point
	Ants        []AntView
	Towers      []TowerView
	Projectiles []ProjectileView
	Particles   []ParticleView
	Cake        CakeView
	Stats       Stats
}

// Stats returns the current read-out.
func (g *Game) Stats() Stats {
	s := g.WaveController.Session()
	cake := g.WaveController.Cake()
	return Stats{
		State:           s.State,
		Tick:            s.Tick,
		Money:           s.Money,
		Score:           s.Score,
		Wave:            s.Wave,
		Difficulty:      s.Difficulty,
		RemainingSlices: cake.RemainingSlices,
		TotalSlices:     cake.TotalSlices,
		SlicesDelivered: cake.SlicesDelivered,
		LiveAnts:        g.World.LiveAnts(),
		AntsKilled:      s.AntsKilled,
		Towers:          g.World.Towers.Len(),
		SelectedType:    g.selectedType,
		SelectedPrice:   g.TowerPrice(g.selectedType),
		GameOverReason:  s.GameOverReason,
		GameOverMessage: s.GameOverMessage,
	}
}

// Snapshot copies the drawable state. Dead entities awaiting the purge are
// left out.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Anthill:     g.Balance.Anthill,
		Ants:        make([]AntView, 0, g.World.Ants.Len()),
		Towers:      make([]TowerView, 0, g.World.Towers.Len()),
		Projectiles: make([]ProjectileView, 0, g.World.Projectiles.Len()),
		Particles:   make([]ParticleView, 0, g.World.Particles.Len()),
		Stats:       g.Stats(),
	}

	g.World.Ants.Each(func(id types.EntityID, a *component.Ant) bool {
		if a.Alive() {
			snap.Ants = append(snap.Ants, AntView{
				ID:          id,
				Kind:        a.Kind,
				X:           a.X,
				Y:           a.Y,
				Heading:     a.Heading,
				Radius:      a.Radius,
				HealthRatio: a.HealthRatio(),
				Phase:       a.Phase(),
				Carrying:    a.Carrying,
			})
		}
		return true
	})
	g.World.Towers.Each(func(id types.EntityID, t *component.Tower) bool {
		snap.Towers = append(snap.Towers, TowerView{
			ID:      id,
			Kind:    t.Kind,
			X:       t.X,
			Y:       t.Y,
			Heading: t.Heading,
			Level:   t.Level,
			Range:   t.Range,
			Target:  t.Target,
		})
		return true
	})
	g.World.Projectiles.Each(func(_ types.EntityID, p *component.Projectile) bool {
		if !p.Dead {
			snap.Projectiles = append(snap.Projectiles, ProjectileView{Kind: p.Kind, X: p.X, Y: p.Y, VX: p.VX, VY: p.VY})
		}
		return true
	})
	g.World.Particles.Each(func(_ types.EntityID, p *component.Particle) bool {
		if !p.Dead {
			snap.Particles = append(snap.Particles, ParticleView{X: p.X, Y: p.Y, Alpha: p.Alpha()})
		}
		return true
	})

	cake := g.WaveController.Cake()
	snap.Cake = CakeView{
		X:               cake.X,
		Y:               cake.Y,
		TotalSlices:     cake.TotalSlices,
		RemainingSlices: cake.RemainingSlices,
		SlicesDelivered: cake.SlicesDelivered,
		SliceAngles:     cake.SliceAngles,
	}
	return snap
}
