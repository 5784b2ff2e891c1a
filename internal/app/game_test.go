package app

import (
	"reflect"
	"testing"

	"cake-defense/internal/component"
	"cake-defense/internal/defs"
	"cake-defense/internal/event"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := NewGame(nil, seed)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}
	return g
}

func (g *Game) addWorker(x, y float64) *component.Ant {
	def := g.Balance.Ants.Get(defs.AntWorker)
	stats := component.AntStats{Health: def.Health, Speed: def.Speed, Radius: def.Radius, Reward: def.Reward}
	ant := component.NewAnt(g.World.NewEntity(), defs.AntWorker, x, y, stats, 0, 0)
	g.World.Ants.Add(ant.ID, ant)
	return ant
}

func TestNewGameRejectsInvalidBalance(t *testing.T) {
	b := defs.DefaultBalance()
	b.Starting.CakeSlices = 0
	if _, err := NewGame(b, 1); err == nil {
		t.Fatal("Expected an error for a cake without slices")
	}
}

func TestNewGameCopiesBalance(t *testing.T) {
	b := defs.DefaultBalance()
	g, err := NewGame(b, 1)
	if err != nil {
		t.Fatal(err)
	}
	b.Starting.Money = 1
	b.Towers[defs.TowerLight] = defs.TowerDefinition{}
	if g.Balance.Towers.Get(defs.TowerLight).BaseCost != 60 {
		t.Error("Expected the session to keep its own balance")
	}
}

// TestPlacementRules verifies every rejection leaves money and towers alone.
func TestPlacementRules(t *testing.T) {
	g := newTestGame(t, 1)

	tests := []struct {
		name string
		x, y float64
		want Rejection
	}{
		{"Left of field", -5, 100, RejectOutOfBounds},
		{"Below field", 300, 650, RejectOutOfBounds},
		{"On anthill", 50, 320, RejectTooCloseToAnthill},
		{"On cake", 700, 300, RejectTooCloseToCake},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, r := g.PlaceTower(tt.x, tt.y, defs.TowerLight); r != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, r)
			}
			if s := g.Stats(); s.Money != 125 || s.Towers != 0 {
				t.Errorf("Expected nothing to change, got %+v", s)
			}
		})
	}

	if _, r := g.PlaceTower(300, 300, defs.TowerLight); !r.OK() {
		t.Fatalf("Expected placement, got %v", r)
	}
	if g.Stats().Money != 65 {
		t.Errorf("Expected 65 left, got %d", g.Stats().Money)
	}
	if r := g.CanPlaceTower(320, 300); r != RejectTooCloseToTower {
		t.Errorf("Expected %v, got %v", RejectTooCloseToTower, r)
	}
	if _, r := g.PlaceTower(400, 100, defs.TowerLight); !r.OK() {
		t.Fatalf("Expected second placement, got %v", r)
	}
	if _, r := g.PlaceTower(500, 500, defs.TowerLight); r != RejectInsufficientFunds {
		t.Errorf("Expected %v, got %v", RejectInsufficientFunds, r)
	}
	if s := g.Stats(); s.Money != 5 || s.Towers != 2 {
		t.Errorf("Expected 5 money and 2 towers, got %+v", s)
	}
}

func TestUpgradeToMaxLevel(t *testing.T) {
	g := newTestGame(t, 1)
	id, _ := g.PlaceTower(300, 300, defs.TowerLight)
	g.WaveController.Earn(1000)

	if price, _ := g.UpgradePrice(id); price != 48 {
		t.Errorf("Expected upgrade price 48, got %d", price)
	}
	for i := 0; i < 2; i++ {
		if r := g.UpgradeTower(id); !r.OK() {
			t.Fatalf("Upgrade %d: %v", i+1, r)
		}
	}
	tower, _ := g.World.Towers.Get(id)
	if tower.Level != 3 || tower.Damage != 90 || tower.Range != 120 || tower.FireInterval != 10 {
		t.Fatalf("Unexpected level 3 tower %+v", tower)
	}
	money := g.Stats().Money
	if money != 1065-48-96 {
		t.Errorf("Expected %d, got %d", 1065-48-96, money)
	}

	if r := g.UpgradeTower(id); r != RejectMaxLevel {
		t.Errorf("Expected %v, got %v", RejectMaxLevel, r)
	}
	if tower.Level != 3 || g.Stats().Money != money {
		t.Error("Expected a refused upgrade to change nothing")
	}
	if r := g.UpgradeTower(999); r != RejectUnknownTower {
		t.Errorf("Expected %v, got %v", RejectUnknownTower, r)
	}
}

func TestSellAndMove(t *testing.T) {
	g := newTestGame(t, 1)
	id, _ := g.PlaceTower(300, 300, defs.TowerLight)
	other, _ := g.PlaceTower(300, 400, defs.TowerLight)

	if r := g.MoveTower(id, 310, 300); !r.OK() {
		t.Errorf("Expected a short move to ignore the tower itself, got %v", r)
	}
	if r := g.MoveTower(id, 300, 380); r != RejectTooCloseToTower {
		t.Errorf("Expected %v, got %v", RejectTooCloseToTower, r)
	}
	if r := g.MoveTower(id, 60, 300); r != RejectTooCloseToAnthill {
		t.Errorf("Expected %v, got %v", RejectTooCloseToAnthill, r)
	}
	tower, _ := g.World.Towers.Get(id)
	if tower.X != 310 || tower.Y != 300 {
		t.Errorf("Expected the tower at (310, 300), got (%f, %f)", tower.X, tower.Y)
	}

	if found, ok := g.TowerAt(305, 402); !ok || found != other {
		t.Errorf("Expected to find tower %d, got %d", other, found)
	}

	refund, r := g.SellTower(other)
	if !r.OK() || refund != 42 {
		t.Fatalf("Expected a refund of 42, got %d (%v)", refund, r)
	}
	if _, ok := g.TowerAt(300, 400); ok {
		t.Error("Expected the sold tower to be gone")
	}
	if _, r := g.SellTower(other); r != RejectUnknownTower {
		t.Errorf("Expected %v, got %v", RejectUnknownTower, r)
	}
	if g.Stats().Money != 125-60-60+42 {
		t.Errorf("Unexpected money %d", g.Stats().Money)
	}
}

func TestTowerSelection(t *testing.T) {
	g := newTestGame(t, 1)
	if r := g.SelectTowerType(3); !r.OK() || g.SelectedTowerType() != defs.TowerArea {
		t.Fatalf("Expected area tower selected, got %v", g.SelectedTowerType())
	}
	if r := g.SelectTowerType(4); r != RejectInvalidSelection {
		t.Errorf("Expected %v, got %v", RejectInvalidSelection, r)
	}
	if kind := g.CycleTowerType(); kind != defs.TowerLight {
		t.Errorf("Expected selection to wrap to light, got %v", kind)
	}
	if g.Stats().SelectedPrice != 60 {
		t.Errorf("Expected price 60, got %d", g.Stats().SelectedPrice)
	}
}

func TestKillPaysAndSparks(t *testing.T) {
	g := newTestGame(t, 1)
	ant := g.addWorker(400, 300)
	ant.TakeDamage(100)

	g.Step()

	s := g.Stats()
	// Killed ants always count as heavily damaged, so the struggle bonus applies.
	if s.Money != 133 || s.Score != 30 || s.AntsKilled != 1 {
		t.Errorf("Expected money 133, score 30, one kill; got %+v", s)
	}
	if g.World.Ants.Len() != 0 {
		t.Error("Expected the dead ant to be purged")
	}
	if g.World.Particles.Len() != 5 {
		t.Errorf("Expected 5 particles, got %d", g.World.Particles.Len())
	}
}

func TestGameOverBlocksInput(t *testing.T) {
	g := newTestGame(t, 1)
	for i := 0; i < 8; i++ {
		ant := g.addWorker(720, 300)
		ant.ReachedCake = true
		g.processArrivals()
		ant.X, ant.Y = 55, 300
		g.processDeliveries()
	}
	if g.State() != component.GameOver {
		t.Fatalf("Expected game over, got %v", g.State())
	}
	if g.Step() {
		t.Error("Expected no ticks after game over")
	}
	if _, r := g.PlaceTower(300, 300, defs.TowerLight); r != RejectGameOver {
		t.Errorf("Expected %v, got %v", RejectGameOver, r)
	}
	if g.TogglePause() {
		t.Error("Expected pause to be refused")
	}
	if s := g.Stats(); s.GameOverReason != "Cake Stolen!" || s.SlicesDelivered != 8 {
		t.Errorf("Unexpected final stats %+v", s)
	}
}

// TestKillPaidBeforeLastDelivery kills an ant in the same tick the last
// slice reaches the anthill: the reward must land before the game ends.
func TestKillPaidBeforeLastDelivery(t *testing.T) {
	g := newTestGame(t, 1)
	deliver := func() *component.Ant {
		ant := g.addWorker(720, 300)
		ant.ReachedCake = true
		g.processArrivals()
		ant.X, ant.Y = 55, 300
		return ant
	}
	for i := 0; i < 7; i++ {
		deliver()
		g.processDeliveries()
	}
	deliver()
	victim := g.addWorker(400, 300)
	victim.TakeDamage(100)

	var got []event.EventType
	g.EventDispatcher.SubscribeAll(event.ListenerFunc(func(e event.Event) { got = append(got, e.Type) }),
		event.AntDied, event.MoneyEarned, event.GameOver)

	g.Step()

	want := []event.EventType{event.AntDied, event.MoneyEarned, event.GameOver}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Expected events %v, got %v", want, got)
	}
	if s := g.Stats(); s.State != component.GameOver || s.AntsKilled != 1 || s.Money <= 125 {
		t.Errorf("Expected a paid kill and game over, got %+v", s)
	}
}

func TestPausedGameDoesNotStep(t *testing.T) {
	g := newTestGame(t, 1)
	id, _ := g.PlaceTower(300, 300, defs.TowerLight)
	g.TogglePause()
	if g.Step() || g.Stats().Tick != 0 {
		t.Error("Expected a paused game to stand still")
	}

	if _, r := g.PlaceTower(400, 200, defs.TowerLight); r != RejectPaused {
		t.Errorf("Place: expected %v, got %v", RejectPaused, r)
	}
	if r := g.UpgradeTower(id); r != RejectPaused {
		t.Errorf("Upgrade: expected %v, got %v", RejectPaused, r)
	}
	if _, r := g.SellTower(id); r != RejectPaused {
		t.Errorf("Sell: expected %v, got %v", RejectPaused, r)
	}
	if r := g.MoveTower(id, 400, 200); r != RejectPaused {
		t.Errorf("Move: expected %v, got %v", RejectPaused, r)
	}
	if s := g.Stats(); s.Money != 65 || s.Towers != 1 {
		t.Errorf("Expected nothing to change while paused, got %+v", s)
	}
	if tower, _ := g.World.Towers.Get(id); tower.Level != 1 || tower.X != 300 {
		t.Errorf("Expected the tower untouched, got %+v", tower)
	}

	g.TogglePause()
	if !g.Step() || g.Stats().Tick != 1 {
		t.Error("Expected the game to resume")
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, 5)
	restarts := 0
	g.EventDispatcher.Subscribe(event.GameRestarted, event.ListenerFunc(func(event.Event) { restarts++ }))

	g.PlaceTower(300, 300, defs.TowerHeavy)
	g.SelectTowerType(2)
	for i := 0; i < 600; i++ {
		g.Step()
	}
	g.Restart()

	s := g.Stats()
	want := Stats{
		State:           component.Playing,
		Money:           125,
		Wave:            1,
		Difficulty:      1,
		RemainingSlices: 8,
		TotalSlices:     8,
		SelectedType:    defs.TowerLight,
		SelectedPrice:   60,
	}
	if s != want {
		t.Errorf("Expected %+v, got %+v", want, s)
	}
	if g.World.NextID != 1 || g.World.Projectiles.Len() != 0 {
		t.Error("Expected an empty world")
	}
	if restarts != 1 {
		t.Errorf("Expected one restart event, got %d", restarts)
	}
}

// TestDeterminism runs two sessions with the same seed and compares the
// drawable state.
func TestDeterminism(t *testing.T) {
	run := func(seed int64) Snapshot {
		g := newTestGame(t, seed)
		g.PlaceTower(300, 250, defs.TowerLight)
		g.PlaceTower(500, 350, defs.TowerLight)
		for i := 0; i < 3000; i++ {
			g.Step()
		}
		return g.Snapshot()
	}

	a, b := run(42), run(42)
	if !reflect.DeepEqual(a, b) {
		t.Fatal("Expected identical snapshots for the same seed")
	}
	if len(a.Ants) == 0 {
		t.Fatal("Expected ants on the field after 3000 ticks")
	}
	if reflect.DeepEqual(a.Ants, run(43).Ants) {
		t.Error("Expected a different seed to give different ants")
	}
}

// TestWorkerReachesCakeOnce walks one worker from the anthill until it has
// taken a slice and carried it home.
func TestWorkerReachesCakeOnce(t *testing.T) {
	g := newTestGame(t, 7)
	ant := g.addWorker(g.Balance.Anthill.X, g.Balance.Anthill.Y)
	ant.SetPath(g.Planner.Outbound())

	arrivals := 0
	g.EventDispatcher.Subscribe(event.AntReachedCake, event.ListenerFunc(func(event.Event) { arrivals++ }))

	lastIndex := 0
	for i := 0; i < 20000 && ant.Alive(); i++ {
		g.MovementSystem.Update()
		if !ant.Returning() {
			if ant.WaypointIndex < lastIndex {
				t.Fatalf("Tick %d: waypoint index went back from %d to %d", i, lastIndex, ant.WaypointIndex)
			}
			lastIndex = ant.WaypointIndex
		}
		g.processArrivals()
		g.processDeliveries()
	}

	if arrivals != 1 {
		t.Fatalf("Expected exactly one arrival, got %d", arrivals)
	}
	if ant.Cause != component.CauseDelivered {
		t.Fatalf("Expected the slice to be delivered, got cause %v", ant.Cause)
	}
	if s := g.Stats(); s.RemainingSlices != 7 || s.SlicesDelivered != 1 || s.Score != -100 {
		t.Errorf("Unexpected stats %+v", s)
	}
}
