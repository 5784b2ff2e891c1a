package system

import (
	"math"
	"testing"

	"cake-defense/internal/component"
	"cake-defense/internal/defs"
)

func (f *fixture) controller() *WaveController {
	return NewWaveController(f.world, f.balance, f.rng, f.planner, f.dispatcher)
}

func TestWaveFormulas(t *testing.T) {
	w := defs.DefaultBalance().Waves

	caps := map[int]int{0: 6, 1: 6, 2: 9, 3: 12, 4: 15, 5: 16, 8: 24, 20: 25}
	for remaining, want := range caps {
		if got := PopulationCap(remaining, w.MaxPopulation); got != want {
			t.Errorf("Cap for %d slices: expected %d, got %d", remaining, want, got)
		}
	}

	if got := WaveQuota(w, 2, 0, 0); got != 4 {
		t.Errorf("Expected quota 4 at wave 2, got %d", got)
	}
	if got := WaveQuota(w, 10, 0, 0); got != 8 {
		t.Errorf("Expected quota 8 at wave 10, got %d", got)
	}
	if got := WaveQuota(w, 10, 90, 5); got != 11 {
		t.Errorf("Expected quota 11 with towers, got %d", got)
	}
	if got := WaveQuota(w, 200, 10000, 100); got != 35 {
		t.Errorf("Expected quota capped at 35, got %d", got)
	}

	intervals := map[int]int{1: 55, 2: 50, 25: 10, 40: 10}
	for wave, want := range intervals {
		if got := SpawnInterval(w, wave); got != want {
			t.Errorf("Interval at wave %d: expected %d, got %d", wave, want, got)
		}
	}

	if WaveDelay(w, 8) != 540 || WaveDelay(w, 3) != 450 || WaveDelay(w, 1) != 360 {
		t.Error("Expected the wave delay to shorten as the cake runs out")
	}
}

func TestControllerStartsFromBalance(t *testing.T) {
	f := newFixture()
	c := f.controller()
	s := c.Session()
	if s.Money != 125 || s.Score != 0 || s.Wave != 1 || s.State != component.Playing {
		t.Errorf("Unexpected starting session %+v", s)
	}
	if cake := c.Cake(); cake.RemainingSlices != 8 || cake.TotalSlices != 8 || len(cake.SliceAngles) != 8 {
		t.Errorf("Unexpected starting cake %+v", cake)
	}
}

// TestFirstSpawn verifies the first ant appears at the anthill on tick 120.
func TestFirstSpawn(t *testing.T) {
	f := newFixture()
	c := f.controller()
	for i := 0; i < 119; i++ {
		c.Update()
	}
	if f.world.Ants.Len() != 0 {
		t.Fatalf("Expected no ants before tick 120, got %d", f.world.Ants.Len())
	}
	c.Update()
	if f.world.Ants.Len() != 1 {
		t.Fatalf("Expected one ant on tick 120, got %d", f.world.Ants.Len())
	}
	ant := f.world.Ants.Items()[0]
	if ant.X != 50 || ant.Y != 300 || ant.Kind != defs.AntWorker {
		t.Errorf("Expected a worker at the anthill, got %v at (%f, %f)", ant.Kind, ant.X, ant.Y)
	}
	if n := len(ant.Waypoints); n < 4 || n > 6 {
		t.Errorf("Expected 4-6 waypoints, got %d", n)
	}
	if last := ant.Waypoints[len(ant.Waypoints)-1]; last.X != 720 || last.Y != 300 {
		t.Errorf("Expected path to end on the cake, got %+v", last)
	}
	if f.events["AntSpawned"] != 1 {
		t.Errorf("Expected one AntSpawned event, got %d", f.events["AntSpawned"])
	}
}

func TestWaveEscalation(t *testing.T) {
	f := newFixture()
	c := f.controller()
	for i := 0; i < 1200; i++ {
		c.Update()
	}
	s := c.Session()
	if s.Wave != 2 {
		t.Fatalf("Expected wave 2 at tick 1200, got %d", s.Wave)
	}
	if s.AntsPerWave != 4 || s.SpawnInterval != 50 || s.NextWaveDelay != 540 {
		t.Errorf("Unexpected wave 2 settings %+v", s)
	}
	// Four from wave 1, and wave 2 spawns on its first tick since the
	// spawn timer kept running through the break.
	if f.world.Ants.Len() != 5 {
		t.Errorf("Expected 5 ants, got %d", f.world.Ants.Len())
	}
	if f.events["WaveStarted"] != 1 {
		t.Errorf("Expected one WaveStarted event, got %d", f.events["WaveStarted"])
	}
}

// TestDifficultySampledPeriodically checks the difficulty only moves on the
// check interval, not every tick.
func TestDifficultySampledPeriodically(t *testing.T) {
	f := newFixture()
	c := f.controller()
	c.session.TotalAntsSpawned = 6
	interval := f.balance.Waves.DifficultyCheckInterval

	for i := 1; i < interval; i++ {
		c.Update()
	}
	if s := c.Session(); s.Difficulty != 1.0 || s.LastDifficultyCheck != 0 {
		t.Fatalf("Expected no check before tick %d, got difficulty %v at check %d", interval, s.Difficulty, s.LastDifficultyCheck)
	}

	c.Update()
	s := c.Session()
	if s.LastDifficultyCheck != uint64(interval) {
		t.Errorf("Expected the check at tick %d, got %d", interval, s.LastDifficultyCheck)
	}
	// Целый торт: 1.05 за время и ×1.1 за хорошую защиту.
	if math.Abs(s.Difficulty-1.155) > 1e-9 {
		t.Errorf("Expected difficulty 1.155, got %v", s.Difficulty)
	}

	for i := 1; i < interval; i++ {
		c.Update()
	}
	if got := c.Session().Difficulty; got != s.Difficulty {
		t.Errorf("Expected difficulty to hold until the next check, got %v", got)
	}
	c.Update()
	if got := c.Session(); math.Abs(got.Difficulty-1.21) > 1e-9 || got.LastDifficultyCheck != uint64(2*interval) {
		t.Errorf("Expected difficulty 1.21 at tick %d, got %v at check %d", 2*interval, got.Difficulty, got.LastDifficultyCheck)
	}
}

// TestCullFarthestEmptyHanded verifies the population cap culls ants far
// from the cake and spares carriers.
func TestCullFarthestEmptyHanded(t *testing.T) {
	f := newFixture()
	c := f.controller()
	c.cake.RemainingSlices = 1

	carrier := f.addAnt(defs.AntWorker, 30, 30)
	makeCarrier(carrier)
	var ants []*component.Ant
	for i := 0; i < 7; i++ {
		ants = append(ants, f.addAnt(defs.AntWorker, 700-float64(i)*80, 300))
	}

	c.Update()

	if live := f.world.LiveAnts(); live != 6 {
		t.Fatalf("Expected 6 live ants, got %d", live)
	}
	if !carrier.Alive() {
		t.Error("Expected the carrier to survive the cull")
	}
	if ants[6].Alive() || ants[5].Alive() {
		t.Error("Expected the two farthest ants to be culled")
	}
	if ants[6].Cause != component.CauseCulled || ants[6].JustDied {
		t.Error("Expected a culled ant without a kill flag")
	}
	if c.Session().Money != 125 {
		t.Errorf("Expected no reward for culled ants, got money %d", c.Session().Money)
	}
}

func TestAntReachedCake(t *testing.T) {
	f := newFixture()
	c := f.controller()
	ant := f.addAnt(defs.AntWorker, 720, 300)
	ant.ReachedCake = true

	if !c.OnAntReachedCake(ant) {
		t.Fatal("Expected the ant to take a slice")
	}
	if !ant.Returning() || !ant.Carrying || ant.ReachedCake {
		t.Error("Expected a returning carrier")
	}
	if ant.MaxHealth != 180 {
		t.Errorf("Expected boosted max health 180, got %d", ant.MaxHealth)
	}
	if c.Cake().RemainingSlices != 7 {
		t.Errorf("Expected 7 slices left, got %d", c.Cake().RemainingSlices)
	}
	if last := ant.Waypoints[len(ant.Waypoints)-1]; last.X != 50 || last.Y != 300 {
		t.Errorf("Expected return path to end at the anthill, got %+v", last)
	}

	c.cake.RemainingSlices = 0
	other := f.addAnt(defs.AntWorker, 720, 300)
	other.ReachedCake = true
	if c.OnAntReachedCake(other) {
		t.Error("Expected no slice from an empty plate")
	}
	if other.Returning() || other.ReachedCake || other.WaypointIndex != 0 {
		t.Error("Expected the ant to keep exploring on a fresh path")
	}
}

func TestKillRewardAndSliceReturn(t *testing.T) {
	f := newFixture()
	c := f.controller()
	ant := f.addAnt(defs.AntWorker, 400, 300)
	ant.ReachedCake = true
	c.OnAntReachedCake(ant)
	ant.TakeDamage(10000)

	if got := c.OnAntKilled(ant, 0); got != 7 {
		t.Errorf("Expected reward 7, got %d", got)
	}
	if got := c.OnAntKilled(ant, 0); got != 0 {
		t.Errorf("Expected no second reward, got %d", got)
	}
	s := c.Session()
	if s.Money != 132 || s.Score != 30 || s.AntsKilled != 1 {
		t.Errorf("Expected money 132, score 30, 1 kill; got %d, %d, %d", s.Money, s.Score, s.AntsKilled)
	}
	if c.Cake().RemainingSlices != 8 {
		t.Errorf("Expected the carried slice back, got %d", c.Cake().RemainingSlices)
	}
	if f.events["AntDied"] != 1 || f.events["MoneyEarned"] != 1 {
		t.Error("Expected one AntDied and one MoneyEarned event")
	}
}

// TestDeliveriesEndTheGame verifies game over fires once the whole cake is
// delivered and pausing is then impossible.
func TestDeliveriesEndTheGame(t *testing.T) {
	f := newFixture()
	c := f.controller()
	for i := 0; i < 8; i++ {
		ant := f.addAnt(defs.AntWorker, 720, 300)
		ant.ReachedCake = true
		if !c.OnAntReachedCake(ant) {
			t.Fatalf("Expected slice %d to be taken", i)
		}
		c.OnAntDelivered(ant)
		if ant.Alive() || ant.Cause != component.CauseDelivered {
			t.Fatal("Expected a delivered ant to leave the field")
		}
	}
	s := c.Session()
	if s.State != component.GameOver {
		t.Fatalf("Expected game over, got %v", s.State)
	}
	if s.GameOverReason != GameOverReason || s.Score != -800 {
		t.Errorf("Unexpected game over session %+v", s)
	}
	if f.events["GameOver"] != 1 {
		t.Errorf("Expected one GameOver event, got %d", f.events["GameOver"])
	}
	if c.TogglePause() {
		t.Error("Expected pause to be refused after game over")
	}
}

func TestTogglePause(t *testing.T) {
	f := newFixture()
	c := f.controller()
	if !c.TogglePause() || c.State() != component.Paused {
		t.Fatal("Expected to pause")
	}
	c.Update()
	if c.Session().Tick != 0 {
		t.Error("Expected no ticks while paused")
	}
	if !c.TogglePause() || c.State() != component.Playing {
		t.Fatal("Expected to resume")
	}
	if f.events["GamePaused"] != 1 || f.events["GameResumed"] != 1 {
		t.Error("Expected pause and resume events")
	}
}

func TestSpend(t *testing.T) {
	f := newFixture()
	c := f.controller()
	if c.Spend(200) {
		t.Error("Expected spending beyond the balance to fail")
	}
	if !c.Spend(125) || c.Session().Money != 0 {
		t.Error("Expected to spend everything")
	}
	c.Earn(10)
	if c.Session().Money != 10 {
		t.Errorf("Expected 10, got %d", c.Session().Money)
	}
}
