package component

import (
	"math"
	"testing"

	"cake-defense/internal/defs"
)

func newWorker() *Ant {
	return NewAnt(1, defs.AntWorker, 0, 0, AntStats{Health: 100, Speed: 1.8, Radius: 8, Reward: 6}, 0, 0)
}

// TestAntDeathIsReportedOnce verifies a kill is reported by exactly one hit.
func TestAntDeathIsReportedOnce(t *testing.T) {
	ant := newWorker()
	if ant.TakeDamage(40) {
		t.Error("Expected ant to survive 40 damage")
	}
	if ant.Health != 60 {
		t.Errorf("Expected health 60, got %d", ant.Health)
	}
	if !ant.TakeDamage(60) {
		t.Error("Expected the second hit to kill")
	}
	if ant.Alive() || !ant.JustDied || ant.Cause != CauseKilled {
		t.Errorf("Expected a killed ant, got state=%v justDied=%v cause=%v", ant.State, ant.JustDied, ant.Cause)
	}
	if ant.TakeDamage(10) {
		t.Error("Expected hits on a dead ant to be ignored")
	}
	if ant.Health != 0 {
		t.Errorf("Expected health to stay 0, got %d", ant.Health)
	}

	if !ant.MarkRewarded() {
		t.Error("Expected first MarkRewarded to succeed")
	}
	if ant.MarkRewarded() {
		t.Error("Expected second MarkRewarded to fail")
	}
}

func TestAntStartReturning(t *testing.T) {
	ant := newWorker()
	ant.TakeDamage(50)
	ant.StartReturning(defs.DefaultBalance().AntRules)

	if !ant.Returning() || !ant.Carrying {
		t.Fatal("Expected a returning carrier")
	}
	if ant.MaxHealth != 180 {
		t.Errorf("Expected max health 180, got %d", ant.MaxHealth)
	}
	if ant.Health != 130 {
		t.Errorf("Expected health 130, got %d", ant.Health)
	}
	if ant.Phase() != PhaseDelivering {
		t.Errorf("Expected delivering phase, got %v", ant.Phase())
	}
	if got := ant.Speed(0.6); math.Abs(got-1.08) > 1e-9 {
		t.Errorf("Expected carrier speed %f, got %f", 1.8*0.6, got)
	}
}

func TestAntWaypointIndexStaysInRange(t *testing.T) {
	ant := newWorker()
	ant.SetPath([]Waypoint{{X: 1, Y: 1}, {X: 2, Y: 2}})

	if ant.AdvanceWaypoint() {
		t.Error("Expected one waypoint left")
	}
	if !ant.AdvanceWaypoint() {
		t.Error("Expected path to be exhausted")
	}
	if !ant.AdvanceWaypoint() || ant.WaypointIndex != 2 {
		t.Errorf("Expected index to stop at 2, got %d", ant.WaypointIndex)
	}
	if _, ok := ant.CurrentWaypoint(); ok {
		t.Error("Expected no current waypoint")
	}
}

// TestTowerUpgrade verifies derived stats per level and the max level guard.
func TestTowerUpgrade(t *testing.T) {
	b := defs.DefaultBalance()
	tower := NewTower(1, defs.TowerLight, 0, 0, b.Towers.Get(defs.TowerLight), b.TowerRules)

	tests := []struct {
		level    int
		damage   int
		rng      float64
		interval int
	}{
		{1, 30, 100, 15},
		{2, 60, 110, 10},
		{3, 90, 120, 10},
	}
	for i, tt := range tests {
		if i > 0 && !tower.Upgrade() {
			t.Fatalf("Expected upgrade to level %d", tt.level)
		}
		if tower.Level != tt.level || tower.Damage != tt.damage || tower.Range != tt.rng || tower.FireInterval != tt.interval {
			t.Errorf("Level %d: expected %d/%.0f/%d, got %d/%.0f/%d",
				tt.level, tt.damage, tt.rng, tt.interval, tower.Damage, tower.Range, tower.FireInterval)
		}
	}

	if tower.CanUpgrade() || tower.Upgrade() {
		t.Error("Expected level 3 tower to refuse upgrades")
	}
	if tower.Level != 3 || tower.Damage != 90 {
		t.Errorf("Expected stats unchanged, got level %d damage %d", tower.Level, tower.Damage)
	}
}

func TestCakeSlices(t *testing.T) {
	cake := NewCake(0, 0, 2)
	if !cake.TakeSlice() || !cake.TakeSlice() {
		t.Fatal("Expected two slices to be taken")
	}
	if cake.TakeSlice() {
		t.Error("Expected an empty plate")
	}
	if len(cake.SliceAngles) != 0 {
		t.Errorf("Expected no slice angles, got %d", len(cake.SliceAngles))
	}
	if !cake.ReturnSlice() || cake.RemainingSlices != 1 || len(cake.SliceAngles) != 1 {
		t.Errorf("Expected a slice back on the plate, got %d", cake.RemainingSlices)
	}
	if cake.ProtectionRate() != 0.5 {
		t.Errorf("Expected protection 0.5, got %f", cake.ProtectionRate())
	}
	if cake.DeliverSlice() {
		t.Error("Expected one delivery to leave the game running")
	}
	if !cake.DeliverSlice() {
		t.Error("Expected the second delivery to finish the cake")
	}
	cake.DeliverSlice()
	if cake.SlicesDelivered != 2 {
		t.Errorf("Expected deliveries capped at 2, got %d", cake.SlicesDelivered)
	}
}

func TestProjectileAim(t *testing.T) {
	p := NewProjectile(1, defs.TowerLight, 0, 0, 30, 40, 8, 30, 2, 3)
	if p.VX != 8*0.6 || p.VY != 8*0.8 {
		t.Errorf("Expected velocity (4.8, 6.4), got (%f, %f)", p.VX, p.VY)
	}
	still := NewProjectile(2, defs.TowerLight, 5, 5, 5, 5, 8, 30, 2, 3)
	if still.VX != 0 || still.VY != 0 {
		t.Errorf("Expected zero velocity, got (%f, %f)", still.VX, still.VY)
	}
}

func TestSessionKillRate(t *testing.T) {
	s := Session{}
	if s.KillRate() != 0 {
		t.Error("Expected zero kill rate without encounters")
	}
	s.AntsKilled, s.AntsReachedCake = 3, 1
	if s.KillRate() != 0.75 {
		t.Errorf("Expected 0.75, got %f", s.KillRate())
	}
}
