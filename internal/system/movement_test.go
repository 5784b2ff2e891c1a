package system

import (
	"math"
	"testing"

	"cake-defense/internal/component"
	"cake-defense/internal/defs"
)

func TestArrivalAtFinalWaypoint(t *testing.T) {
	f := newFixture()
	ms := NewMovementSystem(f.world, f.balance, f.rng, f.planner)
	ant := f.addAnt(defs.AntWorker, 718, 300)
	ant.SetPath([]component.Waypoint{{X: 720, Y: 300}})

	ms.Update()
	if !ant.ReachedCake {
		t.Fatal("Expected the ant to reach the cake")
	}
	if ant.WaypointIndex != 1 {
		t.Errorf("Expected index to stop at the path length, got %d", ant.WaypointIndex)
	}

	x, y := ant.X, ant.Y
	ms.Update()
	if ant.X != x || ant.Y != y {
		t.Error("Expected an arrived ant to wait for the arrival handler")
	}
}

func TestReturningAntIsNotFlaggedAtPathEnd(t *testing.T) {
	f := newFixture()
	ms := NewMovementSystem(f.world, f.balance, f.rng, f.planner)
	ant := f.addAnt(defs.AntWorker, 50, 300)
	makeCarrier(ant)
	ant.SetPath([]component.Waypoint{{X: 50, Y: 300}})

	ms.Update()
	if ant.ReachedCake {
		t.Error("Expected a returning ant never to be flagged as reaching the cake")
	}
	ms.Update()
	if ant.X != 50 || ant.Y != 300 {
		t.Error("Expected the ant to wait at the anthill")
	}
}

// TestStaysOnField verifies the margin clamp and bounded step length over a
// long walk.
func TestStaysOnField(t *testing.T) {
	f := newFixture()
	ms := NewMovementSystem(f.world, f.balance, f.rng, f.planner)
	ant := f.addAnt(defs.AntWorker, 50, 300)
	ant.SetPath(f.planner.Outbound())
	c := f.balance.Canvas
	maxStep := ant.BaseSpeed + f.balance.Steering.LateralJitter + 1e-9

	for i := 0; i < 2000 && !ant.ReachedCake; i++ {
		x, y := ant.X, ant.Y
		ms.Update()
		if ant.X < c.Margin || ant.X > c.Width-c.Margin || ant.Y < c.Margin || ant.Y > c.Height-c.Margin {
			t.Fatalf("Tick %d: ant left the field at (%f, %f)", i, ant.X, ant.Y)
		}
		if step := math.Hypot(ant.X-x, ant.Y-y); step > maxStep {
			t.Fatalf("Tick %d: step %f longer than %f", i, step, maxStep)
		}
	}
}

func TestHardCollisionTurnsAround(t *testing.T) {
	f := newFixture()
	ms := NewMovementSystem(f.world, f.balance, f.rng, f.planner)
	f.addTower(defs.TowerLight, 95, 300)
	ant := f.addAnt(defs.AntWorker, 80, 300)
	ant.SetPath([]component.Waypoint{{X: 700, Y: 300}})

	ms.Update()
	if ant.TurnAroundCooldown != f.balance.Steering.TurnAroundCooldown {
		t.Fatalf("Expected cooldown %d, got %d", f.balance.Steering.TurnAroundCooldown, ant.TurnAroundCooldown)
	}
	if len(ant.Waypoints) < 2 || ant.WaypointIndex != 0 {
		t.Errorf("Expected a fresh outbound path, got %d waypoints at %d", len(ant.Waypoints), ant.WaypointIndex)
	}

	ms.Update()
	if ant.TurnAroundCooldown != f.balance.Steering.TurnAroundCooldown-1 {
		t.Errorf("Expected cooldown to count down, got %d", ant.TurnAroundCooldown)
	}
}
