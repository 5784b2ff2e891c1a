package entity

import (
	"testing"

	"cake-defense/internal/component"
	"cake-defense/internal/types"
)

type item struct {
	name string
	dead bool
}

func collect(a *Arena[item]) []string {
	var names []string
	a.Each(func(_ types.EntityID, it *item) bool {
		names = append(names, it.name)
		return true
	})
	return names
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TestArenaKeepsInsertionOrder verifies iteration order survives removals.
func TestArenaKeepsInsertionOrder(t *testing.T) {
	a := NewArena[item]()
	a.Add(1, &item{name: "a"})
	a.Add(2, &item{name: "b", dead: true})
	a.Add(3, &item{name: "c"})
	a.Add(4, &item{name: "d"})

	if removed := a.Sweep(func(it *item) bool { return it.dead }); removed != 1 {
		t.Errorf("Expected 1 removed, got %d", removed)
	}
	if got := collect(a); !equal(got, []string{"a", "c", "d"}) {
		t.Errorf("Expected [a c d], got %v", got)
	}
	if it, ok := a.Get(4); !ok || it.name != "d" {
		t.Error("Expected ID 4 to still resolve after the sweep")
	}
	if _, ok := a.Get(2); ok {
		t.Error("Expected swept ID to be gone")
	}

	if !a.Remove(1) {
		t.Error("Expected Remove to succeed")
	}
	if a.Remove(1) {
		t.Error("Expected second Remove to fail")
	}
	if got := collect(a); !equal(got, []string{"c", "d"}) {
		t.Errorf("Expected [c d], got %v", got)
	}
	if it, ok := a.Get(3); !ok || it.name != "c" {
		t.Error("Expected ID 3 to resolve after Remove")
	}
}

func TestArenaEachSkipsItemsAddedDuringWalk(t *testing.T) {
	a := NewArena[item]()
	a.Add(1, &item{name: "a"})
	a.Add(2, &item{name: "b"})

	visited := 0
	a.Each(func(id types.EntityID, _ *item) bool {
		visited++
		a.Add(id+10, &item{name: "new"})
		return true
	})
	if visited != 2 {
		t.Errorf("Expected 2 visits, got %d", visited)
	}
	if a.Len() != 4 {
		t.Errorf("Expected 4 items, got %d", a.Len())
	}
}

func TestArenaEachStops(t *testing.T) {
	a := NewArena[item]()
	for i := 1; i <= 5; i++ {
		a.Add(types.EntityID(i), &item{})
	}
	visited := 0
	a.Each(func(types.EntityID, *item) bool {
		visited++
		return visited < 2
	})
	if visited != 2 {
		t.Errorf("Expected walk to stop after 2, got %d", visited)
	}
}

func TestWorldPurgeAndReset(t *testing.T) {
	w := NewWorld()
	alive := component.NewAnt(w.NewEntity(), 0, 0, 0, component.AntStats{Health: 10}, 0, 0)
	dead := component.NewAnt(w.NewEntity(), 0, 0, 0, component.AntStats{Health: 10}, 0, 0)
	dead.TakeDamage(10)
	w.Ants.Add(alive.ID, alive)
	w.Ants.Add(dead.ID, dead)
	w.Projectiles.Add(w.NewEntity(), &component.Projectile{Dead: true})
	w.Particles.Add(w.NewEntity(), &component.Particle{Life: 3})

	if w.LiveAnts() != 1 {
		t.Errorf("Expected 1 live ant, got %d", w.LiveAnts())
	}
	ants, projectiles, particles := w.Purge()
	if ants != 1 || projectiles != 1 || particles != 0 {
		t.Errorf("Expected 1/1/0 purged, got %d/%d/%d", ants, projectiles, particles)
	}

	w.Reset()
	if w.Ants.Len() != 0 || w.Particles.Len() != 0 || w.NextID != 1 {
		t.Error("Expected an empty world after reset")
	}
}
