package system

import (
	"testing"

	"cake-defense/internal/component"
	"cake-defense/internal/defs"
)

func (f *fixture) shoot(kind defs.TowerKind, x, y float64, target *component.Ant, damage int) *component.Projectile {
	p := component.NewProjectile(f.world.NewEntity(), kind, x, y, target.X, target.Y,
		f.balance.Physics.ProjectileSpeed, damage, target.ID, 0)
	f.world.Projectiles.Add(p.ID, p)
	return p
}

// TestDamageAppliedOnce verifies a hit lands once even if the projectile
// keeps being updated.
func TestDamageAppliedOnce(t *testing.T) {
	f := newFixture()
	target := f.addAnt(defs.AntWorker, 150, 100)
	proj := f.shoot(defs.TowerLight, 100, 100, target, 30)
	ps := NewProjectileSystem(f.world, f.balance)

	for i := 0; i < 10; i++ {
		ps.Update()
	}
	if !proj.Dead || !proj.Hit {
		t.Error("Expected projectile to hit and die")
	}
	if target.Health != 70 {
		t.Errorf("Expected health 70, got %d", target.Health)
	}
}

func TestSplashDamage(t *testing.T) {
	f := newFixture()
	target := f.addAnt(defs.AntWorker, 150, 100)
	near := f.addAnt(defs.AntWorker, 150, 120)
	far := f.addAnt(defs.AntWorker, 300, 300)
	f.shoot(defs.TowerArea, 100, 100, target, 25)
	ps := NewProjectileSystem(f.world, f.balance)

	for i := 0; i < 10; i++ {
		ps.Update()
	}
	if target.Health != 75 {
		t.Errorf("Expected target health 75, got %d", target.Health)
	}
	if near.Health != 88 {
		t.Errorf("Expected splashed health 88, got %d", near.Health)
	}
	if far.Health != 100 {
		t.Errorf("Expected far ant untouched, got %d", far.Health)
	}
}

func TestNoSplashForSingleTargetKinds(t *testing.T) {
	f := newFixture()
	target := f.addAnt(defs.AntWorker, 150, 100)
	near := f.addAnt(defs.AntWorker, 150, 120)
	f.shoot(defs.TowerHeavy, 100, 100, target, 60)
	ps := NewProjectileSystem(f.world, f.balance)
	for i := 0; i < 10; i++ {
		ps.Update()
	}
	if near.Health != 100 {
		t.Errorf("Expected no splash from a heavy shot, got %d", near.Health)
	}
}

// TestShotAtDeadTargetFliesOff verifies no retargeting: the shot leaves the
// field without touching anyone.
func TestShotAtDeadTargetFliesOff(t *testing.T) {
	f := newFixture()
	target := f.addAnt(defs.AntWorker, 150, 100)
	bystander := f.addAnt(defs.AntWorker, 150, 100)
	proj := f.shoot(defs.TowerLight, 100, 100, target, 30)
	target.TakeDamage(1000)
	ps := NewProjectileSystem(f.world, f.balance)

	for i := 0; i < 200 && !proj.Dead; i++ {
		ps.Update()
	}
	if !proj.Dead || proj.Hit {
		t.Errorf("Expected the shot to leave the field unspent, dead=%v hit=%v", proj.Dead, proj.Hit)
	}
	if bystander.Health != 100 {
		t.Errorf("Expected bystander untouched, got %d", bystander.Health)
	}
	if proj.X <= f.balance.Canvas.Width {
		t.Errorf("Expected the shot past the right edge, got x=%f", proj.X)
	}
}

func TestPointBlankShotResolves(t *testing.T) {
	f := newFixture()
	target := f.addAnt(defs.AntWorker, 200, 200)
	proj := f.shoot(defs.TowerLight, 200, 200, target, 30)
	NewProjectileSystem(f.world, f.balance).Update()
	if !proj.Hit || target.Health != 70 {
		t.Errorf("Expected a point-blank hit, hit=%v health=%d", proj.Hit, target.Health)
	}
}
