// component/tower.go
package component

import (
	"cake-defense/internal/defs"
	"cake-defense/internal/types"
)

// Tower is a stationary defender. Damage, Range and FireInterval are derived
// from Kind and Level and recomputed whenever the level changes.
type Tower struct {
	ID           types.EntityID
	Kind         defs.TowerKind
	X, Y         float64
	Level        int
	Damage       int
	Range        float64
	FireInterval int
	FireTimer    int            // ticks since the last shot
	Target       types.EntityID // this tick's target, looked up by ID
	Heading      float64        // barrel angle

	base  defs.TowerDefinition
	rules defs.TowerScaling
}

// NewTower creates a level-1 tower.
func NewTower(id types.EntityID, kind defs.TowerKind, x, y float64, def defs.TowerDefinition, rules defs.TowerScaling) *Tower {
	t := &Tower{
		ID:    id,
		Kind:  kind,
		X:     x,
		Y:     y,
		Level: 1,
		base:  def,
		rules: rules,
	}
	t.recompute()
	return t
}

// BaseCost is the level-1 price of this kind, used for upgrade and sell
// pricing.
func (t *Tower) BaseCost() int {
	return t.base.BaseCost
}

// Power is the strength figure used when scaling waves against the defence.
func (t *Tower) Power() int {
	return t.Damage * t.Level
}

func (t *Tower) CanUpgrade() bool {
	return t.Level < t.rules.MaxLevel
}

// Upgrade raises the level by one. At max level it does nothing and
// returns false.
func (t *Tower) Upgrade() bool {
	if !t.CanUpgrade() {
		return false
	}
	t.Level++
	t.recompute()
	return true
}

func (t *Tower) recompute() {
	t.Damage = t.base.Damage * t.Level
	t.Range = t.base.Range + float64(t.Level-1)*t.rules.RangePerLevel
	t.FireInterval = max(t.rules.MinFireInterval, t.base.FireInterval-(t.Level-1)*t.rules.IntervalPerLevel)
}
