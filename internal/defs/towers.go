// internal/defs/towers.go
package defs

import (
	"encoding/json"
	"fmt"
	"image/color"
)

// TowerDefinition holds the level-1 stats for a tower kind.
type TowerDefinition struct {
	Name         string     `json:"name"`
	BaseCost     int        `json:"base_cost"`
	Damage       int        `json:"damage"`
	Range        float64    `json:"range"`
	FireInterval int        `json:"fire_interval"` // ticks between shots
	Color        color.RGBA `json:"color"`
}

// TowerScaling describes how upgrades change the derived stats.
type TowerScaling struct {
	MaxLevel         int     `json:"max_level"`
	RangePerLevel    float64 `json:"range_per_level"`
	IntervalPerLevel int     `json:"interval_per_level"`
	MinFireInterval  int     `json:"min_fire_interval"`
	UpgradeCostRatio float64 `json:"upgrade_cost_ratio"`
	SellRatio        float64 `json:"sell_ratio"`
}

// TowerTable is indexed by TowerKind, so every kind always has an entry.
type TowerTable [towerKindCount]TowerDefinition

// Get returns the definition for kind. An undeclared kind is a programming
// error and panics.
func (t *TowerTable) Get(kind TowerKind) TowerDefinition {
	if !kind.Valid() {
		panic(fmt.Sprintf("defs: tower definition for %v", kind))
	}
	return t[kind]
}

func (t TowerTable) MarshalJSON() ([]byte, error) {
	out := make(map[string]TowerDefinition, len(t))
	for _, kind := range TowerKinds {
		out[kind.String()] = t[kind]
	}
	return json.Marshal(out)
}

// UnmarshalJSON overlays the named entries onto the current table; kinds not
// mentioned keep their values. Unknown names are configuration errors.
func (t *TowerTable) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for name, body := range raw {
		kind, err := ParseTowerKind(name)
		if err != nil {
			return err
		}
		def := t[kind]
		if err := json.Unmarshal(body, &def); err != nil {
			return fmt.Errorf("tower %s: %w", kind, err)
		}
		t[kind] = def
	}
	return nil
}
