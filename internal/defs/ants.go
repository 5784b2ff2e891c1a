// internal/defs/ants.go
package defs

import (
	"encoding/json"
	"fmt"
	"image/color"
)

// AntDefinition holds the wave-1 stats for an ant kind.
type AntDefinition struct {
	Health int        `json:"health"`
	Speed  float64    `json:"speed"`
	Radius float64    `json:"radius"`
	Reward int        `json:"reward"`
	Color  color.RGBA `json:"color"`
}

// AntScaling holds the strength curve applied at spawn time. The values were
// tuned by play-testing; treat them as knobs rather than a derived law.
type AntScaling struct {
	WaveGrowth        float64 `json:"wave_growth"`
	PowerReference    float64 `json:"power_reference"`
	PowerWeight       float64 `json:"power_weight"`
	ExpBase           float64 `json:"exp_base"`
	ExpDenseBonus     float64 `json:"exp_dense_bonus"`
	DenseTowerCount   int     `json:"dense_tower_count"`
	ExpStartWave      int     `json:"exp_start_wave"`
	SpeedGrowth       float64 `json:"speed_growth"`
	MaxSpeedFactor    float64 `json:"max_speed_factor"`
	CarrySpeedFactor  float64 `json:"carry_speed_factor"`
	CarryHealthFactor float64 `json:"carry_health_factor"`
	CarryHealthBoost  float64 `json:"carry_health_boost"`
}

// AntTable is indexed by AntKind.
type AntTable [antKindCount]AntDefinition

// Get returns the definition for kind and panics on an undeclared kind.
func (t *AntTable) Get(kind AntKind) AntDefinition {
	if !kind.Valid() {
		panic(fmt.Sprintf("defs: ant definition for %v", kind))
	}
	return t[kind]
}

func (t AntTable) MarshalJSON() ([]byte, error) {
	out := make(map[string]AntDefinition, len(t))
	for _, kind := range AntKinds {
		out[kind.String()] = t[kind]
	}
	return json.Marshal(out)
}

func (t *AntTable) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for name, body := range raw {
		kind, err := ParseAntKind(name)
		if err != nil {
			return err
		}
		def := t[kind]
		if err := json.Unmarshal(body, &def); err != nil {
			return fmt.Errorf("ant %s: %w", kind, err)
		}
		t[kind] = def
	}
	return nil
}
