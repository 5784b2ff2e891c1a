package defs

// PriceTier applies Factor once the watched value reaches From.
type PriceTier struct {
	From   int     `json:"from"`
	Factor float64 `json:"factor"`
}

// TierFactor returns the factor of the highest tier reached by value, or 1.
// Tiers ascend by From; Validate enforces it.
func TierFactor(tiers []PriceTier, value int) float64 {
	factor := 1.0
	for _, tier := range tiers {
		if value >= tier.From {
			factor = tier.Factor
		}
	}
	return factor
}

// Economy holds reward and pricing constants.
type Economy struct {
	ScorePerReward    int         `json:"score_per_reward"`
	DeliveryPenalty   int         `json:"delivery_penalty"`
	KillParticles     int         `json:"kill_particles"`
	TowerWaveTiers    []PriceTier `json:"tower_wave_tiers"`
	TowerDensityTiers []PriceTier `json:"tower_density_tiers"`
	UpgradeWaveTiers  []PriceTier `json:"upgrade_wave_tiers"`
	UpgradeDensity    []PriceTier `json:"upgrade_density_tiers"`
}

// Difficulty holds the adaptive difficulty band.
type Difficulty struct {
	RampTicks      float64 `json:"ramp_ticks"`
	RampGain       float64 `json:"ramp_gain"`
	MinSpawned     int     `json:"min_spawned"`
	HighProtection float64 `json:"high_protection"`
	LowProtection  float64 `json:"low_protection"`
	HighFactor     float64 `json:"high_factor"`
	LowFactor      float64 `json:"low_factor"`
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
}

func defaultEconomy() Economy {
	return Economy{
		ScorePerReward:  5,
		DeliveryPenalty: 100,
		KillParticles:   5,
		TowerWaveTiers: []PriceTier{
			{From: 5, Factor: 1.1}, {From: 10, Factor: 1.3}, {From: 15, Factor: 1.5}, {From: 20, Factor: 1.8},
		},
		TowerDensityTiers: []PriceTier{
			{From: 3, Factor: 1.05}, {From: 5, Factor: 1.15}, {From: 8, Factor: 1.25}, {From: 12, Factor: 1.4},
		},
		UpgradeWaveTiers: []PriceTier{
			{From: 10, Factor: 1.1}, {From: 15, Factor: 1.25}, {From: 20, Factor: 1.4}, {From: 25, Factor: 1.6},
		},
		UpgradeDensity: []PriceTier{
			{From: 3, Factor: 1.1}, {From: 6, Factor: 1.2}, {From: 10, Factor: 1.3},
		},
	}
}

func defaultDifficulty() Difficulty {
	return Difficulty{
		RampTicks:      18000,
		RampGain:       0.5,
		MinSpawned:     5,
		HighProtection: 0.75,
		LowProtection:  0.5,
		HighFactor:     1.1,
		LowFactor:      0.9,
		Min:            0.8,
		Max:            1.8,
	}
}
