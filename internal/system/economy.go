// internal/system/economy.go
package system

import (
	"math"

	"cake-defense/internal/defs"
)

// Reward adjustment thresholds.
const (
	minRewardPenalty     = 0.7
	rewardPenaltyFactor  = 0.8
	struggleSlicesLost   = 3
	struggleSlicesBonus  = 0.15
	struggleHealthLoss   = 0.7
	struggleHealthBonus  = 0.1
	struggleMoney        = 75
	struggleTowers       = 2
	strugglePoorBonus    = 0.2
	dominanceKillRate    = 0.85
	dominanceWave        = 3
	dominanceKillPenalty = 0.8
	dominanceMoney       = 300
	dominanceRichPenalty = 0.85
)

// PerformanceMetrics describes how well the defender is doing.
type PerformanceMetrics struct {
	KillRate          float64
	SlicesLost        int
	AverageHealthLoss float64
	Wave              int
	TowerCount        int
	Money             int
}

// ComputeReward turns an ant's bounty into the money paid for killing it.
// It is pure: the same inputs always give the same reward.
func ComputeReward(rewardValue int, difficulty float64, m PerformanceMetrics) int {
	penalty := math.Max(minRewardPenalty, difficulty*rewardPenaltyFactor)

	bonus := 1.0
	if m.SlicesLost > struggleSlicesLost {
		bonus += struggleSlicesBonus
	}
	if m.AverageHealthLoss > struggleHealthLoss {
		bonus += struggleHealthBonus
	}
	if m.Money < struggleMoney && m.TowerCount < struggleTowers {
		bonus += strugglePoorBonus
	}

	dominance := 1.0
	if m.KillRate > dominanceKillRate && m.Wave > dominanceWave {
		dominance = dominanceKillPenalty
	}
	if m.Money > dominanceMoney && m.SlicesLost == 0 {
		dominance *= dominanceRichPenalty
	}

	base := float64(rewardValue) / penalty
	return max(1, int(math.Floor(base*bonus*dominance)))
}

// TowerPrice is the placement price of a tower kind given the current wave
// and number of towers already on the field.
func TowerPrice(def defs.TowerDefinition, econ defs.Economy, wave, towerCount int) int {
	waveTier := defs.TierFactor(econ.TowerWaveTiers, wave)
	densityTier := defs.TierFactor(econ.TowerDensityTiers, towerCount)
	return int(math.Floor(float64(def.BaseCost) * waveTier * densityTier))
}

// UpgradePrice is the price of raising a tower from level to level+1.
func UpgradePrice(baseCost, level int, rules defs.TowerScaling, econ defs.Economy, wave, towerCount int) int {
	waveTier := defs.TierFactor(econ.UpgradeWaveTiers, wave)
	densityTier := defs.TierFactor(econ.UpgradeDensity, towerCount)
	return int(math.Floor(float64(baseCost) * rules.UpgradeCostRatio * float64(level) * waveTier * densityTier))
}

// SellValue is the refund for selling a tower.
func SellValue(baseCost int, rules defs.TowerScaling) int {
	return int(math.Floor(float64(baseCost) * rules.SellRatio))
}
