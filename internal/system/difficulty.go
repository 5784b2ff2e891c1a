package system

import (
	"math"

	"cake-defense/internal/component"
	"cake-defense/internal/defs"
	"cake-defense/internal/utils"
)

// AdaptDifficulty recomputes the difficulty multiplier from elapsed ticks and
// the share of cake still on the plate. Until enough ants have spawned the
// multiplier stays neutral.
func AdaptDifficulty(d defs.Difficulty, tick uint64, spawned int, protection float64) float64 {
	if spawned <= d.MinSpawned {
		return 1.0
	}
	timeBased := 1.0 + float64(tick)/d.RampTicks*d.RampGain
	switch {
	case protection > d.HighProtection:
		timeBased *= d.HighFactor
	case protection < d.LowProtection:
		timeBased *= d.LowFactor
	}
	return utils.Clamp(timeBased, d.Min, d.Max)
}

// StrengthMultiplier combines linear wave growth, a defence-power term and a
// late exponential term. The curve is a set of tunables rather than a law.
func StrengthMultiplier(rules defs.AntScaling, wave int, avgTowerPower float64, towerCount int) float64 {
	linear := 1 + float64(wave-1)*rules.WaveGrowth
	power := 1 + math.Sqrt(math.Max(0, avgTowerPower)/rules.PowerReference)*rules.PowerWeight

	base := rules.ExpBase
	if towerCount > rules.DenseTowerCount {
		base += rules.ExpDenseBonus
	}
	exponential := math.Pow(base, float64(max(0, wave-rules.ExpStartWave)))

	return linear * power * exponential
}

// ScaleAnt applies wave, defence and difficulty scaling to a base definition.
func ScaleAnt(def defs.AntDefinition, rules defs.AntScaling, wave int, difficulty, avgTowerPower float64, towerCount int) component.AntStats {
	strength := StrengthMultiplier(rules, wave, avgTowerPower, towerCount)
	speedFactor := math.Min(rules.MaxSpeedFactor, 1+float64(wave-1)*rules.SpeedGrowth)
	return component.AntStats{
		Health: max(1, int(math.Floor(float64(def.Health)*strength*math.Sqrt(difficulty)))),
		Speed:  def.Speed * speedFactor,
		Radius: def.Radius,
		Reward: int(math.Floor(float64(def.Reward) * strength)),
	}
}
