package system

import (
	"testing"

	"cake-defense/internal/defs"
)

// TestComputeReward covers the neutral case (6 at difficulty 1.0 pays 7)
// and each adjustment.
func TestComputeReward(t *testing.T) {
	neutral := PerformanceMetrics{Money: 125, TowerCount: 2, Wave: 1}
	tests := []struct {
		name       string
		reward     int
		difficulty float64
		metrics    PerformanceMetrics
		want       int
	}{
		{"Neutral", 6, 1.0, neutral, 7},
		{"Penalty floor", 6, 0.5, neutral, 8},
		{"Struggling", 6, 1.0, PerformanceMetrics{Money: 50, TowerCount: 0, SlicesLost: 4, AverageHealthLoss: 0.8, Wave: 1}, 10},
		{"Dominating", 6, 1.0, PerformanceMetrics{Money: 400, TowerCount: 6, KillRate: 0.9, Wave: 5}, 5},
		{"Never below one", 0, 1.8, neutral, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeReward(tt.reward, tt.difficulty, tt.metrics); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestPrices(t *testing.T) {
	b := defs.DefaultBalance()
	light := b.Towers.Get(defs.TowerLight)

	if got := TowerPrice(light, b.Economy, 1, 0); got != 60 {
		t.Errorf("Expected 60, got %d", got)
	}
	if got := TowerPrice(light, b.Economy, 5, 3); got != 69 {
		t.Errorf("Expected 69, got %d", got)
	}
	if got := UpgradePrice(60, 1, b.TowerRules, b.Economy, 1, 1); got != 48 {
		t.Errorf("Expected 48, got %d", got)
	}
	if got := UpgradePrice(60, 2, b.TowerRules, b.Economy, 1, 1); got != 96 {
		t.Errorf("Expected 96, got %d", got)
	}
	if got := SellValue(100, b.TowerRules); got != 70 {
		t.Errorf("Expected 70, got %d", got)
	}
	if got := SellValue(175, b.TowerRules); got != 122 {
		t.Errorf("Expected 122, got %d", got)
	}
}
