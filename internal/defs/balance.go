// internal/defs/balance.go
package defs

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// Point is a fixed location on the playfield.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is the playfield rectangle. Moving entities are clamped to
// [Margin, Width-Margin] x [Margin, Height-Margin].
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Margin float64 `json:"margin"`
}

// Contains reports whether (x, y) lies on the playfield.
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x <= b.Width && y >= 0 && y <= b.Height
}

// StartingValues are the session values restored on every restart.
type StartingValues struct {
	Money      int `json:"money"`
	Score      int `json:"score"`
	CakeSlices int `json:"cake_slices"`
}

// Physics groups distances and speeds shared by the simulation.
type Physics struct {
	ProjectileSpeed     float64 `json:"projectile_speed"`
	SplashRadius        float64 `json:"splash_radius"`
	SplashFactor        float64 `json:"splash_factor"`
	HitRadius           float64 `json:"hit_radius"`
	AvoidanceRadius     float64 `json:"avoidance_radius"`
	HardCollisionRadius float64 `json:"hard_collision_radius"`
	AvoidanceDamping    float64 `json:"avoidance_damping"`
	WaypointThreshold   float64 `json:"waypoint_threshold"`
	DeliveryRadius      float64 `json:"delivery_radius"`
}

// Placement holds the tower placement rules.
type Placement struct {
	MinAnthillDistance float64 `json:"min_anthill_distance"`
	MinCakeDistance    float64 `json:"min_cake_distance"`
	MinTowerDistance   float64 `json:"min_tower_distance"`
	SelectRadius       float64 `json:"select_radius"`
}

// Balance is the complete, immutable-per-session game configuration.
type Balance struct {
	Canvas      Bounds         `json:"canvas"`
	Starting    StartingValues `json:"starting"`
	Anthill     Point          `json:"anthill"`
	Cake        Point          `json:"cake"`
	Towers      TowerTable     `json:"towers"`
	TowerRules  TowerScaling   `json:"tower_rules"`
	Ants        AntTable       `json:"ants"`
	AntRules    AntScaling     `json:"ant_rules"`
	Waves       WaveSettings   `json:"waves"`
	SpawnTables []SpawnTable   `json:"spawn_tables"`
	Physics     Physics        `json:"physics"`
	Placement   Placement      `json:"placement"`
	Steering    Steering       `json:"steering"`
	Paths       PathShape      `json:"paths"`
	Economy     Economy        `json:"economy"`
	Difficulty  Difficulty     `json:"difficulty"`
}

// DefaultBalance returns the stock balance sheet.
func DefaultBalance() *Balance {
	b := &Balance{
		Canvas:   Bounds{Width: 800, Height: 600, Margin: 20},
		Starting: StartingValues{Money: 125, Score: 0, CakeSlices: 8},
		Anthill:  Point{X: 50, Y: 300},
		Cake:     Point{X: 720, Y: 300},
		TowerRules: TowerScaling{
			MaxLevel:         3,
			RangePerLevel:    10,
			IntervalPerLevel: 5,
			MinFireInterval:  10,
			UpgradeCostRatio: 0.8,
			SellRatio:        0.7,
		},
		AntRules: AntScaling{
			WaveGrowth:        0.1,
			PowerReference:    80,
			PowerWeight:       0.4,
			ExpBase:           1.025,
			ExpDenseBonus:     0.002,
			DenseTowerCount:   20,
			ExpStartWave:      8,
			SpeedGrowth:       0.03,
			MaxSpeedFactor:    1.4,
			CarrySpeedFactor:  0.6,
			CarryHealthFactor: 1.8,
			CarryHealthBoost:  0.8,
		},
		Waves: WaveSettings{
			BaseAntsPerWave:         4,
			BaseSpawnInterval:       120,
			FirstWaveDelay:          1200,
			WaveDelay:               540,
			LowCakeWaveDelay:        450,
			FinalSliceWaveDelay:     360,
			MaxAntsPerWave:          35,
			MaxPopulation:           25,
			MinSpawnInterval:        10,
			DifficultyCheckInterval: 1800,
		},
		SpawnTables: []SpawnTable{
			{FromWave: 1, Entries: []SpawnEntry{{Kind: AntWorker, Weight: 100}}},
			{FromWave: 3, Entries: []SpawnEntry{{Kind: AntWorker, Weight: 70}, {Kind: AntSoldier, Weight: 30}}},
			{FromWave: 5, Entries: []SpawnEntry{{Kind: AntWorker, Weight: 50}, {Kind: AntSoldier, Weight: 30}, {Kind: AntQueen, Weight: 20}}},
		},
		Physics: Physics{
			ProjectileSpeed:     8,
			SplashRadius:        40,
			SplashFactor:        0.5,
			HitRadius:           10,
			AvoidanceRadius:     28,
			HardCollisionRadius: 21,
			AvoidanceDamping:    0.3,
			WaypointThreshold:   5,
			DeliveryRadius:      20,
		},
		Placement: Placement{
			MinAnthillDistance: 40,
			MinCakeDistance:    40,
			MinTowerDistance:   50,
			SelectRadius:       25,
		},
		Steering:   defaultSteering(),
		Paths:      defaultPathShape(),
		Economy:    defaultEconomy(),
		Difficulty: defaultDifficulty(),
	}

	b.Towers[TowerLight] = TowerDefinition{Name: "Cannon", BaseCost: 60, Damage: 30, Range: 100, FireInterval: 15, Color: color.RGBA{139, 69, 19, 255}}
	b.Towers[TowerRapid] = TowerDefinition{Name: "Machine Gun", BaseCost: 100, Damage: 15, Range: 80, FireInterval: 6, Color: color.RGBA{105, 105, 105, 255}}
	b.Towers[TowerHeavy] = TowerDefinition{Name: "Heavy Cannon", BaseCost: 150, Damage: 60, Range: 120, FireInterval: 30, Color: color.RGBA{47, 79, 79, 255}}
	b.Towers[TowerArea] = TowerDefinition{Name: "Splash Gun", BaseCost: 175, Damage: 25, Range: 90, FireInterval: 20, Color: color.RGBA{178, 34, 34, 255}}

	b.Ants[AntWorker] = AntDefinition{Health: 100, Speed: 1.8, Radius: 8, Reward: 6, Color: color.RGBA{139, 69, 19, 255}}
	b.Ants[AntSoldier] = AntDefinition{Health: 180, Speed: 1.6, Radius: 10, Reward: 9, Color: color.RGBA{101, 67, 33, 255}}
	b.Ants[AntQueen] = AntDefinition{Health: 300, Speed: 1.4, Radius: 12, Reward: 15, Color: color.RGBA{160, 82, 45, 255}}

	return b
}

// Clone returns a deep copy, so a session can never observe later edits.
func (b *Balance) Clone() *Balance {
	c := *b
	c.SpawnTables = make([]SpawnTable, len(b.SpawnTables))
	for i, table := range b.SpawnTables {
		c.SpawnTables[i] = SpawnTable{
			FromWave: table.FromWave,
			Entries:  append([]SpawnEntry(nil), table.Entries...),
		}
	}
	c.Economy.TowerWaveTiers = append([]PriceTier(nil), b.Economy.TowerWaveTiers...)
	c.Economy.TowerDensityTiers = append([]PriceTier(nil), b.Economy.TowerDensityTiers...)
	c.Economy.UpgradeWaveTiers = append([]PriceTier(nil), b.Economy.UpgradeWaveTiers...)
	c.Economy.UpgradeDensity = append([]PriceTier(nil), b.Economy.UpgradeDensity...)
	return &c
}

// Validate checks the sheet for values the simulation cannot run with.
func (b *Balance) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(b.Canvas.Width > 2*b.Canvas.Margin && b.Canvas.Height > 2*b.Canvas.Margin, "canvas %gx%g too small for margin %g", b.Canvas.Width, b.Canvas.Height, b.Canvas.Margin)
	check(b.Starting.CakeSlices > 0, "starting cake slices must be positive, got %d", b.Starting.CakeSlices)
	check(b.Starting.Money >= 0, "starting money must not be negative, got %d", b.Starting.Money)
	check(b.Canvas.Contains(b.Anthill.X, b.Anthill.Y), "anthill (%g,%g) outside canvas", b.Anthill.X, b.Anthill.Y)
	check(b.Canvas.Contains(b.Cake.X, b.Cake.Y), "cake (%g,%g) outside canvas", b.Cake.X, b.Cake.Y)

	for _, kind := range TowerKinds {
		def := b.Towers[kind]
		check(def.BaseCost > 0, "tower %s: base cost must be positive", kind)
		check(def.Damage > 0, "tower %s: damage must be positive", kind)
		check(def.Range > 0, "tower %s: range must be positive", kind)
		check(def.FireInterval > 0, "tower %s: fire interval must be positive", kind)
	}
	check(b.TowerRules.MaxLevel >= 1, "tower max level must be at least 1")
	check(b.TowerRules.MinFireInterval > 0, "tower min fire interval must be positive")

	for _, kind := range AntKinds {
		def := b.Ants[kind]
		check(def.Health > 0, "ant %s: health must be positive", kind)
		check(def.Speed > 0, "ant %s: speed must be positive", kind)
		check(def.Radius > 0, "ant %s: radius must be positive", kind)
		check(def.Reward >= 0, "ant %s: reward must not be negative", kind)
	}
	check(b.AntRules.CarryHealthFactor >= 1, "carry health factor must be at least 1")
	check(b.AntRules.CarrySpeedFactor > 0, "carry speed factor must be positive")

	check(b.Waves.BaseSpawnInterval > 0 && b.Waves.MinSpawnInterval > 0, "spawn intervals must be positive")
	check(b.Waves.DifficultyCheckInterval > 0, "difficulty check interval must be positive")
	check(b.Waves.MaxAntsPerWave > 0, "max ants per wave must be positive")
	check(b.Waves.MaxPopulation > 0, "max population must be positive")

	check(len(b.SpawnTables) > 0, "at least one spawn table is required")
	for i, table := range b.SpawnTables {
		if i > 0 {
			check(table.FromWave > b.SpawnTables[i-1].FromWave, "spawn table %d: from_wave must ascend", i)
		}
		for _, entry := range table.Entries {
			check(entry.Kind.Valid(), "spawn table %d: %v", i, ErrUnknownAntKind)
			check(entry.Weight >= 0, "spawn table %d: negative weight", i)
		}
	}

	tierLists := []struct {
		name  string
		tiers []PriceTier
	}{
		{"tower_wave_tiers", b.Economy.TowerWaveTiers},
		{"tower_density_tiers", b.Economy.TowerDensityTiers},
		{"upgrade_wave_tiers", b.Economy.UpgradeWaveTiers},
		{"upgrade_density_tiers", b.Economy.UpgradeDensity},
	}
	for _, list := range tierLists {
		for i, tier := range list.tiers {
			check(tier.Factor > 0, "%s %d: factor must be positive", list.name, i)
			if i > 0 {
				check(tier.From > list.tiers[i-1].From, "%s %d: from must ascend", list.name, i)
			}
		}
	}

	check(b.Physics.ProjectileSpeed > 0 && !math.IsInf(b.Physics.ProjectileSpeed, 0), "projectile speed must be positive")
	check(b.Physics.WaypointThreshold > 0, "waypoint threshold must be positive")
	check(b.Paths.OutboundMin >= 1 && b.Paths.OutboundExtra >= 0, "outbound path needs at least one waypoint")
	check(b.Paths.CarryExtra >= 0 && b.Paths.EmptyExtra >= 0, "path extras must not be negative")
	check(b.Difficulty.Min > 0 && b.Difficulty.Min <= b.Difficulty.Max, "difficulty band [%g, %g] is invalid", b.Difficulty.Min, b.Difficulty.Max)
	check(b.Difficulty.RampTicks > 0, "difficulty ramp ticks must be positive")

	return errors.Join(errs...)
}
