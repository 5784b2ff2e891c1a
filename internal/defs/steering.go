package defs

import "math"

// Steering holds the per-ant wandering and avoidance knobs.
type Steering struct {
	WanderMinTicks     int     `json:"wander_min_ticks"`
	WanderRandomTicks  float64 `json:"wander_random_ticks"`
	SharpTurnChance    float64 `json:"sharp_turn_chance"`
	SharpTurn          float64 `json:"sharp_turn"` // full width of the random turn
	SmallTurn          float64 `json:"small_turn"`
	WanderEasing       float64 `json:"wander_easing"`
	GoalWeight         float64 `json:"goal_weight"`
	WanderWeight       float64 `json:"wander_weight"`
	LateralJitter      float64 `json:"lateral_jitter"`
	TurnAroundCooldown int     `json:"turn_around_cooldown"`
	TurnAroundSpread   float64 `json:"turn_around_spread"`
}

// PathShape controls waypoint generation.
type PathShape struct {
	OutboundMin       int     `json:"outbound_min"`
	OutboundExtra     int     `json:"outbound_extra"` // up to this many more
	ScatterInset      float64 `json:"scatter_inset"`
	DetourMinDistance float64 `json:"detour_min_distance"`
	DetourRange       float64 `json:"detour_range"`
	FinalApproach     float64 `json:"final_approach"` // weight of the cake in the last waypoint
	CarryMin          int     `json:"carry_min"`
	CarryExtra        int     `json:"carry_extra"`
	CarryDeviation    float64 `json:"carry_deviation"`
	CarryDeviationDec float64 `json:"carry_deviation_dec"`
	EmptyMin          int     `json:"empty_min"`
	EmptyExtra        int     `json:"empty_extra"`
	EmptyScatterX     float64 `json:"empty_scatter_x"`
	EmptyScatterY     float64 `json:"empty_scatter_y"`
}

func defaultSteering() Steering {
	return Steering{
		WanderMinTicks:     20,
		WanderRandomTicks:  40,
		SharpTurnChance:    0.2,
		SharpTurn:          math.Pi / 2,
		SmallTurn:          0.5,
		WanderEasing:       0.03,
		GoalWeight:         0.7,
		WanderWeight:       0.5,
		LateralJitter:      0.6,
		TurnAroundCooldown: 45,
		TurnAroundSpread:   math.Pi / 3,
	}
}

func defaultPathShape() PathShape {
	return PathShape{
		OutboundMin:       3,
		OutboundExtra:     2,
		ScatterInset:      100,
		DetourMinDistance: 150,
		DetourRange:       200,
		FinalApproach:     0.7,
		CarryMin:          2,
		CarryExtra:        1,
		CarryDeviation:    120,
		CarryDeviationDec: 25,
		EmptyMin:          1,
		EmptyExtra:        1,
		EmptyScatterX:     300,
		EmptyScatterY:     200,
	}
}
