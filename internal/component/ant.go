// internal/component/ant.go
package component

import (
	"cake-defense/internal/defs"
	"cake-defense/internal/types"
)

// AntState is the behavioural state of an ant.
type AntState int

const (
	AntExploring AntState = iota // outbound, looking for the cake
	AntReturning                 // heading back to the anthill
	AntDead
)

// AntPhase is the display phase: returning ants are split by whether they
// carry a slice.
type AntPhase int

const (
	PhaseExploring AntPhase = iota
	PhaseDelivering
	PhaseReturning
	PhaseDead
)

func (p AntPhase) String() string {
	switch p {
	case PhaseExploring:
		return "exploring"
	case PhaseDelivering:
		return "delivering"
	case PhaseReturning:
		return "returning"
	case PhaseDead:
		return "dead"
	}
	return "unknown"
}

// DeathCause records how an ant left the field. Only killed ants are
// rewarded.
type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseKilled
	CauseDelivered
	CauseCulled
)

// Waypoint is one steering goal.
type Waypoint struct {
	X, Y float64
}

// AntStats are the creation-time stats after wave and difficulty scaling.
type AntStats struct {
	Health int
	Speed  float64
	Radius float64
	Reward int
}

// Ant is one attacker.
type Ant struct {
	ID        types.EntityID
	Kind      defs.AntKind
	X, Y      float64
	Health    int
	MaxHealth int
	BaseSpeed float64
	Radius    float64
	// RewardValue is the pre-economy bounty, fixed at spawn.
	RewardValue int
	State       AntState
	Carrying    bool
	ReachedCake bool
	JustDied    bool
	Rewarded    bool
	Cause       DeathCause

	Waypoints     []Waypoint
	WaypointIndex int

	WanderAngle        float64
	WanderTimer        int
	TurnAroundCooldown int
	// Heading is the angle of the last movement vector.
	Heading   float64
	SpawnTick uint64
}

// NewAnt creates an exploring ant at (x, y).
func NewAnt(id types.EntityID, kind defs.AntKind, x, y float64, stats AntStats, wanderAngle float64, tick uint64) *Ant {
	return &Ant{
		ID:          id,
		Kind:        kind,
		X:           x,
		Y:           y,
		Health:      stats.Health,
		MaxHealth:   stats.Health,
		BaseSpeed:   stats.Speed,
		Radius:      stats.Radius,
		RewardValue: stats.Reward,
		State:       AntExploring,
		WanderAngle: wanderAngle,
		SpawnTick:   tick,
	}
}

func (a *Ant) Alive() bool {
	return a.State != AntDead
}

func (a *Ant) Returning() bool {
	return a.State == AntReturning
}

// Phase folds State and Carrying into the four display phases.
func (a *Ant) Phase() AntPhase {
	switch {
	case a.State == AntDead:
		return PhaseDead
	case a.State == AntReturning && a.Carrying:
		return PhaseDelivering
	case a.State == AntReturning:
		return PhaseReturning
	}
	return PhaseExploring
}

// Speed is the current movement speed; carriers are slowed.
func (a *Ant) Speed(carryFactor float64) float64 {
	if a.Carrying {
		return a.BaseSpeed * carryFactor
	}
	return a.BaseSpeed
}

// HealthRatio is Health/MaxHealth in [0, 1].
func (a *Ant) HealthRatio() float64 {
	if a.MaxHealth <= 0 || a.Health <= 0 {
		return 0
	}
	return float64(a.Health) / float64(a.MaxHealth)
}

// SetPath replaces the waypoint list and restarts it.
func (a *Ant) SetPath(waypoints []Waypoint) {
	a.Waypoints = waypoints
	a.WaypointIndex = 0
}

// CurrentWaypoint returns the active waypoint, or false when the path is
// exhausted.
func (a *Ant) CurrentWaypoint() (Waypoint, bool) {
	if a.WaypointIndex < 0 || a.WaypointIndex >= len(a.Waypoints) {
		return Waypoint{}, false
	}
	return a.Waypoints[a.WaypointIndex], true
}

// AdvanceWaypoint moves to the next waypoint and reports whether the path
// is now exhausted. The index never passes len(Waypoints).
func (a *Ant) AdvanceWaypoint() (exhausted bool) {
	if a.WaypointIndex < len(a.Waypoints) {
		a.WaypointIndex++
	}
	return a.WaypointIndex >= len(a.Waypoints)
}

// TakeDamage subtracts amount and reports whether this hit killed the ant.
// Hits on a dead ant are ignored, so death is reported once.
func (a *Ant) TakeDamage(amount int) bool {
	if a.State == AntDead || amount <= 0 {
		return false
	}
	a.Health -= amount
	if a.Health <= 0 {
		a.die(CauseKilled)
		a.JustDied = true
		return true
	}
	return false
}

// StartReturning turns an ant that reached the cake into a carrier and
// applies the one-time carrier health boost.
func (a *Ant) StartReturning(rules defs.AntScaling) {
	a.State = AntReturning
	a.Carrying = true
	a.ReachedCake = false

	boosted := int(float64(a.MaxHealth) * rules.CarryHealthFactor)
	protection := int(float64(a.MaxHealth) * rules.CarryHealthBoost)
	a.Health = min(boosted, a.Health+protection)
	a.MaxHealth = boosted
}

// ResumeExploring sends an empty-handed ant back out towards the cake.
func (a *Ant) ResumeExploring() {
	a.State = AntExploring
	a.ReachedCake = false
}

// Delivered removes the ant after it dropped its slice at the anthill.
func (a *Ant) Delivered() {
	a.Carrying = false
	a.die(CauseDelivered)
}

// Cull removes the ant without a reward.
func (a *Ant) Cull() {
	a.die(CauseCulled)
}

// MarkRewarded flips Rewarded for a killed ant exactly once and reports
// whether the caller should pay out.
func (a *Ant) MarkRewarded() bool {
	if !a.JustDied || a.Rewarded {
		return false
	}
	a.Rewarded = true
	return true
}

func (a *Ant) die(cause DeathCause) {
	a.State = AntDead
	a.Cause = cause
}
