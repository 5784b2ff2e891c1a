// internal/system/wave.go
package system

import (
	"log"
	"math"
	"sort"

	"cake-defense/internal/component"
	"cake-defense/internal/defs"
	"cake-defense/internal/entity"
	"cake-defense/internal/event"
	"cake-defense/internal/types"
	"cake-defense/internal/utils"
)

const (
	GameOverReason  = "Cake Stolen!"
	GameOverMessage = "The ants delivered all the cake slices to their anthill!"
)

// WaveController owns the session: money, score, the cake and every wave
// and difficulty counter. Other systems and the frontends only change this
// state through its methods.
type WaveController struct {
	world           *entity.World
	balance         *defs.Balance
	rng             *utils.PRNGService
	planner         *PathPlanner
	eventDispatcher *event.Dispatcher

	session component.Session
	cake    *component.Cake
}

func NewWaveController(world *entity.World, balance *defs.Balance, rng *utils.PRNGService, planner *PathPlanner, eventDispatcher *event.Dispatcher) *WaveController {
	c := &WaveController{
		world:           world,
		balance:         balance,
		rng:             rng,
		planner:         planner,
		eventDispatcher: eventDispatcher,
	}
	c.Reset()
	return c
}

// Reset restores the starting session values. Entities are not touched.
func (c *WaveController) Reset() {
	start := c.balance.Starting
	c.session = component.Session{
		State:         component.Playing,
		Money:         start.Money,
		Score:         start.Score,
		Wave:          1,
		AntsPerWave:   c.balance.Waves.BaseAntsPerWave,
		SpawnInterval: c.balance.Waves.BaseSpawnInterval,
		NextWaveDelay: c.balance.Waves.FirstWaveDelay,
		Difficulty:    1.0,
	}
	c.cake = component.NewCake(c.balance.Cake.X, c.balance.Cake.Y, start.CakeSlices)
}

// Update advances the controller by one tick: wave escalation, spawning,
// population culling and the periodic difficulty check.
func (c *WaveController) Update() {
	s := &c.session
	if s.State != component.Playing {
		return
	}
	s.Tick++
	s.SpawnTimer++

	if int(s.Tick-s.WaveStartTick) >= s.NextWaveDelay && c.cake.RemainingSlices > 0 {
		c.startNextWave()
	}

	limit := c.PopulationCap()
	quota := min(s.AntsPerWave, limit)
	active := c.world.LiveAnts()
	if s.SpawnTimer >= s.SpawnInterval && s.AntsInWave < quota && active < limit {
		c.spawnAnt()
		s.AntsInWave++
		s.SpawnTimer = 0
		active++
	}
	if active > limit {
		c.cull(active - limit)
	}

	if s.Tick-s.LastDifficultyCheck >= uint64(c.balance.Waves.DifficultyCheckInterval) {
		s.LastDifficultyCheck = s.Tick
		s.Difficulty = AdaptDifficulty(c.balance.Difficulty, s.Tick, s.TotalAntsSpawned, c.cake.ProtectionRate())
	}
}

// PopulationCap is the most live ants allowed for the cake left.
func (c *WaveController) PopulationCap() int {
	return PopulationCap(c.cake.RemainingSlices, c.balance.Waves.MaxPopulation)
}

// PopulationCap tightens as slices disappear so the last slices are not
// rushed by an unlimited swarm.
func PopulationCap(remaining, maxPopulation int) int {
	switch {
	case remaining <= 1:
		return 6
	case remaining <= 2:
		return 9
	case remaining <= 3:
		return 12
	case remaining <= 4:
		return 15
	}
	return min(maxPopulation, int(math.Floor(float64(remaining)*2.5+4)))
}

// WaveQuota is the number of ants a wave tries to spawn.
func WaveQuota(w defs.WaveSettings, wave int, avgTowerPower float64, towerCount int) int {
	fw := float64(wave)
	base := math.Floor(float64(w.BaseAntsPerWave) + fw*0.4 + math.Pow(math.Max(0, fw-3)/15, 1.3))
	defence := math.Floor(math.Sqrt(math.Max(0, avgTowerPower)/40)) + math.Floor(0.4*float64(towerCount))
	late := math.Floor(math.Pow(1.03, math.Max(0, fw-10)) - 1)
	return min(w.MaxAntsPerWave, int(base+defence+late))
}

// SpawnInterval is the number of ticks between spawns in a wave.
func SpawnInterval(w defs.WaveSettings, wave int) int {
	rate := float64(60-2*wave) * math.Pow(0.95, float64(wave))
	return max(w.MinSpawnInterval, int(math.Floor(rate)))
}

// WaveDelay shortens the pause between waves as the cake runs out.
func WaveDelay(w defs.WaveSettings, remaining int) int {
	switch {
	case remaining <= 1:
		return w.FinalSliceWaveDelay
	case remaining <= 3:
		return w.LowCakeWaveDelay
	}
	return w.WaveDelay
}

func (c *WaveController) startNextWave() {
	s := &c.session
	s.Wave++
	s.AntsInWave = 0
	s.WaveStartTick = s.Tick

	avgPower, towers := c.towerPower()
	s.AntsPerWave = WaveQuota(c.balance.Waves, s.Wave, avgPower, towers)
	s.SpawnInterval = SpawnInterval(c.balance.Waves, s.Wave)
	s.NextWaveDelay = WaveDelay(c.balance.Waves, c.cake.RemainingSlices)

	log.Printf("WaveController: wave %d started (%d ants, every %d ticks)", s.Wave, s.AntsPerWave, s.SpawnInterval)
	c.eventDispatcher.Emit(event.WaveStarted, event.WaveData{
		Wave:          s.Wave,
		AntsPerWave:   s.AntsPerWave,
		SpawnInterval: s.SpawnInterval,
	})
}

func (c *WaveController) spawnAnt() {
	s := &c.session
	kind := c.rng.ChooseWeighted(defs.SpawnTableFor(c.balance.SpawnTables, s.Wave))
	avgPower, towers := c.towerPower()
	stats := ScaleAnt(c.balance.Ants.Get(kind), c.balance.AntRules, s.Wave, s.Difficulty, avgPower, towers)

	id := c.world.NewEntity()
	home := c.balance.Anthill
	ant := component.NewAnt(id, kind, home.X, home.Y, stats, c.rng.Float64()*2*math.Pi, s.Tick)
	ant.SetPath(c.planner.Outbound())
	c.world.Ants.Add(id, ant)
	s.TotalAntsSpawned++

	c.eventDispatcher.Emit(event.AntSpawned, antData(ant, 0))
}

// cull removes up to n empty-handed ants, farthest from the cake first and
// oldest first among equals. Culled ants pay nothing.
func (c *WaveController) cull(n int) {
	var candidates []*component.Ant
	c.world.Ants.Each(func(_ types.EntityID, ant *component.Ant) bool {
		if ant.Alive() && !ant.Carrying {
			candidates = append(candidates, ant)
		}
		return true
	})
	cx, cy := c.cake.X, c.cake.Y
	sort.SliceStable(candidates, func(i, j int) bool {
		di := utils.Distance(candidates[i].X, candidates[i].Y, cx, cy)
		dj := utils.Distance(candidates[j].X, candidates[j].Y, cx, cy)
		if di != dj {
			return di > dj
		}
		return candidates[i].SpawnTick < candidates[j].SpawnTick
	})
	for i := 0; i < n && i < len(candidates); i++ {
		candidates[i].Cull()
	}
}

// towerPower returns the mean damage×level over placed towers and their count.
func (c *WaveController) towerPower() (float64, int) {
	total, n := 0, 0
	c.world.Towers.Each(func(_ types.EntityID, t *component.Tower) bool {
		total += t.Power()
		n++
		return true
	})
	if n == 0 {
		return 0, 0
	}
	return float64(total) / float64(n), n
}

// OnAntReachedCake hands a slice to an ant that finished its outbound path.
// With no slices left the ant is sent exploring again.
func (c *WaveController) OnAntReachedCake(ant *component.Ant) bool {
	ant.ReachedCake = false
	if !ant.Alive() || ant.Returning() {
		return false
	}
	if !c.cake.TakeSlice() {
		ant.SetPath(c.planner.Outbound())
		return false
	}
	ant.StartReturning(c.balance.AntRules)
	ant.SetPath(c.planner.Return(ant.X, ant.Y, true))
	c.eventDispatcher.Emit(event.AntReachedCake, antData(ant, 0))
	return true
}

// OnAntDelivered records a slice dropped at the anthill and ends the game
// once the whole cake is gone.
func (c *WaveController) OnAntDelivered(ant *component.Ant) {
	if !ant.Alive() || !ant.Carrying {
		return
	}
	ant.Delivered()
	s := &c.session
	allDelivered := c.cake.DeliverSlice()
	s.AntsReachedCake++
	s.Score -= c.balance.Economy.DeliveryPenalty

	c.eventDispatcher.Emit(event.AntDeliveredCake, antData(ant, 0))
	if allDelivered {
		c.endGame(GameOverReason, GameOverMessage)
	}
}

// OnAntKilled pays out for a killed ant exactly once and puts a carried
// slice back on the plate. It returns the money paid, or 0 when the ant was
// already rewarded.
func (c *WaveController) OnAntKilled(ant *component.Ant, averageHealthLoss float64) int {
	if !ant.MarkRewarded() {
		return 0
	}
	carried := ant.Carrying
	if carried {
		ant.Carrying = false
		c.cake.ReturnSlice()
	}

	s := &c.session
	reward := ComputeReward(ant.RewardValue, s.Difficulty, c.Metrics(averageHealthLoss))
	s.Money += reward
	s.Score += ant.RewardValue * c.balance.Economy.ScorePerReward
	s.AntsKilled++

	data := antData(ant, reward)
	data.Carrying = carried
	c.eventDispatcher.Emit(event.AntDied, data)
	c.eventDispatcher.Emit(event.MoneyEarned, event.MoneyData{Amount: reward, Total: s.Money})
	return reward
}

// Metrics reports the defender's current performance.
func (c *WaveController) Metrics(averageHealthLoss float64) PerformanceMetrics {
	_, towers := c.towerPower()
	return PerformanceMetrics{
		KillRate:          c.session.KillRate(),
		SlicesLost:        c.cake.SlicesDelivered,
		AverageHealthLoss: averageHealthLoss,
		Wave:              c.session.Wave,
		TowerCount:        towers,
		Money:             c.session.Money,
	}
}

func (c *WaveController) endGame(reason, message string) {
	s := &c.session
	if s.State == component.GameOver {
		return
	}
	s.State = component.GameOver
	s.GameOverReason = reason
	s.GameOverMessage = message
	log.Printf("WaveController: game over at wave %d, score %d", s.Wave, s.Score)
	c.eventDispatcher.Emit(event.GameOver, event.GameOverData{
		Reason:  reason,
		Message: message,
		Score:   s.Score,
		Wave:    s.Wave,
	})
}

// TogglePause switches between playing and paused. It does nothing once the
// game is over and reports whether the state changed.
func (c *WaveController) TogglePause() bool {
	s := &c.session
	switch s.State {
	case component.Playing:
		s.State = component.Paused
		c.eventDispatcher.Emit(event.GamePaused, nil)
	case component.Paused:
		s.State = component.Playing
		c.eventDispatcher.Emit(event.GameResumed, nil)
	default:
		return false
	}
	return true
}

func (c *WaveController) CanAfford(amount int) bool {
	return c.session.Money >= amount
}

// Spend takes money only if all of it is available.
func (c *WaveController) Spend(amount int) bool {
	if amount < 0 || !c.CanAfford(amount) {
		return false
	}
	c.session.Money -= amount
	return true
}

func (c *WaveController) Earn(amount int) {
	if amount > 0 {
		c.session.Money += amount
	}
}

// State returns the session phase.
func (c *WaveController) State() component.GameState {
	return c.session.State
}

// Session returns a copy of the session values.
func (c *WaveController) Session() component.Session {
	return c.session
}

// Cake returns a copy of the cake.
func (c *WaveController) Cake() component.Cake {
	cake := *c.cake
	cake.SliceAngles = append([]float64(nil), c.cake.SliceAngles...)
	return cake
}

// TowerPrice is the current placement price of kind.
func (c *WaveController) TowerPrice(kind defs.TowerKind) int {
	return TowerPrice(c.balance.Towers.Get(kind), c.balance.Economy, c.session.Wave, c.world.Towers.Len())
}

// UpgradePrice is the current price of upgrading tower.
func (c *WaveController) UpgradePrice(tower *component.Tower) int {
	return UpgradePrice(tower.BaseCost(), tower.Level, c.balance.TowerRules, c.balance.Economy, c.session.Wave, c.world.Towers.Len())
}

func antData(ant *component.Ant, reward int) event.AntData {
	return event.AntData{
		ID:       ant.ID,
		Kind:     ant.Kind,
		X:        ant.X,
		Y:        ant.Y,
		Carrying: ant.Carrying,
		Reward:   reward,
	}
}
