// internal/event/types.go
package event

import (
	"cake-defense/internal/defs"
	"cake-defense/internal/types"
)

const (
	AntSpawned       EventType = "AntSpawned"
	AntDied          EventType = "AntDied" // убит башнями
	AntReachedCake   EventType = "AntReachedCake"
	AntDeliveredCake EventType = "AntDeliveredCake" // кусок донесён до муравейника
	TowerPlaced      EventType = "TowerPlaced"      // Башня построена
	TowerUpgraded    EventType = "TowerUpgraded"
	TowerSold        EventType = "TowerSold"
	TowerMoved       EventType = "TowerMoved"
	TowerFired       EventType = "TowerFired"
	WaveStarted      EventType = "WaveStarted"
	GamePaused       EventType = "GamePaused"
	GameResumed      EventType = "GameResumed"
	GameOver         EventType = "GameOver"
	GameRestarted    EventType = "GameRestarted"
	MoneyEarned      EventType = "MoneyEarned"
)

// AllTypes lists every event type, for listeners that want everything.
var AllTypes = []EventType{
	AntSpawned, AntDied, AntReachedCake, AntDeliveredCake,
	TowerPlaced, TowerUpgraded, TowerSold, TowerMoved, TowerFired,
	WaveStarted, GamePaused, GameResumed, GameOver, GameRestarted, MoneyEarned,
}

// AntData is the payload of the ant events.
type AntData struct {
	ID       types.EntityID
	Kind     defs.AntKind
	X, Y     float64
	Carrying bool
	Reward   int // paid reward, AntDied only
}

// TowerData is the payload of the tower events. Money is the price paid,
// or the refund for TowerSold.
type TowerData struct {
	ID     types.EntityID
	Kind   defs.TowerKind
	X, Y   float64
	Level  int
	Money  int
	Target types.EntityID // TowerFired only
}

type WaveData struct {
	Wave          int
	AntsPerWave   int
	SpawnInterval int
}

type MoneyData struct {
	Amount int
	Total  int
}

type GameOverData struct {
	Reason  string
	Message string
	Score   int
	Wave    int
}
