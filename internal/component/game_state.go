package component

// GameState — фаза игровой сессии
type GameState int

const (
	Playing GameState = iota
	Paused
	GameOver
)

func (s GameState) String() string {
	switch s {
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case GameOver:
		return "game over"
	}
	return "unknown"
}

// Session holds the mutable per-session values owned by the wave
// controller. Everything here is reset by a restart.
type Session struct {
	State GameState
	Money int
	Score int

	Wave          int
	AntsPerWave   int
	AntsInWave    int // spawned in the current wave
	SpawnInterval int
	SpawnTimer    int
	WaveStartTick uint64
	NextWaveDelay int

	Difficulty          float64
	LastDifficultyCheck uint64
	Tick                uint64

	AntsKilled       int
	AntsReachedCake  int
	TotalAntsSpawned int

	GameOverReason  string
	GameOverMessage string
}

// KillRate is the share of ants that were killed among those that were
// either killed or reached the cake.
func (s *Session) KillRate() float64 {
	encountered := s.AntsKilled + s.AntsReachedCake
	if encountered == 0 {
		return 0
	}
	return float64(s.AntsKilled) / float64(encountered)
}
