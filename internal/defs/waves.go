package defs

// WaveSettings holds the spawn cadence constants.
type WaveSettings struct {
	BaseAntsPerWave         int `json:"base_ants_per_wave"`
	BaseSpawnInterval       int `json:"base_spawn_interval"`
	FirstWaveDelay          int `json:"first_wave_delay"`
	WaveDelay               int `json:"wave_delay"`
	LowCakeWaveDelay        int `json:"low_cake_wave_delay"`
	FinalSliceWaveDelay     int `json:"final_slice_wave_delay"`
	MaxAntsPerWave          int `json:"max_ants_per_wave"`
	MaxPopulation           int `json:"max_population"` // live ants with plenty of cake left
	MinSpawnInterval        int `json:"min_spawn_interval"`
	DifficultyCheckInterval int `json:"difficulty_check_interval"`
}

// SpawnEntry is one weighted row of a spawn table.
type SpawnEntry struct {
	Kind   AntKind `json:"kind"`
	Weight int     `json:"weight"`
}

// SpawnTable applies from FromWave onwards until a later table takes over.
type SpawnTable struct {
	FromWave int          `json:"from_wave"`
	Entries  []SpawnEntry `json:"entries"`
}

// SpawnTableFor returns the entries of the last table whose FromWave is not
// after wave. Tables are expected in ascending FromWave order.
func SpawnTableFor(tables []SpawnTable, wave int) []SpawnEntry {
	var entries []SpawnEntry
	for _, table := range tables {
		if table.FromWave <= wave {
			entries = table.Entries
		}
	}
	return entries
}
