package manager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"
)

const (
	DefaultStatsFile = "data/gamestats.json"
	MaxHistory       = 100 // Finished games kept in the stats file
)

// GameStats is the on-disk layout of the stats file.
type GameStats struct {
	HighScore    int          `json:"highScore"`
	ScoreHistory []GameRecord `json:"scoreHistory"`
}

// StatsManager is a JSON file backed HighScoreStore and GameRecorder.
type StatsManager struct {
	path  string
	mutex sync.RWMutex
	stats GameStats
}

func NewStatsManager(path string) *StatsManager {
	if path == "" {
		path = DefaultStatsFile
	}
	return &StatsManager{
		path: path,
	}
}

// Load reads the stats file. A missing file is empty stats. A corrupt file
// leaves the stats empty and returns the decode error.
func (sm *StatsManager) Load() error {
	sm.mutex.Lock()
	defer sm.mutex.Unlock()

	sm.stats = GameStats{}
	data, err := os.ReadFile(sm.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read stats file: %w", err)
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return fmt.Errorf("decode stats file %s: %w", sm.path, err)
	}
	if stats.HighScore < 0 {
		stats.HighScore = 0
	}
	sm.stats = stats
	return nil
}

// Save writes the stats file, creating its directory when needed.
func (sm *StatsManager) Save() error {
	sm.mutex.RLock()
	data, err := json.MarshalIndent(sm.stats, "", "  ")
	sm.mutex.RUnlock()
	if err != nil {
		return fmt.Errorf("encode stats: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(sm.path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}
	tmp := sm.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write stats file: %w", err)
	}
	return os.Rename(tmp, sm.path)
}

func (sm *StatsManager) LoadHighScore() (int, error) {
	if err := sm.Load(); err != nil {
		return 0, err
	}
	return sm.GetHighScore(), nil
}

func (sm *StatsManager) SaveHighScore(score int) error {
	sm.mutex.Lock()
	sm.stats.HighScore = score
	sm.mutex.Unlock()
	return sm.Save()
}

// RecordGame appends a finished game, dropping the oldest past MaxHistory.
func (sm *StatsManager) RecordGame(record GameRecord) error {
	sm.mutex.Lock()
	sm.stats.ScoreHistory = append(sm.stats.ScoreHistory, record)
	if n := len(sm.stats.ScoreHistory); n > MaxHistory {
		sm.stats.ScoreHistory = append([]GameRecord(nil), sm.stats.ScoreHistory[n-MaxHistory:]...)
	}
	sm.mutex.Unlock()
	return sm.Save()
}

func (sm *StatsManager) GetHighScore() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return sm.stats.HighScore
}

// History returns a copy of the recorded games, oldest first.
func (sm *StatsManager) History() []GameRecord {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	out := make([]GameRecord, len(sm.stats.ScoreHistory))
	copy(out, sm.stats.ScoreHistory)
	return out
}

func (sm *StatsManager) GamesPlayed() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	return len(sm.stats.ScoreHistory)
}

func (sm *StatsManager) AverageScore() float64 {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	if len(sm.stats.ScoreHistory) == 0 {
		return 0
	}
	total := 0
	for _, g := range sm.stats.ScoreHistory {
		total += g.Score
	}
	return float64(total) / float64(len(sm.stats.ScoreHistory))
}

func (sm *StatsManager) MedianScore() float64 {
	sm.mutex.RLock()
	scores := make([]int, len(sm.stats.ScoreHistory))
	for i, g := range sm.stats.ScoreHistory {
		scores[i] = g.Score
	}
	sm.mutex.RUnlock()

	if len(scores) == 0 {
		return 0
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

// MaxScore is the best score still in the history, which can trail the high score.
func (sm *StatsManager) MaxScore() int {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	best := 0
	for _, g := range sm.stats.ScoreHistory {
		if g.Score > best {
			best = g.Score
		}
	}
	return best
}

// AverageDuration is the mean length of the recorded games.
func (sm *StatsManager) AverageDuration() time.Duration {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	if len(sm.stats.ScoreHistory) == 0 {
		return 0
	}
	var total time.Duration
	for _, g := range sm.stats.ScoreHistory {
		total += g.Duration()
	}
	return total / time.Duration(len(sm.stats.ScoreHistory))
}

func (sm *StatsManager) MaxDuration() time.Duration {
	sm.mutex.RLock()
	defer sm.mutex.RUnlock()
	var longest time.Duration
	for _, g := range sm.stats.ScoreHistory {
		if d := g.Duration(); d > longest {
			longest = d
		}
	}
	return longest
}
