package manager

import "time"

// HighScoreKey is the fixed key the high score is persisted under.
const HighScoreKey = "snakeHighScore"

// HighScoreStore persists the single best score across sessions.
// A load error means "no prior high score"; callers fall back to 0.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// GameRecorder keeps a history of finished games.
type GameRecorder interface {
	RecordGame(record GameRecord) error
}

// GameRecord describes one finished game.
type GameRecord struct {
	UUID       string    `json:"uuid"`
	Difficulty string    `json:"difficulty"`
	Score      int       `json:"score"`
	Cause      string    `json:"cause"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

// Duration is how long the game was played.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

// MemoryStore keeps everything in process. Used when persistence is off and in tests.
type MemoryStore struct {
	HighScore int
	Records   []GameRecord
	LoadErr   error
	SaveErr   error
}

func NewMemoryStore(highScore int) *MemoryStore {
	return &MemoryStore{HighScore: highScore}
}

func (m *MemoryStore) LoadHighScore() (int, error) {
	if m.LoadErr != nil {
		return 0, m.LoadErr
	}
	return m.HighScore, nil
}

func (m *MemoryStore) SaveHighScore(score int) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.HighScore = score
	return nil
}

func (m *MemoryStore) RecordGame(record GameRecord) error {
	m.Records = append(m.Records, record)
	return nil
}
