// Package store keeps small string values across runs of the game.
package store

import (
	"fmt"
	"strconv"
)

// KV is a durable key-value store. Get reports ok == false for a key that
// was never set.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

const (
	KindMemory = "memory"
	KindFile   = "file"
	KindSQLite = "sqlite"
)

// Open returns the backend named by kind, rooted at path.
func Open(kind, path string) (KV, error) {
	switch kind {
	case KindMemory:
		return NewMemory(), nil
	case KindFile:
		f, err := OpenFile(path)
		if err != nil {
			return nil, err
		}
		return f, nil
	case KindSQLite:
		db, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown store kind %q", kind)
	}
}

const ScoreKey = "score"

// Score keeps the game score under ScoreKey as a decimal string.
type Score struct {
	KV KV
}

func NewScore(kv KV) *Score {
	return &Score{KV: kv}
}

// LoadScore returns 0 when no score was saved yet. A stored value that is not
// a non-negative integer also yields 0, together with an error.
func (s *Score) LoadScore() (int, error) {
	raw, ok, err := s.KV.Get(ScoreKey)
	if err != nil {
		return 0, fmt.Errorf("read score: %w", err)
	}
	if !ok {
		return 0, nil
	}
	score, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse score %q: %w", raw, err)
	}
	if score < 0 {
		return 0, fmt.Errorf("negative score %d", score)
	}
	return score, nil
}

func (s *Score) SaveScore(score int) error {
	if score < 0 {
		return fmt.Errorf("negative score %d", score)
	}
	if err := s.KV.Set(ScoreKey, strconv.Itoa(score)); err != nil {
		return fmt.Errorf("write score: %w", err)
	}
	return nil
}
