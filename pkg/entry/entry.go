// Package entry defines the records tracked by actd: mood check-ins,
// personal values with their rating history, and value-aligned actions.
package entry

import (
	"errors"
	"fmt"

	"tableflip.dev/actd/pkg/category"
)

const (
	MinMoodScore = 1
	MaxMoodScore = 5

	MinValueScore     = 0
	MaxValueScore     = 10
	DefaultValueScore = 5
)

var (
	// ErrMoodScoreRange is returned for mood scores outside 1..5.
	ErrMoodScoreRange = errors.New("entry: mood score must be between 1 and 5")
	// ErrValueScoreRange is returned for value scores outside 0..10.
	ErrValueScoreRange = errors.New("entry: value score must be between 0 and 10")
)

// CheckMoodScore validates a mood score.
func CheckMoodScore(score int) error {
	if score < MinMoodScore || score > MaxMoodScore {
		return fmt.Errorf("%w: got %d", ErrMoodScoreRange, score)
	}
	return nil
}

// CheckValueScore validates a value score.
func CheckValueScore(score int) error {
	if score < MinValueScore || score > MaxValueScore {
		return fmt.Errorf("%w: got %d", ErrValueScoreRange, score)
	}
	return nil
}

// MoodEntry is a dated self-reported wellbeing score.
type MoodEntry struct {
	Date  Day `json:"date"`
	Score int `json:"score"`
}

var moodFaces = [...]string{"😔", "😕", "😐", "🙂", "😊"}

// MoodFace is the face shown on the mood button for score.
func MoodFace(score int) string {
	if score < MinMoodScore || score > MaxMoodScore {
		return "?"
	}
	return moodFaces[score-MinMoodScore]
}

// HistoryRecord is a past rating of a value.
type HistoryRecord struct {
	Date  Day `json:"date"`
	Score int `json:"score"`
}

// Value is a personally meaningful life domain rated 0..10.
type Value struct {
	ID       string          `json:"id"`
	Category category.ID     `json:"category"`
	Name     string          `json:"name"`
	Score    int             `json:"score"`
	History  []HistoryRecord `json:"history"`
}

// NewValue builds a value with the default score and an empty history.
func NewValue(id string, cat category.ID, name string) Value {
	return Value{
		ID:       id,
		Category: cat,
		Name:     name,
		Score:    DefaultValueScore,
		History:  []HistoryRecord{},
	}
}

// Clone returns a copy that shares no history storage with v.
func (v Value) Clone() Value {
	cp := v
	cp.History = make([]HistoryRecord, len(v.History))
	copy(cp.History, v.History)
	return cp
}

// Rated returns a copy of v carrying score, with the rating appended to
// its history.
func (v Value) Rated(on Day, score int) Value {
	next := v.Clone()
	next.Score = score
	next.History = append(next.History, HistoryRecord{Date: on, Score: score})
	return next
}

// Action is a concrete task linked to a value. ValueID is a weak
// reference; nothing here checks that the value exists.
type Action struct {
	ID          string `json:"id"`
	ValueID     string `json:"valueId"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// Toggled returns a copy of a with the completion state flipped.
func (a Action) Toggled() Action {
	a.Completed = !a.Completed
	return a
}
