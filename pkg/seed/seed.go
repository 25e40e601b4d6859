// Package seed provides the sample data actd starts with.
package seed

import (
	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/entry"
)

// Data is a starting state for the three collections.
type Data struct {
	Mood    []entry.MoodEntry
	Values  []entry.Value
	Actions []entry.Action
}

// Empty has no records at all.
func Empty() Data {
	return Data{
		Mood:    []entry.MoodEntry{},
		Values:  []entry.Value{},
		Actions: []entry.Action{},
	}
}

// Sample returns a fresh copy of the built-in sample journal.
func Sample() Data {
	return Data{
		Mood: []entry.MoodEntry{
			{Date: entry.MustDay("2024-03-01"), Score: 3},
			{Date: entry.MustDay("2024-03-02"), Score: 4},
			{Date: entry.MustDay("2024-03-03"), Score: 2},
			{Date: entry.MustDay("2024-03-04"), Score: 5},
			{Date: entry.MustDay("2024-03-05"), Score: 4},
		},
		Values: []entry.Value{
			value("1", category.Relationships, "Family Connection", 7,
				rating("2024-02-01", 6), rating("2024-02-15", 7)),
			value("2", category.Relationships, "Friendship", 6,
				rating("2024-02-01", 5), rating("2024-02-15", 6)),
			value("3", category.PersonalGrowth, "Self-Development", 5),
			value("4", category.Health, "Mental Wellbeing", 4),
			value("5", category.Career, "Professional Growth", 6),
			value("6", category.Learning, "New Skills Acquisition", 7),
			value("7", category.Learning, "Reading & Research", 8),
			value("8", category.Leisure, "Creative Expression", 6),
			value("9", category.Leisure, "Physical Activities", 5),
			value("10", category.Leisure, "Social Activities", 7),
		},
		Actions: []entry.Action{
			{ID: "1", ValueID: "1", Description: "Call family member"},
			{ID: "2", ValueID: "3", Description: "Daily meditation", Completed: true},
			{ID: "3", ValueID: "6", Description: "Learn a new programming language"},
			{ID: "4", ValueID: "8", Description: "Practice painting"},
		},
	}
}

func value(id string, cat category.ID, name string, score int, history ...entry.HistoryRecord) entry.Value {
	v := entry.NewValue(id, cat, name)
	v.Score = score
	v.History = append(v.History, history...)
	return v
}

func rating(day string, score int) entry.HistoryRecord {
	return entry.HistoryRecord{Date: entry.MustDay(day), Score: score}
}
