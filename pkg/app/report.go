package app

import (
	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/entry"
)

// ReportItem is a value with the actions aligned to it.
type ReportItem struct {
	Value     entry.Value    `json:"value"`
	Actions   []entry.Action `json:"actions"`
	Completed int            `json:"completed"`
	Open      int            `json:"open"`
}

// ReportSection groups the values of one category.
type ReportSection struct {
	Category     category.Category `json:"category"`
	Items        []ReportItem      `json:"items"`
	AverageScore float64           `json:"averageScore"`
}

// ReportResult summarises the journal: values per category with action
// progress, and the mood trend.
type ReportResult struct {
	Sections         []ReportSection  `json:"sections"`
	MoodCount        int              `json:"moodCount"`
	MoodAverage      float64          `json:"moodAverage"`
	LatestMood       *entry.MoodEntry `json:"latestMood,omitempty"`
	TotalActions     int              `json:"totalActions"`
	CompletedActions int              `json:"completedActions"`
	// Orphaned counts actions whose value no longer exists.
	Orphaned int `json:"orphaned"`
}

// Report builds a ReportResult from the current state. Categories without
// values are left out.
func (s *Service) Report() ReportResult {
	return BuildReport(s.Snapshot())
}

// BuildReport computes the report for snap.
func BuildReport(snap Snapshot) ReportResult {
	res := ReportResult{MoodCount: len(snap.Mood)}

	if n := len(snap.Mood); n > 0 {
		sum := 0
		for _, m := range snap.Mood {
			sum += m.Score
		}
		res.MoodAverage = float64(sum) / float64(n)
		latest := snap.Mood[n-1]
		res.LatestMood = &latest
	}

	byValue := make(map[string][]entry.Action)
	for _, a := range snap.Actions {
		res.TotalActions++
		if a.Completed {
			res.CompletedActions++
		}
		if a.ValueName == "" {
			res.Orphaned++
			continue
		}
		byValue[a.ValueID] = append(byValue[a.ValueID], a.Action)
	}

	for _, cat := range category.All() {
		values := snap.InCategory(cat.ID)
		if len(values) == 0 {
			continue
		}
		sec := ReportSection{Category: cat, Items: make([]ReportItem, 0, len(values))}
		sum := 0
		for _, v := range values {
			item := ReportItem{Value: v, Actions: byValue[v.ID]}
			if item.Actions == nil {
				item.Actions = []entry.Action{}
			}
			for _, a := range item.Actions {
				if a.Completed {
					item.Completed++
				} else {
					item.Open++
				}
			}
			sum += v.Score
			sec.Items = append(sec.Items, item)
		}
		sec.AverageScore = float64(sum) / float64(len(values))
		res.Sections = append(res.Sections, sec)
	}
	return res
}
