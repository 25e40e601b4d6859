// Package category holds the fixed set of life domains values are grouped by.
package category

import (
	"fmt"
	"strings"
)

// ID identifies a category.
type ID string

const (
	Relationships  ID = "relationships"
	PersonalGrowth ID = "personal-growth"
	Health         ID = "health"
	Career         ID = "career"
	Learning       ID = "learning"
	Leisure        ID = "leisure"
)

// Category describes how a category is presented.
type Category struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

func (c Category) String() string {
	return fmt.Sprintf("%s %s", c.Icon, c.Name)
}

var defaults = []Category{
	{ID: Relationships, Name: "Relationships", Icon: "👥"},
	{ID: PersonalGrowth, Name: "Personal Growth", Icon: "🎯"},
	{ID: Health, Name: "Health & Wellbeing", Icon: "♥"},
	{ID: Career, Name: "Career & Work", Icon: "💼"},
	{ID: Learning, Name: "Learning", Icon: "📖"},
	{ID: Leisure, Name: "Leisure", Icon: "☺"},
}

// All returns the categories in picker order. The slice is a copy.
func All() []Category {
	out := make([]Category, len(defaults))
	copy(out, defaults)
	return out
}

// Lookup resolves a category by id.
func Lookup(id ID) (Category, bool) {
	for _, c := range defaults {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Valid reports whether id names one of the fixed categories.
func Valid(id ID) bool {
	_, ok := Lookup(id)
	return ok
}

// Label is the display name for id, or the raw id when it is unknown.
func Label(id ID) string {
	if c, ok := Lookup(id); ok {
		return c.Name
	}
	return string(id)
}

// Index returns the picker position of id, or -1.
func Index(id ID) int {
	for i, c := range defaults {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Parse resolves user input to a category id. It accepts the id or the
// display name, ignoring case and surrounding space.
func Parse(input string) (ID, error) {
	in := strings.TrimSpace(input)
	for _, c := range defaults {
		if strings.EqualFold(in, string(c.ID)) || strings.EqualFold(in, c.Name) {
			return c.ID, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", input)
}
