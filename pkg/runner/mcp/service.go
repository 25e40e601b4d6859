// Package mcp provides the Model Context Protocol server integration for actd.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tableflip.dev/actd/pkg/app"
	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/entry"
)

// Service adapts the app service to the shapes exposed over MCP.
type Service struct {
	App *app.Service
}

// MoodDTO is a transport-friendly projection of a mood entry.
type MoodDTO struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Score int    `json:"score"`
	Face  string `json:"face"`
}

// HistoryDTO is one rating of a value.
type HistoryDTO struct {
	Date  string `json:"date"`
	Label string `json:"label"`
	Score int    `json:"score"`
}

// ValueDTO is a transport-friendly projection of a value.
type ValueDTO struct {
	ID           string       `json:"id"`
	Category     string       `json:"category"`
	CategoryName string       `json:"categoryName"`
	Name         string       `json:"name"`
	Score        int          `json:"score"`
	History      []HistoryDTO `json:"history"`
}

// ActionDTO is a transport-friendly projection of an action.
type ActionDTO struct {
	ID          string `json:"id"`
	ValueID     string `json:"valueId"`
	ValueName   string `json:"valueName,omitempty"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// DeleteResult reports a value removal and its cascade.
type DeleteResult struct {
	ID             string `json:"id"`
	RemovedActions int    `json:"removedActions"`
}

// NewService builds a service wrapper around a.
func NewService(a *app.Service) *Service {
	return &Service{App: a}
}

func (s *Service) ready() error {
	if s.App == nil {
		return errors.New("app service is not configured")
	}
	return nil
}

// LogMood records today's mood.
func (s *Service) LogMood(_ context.Context, score int) (*MoodDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	e, err := s.App.AddMood(score)
	if err != nil {
		return nil, err
	}
	dto := toMoodDTO(e)
	return &dto, nil
}

// ListMood returns every mood entry, oldest first.
func (s *Service) ListMood(_ context.Context) ([]MoodDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	entries := s.App.Mood()
	out := make([]MoodDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, toMoodDTO(e))
	}
	return out, nil
}

// AddValue creates a value. cat may be a category id or display name.
func (s *Service) AddValue(_ context.Context, cat, name string) (*ValueDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	id, err := category.Parse(cat)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app.ErrUnknownCategory, err)
	}
	v, err := s.App.AddValue(id, name)
	if err != nil {
		return nil, err
	}
	dto := toValueDTO(v)
	return &dto, nil
}

// UpdateValueScore rates a value.
func (s *Service) UpdateValueScore(_ context.Context, id string, score int) (*ValueDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	v, err := s.App.UpdateValueScore(id, score)
	if err != nil {
		return nil, err
	}
	dto := toValueDTO(v)
	return &dto, nil
}

// DeleteValue removes a value and the actions aligned to it.
func (s *Service) DeleteValue(_ context.Context, id string) (*DeleteResult, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	removed, err := s.App.DeleteValue(id)
	if err != nil {
		return nil, err
	}
	return &DeleteResult{ID: id, RemovedActions: removed}, nil
}

// ValueByID fetches a single value.
func (s *Service) ValueByID(_ context.Context, id string) (*ValueDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	v, ok := s.App.Value(id)
	if !ok {
		return nil, fmt.Errorf("%w: value %q", app.ErrNotFound, id)
	}
	dto := toValueDTO(v)
	return &dto, nil
}

// ListValues returns the values, optionally limited to one category.
func (s *Service) ListValues(_ context.Context, cat string) ([]ValueDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	var values []entry.Value
	if strings.TrimSpace(cat) == "" {
		values = s.App.Values()
	} else {
		id, err := category.Parse(cat)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", app.ErrUnknownCategory, err)
		}
		values = s.App.ValuesIn(id)
	}
	out := make([]ValueDTO, 0, len(values))
	for _, v := range values {
		out = append(out, toValueDTO(v))
	}
	return out, nil
}

// AddAction creates an action aligned to valueID.
func (s *Service) AddAction(_ context.Context, valueID, description string) (*ActionDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	a, err := s.App.AddAction(valueID, description)
	if err != nil {
		return nil, err
	}
	name := ""
	if v, ok := s.App.Value(a.ValueID); ok {
		name = v.Name
	}
	dto := toActionDTO(app.ActionView{Action: a, ValueName: name})
	return &dto, nil
}

// ToggleAction flips an action's completion state.
func (s *Service) ToggleAction(_ context.Context, id string) (*ActionDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	a, err := s.App.ToggleAction(id)
	if err != nil {
		return nil, err
	}
	name := ""
	if v, ok := s.App.Value(a.ValueID); ok {
		name = v.Name
	}
	dto := toActionDTO(app.ActionView{Action: a, ValueName: name})
	return &dto, nil
}

// ListActions returns the actions, optionally limited to one value.
func (s *Service) ListActions(_ context.Context, valueID string) ([]ActionDTO, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	views := s.App.ActionViews()
	if valueID != "" {
		views = s.App.ActionsFor(valueID)
	}
	out := make([]ActionDTO, 0, len(views))
	for _, v := range views {
		out = append(out, toActionDTO(v))
	}
	return out, nil
}

// Report summarises values per category with action progress.
func (s *Service) Report(_ context.Context) (app.ReportResult, error) {
	if err := s.ready(); err != nil {
		return app.ReportResult{}, err
	}
	return s.App.Report(), nil
}

// ListCategories returns the category registry.
func (s *Service) ListCategories(_ context.Context) []category.Category {
	return category.All()
}

func toMoodDTO(e entry.MoodEntry) MoodDTO {
	return MoodDTO{
		Date:  e.Date.String(),
		Label: e.Date.Short(),
		Score: e.Score,
		Face:  entry.MoodFace(e.Score),
	}
}

func toValueDTO(v entry.Value) ValueDTO {
	history := make([]HistoryDTO, 0, len(v.History))
	for _, h := range v.History {
		history = append(history, HistoryDTO{
			Date:  h.Date.String(),
			Label: h.Date.Long(),
			Score: h.Score,
		})
	}
	return ValueDTO{
		ID:           v.ID,
		Category:     string(v.Category),
		CategoryName: category.Label(v.Category),
		Name:         v.Name,
		Score:        v.Score,
		History:      history,
	}
}

func toActionDTO(a app.ActionView) ActionDTO {
	return ActionDTO{
		ID:          a.ID,
		ValueID:     a.ValueID,
		ValueName:   a.ValueName,
		Description: a.Description,
		Completed:   a.Completed,
	}
}
