// Package checkin runs an interactive daily check-in: log a mood, then
// optionally rate a value and commit to an action for it.
package checkin

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"tableflip.dev/actd/pkg/app"
	"tableflip.dev/actd/pkg/category"
	"tableflip.dev/actd/pkg/entry"
	"tableflip.dev/actd/pkg/printers"
)

type Checkin struct {
	App    *app.Service
	Prompt Prompter
	Out    io.Writer
}

const (
	answerYes = 0
	answerNo  = 1
)

func (c *Checkin) Do(ctx context.Context) error {
	if c.App == nil {
		return errors.New("can not check in, no app service")
	}
	if c.Prompt == nil {
		c.Prompt = Terminal{Out: c.Out}
	}

	faces := make([]string, 0, entry.MaxMoodScore)
	for s := entry.MinMoodScore; s <= entry.MaxMoodScore; s++ {
		faces = append(faces, fmt.Sprintf("%d %s", s, entry.MoodFace(s)))
	}
	i, err := c.Prompt.Select(fmt.Sprintf("How are you feeling today, %s", c.App.Today().Long()), faces)
	if err != nil {
		return err
	}
	if _, err := c.App.AddMood(entry.MinMoodScore + i); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: c.Out}
	pp.NewLine()
	pp.Mood(c.App.Mood())

	rated, err := c.rate(ctx)
	if err != nil {
		return err
	}
	if rated != nil {
		pp.History(*rated)
		pp.Actions(c.App.ActionsFor(rated.ID))
	}
	return nil
}

// rate walks through rating one value. It returns nil when the user skips.
func (c *Checkin) rate(_ context.Context) (*entry.Value, error) {
	values := c.App.Values()
	if len(values) == 0 {
		return nil, nil
	}
	yes, err := c.Prompt.Select("Rate one of your values", []string{"Yes", "No"})
	if err != nil {
		return nil, err
	}
	if yes != answerYes {
		return nil, nil
	}

	labels := make([]string, 0, len(values))
	for _, v := range values {
		labels = append(labels, fmt.Sprintf("%s (%s) %d/%d", v.Name, category.Label(v.Category), v.Score, entry.MaxValueScore))
	}
	i, err := c.Prompt.Select("Which value", labels)
	if err != nil {
		return nil, err
	}
	picked := values[i]

	raw, err := c.Prompt.Input(fmt.Sprintf("Score for %s (0-10)", picked.Name), validScore)
	if err != nil {
		return nil, err
	}
	score, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: score %q is not a whole number", app.ErrInvalidInput, raw)
	}
	updated, err := c.App.UpdateValueScore(picked.ID, score)
	if err != nil {
		return nil, err
	}

	desc, err := c.Prompt.Input(fmt.Sprintf("Commit to an action for %s (blank to skip)", picked.Name), nil)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(desc) != "" {
		if _, err := c.App.AddAction(picked.ID, desc); err != nil {
			return nil, err
		}
	}
	return &updated, nil
}

func validScore(input string) error {
	n, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return errors.New("enter a whole number")
	}
	return entry.CheckValueScore(n)
}
