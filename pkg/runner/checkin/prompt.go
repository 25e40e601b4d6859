package checkin

import (
	"io"

	"github.com/manifoldco/promptui"
)

// Prompter asks the user questions.
type Prompter interface {
	// Select returns the index of the chosen item.
	Select(label string, items []string) (int, error)
	// Input returns the entered text once validate accepts it.
	Input(label string, validate func(string) error) (string, error)
}

// Terminal prompts with promptui.
type Terminal struct {
	In  io.Reader
	Out io.Writer
}

func (t Terminal) Select(label string, items []string) (int, error) {
	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ . | bold }}",
		Inactive: "   {{ . }}",
		Selected: "{{ . | bold | green }}",
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     label,
		Items:     items,
		Templates: templates,
		Size:      10,
		Stdin:     t.stdin(),
		Stdout:    t.stdout(),
	}
	i, _, err := prompt.Run()
	return i, err
}

func (t Terminal) Input(label string, validate func(string) error) (string, error) {
	templates := &promptui.PromptTemplates{
		Prompt:  "{{ . }} : ",
		Valid:   "{{ . | green }} : ",
		Invalid: "{{ . | red }} : ",
		Success: "{{ . | bold }} : ",
	}

	prompt := promptui.Prompt{
		Label:     label,
		Templates: templates,
		Validate:  validate,
		Stdin:     t.stdin(),
		Stdout:    t.stdout(),
	}
	return prompt.Run()
}

func (t Terminal) stdin() io.ReadCloser {
	if t.In == nil {
		return nil
	}
	return io.NopCloser(t.In)
}

func (t Terminal) stdout() io.WriteCloser {
	if t.Out == nil {
		return nil
	}
	return nopCloser{t.Out}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
