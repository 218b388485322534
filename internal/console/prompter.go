package console

import (
	"errors"

	"github.com/manifoldco/promptui"
)

// Prompter asks the operator for input.
type Prompter interface {
	// Select returns the index of the chosen item.
	Select(label string, items []string) (int, error)
	Input(label, def string) (string, error)
	Secret(label string) (string, error)
}

// Terminal prompts on the controlling terminal with promptui.
type Terminal struct {
	// Size is the number of visible select items.
	Size int
}

func (t Terminal) Select(label string, items []string) (int, error) {
	size := t.Size
	if size == 0 {
		size = 12
	}
	p := promptui.Select{Label: label, Items: items, Size: size}
	idx, _, err := p.Run()
	return idx, quitOn(err)
}

func (Terminal) Input(label, def string) (string, error) {
	p := promptui.Prompt{Label: label, Default: def, AllowEdit: def != ""}
	out, err := p.Run()
	return out, quitOn(err)
}

func (Terminal) Secret(label string) (string, error) {
	p := promptui.Prompt{Label: label, Mask: '*'}
	out, err := p.Run()
	return out, quitOn(err)
}

func quitOn(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return ErrQuit
	}
	return err
}
