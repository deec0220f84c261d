// Package input tracks the state of bound keys across frames.
package input

import (
	"fmt"

	"github.com/oliverbestmann/basita"
	"github.com/oliverbestmann/basita/internal/set"
)

// Key identifies a key of the input source. The values are defined by the source.
type Key int

type Source interface {
	IsKeyPressed(key Key) bool
}

// Button is a key bound to an Input.
type Button int

type button struct {
	key      Key
	pressed  bool
	previous bool
}

// Input holds the state of all bound buttons. The zero value is ready to use.
type Input struct {
	buttons []button

	// keys pressed during the last update
	pressed set.Set[Key]
}

// NewButton binds a key. Multiple buttons may be bound to the same key.
func (in *Input) NewButton(key Key) Button {
	in.buttons = append(in.buttons, button{key: key})
	return Button(len(in.buttons) - 1)
}

// Update samples every bound key once. Must be called once per frame.
func (in *Input) Update(source Source) {
	in.pressed.Clear()

	var sampled set.Set[Key]

	for idx := range in.buttons {
		button := &in.buttons[idx]

		if sampled.Insert(button.key) && source.IsKeyPressed(button.key) {
			in.pressed.Insert(button.key)
		}

		button.previous = button.pressed
		button.pressed = in.pressed.Has(button.key)
	}
}

func (in *Input) IsPressed(b Button) bool {
	return in.button(b).pressed
}

// WasPressed reports whether the button went down during the last update.
func (in *Input) WasPressed(b Button) bool {
	button := in.button(b)
	return button.pressed && !button.previous
}

// WasReleased reports whether the button went up during the last update.
func (in *Input) WasReleased(b Button) bool {
	button := in.button(b)
	return !button.pressed && button.previous
}

func (in *Input) button(b Button) *button {
	if b < 0 || int(b) >= len(in.buttons) {
		panic(fmt.Sprintf("button %d is not bound", b))
	}

	return &in.buttons[b]
}

type State interface {
	basita.Runnable
	PlayerInput() *Input
}

// System updates the input of the state from the source once per frame.
func System[S State](source Source) basita.System[S] {
	return basita.SystemFuncs[S]{
		Name:     "InputSystem",
		OnInit:   func(state S) { state.PlayerInput().Update(source) },
		OnUpdate: func(state S) { state.PlayerInput().Update(source) },
	}
}
