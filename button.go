package joystick

import "fmt"

// ButtonState is the result of reading the joystick button.
type ButtonState uint8

// Button states. ButtonUnavailable is reported when no button pin was wired.
const (
	ButtonUnavailable ButtonState = iota
	ButtonReleased
	ButtonPressed
)

func (s ButtonState) String() string {
	switch s {
	case ButtonUnavailable:
		return "unavailable"
	case ButtonReleased:
		return "released"
	case ButtonPressed:
		return "pressed"
	default:
		return fmt.Sprintf("ButtonState(%d)", uint8(s))
	}
}

// Pressed returns true if the state is ButtonPressed.
func (s ButtonState) Pressed() bool {
	return s == ButtonPressed
}

// ReadButton samples the button pin.
// Note: the button is active LOW (pulled up, closes to ground when pressed).
func (j *Joystick) ReadButton() (ButtonState, error) {
	if j.button == nil {
		return ButtonUnavailable, nil
	}
	level, err := j.button.Get()
	if err != nil {
		return ButtonUnavailable, fmt.Errorf("button: read: %w", err)
	}
	if level {
		return ButtonReleased, nil
	}
	return ButtonPressed, nil
}
