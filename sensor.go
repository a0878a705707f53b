package joystick

import "tinygo.org/x/drivers"

var _ drivers.Sensor = (*Joystick)(nil)

// Update samples both axes and the button once when which includes
// drivers.Voltage, and stores the results for X, Y and Button. The joystick
// answers Voltage requests since its axes are potentiometer voltages; other
// measurements are ignored.
//
// The stored values are replaced only if every read succeeds.
func (j *Joystick) Update(which drivers.Measurement) error {
	if which&drivers.Voltage == 0 {
		return nil
	}
	x, err := j.ReadX()
	if err != nil {
		return err
	}
	y, err := j.ReadY()
	if err != nil {
		return err
	}
	b, err := j.ReadButton()
	if err != nil {
		return err
	}
	j.snapX, j.snapY, j.snapButton = x, y, b
	return nil
}

// X returns the X position captured by the last Update.
func (j *Joystick) X() int {
	return j.snapX
}

// Y returns the Y position captured by the last Update.
func (j *Joystick) Y() int {
	return j.snapY
}

// Button returns the button state captured by the last Update.
func (j *Joystick) Button() ButtonState {
	return j.snapButton
}
