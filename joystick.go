// Package joystick provides a driver for two-axis analog joysticks with an
// optional push button.
package joystick

import (
	"fmt"
	"time"
)

// Calibration defaults.
const (
	DefaultCalibrationSamples = 10
	DefaultCalibrationDelay   = time.Millisecond
)

// PinConfig holds the inputs the joystick is wired to.
type PinConfig struct {
	X      Channel // X axis potentiometer
	Y      Channel // Y axis potentiometer
	Button Pin     // Push button to ground (optional, nil if not wired)
}

// Joystick is a calibrated two-axis analog joystick.
//
// A Joystick is not safe for concurrent use.
type Joystick struct {
	x, y   Channel
	button Pin

	// Rest position in raw sample units.
	xCenter uint16
	yCenter uint16

	sleep func(time.Duration)

	// Last values captured by Update.
	snapX, snapY int
	snapButton   ButtonState
}

// New configures the axis channels and the button pin, then calibrates the
// center from calibrationSamples readings. A calibrationSamples of 0 skips
// calibration; axis reads return 0 until Calibrate is called.
//
// New fails with an error wrapping ErrConfigUnsupported when either axis
// channel cannot be set to 12-bit resolution and full-range attenuation.
// That check happens before any sample is taken.
func New(pins PinConfig, calibrationSamples int) (*Joystick, error) {
	if pins.X == nil || pins.Y == nil {
		return nil, ErrNoChannel
	}
	if calibrationSamples < 0 {
		return nil, ErrNoSamples
	}
	j := &Joystick{
		x:      pins.X,
		y:      pins.Y,
		button: pins.Button,
		sleep:  time.Sleep,
	}
	if err := j.init(); err != nil {
		return nil, err
	}
	if calibrationSamples > 0 {
		if _, _, err := j.Calibrate(calibrationSamples, DefaultCalibrationDelay); err != nil {
			return nil, err
		}
	}
	return j, nil
}

// init configures the ADC channels and the button pin.
func (j *Joystick) init() error {
	axes := []struct {
		name string
		ch   Channel
	}{
		{"x", j.x},
		{"y", j.y},
	}
	// Check both channels before touching either.
	for _, a := range axes {
		if _, ok := a.ch.(Configurer); !ok {
			return fmt.Errorf("%s axis: %w", a.name, ErrConfigUnsupported)
		}
	}
	for _, a := range axes {
		if err := a.ch.(Configurer).Configure(channelConfig); err != nil {
			return fmt.Errorf("%s axis: configure: %w", a.name, err)
		}
	}
	if j.button != nil {
		if err := j.button.ConfigureInputPullup(); err != nil {
			return fmt.Errorf("button: configure: %w", err)
		}
	}
	return nil
}

// Calibrate samples both axes numSamples times in lock-step, waiting delay
// between iterations, and stores the truncated averages as the new center.
// It blocks for roughly numSamples*delay. On error the previous center is
// kept.
func (j *Joystick) Calibrate(numSamples int, delay time.Duration) (cx, cy uint16, err error) {
	if numSamples < 1 {
		return 0, 0, ErrNoSamples
	}
	var totalX, totalY uint64
	for i := 0; i < numSamples; i++ {
		x, err := j.readRaw(j.x, "x")
		if err != nil {
			return 0, 0, err
		}
		y, err := j.readRaw(j.y, "y")
		if err != nil {
			return 0, 0, err
		}
		totalX += uint64(x)
		totalY += uint64(y)
		if delay > 0 {
			j.sleep(delay)
		}
	}
	j.xCenter = uint16(totalX / uint64(numSamples))
	j.yCenter = uint16(totalY / uint64(numSamples))
	return j.xCenter, j.yCenter, nil
}

// Center returns the calibrated rest position of both axes.
func (j *Joystick) Center() (x, y uint16) {
	return j.xCenter, j.yCenter
}

// ReadX samples the X axis and returns its position from -100 to 100.
// Every call performs a new conversion; nothing is cached.
func (j *Joystick) ReadX() (int, error) {
	v, err := j.readRaw(j.x, "x")
	if err != nil {
		return 0, err
	}
	return Scale(v, j.xCenter), nil
}

// ReadY samples the Y axis and returns its position from -100 to 100.
// Every call performs a new conversion; nothing is cached.
func (j *Joystick) ReadY() (int, error) {
	v, err := j.readRaw(j.y, "y")
	if err != nil {
		return 0, err
	}
	return Scale(v, j.yCenter), nil
}

// ReadRaw returns one unscaled sample from each axis.
func (j *Joystick) ReadRaw() (x, y uint16, err error) {
	if x, err = j.readRaw(j.x, "x"); err != nil {
		return 0, 0, err
	}
	if y, err = j.readRaw(j.y, "y"); err != nil {
		return 0, 0, err
	}
	return x, y, nil
}

func (j *Joystick) readRaw(ch Channel, axis string) (uint16, error) {
	v, err := ch.ReadU16()
	if err != nil {
		return 0, fmt.Errorf("%s axis: read: %w", axis, err)
	}
	return v, nil
}

// Scale maps a raw reading to -100..100 around center. Readings above the
// center are scaled against the distance to MaxRaw and readings below it
// against the distance to zero, so both extremes map to exactly ±100 and
// sensitivity differs per side when the center is off the midpoint.
//
// A center of 0 yields 0. The result is not clamped.
func Scale(reading, center uint16) int {
	if center == 0 {
		return 0
	}
	delta := int(reading) - int(center)
	if delta >= 0 {
		span := MaxRaw - int(center)
		if span == 0 {
			return 0
		}
		return delta * 100 / span
	}
	return floorDiv(delta*100, int(center))
}

// floorDiv divides rounding toward negative infinity. d must be positive.
func floorDiv(n, d int) int {
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}
