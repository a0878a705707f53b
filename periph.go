package joystick

import (
	"fmt"
	"math/bits"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
)

// periphADC adapts a periph.io analog pin, mapping its raw range onto
// 0..MaxRaw. Codes outside the range are clamped.
type periphADC struct {
	pin      analog.PinADC
	min, max int32
	ranged   bool
}

// PeriphADC returns a Channel reading a periph.io analog pin.
func PeriphADC(pin analog.PinADC) Channel {
	return &periphADC{pin: pin}
}

// Configure checks the requested setup against the pin's native range.
// periph pins have a fixed front end, so only AttenuationFull is accepted
// and the resolution may not exceed the native span.
func (a *periphADC) Configure(cfg ChannelConfig) error {
	if cfg.Attenuation != AttenuationFull {
		return ErrConfigUnsupported
	}
	if err := a.loadRange(); err != nil {
		return err
	}
	if int(cfg.Resolution) > bits.Len32(uint32(a.max-a.min)) {
		return fmt.Errorf("%s: %d-bit resolution: %w", a.pin, cfg.Resolution, ErrConfigUnsupported)
	}
	return nil
}

func (a *periphADC) loadRange() error {
	if a.ranged {
		return nil
	}
	lo, hi := a.pin.Range()
	// Potentiometers only produce positive codes; drop the negative half
	// of a bipolar range.
	if lo.Raw < 0 && hi.Raw > 0 {
		lo.Raw = 0
	}
	if hi.Raw <= lo.Raw {
		return fmt.Errorf("%s: empty raw range %d..%d: %w", a.pin, lo.Raw, hi.Raw, ErrConfigUnsupported)
	}
	a.min, a.max, a.ranged = lo.Raw, hi.Raw, true
	return nil
}

func (a *periphADC) ReadU16() (uint16, error) {
	if err := a.loadRange(); err != nil {
		return 0, err
	}
	s, err := a.pin.Read()
	if err != nil {
		return 0, err
	}
	switch {
	case s.Raw <= a.min:
		return 0, nil
	case s.Raw >= a.max:
		return MaxRaw, nil
	}
	v := int64(s.Raw-a.min) * MaxRaw / int64(a.max-a.min)
	return uint16(v), nil
}

// periphPin adapts a periph.io GPIO input.
type periphPin struct {
	pin gpio.PinIn
}

// PeriphPin returns a Pin backed by a periph.io GPIO.
func PeriphPin(pin gpio.PinIn) Pin {
	return periphPin{pin: pin}
}

func (p periphPin) ConfigureInputPullup() error {
	return p.pin.In(gpio.PullUp, gpio.NoEdge)
}

func (p periphPin) Get() (bool, error) {
	return p.pin.Read() == gpio.High, nil
}
