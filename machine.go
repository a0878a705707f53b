//go:build rp2040 || rp2350

package joystick

import "machine"

var adcInitialized bool

// machineADC adapts a TinyGo ADC channel.
type machineADC struct {
	adc machine.ADC
}

// MachineADC returns a Channel reading the given ADC-capable pin.
func MachineADC(pin machine.Pin) Channel {
	if !adcInitialized {
		machine.InitADC()
		adcInitialized = true
	}
	return &machineADC{adc: machine.ADC{Pin: pin}}
}

// Configure sets the conversion resolution. The RP2 front end has no
// attenuator, so only AttenuationFull (0 to ADC_VREF) is accepted.
func (a *machineADC) Configure(cfg ChannelConfig) error {
	if cfg.Attenuation != AttenuationFull || cfg.Resolution > 12 {
		return ErrConfigUnsupported
	}
	return a.adc.Configure(machine.ADCConfig{
		Resolution: uint32(cfg.Resolution),
	})
}

func (a *machineADC) ReadU16() (uint16, error) {
	return fromRP2(a.adc.Get()), nil
}

// machinePin adapts a TinyGo GPIO pin.
type machinePin machine.Pin

// MachinePin returns a Pin for the given GPIO.
func MachinePin(pin machine.Pin) Pin {
	return machinePin(pin)
}

func (p machinePin) ConfigureInputPullup() error {
	machine.Pin(p).Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return nil
}

func (p machinePin) Get() (bool, error) {
	return machine.Pin(p).Get(), nil
}

// NewMachine creates a Joystick from TinyGo pin numbers. Pass machine.NoPin
// as buttonPin when no button is wired.
func NewMachine(xPin, yPin, buttonPin machine.Pin, calibrationSamples int) (*Joystick, error) {
	pins := PinConfig{
		X: MachineADC(xPin),
		Y: MachineADC(yPin),
	}
	if buttonPin != machine.NoPin {
		pins.Button = MachinePin(buttonPin)
	}
	return New(pins, calibrationSamples)
}
