package joystick

import "errors"

// MaxRaw is the largest value a normalized raw sample can take.
const MaxRaw = 65535

// Attenuation selects the input voltage range of an ADC channel.
type Attenuation uint8

// Attenuation settings. AttenuationFull is the widest range the front end
// supports and is what the driver requests.
const (
	AttenuationFull Attenuation = iota
	Attenuation0dB
	Attenuation2_5dB
	Attenuation6dB
)

func (a Attenuation) String() string {
	switch a {
	case AttenuationFull:
		return "full"
	case Attenuation0dB:
		return "0dB"
	case Attenuation2_5dB:
		return "2.5dB"
	case Attenuation6dB:
		return "6dB"
	default:
		return "unknown"
	}
}

// ChannelConfig holds the sampling setup applied to an axis channel.
type ChannelConfig struct {
	Resolution  uint8 // bits per native conversion
	Attenuation Attenuation
}

// channelConfig is the setup New applies to both axes.
var channelConfig = ChannelConfig{
	Resolution:  12,
	Attenuation: AttenuationFull,
}

// Channel is an analog input. ReadU16 performs one blocking conversion and
// returns it normalized to 16 bits, whatever the native resolution.
type Channel interface {
	ReadU16() (uint16, error)
}

// Configurer is implemented by channels whose resolution and attenuation can
// be set. Implementations return ErrConfigUnsupported for settings the
// hardware cannot honor.
type Configurer interface {
	Configure(cfg ChannelConfig) error
}

// Pin is a digital input used for the joystick button.
type Pin interface {
	// ConfigureInputPullup makes the pin an input with the internal
	// pull-up enabled, so an open switch reads high.
	ConfigureInputPullup() error
	// Get returns the current logic level.
	Get() (bool, error)
}

var (
	// ErrConfigUnsupported is returned when an axis channel cannot have its
	// resolution or attenuation configured.
	ErrConfigUnsupported = errors.New("joystick: ADC resolution/attenuation not supported on this platform")
	// ErrNoSamples is returned for a calibration request with fewer than one sample.
	ErrNoSamples = errors.New("joystick: calibration needs at least one sample")
	// ErrNoChannel is returned when an axis channel is missing.
	ErrNoChannel = errors.New("joystick: missing axis channel")
)

// fromRP2 converts an RP2 machine.ADC.Get result, a 12-bit conversion
// shifted left by 4, to the full 0..MaxRaw range.
func fromRP2(v uint16) uint16 {
	return normalize(uint32(v>>4), 12)
}

// normalize scales a native sample of the given bit width to 16 bits,
// replicating the high bits into the low ones so full scale maps to MaxRaw.
func normalize(v uint32, bits uint8) uint16 {
	switch {
	case bits == 0:
		return 0
	case bits >= 16:
		return uint16(v >> (bits - 16))
	}
	v &= 1<<bits - 1
	out := v << (16 - bits)
	for shift := int(bits); shift < 16; shift += int(bits) {
		out |= v << (16 - bits) >> shift
	}
	return uint16(out)
}
