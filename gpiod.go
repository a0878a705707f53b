//go:build linux

package joystick

import (
	"errors"
	"fmt"

	"github.com/warthog618/gpiod"
	"github.com/warthog618/gpiod/spi/mcp3w0c"
)

// channelReader is the part of mcp3w0c.MCP3w0c the adapter uses.
type channelReader interface {
	Read(ch int) (uint16, error)
}

// gpiodADC adapts one channel of an MCP3xxx SPI ADC.
type gpiodADC struct {
	adc   channelReader
	ch    int
	width uint8
}

// GpiodADC returns a Channel reading channel ch of an MCP3204/3208 (width
// 12). 10-bit MCP3004/3008 parts fail the 12-bit check in New.
func GpiodADC(adc *mcp3w0c.MCP3w0c, ch int, width uint8) Channel {
	return &gpiodADC{adc: adc, ch: ch, width: width}
}

// Configure accepts any resolution up to the converter width. MCP3xxx parts
// measure 0..VREF with no attenuator, so only AttenuationFull is accepted.
func (a *gpiodADC) Configure(cfg ChannelConfig) error {
	if cfg.Attenuation != AttenuationFull {
		return ErrConfigUnsupported
	}
	if cfg.Resolution > a.width {
		return fmt.Errorf("ch%d: %d-bit resolution on %d-bit converter: %w",
			a.ch, cfg.Resolution, a.width, ErrConfigUnsupported)
	}
	return nil
}

func (a *gpiodADC) ReadU16() (uint16, error) {
	d, err := a.adc.Read(a.ch)
	if err != nil {
		return 0, err
	}
	return normalize(uint32(d), a.width), nil
}

var errLineNotRequested = errors.New("joystick: button line not requested")

// gpiodPin adapts a GPIO line on a Linux gpiochip.
type gpiodPin struct {
	chip   *gpiod.Chip
	offset int
	line   *gpiod.Line
}

// GpiodPin returns a Pin for line offset on chip. The line is requested
// when the joystick configures it.
func GpiodPin(chip *gpiod.Chip, offset int) Pin {
	return &gpiodPin{chip: chip, offset: offset}
}

func (p *gpiodPin) ConfigureInputPullup() error {
	if p.line != nil {
		return p.line.Reconfigure(gpiod.AsInput, gpiod.WithPullUp)
	}
	l, err := p.chip.RequestLine(p.offset, gpiod.AsInput, gpiod.WithPullUp)
	if err != nil {
		return err
	}
	p.line = l
	return nil
}

func (p *gpiodPin) Get() (bool, error) {
	if p.line == nil {
		return false, errLineNotRequested
	}
	v, err := p.line.Value()
	if err != nil {
		return false, err
	}
	return v != 0, nil
}
