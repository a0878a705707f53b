package joystick

import (
	"errors"
	"testing"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// fakeAnalog is an analog.PinADC with a fixed range and settable sample.
type fakeAnalog struct {
	analog.PinADC
	lo, hi   int32
	raw      int32
	readErr  error
}

func (p *fakeAnalog) String() string { return "A0" }

func (p *fakeAnalog) Range() (analog.Sample, analog.Sample) {
	return analog.Sample{Raw: p.lo}, analog.Sample{Raw: p.hi}
}

func (p *fakeAnalog) Read() (analog.Sample, error) {
	return analog.Sample{Raw: p.raw}, p.readErr
}

func TestPeriphADCConfigure(t *testing.T) {
	tests := []struct {
		name   string
		lo, hi int32
		cfg    ChannelConfig
		ok     bool
	}{
		{"12-bit on 12-bit", 0, 4095, ChannelConfig{12, AttenuationFull}, true},
		{"12-bit on 15-bit bipolar", -32768, 32767, ChannelConfig{12, AttenuationFull}, true},
		{"12-bit on 10-bit", 0, 1023, ChannelConfig{12, AttenuationFull}, false},
		{"attenuated", 0, 4095, ChannelConfig{12, Attenuation6dB}, false},
		{"empty range", 100, 100, ChannelConfig{12, AttenuationFull}, false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			a := PeriphADC(&fakeAnalog{lo: test.lo, hi: test.hi}).(Configurer)
			err := a.Configure(test.cfg)
			if test.ok && err != nil {
				t.Fatalf("Configure = %v", err)
			}
			if !test.ok && !errors.Is(err, ErrConfigUnsupported) {
				t.Fatalf("Configure = %v, want ErrConfigUnsupported", err)
			}
		})
	}
}

func TestPeriphADCEmptyRangeRead(t *testing.T) {
	a := PeriphADC(&fakeAnalog{raw: 10})
	if _, err := a.ReadU16(); !errors.Is(err, ErrConfigUnsupported) {
		t.Errorf("ReadU16 = %v, want ErrConfigUnsupported", err)
	}
}

func TestPeriphADCRead(t *testing.T) {
	pin := &fakeAnalog{lo: -32768, hi: 32767}
	a := PeriphADC(pin)
	tests := []struct {
		raw  int32
		want uint16
	}{
		{-500, 0},
		{0, 0},
		{32767, MaxRaw},
		{40000, MaxRaw},
		{16384, 32768},
	}
	for _, test := range tests {
		pin.raw = test.raw
		got, err := a.ReadU16()
		if err != nil {
			t.Fatal(err)
		}
		if got != test.want {
			t.Errorf("raw %d: ReadU16 = %d, want %d", test.raw, got, test.want)
		}
	}

	readErr := errors.New("i2c nack")
	pin.readErr = readErr
	if _, err := a.ReadU16(); !errors.Is(err, readErr) {
		t.Errorf("ReadU16 = %v, want %v", err, readErr)
	}
}

func TestPeriphJoystick(t *testing.T) {
	xpin := &fakeAnalog{hi: 4095, raw: 2048}
	ypin := &fakeAnalog{hi: 4095, raw: 2048}
	btn := &gpiotest.Pin{N: "GPIO17", L: gpio.Low}
	j, err := New(PinConfig{X: PeriphADC(xpin), Y: PeriphADC(ypin), Button: PeriphPin(btn)}, 4)
	if err != nil {
		t.Fatal(err)
	}
	if btn.P != gpio.PullUp {
		t.Errorf("button pull = %v, want %v", btn.P, gpio.PullUp)
	}
	if cx, cy := j.Center(); cx != 32775 || cy != 32775 {
		t.Errorf("center = (%d, %d), want (32775, 32775)", cx, cy)
	}

	xpin.raw, ypin.raw = 4095, 0
	if v, _ := j.ReadX(); v != 100 {
		t.Errorf("ReadX = %d, want 100", v)
	}
	if v, _ := j.ReadY(); v != -100 {
		t.Errorf("ReadY = %d, want -100", v)
	}

	btn.L = gpio.Low
	if b, _ := j.ReadButton(); b != ButtonPressed {
		t.Errorf("ReadButton = %v with line low", b)
	}
	btn.L = gpio.High
	if b, _ := j.ReadButton(); b != ButtonReleased {
		t.Errorf("ReadButton = %v with line high", b)
	}
}
