// Package joystick provides a driver for two-axis analog joysticks, such as
// the common KY-023 thumbstick module.
//
// The driver reads both potentiometers through ADC channels, averages a few
// samples at rest to find the center, and reports each axis as an integer
// from -100 to 100. The optional push button is reported as pressed,
// released or unavailable.
//
// # Features
//
//   - Center calibration by sample averaging
//   - Exact ±100 at both ends of travel regardless of where the center sits
//   - Optional button with internal pull-up
//   - TinyGo (rp2040/rp2350), periph.io and Linux gpiod/MCP3xxx backends
//   - tinygo.org/x/drivers Sensor interface
//
// # Hardware Connection
//
// Connect the module as follows (no external resistors needed, the button
// uses the internal pull-up):
//
//	Module Pin | Function     | Notes
//	-----------|--------------|---------------------------
//	GND        | Ground       |
//	+5V        | VCC          | Use 3.3V on 3.3V-only ADCs
//	VRx        | X axis       | ADC input
//	VRy        | Y axis       | ADC input
//	SW         | Button       | Optional, closes to ground
//
// # Example Usage
//
//	package main
//
//	import (
//	    "machine"
//	    "time"
//	    "path/to/joystick"
//	)
//
//	func main() {
//	    js, err := joystick.NewMachine(machine.ADC0, machine.ADC1, machine.GP15,
//	        joystick.DefaultCalibrationSamples)
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    for {
//	        x, _ := js.ReadX()
//	        y, _ := js.ReadY()
//	        b, _ := js.ReadButton()
//	        println("X:", x, "Y:", y, "Button:", b.String())
//
//	        time.Sleep(250 * time.Millisecond)
//	    }
//	}
//
// Each ReadX, ReadY and ReadButton call performs a fresh conversion. Keep the
// stick at rest while the joystick is created, or call Calibrate later.
//
// # Scaling
//
// Readings above the center are scaled against the distance from the center
// to 65535, readings below against the distance to 0. When the center is off
// the midpoint the two halves therefore have different sensitivity.
package joystick
