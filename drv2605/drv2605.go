// Package drv2605 implements a driver for the DRV2605/DRV2605L haptic motor controller.
//
// The controller plays effects from its built-in ROM libraries. Up to eight effects are loaded into
// consecutive waveform sequence slots and played back when the Go register is set.
//
// Datasheet: https://cdn-shop.adafruit.com/datasheets/DRV2605.pdf
package drv2605

import (
	"errors"

	"tinygo.org/x/drivers"
)

// ErrInvalidSlot is returned when a waveform slot outside 0..7 is requested.
var ErrInvalidSlot = errors.New("drv2605: invalid waveform slot")

// Slots is the number of waveform sequence registers.
const Slots = 8

type Device struct {
	bus  drivers.I2C
	addr uint8
}

type Config struct {
	Address uint8
	// Library selects the effect library, 1-5 for ERM motors and 6 for LRA. Defaults to 1.
	Library uint8
	Mode    OperatingMode
}

// New creates a new driver on the provided I2C bus. All four head unit motors share the same address, so each one
// needs its own bus.
func New(bus drivers.I2C) *Device {
	return &Device{
		bus:  bus,
		addr: DefaultAddress,
	}
}

// Configure brings the motor out of standby and sets it up for ERM open loop playback of a single strong click.
func (d *Device) Configure(c Config) error {
	if c.Address == 0 {
		c.Address = DefaultAddress
	}
	if c.Library == 0 {
		c.Library = 1
	}
	d.addr = c.Address

	// reading status clears the over-current and over-temperature flags
	_, err := d.read8(Status)
	if err != nil {
		return err
	}

	seq := [...][2]uint8{
		{Mode, 0x00}, // out of standby
		{RTPIn, 0x00},
		{WaveSeq1, 0x01}, // strong click
		{WaveSeq2, 0x00}, // end of sequence
		{Overdrive, 0x00},
		{SustainPos, 0x00},
		{SustainNeg, 0x00},
		{Break, 0x00},
		{AudioMax, 0x64},
	}
	for _, rv := range seq {
		err = d.write(rv[0], rv[1])
		if err != nil {
			return err
		}
	}

	err = d.UseERM()
	if err != nil {
		return err
	}
	err = d.setBits(Control3, control3ERMOpenLp)
	if err != nil {
		return err
	}

	err = d.SelectLibrary(c.Library)
	if err != nil {
		return err
	}
	return d.SetMode(c.Mode)
}

// SelectLibrary selects the waveform effects library.
func (d *Device) SelectLibrary(lib uint8) error {
	return d.write(Library, lib)
}

// SetMode sets the functional mode.
func (d *Device) SetMode(mode OperatingMode) error {
	return d.write(Mode, uint8(mode))
}

// SetWaveform loads effect into the given sequence slot. An effect of 0 ends the sequence.
func (d *Device) SetWaveform(slot, effect uint8) error {
	if slot >= Slots {
		return ErrInvalidSlot
	}
	return d.write(WaveSeq1+slot, effect)
}

// Go starts playback of the loaded sequence.
func (d *Device) Go() error {
	return d.write(Go, 0x01)
}

// Stop halts playback.
func (d *Device) Stop() error {
	return d.write(Go, 0x00)
}

// SetRealtimeValue sets the drive level used in ModeRealtime.
func (d *Device) SetRealtimeValue(rtp uint8) error {
	return d.write(RTPIn, rtp)
}

// UseERM selects an eccentric rotating mass motor.
func (d *Device) UseERM() error {
	v, err := d.read8(Feedback)
	if err != nil {
		return err
	}
	return d.write(Feedback, v&^feedbackNERMLRA)
}

// UseLRA selects a linear resonance actuator.
func (d *Device) UseLRA() error {
	return d.setBits(Feedback, feedbackNERMLRA)
}

func (d *Device) setBits(reg, bits uint8) error {
	v, err := d.read8(reg)
	if err != nil {
		return err
	}
	return d.write(reg, v|bits)
}

func (d *Device) read8(reg uint8) (uint8, error) {
	buf := [1]byte{}
	err := d.bus.ReadRegister(d.addr, reg, buf[:])
	return buf[0], err
}

func (d *Device) write(reg, val uint8) error {
	buf := [1]byte{val}
	return d.bus.WriteRegister(d.addr, reg, buf[:])
}
