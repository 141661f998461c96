// Package stmpe610 implements a driver for the STMPE610 resistive touch screen controller over I2C, as found on the
// Adafruit 2.8" TFT touch shield.
//
// Datasheet: https://cdn-shop.adafruit.com/datasheets/STMPE610.pdf
package stmpe610

import (
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// ErrNotDetected is returned by Configure when the chip ID does not match.
var ErrNotDetected = errors.New("stmpe610: device not detected")

// Raw readings outside this range are clamped before scaling to the panel.
const (
	rawMin = 400
	rawMax = 4100
)

// Point is a touch position in panel pixels with its pressure.
type Point struct {
	X int16
	Y int16
	Z int16
}

// Cleared is the point used when there is no touch to handle. It lies outside every hit box near the panel origin.
var Cleared = Point{X: -21, Y: -21, Z: 0}

// Near reports whether the point lies strictly within 20 pixels of (x, y) on both axes.
func (p Point) Near(x, y int16) bool {
	return x > p.X-20 && x < p.X+20 && y > p.Y-20 && y < p.Y+20
}

type Device struct {
	bus    drivers.I2C
	addr   uint8
	width  int16
	height int16
}

type Config struct {
	Address uint8
	// Width and Height are the panel size that raw readings are scaled to. Default to 320x240.
	Width  int16
	Height int16
}

// New creates a new driver on the provided I2C bus.
func New(bus drivers.I2C) *Device {
	return &Device{
		bus:    bus,
		addr:   DefaultAddress,
		width:  320,
		height: 240,
	}
}

// Configure checks the chip ID, resets the controller and enables XYZ touch acquisition. ErrNotDetected leaves the
// device untouched.
func (d *Device) Configure(c Config) error {
	if c.Address == 0 {
		c.Address = DefaultAddress
	}
	if c.Width == 0 {
		c.Width = 320
	}
	if c.Height == 0 {
		c.Height = 240
	}
	d.addr = c.Address
	d.width, d.height = c.Width, c.Height

	v, err := d.Version()
	if err != nil {
		return err
	}
	if v != chipVersion {
		return ErrNotDetected
	}

	err = d.write(SysCtrl1, SysCtrl1Reset)
	if err != nil {
		return err
	}
	time.Sleep(20 * time.Millisecond)

	// read through the register file once after reset
	for r := uint8(0); r < 65; r++ {
		_, err = d.read8(r)
		if err != nil {
			return err
		}
	}

	for _, rv := range initRegs {
		err = d.write(rv[0], rv[1])
		if err != nil {
			return err
		}
	}
	return nil
}

// Version returns the 16-bit chip ID.
func (d *Device) Version() (uint16, error) {
	return d.read16(ChipID)
}

// Touched reports whether the panel is currently pressed.
func (d *Device) Touched() (bool, error) {
	v, err := d.read8(TSCCtrl)
	return v&TSCCtrlTouched != 0, err
}

// BufferEmpty reports whether the sample FIFO is empty.
func (d *Device) BufferEmpty() (bool, error) {
	v, err := d.read8(FIFOSta)
	return v&FIFOStaEmpty != 0, err
}

// GetPoint drains the FIFO and returns the most recent sample scaled to the panel, then acknowledges all interrupts.
// With an empty FIFO it returns Cleared.
func (d *Device) GetPoint() (Point, error) {
	p := Cleared
	var data [4]uint8
	for {
		empty, err := d.BufferEmpty()
		if err != nil {
			return Cleared, err
		}
		if empty {
			break
		}
		for i := range data {
			data[i], err = d.read8(TSCDataXYZ)
			if err != nil {
				return Cleared, err
			}
		}
		p = decode(data, d.width, d.height)
	}

	err := d.write(IntSta, 0xFF)
	if err != nil {
		return Cleared, err
	}
	return p, nil
}

// decode unpacks one 4-byte FIFO entry: 12 bits of Y, 12 bits of X, 8 bits of Z.
func decode(data [4]uint8, width, height int16) Point {
	y := uint16(data[0])<<4 | uint16(data[1])>>4
	x := uint16(data[1]&0x0F)<<8 | uint16(data[2])
	return Point{
		X: scale(x, width),
		Y: scale(y, height),
		Z: int16(data[3]),
	}
}

func scale(raw uint16, size int16) int16 {
	v := int32(raw)
	if v < rawMin {
		v = rawMin
	}
	if v > rawMax {
		v = rawMax
	}
	s := (v - rawMin) * int32(size) / (rawMax - rawMin)
	if s >= int32(size) {
		s = int32(size) - 1
	}
	return int16(s)
}

func (d *Device) read8(reg uint8) (uint8, error) {
	buf := [1]byte{}
	err := d.bus.ReadRegister(d.addr, reg, buf[:])
	return buf[0], err
}

func (d *Device) read16(reg uint8) (uint16, error) {
	buf := [2]byte{}
	err := d.bus.ReadRegister(d.addr, reg, buf[:])
	return uint16(buf[0])<<8 | uint16(buf[1]), err
}

func (d *Device) write(reg, val uint8) error {
	buf := [1]byte{val}
	return d.bus.WriteRegister(d.addr, reg, buf[:])
}
