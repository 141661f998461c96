// Package sph0645 reads the Adafruit SPH0645LM4H I2S MEMS microphone.
//
// The microphone sends 18-bit two's complement samples, MSB first, left-aligned in a 32-bit frame.
//
// Datasheet: https://cdn-shop.adafruit.com/product-files/3421/i2S+Datasheet.PDF
package sph0645

import (
	"errors"

	"github.com/ajanata/hearsay/localize"
)

// ErrNoData is returned when a microphone keeps sending empty frames.
var ErrNoData = errors.New("sph0645: no data")

// maxRetries bounds how many empty frames are skipped for one sample.
const maxRetries = 1000

// Bus is an I2S receiver delivering 32-bit frames. machine.I2S satisfies it.
type Bus interface {
	ReadStereo(b []uint32) (int, error)
}

type Device struct {
	bus Bus
	buf [1]uint32
}

func New(bus Bus) *Device {
	return &Device{bus: bus}
}

// Sample returns the next sample. Frames that are all zeros or all ones carry no data (the line idles at either level
// between words) and are skipped.
func (d *Device) Sample() (int32, error) {
	for i := 0; i < maxRetries; i++ {
		n, err := d.bus.ReadStereo(d.buf[:])
		if err != nil {
			return 0, err
		}
		if n == 0 {
			continue
		}
		w := int32(d.buf[0])
		if w == 0 || w == -1 {
			continue
		}
		return w >> 14, nil
	}
	return 0, ErrNoData
}

// Array is the four microphones of the head unit, indexed by localize.Channel.
type Array [4]*Device

// Sample fills f with one pass, reading the channels in turn so that sample i of every channel is taken at about the
// same time.
func (a Array) Sample(f *localize.Frame) error {
	for i := 0; i < localize.Samples; i++ {
		for ch, mic := range a {
			v, err := mic.Sample()
			if err != nil {
				return err
			}
			f[ch][i] = v
		}
	}
	return nil
}
