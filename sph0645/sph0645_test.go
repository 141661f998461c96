package sph0645

import (
	"errors"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/ajanata/hearsay/localize"
)

type fakeBus struct {
	words []uint32
	// fill is returned once words runs out.
	fill  uint32
	err   error
	reads int
}

func (b *fakeBus) ReadStereo(buf []uint32) (int, error) {
	b.reads++
	if b.err != nil {
		return 0, b.err
	}
	for i := range buf {
		if len(b.words) == 0 {
			buf[i] = b.fill
			continue
		}
		buf[i] = b.words[0]
		b.words = b.words[1:]
	}
	return len(buf), nil
}

func TestSample(t *testing.T) {
	c := qt.New(t)
	bus := &fakeBus{words: []uint32{0, 0xFFFFFFFF, 0x00010000, 0xFFFC0000}}
	mic := New(bus)

	v, err := mic.Sample()
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, int32(4))
	c.Assert(bus.reads, qt.Equals, 3)

	v, err = mic.Sample()
	c.Assert(err, qt.IsNil)
	c.Assert(v, qt.Equals, int32(-16))
}

func TestSampleNoData(t *testing.T) {
	c := qt.New(t)
	bus := &fakeBus{}

	_, err := New(bus).Sample()
	c.Assert(err, qt.Equals, ErrNoData)
	c.Assert(bus.reads, qt.Equals, maxRetries)
}

func TestSampleBusError(t *testing.T) {
	c := qt.New(t)
	_, err := New(&fakeBus{err: errors.New("overrun")}).Sample()
	c.Assert(err, qt.ErrorMatches, "overrun")
}

func TestArraySample(t *testing.T) {
	c := qt.New(t)
	var a Array
	for ch := range a {
		a[ch] = New(&fakeBus{fill: uint32(ch+1) << 14})
	}

	var f localize.Frame
	c.Assert(a.Sample(&f), qt.IsNil)
	c.Assert(f[localize.A1][0], qt.Equals, int32(1))
	c.Assert(f[localize.B2][localize.Samples-1], qt.Equals, int32(4))
}
