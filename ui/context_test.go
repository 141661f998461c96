package ui

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestBrightnessColor(t *testing.T) {
	c := qt.New(t)
	c.Assert(BrightnessColor(8), qt.Equals, uint16(White))
	c.Assert(BrightnessColor(9), qt.Equals, uint16(White))
	c.Assert(BrightnessColor(7), qt.Equals, uint16(0xDEFB))
	c.Assert(BrightnessColor(1), qt.Equals, uint16(0x18E3))
}

func TestCommitBrightness(t *testing.T) {
	c := qt.New(t)
	ctx := NewContext()

	c.Assert(ctx.CommitBrightness(), qt.IsFalse)
	c.Assert(ctx.Pending(), qt.Equals, uint16(White))

	ctx.SetBrightness(7)
	c.Assert(ctx.BG, qt.Equals, uint16(White))
	c.Assert(ctx.CommitBrightness(), qt.IsTrue)
	c.Assert(ctx.BG, qt.Equals, uint16(0xDEFB))
	c.Assert(ctx.CommitBrightness(), qt.IsFalse)
}

func TestStep(t *testing.T) {
	c := qt.New(t)
	v := uint8(1)

	c.Assert(step(&v, false, 1, 8), qt.IsFalse)
	c.Assert(v, qt.Equals, uint8(1))
	for i := 0; i < 7; i++ {
		c.Assert(step(&v, true, 1, 8), qt.IsTrue)
	}
	c.Assert(step(&v, true, 1, 8), qt.IsFalse)
	c.Assert(v, qt.Equals, uint8(8))
}
