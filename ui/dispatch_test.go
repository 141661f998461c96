package ui

import (
	"context"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"

	"github.com/ajanata/hearsay/link"
	"github.com/ajanata/hearsay/stmpe610"
)

func newTestDispatcher(c *qt.C) (*Dispatcher, *fakeDisplay) {
	r, disp := newTestRenderer()
	d := NewDispatcher(r)
	c.Assert(d.Start(), qt.IsNil)
	return d, disp
}

func touch(x, y int16) stmpe610.Point {
	return stmpe610.Point{X: x, Y: y, Z: 40}
}

func TestStart(t *testing.T) {
	c := qt.New(t)
	d, disp := newTestDispatcher(c)

	c.Assert(d.Screen(), qt.Equals, Home)
	c.Assert(d.Cursor(), qt.Equals, Cursor{X: 10, Y: 10})
	c.Assert(disp.screens, qt.DeepEquals, []uint16{White})
	c.Assert(disp.text(), qt.Equals, "clear")
	c.Assert(disp.glyphs[0], qt.Equals, glyph{X: 280, Y: 228, Scale: 1, C: 'c'})
	c.Assert(disp.icons, qt.HasLen, 3)
	c.Assert(disp.icons[0].Bitmap, qt.DeepEquals, blockM[:])
	c.Assert(disp.icons[1].X, qt.Equals, int16(41))
	c.Assert(disp.icons[2].Bitmap, qt.DeepEquals, arrows[ArrowN][:])
}

func TestHomeTouches(t *testing.T) {
	c := qt.New(t)
	d, disp := newTestDispatcher(c)
	c.Assert(d.HandleLink(link.Event{Kind: link.Text, Text: "hi"}), qt.IsNil)
	disp.reset()

	c.Assert(d.HandleTouch(touch(160, 120)), qt.IsNil)
	c.Assert(d.HandleTouch(stmpe610.Cleared), qt.IsNil)
	c.Assert(disp.fills, qt.HasLen, 0)
	c.Assert(d.Cursor(), qt.Equals, Cursor{X: 22, Y: 10})

	c.Assert(d.HandleTouch(touch(290, 25)), qt.IsNil)
	c.Assert(d.Screen(), qt.Equals, Home)
	c.Assert(d.Cursor(), qt.Equals, Cursor{X: 10, Y: 10})
	c.Assert(disp.fills, qt.DeepEquals, []fill{{White, 10, 310, 10, 220}})
}

func TestSettingsTouch(t *testing.T) {
	c := qt.New(t)
	d, disp := newTestDispatcher(c)
	disp.reset()

	// within 20 pixels of the settings icon on both axes
	c.Assert(d.HandleTouch(touch(30, 30)), qt.IsNil)
	c.Assert(d.Screen(), qt.Equals, Settings)
	c.Assert(d.Params().Screen, qt.Equals, Settings)
	c.Assert(disp.screens, qt.DeepEquals, []uint16{White})
	c.Assert(disp.pixels > 0, qt.IsTrue)
	c.Assert(disp.text()[:8], qt.Equals, "< return")

	// one frame and one level fill per slider
	c.Assert(disp.fills, qt.DeepEquals, []fill{
		{Black, 30, 80, 60, 200},
		{White, 32, 78, 62, 198},
		{Black, 145, 195, 60, 200},
		{White, 147, 193, 181, 198},
		{Black, 260, 310, 60, 200},
		{White, 262, 308, 181, 198},
	})
}

func TestHitBoxIsExclusive(t *testing.T) {
	c := qt.New(t)
	d, _ := newTestDispatcher(c)

	c.Assert(d.HandleTouch(touch(21, 20)), qt.IsNil)
	c.Assert(d.Screen(), qt.Equals, Home)
	c.Assert(d.HandleTouch(touch(41, 40)), qt.IsNil)
	c.Assert(d.Screen(), qt.Equals, Home)
	c.Assert(d.HandleTouch(touch(22, 39)), qt.IsNil)
	c.Assert(d.Screen(), qt.Equals, Settings)
}

func TestSliderLimits(t *testing.T) {
	c := qt.New(t)
	tests := []struct {
		name     string
		up, down target
		value    func(*Context) uint8
		slider   int16
	}{
		{"font", fontUp, fontDown, func(c *Context) uint8 { return c.Font }, fontSlider},
		{"arrow", arrowUp, arrowDown, func(c *Context) uint8 { return c.Arrow }, arrowSlider},
		{"brightness", brightnessUp, brightnessDown, func(c *Context) uint8 { return c.Brightness }, brightnessSlider},
	}
	for _, test := range tests {
		c.Run(test.name, func(c *qt.C) {
			d, disp := newTestDispatcher(c)
			c.Assert(d.HandleTouch(touch(41, 20)), qt.IsNil)
			ctx := d.r.Context()

			for i := 0; i < 10; i++ {
				c.Assert(d.HandleTouch(touch(test.down.x, test.down.y)), qt.IsNil)
			}
			c.Assert(test.value(ctx), qt.Equals, uint8(1))

			disp.reset()
			for i := 0; i < 10; i++ {
				c.Assert(d.HandleTouch(touch(test.up.x, test.up.y)), qt.IsNil)
			}
			c.Assert(test.value(ctx), qt.Equals, uint8(8))
			c.Assert(disp.fills, qt.HasLen, 7)
			for _, f := range disp.fills {
				c.Assert(f.X0, qt.Equals, test.slider+2)
				c.Assert(f.Y1-f.Y0, qt.Equals, int16(sliderStep))
			}
			c.Assert(disp.fills[6].Y0, qt.Equals, int16(62))
		})
	}
}

func TestAdjustSliderSegments(t *testing.T) {
	c := qt.New(t)
	d, disp := newTestDispatcher(c)
	c.Assert(d.HandleTouch(touch(41, 20)), qt.IsNil)
	disp.reset()

	c.Assert(d.HandleTouch(touch(fontUp.x, fontUp.y)), qt.IsNil)
	c.Assert(d.HandleTouch(touch(fontDown.x, fontDown.y)), qt.IsNil)
	c.Assert(disp.fills, qt.DeepEquals, []fill{
		{White, 147, 193, 62 + 17*6, 62 + 17*7},
		{Black, 147, 193, 62 + 17*6, 62 + 17*7},
	})
}

func TestBrightnessCommitsOnReturn(t *testing.T) {
	c := qt.New(t)
	d, disp := newTestDispatcher(c)
	ctx := d.r.Context()
	c.Assert(d.HandleTouch(touch(41, 20)), qt.IsNil)

	c.Assert(d.HandleTouch(touch(brightnessDown.x, brightnessDown.y)), qt.IsNil)
	c.Assert(d.HandleTouch(touch(brightnessDown.x, brightnessDown.y)), qt.IsNil)
	// an unrelated adjustment in between keeps the change pending
	c.Assert(d.HandleTouch(touch(fontUp.x, fontUp.y)), qt.IsNil)

	c.Assert(ctx.Brightness, qt.Equals, uint8(6))
	c.Assert(ctx.BG, qt.Equals, uint16(White))
	c.Assert(ctx.Pending(), qt.Equals, uint16(0xBDF7))

	disp.reset()
	c.Assert(d.HandleTouch(touch(20, 220)), qt.IsNil)
	c.Assert(d.Screen(), qt.Equals, Home)
	c.Assert(ctx.BG, qt.Equals, uint16(0xBDF7))
	c.Assert(disp.screens, qt.DeepEquals, []uint16{0xBDF7})
	c.Assert(d.Cursor(), qt.Equals, Cursor{X: 10, Y: 10})
	c.Assert(d.Params(), qt.Equals, Params{Screen: Home, Font: 2, Arrow: 1, Brightness: 6, Background: 0xBDF7})
}

func TestReturnWithoutBrightnessChange(t *testing.T) {
	c := qt.New(t)
	d, disp := newTestDispatcher(c)
	c.Assert(d.HandleTouch(touch(41, 20)), qt.IsNil)
	disp.reset()

	c.Assert(d.HandleTouch(touch(20, 220)), qt.IsNil)
	c.Assert(disp.screens, qt.DeepEquals, []uint16{White})
}

func TestLinkEvents(t *testing.T) {
	c := qt.New(t)
	d, disp := newTestDispatcher(c)
	disp.reset()

	c.Assert(d.HandleLink(link.Event{Kind: link.Text, Text: "go left"}), qt.IsNil)
	c.Assert(d.HandleLink(link.Event{Kind: link.Arrow, Index: ArrowW}), qt.IsNil)
	c.Assert(disp.text(), qt.Equals, "go left")
	c.Assert(disp.icons, qt.HasLen, 1)
	c.Assert(disp.icons[0].Bitmap, qt.DeepEquals, arrows[ArrowW][:])

	c.Assert(d.HandleTouch(touch(41, 20)), qt.IsNil)
	disp.reset()
	c.Assert(d.HandleLink(link.Event{Kind: link.Text, Text: "ignored"}), qt.IsNil)
	c.Assert(d.HandleLink(link.Event{Kind: link.Arrow, Index: ArrowE}), qt.IsNil)
	c.Assert(disp.glyphs, qt.HasLen, 0)
	c.Assert(disp.icons, qt.HasLen, 0)
}

func TestRun(t *testing.T) {
	c := qt.New(t)
	d, _ := newTestDispatcher(c)
	events := NewEvents(0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- d.Run(ctx, events)
	}()

	events.PostTouch(touch(41, 20))
	deadline := time.Now().Add(5 * time.Second)
	for d.Params().Screen != Settings {
		c.Assert(time.Now().Before(deadline), qt.IsTrue)
		time.Sleep(time.Millisecond)
	}

	cancel()
	c.Assert(<-done, qt.Equals, context.Canceled)
}
