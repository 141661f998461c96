// Package ili9341 implements a driver for the ILI9341 TFT LCD controller over a 4-wire SPI interface, as found on
// the Adafruit 2.8" TFT breakout.
//
// The driver does not keep a framebuffer. Every drawing call addresses a window in display memory and streams 16-bit
// RGB565 colors into it.
//
// Datasheet: https://cdn-shop.adafruit.com/datasheets/ILI9341.pdf
package ili9341

import (
	"image/color"
	"time"

	"tinygo.org/x/drivers"
)

const (
	DefaultWidth  = 320
	DefaultHeight = 240
)

// Pin is an output GPIO. machine.Pin satisfies it.
type Pin interface {
	Set(high bool)
}

type Device struct {
	bus    drivers.SPI
	dc     Pin
	cs     Pin
	width  int16
	height int16
	buf    [64]byte
}

type Config struct {
	Width  int16
	Height int16
}

// New creates a new driver. The SPI bus and both pins must already be configured.
func New(bus drivers.SPI, dc, cs Pin) *Device {
	cs.Set(true)
	return &Device{
		bus:    bus,
		dc:     dc,
		cs:     cs,
		width:  DefaultWidth,
		height: DefaultHeight,
	}
}

// Configure resets the controller and runs the power-up command sequence.
func (d *Device) Configure(c Config) error {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	d.width, d.height = c.Width, c.Height

	err := d.WriteCommand(SWRESET)
	if err != nil {
		return err
	}
	time.Sleep(150 * time.Millisecond)

	for i := 0; initCmds[i] != 0x00; {
		cmd := initCmds[i]
		n := int(initCmds[i+1])
		err = d.WriteCommand(cmd)
		if err != nil {
			return err
		}
		err = d.WriteData(initCmds[i+2 : i+2+n]...)
		if err != nil {
			return err
		}
		i += 2 + n
	}
	return nil
}

// WriteCommand sends a single command byte with D/C low.
func (d *Device) WriteCommand(cmd uint8) error {
	d.cs.Set(false)
	d.dc.Set(false)
	_, err := d.bus.Transfer(cmd)
	d.cs.Set(true)
	return err
}

// WriteData sends parameter or pixel bytes with D/C high.
func (d *Device) WriteData(data ...uint8) error {
	if len(data) == 0 {
		return nil
	}
	d.cs.Set(false)
	d.dc.Set(true)
	err := d.bus.Tx(data, nil)
	d.cs.Set(true)
	return err
}

// SetFrameArea selects the window later memory writes fill. x0 must not exceed x1, nor y0 y1.
func (d *Device) SetFrameArea(x0, x1, y0, y1 int16) error {
	err := d.WriteCommand(PASET)
	if err != nil {
		return err
	}
	err = d.WriteData(uint8(x0>>8), uint8(x0), uint8(x1>>8), uint8(x1))
	if err != nil {
		return err
	}
	err = d.WriteCommand(CASET)
	if err != nil {
		return err
	}
	return d.WriteData(uint8(y0>>8), uint8(y0), uint8(y1>>8), uint8(y1))
}

// inBounds reports whether the inclusive window lies on the panel with its corners in order.
func (d *Device) inBounds(x0, x1, y0, y1 int16) bool {
	return x0 >= 0 && y0 >= 0 && x1 >= x0 && y1 >= y0 && x1 < d.width && y1 < d.height
}

// FillFrame fills the inclusive window with c. Windows that are inverted or leave the panel are ignored.
func (d *Device) FillFrame(c uint16, x0, x1, y0, y1 int16) error {
	if !d.inBounds(x0, x1, y0, y1) {
		return nil
	}
	err := d.SetFrameArea(x0, x1, y0, y1)
	if err != nil {
		return err
	}
	err = d.WriteCommand(RAMWR)
	if err != nil {
		return err
	}
	n := (int(x1-x0) + 1) * (int(y1-y0) + 1)
	return d.stream(n, func(int) uint16 { return c })
}

// FillScreen fills the whole panel with c.
func (d *Device) FillScreen(c uint16) error {
	return d.FillFrame(c, 0, d.width-1, 0, d.height-1)
}

// PrintArray8 renders a column-major bitmap with 8 rows per column at (x, y). Each source pixel becomes a
// scale x scale block of fg (bit set) or bg.
func (d *Device) PrintArray8(x, y int16, bitmap []uint8, width, scale uint8, fg, bg uint16) error {
	return d.printArray(x, y, width, 8, scale, fg, bg, func(i int) uint16 { return uint16(bitmap[i]) })
}

// PrintArray16 is PrintArray8 for bitmaps with 16 rows per column.
func (d *Device) PrintArray16(x, y int16, bitmap []uint16, width, scale uint8, fg, bg uint16) error {
	return d.printArray(x, y, width, 16, scale, fg, bg, func(i int) uint16 { return bitmap[i] })
}

func (d *Device) printArray(x, y int16, width, rows, scale uint8, fg, bg uint16, column func(int) uint16) error {
	if scale == 0 || width == 0 {
		return nil
	}
	w := int16(width) * int16(scale)
	h := int16(rows) * int16(scale)
	if !d.inBounds(x, x+w-1, y, y+h-1) {
		return nil
	}
	err := d.SetFrameArea(x, x+w-1, y, y+h-1)
	if err != nil {
		return err
	}
	err = d.WriteCommand(RAMWR)
	if err != nil {
		return err
	}

	s := int(scale)
	perColumn := int(h)
	return d.stream(int(w)*perColumn, func(i int) uint16 {
		// the source column advances once per scaled column, the source row once per scaled row
		col := column(i / perColumn / s)
		row := (i % perColumn) / s
		if col&(1<<row) != 0 {
			return fg
		}
		return bg
	})
}

// stream sends n pixels, asking pixel for each one in order, after a RAMWR command.
func (d *Device) stream(n int, pixel func(int) uint16) error {
	d.cs.Set(false)
	d.dc.Set(true)
	defer d.cs.Set(true)

	k := 0
	for i := 0; i < n; i++ {
		c := pixel(i)
		d.buf[k] = uint8(c >> 8)
		d.buf[k+1] = uint8(c)
		k += 2
		if k == len(d.buf) {
			if err := d.bus.Tx(d.buf[:k], nil); err != nil {
				return err
			}
			k = 0
		}
	}
	if k > 0 {
		return d.bus.Tx(d.buf[:k], nil)
	}
	return nil
}

// Size returns the panel dimensions in the current orientation.
func (d *Device) Size() (x, y int16) {
	return d.width, d.height
}

// SetPixel draws a single pixel. It is slow, since every pixel needs its own window, but it makes the panel usable as
// a drivers.Displayer for tinyfont and tinyterm.
func (d *Device) SetPixel(x, y int16, c color.RGBA) {
	d.FillFrame(RGB565(c), x, x, y, y)
}

// Display is a no-op: pixels are written to the panel as they are drawn.
func (d *Device) Display() error {
	return nil
}

// FillRectangle fills a width x height rectangle with its top-left corner at (x, y).
func (d *Device) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	return d.FillFrame(RGB565(c), x, x+width-1, y, y+height-1)
}

// SetScroll sets the first line of the vertical scrolling area.
func (d *Device) SetScroll(line int16) {
	d.WriteCommand(VSCRSADD)
	d.WriteData(uint8(line>>8), uint8(line))
}

// RGB565 packs c into the panel's 16-bit pixel format.
func RGB565(c color.RGBA) uint16 {
	return uint16(c.R&0xF8)<<8 | uint16(c.G&0xFC)<<3 | uint16(c.B)>>3
}
