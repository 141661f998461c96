package ui

import (
	"image/color"
)

type fill struct {
	C              uint16
	X0, X1, Y0, Y1 int16
}

type glyph struct {
	X, Y  int16
	Scale uint8
	C     byte
}

type icon struct {
	X, Y   int16
	Scale  uint8
	Bitmap []uint16
}

// fakeDisplay records drawing calls.
type fakeDisplay struct {
	screens []uint16
	fills   []fill
	glyphs  []glyph
	icons   []icon
	pixels  int
}

var glyphCodes = func() map[[fontWidth]uint8]byte {
	m := make(map[[fontWidth]uint8]byte)
	for i := len(font) - 1; i >= 0; i-- {
		m[font[i]] = byte(i + firstChar)
	}
	return m
}()

func (d *fakeDisplay) Size() (x, y int16) {
	return panelWidth, panelHeight
}

func (d *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.pixels++
}

func (d *fakeDisplay) Display() error {
	return nil
}

func (d *fakeDisplay) FillScreen(c uint16) error {
	d.screens = append(d.screens, c)
	return nil
}

func (d *fakeDisplay) FillFrame(c uint16, x0, x1, y0, y1 int16) error {
	d.fills = append(d.fills, fill{c, x0, x1, y0, y1})
	return nil
}

func (d *fakeDisplay) PrintArray8(x, y int16, bitmap []uint8, width, scale uint8, fg, bg uint16) error {
	var g [fontWidth]uint8
	copy(g[:], bitmap)
	d.glyphs = append(d.glyphs, glyph{x, y, scale, glyphCodes[g]})
	return nil
}

func (d *fakeDisplay) PrintArray16(x, y int16, bitmap []uint16, width, scale uint8, fg, bg uint16) error {
	d.icons = append(d.icons, icon{x, y, scale, bitmap})
	return nil
}

// text returns the drawn characters in order.
func (d *fakeDisplay) text() string {
	b := make([]byte, len(d.glyphs))
	for i, g := range d.glyphs {
		b[i] = g.C
	}
	return string(b)
}

func (d *fakeDisplay) reset() {
	*d = fakeDisplay{}
}

func newTestRenderer() (*Renderer, *fakeDisplay) {
	disp := &fakeDisplay{}
	return NewRenderer(disp, NewContext()), disp
}
