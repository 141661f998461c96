package ui

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// Slider columns on the settings screen.
const (
	brightnessSlider = 30
	fontSlider       = 145
	arrowSlider      = 260
)

// Slider geometry. A slider is a frame from sliderTop to sliderBottom split into eight segments of sliderStep rows.
const (
	sliderWidth  = 50
	sliderTop    = 60
	sliderBottom = 200
	sliderStep   = 17
)

var titleFont = &proggy.TinySZ8pt7b

// DrawHome draws the home screen decorations: the logo, the settings icon and the clear button. The text box is left
// to ResetTextBox.
func (r *Renderer) DrawHome() error {
	err := r.disp.FillScreen(r.ctx.BG)
	if err != nil {
		return err
	}
	err = r.disp.PrintArray16(10, 222, blockM[:], blockMWidth, 1, r.ctx.FG, r.ctx.BG)
	if err != nil {
		return err
	}
	err = r.disp.PrintArray16(20+blockMWidth, 224, settingsIcon[:], iconWidth, 1, r.ctx.FG, r.ctx.BG)
	if err != nil {
		return err
	}
	return r.drawText(panelWidth-5*(fontWidth+1)-10, panelHeight-fontHeight-4, "clear", 1)
}

// DrawSettings draws the settings screen with a slider for each parameter.
func (r *Renderer) DrawSettings() error {
	err := r.disp.FillScreen(r.ctx.BG)
	if err != nil {
		return err
	}
	err = r.drawText(0, 0, "< return", 1)
	if err != nil {
		return err
	}
	tinyfont.WriteLine(r.disp, titleFont, 124, 22, "SETTINGS", rgba(r.ctx.FG))

	sliders := [...]struct {
		label string
		x     int16
		top   int16
		val   uint8
	}{
		{"Brightness", brightnessSlider, 52, r.ctx.Brightness},
		{"Font Size", fontSlider, 60, r.ctx.Font},
		{"Arrow Size", arrowSlider, 52, r.ctx.Arrow},
	}
	for _, s := range sliders {
		err = r.drawLabel(s.x-20, s.top, s.label)
		if err != nil {
			return err
		}
		err = r.drawSlider(s.x, s.val)
		if err != nil {
			return err
		}
	}
	return nil
}

// drawText draws s on one line at (x, y) without wrapping.
func (r *Renderer) drawText(x, y int16, s string, scale uint8) error {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < firstChar || c > lastChar {
			continue
		}
		err := r.disp.PrintArray8(x, y, font[c-firstChar][:], fontWidth, scale, r.ctx.FG, r.ctx.BG)
		if err != nil {
			return err
		}
		x += (fontWidth + 1) * int16(scale)
	}
	return nil
}

// drawLabel draws s top to bottom at double size, one character per row.
func (r *Renderer) drawLabel(x, y int16, s string) error {
	for i := 0; i < len(s); i++ {
		err := r.drawText(x, y+2*fontHeight*int16(i), s[i:i+1], 2)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawSlider(x int16, val uint8) error {
	err := r.disp.FillFrame(r.ctx.FG, x, x+sliderWidth, sliderTop, sliderBottom)
	if err != nil {
		return err
	}
	err = r.drawText(x+18, 26, "+", 3)
	if err != nil {
		return err
	}
	err = r.drawText(x+18, 210, "-", 3)
	if err != nil {
		return err
	}
	return r.disp.FillFrame(r.ctx.BG, x+2, x+sliderWidth-2, segment(val), sliderBottom-2)
}

// segment is the first row of the segment that shows level val.
func segment(val uint8) int16 {
	return sliderTop + 2 + sliderStep*(8-int16(val))
}

// AdjustSlider redraws the single segment that changed after the slider at x moved to val.
func (r *Renderer) AdjustSlider(x int16, val uint8, up bool) error {
	if up {
		return r.disp.FillFrame(r.ctx.BG, x+2, x+sliderWidth-2, segment(val), segment(val)+sliderStep)
	}
	return r.disp.FillFrame(r.ctx.FG, x+2, x+sliderWidth-2, segment(val)-sliderStep, segment(val))
}

// rgba converts an RGB565 color for tinyfont.
func rgba(c uint16) color.RGBA {
	r := uint8(c>>11) << 3
	g := uint8(c>>5&0x3F) << 2
	b := uint8(c&0x1F) << 3
	return color.RGBA{R: r | r>>5, G: g | g>>6, B: b | b>>5, A: 0xFF}
}
