package ui

import (
	"tinygo.org/x/drivers"
)

// Panel size in the orientation the display is driven in.
const (
	panelWidth  = 320
	panelHeight = 240
)

// Display is the drawing surface the UI renders to. *ili9341.Device implements it.
type Display interface {
	drivers.Displayer
	FillScreen(c uint16) error
	FillFrame(c uint16, x0, x1, y0, y1 int16) error
	PrintArray8(x, y int16, bitmap []uint8, width, scale uint8, fg, bg uint16) error
	PrintArray16(x, y int16, bitmap []uint16, width, scale uint8, fg, bg uint16) error
}

// Cursor is the position the next glyph is drawn at.
type Cursor struct {
	X, Y int16
}

// Box is a rectangle in display pixels.
type Box struct {
	X, Y, W, H int16
}

// TextBox is where transcript text is rendered.
var TextBox = Box{X: 10, Y: 10, W: 300, H: 210}

// Renderer draws glyphs and word-wrapped text into the text box using the current Context parameters.
type Renderer struct {
	disp Display
	ctx  *Context
	box  Box
}

func NewRenderer(disp Display, ctx *Context) *Renderer {
	return &Renderer{
		disp: disp,
		ctx:  ctx,
		box:  TextBox,
	}
}

// Context returns the parameters the renderer draws with.
func (r *Renderer) Context() *Context {
	return r.ctx
}

// advance is the horizontal space one glyph takes, including the gap after it.
func (r *Renderer) advance() int16 {
	return (fontWidth + 1) * int16(r.ctx.Font)
}

// LineAvailability returns the usable width of the line at y. Lines level with the direction arrow leave room for it.
func (r *Renderer) LineAvailability(y int16) int16 {
	a := int16(r.ctx.Arrow)
	if y <= (arrowHeight+1)*a {
		return r.box.W - (arrowWidth+1)*a
	}
	return r.box.W
}

// PrintChar draws c at cur and advances it. A newline moves to the next line, or clears the box when the next line
// would not fit. Codes without a glyph are ignored. A glyph whose advance would cross the right edge of the box starts a
// new line first, and a space that would do so is replaced by the line break.
func (r *Renderer) PrintChar(cur *Cursor, c byte) error {
	if c == '\n' {
		return r.newline(cur)
	}
	if c < firstChar || c > lastChar {
		return nil
	}

	if cur.X+r.advance() > r.box.X+r.box.W {
		err := r.newline(cur)
		if err != nil {
			return err
		}
		if c == ' ' {
			return nil
		}
	}

	err := r.disp.PrintArray8(cur.X, cur.Y, font[c-firstChar][:], fontWidth, r.ctx.Font, r.ctx.FG, r.ctx.BG)
	if err != nil {
		return err
	}
	cur.X += r.advance()
	return nil
}

func (r *Renderer) newline(cur *Cursor) error {
	s := int16(r.ctx.Font)
	if cur.Y+s*(2*fontHeight+1) > r.box.Y+r.box.H {
		return r.ResetTextBox(cur)
	}
	cur.X = r.box.X
	cur.Y += s * (fontHeight + 1)
	return nil
}

// isBreak reports whether c ends a word.
func isBreak(c byte) bool {
	return c == ' ' || c == '\n' || c == 0
}

// PrintString draws text with word wrap, stopping at the end of text or at a NUL.
//
// A word that fits on the current line but not in the space left on it moves to the next line. A word wider than a
// whole line is split: as much as fits is printed followed by a hyphen, and the rest continues on the next line.
func (r *Renderer) PrintString(cur *Cursor, text string) error {
	adv := int(r.advance())
	pos := 0
	for pos < len(text) && text[pos] != 0 {
		n := 0
		for pos+n < len(text) && !isBreak(text[pos+n]) {
			n++
		}
		if n == 0 {
			// a lone space or newline
			n = 1
		}

		avail := int(r.LineAvailability(cur.Y))
		edge := int(r.box.X) + avail
		split := false
		if n*adv > avail {
			fit := (edge-int(cur.X))/adv - 1 // leave room for the hyphen
			if fit <= 0 {
				if cur.X > r.box.X {
					err := r.PrintChar(cur, '\n')
					if err != nil {
						return err
					}
					continue
				}
				fit = 1
			}
			n, split = fit, true
		} else if text[pos] != '\n' && n*adv+int(cur.X) > edge {
			err := r.PrintChar(cur, '\n')
			if err != nil {
				return err
			}
		}

		for k := 0; k < n; k++ {
			err := r.PrintChar(cur, text[pos+k])
			if err != nil {
				return err
			}
		}
		pos += n

		if pos < len(text) && text[pos] == ' ' && cur.X > r.box.X {
			err := r.PrintChar(cur, ' ')
			if err != nil {
				return err
			}
			pos++
		}

		if split {
			err := r.continuation(cur)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// continuation ends a split word with a hyphen and a line break.
func (r *Renderer) continuation(cur *Cursor) error {
	if cur.X+r.advance() > r.box.X+r.LineAvailability(cur.Y) {
		err := r.PrintChar(cur, '\n')
		if err != nil {
			return err
		}
	}
	err := r.PrintChar(cur, '-')
	if err != nil {
		return err
	}
	return r.PrintChar(cur, '\n')
}

// ResetTextBox clears the text box, draws the north arrow in the top right corner and homes the cursor.
func (r *Renderer) ResetTextBox(cur *Cursor) error {
	err := r.disp.FillFrame(r.ctx.BG, r.box.X, r.box.X+r.box.W, r.box.Y, r.box.Y+r.box.H)
	if err != nil {
		return err
	}
	err = r.DrawArrow(ArrowN)
	if err != nil {
		return err
	}
	cur.X, cur.Y = r.box.X, r.box.Y
	return nil
}

// DrawArrow draws arrow icon i in the top right corner at the current arrow size.
func (r *Renderer) DrawArrow(i int) error {
	if i < 0 || i >= len(arrows) {
		return nil
	}
	a := r.ctx.Arrow
	x := panelWidth - arrowWidth*int16(a) - 10
	return r.disp.PrintArray16(x, 4, arrows[i][:], arrowWidth, a, r.ctx.FG, r.ctx.BG)
}
