// Package link implements the byte protocol on the serial line between the units.
//
// Printable ASCII (0x20-0x7E) and newline are transcript text. Bytes 0x01-0x08 select one of the eight direction
// arrows, counter-clockwise from east: E, NE, N, NW, W, SW, S, SE, so an angle in degrees maps to angle/45+1. All
// other bytes are ignored.
package link

import (
	"errors"
	"io"
)

// ErrInvalidAngle is returned for angles that are not a multiple of 45 degrees in [0, 360).
var ErrInvalidAngle = errors.New("link: invalid angle")

// BufferSize is the longest text event the decoder emits.
const BufferSize = 100

// Undetermined is the angle for which no control byte is sent.
const Undetermined = -1

// Arrows is the number of direction icons.
const Arrows = 8

type Kind uint8

const (
	Text Kind = iota + 1
	Arrow
)

// Event is one decoded unit of link traffic.
type Event struct {
	Kind Kind
	// Text is set for Text events.
	Text string
	// Index is the arrow icon for Arrow events, 0 (east) to 7 (south-east).
	Index uint8
}

// ArrowByte returns the control byte for angle.
func ArrowByte(angle int) (byte, bool) {
	if angle < 0 || angle >= 360 || angle%45 != 0 {
		return 0, false
	}
	return byte(angle/45 + 1), true
}

// Angle returns the angle shown by arrow icon index.
func Angle(index uint8) int {
	return int(index%Arrows) * 45
}

func printable(b byte) bool {
	return b >= 0x20 && b <= 0x7E
}

// Decoder splits the received byte stream into events. The zero value is ready to use.
type Decoder struct {
	buf [BufferSize]byte
	n   int
}

// Feed decodes p. Text is flushed at a newline, when the buffer fills and before an arrow, so events come out in
// stream order. Unterminated text is held until a later Feed completes it.
func (d *Decoder) Feed(p []byte) []Event {
	var events []Event
	for _, b := range p {
		switch {
		case printable(b) || b == '\n':
			d.buf[d.n] = b
			d.n++
			if b == '\n' || d.n == len(d.buf) {
				events = d.flush(events)
			}
		case b >= 1 && b <= Arrows:
			events = d.flush(events)
			events = append(events, Event{Kind: Arrow, Index: b - 1})
		}
	}
	return events
}

func (d *Decoder) flush(events []Event) []Event {
	if d.n == 0 {
		return events
	}
	events = append(events, Event{Kind: Text, Text: string(d.buf[:d.n])})
	d.n = 0
	return events
}

// Encoder writes link traffic to w.
type Encoder struct {
	w   io.Writer
	buf []byte
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// WriteText sends s as one line. Bytes that are not text are dropped and a trailing newline is added if missing.
// Nothing is sent when no text remains.
func (e *Encoder) WriteText(s string) error {
	e.buf = e.buf[:0]
	for i := 0; i < len(s); i++ {
		if printable(s[i]) || s[i] == '\n' {
			e.buf = append(e.buf, s[i])
		}
	}
	if len(e.buf) == 0 {
		return nil
	}
	if e.buf[len(e.buf)-1] != '\n' {
		e.buf = append(e.buf, '\n')
	}
	_, err := e.w.Write(e.buf)
	return err
}

// WriteDirection sends the control byte for angle. Undetermined sends nothing.
func (e *Encoder) WriteDirection(angle int) error {
	if angle == Undetermined {
		return nil
	}
	b, ok := ArrowByte(angle)
	if !ok {
		return ErrInvalidAngle
	}
	_, err := e.w.Write([]byte{b})
	return err
}
