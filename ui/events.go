package ui

import (
	"github.com/ajanata/hearsay/link"
	"github.com/ajanata/hearsay/stmpe610"
)

// DefaultLinkDepth is the number of undelivered link events Events buffers.
const DefaultLinkDepth = 16

// Events queues input for the Dispatcher. Producers never block: a new touch replaces an undelivered one, and link
// events are dropped while the queue is full.
type Events struct {
	touch chan stmpe610.Point
	link  chan link.Event
}

func NewEvents(linkDepth int) *Events {
	if linkDepth <= 0 {
		linkDepth = DefaultLinkDepth
	}
	return &Events{
		touch: make(chan stmpe610.Point, 1),
		link:  make(chan link.Event, linkDepth),
	}
}

// PostTouch queues p, replacing a point that has not been delivered yet.
func (e *Events) PostTouch(p stmpe610.Point) {
	for {
		select {
		case e.touch <- p:
			return
		default:
		}
		select {
		case <-e.touch:
		default:
		}
	}
}

// PostLink queues ev and reports false if it was dropped.
func (e *Events) PostLink(ev link.Event) bool {
	select {
	case e.link <- ev:
		return true
	default:
		return false
	}
}

// PostLinkBytes decodes received link bytes and queues the resulting events. It returns the number dropped.
func (e *Events) PostLinkBytes(d *link.Decoder, p []byte) int {
	dropped := 0
	for _, ev := range d.Feed(p) {
		if !e.PostLink(ev) {
			dropped++
		}
	}
	return dropped
}

// Touches returns the queue of pending touch points.
func (e *Events) Touches() <-chan stmpe610.Point {
	return e.touch
}

// Links returns the queue of pending link events.
func (e *Events) Links() <-chan link.Event {
	return e.link
}
