// Package console implements the wrist unit's debug console. Command lines typed on the debug UART are split
// shell-style and turned into the same events the touch controller and the link produce.
//
//	touch X Y [Z]   queue a touch point
//	text WORDS...   queue a line of transcript text
//	arrow INDEX     queue arrow icon INDEX (0-7, counter-clockwise from east)
//	dir ANGLE       queue the arrow for ANGLE degrees
//	params          print the display parameters
//	help            list the commands
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/shlex"

	"github.com/ajanata/hearsay/link"
	"github.com/ajanata/hearsay/stmpe610"
	"github.com/ajanata/hearsay/ui"
)

var (
	ErrUnknownCommand = errors.New("console: unknown command")
	ErrUsage          = errors.New("console: wrong number of arguments")
	ErrQueueFull      = errors.New("console: event queue full")
)

// ParamSource reports the current display parameters. *ui.Dispatcher implements it.
type ParamSource interface {
	Params() ui.Params
}

type Console struct {
	events *ui.Events
	params ParamSource
	out    io.Writer
}

func New(events *ui.Events, params ParamSource, out io.Writer) *Console {
	return &Console{
		events: events,
		params: params,
		out:    out,
	}
}

// Run executes lines read from r until it is exhausted. Errors are written to the output and do not stop the loop.
func (c *Console) Run(r io.Reader) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		err := c.Exec(s.Text())
		if err != nil {
			fmt.Fprintln(c.out, err)
		}
	}
	return s.Err()
}

// Exec runs one command line. Blank lines are ignored.
func (c *Console) Exec(line string) error {
	args, err := shlex.Split(line)
	if err != nil {
		return fmt.Errorf("console: %w", err)
	}
	if len(args) == 0 {
		return nil
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "touch":
		return c.touch(args)
	case "text":
		if len(args) == 0 {
			return fmt.Errorf("text: %w", ErrUsage)
		}
		return c.post(link.Event{Kind: link.Text, Text: strings.Join(args, " ") + "\n"})
	case "arrow":
		if len(args) != 1 {
			return fmt.Errorf("arrow: %w", ErrUsage)
		}
		i, err := strconv.ParseUint(args[0], 10, 8)
		if err != nil || i >= link.Arrows {
			return fmt.Errorf("arrow: bad index %q", args[0])
		}
		return c.post(link.Event{Kind: link.Arrow, Index: uint8(i)})
	case "dir":
		if len(args) != 1 {
			return fmt.Errorf("dir: %w", ErrUsage)
		}
		angle, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("dir: bad angle %q", args[0])
		}
		b, ok := link.ArrowByte(angle)
		if !ok {
			return fmt.Errorf("dir %d: %w", angle, link.ErrInvalidAngle)
		}
		return c.post(link.Event{Kind: link.Arrow, Index: b - 1})
	case "params":
		p := c.params.Params()
		fmt.Fprintf(c.out, "screen=%s font=%d arrow=%d brightness=%d background=%#04x\n",
			p.Screen, p.Font, p.Arrow, p.Brightness, p.Background)
		return nil
	case "help":
		fmt.Fprintln(c.out, "commands: touch X Y [Z], text WORDS..., arrow INDEX, dir ANGLE, params, help")
		return nil
	}
	return fmt.Errorf("%w %q", ErrUnknownCommand, cmd)
}

func (c *Console) touch(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return fmt.Errorf("touch: %w", ErrUsage)
	}
	var v [3]int16
	for i, a := range args {
		n, err := strconv.ParseInt(a, 10, 16)
		if err != nil {
			return fmt.Errorf("touch: bad coordinate %q", a)
		}
		v[i] = int16(n)
	}
	c.events.PostTouch(stmpe610.Point{X: v[0], Y: v[1], Z: v[2]})
	return nil
}

func (c *Console) post(ev link.Event) error {
	if !c.events.PostLink(ev) {
		return ErrQueueFull
	}
	return nil
}
