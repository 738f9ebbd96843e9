package monitor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/sonicmon/sonicmon/pkg/util"
)

// Config is the mutable loop state: which screen to render and how
// often. It is owned by the controller's render loop; the input
// listener only enqueues intent.
type Config struct {
	Screen   Screen
	Interval float64 // refresh interval in seconds, always > 0
}

// DefaultConfig returns the startup configuration.
func DefaultConfig() Config {
	return Config{Screen: ScreenMain, Interval: 1.0}
}

// Message asks the render loop to change screen and/or interval. Zero
// fields mean "leave unchanged".
type Message struct {
	Screen   Screen
	Interval float64
	Quit     bool
}

// ParseCommand turns one line of user input into a Message. A leading
// digit selects a new interval (any positive float); the screen
// keywords and their single-letter aliases select a view; q quits.
// Anything else is an error and must not be enqueued.
func ParseCommand(line string) (Message, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Message{}, fmt.Errorf("empty input")
	}

	if unicode.IsDigit(rune(trimmed[0])) {
		interval, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return Message{}, fmt.Errorf("%q is not a valid interval", trimmed)
		}
		if interval <= 0 {
			return Message{}, fmt.Errorf("interval must be positive, got %v", interval)
		}
		return Message{Interval: interval}, nil
	}

	switch strings.ToLower(trimmed) {
	case "i", "interface":
		return Message{Screen: ScreenInterface}, nil
	case "m", "main":
		return Message{Screen: ScreenMain}, nil
	case "l", "lldp":
		return Message{Screen: ScreenLldp}, nil
	case "q", "quit":
		return Message{Quit: true}, nil
	}
	return Message{}, fmt.Errorf("%q is not a valid input option", trimmed)
}

// RenderFunc formats a view model for a terminal of the given width.
type RenderFunc func(vm ViewModel, width int) (string, error)

// Controller runs the monitor: an input listener feeding a message
// channel, and a render loop that drains it, sleeps, fetches and
// draws. The channel is the only hand-off between the two.
type Controller struct {
	cfg    Config
	src    DataSource
	render RenderFunc
	width  func() int

	in   io.Reader
	out  io.Writer
	msgs chan Message
}

// NewController wires a controller. width is queried once per tick.
func NewController(cfg Config, src DataSource, render RenderFunc, width func() int, in io.Reader, out io.Writer) *Controller {
	if cfg.Interval <= 0 {
		cfg.Interval = DefaultConfig().Interval
	}
	if cfg.Screen == "" {
		cfg.Screen = DefaultConfig().Screen
	}
	return &Controller{
		cfg:    cfg,
		src:    src,
		render: render,
		width:  width,
		in:     in,
		out:    out,
		msgs:   make(chan Message, 8),
	}
}

// Run drives the render loop until ctx is cancelled or the user quits.
// A failed tick is logged and skipped; the next tick is the retry.
func (c *Controller) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go c.listen(ctx, cancel)

	for {
		c.applyPending()

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(c.interval()):
		}

		c.tick()
	}
}

func (c *Controller) interval() time.Duration {
	return time.Duration(c.cfg.Interval * float64(time.Second))
}

// applyPending drains at most one queued message into the loop config,
// so user input takes effect before the very next sleep/render.
func (c *Controller) applyPending() {
	select {
	case msg := <-c.msgs:
		if msg.Screen != "" {
			c.cfg.Screen = msg.Screen
		}
		if msg.Interval > 0 {
			c.cfg.Interval = msg.Interval
		}
	default:
	}
}

// tick fetches, renders and draws the current screen.
func (c *Controller) tick() {
	vm, err := BuildViewModel(c.cfg.Screen, c.src)
	if err != nil {
		util.WithScreen(string(c.cfg.Screen)).Warnf("tick skipped: %v", err)
		return
	}
	content, err := c.render(vm, c.width())
	if err != nil {
		util.WithScreen(string(c.cfg.Screen)).Errorf("render failed: %v", err)
		return
	}
	// Clear screen, cursor home, then the new frame.
	fmt.Fprint(c.out, "\033[2J\033[H")
	fmt.Fprintln(c.out, content)
}

// listen reads input lines until EOF or cancellation. Valid commands
// are enqueued; quit cancels the whole run; invalid input is reported
// and never enqueued.
func (c *Controller) listen(ctx context.Context, cancel context.CancelFunc) {
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		msg, err := ParseCommand(scanner.Text())
		if err != nil {
			util.Warnf("%v", err)
			continue
		}
		if msg.Quit {
			cancel()
			return
		}
		select {
		case c.msgs <- msg:
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		util.Errorf("reading input: %v", err)
	}
}
