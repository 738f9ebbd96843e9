package monitor

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected Message
	}{
		{"2.5", Message{Interval: 2.5}},
		{"0.5", Message{Interval: 0.5}},
		{"10", Message{Interval: 10}},
		{"i", Message{Screen: ScreenInterface}},
		{"I", Message{Screen: ScreenInterface}},
		{"interface", Message{Screen: ScreenInterface}},
		{"m", Message{Screen: ScreenMain}},
		{"main", Message{Screen: ScreenMain}},
		{"l", Message{Screen: ScreenLldp}},
		{"lldp", Message{Screen: ScreenLldp}},
		{"q", Message{Quit: true}},
		{"quit", Message{Quit: true}},
		{" l ", Message{Screen: ScreenLldp}},
	}

	for _, tt := range tests {
		got, err := ParseCommand(tt.input)
		if err != nil {
			t.Errorf("ParseCommand(%q): %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseCommand(%q) = %+v, want %+v", tt.input, got, tt.expected)
		}
	}
}

func TestParseCommandRejectsInvalidInput(t *testing.T) {
	invalid := []string{"", "  ", "x", "cpu", "0", "0.0", "3x", "-1", "1.2.3"}
	for _, input := range invalid {
		if msg, err := ParseCommand(input); err == nil {
			t.Errorf("ParseCommand(%q) = %+v, want error", input, msg)
		}
	}
}

func newTestController(render RenderFunc, in io.Reader, out io.Writer) *Controller {
	return NewController(
		Config{Screen: ScreenMain, Interval: 0.001},
		testSource(),
		render,
		func() int { return 40 },
		in,
		out,
	)
}

func TestListenEnqueuesOnlyValidCommands(t *testing.T) {
	c := newTestController(nil, strings.NewReader("bogus\nl\nnope\n2.5\n"), io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c.listen(ctx, cancel) // returns at EOF

	if n := len(c.msgs); n != 2 {
		t.Fatalf("queued %d messages, want 2", n)
	}
	if msg := <-c.msgs; msg.Screen != ScreenLldp {
		t.Errorf("first message = %+v", msg)
	}
	if msg := <-c.msgs; msg.Interval != 2.5 {
		t.Errorf("second message = %+v", msg)
	}
	if ctx.Err() != nil {
		t.Error("listener should not cancel without a quit command")
	}
}

func TestListenQuitCancels(t *testing.T) {
	c := newTestController(nil, strings.NewReader("q\nl\n"), io.Discard)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	c.listen(ctx, cancel)

	if ctx.Err() == nil {
		t.Error("quit should cancel the context")
	}
	if len(c.msgs) != 0 {
		t.Error("nothing should be queued after quit")
	}
}

func TestApplyPendingDrainsAtMostOne(t *testing.T) {
	c := newTestController(nil, strings.NewReader(""), io.Discard)
	c.msgs <- Message{Screen: ScreenLldp}
	c.msgs <- Message{Interval: 3.0}

	c.applyPending()
	if c.cfg.Screen != ScreenLldp {
		t.Errorf("Screen = %q after first drain", c.cfg.Screen)
	}
	if c.cfg.Interval != 0.001 {
		t.Errorf("Interval = %v, second message applied too early", c.cfg.Interval)
	}

	c.applyPending()
	if c.cfg.Interval != 3.0 {
		t.Errorf("Interval = %v after second drain", c.cfg.Interval)
	}
	if c.cfg.Screen != ScreenLldp {
		t.Errorf("Screen = %q, interval message must not touch the screen", c.cfg.Screen)
	}

	// Empty queue is a no-op.
	c.applyPending()
	if c.cfg.Screen != ScreenLldp || c.cfg.Interval != 3.0 {
		t.Error("applyPending on empty queue changed config")
	}
}

func waitForScreen(t *testing.T, rendered <-chan Screen, want Screen) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case screen := <-rendered:
			if screen == want {
				return
			}
		case <-deadline:
			t.Fatalf("screen %q was never rendered", want)
		}
	}
}

func TestControllerRun(t *testing.T) {
	rendered := make(chan Screen, 256)
	render := func(vm ViewModel, width int) (string, error) {
		select {
		case rendered <- vm.Screen:
		default:
		}
		return "frame", nil
	}

	pr, pw := io.Pipe()
	var out bytes.Buffer
	c := newTestController(render, pr, &out)

	done := make(chan error, 1)
	go func() { done <- c.Run(context.Background()) }()

	waitForScreen(t, rendered, ScreenMain)

	if _, err := pw.Write([]byte("l\n")); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	waitForScreen(t, rendered, ScreenLldp)

	if _, err := pw.Write([]byte("q\n")); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("controller did not stop on quit")
	}

	if !strings.Contains(out.String(), "\033[2J") {
		t.Error("output missing clear-screen escape")
	}
	if !strings.Contains(out.String(), "frame") {
		t.Error("output missing rendered frame")
	}
}

func TestControllerRunStopsOnContextCancel(t *testing.T) {
	pr, _ := io.Pipe() // input never arrives
	c := newTestController(func(vm ViewModel, width int) (string, error) {
		return "frame", nil
	}, pr, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("controller did not stop on cancellation")
	}
}
