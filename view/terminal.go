package view

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol-board/controller"
)

var (
	aliveStyle  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	deadStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkGray).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	helpStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Terminal presents the board full screen; every cell is two columns wide
type Terminal struct {
	screen  tcell.Screen
	intents chan<- controller.Intent
	logger  *slog.Logger

	mu      sync.Mutex
	frame   controller.Frame
	prompt  *prompt
	closed  bool
	buttons tcell.ButtonMask
}

// NewTerminal initializes screen and returns a Terminal sending intents on intents
func NewTerminal(screen tcell.Screen, intents chan<- controller.Intent, logger *slog.Logger) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "[NewTerminal] failed to initialize screen")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()
	return &Terminal{screen: screen, intents: intents, logger: logger}, nil
}

// Render draws f. Frames arriving after Run returned are ignored.
func (t *Terminal) Render(f controller.Frame) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frame = f
	t.draw()
}

// Run handles keyboard and mouse input until q/Esc or ctx ends, then restores the terminal
func (t *Terminal) Run(ctx context.Context) error {
	defer t.fini()

	go func() {
		<-ctx.Done()
		_ = t.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}()

	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventInterrupt:
			return ctx.Err()
		case *tcell.EventResize:
			t.mu.Lock()
			t.screen.Sync()
			t.draw()
			t.mu.Unlock()
		case *tcell.EventKey:
			in, quit := t.handleKey(ev)
			if quit {
				t.logger.Info("terminal closed by user")
				return nil
			}
			if in != nil && !send(ctx, t.intents, in) {
				return ctx.Err()
			}
		case *tcell.EventMouse:
			if in := t.handleMouse(ev); in != nil && !send(ctx, t.intents, in) {
				return ctx.Err()
			}
		}
	}
}

func (t *Terminal) fini() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.closed = true
	t.screen.Fini()
}

// handleKey returns the intent for a key press, or quit when the user asked to leave
func (t *Terminal) handleKey(ev *tcell.EventKey) (in controller.Intent, quit bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	defer t.draw()

	if p := t.prompt; p != nil {
		switch ev.Key() {
		case tcell.KeyEscape:
			t.prompt = nil
		case tcell.KeyEnter:
			t.prompt = nil
			if in, ok := p.submit(); ok {
				return in, false
			}
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			p.backspace()
		case tcell.KeyRune:
			p.input(ev.Rune())
		}
		return nil, false
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyEnter:
		return controller.Step{}, false
	case tcell.KeyRune:
	default:
		return nil, false
	}

	r := ev.Rune()
	if r == 'q' {
		return nil, true
	}
	if p, ok := promptFor(r); ok {
		t.prompt = p
		return nil, false
	}
	if in, ok := keyIntent(r, t.frame); ok {
		return in, false
	}
	return nil, false
}

// handleMouse toggles the cell under a fresh left click
func (t *Terminal) handleMouse(ev *tcell.EventMouse) controller.Intent {
	t.mu.Lock()
	defer t.mu.Unlock()

	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0
	t.buttons = buttons
	if !pressed {
		return nil
	}

	col, row := ev.Position()
	x, y := col/2, row
	if x >= t.frame.Grid.Width || y >= t.frame.Grid.Height {
		return nil
	}
	return controller.ToggleCell{X: x, Y: y}
}

// draw paints the current frame; callers hold t.mu
func (t *Terminal) draw() {
	if t.closed {
		return
	}
	t.screen.Clear()

	g := t.frame.Grid
	for y := range g.Height {
		for x := range g.Width {
			left, right, style := '·', ' ', deadStyle
			if g.Alive(x, y) {
				left, right, style = '█', '█', aliveStyle
			}
			t.screen.SetContent(x*2, y, left, nil, style)
			t.screen.SetContent(x*2+1, y, right, nil, style)
		}
	}

	row := g.Height + 1
	drawText(t.screen, 0, row, statusStyle, statusLine(t.frame))
	if t.prompt != nil {
		drawText(t.screen, 0, row+1, statusStyle, t.prompt.String())
	} else {
		drawText(t.screen, 0, row+1, helpStyle, helpLine)
	}
	t.screen.Show()
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
