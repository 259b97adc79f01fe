//go:build ebiten

package view

import (
	"context"
	"image/color"
	"io"
	"log/slog"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/go-gol-board/controller"
)

const (
	hudHeight = 40
	hudWidth  = 560
)

var (
	onColor  = color.RGBA{R: 0x4c, G: 0xd9, B: 0x64, A: 0xff}
	offColor = color.RGBA{R: 0x10, G: 0x10, B: 0x10, A: 0xff}
)

// Window presents the board in a desktop window with a status HUD underneath
type Window struct {
	intents chan<- controller.Intent
	logger  *slog.Logger
	scale   int
	ctx     context.Context

	mu     sync.Mutex
	frame  controller.Frame
	prompt *prompt

	pixels []byte
	board  *ebiten.Image
}

// NewWindow returns a Window drawing every cell as a scale x scale square
func NewWindow(intents chan<- controller.Intent, scale int, logger *slog.Logger) *Window {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Window{intents: intents, scale: max(1, scale), logger: logger}
}

// Render stores the frame for the next Draw
func (w *Window) Render(f controller.Frame) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.frame = f
}

// Run opens the window and blocks until it is closed or ctx ends.
// ebiten requires this to be called from the main goroutine.
func (w *Window) Run(ctx context.Context) error {
	w.ctx = ctx
	ebiten.SetWindowTitle("go-gol board")
	ebiten.SetWindowSize(hudWidth, hudWidth)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err := ebiten.RunGame(w)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[Window.Run] game loop failed")
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	w.logger.Info("window closed by user")
	return nil
}

// Update handles per-frame input
func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}

	var intents []controller.Intent
	quit := false

	w.mu.Lock()
	if p := w.prompt; p != nil {
		for _, r := range ebiten.AppendInputChars(nil) {
			p.input(r)
		}
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			w.prompt = nil
		case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
			p.backspace()
		case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
			w.prompt = nil
			if in, ok := p.submit(); ok {
				intents = append(intents, in)
			}
		}
	} else {
		for _, r := range ebiten.AppendInputChars(nil) {
			if r == 'q' {
				quit = true
				break
			}
			if p, ok := promptFor(r); ok {
				w.prompt = p
				break
			}
			if in, ok := keyIntent(r, w.frame); ok {
				intents = append(intents, in)
			}
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			quit = true
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			intents = append(intents, controller.Step{})
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			px, py := ebiten.CursorPosition()
			if x, y, ok := cellAt(px, py, w.scale, w.frame.Grid); ok {
				intents = append(intents, controller.ToggleCell{X: x, Y: y})
			}
		}
	}
	w.mu.Unlock()

	if quit {
		return ebiten.Termination
	}
	for _, in := range intents {
		if !send(w.ctx, w.intents, in) {
			return ebiten.Termination
		}
	}
	return nil
}

// Draw renders the current frame and the HUD
func (w *Window) Draw(screen *ebiten.Image) {
	w.mu.Lock()
	defer w.mu.Unlock()

	g := w.frame.Grid
	if g.Width > 0 && g.Height > 0 {
		if w.board == nil || w.board.Bounds().Dx() != g.Width || w.board.Bounds().Dy() != g.Height {
			w.board = ebiten.NewImage(g.Width, g.Height)
			w.pixels = make([]byte, g.Width*g.Height*4)
		}
		fillCellsRGBA(w.pixels, g, onColor, offColor)
		w.board.WritePixels(w.pixels)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(w.scale), float64(w.scale))
		screen.DrawImage(w.board, op)
	}

	y := g.Height*w.scale + 16
	text.Draw(screen, statusLine(w.frame), basicfont.Face7x13, 6, y, color.White)
	second := helpLine
	if w.prompt != nil {
		second = w.prompt.String()
	}
	text.Draw(screen, second, basicfont.Face7x13, 6, y+16, color.Gray{Y: 0xb0})
}

// Layout sizes the screen to the board plus the HUD
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	g := w.frame.Grid
	return max(hudWidth, g.Width*w.scale), g.Height*w.scale + hudHeight
}
