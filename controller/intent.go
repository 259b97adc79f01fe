package controller

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/sheikhrachel/go-gol-board/utils"
)

// Intent is a user action or clock signal delivered to the Controller
type Intent interface {
	fmt.Stringer
	intent()
}

// Resize replaces the board with an empty Width x Height grid
type Resize struct{ Width, Height int }

// SetWidth changes the width the next Generate uses without touching the current grid
type SetWidth struct{ Width int }

// SetHeight changes the height the next Generate uses without touching the current grid
type SetHeight struct{ Height int }

// Generate resets the board to an empty grid at the pending dimensions
type Generate struct{}

// GenerateRandom fills a new grid at the pending dimensions using the current threshold
type GenerateRandom struct{}

// ToggleCell flips the cell at column X, row Y
type ToggleCell struct{ X, Y int }

// Step advances exactly one generation whether or not the clock runs
type Step struct{}

// ToggleClock starts or stops automatic generations
type ToggleClock struct{}

// Tick is the clock's periodic wake-up, honored only while running
type Tick struct{}

// SetThreshold changes the probability used by GenerateRandom
type SetThreshold struct{ Threshold float64 }

func (Resize) intent() {}
func (SetWidth) intent() {}
func (SetHeight) intent() {}
func (Generate) intent() {}
func (GenerateRandom) intent() {}
func (ToggleCell) intent() {}
func (Step) intent() {}
func (ToggleClock) intent() {}
func (Tick) intent() {}
func (SetThreshold) intent() {}

func (r Resize) String() string { return fmt.Sprintf("resize(%d,%d)", r.Width, r.Height) }
func (s SetWidth) String() string { return fmt.Sprintf("set-width(%d)", s.Width) }
func (s SetHeight) String() string { return fmt.Sprintf("set-height(%d)", s.Height) }
func (Generate) String() string { return "generate" }
func (GenerateRandom) String() string { return "generate-random" }
func (t ToggleCell) String() string { return fmt.Sprintf("toggle(%d,%d)", t.X, t.Y) }
func (Step) String() string { return "step" }
func (ToggleClock) String() string { return "toggle-clock" }
func (Tick) String() string { return "tick" }
func (s SetThreshold) String() string { return fmt.Sprintf("set-threshold(%.2f)", s.Threshold) }

// ParseDimension parses a size typed by the user. ok is false for anything that is not an
// integer in [0, utils.MaxDimension], in which case no intent should be sent.
func ParseDimension(text string) (n int, ok bool) {
	v, err := strconv.ParseUint(strings.TrimSpace(text), 10, 31)
	if err != nil || !validDimension(int(v)) {
		return 0, false
	}
	return int(v), true
}

func validDimension(n int) bool {
	return n >= 0 && n <= utils.MaxDimension
}

// ParseResize parses "W" and "H" fields into a Resize intent
func ParseResize(width, height string) (Resize, bool) {
	w, ok := ParseDimension(width)
	if !ok {
		return Resize{}, false
	}
	h, ok := ParseDimension(height)
	if !ok {
		return Resize{}, false
	}
	return Resize{Width: w, Height: h}, true
}

// ParseSize parses "WxH" (also "W H" or "W,H") into a Resize intent
func ParseSize(text string) (Resize, bool) {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return r == 'x' || r == ',' || r == ' '
	})
	if len(fields) != 2 {
		return Resize{}, false
	}
	return ParseResize(fields[0], fields[1])
}

// ParseThreshold parses a probability in [0,1]
func ParseThreshold(text string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || !validThreshold(v) {
		return 0, false
	}
	return v, true
}

func validThreshold(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
