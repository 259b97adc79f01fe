package view

import (
	"github.com/sheikhrachel/go-gol-board/controller"
)

type promptKind int

const (
	promptSize promptKind = iota
	promptWidth
	promptHeight
)

// prompt collects a typed size. Submitting text that does not parse sends nothing.
type prompt struct {
	kind promptKind
	text []rune
}

// promptFor returns the prompt a key opens
func promptFor(r rune) (*prompt, bool) {
	switch r {
	case 's':
		return &prompt{kind: promptSize}, true
	case 'w':
		return &prompt{kind: promptWidth}, true
	case 'h':
		return &prompt{kind: promptHeight}, true
	}
	return nil, false
}

func (p *prompt) label() string {
	switch p.kind {
	case promptWidth:
		return "next width: "
	case promptHeight:
		return "next height: "
	default:
		return "size WxH: "
	}
}

func (p *prompt) String() string { return p.label() + string(p.text) + "_" }

func (p *prompt) input(r rune) {
	if len(p.text) < 16 {
		p.text = append(p.text, r)
	}
}

func (p *prompt) backspace() {
	if len(p.text) > 0 {
		p.text = p.text[:len(p.text)-1]
	}
}

func (p *prompt) submit() (controller.Intent, bool) {
	switch p.kind {
	case promptWidth:
		if n, ok := controller.ParseDimension(string(p.text)); ok {
			return controller.SetWidth{Width: n}, true
		}
	case promptHeight:
		if n, ok := controller.ParseDimension(string(p.text)); ok {
			return controller.SetHeight{Height: n}, true
		}
	default:
		if r, ok := controller.ParseSize(string(p.text)); ok {
			return r, true
		}
	}
	return nil, false
}
