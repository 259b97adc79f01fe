package view

import (
	"image/color"

	"github.com/sheikhrachel/go-gol-board/model"
)

// fillCellsRGBA converts a snapshot into RGBA pixels in buf, one pixel per cell.
// buf must hold at least Width*Height*4 bytes.
func fillCellsRGBA(buf []byte, s model.Snapshot, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for y := range s.Height {
		for x := range s.Width {
			base := (y*s.Width + x) * 4
			if s.Alive(x, y) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// cellAt maps a window position to a cell, ok is false outside the board
func cellAt(px, py, scale int, s model.Snapshot) (x, y int, ok bool) {
	if scale <= 0 || px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/scale, py/scale
	if x >= s.Width || y >= s.Height {
		return 0, 0, false
	}
	return x, y, true
}
