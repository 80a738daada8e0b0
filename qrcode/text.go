package qrcode

import (
	"strings"

	"github.com/ericlevine/qrlite/bitutil"
)

const (
	blank     = " "
	block     = "█"
	blankWide = "  "
	blockWide = "██"
	blockDown = "▄"
	blockUp   = "▀"
)

// Terminal renders bm as text for a terminal with a dark background: set
// bits print as blanks and unset bits as blocks, two rows per line using
// half-block characters.
func Terminal(bm *bitutil.BitMatrix) string {
	var sb strings.Builder
	for y := 0; y < bm.Height(); y += 2 {
		for x := 0; x < bm.Width(); x++ {
			top := bm.Get(x, y)
			if y+1 == bm.Height() {
				if top {
					sb.WriteString(blank)
				} else {
					sb.WriteString(blockUp)
				}
				continue
			}
			bottom := bm.Get(x, y+1)
			switch {
			case top && bottom:
				sb.WriteString(blank)
			case !top && !bottom:
				sb.WriteString(block)
			case top:
				sb.WriteString(blockDown)
			default:
				sb.WriteString(blockUp)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// TerminalWide renders one row per line and two characters per module, with
// the same colours as Terminal.
func TerminalWide(bm *bitutil.BitMatrix) string {
	var sb strings.Builder
	for y := 0; y < bm.Height(); y++ {
		for x := 0; x < bm.Width(); x++ {
			if bm.Get(x, y) {
				sb.WriteString(blankWide)
			} else {
				sb.WriteString(blockWide)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
