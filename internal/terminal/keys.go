package terminal

import (
	"github.com/gdamore/tcell/v2"

	"snake/internal/domain"
)

func KeyCode(ev *tcell.EventKey) (domain.KeyCode, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return domain.KeyUp, true
	case tcell.KeyDown:
		return domain.KeyDown, true
	case tcell.KeyLeft:
		return domain.KeyLeft, true
	case tcell.KeyRight:
		return domain.KeyRight, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			return domain.KeyUp, true
		case 's', 'S':
			return domain.KeyDown, true
		case 'a', 'A':
			return domain.KeyLeft, true
		case 'd', 'D':
			return domain.KeyRight, true
		}
	}
	return 0, false
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q'
	}
	return false
}

func isRestart(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyRune && (ev.Rune() == 'r' || ev.Rune() == 'R')
}
