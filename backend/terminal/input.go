package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gpucontext"
)

// KeyFromEvent maps a letter or digit key event onto the window key
// vocabulary. Other keys report false.
func KeyFromEvent(ev *tcell.EventKey) (gpucontext.Key, bool) {
	if ev.Key() != tcell.KeyRune || ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt|tcell.ModMeta) != 0 {
		return gpucontext.KeyUnknown, false
	}
	r := unicode.ToLower(ev.Rune())
	switch {
	case r >= 'a' && r <= 'z':
		return gpucontext.KeyA + gpucontext.Key(r-'a'), true
	case r >= '0' && r <= '9':
		return gpucontext.Key0 + gpucontext.Key(r-'0'), true
	}
	return gpucontext.KeyUnknown, false
}

// IsQuit reports whether ev asks to leave: Esc, q or Ctrl-C.
func IsQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
