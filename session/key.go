package session

import "fmt"

// KeyKind is a logical key. Mapping physical keys onto these is the
// renderer's job.
type KeyKind int

const (
	KeyNone KeyKind = iota
	KeyUp
	KeyDown
	KeyConfirm
	KeyCancel
	KeyRune
	KeyBackspace
	KeyQuit
	KeyClearAll
	KeyBeginSearch
	KeyBeginActionFilter
	KeyBeginTime
)

type Key struct {
	Kind KeyKind
	Rune rune // set for KeyRune
}

var (
	Up                = Key{Kind: KeyUp}
	Down              = Key{Kind: KeyDown}
	Confirm           = Key{Kind: KeyConfirm}
	Cancel            = Key{Kind: KeyCancel}
	Backspace         = Key{Kind: KeyBackspace}
	Quit              = Key{Kind: KeyQuit}
	ClearAll          = Key{Kind: KeyClearAll}
	BeginSearch       = Key{Kind: KeyBeginSearch}
	BeginActionFilter = Key{Kind: KeyBeginActionFilter}
	BeginTime         = Key{Kind: KeyBeginTime}
)

// Rune is character input for the text modes.
func Rune(r rune) Key { return Key{Kind: KeyRune, Rune: r} }

// Runes expands s into one key per rune.
func Runes(s string) []Key {
	keys := make([]Key, 0, len(s))
	for _, r := range s {
		keys = append(keys, Rune(r))
	}
	return keys
}

func (k Key) String() string {
	switch k.Kind {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyConfirm:
		return "confirm"
	case KeyCancel:
		return "cancel"
	case KeyRune:
		return fmt.Sprintf("rune(%q)", k.Rune)
	case KeyBackspace:
		return "backspace"
	case KeyQuit:
		return "quit"
	case KeyClearAll:
		return "clear-all"
	case KeyBeginSearch:
		return "begin-search"
	case KeyBeginActionFilter:
		return "begin-action-filter"
	case KeyBeginTime:
		return "begin-time"
	default:
		return "none"
	}
}
