package card

import (
	"runtime"
	"sync/atomic"
)

// Glyphs maps each suit to its one glyph display token.
type Glyphs [4]string

var (
	// UnicodeGlyphs are the UTF-8 suit symbols.
	UnicodeGlyphs = Glyphs{"♣", "♦", "♥", "♠"}
	// CodePage437Glyphs are the single byte suit symbols of the DOS code page.
	CodePage437Glyphs = Glyphs{"\x05", "\x04", "\x03", "\x06"}
)

var active atomic.Pointer[Glyphs]

func init() {
	g := DefaultGlyphs()
	active.Store(&g)
}

// DefaultGlyphs picks the glyph set for the platform running the program.
func DefaultGlyphs() Glyphs {
	if runtime.GOOS == "windows" {
		return CodePage437Glyphs
	}
	return UnicodeGlyphs
}

// SetGlyphs changes the glyph set used by Card.String and Suit.Symbol.
func SetGlyphs(g Glyphs) {
	active.Store(&g)
}

func ActiveGlyphs() Glyphs {
	return *active.Load()
}

func (g Glyphs) Symbol(s Suit) string {
	if int(s) >= len(g) {
		return "?"
	}
	return g[s]
}
