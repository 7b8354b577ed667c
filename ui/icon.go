package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Icon Components ----

// Glyph icons keep the page free of icon font and sprite requests.
const (
	iconArrowLeft  = "←"
	iconArrowRight = "→"
	iconArrowUp    = "↑"
	iconArrowOut   = "↗"
	iconPrev       = "‹"
	iconNext       = "›"
	iconPhone      = "☎"
	iconClock      = "◷"
	iconPin        = "⌖"
	iconSend       = "✈"
	iconQuote      = "“"
	iconCheck      = "✓"
)

func icon(glyph string, classes ...string) g.Node {
	class := "inline-block leading-none"
	for _, c := range classes {
		class += " " + c
	}
	return Span(Class(class), Aria("hidden", "true"), g.Text(glyph))
}
