package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Button Components ----

type buttonOption func(*buttonConfig)

type buttonConfig struct {
	href       string
	external   bool
	disabled   bool
	buttonType string
	class      string
	attributes []g.Node
}

// withHref makes the button a link with the specified href
func withHref(href string) buttonOption {
	return func(c *buttonConfig) {
		c.href = href
	}
}

// withExternal opens the link in a new tab
func withExternal() buttonOption {
	return func(c *buttonConfig) {
		c.external = true
	}
}

func withDisabled(disabled bool) buttonOption {
	return func(c *buttonConfig) {
		c.disabled = disabled
	}
}

func withType(buttonType string) buttonOption {
	return func(c *buttonConfig) {
		c.buttonType = buttonType
	}
}

func withClass(class string) buttonOption {
	return func(c *buttonConfig) {
		c.class = class
	}
}

func withAttributes(attrs ...g.Node) buttonOption {
	return func(c *buttonConfig) {
		c.attributes = append(c.attributes, attrs...)
	}
}

// buttonStyled builds a button or link around children with the given base class
func buttonStyled(baseClass string, children []g.Node, options ...buttonOption) g.Node {
	config := &buttonConfig{}
	for _, option := range options {
		option(config)
	}

	class := baseClass
	if config.class != "" {
		class += " " + config.class
	}
	if config.disabled {
		class += " opacity-30 cursor-not-allowed"
	}

	attrs := []g.Node{Class(class)}
	if config.buttonType != "" {
		attrs = append(attrs, Type(config.buttonType))
	}
	attrs = append(attrs, config.attributes...)
	attrs = append(attrs, children...)

	if config.href != "" {
		if config.disabled {
			return Span(Class(class), g.Group(children))
		}
		attrs = append([]g.Node{Href(config.href)}, attrs...)
		if config.external {
			attrs = append(attrs, Target("_blank"), Rel("noopener noreferrer"))
		}
		return A(attrs...)
	}

	if config.disabled {
		attrs = append(attrs, Disabled())
	}
	return Button(attrs...)
}

// button is the solid white call to action
func button(text string, options ...buttonOption) g.Node {
	return buttonStyled(
		"inline-flex items-center justify-center gap-3 bg-white text-black px-8 py-4 text-xs uppercase tracking-[0.2em] hover:bg-zinc-200 transition-colors",
		[]g.Node{g.Text(text)}, options...)
}

// buttonOutline is the bordered secondary action
func buttonOutline(text string, options ...buttonOption) g.Node {
	return buttonStyled(
		"inline-flex items-center justify-center gap-3 border border-white/20 text-white px-8 py-4 text-xs uppercase tracking-[0.2em] hover:border-white transition-colors",
		[]g.Node{g.Text(text)}, options...)
}

// pill is a rounded filter toggle
func pill(text string, active bool, options ...buttonOption) g.Node {
	class := "px-4 py-2 text-xs uppercase tracking-widest border transition-colors whitespace-nowrap"
	if active {
		class += " bg-white text-black border-white"
	} else {
		class += " border-zinc-800 text-zinc-400 hover:border-zinc-500 hover:text-white"
	}
	return buttonStyled(class, []g.Node{g.Text(text)}, options...)
}

// iconButton is a round button holding a single glyph
func iconButton(glyph, label string, options ...buttonOption) g.Node {
	options = append(options, withAttributes(Aria("label", label), Title(label)))
	return buttonStyled(
		"w-10 h-10 rounded-full bg-black/60 border border-white/20 flex items-center justify-center hover:bg-white hover:text-black transition-colors",
		[]g.Node{icon(glyph)}, options...)
}
