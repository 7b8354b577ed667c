package ui

import (
	"time"

	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/d-one-motors/site/config"
)

// ---- Page Layout ----

func Page(title string, currentPath string, content []g.Node) g.Node {
	if title != config.SiteName {
		title = title + " | " + config.SiteName
	}
	return components.HTML5(components.HTML5Props{
		Title:       title,
		Description: "Luxury vehicles imported to Tashkent by " + config.SiteName + ".",
		Language:    "en",
		Head: []g.Node{
			Meta(Name("theme-color"), Content("#000000")),
			Link(Rel("icon"), Type("image/png"), Href("/images/favicon-32x32.png"), g.Attr("sizes", "32x32")),
			Script(Src(config.TailwindCDN)),
			Script(
				Type("text/javascript"),
				Src(config.HTMXCDN),
				Defer(),
			),
		},
		Body: []g.Node{
			Class("bg-black text-white antialiased"),
			ID("top"),
			navigation(currentPath),
			Main(g.Group(content)),
			footer(time.Now().Year()),
			floatingUI(),
		},
	})
}

func pageHeader(text string) g.Node {
	return H1(Class("text-3xl md:text-6xl font-medium tracking-tighter font-serif mb-2"), g.Text(text))
}

// sectionLabel is the small uppercase kicker above section headings.
func sectionLabel(text string) g.Node {
	return H3(Class("text-zinc-500 text-xs md:text-sm tracking-[0.2em] uppercase mb-4"), g.Text(text))
}

func backLink(href, text string) g.Node {
	return A(
		Href(href),
		Class("inline-flex items-center gap-2 text-xs uppercase tracking-widest text-zinc-500 hover:text-white transition-colors mb-8"),
		icon(iconArrowLeft),
		g.Text(text),
	)
}
