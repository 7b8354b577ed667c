package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/d-one-motors/site/config"
)

type navItem struct {
	label string
	href  string
}

// navItems returns in-page anchors on the home page and site links
// everywhere else.
func navItems(currentPath string) []navItem {
	if currentPath == "/" {
		return []navItem{
			{"Models", "#models"},
			{"Catalog", "/catalog"},
			{"Philosophy", "#philosophy"},
			{"Services", "#services"},
			{"Contact", "#contact"},
		}
	}
	return []navItem{
		{"Home", "/"},
		{"Catalog", "/catalog"},
		{"Contact", "/#contact"},
	}
}

func navigation(currentPath string) g.Node {
	items := navItems(currentPath)

	links := make([]g.Node, 0, len(items))
	mobileLinks := make([]g.Node, 0, len(items))
	for _, item := range items {
		links = append(links, A(
			Href(item.href),
			Class("text-xs uppercase tracking-[0.2em] text-zinc-400 hover:text-white transition-colors"),
			g.Text(item.label),
		))
		mobileLinks = append(mobileLinks, A(
			Href(item.href),
			Class("block py-3 text-2xl font-serif border-b border-zinc-900"),
			g.Text(item.label),
		))
	}

	return Nav(
		Class("fixed top-0 inset-x-0 z-40 bg-black/80 backdrop-blur-xl border-b border-zinc-900"),
		Div(
			Class("max-w-7xl mx-auto px-5 md:px-12 h-16 flex items-center justify-between"),
			A(Href("/"), Class("font-serif text-xl tracking-tight"), g.Text("D-ONE")),
			Div(Class("hidden md:flex items-center gap-8"), g.Group(links)),
			A(
				Href(config.DealerTelegram),
				Target("_blank"),
				Rel("noopener noreferrer"),
				Class("hidden md:inline-flex border border-white/20 px-5 py-2 text-xs uppercase tracking-[0.2em] hover:bg-white hover:text-black transition-colors"),
				g.Text("Enquire"),
			),
			// Mobile menu
			g.El("details",
				Class("md:hidden relative"),
				g.El("summary", Class("list-none cursor-pointer text-2xl"), Aria("label", "Toggle menu"), g.Text("☰")),
				Div(
					Class("fixed inset-x-0 top-16 bg-black px-5 pb-8"),
					g.Group(mobileLinks),
					A(Href(config.DealerTelegram), Class("block mt-6 text-center border border-white/20 py-3 text-xs uppercase tracking-[0.2em]"),
						g.Text("Enquire on Telegram")),
				),
			),
		),
	)
}

func footer(year int) g.Node {
	return Footer(
		ID("contact"),
		Class("bg-zinc-950 text-white pt-16 md:pt-24 pb-24 md:pb-12 px-5 md:px-12"),
		Div(
			Class("max-w-7xl mx-auto"),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-10 md:gap-12 mb-12 md:mb-20"),
				Div(
					H2(Class("text-2xl md:text-3xl font-medium tracking-tighter mb-4 md:mb-6 font-serif"), g.Text("D-ONE MOTORS")),
					P(Class("text-zinc-500 font-light max-w-sm mb-6 md:mb-8 leading-relaxed"),
						g.Text("The pinnacle of automotive import in Uzbekistan. Exclusive vehicles for exclusive individuals.")),
					A(Href("mailto:"+config.DealerEmail), Class("text-lg md:text-xl font-light hover:text-zinc-300"), g.Text(config.DealerEmail)),
				),
				Div(
					H4(Class("text-zinc-500 text-xs md:text-sm tracking-widest uppercase mb-4 md:mb-6"), g.Text("Contact")),
					Div(
						Class("space-y-3 font-light text-zinc-300"),
						A(Href(config.DealerPhoneLink), Class("flex items-center gap-2 hover:text-white"), icon(iconPhone), g.Text(config.DealerPhone)),
						Div(Class("flex items-center gap-2"), icon(iconClock), g.Text(config.DealerHours)),
						A(Href(config.DealerMapLink), Target("_blank"), Rel("noopener noreferrer"),
							Class("flex items-start gap-2 hover:text-white"), icon(iconPin), g.Text(config.DealerAddress+", Uzbekistan")),
					),
				),
				Div(
					H4(Class("text-zinc-500 text-xs md:text-sm tracking-widest uppercase mb-4 md:mb-6"), g.Text("Navigation")),
					Ul(
						Class("space-y-3 font-light text-zinc-300"),
						Li(A(Href("/"), Class("hover:text-white"), g.Text("Home"))),
						Li(A(Href("/catalog"), Class("hover:text-white"), g.Text("Catalog"))),
						Li(A(Href(config.DealerTelegram), Target("_blank"), Rel("noopener noreferrer"), Class("hover:text-white"), g.Text("Telegram"))),
					),
					H4(Class("text-zinc-500 text-xs md:text-sm tracking-widest uppercase mb-3 mt-8"), g.Text("Payment")),
					Div(
						Class("flex flex-wrap gap-2 text-xs text-zinc-400 font-light"),
						g.Map([]string{"Card", "Transfer", "Cash"}, func(method string) g.Node {
							return Span(Class("border border-zinc-800 px-2.5 py-1 tracking-wider uppercase"), g.Text(method))
						}),
					),
				),
			),
			Div(
				Class("flex flex-col md:flex-row justify-between items-center border-t border-zinc-800 pt-6 md:pt-8 text-xs md:text-sm text-zinc-600 font-light"),
				P(g.Textf("© %d D-ONE MOTORS. All rights reserved.", year)),
				P(Class("mt-3 md:mt-0"), g.Text("d-one-motors.uz")),
			),
		),
	)
}

// floatingUI is the back-to-top link, the Telegram bubble and the mobile
// call-to-action bar.
func floatingUI() g.Node {
	return g.Group([]g.Node{
		A(
			Href("#top"),
			Aria("label", "Back to top"),
			Class("fixed bottom-24 md:bottom-8 right-5 md:right-24 z-40 w-11 h-11 rounded-full border border-zinc-700 bg-black/80 flex items-center justify-center hover:border-white"),
			icon(iconArrowUp),
		),
		A(
			Href(config.DealerTelegram),
			Target("_blank"),
			Rel("noopener noreferrer"),
			Aria("label", "Contact on Telegram"),
			Class("hidden md:flex fixed bottom-8 right-8 z-40 w-12 h-12 rounded-full bg-white text-black items-center justify-center hover:bg-zinc-200"),
			icon(iconSend),
		),
		Div(
			Class("md:hidden fixed bottom-0 inset-x-0 z-40 grid grid-cols-2 border-t border-zinc-800 bg-black"),
			A(Href(config.DealerPhoneLink), Class("flex items-center justify-center gap-2 py-4 text-xs uppercase tracking-widest"),
				icon(iconPhone), g.Text("Call")),
			A(Href(config.DealerTelegram), Class("flex items-center justify-center gap-2 py-4 text-xs uppercase tracking-widest bg-white text-black"),
				g.Text("Enquire Now")),
		),
	})
}
