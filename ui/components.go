package ui

import (
	"net/http"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func ErrorPage(code int, message string) g.Node {
	return Page(
		http.StatusText(code),
		"",
		[]g.Node{
			Div(
				Class("min-h-[70vh] flex flex-col items-center justify-center text-center px-5 pt-28"),
				P(Class("text-zinc-600 text-xs tracking-[0.3em] uppercase mb-4"), g.Textf("Error %d", code)),
				H2(Class("text-2xl md:text-4xl font-serif mb-4"), g.Text(http.StatusText(code))),
				P(Class("text-zinc-400 font-light mb-8 max-w-md"), g.Text(message)),
				buttonOutline("Back to Home", withHref("/")),
			),
		},
	)
}

// NotFoundPage is shown for an unknown vehicle id.
func NotFoundPage() g.Node {
	return Page(
		"Vehicle Not Found",
		"/catalog",
		[]g.Node{
			Div(
				Class("min-h-[70vh] flex flex-col items-center justify-center text-center px-5 pt-28"),
				H2(Class("text-2xl font-serif mb-4"), g.Text("Vehicle Not Found")),
				P(Class("text-zinc-500 font-light mb-8"), g.Text("The vehicle you are looking for is no longer in our collection.")),
				button("Back to Catalog", withHref("/catalog")),
			),
		},
	)
}
