package ui

import (
	"fmt"
	"net/url"
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/d-one-motors/site/thumb"
	"github.com/d-one-motors/site/vehicle"
)

// DetailURL is the path of a vehicle's detail page.
func DetailURL(id string) string {
	return "/catalog/" + url.PathEscape(id)
}

func thumbURL(id string, idx, width int) string {
	return fmt.Sprintf("%s/thumb/%d?w=%d", DetailURL(id), idx, width)
}

// vehicleImageSrcSet lists every thumbnail width of one gallery image and
// picks the default src by where it is shown.
func vehicleImageSrcSet(id string, idx int, context string) (src, srcset string) {
	parts := make([]string, 0, len(thumb.Sizes))
	for _, s := range thumb.Sizes {
		parts = append(parts, fmt.Sprintf("%s %dw", thumbURL(id, idx, s.Width), s.Width))
	}
	srcset = strings.Join(parts, ", ")

	switch context {
	case "thumbnail":
		src = thumbURL(id, idx, 160)
	case "gallery":
		src = thumbURL(id, idx, 1200)
	default:
		src = thumbURL(id, idx, 480)
	}
	return src, srcset
}

func vehicleImage(v vehicle.Vehicle, idx int, context string, class string) g.Node {
	src, srcset := vehicleImageSrcSet(v.ID, idx, context)

	var sizes string
	switch context {
	case "thumbnail":
		sizes = "80px"
	case "gallery":
		sizes = "(max-width: 768px) 100vw, 60vw"
	default:
		sizes = "(max-width: 640px) 80vw, (max-width: 1024px) 45vw, 30vw"
	}

	return Img(
		Src(src),
		g.Attr("srcset", srcset),
		g.Attr("sizes", sizes),
		Alt(fmt.Sprintf("%s image %d", v.Title(), idx+1)),
		g.Attr("loading", "lazy"),
		Class(class),
	)
}

func chip(text string) g.Node {
	if text == "" {
		return nil
	}
	return Span(Class("border border-zinc-800 px-2 py-0.5 text-[11px] text-zinc-400 tracking-wider"), g.Text(text))
}

// CarCard links a vehicle's cover image and headline facts to its detail page.
func CarCard(v vehicle.Vehicle, large bool) g.Node {
	titleClass := "text-base md:text-lg"
	if large {
		titleClass = "text-lg md:text-xl"
	}

	var tag g.Node
	if v.Tag != "" {
		tag = Span(
			Class("absolute top-3 left-3 bg-white text-black text-[10px] uppercase tracking-widest px-2 py-1"),
			g.Text(v.Tag),
		)
	}

	return A(
		Href(DetailURL(v.ID)),
		Class("group block bg-zinc-950 border border-zinc-900 hover:border-zinc-700 transition-colors"),
		Div(
			Class("relative aspect-[4/3] overflow-hidden bg-zinc-900"),
			vehicleImage(v, 0, "card", "w-full h-full object-cover transition-transform duration-700 group-hover:scale-105"),
			tag,
		),
		Div(
			Class("p-4 md:p-5"),
			Div(
				Class("flex items-start justify-between gap-3"),
				Div(
					Class("min-w-0"),
					P(Class("text-zinc-500 text-[11px] uppercase tracking-[0.2em]"), g.Text(v.Brand)),
					H3(Class(titleClass+" font-light tracking-tight font-serif truncate"), g.Text(v.Model)),
				),
				Span(Class("text-sm whitespace-nowrap"), g.Text(v.FormatPrice())),
			),
			Div(
				Class("flex gap-2 mt-3"),
				chip(yearText(v.Year)),
				chip(v.Power),
			),
		),
	)
}

func yearText(year int) string {
	if year <= 0 {
		return ""
	}
	return fmt.Sprint(year)
}

// categorySlider renders nothing for an empty group.
func categorySlider(title string, vehicles []vehicle.Vehicle, showCount bool) g.Node {
	if len(vehicles) == 0 {
		return nil
	}

	var count g.Node
	if showCount {
		count = P(Class("text-zinc-500 text-xs tracking-wider mt-1"), g.Textf("%d vehicles", len(vehicles)))
	}

	return Section(
		Class("mb-12 md:mb-16"),
		Div(
			Class("flex items-end justify-between mb-5"),
			Div(
				H3(Class("text-xl md:text-2xl font-serif font-medium tracking-tight"), g.Text(title)),
				count,
			),
		),
		Div(
			Class("flex gap-4 overflow-x-auto snap-x snap-mandatory pb-4"),
			g.Map(vehicles, func(v vehicle.Vehicle) g.Node {
				return Div(Class("snap-start shrink-0 w-[75vw] sm:w-[45vw] md:w-[30vw] lg:w-[22vw]"), CarCard(v, false))
			}),
		),
	)
}
