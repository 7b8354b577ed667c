package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/d-one-motors/site/catalog"
	"github.com/d-one-motors/site/config"
	"github.com/d-one-motors/site/vehicle"
)

const galleryID = "gallery"

func galleryURL(id string, idx int) string {
	return fmt.Sprintf("%s/gallery/%d", DetailURL(id), idx)
}

func DetailPage(v vehicle.Vehicle, gallery *catalog.Gallery, related []vehicle.Vehicle) g.Node {
	return Page(
		v.Title(),
		"/catalog/"+v.ID,
		[]g.Node{
			Div(
				Class("max-w-7xl mx-auto px-5 md:px-12 pt-28 md:pt-36 pb-20"),
				backLink("/catalog", "Back to Catalog"),
				Div(
					Class("grid lg:grid-cols-5 gap-8 lg:gap-12"),
					Div(Class("lg:col-span-3"), GalleryView(v, gallery)),
					Div(Class("lg:col-span-2"), vehicleSummary(v)),
				),
				Div(Class("mt-20"), categorySlider("Related Vehicles", related, false)),
			),
		},
	)
}

// GalleryView shows the current image with its controls. Navigation swaps
// the whole view for the one at the new index.
func GalleryView(v vehicle.Vehicle, gallery *catalog.Gallery) g.Node {
	if gallery.Size() == 0 {
		return Div(ID(galleryID), Class("aspect-[16/10] bg-zinc-900 flex items-center justify-center text-zinc-600 text-sm"),
			g.Text("No images available"))
	}

	idx := gallery.Index()
	swap := func(target int) []g.Node {
		return []g.Node{
			hx.Get(galleryURL(v.ID, target)),
			hx.Target("#" + galleryID),
			hx.Swap("outerHTML"),
		}
	}

	prevIdx := max(idx-1, 0)
	nextIdx := min(idx+1, max(gallery.Size()-1, 0))

	var thumbs []g.Node
	for i := range v.Gallery {
		class := "shrink-0 w-20 h-14 overflow-hidden border-2"
		if i == idx {
			class += " border-white"
		} else {
			class += " border-transparent opacity-50 hover:opacity-100"
		}
		thumbs = append(thumbs, Button(
			append([]g.Node{
				Type("button"),
				Class(class),
				Aria("label", fmt.Sprintf("Show image %d", i+1)),
				vehicleImage(v, i, "thumbnail", "w-full h-full object-cover"),
			}, swap(i)...)...,
		))
	}

	return Div(
		ID(galleryID),
		Div(
			Class("relative aspect-[16/10] bg-zinc-900 overflow-hidden"),
			vehicleImage(v, idx, "gallery", "w-full h-full object-cover"),
			Div(
				Class("absolute inset-y-0 left-3 flex items-center"),
				iconButton(iconPrev, "Previous image", withType("button"), withDisabled(!gallery.HasPrev()), withAttributes(swap(prevIdx)...)),
			),
			Div(
				Class("absolute inset-y-0 right-3 flex items-center"),
				iconButton(iconNext, "Next image", withType("button"), withDisabled(!gallery.HasNext()), withAttributes(swap(nextIdx)...)),
			),
			Span(
				Class("absolute bottom-3 right-3 bg-black/70 text-xs px-2 py-1 tracking-widest"),
				g.Textf("%d / %d", idx+1, gallery.Size()),
			),
		),
		g.If(len(thumbs) > 1, Div(Class("flex gap-2 mt-3 overflow-x-auto"), g.Group(thumbs))),
	)
}

type specRow struct {
	label string
	value string
}

// additionalSpecs lists the always-present attributes followed by the
// optional specs the vehicle actually has.
func additionalSpecs(v vehicle.Vehicle) []specRow {
	rows := []specRow{
		{"Fuel", v.Fuel},
		{"Color", v.Color},
		{"Interior", v.Interior},
		{"Mileage", v.Mileage},
	}
	optional := []struct{ key, label string }{
		{vehicle.SpecAcceleration, "Acceleration"},
		{vehicle.SpecFuelConsumption, "Fuel Consumption"},
		{vehicle.SpecRange, "Range"},
	}
	for _, o := range optional {
		if value, ok := v.Spec(o.key); ok {
			rows = append(rows, specRow{o.label, value})
		}
	}
	return rows
}

func vehicleSummary(v vehicle.Vehicle) g.Node {
	keySpecs := []specRow{
		{"Engine", v.Engine},
		{"Power", v.Power},
		{"Transmission", v.Transmission},
		{"Drivetrain", v.Drivetrain},
	}

	return Div(
		Div(
			Class("flex items-center gap-3 mb-4"),
			g.If(v.Tag != "", Span(Class("bg-white text-black text-[10px] uppercase tracking-widest px-2 py-1"), g.Text(v.Tag))),
			Span(Class("text-zinc-500 text-xs tracking-widest"), g.Text(yearText(v.Year))),
		),
		H2(Class("text-zinc-400 text-xs tracking-[0.2em] uppercase mb-1"), g.Text(v.Brand)),
		H1(Class("text-2xl md:text-3xl font-serif font-medium tracking-tight mb-2"), g.Text(v.Model)),
		P(Class("text-2xl font-light mb-6"), g.Text(v.FormatPrice())),
		g.If(len(v.Highlights) > 0, Div(
			Class("flex flex-wrap gap-2 mb-8"),
			g.Map(v.Highlights, func(h string) g.Node {
				return Span(Class("border border-zinc-800 px-3 py-1 text-xs text-zinc-300"), g.Text(h))
			}),
		)),
		Div(
			Class("grid grid-cols-2 gap-px bg-zinc-900 mb-8"),
			g.Map(keySpecs, func(s specRow) g.Node {
				return Div(
					Class("bg-black p-4"),
					Span(Class("block text-[10px] tracking-widest uppercase text-zinc-500 mb-1"), g.Text(s.label)),
					Span(Class("text-sm"), g.Text(s.value)),
				)
			}),
		),
		Dl(
			Class("divide-y divide-zinc-900 mb-8 text-sm"),
			g.Map(additionalSpecs(v), func(s specRow) g.Node {
				return Div(
					Class("flex justify-between py-3"),
					Dt(Class("text-zinc-500"), g.Text(s.label)),
					Dd(g.Text(s.value)),
				)
			}),
		),
		g.If(v.Description != "", P(Class("text-zinc-400 text-sm font-light leading-relaxed mb-8"), g.Text(v.Description))),
		Div(
			Class("flex flex-col sm:flex-row gap-3 mb-10"),
			button("Enquire on Telegram", withHref(config.DealerTelegram), withExternal(), withClass("flex-1")),
			buttonOutline("Call "+config.DealerPhone, withHref(config.DealerPhoneLink), withClass("flex-1")),
		),
		EnquiryForm(v.ID),
	)
}
