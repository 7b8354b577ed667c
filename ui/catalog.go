package ui

import (
	"net/url"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/d-one-motors/site/catalog"
	"github.com/d-one-motors/site/vehicle"
)

const catalogResultsID = "catalog-results"

// CatalogView is one filtered and sorted listing.
type CatalogView struct {
	Brands   []string
	Brand    string
	Sort     catalog.SortMode
	Vehicles []vehicle.Vehicle
	Total    int
}

// CatalogURL builds the listing URL, leaving out default values.
func CatalogURL(brand string, mode catalog.SortMode) string {
	q := url.Values{}
	if brand != "" && brand != catalog.AllBrands {
		q.Set("brand", brand)
	}
	if mode != "" && mode != catalog.SortDefault {
		q.Set("sort", string(mode))
	}
	if len(q) == 0 {
		return "/catalog"
	}
	return "/catalog?" + q.Encode()
}

func CatalogPage(view CatalogView) g.Node {
	return Page(
		"Catalog",
		"/catalog",
		[]g.Node{
			Div(
				Class("max-w-7xl mx-auto px-5 md:px-12 pt-28 md:pt-36 pb-20"),
				backLink("/", "Back to Home"),
				CatalogResults(view),
			),
		},
	)
}

// CatalogResults is the part of the catalog page swapped by the brand and
// sort controls.
func CatalogResults(view CatalogView) g.Node {
	return Div(
		ID(catalogResultsID),
		Div(
			Class("mb-8 md:mb-12"),
			pageHeader("Full Catalog"),
			P(Class("text-zinc-500 font-light tracking-wide"), g.Textf("%d of %d vehicles", len(view.Vehicles), view.Total)),
		),
		Div(
			Class("flex flex-col md:flex-row md:items-center justify-between gap-4 mb-10"),
			brandFilter(view),
			sortSelect(view),
		),
		resultsGrid(view),
	)
}

func brandFilter(view CatalogView) g.Node {
	return Div(
		Class("flex gap-2 overflow-x-auto pb-2"),
		g.Map(view.Brands, func(brand string) g.Node {
			target := CatalogURL(brand, view.Sort)
			return pill(brand, isSelectedBrand(view.Brand, brand),
				withHref(target),
				withAttributes(
					hx.Get(target),
					hx.Target("#"+catalogResultsID),
					hx.Swap("outerHTML"),
					hx.PushURL("true"),
				),
			)
		}),
	)
}

func isSelectedBrand(selected, brand string) bool {
	if selected == "" {
		selected = catalog.AllBrands
	}
	return selected == brand
}

func sortSelect(view CatalogView) g.Node {
	brand := view.Brand
	if brand == "" {
		brand = catalog.AllBrands
	}

	return Form(
		Action("/catalog"),
		Method("get"),
		hx.Get("/catalog"),
		hx.Trigger("change"),
		hx.Target("#"+catalogResultsID),
		hx.Swap("outerHTML"),
		hx.PushURL("true"),
		Input(Type("hidden"), Name("brand"), Value(brand)),
		Label(For("sort"), Class("sr-only"), g.Text("Sort")),
		Select(
			ID("sort"),
			Name("sort"),
			Class("bg-black border border-zinc-800 text-sm text-zinc-300 px-4 py-2"),
			g.Map(catalog.SortModes, func(mode catalog.SortMode) g.Node {
				return Option(Value(string(mode)), g.If(mode == view.Sort, Selected()), g.Text(mode.Label()))
			}),
		),
		NoScript(Button(Type("submit"), Class("ml-2 text-xs uppercase"), g.Text("Apply"))),
	)
}

func resultsGrid(view CatalogView) g.Node {
	if len(view.Vehicles) == 0 {
		return Div(
			Class("text-center py-20"),
			P(Class("text-zinc-500 text-lg font-light mb-6"), g.Text("No vehicles found for this brand.")),
			buttonOutline("Show All",
				withHref(CatalogURL(catalog.AllBrands, view.Sort)),
				withAttributes(
					hx.Get(CatalogURL(catalog.AllBrands, view.Sort)),
					hx.Target("#"+catalogResultsID),
					hx.Swap("outerHTML"),
					hx.PushURL("true"),
				),
			),
		)
	}

	return Div(
		Class("grid grid-cols-1 sm:grid-cols-2 lg:grid-cols-3 gap-4 md:gap-6"),
		g.Map(view.Vehicles, func(v vehicle.Vehicle) g.Node { return CarCard(v, false) }),
	)
}
