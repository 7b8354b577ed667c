package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/d-one-motors/site/catalog"
	"github.com/d-one-motors/site/config"
	"github.com/d-one-motors/site/vehicle"
)

type stat struct {
	number int
	suffix string
	label  string
}

var stats = []stat{
	{150, "+", "Vehicles Delivered"},
	{16, "", "Premium Brands"},
	{config.DealerFoundedYears, "", "Years of Excellence"},
	{100, "%", "Client Satisfaction"},
}

type testimonial struct {
	name, role, text string
}

var testimonials = []testimonial{
	{"Rustam A.", "Business Owner", "D-ONE made the entire process effortless. From selecting my Maybach to receiving it at my door, every detail was handled with precision."},
	{"Dilnoza K.", "Private Collector", "The level of care and transparency is unlike anything else in Tashkent. My Porsche arrived exactly as promised, immaculate condition."},
	{"Sardor M.", "Entrepreneur", "I have worked with importers across Central Asia. D-ONE is in a different league entirely. True white-glove service."},
}

type service struct {
	num, title, desc string
}

var services = []service{
	{"01", "Global Sourcing", "Directly importing the most sought-after specifications from Germany, UK, and South Korea, ensuring pristine condition and verifiable history."},
	{"02", "Concierge Handover", "Paperwork, customs clearance, and registration handled entirely by our team. You simply receive the keys to your new reality."},
	{"03", "Lifetime Partnership", "Our relationship doesn't end at delivery. Maintenance coordination, insurance advisory, and priority access to new inventory."},
}

var amenities = []string{
	"Parking", "Card Payment", "Bank Transfer", "Cafe", "Free Wi-Fi",
	"Pre-Registration", "E-Passport", "Gift Certificate", "Accessible Parking",
}

// HomeData is everything the landing page shows from the catalog.
type HomeData struct {
	Brands   []string
	Featured []vehicle.Vehicle
	Groups   []catalog.Group
	Total    int
}

func HomePage(data HomeData) g.Node {
	return Page(
		config.SiteName,
		"/",
		[]g.Node{
			hero(),
			brandMarquee(data.Brands),
			statsSection(),
			philosophySection(),
			modelsSection(data),
			servicesSection(),
			amenitiesSection(),
			testimonialsSection(),
			ctaSection(),
			mapSection(),
		},
	)
}

func hero() g.Node {
	return Section(
		Class("relative h-screen min-h-[600px] flex flex-col items-center justify-center px-5 md:px-12 text-center bg-gradient-to-t from-black via-zinc-950 to-zinc-900"),
		Span(Class("text-zinc-500 text-[11px] tracking-[0.3em] uppercase font-light mb-6 md:mb-10"), g.Text("Est. 2020 · Tashkent")),
		H1(
			Class("font-serif font-medium tracking-tight leading-none text-[3.5rem] md:text-[4.5rem] lg:text-[5.5rem]"),
			Span(Class("block"), g.Text("Gentle")),
			Span(Class("block"), Em(Class("font-normal italic"), g.Text("Luxury."))),
		),
		P(
			Class("text-zinc-400 font-light tracking-wide max-w-md mx-auto leading-relaxed mt-8"),
			g.Text("Curating the world's finest automobiles for Tashkent's most discerning collectors."),
		),
		Div(
			Class("flex flex-col sm:flex-row items-center gap-4 mt-10"),
			buttonOutline("Explore Collection", withHref("#models")),
			A(Href("#contact"), Class("flex items-center gap-2 px-6 py-3 text-xs uppercase tracking-[0.2em] text-zinc-400 hover:text-white"),
				icon(iconPhone), g.Text("Contact Us")),
		),
	)
}

// brandMarquee lists the brands in stock, skipping the "All" sentinel.
func brandMarquee(brands []string) g.Node {
	var names []string
	for _, b := range brands {
		if b != catalog.AllBrands {
			names = append(names, b)
		}
	}
	if len(names) == 0 {
		return nil
	}

	return Div(
		Class("border-y border-zinc-900 py-5 overflow-hidden"),
		Div(
			Class("flex gap-10 md:gap-16 justify-center flex-wrap px-5"),
			g.Map(names, func(name string) g.Node {
				return Span(Class("text-zinc-600 text-xs md:text-sm uppercase tracking-[0.3em] whitespace-nowrap"), g.Text(name))
			}),
		),
	)
}

func statsSection() g.Node {
	return Section(
		Class("py-16 md:py-24 px-5 md:px-12"),
		Div(
			Class("max-w-7xl mx-auto grid grid-cols-2 md:grid-cols-4 gap-8 text-center"),
			g.Map(stats, func(s stat) g.Node {
				return Div(
					Div(Class("text-4xl md:text-6xl font-serif font-medium tracking-tighter mb-2"), g.Textf("%d%s", s.number, s.suffix)),
					Div(Class("text-zinc-500 text-[11px] md:text-sm tracking-widest uppercase"), g.Text(s.label)),
				)
			}),
		),
	)
}

func philosophySection() g.Node {
	return Section(
		ID("philosophy"),
		Class("py-20 md:py-48 px-5 md:px-6 bg-zinc-50 text-black"),
		Div(
			Class("max-w-4xl mx-auto"),
			H3(Class("text-zinc-400 text-xs md:text-sm tracking-[0.2em] uppercase mb-8 md:mb-12"), g.Text("Our Philosophy")),
			P(
				Class("text-xl md:text-5xl leading-snug md:leading-tight tracking-tight"),
				Span(Class("font-serif"), g.Text("We do not just import cars. ")),
				Span(Class("font-light"), g.Text("We curate masterpieces of engineering.")),
				Span(Class("text-zinc-400 font-light"),
					g.Text(" Every vehicle selected by D-ONE is a testament to uncompromising quality, designed for those who recognize that true luxury whispers.")),
			),
			A(Href("/catalog"), Class("inline-flex items-center gap-2 uppercase tracking-widest text-sm mt-10 md:mt-16 border-b border-black pb-1"),
				g.Text("Browse our collection"), icon(iconArrowOut)),
		),
	)
}

func modelsSection(data HomeData) g.Node {
	return Section(
		ID("models"),
		Class("py-20 md:py-32 px-5 md:px-12"),
		Div(
			Class("max-w-7xl mx-auto"),
			Div(
				Class("mb-10 md:mb-16"),
				sectionLabel("Flagship Collection"),
				H2(Class("text-3xl md:text-6xl font-medium tracking-tighter font-serif"), g.Text("The Collection.")),
				P(Class("text-zinc-500 font-light mt-3 tracking-wide"), g.Textf("%d vehicles in stock", data.Total)),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 gap-4 md:gap-6 mb-20"),
				g.Map(data.Featured, func(v vehicle.Vehicle) g.Node { return CarCard(v, true) }),
			),
			H3(Class("text-zinc-500 text-xs tracking-[0.2em] uppercase mb-8"), g.Text("Browse by Brand")),
			g.Map(data.Groups, func(grp catalog.Group) g.Node {
				return categorySlider(grp.Title, grp.Vehicles, true)
			}),
			A(
				Href("/catalog"),
				Class("block w-full border border-zinc-800 py-8 md:py-12 text-center hover:border-zinc-600 hover:bg-zinc-900/50 transition-colors"),
				P(Class("text-zinc-500 text-xs tracking-[0.2em] uppercase mb-3"), g.Text("Full Inventory")),
				P(Class("text-xl md:text-3xl font-serif font-medium tracking-tight mb-4"), g.Textf("Explore All %d Vehicles", data.Total)),
				Span(Class("inline-flex items-center gap-2 text-xs uppercase tracking-widest text-zinc-400"), g.Text("Open Catalog"), icon(iconArrowOut)),
			),
		),
	)
}

func servicesSection() g.Node {
	return Section(
		ID("services"),
		Class("py-20 md:py-32 bg-white text-black px-5 md:px-12"),
		Div(
			Class("max-w-3xl mx-auto"),
			H2(Class("text-3xl md:text-5xl font-medium tracking-tighter mb-10 font-serif"), g.Text("Seamless Acquisition.")),
			Div(
				Class("space-y-8"),
				g.Map(services, func(s service) g.Node {
					return Div(
						Class("flex gap-6 border-t border-zinc-200 pt-6"),
						Span(Class("text-zinc-400 font-serif text-lg"), g.Text(s.num)),
						Div(
							H4(Class("text-base md:text-lg font-medium mb-2"), g.Text(s.title)),
							P(Class("text-zinc-500 font-light leading-relaxed"), g.Text(s.desc)),
						),
					)
				}),
			),
		),
	)
}

func amenitiesSection() g.Node {
	return Section(
		Class("py-20 md:py-32 px-5 md:px-12 bg-zinc-950"),
		Div(
			Class("max-w-7xl mx-auto"),
			Div(
				Class("text-center mb-12"),
				sectionLabel("Showroom"),
				H2(Class("text-3xl md:text-6xl font-medium tracking-tighter font-serif"), g.Text("Features & Amenities")),
			),
			Div(
				Class("grid grid-cols-3 gap-px bg-zinc-900"),
				g.Map(amenities, func(label string) g.Node {
					return Div(Class("bg-zinc-950 py-8 flex items-center justify-center gap-2"),
						icon(iconCheck, "text-zinc-500"),
						Span(Class("text-zinc-400 text-[9px] md:text-xs tracking-widest uppercase font-light"), g.Text(label)))
				}),
			),
		),
	)
}

func testimonialsSection() g.Node {
	return Section(
		ID("testimonials"),
		Class("py-20 md:py-32 bg-zinc-950 px-5 md:px-12"),
		Div(
			Class("max-w-7xl mx-auto"),
			Div(
				Class("text-center mb-12 md:mb-20"),
				sectionLabel("Client Voices"),
				H2(Class("text-3xl md:text-6xl font-medium tracking-tighter font-serif"), g.Text("Trusted by the Discerning.")),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-3 gap-6 md:gap-8"),
				g.Map(testimonials, func(t testimonial) g.Node {
					return Div(
						Class("border border-zinc-800 p-6 md:p-8 flex flex-col"),
						icon(iconQuote, "text-3xl text-zinc-700 mb-4"),
						P(Class("text-zinc-300 font-light leading-relaxed flex-1 italic"), g.Textf("\"%s\"", t.text)),
						Div(
							Class("mt-6 pt-6 border-t border-zinc-800"),
							Div(Class("font-medium text-sm tracking-wide"), g.Text(t.name)),
							Div(Class("text-zinc-500 text-xs tracking-widest uppercase mt-1"), g.Text(t.role)),
						),
					)
				}),
			),
		),
	)
}

func ctaSection() g.Node {
	return Section(
		Class("py-20 md:py-40 px-5 md:px-6 text-center"),
		H2(Class("text-2xl md:text-7xl font-medium tracking-tighter mb-5 md:mb-8 font-serif"), g.Text("Your Next Chapter Begins Here.")),
		P(Class("text-zinc-400 md:text-xl font-light max-w-2xl mx-auto mb-8 md:mb-12 leading-relaxed"),
			g.Text("Whether you have a specific model in mind or wish to explore possibilities, our team is ready to craft your perfect automotive experience.")),
		Div(
			Class("flex flex-col items-center gap-4"),
			button("Schedule Consultation", withHref(config.DealerTelegram), withExternal()),
			A(Href(config.DealerPhoneLink), Class("text-zinc-400 hover:text-white text-sm uppercase tracking-widest py-3"), g.Text(config.DealerPhone)),
		),
	)
}

func mapSection() g.Node {
	return Section(
		Class("px-5 md:px-12 pb-20"),
		Div(
			Class("max-w-7xl mx-auto border border-zinc-800 p-6 md:p-10 md:max-w-md md:mx-0"),
			H4(Class("font-serif text-xl font-medium tracking-tight mb-3"), g.Text("Visit Our Showroom")),
			g.El("address",
				Class("not-italic font-light text-zinc-300 space-y-2 text-sm"),
				Div(Class("flex items-start gap-2"), icon(iconPin, "text-zinc-500"), Span(g.Text(config.DealerAddress))),
				Div(Class("flex items-center gap-2"), icon(iconClock, "text-zinc-500"), Span(g.Text(config.DealerHours))),
				Div(Class("flex items-center gap-2"), icon(iconPhone, "text-zinc-500"),
					A(Href(config.DealerPhoneLink), Class("hover:text-white"), g.Text(config.DealerPhone))),
			),
			A(Href(config.DealerMapLink), Target("_blank"), Rel("noopener noreferrer"),
				Class("inline-flex items-center gap-2 text-xs uppercase tracking-widest mt-4 text-zinc-400 hover:text-white"),
				g.Text("Get Directions"), icon(iconArrowOut)),
		),
	)
}
