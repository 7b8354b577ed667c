package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

const enquiryResultID = "enquiry-result"

func field(label, name, inputType string, required bool) g.Node {
	return Div(
		Label(For("enquiry-"+name), Class("block text-[10px] tracking-widest uppercase text-zinc-500 mb-1"), g.Text(label)),
		Input(
			Type(inputType),
			ID("enquiry-"+name),
			Name(name),
			Class("w-full bg-black border border-zinc-800 px-3 py-2 text-sm focus:border-white outline-none"),
			g.If(required, Required()),
		),
	)
}

// EnquiryForm posts a callback request. vehicleID may be empty for a
// general enquiry.
func EnquiryForm(vehicleID string) g.Node {
	return Form(
		ID("enquiry-form"),
		Class("border border-zinc-800 p-5 space-y-4"),
		Action("/api/enquiry"),
		Method("post"),
		hx.Post("/api/enquiry"),
		hx.Target("#"+enquiryResultID),
		hx.Swap("innerHTML"),
		H3(Class("font-serif text-lg"), g.Text("Request a Call Back")),
		g.If(vehicleID != "", Input(Type("hidden"), Name("vehicle_id"), Value(vehicleID))),
		field("Name", "name", "text", true),
		field("Phone", "phone", "tel", true),
		Div(
			Label(For("enquiry-message"), Class("block text-[10px] tracking-widest uppercase text-zinc-500 mb-1"), g.Text("Message")),
			Textarea(ID("enquiry-message"), Name("message"), Rows("3"),
				Class("w-full bg-black border border-zinc-800 px-3 py-2 text-sm focus:border-white outline-none")),
		),
		button("Send Enquiry", withType("submit"), withClass("w-full")),
		Div(ID(enquiryResultID), Class("text-sm")),
	)
}

// EnquiryAccepted confirms a submission with its reference.
func EnquiryAccepted(reference string) g.Node {
	return Div(
		Class("border border-green-800 bg-green-950/40 text-green-300 px-4 py-3"),
		g.Text("Thank you. Our team will call you shortly. "),
		Span(Class("text-green-500 text-xs"), g.Textf("Reference %s", reference)),
	)
}

func EnquiryError(message string) g.Node {
	return Div(
		Class("border border-red-800 bg-red-950/40 text-red-300 px-4 py-3"),
		g.Text(message),
	)
}
