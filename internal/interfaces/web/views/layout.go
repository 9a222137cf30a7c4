package views

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func page(title string, body ...Node) Node {
	return Doctype(
		HTML(
			Lang("en"),
			Head(
				Meta(Attr("charset", "utf-8")),
				Meta(Name("viewport"), Attr("content", "width=device-width, initial-scale=1")),
				El("title", Text(title)),
			),
			Body(Main(body...)),
		),
	)
}

func homeLink() Node {
	return A(Href(HomePath), Text("Home"))
}

func alert(message string) Node {
	return Div(Class("alert"), Attr("role", "alert"), Text(message))
}

func toasts(messages []string) Node {
	return Map(messages, func(msg string) Node {
		return Div(Class("toast"), Attr("role", "status"), Text(msg))
	})
}

func notice(message string) Node {
	return P(Class("notice"), Text(message))
}
