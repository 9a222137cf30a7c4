package views

import (
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func HomePage() Node {
	return page("Football Stats",
		Div(
			A(Href(CountriesPath), Text("Browse data")),
			A(Href(RegisterSeasonPath), Text("Register season")),
		),
	)
}
