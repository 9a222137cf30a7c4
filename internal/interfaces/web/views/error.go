package views

import (
	"net/http"
	"strconv"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func ErrorPage(status int, message string) Node {
	title := strconv.Itoa(status) + " " + http.StatusText(status)
	return page(title,
		homeLink(),
		H1(Text(title)),
		alert(message),
	)
}
