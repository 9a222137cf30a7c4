package web

import "net/http"

func registerRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /healthz", h.Healthz)

	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /countries", h.Countries)
	mux.HandleFunc("GET /countries/{countryID}/leagues", h.Leagues)
	mux.HandleFunc("GET /countries/{countryID}/leagues/{leagueID}/clubs", h.Clubs)
	mux.HandleFunc("POST /countries/{countryID}/leagues/{leagueID}/clubs", h.RegisterClub)
	mux.HandleFunc("GET /countries/{countryID}/leagues/{leagueID}/clubs/{clubID}/players", h.Players)

	mux.HandleFunc("/", h.NotFound)
}
