package views

import (
	"strconv"

	"github.com/riskibarqy/football-stats-web/internal/domain/league"
	"github.com/riskibarqy/football-stats-web/internal/domain/player"
	"github.com/riskibarqy/football-stats-web/internal/usecase"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func CountriesPage(countries []league.Country, failure string) Node {
	return page("Countries",
		homeLink(),
		H1(Text("Countries")),
		If(failure != "", notice(failure)),
		Ul(Map(countries, func(c league.Country) Node {
			return Li(A(Href(LeaguesPath(c.ID)), Text(c.Name)))
		})),
	)
}

func LeaguesPage(data usecase.CountryLeagues) Node {
	countryID := data.Country.ID
	return page(data.Country.Name+" Leagues",
		homeLink(),
		Br(),
		A(Href(CountriesPath), Text("Back to Countries")),
		H1(Text(data.Country.Name+" Leagues")),
		Ul(Map(data.Leagues, func(l league.League) Node {
			return Li(
				A(Href(ClubsIntentPath(countryID, l.ID, true, false)), Text(l.Name)),
				Text(" "),
				A(Class("game-results-link"), Href(ClubsIntentPath(countryID, l.ID, false, true)), Text("Game Results")),
			)
		})),
	)
}

func PlayersPage(countryID, leagueID int64, squad usecase.ClubSquad) Node {
	return page(squad.Club.Name+" Players",
		homeLink(),
		Br(),
		A(Href(ClubsPath(countryID, leagueID)), Text("Back to Clubs")),
		H1(Text(squad.Club.Name+" Players")),
		If(len(squad.Players) == 0, P(Text("No players"))),
		If(len(squad.Players) > 0, Table(
			THead(Tr(Th(Text("Number")), Th(Text("Name")))),
			TBody(Map(squad.Players, func(p player.Player) Node {
				return Tr(Td(Text(strconv.Itoa(p.Number))), Td(Text(p.Name)))
			})),
		)),
	)
}
