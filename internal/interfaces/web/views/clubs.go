package views

import (
	"fmt"
	"strconv"

	"github.com/riskibarqy/football-stats-web/internal/domain/club"
	"github.com/riskibarqy/football-stats-web/internal/domain/gameresult"
	"github.com/riskibarqy/football-stats-web/internal/domain/season"
	"github.com/riskibarqy/football-stats-web/internal/domain/standing"
	"github.com/riskibarqy/football-stats-web/internal/usecase"
	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type ClubsPageData struct {
	State  usecase.ClubsPageState
	Toasts []string
}

var standingColumns = []string{
	"Position", "Club", "Points", "Games", "Wins", "Draws", "Losses", "Goals For", "Goals Against", "Goal Difference",
}

func ClubsPage(data ClubsPageData) Node {
	s := data.State
	title := "Clubs"
	if name := s.LeagueName(); name != "" {
		title = name + " Clubs"
	}

	return page(title,
		homeLink(),
		Br(),
		A(Href(LeaguesPath(s.CountryID)), Text("Back to Leagues")),
		toasts(data.Toasts),
		If(s.Alert != "", alert(s.Alert)),
		Map(s.ReadFailures, func(f usecase.ReadFailure) Node {
			return notice(fmt.Sprintf("Could not load %s: %s", f.Slot, f.Message))
		}),
		If(s.League != nil, H1(Text(title))),
		modeSwitch(s),
		Br(),
		If(s.Mode == usecase.ViewClubsList, clubsList(s)),
		If(s.Mode == usecase.ViewStanding, standingView(s)),
		If(s.Mode == usecase.ViewGameResults, gameResultsView(s)),
	)
}

func modeSwitch(s usecase.ClubsPageState) Node {
	button := func(mode usecase.ViewMode, label string) Node {
		return Button(Type("submit"), Name("view"), Value(mode.String()), If(s.Mode == mode, Disabled()), Text(label))
	}

	return El("form", Class("mode-switch"), Attr("method", "get"), Attr("action", ClubsPath(s.CountryID, s.LeagueID)),
		button(usecase.ViewClubsList, "Clubs"),
		button(usecase.ViewStanding, "Standing"),
		button(usecase.ViewGameResults, "Game Results"),
	)
}

func clubsList(s usecase.ClubsPageState) Node {
	nameInput := Input(
		Type("text"),
		Name("name"),
		Placeholder("Club name"),
		Value(s.NewClubName),
		Required(),
		If(s.FocusNameInput, Attr("autofocus")),
	)

	return Group{
		Ul(Class("clubs"), Map(s.Clubs, func(c club.Club) Node {
			return Li(A(Href(PlayersPath(s.CountryID, s.LeagueID, c.ID)), Text(c.Name)))
		})),
		H2(Text("Register New Club")),
		El("form", Class("register-club"), Attr("method", "post"), Attr("action", ClubsPath(s.CountryID, s.LeagueID)),
			nameInput,
			Button(Type("submit"), Text("Register")),
		),
	}
}

func seasonSelect(s usecase.ClubsPageState) Node {
	var selectedID int64
	options := s.Seasons
	if s.SelectedSeason != nil {
		selectedID = s.SelectedSeason.ID
		if _, listed := season.Find(s.Seasons, selectedID); !listed {
			options = append([]season.Season{*s.SelectedSeason}, s.Seasons...)
		}
	}

	return El("form", Class("season-select"), Attr("method", "get"), Attr("action", ClubsPath(s.CountryID, s.LeagueID)),
		Input(Type("hidden"), Name("view"), Value(s.Mode.String())),
		El("label", Attr("for", "season-select"), Text("Choose a season:")),
		Select(ID("season-select"), Name("season"),
			Map(options, func(item season.Season) Node {
				return Option(Value(strconv.FormatInt(item.ID, 10)), If(item.ID == selectedID, Selected()), Text(item.Name))
			}),
		),
		Button(Type("submit"), Text("Show")),
	)
}

func standingView(s usecase.ClubsPageState) Node {
	var rows []standing.Row
	if s.Standing != nil {
		rows = s.Standing.ClubForStandings
	}

	return Group{
		seasonSelect(s),
		Table(Class("standing"),
			THead(Tr(Map(standingColumns, func(col string) Node { return Th(Text(col)) }))),
			TBody(Map(rows, func(row standing.Row) Node {
				return Tr(
					Td(Text(strconv.Itoa(row.Position))),
					Td(A(Href(PlayersPath(s.CountryID, s.LeagueID, row.Club.ID)), Text(row.Club.Name))),
					Td(Text(strconv.Itoa(row.Points))),
					Td(Text(strconv.Itoa(row.GamesPlayed))),
					Td(Text(strconv.Itoa(row.Wins))),
					Td(Text(strconv.Itoa(row.Draws))),
					Td(Text(strconv.Itoa(row.Losses))),
					Td(Text(strconv.Itoa(row.GoalsFor))),
					Td(Text(strconv.Itoa(row.GoalsAgainst))),
					Td(Text(strconv.Itoa(row.GoalDifference))),
				)
			})),
		),
	}
}

func gameResultsView(s usecase.ClubsPageState) Node {
	var body Node = P(Class("no-game-results"), Text("No game results"))
	if s.SeasonGameResult != nil && !s.SeasonGameResult.Empty() {
		body = Map(s.SeasonGameResult.DayGameResults, func(day gameresult.DayGameResult) Node {
			return dayGameResults(s, day)
		})
	}

	return Group{
		A(Href(RegisterGameResultPath(s.CountryID, s.LeagueID)), Text("Register Game Result")),
		Br(),
		seasonSelect(s),
		body,
	}
}

func dayGameResults(s usecase.ClubsPageState, day gameresult.DayGameResult) Node {
	clubLink := func(id int64, name string) Node {
		return A(Href(PlayersPath(s.CountryID, s.LeagueID, id)), Text(name))
	}

	return Div(Class("day-game-results"),
		H2(Text(day.GameDate)),
		Table(
			TBody(Map(day.GameResults, func(g gameresult.GameResult) Node {
				winner, decided := g.WinnerClubID()
				clubCell := func(id int64, name string) Node {
					return Td(If(decided && winner == id, Class("winner")), clubLink(id, name))
				}
				return Tr(
					clubCell(g.HomeClubID, g.HomeClubName),
					Td(Text(fmt.Sprintf("%d - %d", g.HomeScore, g.AwayScore))),
					clubCell(g.AwayClubID, g.AwayClubName),
				)
			})),
		),
	)
}
