package usecase

import (
	"slices"

	"github.com/riskibarqy/football-stats-web/internal/domain/club"
	"github.com/riskibarqy/football-stats-web/internal/domain/gameresult"
	"github.com/riskibarqy/football-stats-web/internal/domain/league"
	"github.com/riskibarqy/football-stats-web/internal/domain/season"
	"github.com/riskibarqy/football-stats-web/internal/domain/standing"
)

// ViewMode selects the panel shown on the clubs page. Exactly one is active.
type ViewMode int

const (
	ViewClubsList ViewMode = iota
	ViewStanding
	ViewGameResults
)

var viewModeNames = [...]string{
	ViewClubsList:   "clubs",
	ViewStanding:    "standing",
	ViewGameResults: "game-results",
}

func (m ViewMode) Valid() bool {
	return m >= ViewClubsList && m <= ViewGameResults
}

func (m ViewMode) String() string {
	if !m.Valid() {
		return "unknown"
	}
	return viewModeNames[m]
}

func ParseViewMode(v string) (ViewMode, bool) {
	for i, name := range viewModeNames {
		if name == v {
			return ViewMode(i), true
		}
	}
	return ViewClubsList, false
}

// NavigationIntent is carried by the link that opened the clubs page.
type NavigationIntent struct {
	ShowClubsList   bool
	ShowGameResults bool
}

func DefaultNavigationIntent() NavigationIntent {
	return NavigationIntent{ShowClubsList: true}
}

// InitialMode opens the game results only when they were asked for and the
// club list was not. Every other combination starts on the club list.
func (i NavigationIntent) InitialMode() ViewMode {
	if i.ShowGameResults && !i.ShowClubsList {
		return ViewGameResults
	}
	return ViewClubsList
}

const (
	SlotSeasons       = "seasons"
	SlotCurrentSeason = "current_season"
	SlotClubs         = "clubs"
	SlotLeague        = "league"
	SlotStanding      = "standing"
	SlotGameResults   = "game_results"
)

// ReadFailure reports a fetch that failed while its slot kept the previous value.
type ReadFailure struct {
	Slot    string
	Message string
}

type ClubsPageState struct {
	CountryID int64
	LeagueID  int64

	League           *league.League
	Clubs            []club.Club
	Seasons          []season.Season
	SelectedSeason   *season.Season
	Standing         *standing.Standing
	SeasonGameResult *gameresult.SeasonGameResult

	NewClubName string
	Mode        ViewMode

	Alert          string
	FocusNameInput bool
	ReadFailures   []ReadFailure
}

// LeagueName falls back to an empty string until the league has loaded.
func (s ClubsPageState) LeagueName() string {
	if s.League == nil {
		return ""
	}
	return s.League.Name
}

func (s ClubsPageState) clone() ClubsPageState {
	out := s
	out.Clubs = slices.Clone(s.Clubs)
	out.Seasons = slices.Clone(s.Seasons)
	out.ReadFailures = slices.Clone(s.ReadFailures)
	if s.League != nil {
		l := *s.League
		out.League = &l
	}
	if s.SelectedSeason != nil {
		sel := *s.SelectedSeason
		out.SelectedSeason = &sel
	}
	if s.Standing != nil {
		st := *s.Standing
		st.ClubForStandings = slices.Clone(s.Standing.ClubForStandings)
		out.Standing = &st
	}
	if s.SeasonGameResult != nil {
		gr := *s.SeasonGameResult
		gr.DayGameResults = slices.Clone(s.SeasonGameResult.DayGameResults)
		out.SeasonGameResult = &gr
	}
	return out
}
