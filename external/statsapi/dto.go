package statsapi

import (
	"strings"
	"time"

	"github.com/riskibarqy/football-stats-web/internal/domain/club"
	"github.com/riskibarqy/football-stats-web/internal/domain/gameresult"
	"github.com/riskibarqy/football-stats-web/internal/domain/league"
	"github.com/riskibarqy/football-stats-web/internal/domain/player"
	"github.com/riskibarqy/football-stats-web/internal/domain/season"
	"github.com/riskibarqy/football-stats-web/internal/domain/standing"
)

const dateLayout = "2006-01-02"

type countryDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type leagueDTO struct {
	ID        int64  `json:"id"`
	CountryID int64  `json:"countryId"`
	Name      string `json:"name"`
}

type clubDTO struct {
	ID       int64  `json:"id"`
	LeagueID int64  `json:"leagueId"`
	Name     string `json:"name"`
}

type registerClubRequest struct {
	LeagueID int64  `json:"leagueId"`
	Name     string `json:"name"`
}

type seasonDTO struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Current   bool   `json:"current"`
}

// playerDTO.ClubID is null for free agents.
type playerDTO struct {
	ID     int64  `json:"id"`
	ClubID *int64 `json:"clubId"`
	Name   string `json:"name"`
	Number int    `json:"number"`
}

type clubForStandingDTO struct {
	Club           clubDTO `json:"club"`
	Position       int     `json:"position"`
	GamesPlayed    int     `json:"gamesPlayed"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	Points         int     `json:"points"`
	GoalsFor       int     `json:"goalsFor"`
	GoalsAgainst   int     `json:"goalsAgainst"`
	GoalDifference int     `json:"goalDifference"`
}

type standingDTO struct {
	LeagueID         int64                `json:"leagueId"`
	SeasonID         int64                `json:"seasonId"`
	LeagueName       string               `json:"leagueName"`
	SeasonName       string               `json:"seasonName"`
	ClubForStandings []clubForStandingDTO `json:"clubForStandings"`
}

type gameResultDTO struct {
	ID           int64  `json:"id"`
	HomeClubID   int64  `json:"homeClubId"`
	AwayClubID   int64  `json:"awayClubId"`
	HomeScore    int    `json:"homeScore"`
	AwayScore    int    `json:"awayScore"`
	LeagueID     int64  `json:"leagueId"`
	SeasonID     int64  `json:"seasonId"`
	GameDate     string `json:"gameDate"`
	HomeClubName string `json:"homeClubName"`
	AwayClubName string `json:"awayClubName"`
}

type dayGameResultDTO struct {
	GameDate    string          `json:"gameDate"`
	GameResults []gameResultDTO `json:"gameResults"`
}

type seasonGameResultDTO struct {
	LeagueID       int64              `json:"leagueId"`
	SeasonID       int64              `json:"seasonId"`
	DayGameResults []dayGameResultDTO `json:"dayGameResults"`
}

func (d countryDTO) toDomain() league.Country {
	return league.Country{ID: d.ID, Name: strings.TrimSpace(d.Name)}
}

func (d leagueDTO) toDomain() league.League {
	return league.League{ID: d.ID, CountryID: d.CountryID, Name: strings.TrimSpace(d.Name)}
}

func (d clubDTO) toDomain() club.Club {
	return club.Club{ID: d.ID, LeagueID: d.LeagueID, Name: strings.TrimSpace(d.Name)}
}

func (d seasonDTO) toDomain() season.Season {
	return season.Season{
		ID:        d.ID,
		Name:      d.Name,
		StartDate: parseDate(d.StartDate),
		EndDate:   parseDate(d.EndDate),
		Current:   d.Current,
	}
}

func (d playerDTO) toDomain() player.Player {
	p := player.Player{ID: d.ID, Name: strings.TrimSpace(d.Name), Number: d.Number}
	if d.ClubID != nil {
		p.ClubID = *d.ClubID
	}
	return p
}

func (d standingDTO) toDomain() standing.Standing {
	rows := make([]standing.Row, 0, len(d.ClubForStandings))
	for _, item := range d.ClubForStandings {
		rows = append(rows, standing.Row{
			Position:       item.Position,
			Club:           item.Club.toDomain(),
			Points:         item.Points,
			GamesPlayed:    item.GamesPlayed,
			Wins:           item.Wins,
			Draws:          item.Draws,
			Losses:         item.Losses,
			GoalsFor:       item.GoalsFor,
			GoalsAgainst:   item.GoalsAgainst,
			GoalDifference: item.GoalDifference,
		})
	}

	return standing.Standing{
		LeagueID:         d.LeagueID,
		SeasonID:         d.SeasonID,
		LeagueName:       d.LeagueName,
		SeasonName:       d.SeasonName,
		ClubForStandings: rows,
	}
}

func (d gameResultDTO) toDomain() gameresult.GameResult {
	return gameresult.GameResult{
		ID:           d.ID,
		HomeClubID:   d.HomeClubID,
		HomeClubName: d.HomeClubName,
		AwayClubID:   d.AwayClubID,
		AwayClubName: d.AwayClubName,
		HomeScore:    d.HomeScore,
		AwayScore:    d.AwayScore,
		GameDate:     d.GameDate,
	}
}

func (d seasonGameResultDTO) toDomain() gameresult.SeasonGameResult {
	days := make([]gameresult.DayGameResult, 0, len(d.DayGameResults))
	for _, day := range d.DayGameResults {
		games := make([]gameresult.GameResult, 0, len(day.GameResults))
		for _, g := range day.GameResults {
			games = append(games, g.toDomain())
		}
		days = append(days, gameresult.DayGameResult{GameDate: day.GameDate, GameResults: games})
	}

	return gameresult.SeasonGameResult{
		LeagueID:       d.LeagueID,
		SeasonID:       d.SeasonID,
		DayGameResults: days,
	}
}

func mapSlice[D any, T any](items []D, convert func(D) T) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return out
}

// parseDate returns the zero time for empty or malformed dates.
func parseDate(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}
