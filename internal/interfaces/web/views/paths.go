package views

import (
	"fmt"
	"net/url"
	"strconv"
)

const (
	HomePath           = "/"
	CountriesPath      = "/countries"
	RegisterSeasonPath = "/register-season"
)

func LeaguesPath(countryID int64) string {
	return fmt.Sprintf("/countries/%d/leagues", countryID)
}

func ClubsPath(countryID, leagueID int64) string {
	return fmt.Sprintf("/countries/%d/leagues/%d/clubs", countryID, leagueID)
}

func PlayersPath(countryID, leagueID, clubID int64) string {
	return fmt.Sprintf("/countries/%d/leagues/%d/clubs/%d/players", countryID, leagueID, clubID)
}

func RegisterGameResultPath(countryID, leagueID int64) string {
	return fmt.Sprintf("/countries/%d/leagues/%d/register-game-result", countryID, leagueID)
}

// ClubsIntentPath opens a fresh clubs page with the given navigation intent.
func ClubsIntentPath(countryID, leagueID int64, showClubsList, showGameResults bool) string {
	q := url.Values{}
	q.Set("showClubsList", strconv.FormatBool(showClubsList))
	q.Set("showGameResults", strconv.FormatBool(showGameResults))
	return ClubsPath(countryID, leagueID) + "?" + q.Encode()
}
