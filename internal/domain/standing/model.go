package standing

import (
	"fmt"

	"github.com/riskibarqy/football-stats-web/internal/domain/club"
)

// Row is one club's line in a league table. Position comes from the backend
// and is never recomputed here.
type Row struct {
	Position       int
	Club           club.Club
	Points         int
	GamesPlayed    int
	Wins           int
	Draws          int
	Losses         int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
}

func (r Row) Validate() error {
	if r.GoalDifference != r.GoalsFor-r.GoalsAgainst {
		return fmt.Errorf("club %d: goal difference %d does not match %d-%d", r.Club.ID, r.GoalDifference, r.GoalsFor, r.GoalsAgainst)
	}
	if r.GamesPlayed != r.Wins+r.Draws+r.Losses {
		return fmt.Errorf("club %d: games played %d does not match %d+%d+%d", r.Club.ID, r.GamesPlayed, r.Wins, r.Draws, r.Losses)
	}
	return nil
}

// Standing is the ranked table of a league for one season.
type Standing struct {
	LeagueID         int64
	SeasonID         int64
	LeagueName       string
	SeasonName       string
	ClubForStandings []Row
}

// Inconsistencies returns one error per row breaking the table invariants.
func (s Standing) Inconsistencies() []error {
	var out []error
	for _, row := range s.ClubForStandings {
		if err := row.Validate(); err != nil {
			out = append(out, err)
		}
	}
	return out
}
