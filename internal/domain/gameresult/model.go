package gameresult

// GameResult is the recorded score of one match.
type GameResult struct {
	ID           int64
	HomeClubID   int64
	HomeClubName string
	AwayClubID   int64
	AwayClubName string
	HomeScore    int
	AwayScore    int
	GameDate     string
}

// WinnerClubID returns the winning club, or false on a draw.
func (g GameResult) WinnerClubID() (int64, bool) {
	switch {
	case g.HomeScore > g.AwayScore:
		return g.HomeClubID, true
	case g.AwayScore > g.HomeScore:
		return g.AwayClubID, true
	default:
		return 0, false
	}
}

// DayGameResult groups the games played on one calendar date (YYYY-MM-DD).
type DayGameResult struct {
	GameDate    string
	GameResults []GameResult
}

type SeasonGameResult struct {
	LeagueID       int64
	SeasonID       int64
	DayGameResults []DayGameResult
}

func (s SeasonGameResult) Empty() bool {
	return len(s.DayGameResults) == 0
}
