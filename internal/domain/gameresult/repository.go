package gameresult

import "context"

type Repository interface {
	GetSeason(ctx context.Context, leagueID, seasonID int64) (SeasonGameResult, error)
}
