package standing

import "context"

type Repository interface {
	Get(ctx context.Context, leagueID, seasonID int64) (Standing, error)
}
