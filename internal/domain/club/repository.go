package club

import "context"

type Repository interface {
	ListByLeague(ctx context.Context, leagueID int64) ([]Club, error)
	GetByID(ctx context.Context, clubID int64) (Club, error)
	Register(ctx context.Context, registration Registration) (Club, error)
}
