package player

import "context"

type Repository interface {
	ListByClub(ctx context.Context, clubID int64) ([]Player, error)
}
