package season

import "context"

type Repository interface {
	List(ctx context.Context) ([]Season, error)
	// GetCurrent reports false when no season is flagged current.
	GetCurrent(ctx context.Context) (Season, bool, error)
}
