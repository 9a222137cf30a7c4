package league

import "context"

// Repository describes the league and country reads the pages need.
type Repository interface {
	GetByID(ctx context.Context, leagueID int64) (League, error)
	ListByCountry(ctx context.Context, countryID int64) ([]League, error)
	ListCountries(ctx context.Context) ([]Country, error)
	GetCountry(ctx context.Context, countryID int64) (Country, error)
}
