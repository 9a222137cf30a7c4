package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/football-stats-web/internal/domain/club"
	"github.com/riskibarqy/football-stats-web/internal/domain/league"
	"github.com/riskibarqy/football-stats-web/internal/domain/player"
	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/attribute"
)

type CountryLeagues struct {
	Country league.Country
	Leagues []league.League
}

type ClubSquad struct {
	Club    club.Club
	Players []player.Player
}

// BrowseService serves the read-only navigation pages leading to a league.
type BrowseService struct {
	leagueRepo league.Repository
	clubRepo   club.Repository
	playerRepo player.Repository
}

func NewBrowseService(leagueRepo league.Repository, clubRepo club.Repository, playerRepo player.Repository) *BrowseService {
	return &BrowseService{
		leagueRepo: leagueRepo,
		clubRepo:   clubRepo,
		playerRepo: playerRepo,
	}
}

func (s *BrowseService) ListCountries(ctx context.Context) ([]league.Country, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BrowseService.ListCountries")
	defer span.End()

	countries, err := s.leagueRepo.ListCountries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}

	out := slices.Clone(countries)
	slices.SortStableFunc(out, func(a, b league.Country) int {
		return strings.Compare(a.Name, b.Name)
	})
	return out, nil
}

func (s *BrowseService) CountryLeagues(ctx context.Context, countryID int64) (CountryLeagues, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BrowseService.CountryLeagues", attribute.Int64("country.id", countryID))
	defer span.End()

	if countryID <= 0 {
		return CountryLeagues{}, fmt.Errorf("%w: country id must be positive", ErrInvalidInput)
	}

	var (
		out                    CountryLeagues
		countryErr, leaguesErr error
	)
	var wg conc.WaitGroup
	wg.Go(func() {
		out.Country, countryErr = s.leagueRepo.GetCountry(ctx, countryID)
	})
	wg.Go(func() {
		out.Leagues, leaguesErr = s.leagueRepo.ListByCountry(ctx, countryID)
	})
	wg.Wait()

	if countryErr != nil {
		countryErr = fmt.Errorf("get country: %w", countryErr)
	}
	if leaguesErr != nil {
		leaguesErr = fmt.Errorf("list leagues by country: %w", leaguesErr)
	}
	if err := errors.Join(countryErr, leaguesErr); err != nil {
		return CountryLeagues{}, err
	}
	return out, nil
}

func (s *BrowseService) ClubSquad(ctx context.Context, clubID int64) (ClubSquad, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BrowseService.ClubSquad", attribute.Int64("club.id", clubID))
	defer span.End()

	if clubID <= 0 {
		return ClubSquad{}, fmt.Errorf("%w: club id must be positive", ErrInvalidInput)
	}

	var (
		out                  ClubSquad
		clubErr, playersErr error
	)
	var wg conc.WaitGroup
	wg.Go(func() {
		out.Club, clubErr = s.clubRepo.GetByID(ctx, clubID)
	})
	wg.Go(func() {
		out.Players, playersErr = s.playerRepo.ListByClub(ctx, clubID)
	})
	wg.Wait()

	if clubErr != nil {
		clubErr = fmt.Errorf("get club: %w", clubErr)
	}
	if playersErr != nil {
		playersErr = fmt.Errorf("list players: %w", playersErr)
	}
	if err := errors.Join(clubErr, playersErr); err != nil {
		return ClubSquad{}, err
	}

	out.Players = slices.Clone(out.Players)
	player.SortByNumber(out.Players)
	return out, nil
}
