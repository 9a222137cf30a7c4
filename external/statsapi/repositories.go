package statsapi

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/riskibarqy/football-stats-web/internal/domain/club"
	"github.com/riskibarqy/football-stats-web/internal/domain/gameresult"
	"github.com/riskibarqy/football-stats-web/internal/domain/league"
	"github.com/riskibarqy/football-stats-web/internal/domain/player"
	"github.com/riskibarqy/football-stats-web/internal/domain/season"
	"github.com/riskibarqy/football-stats-web/internal/domain/standing"
	"github.com/riskibarqy/football-stats-web/internal/usecase"
)

type SeasonRepository struct{ client *Client }

func NewSeasonRepository(client *Client) *SeasonRepository {
	return &SeasonRepository{client: client}
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	var payload []seasonDTO
	if err := r.client.getJSON(ctx, "/seasons", &payload); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return mapSlice(payload, seasonDTO.toDomain), nil
}

// GetCurrent treats a 404 from the backend as "no current season".
func (r *SeasonRepository) GetCurrent(ctx context.Context) (season.Season, bool, error) {
	var payload seasonDTO
	if err := r.client.getJSON(ctx, "/seasons/current", &payload); err != nil {
		if stderrors.Is(err, usecase.ErrNotFound) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get current season: %w", err)
	}
	return payload.toDomain(), true, nil
}

type LeagueRepository struct{ client *Client }

func NewLeagueRepository(client *Client) *LeagueRepository {
	return &LeagueRepository{client: client}
}

func (r *LeagueRepository) GetByID(ctx context.Context, leagueID int64) (league.League, error) {
	var payload leagueDTO
	if err := r.client.getJSON(ctx, fmt.Sprintf("/leagues/%d", leagueID), &payload); err != nil {
		return league.League{}, fmt.Errorf("get league id=%d: %w", leagueID, err)
	}
	return payload.toDomain(), nil
}

func (r *LeagueRepository) ListByCountry(ctx context.Context, countryID int64) ([]league.League, error) {
	var payload []leagueDTO
	if err := r.client.getJSON(ctx, fmt.Sprintf("/countries/%d/leagues", countryID), &payload); err != nil {
		return nil, fmt.Errorf("list leagues country_id=%d: %w", countryID, err)
	}
	return mapSlice(payload, leagueDTO.toDomain), nil
}

func (r *LeagueRepository) ListCountries(ctx context.Context) ([]league.Country, error) {
	var payload []countryDTO
	if err := r.client.getJSON(ctx, "/countries", &payload); err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return mapSlice(payload, countryDTO.toDomain), nil
}

func (r *LeagueRepository) GetCountry(ctx context.Context, countryID int64) (league.Country, error) {
	var payload countryDTO
	if err := r.client.getJSON(ctx, fmt.Sprintf("/countries/%d", countryID), &payload); err != nil {
		return league.Country{}, fmt.Errorf("get country id=%d: %w", countryID, err)
	}
	return payload.toDomain(), nil
}

type ClubRepository struct{ client *Client }

func NewClubRepository(client *Client) *ClubRepository {
	return &ClubRepository{client: client}
}

func (r *ClubRepository) ListByLeague(ctx context.Context, leagueID int64) ([]club.Club, error) {
	var payload []clubDTO
	if err := r.client.getJSON(ctx, fmt.Sprintf("/leagues/%d/clubs", leagueID), &payload); err != nil {
		return nil, fmt.Errorf("list clubs league_id=%d: %w", leagueID, err)
	}
	return mapSlice(payload, clubDTO.toDomain), nil
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID int64) (club.Club, error) {
	var payload clubDTO
	if err := r.client.getJSON(ctx, fmt.Sprintf("/clubs/%d", clubID), &payload); err != nil {
		return club.Club{}, fmt.Errorf("get club id=%d: %w", clubID, err)
	}
	return payload.toDomain(), nil
}

// Register creates a club. The backend answer is used as-is; fields it
// leaves out are filled from the request.
func (r *ClubRepository) Register(ctx context.Context, registration club.Registration) (club.Club, error) {
	var payload clubDTO
	request := registerClubRequest{LeagueID: registration.LeagueID, Name: registration.Name}
	if err := r.client.postJSON(ctx, "/club", request, &payload); err != nil {
		return club.Club{}, err
	}

	created := payload.toDomain()
	if created.LeagueID == 0 {
		created.LeagueID = registration.LeagueID
	}
	if created.Name == "" {
		created.Name = registration.Name
	}
	return created, nil
}

type StandingRepository struct{ client *Client }

func NewStandingRepository(client *Client) *StandingRepository {
	return &StandingRepository{client: client}
}

func (r *StandingRepository) Get(ctx context.Context, leagueID, seasonID int64) (standing.Standing, error) {
	var payload standingDTO
	path := fmt.Sprintf("/leagues/%d/standings/%d", leagueID, seasonID)
	if err := r.client.getJSON(ctx, path, &payload); err != nil {
		return standing.Standing{}, fmt.Errorf("get standing league_id=%d season_id=%d: %w", leagueID, seasonID, err)
	}
	return payload.toDomain(), nil
}

type GameResultRepository struct{ client *Client }

func NewGameResultRepository(client *Client) *GameResultRepository {
	return &GameResultRepository{client: client}
}

func (r *GameResultRepository) GetSeason(ctx context.Context, leagueID, seasonID int64) (gameresult.SeasonGameResult, error) {
	var payload seasonGameResultDTO
	path := fmt.Sprintf("/leagues/%d/season-game-results/%d", leagueID, seasonID)
	if err := r.client.getJSON(ctx, path, &payload); err != nil {
		return gameresult.SeasonGameResult{}, fmt.Errorf("get season game results league_id=%d season_id=%d: %w", leagueID, seasonID, err)
	}
	return payload.toDomain(), nil
}

type PlayerRepository struct{ client *Client }

func NewPlayerRepository(client *Client) *PlayerRepository {
	return &PlayerRepository{client: client}
}

func (r *PlayerRepository) ListByClub(ctx context.Context, clubID int64) ([]player.Player, error) {
	var payload []playerDTO
	if err := r.client.getJSON(ctx, fmt.Sprintf("/clubs/%d/players", clubID), &payload); err != nil {
		return nil, fmt.Errorf("list players club_id=%d: %w", clubID, err)
	}
	return mapSlice(payload, playerDTO.toDomain), nil
}

var (
	_ season.Repository     = (*SeasonRepository)(nil)
	_ league.Repository     = (*LeagueRepository)(nil)
	_ club.Repository       = (*ClubRepository)(nil)
	_ standing.Repository   = (*StandingRepository)(nil)
	_ gameresult.Repository = (*GameResultRepository)(nil)
	_ player.Repository     = (*PlayerRepository)(nil)
)
