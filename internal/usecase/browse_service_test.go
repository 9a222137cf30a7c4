package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/football-stats-web/internal/domain/club"
	"github.com/riskibarqy/football-stats-web/internal/domain/league"
	"github.com/riskibarqy/football-stats-web/internal/domain/player"
	clubmock "github.com/riskibarqy/football-stats-web/internal/mocks/domain/club"
	leaguemock "github.com/riskibarqy/football-stats-web/internal/mocks/domain/league"
	playermock "github.com/riskibarqy/football-stats-web/internal/mocks/domain/player"
	"github.com/stretchr/testify/mock"
)

func TestBrowseService_ListCountriesSortedByName(t *testing.T) {
	t.Parallel()

	leagueRepo := leaguemock.NewRepository(t)
	leagueRepo.On("ListCountries", mock.Anything).Return([]league.Country{
		{ID: 3, Name: "Spain"},
		{ID: 1, Name: "England"},
		{ID: 2, Name: "Italy"},
	}, nil).Once()

	service := NewBrowseService(leagueRepo, clubmock.NewRepository(t), playermock.NewRepository(t))
	got, err := service.ListCountries(context.Background())
	if err != nil {
		t.Fatalf("list countries: %v", err)
	}
	if len(got) != 3 || got[0].Name != "England" || got[2].Name != "Spain" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestBrowseService_CountryLeagues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	leagueRepo := leaguemock.NewRepository(t)
	leagueRepo.On("GetCountry", mock.Anything, int64(1)).Return(league.Country{ID: 1, Name: "England"}, nil).Once()
	leagueRepo.On("ListByCountry", mock.Anything, int64(1)).Return([]league.League{
		{ID: 5, CountryID: 1, Name: "Premier League"},
		{ID: 6, CountryID: 1, Name: "Championship"},
	}, nil).Once()

	service := NewBrowseService(leagueRepo, clubmock.NewRepository(t), playermock.NewRepository(t))
	got, err := service.CountryLeagues(ctx, 1)
	if err != nil {
		t.Fatalf("country leagues: %v", err)
	}
	if got.Country.Name != "England" || len(got.Leagues) != 2 {
		t.Fatalf("unexpected result: %+v", got)
	}
}

func TestBrowseService_CountryLeaguesPropagatesFailures(t *testing.T) {
	t.Parallel()

	errDown := errors.New("backend down")
	leagueRepo := leaguemock.NewRepository(t)
	leagueRepo.On("GetCountry", mock.Anything, int64(1)).Return(league.Country{}, ErrNotFound).Once()
	leagueRepo.On("ListByCountry", mock.Anything, int64(1)).Return(nil, errDown).Once()

	service := NewBrowseService(leagueRepo, clubmock.NewRepository(t), playermock.NewRepository(t))
	_, err := service.CountryLeagues(context.Background(), 1)
	if !errors.Is(err, ErrNotFound) || !errors.Is(err, errDown) {
		t.Fatalf("expected both failures joined, got %v", err)
	}
}

func TestBrowseService_RejectsNonPositiveIDs(t *testing.T) {
	t.Parallel()

	service := NewBrowseService(leaguemock.NewRepository(t), clubmock.NewRepository(t), playermock.NewRepository(t))
	if _, err := service.CountryLeagues(context.Background(), 0); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for country, got %v", err)
	}
	if _, err := service.ClubSquad(context.Background(), -1); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for club, got %v", err)
	}
}

func TestBrowseService_ClubSquadSortedByNumber(t *testing.T) {
	t.Parallel()

	clubRepo := clubmock.NewRepository(t)
	playerRepo := playermock.NewRepository(t)
	clubRepo.On("GetByID", mock.Anything, int64(10)).Return(club.Club{ID: 10, LeagueID: 5, Name: "Chelsea"}, nil).Once()
	playerRepo.On("ListByClub", mock.Anything, int64(10)).Return([]player.Player{
		{ID: 3, ClubID: 10, Name: "Palmer", Number: 20},
		{ID: 1, ClubID: 10, Name: "Sanchez", Number: 1},
		{ID: 2, ClubID: 10, Name: "James", Number: 24},
	}, nil).Once()

	service := NewBrowseService(leaguemock.NewRepository(t), clubRepo, playerRepo)
	got, err := service.ClubSquad(context.Background(), 10)
	if err != nil {
		t.Fatalf("club squad: %v", err)
	}
	if got.Club.Name != "Chelsea" {
		t.Fatalf("unexpected club: %+v", got.Club)
	}
	if len(got.Players) != 3 || got.Players[0].Number != 1 || got.Players[2].Number != 24 {
		t.Fatalf("unexpected squad order: %+v", got.Players)
	}
}
