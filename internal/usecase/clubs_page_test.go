package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/football-stats-web/internal/domain/club"
	"github.com/riskibarqy/football-stats-web/internal/domain/gameresult"
	"github.com/riskibarqy/football-stats-web/internal/domain/league"
	"github.com/riskibarqy/football-stats-web/internal/domain/season"
	"github.com/riskibarqy/football-stats-web/internal/domain/standing"
	clubmock "github.com/riskibarqy/football-stats-web/internal/mocks/domain/club"
	gameresultmock "github.com/riskibarqy/football-stats-web/internal/mocks/domain/gameresult"
	leaguemock "github.com/riskibarqy/football-stats-web/internal/mocks/domain/league"
	seasonmock "github.com/riskibarqy/football-stats-web/internal/mocks/domain/season"
	standingmock "github.com/riskibarqy/football-stats-web/internal/mocks/domain/standing"
	"github.com/riskibarqy/football-stats-web/internal/platform/logging"
	"github.com/riskibarqy/football-stats-web/internal/platform/workerpool"
	"github.com/stretchr/testify/mock"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *recordingNotifier) ShowToast(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

type clubsPageFixture struct {
	seasons     *seasonmock.Repository
	leagues     *leaguemock.Repository
	clubs       *clubmock.Repository
	standings   *standingmock.Repository
	gameResults *gameresultmock.Repository
	notifier    *recordingNotifier
}

func newClubsPageFixture(t *testing.T) *clubsPageFixture {
	t.Helper()
	return &clubsPageFixture{
		seasons:     seasonmock.NewRepository(t),
		leagues:     leaguemock.NewRepository(t),
		clubs:       clubmock.NewRepository(t),
		standings:   standingmock.NewRepository(t),
		gameResults: gameresultmock.NewRepository(t),
		notifier:    &recordingNotifier{},
	}
}

func (f *clubsPageFixture) page(leagueID int64, intent NavigationIntent, runner TaskRunner) *ClubsPage {
	return NewClubsPage(ClubsPageDeps{
		Seasons:     f.seasons,
		Leagues:     f.leagues,
		Clubs:       f.clubs,
		Standings:   f.standings,
		GameResults: f.gameResults,
		Notifier:    f.notifier,
		Runner:      runner,
		Logger:      logging.NewNop(),
	}, 1, leagueID, intent)
}

var (
	season2324 = season.Season{ID: 202324, Name: "2023-24"}
	season2425 = season.Season{ID: 202425, Name: "2024-25", Current: true}
)

func (f *clubsPageFixture) expectMount(current *season.Season) {
	f.seasons.On("List", mock.Anything).Return([]season.Season{season2324, season2425}, nil).Once()
	if current != nil {
		f.seasons.On("GetCurrent", mock.Anything).Return(*current, true, nil).Once()
	} else {
		f.seasons.On("GetCurrent", mock.Anything).Return(season.Season{}, false, nil).Once()
	}
}

func (f *clubsPageFixture) expectLeague(leagueID int64, clubs []club.Club) {
	f.clubs.On("ListByLeague", mock.Anything, leagueID).Return(clubs, nil).Once()
	f.leagues.On("GetByID", mock.Anything, leagueID).Return(league.League{ID: leagueID, CountryID: 1, Name: fmt.Sprintf("League %d", leagueID)}, nil).Once()
}

func (f *clubsPageFixture) expectSeasonData(leagueID, seasonID int64) {
	f.standings.On("Get", mock.Anything, leagueID, seasonID).Return(standing.Standing{
		LeagueID: leagueID,
		SeasonID: seasonID,
		ClubForStandings: []standing.Row{
			{Position: 1, Club: club.Club{ID: 10, Name: "Chelsea"}, Points: 3, GamesPlayed: 1, Wins: 1, GoalsFor: 2, GoalsAgainst: 1, GoalDifference: 1},
		},
	}, nil).Once()
	f.gameResults.On("GetSeason", mock.Anything, leagueID, seasonID).Return(gameresult.SeasonGameResult{
		LeagueID: leagueID,
		SeasonID: seasonID,
		DayGameResults: []gameresult.DayGameResult{
			{GameDate: "2024-08-17", GameResults: []gameresult.GameResult{{ID: 1, HomeClubName: "Chelsea", AwayClubName: "Arsenal", HomeScore: 2, AwayScore: 1}}},
		},
	}, nil).Once()
}

func TestClubsPage_MountLoadsEverySlot(t *testing.T) {
	t.Parallel()

	f := newClubsPageFixture(t)
	f.expectMount(&season2425)
	f.expectLeague(5, []club.Club{{ID: 10, LeagueID: 5, Name: "Chelsea"}})
	f.expectSeasonData(5, season2425.ID)

	page := f.page(5, DefaultNavigationIntent(), nil)
	page.Mount(context.Background())

	got := page.Snapshot()
	if len(got.Seasons) != 2 || got.Seasons[0].ID != season2324.ID {
		t.Fatalf("unexpected seasons: %+v", got.Seasons)
	}
	if got.SelectedSeason == nil || got.SelectedSeason.ID != season2425.ID {
		t.Fatalf("expected current season selected, got %+v", got.SelectedSeason)
	}
	if len(got.Clubs) != 1 || got.Clubs[0].Name != "Chelsea" {
		t.Fatalf("unexpected clubs: %+v", got.Clubs)
	}
	if got.LeagueName() != "League 5" {
		t.Fatalf("unexpected league name: %q", got.LeagueName())
	}
	if got.Standing == nil || len(got.Standing.ClubForStandings) != 1 {
		t.Fatalf("expected standing loaded, got %+v", got.Standing)
	}
	if got.SeasonGameResult == nil || got.SeasonGameResult.Empty() {
		t.Fatalf("expected game results loaded, got %+v", got.SeasonGameResult)
	}
	if got.Mode != ViewClubsList {
		t.Fatalf("unexpected mode: %s", got.Mode)
	}
}

func TestClubsPage_MountWithoutCurrentSeasonSkipsSeasonFetches(t *testing.T) {
	t.Parallel()

	f := newClubsPageFixture(t)
	f.expectMount(nil)
	f.expectLeague(5, nil)

	page := f.page(5, DefaultNavigationIntent(), nil)
	page.Mount(context.Background())

	got := page.Snapshot()
	if got.SelectedSeason != nil {
		t.Fatalf("expected no selection, got %+v", got.SelectedSeason)
	}
	if got.Standing != nil || got.SeasonGameResult != nil {
		t.Fatalf("season-scoped slots must stay empty without selection")
	}
	f.standings.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestClubsPage_SelectSeasonRefetchesOnlyOnChange(t *testing.T) {
	t.Parallel()

	f := newClubsPageFixture(t)
	f.expectMount(&season2425)
	f.expectLeague(5, nil)
	f.expectSeasonData(5, season2425.ID)
	f.expectSeasonData(5, season2324.ID)

	page := f.page(5, DefaultNavigationIntent(), nil)
	ctx := context.Background()
	page.Mount(ctx)

	if ok := page.SelectSeason(ctx, season2324.ID); !ok {
		t.Fatalf("expected season found")
	}
	page.SelectSeason(ctx, season2324.ID)

	got := page.Snapshot()
	if got.SelectedSeason == nil || *got.SelectedSeason != season2324 {
		t.Fatalf("expected the listed season record, got %+v", got.SelectedSeason)
	}
	if got.Standing == nil || got.Standing.SeasonID != season2324.ID {
		t.Fatalf("standing not refreshed for new season: %+v", got.Standing)
	}
	f.standings.AssertNumberOfCalls(t, "Get", 2)
	f.gameResults.AssertNumberOfCalls(t, "GetSeason", 2)
}

func TestClubsPage_MountOrdersSeasonsOldestFirst(t *testing.T) {
	t.Parallel()

	f := newClubsPageFixture(t)
	f.seasons.On("List", mock.Anything).Return([]season.Season{season2425, season2324}, nil).Once()
	f.seasons.On("GetCurrent", mock.Anything).Return(season.Season{}, false, nil).Once()
	f.expectLeague(5, nil)

	page := f.page(5, DefaultNavigationIntent(), nil)
	page.Mount(context.Background())

	got := page.Snapshot()
	if len(got.Seasons) != 2 || got.Seasons[0].ID != season2324.ID || got.Seasons[1].ID != season2425.ID {
		t.Fatalf("expected seasons oldest first, got %+v", got.Seasons)
	}
}

func TestClubsPage_ReselectingCurrentSeasonIsNoop(t *testing.T) {
	t.Parallel()

	f := newClubsPageFixture(t)
	f.seasons.On("List", mock.Anything).Return(nil, errors.New("seasons down")).Once()
	f.seasons.On("GetCurrent", mock.Anything).Return(season2425, true, nil).Once()
	f.expectLeague(5, nil)
	f.expectSeasonData(5, season2425.ID)

	page := f.page(5, DefaultNavigationIntent(), nil)
	ctx := context.Background()
	page.Mount(ctx)

	if ok := page.SelectSeason(ctx, season2425.ID); !ok {
		t.Fatalf("expected the current selection to be kept")
	}

	got := page.Snapshot()
	if got.SelectedSeason == nil || got.SelectedSeason.ID != season2425.ID {
		t.Fatalf("selection lost: %+v", got.SelectedSeason)
	}
	f.standings.AssertNumberOfCalls(t, "Get", 1)
}

func TestClubsPage_SelectUnknownSeasonClearsSelection(t *testing.T) {
	t.Parallel()

	f := newClubsPageFixture(t)
	f.expectMount(&season2425)
	f.expectLeague(5, nil)
	f.expectSeasonData(5, season2425.ID)

	page := f.page(5, DefaultNavigationIntent(), nil)
	ctx := context.Background()
	page.Mount(ctx)

	if ok := page.SelectSeason(ctx, 199899); ok {
		t.Fatalf("expected unknown season not found")
	}
	got := page.Snapshot()
	if got.SelectedSeason != nil {
		t.Fatalf("expected selection cleared, got %+v", got.SelectedSeason)
	}
	if got.Standing == nil || got.Standing.SeasonID != season2425.ID {
		t.Fatalf("expected previous standing kept, got %+v", got.Standing)
	}
}

func TestClubsPage_SetRouteRefetchesLeagueScopedSlots(t *testing.T) {
	t.Parallel()

	f := newClubsPageFixture(t)
	f.expectMount(&season2425)
	f.expectLeague(5, []club.Club{{ID: 10, Name: "Chelsea"}})
	f.expectSeasonData(5, season2425.ID)
	f.expectLeague(7, []club.Club{{ID: 20, Name: "Juventus"}})
	f.expectSeasonData(7, season2425.ID)

	page := f.page(5, DefaultNavigationIntent(), nil)
	ctx := context.Background()
	page.Mount(ctx)
	page.SetRoute(ctx, 1, 5)
	page.SetRoute(ctx, 2, 7)

	got := page.Snapshot()
	if got.LeagueID != 7 || got.CountryID != 2 {
		t.Fatalf("route not applied: %+v", got)
	}
	if len(got.Clubs) != 1 || got.Clubs[0].Name != "Juventus" {
		t.Fatalf("unexpected clubs after league change: %+v", got.Clubs)
	}
	if got.Standing == nil || got.Standing.LeagueID != 7 {
		t.Fatalf("standing not refreshed for new league: %+v", got.Standing)
	}
	f.clubs.AssertNumberOfCalls(t, "ListByLeague", 2)
	f.seasons.AssertNumberOfCalls(t, "List", 1)
}

func TestClubsPage_ReadFailureKeepsPreviousValue(t *testing.T) {
	t.Parallel()

	f := newClubsPageFixture(t)
	f.expectMount(nil)
	f.expectLeague(5, []club.Club{{ID: 10, Name: "Chelsea"}})
	f.clubs.On("ListByLeague", mock.Anything, int64(6)).Return(nil, errors.New("backend down")).Once()
	f.leagues.On("GetByID", mock.Anything, int64(6)).Return(league.League{ID: 6, Name: "Serie B"}, nil).Once()

	page := f.page(5, DefaultNavigationIntent(), nil)
	ctx := context.Background()
	page.Mount(ctx)
	page.SetRoute(ctx, 1, 6)

	got := page.Snapshot()
	if len(got.Clubs) != 1 || got.Clubs[0].Name != "Chelsea" {
		t.Fatalf("failed fetch must keep previous clubs, got %+v", got.Clubs)
	}
	if len(got.ReadFailures) != 1 || got.ReadFailures[0].Slot != SlotClubs {
		t.Fatalf("expected one clubs read failure, got %+v", got.ReadFailures)
	}

	if again := page.Snapshot(); len(again.ReadFailures) != 0 {
		t.Fatalf("read failures must be reported once, got %+v", again.ReadFailures)
	}
}

func TestClubsPage_DiscardsResultsOfSupersededLeague(t *testing.T) {
	t.Parallel()

	f := newClubsPageFixture(t)
	f.expectMount(nil)

	started := make(chan struct{})
	release := make(chan struct{})
	f.clubs.On("ListByLeague", mock.Anything, int64(5)).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]club.Club{{ID: 10, Name: "Chelsea"}}, nil).Once()
	f.leagues.On("GetByID", mock.Anything, int64(5)).Return(league.League{ID: 5, Name: "Premier League"}, nil).Once()
	f.expectLeague(7, []club.Club{{ID: 20, Name: "Juventus"}})

	page := f.page(5, DefaultNavigationIntent(), nil)
	ctx := context.Background()

	mounted := make(chan struct{})
	go func() {
		defer close(mounted)
		page.Mount(ctx)
	}()

	<-started
	page.SetRoute(ctx, 2, 7)
	close(release)

	select {
	case <-mounted:
	case <-time.After(2 * time.Second):
		t.Fatalf("mount did not finish")
	}

	got := page.Snapshot()
	if len(got.Clubs) != 1 || got.Clubs[0].Name != "Juventus" {
		t.Fatalf("stale league result overwrote clubs: %+v", got.Clubs)
	}
	if got.League == nil || got.League.ID != 7 {
		t.Fatalf("stale league result overwrote league: %+v", got.League)
	}
}

func TestClubsPage_RunsFetchesOnWorkerPool(t *testing.T) {
	t.Parallel()

	pool, err := workerpool.New(4)
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	t.Cleanup(pool.Release)

	f := newClubsPageFixture(t)
	f.expectMount(&season2425)
	f.expectLeague(5, []club.Club{{ID: 10, Name: "Chelsea"}})
	f.expectSeasonData(5, season2425.ID)

	page := f.page(5, DefaultNavigationIntent(), pool)
	page.Mount(context.Background())

	got := page.Snapshot()
	if got.Standing == nil || len(got.Clubs) != 1 {
		t.Fatalf("expected pooled fetches to fill slots: %+v", got)
	}
}

func TestClubsPage_SubmitRegistrationSuccess(t *testing.T) {
	t.Parallel()

	f := newClubsPageFixture(t)
	f.expectMount(nil)
	f.expectLeague(5, []club.Club{{ID: 10, LeagueID: 5, Name: "Chelsea"}})
	f.clubs.On("Register", mock.Anything, club.Registration{LeagueID: 5, Name: "Arsenal"}).
		Return(club.Club{ID: 11, LeagueID: 5, Name: "Arsenal"}, nil).Once()

	page := f.page(5, DefaultNavigationIntent(), nil)
	ctx := context.Background()
	page.Mount(ctx)
	page.SetNewClubName("  Arsenal ")

	if err := page.SubmitRegistration(ctx); err != nil {
		t.Fatalf("submit registration: %v", err)
	}

	got := page.Snapshot()
	if len(got.Clubs) != 2 || got.Clubs[1].ID != 11 || got.Clubs[0].Name != "Chelsea" {
		t.Fatalf("expected created club appended, got %+v", got.Clubs)
	}
	if got.NewClubName != "" {
		t.Fatalf("expected input cleared, got %q", got.NewClubName)
	}
	if !got.FocusNameInput {
		t.Fatalf("expected input focus requested")
	}
	if got.Alert != "" {
		t.Fatalf("unexpected alert: %q", got.Alert)
	}
	if msgs := f.notifier.Messages(); len(msgs) != 1 || msgs[0] != "Club 'Arsenal' registered successfully!" {
		t.Fatalf("unexpected toasts: %v", msgs)
	}
	if again := page.Snapshot(); again.FocusNameInput {
		t.Fatalf("focus request must be one-shot")
	}
}

func TestClubsPage_SubmitRegistrationRejected(t *testing.T) {
	t.Parallel()

	f := newClubsPageFixture(t)
	f.expectMount(nil)
	f.expectLeague(5, []club.Club{{ID: 10, Name: "Chelsea"}})
	f.clubs.On("Register", mock.Anything, club.Registration{LeagueID: 5, Name: "Chelsea"}).
		Return(club.Club{}, &RejectedError{StatusCode: 409, Message: "Club already exists"}).Once()

	page := f.page(5, DefaultNavigationIntent(), nil)
	ctx := context.Background()
	page.Mount(ctx)
	page.SetNewClubName("Chelsea")

	err := page.SubmitRegistration(ctx)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}

	got := page.Snapshot()
	if got.Alert != "Error: Club already exists" {
		t.Fatalf("unexpected alert: %q", got.Alert)
	}
	if len(got.Clubs) != 1 {
		t.Fatalf("clubs must be unchanged, got %+v", got.Clubs)
	}
	if got.NewClubName != "Chelsea" {
		t.Fatalf("input must be kept, got %q", got.NewClubName)
	}
	if got.FocusNameInput {
		t.Fatalf("focus must not be requested on failure")
	}
	if msgs := f.notifier.Messages(); len(msgs) != 0 {
		t.Fatalf("no toast expected, got %v", msgs)
	}
}

func TestClubsPage_SubmitRegistrationRejectsBlankName(t *testing.T) {
	t.Parallel()

	f := newClubsPageFixture(t)
	page := f.page(5, DefaultNavigationIntent(), nil)
	page.SetNewClubName("   ")

	err := page.SubmitRegistration(context.Background())
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
	if got := page.Snapshot(); got.Alert != "Error: club name is required" {
		t.Fatalf("unexpected alert: %q", got.Alert)
	}
	f.clubs.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestClubsPage_SwitchTo(t *testing.T) {
	t.Parallel()

	f := newClubsPageFixture(t)
	page := f.page(5, NavigationIntent{ShowGameResults: true}, nil)
	if got := page.Snapshot().Mode; got != ViewGameResults {
		t.Fatalf("unexpected initial mode: %s", got)
	}

	if err := page.SwitchTo(ViewStanding); err != nil {
		t.Fatalf("switch to standing: %v", err)
	}
	if got := page.Snapshot().Mode; got != ViewStanding {
		t.Fatalf("unexpected mode: %s", got)
	}

	if err := page.SwitchTo(ViewMode(9)); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown mode, got %v", err)
	}
	if got := page.Snapshot().Mode; got != ViewStanding {
		t.Fatalf("unknown mode must not change state, got %s", got)
	}
}

func TestNavigationIntent_InitialMode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		intent NavigationIntent
		want   ViewMode
	}{
		{name: "default", intent: DefaultNavigationIntent(), want: ViewClubsList},
		{name: "game results only", intent: NavigationIntent{ShowGameResults: true}, want: ViewGameResults},
		{name: "both flags", intent: NavigationIntent{ShowClubsList: true, ShowGameResults: true}, want: ViewClubsList},
		{name: "no flags", intent: NavigationIntent{}, want: ViewClubsList},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.intent.InitialMode(); got != tc.want {
				t.Fatalf("got %s want %s", got, tc.want)
			}
		})
	}
}

func TestParseViewMode(t *testing.T) {
	t.Parallel()

	for _, mode := range []ViewMode{ViewClubsList, ViewStanding, ViewGameResults} {
		got, ok := ParseViewMode(mode.String())
		if !ok || got != mode {
			t.Fatalf("parse %q: got %s ok=%v", mode.String(), got, ok)
		}
	}
	if _, ok := ParseViewMode("fixtures"); ok {
		t.Fatalf("expected unknown mode rejected")
	}
}

func TestEffect_ArmTracksTriggerKey(t *testing.T) {
	t.Parallel()

	var e effect
	gen1, run := e.arm("5")
	if !run {
		t.Fatalf("first arm must run")
	}
	if _, run := e.arm("5"); run {
		t.Fatalf("unchanged key must not run")
	}
	gen2, run := e.arm("7")
	if !run || gen2 == gen1 {
		t.Fatalf("changed key must run with a new generation")
	}
	if e.current(gen1) {
		t.Fatalf("old generation must be stale")
	}
}
