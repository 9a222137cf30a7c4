package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/riskibarqy/football-stats-web/internal/domain/club"
	"github.com/riskibarqy/football-stats-web/internal/domain/gameresult"
	"github.com/riskibarqy/football-stats-web/internal/domain/league"
	"github.com/riskibarqy/football-stats-web/internal/domain/season"
	"github.com/riskibarqy/football-stats-web/internal/domain/standing"
	"github.com/riskibarqy/football-stats-web/internal/platform/logging"
	"github.com/riskibarqy/football-stats-web/internal/platform/workerpool"
	"go.opentelemetry.io/otel/attribute"
)

// Notifier shows short-lived, non-blocking feedback to the user.
type Notifier interface {
	ShowToast(ctx context.Context, message string)
}

// TaskRunner executes a batch of fetches and waits for all of them.
type TaskRunner interface {
	Run(ctx context.Context, tasks ...workerpool.Task)
}

type ClubsPageDeps struct {
	Seasons     season.Repository
	Leagues     league.Repository
	Clubs       club.Repository
	Standings   standing.Repository
	GameResults gameresult.Repository
	Notifier    Notifier
	Runner      TaskRunner
	Logger      *logging.Logger
}

// ClubsPage owns the state of one mounted clubs page. Fetch completions and
// user actions are the only writers of their state slot.
type ClubsPage struct {
	deps   ClubsPageDeps
	logger *logging.Logger

	mu      sync.Mutex
	state   ClubsPageState
	mounted bool

	mountEffect  effect
	leagueEffect effect
	seasonEffect effect
}

func NewClubsPage(deps ClubsPageDeps, countryID, leagueID int64, intent NavigationIntent) *ClubsPage {
	logger := deps.Logger
	if logger == nil {
		logger = logging.Default()
	}
	if deps.Runner == nil {
		deps.Runner = inlineRunner{}
	}

	return &ClubsPage{
		deps:   deps,
		logger: logger.With("component", "clubs_page"),
		state: ClubsPageState{
			CountryID: countryID,
			LeagueID:  leagueID,
			Mode:      intent.InitialMode(),
		},
	}
}

// Mount runs the initial fetches: season list and current season, plus the
// league-scoped fetches for the current route.
func (p *ClubsPage) Mount(ctx context.Context) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubsPage.Mount")
	defer span.End()

	p.mu.Lock()
	p.mounted = true
	p.mu.Unlock()

	p.sync(ctx)
}

// SetRoute applies the route parameters. A changed league id re-runs the
// league-scoped and season-scoped fetches.
func (p *ClubsPage) SetRoute(ctx context.Context, countryID, leagueID int64) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubsPage.SetRoute", attribute.Int64("league.id", leagueID))
	defer span.End()

	p.mu.Lock()
	p.state.CountryID = countryID
	p.state.LeagueID = leagueID
	p.mu.Unlock()

	p.sync(ctx)
}

func (p *ClubsPage) SwitchTo(mode ViewMode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: unknown view mode %d", ErrInvalidInput, mode)
	}

	p.mu.Lock()
	p.state.Mode = mode
	p.mu.Unlock()
	return nil
}

// SelectSeason adopts the season with the given id from the fetched list.
// An id missing from the list clears the selection. Re-selecting the current
// season is a no-op. It reports whether a season is selected.
func (p *ClubsPage) SelectSeason(ctx context.Context, seasonID int64) bool {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubsPage.SelectSeason", attribute.Int64("season.id", seasonID))
	defer span.End()

	p.mu.Lock()
	if p.state.SelectedSeason != nil && p.state.SelectedSeason.ID == seasonID {
		p.mu.Unlock()
		return true
	}
	selected, ok := season.Find(p.state.Seasons, seasonID)
	if ok {
		p.state.SelectedSeason = &selected
	} else {
		p.state.SelectedSeason = nil
	}
	p.mu.Unlock()

	p.sync(ctx)
	return ok
}

func (p *ClubsPage) SetNewClubName(name string) {
	p.mu.Lock()
	p.state.NewClubName = name
	p.mu.Unlock()
}

// SubmitRegistration sends the create-request for the typed club name.
// Failures are shown as an alert and leave the club list and the input
// untouched. Nothing is retried.
func (p *ClubsPage) SubmitRegistration(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ClubsPage.SubmitRegistration")
	defer span.End()

	p.mu.Lock()
	registration := club.Registration{
		LeagueID: p.state.LeagueID,
		Name:     strings.TrimSpace(p.state.NewClubName),
	}
	p.mu.Unlock()

	if err := registration.Validate(); err != nil {
		p.logger.WarnContext(ctx, "club registration rejected before submit", "league_id", registration.LeagueID, "error", err)
		p.setAlert(err)
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := p.deps.Clubs.Register(ctx, registration)
	if err != nil {
		p.logger.ErrorContext(ctx, "register club failed", "league_id", registration.LeagueID, "name", registration.Name, "error", err)
		p.setAlert(err)
		return fmt.Errorf("register club: %w", err)
	}

	p.mu.Lock()
	p.state.Clubs = append(p.state.Clubs, created)
	p.state.NewClubName = ""
	p.state.FocusNameInput = true
	p.mu.Unlock()

	if p.deps.Notifier != nil {
		p.deps.Notifier.ShowToast(ctx, fmt.Sprintf("Club '%s' registered successfully!", created.Name))
	}
	return nil
}

// Snapshot returns a copy of the state for rendering. One-shot feedback
// (alert, input focus, read failures) is reset once read.
func (p *ClubsPage) Snapshot() ClubsPageState {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := p.state.clone()
	p.state.Alert = ""
	p.state.FocusNameInput = false
	p.state.ReadFailures = nil
	return out
}

func (p *ClubsPage) setAlert(err error) {
	p.mu.Lock()
	p.state.Alert = "Error: " + userMessage(err)
	p.mu.Unlock()
}

// sync runs every effect whose trigger set changed. The season-scoped effect
// depends on the selection written by the mount fetches, so it runs in a
// second batch.
func (p *ClubsPage) sync(ctx context.Context) {
	p.mu.Lock()
	if !p.mounted {
		p.mu.Unlock()
		return
	}
	tasks := append(p.mountTasksLocked(), p.leagueTasksLocked()...)
	p.mu.Unlock()
	p.deps.Runner.Run(ctx, tasks...)

	p.mu.Lock()
	tasks = p.seasonTasksLocked()
	p.mu.Unlock()
	p.deps.Runner.Run(ctx, tasks...)
}

func (p *ClubsPage) mountTasksLocked() []workerpool.Task {
	gen, run := p.mountEffect.arm("")
	if !run {
		return nil
	}
	isCurrent := func() bool { return p.mountEffect.current(gen) }

	return []workerpool.Task{
		func(ctx context.Context) {
			seasons, err := p.deps.Seasons.List(ctx)
			season.SortByID(seasons)
			p.complete(ctx, SlotSeasons, err, isCurrent, func() {
				p.state.Seasons = seasons
			})
		},
		func(ctx context.Context) {
			current, found, err := p.deps.Seasons.GetCurrent(ctx)
			p.complete(ctx, SlotCurrentSeason, err, isCurrent, func() {
				if found {
					p.state.SelectedSeason = &current
				}
			})
		},
	}
}

func (p *ClubsPage) leagueTasksLocked() []workerpool.Task {
	leagueID := p.state.LeagueID
	gen, run := p.leagueEffect.arm(strconv.FormatInt(leagueID, 10))
	if !run {
		return nil
	}
	isCurrent := func() bool { return p.leagueEffect.current(gen) }

	return []workerpool.Task{
		func(ctx context.Context) {
			clubs, err := p.deps.Clubs.ListByLeague(ctx, leagueID)
			p.complete(ctx, SlotClubs, err, isCurrent, func() {
				p.state.Clubs = clubs
			})
		},
		func(ctx context.Context) {
			l, err := p.deps.Leagues.GetByID(ctx, leagueID)
			p.complete(ctx, SlotLeague, err, isCurrent, func() {
				p.state.League = &l
			})
		},
	}
}

func (p *ClubsPage) seasonTasksLocked() []workerpool.Task {
	leagueID := p.state.LeagueID
	key := strconv.FormatInt(leagueID, 10) + ":none"
	var seasonID int64
	if p.state.SelectedSeason != nil {
		seasonID = p.state.SelectedSeason.ID
		key = strconv.FormatInt(leagueID, 10) + ":" + strconv.FormatInt(seasonID, 10)
	}

	gen, run := p.seasonEffect.arm(key)
	if !run || seasonID == 0 {
		return nil
	}
	isCurrent := func() bool { return p.seasonEffect.current(gen) }

	return []workerpool.Task{
		func(ctx context.Context) {
			table, err := p.deps.Standings.Get(ctx, leagueID, seasonID)
			if err == nil {
				for _, bad := range table.Inconsistencies() {
					p.logger.WarnContext(ctx, "standing row breaks table invariants", "league_id", leagueID, "season_id", seasonID, "error", bad)
				}
			}
			p.complete(ctx, SlotStanding, err, isCurrent, func() {
				p.state.Standing = &table
			})
		},
		func(ctx context.Context) {
			results, err := p.deps.GameResults.GetSeason(ctx, leagueID, seasonID)
			p.complete(ctx, SlotGameResults, err, isCurrent, func() {
				p.state.SeasonGameResult = &results
			})
		},
	}
}

// complete writes one fetch result into its slot. Results of a superseded
// trigger are dropped; failures keep the previous slot value and are
// reported as a read failure.
func (p *ClubsPage) complete(ctx context.Context, slot string, err error, isCurrent func() bool, apply func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !isCurrent() {
		p.logger.DebugContext(ctx, "discarding stale fetch result", "slot", slot)
		return
	}
	if err != nil {
		p.logger.WarnContext(ctx, "clubs page fetch failed", "slot", slot, "league_id", p.state.LeagueID, "error", err)
		p.state.ReadFailures = append(p.state.ReadFailures, ReadFailure{Slot: slot, Message: err.Error()})
		return
	}
	apply()
}

// effect tracks the trigger key of one dependency-tracked fetch group.
type effect struct {
	key   string
	gen   uint64
	armed bool
}

// arm records key and reports whether the effect has to run. Every run
// starts a new generation, which invalidates results of older runs.
func (e *effect) arm(key string) (uint64, bool) {
	if e.armed && e.key == key {
		return e.gen, false
	}
	e.armed = true
	e.key = key
	e.gen++
	return e.gen, true
}

func (e *effect) current(gen uint64) bool {
	return e.gen == gen
}

type inlineRunner struct{}

func (inlineRunner) Run(ctx context.Context, tasks ...workerpool.Task) {
	for _, task := range tasks {
		if task != nil {
			task(ctx)
		}
	}
}
