package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/football-stats-web/external/statsapi"
	"github.com/riskibarqy/football-stats-web/internal/config"
	"github.com/riskibarqy/football-stats-web/internal/interfaces/web"
	idgen "github.com/riskibarqy/football-stats-web/internal/platform/id"
	"github.com/riskibarqy/football-stats-web/internal/platform/logging"
	"github.com/riskibarqy/football-stats-web/internal/platform/workerpool"
	"github.com/riskibarqy/football-stats-web/internal/usecase"
)

const sessionIDBytes = 32

// App is the assembled web front-end.
type App struct {
	Server   *http.Server
	sessions *web.Sessions
	pool     *workerpool.Pool
	ttl      time.Duration
}

func New(cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	statsClient := statsapi.NewClient(statsapi.ClientConfig{
		BaseURL:        cfg.StatsAPIBaseURL,
		Timeout:        cfg.StatsAPITimeout,
		MaxRetries:     cfg.StatsAPIMaxRetries,
		RetryBackoff:   cfg.StatsAPIRetryBackoff,
		Logger:         logger,
		CircuitBreaker: cfg.StatsAPICircuitBreaker(),
	})

	seasonRepo := statsapi.NewSeasonRepository(statsClient)
	leagueRepo := statsapi.NewLeagueRepository(statsClient)
	clubRepo := statsapi.NewClubRepository(statsClient)
	standingRepo := statsapi.NewStandingRepository(statsClient)
	gameResultRepo := statsapi.NewGameResultRepository(statsClient)
	playerRepo := statsapi.NewPlayerRepository(statsClient)

	pool, err := workerpool.New(cfg.FetchWorkers)
	if err != nil {
		return nil, err
	}

	sessions := web.NewSessions(web.SessionConfig{
		TTL:          cfg.SessionTTL,
		CookieSecure: cfg.SessionCookieSecure,
	}, idgen.NewRandomGenerator(sessionIDBytes))

	handler := web.NewHandler(
		usecase.NewBrowseService(leagueRepo, clubRepo, playerRepo),
		usecase.ClubsPageDeps{
			Seasons:     seasonRepo,
			Leagues:     leagueRepo,
			Clubs:       clubRepo,
			Standings:   standingRepo,
			GameResults: gameResultRepo,
			Runner:      pool,
			Logger:      logger,
		},
		sessions,
		statsClient,
		logger,
	)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           web.NewRouter(handler, logger, cfg.ServiceName),
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	logger.Info("app assembled",
		"stats_api_base_url", cfg.StatsAPIBaseURL,
		"fetch_workers", cfg.FetchWorkers,
		"session_ttl", cfg.SessionTTL,
	)

	return &App{Server: server, sessions: sessions, pool: pool, ttl: cfg.SessionTTL}, nil
}

// RunJanitor evicts idle page sessions until ctx is done.
func (a *App) RunJanitor(ctx context.Context) {
	interval := a.ttl / 2
	if interval < time.Minute {
		interval = time.Minute
	}
	a.sessions.RunJanitor(ctx, interval)
}

// Close releases the fetch workers. Call it after the server stopped.
func (a *App) Close() {
	a.pool.Release()
}
