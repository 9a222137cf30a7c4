package web

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-stats-web/internal/interfaces/web/views"
	"github.com/riskibarqy/football-stats-web/internal/platform/logging"
	"github.com/riskibarqy/football-stats-web/internal/platform/resilience"
	"github.com/riskibarqy/football-stats-web/internal/usecase"
	g "maragu.dev/gomponents"
)

// BackendHealth reports the state of the stats backend connection.
type BackendHealth interface {
	BreakerState() resilience.CircuitState
}

type Handler struct {
	browse   *usecase.BrowseService
	pageDeps usecase.ClubsPageDeps
	sessions *Sessions
	backend  BackendHealth
	logger   *logging.Logger
}

// NewHandler wires the page handlers. pageDeps.Notifier is ignored: every
// session gets its own toast flash.
func NewHandler(
	browse *usecase.BrowseService,
	pageDeps usecase.ClubsPageDeps,
	sessions *Sessions,
	backend BackendHealth,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	if sessions == nil {
		sessions = NewSessions(SessionConfig{}, nil)
	}
	if pageDeps.Logger == nil {
		pageDeps.Logger = logger
	}

	return &Handler{
		browse:   browse,
		pageDeps: pageDeps,
		sessions: sessions,
		backend:  backend,
		logger:   logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Healthz")
	defer span.End()

	payload := map[string]any{
		"status":   "ok",
		"sessions": h.sessions.Len(),
	}
	if h.backend != nil {
		payload["statsApiCircuit"] = string(h.backend.BreakerState())
	}
	writeJSON(ctx, w, http.StatusOK, payload)
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Home")
	defer span.End()

	h.render(ctx, w, http.StatusOK, views.HomePage())
}

func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.NotFound")
	defer span.End()

	writeErrorPage(ctx, w, fmt.Errorf("%w: page %s", usecase.ErrNotFound, r.URL.Path))
}

// Countries renders the country list. A backend failure is shown inline
// on the page instead of an error page.
func (h *Handler) Countries(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Countries")
	defer span.End()

	countries, err := h.browse.ListCountries(ctx)
	failure := ""
	if err != nil {
		h.logger.WarnContext(ctx, "list countries failed", "error", err)
		failure = "Could not load countries: " + err.Error()
	}

	h.render(ctx, w, http.StatusOK, views.CountriesPage(countries, failure))
}

func (h *Handler) Leagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Leagues")
	defer span.End()

	countryID, err := pathID(r, "countryID")
	if err != nil {
		writeErrorPage(ctx, w, err)
		return
	}

	data, err := h.browse.CountryLeagues(ctx, countryID)
	if err != nil {
		h.logger.WarnContext(ctx, "country leagues failed", "country_id", countryID, "error", err)
		writeErrorPage(ctx, w, err)
		return
	}

	h.render(ctx, w, http.StatusOK, views.LeaguesPage(data))
}

func (h *Handler) Players(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Players")
	defer span.End()

	countryID, leagueID, err := leagueRoute(r)
	if err != nil {
		writeErrorPage(ctx, w, err)
		return
	}
	clubID, err := pathID(r, "clubID")
	if err != nil {
		writeErrorPage(ctx, w, err)
		return
	}

	squad, err := h.browse.ClubSquad(ctx, clubID)
	if err != nil {
		h.logger.WarnContext(ctx, "club squad failed", "club_id", clubID, "error", err)
		writeErrorPage(ctx, w, err)
		return
	}

	h.render(ctx, w, http.StatusOK, views.PlayersPage(countryID, leagueID, squad))
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := strings.TrimSpace(r.PathValue(name))
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

func leagueRoute(r *http.Request) (int64, int64, error) {
	countryID, err := pathID(r, "countryID")
	if err != nil {
		return 0, 0, err
	}
	leagueID, err := pathID(r, "leagueID")
	if err != nil {
		return 0, 0, err
	}
	return countryID, leagueID, nil
}

func (h *Handler) render(ctx context.Context, w http.ResponseWriter, status int, node g.Node) {
	if err := writeHTML(ctx, w, status, node); err != nil {
		h.logger.ErrorContext(ctx, "render page failed", "status", status, "error", err)
	}
}
