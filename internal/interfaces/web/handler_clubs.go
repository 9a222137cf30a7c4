package web

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-stats-web/internal/interfaces/web/views"
	"github.com/riskibarqy/football-stats-web/internal/usecase"
)

// Clubs renders the clubs page of the session. Query parameters:
//
//	view             clubs | standing | game-results
//	season           season id picked from the dropdown
//	showClubsList    navigation intent, starts a fresh page
//	showGameResults  navigation intent, starts a fresh page
func (h *Handler) Clubs(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.Clubs")
	defer span.End()

	countryID, leagueID, err := leagueRoute(r)
	if err != nil {
		writeErrorPage(ctx, w, err)
		return
	}

	query := r.URL.Query()
	intent, fresh, err := parseIntent(query)
	if err != nil {
		writeErrorPage(ctx, w, err)
		return
	}

	sess, err := h.sessions.load(ctx, w, r)
	if err != nil {
		h.logger.ErrorContext(ctx, "load session failed", "error", err)
		writeErrorPage(ctx, w, err)
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	page := h.clubsPage(ctx, sess, countryID, leagueID, intent, fresh)

	if raw := strings.TrimSpace(query.Get("view")); raw != "" {
		mode, ok := usecase.ParseViewMode(raw)
		if !ok {
			writeErrorPage(ctx, w, fmt.Errorf("%w: unknown view %q", usecase.ErrInvalidInput, raw))
			return
		}
		if err := page.SwitchTo(mode); err != nil {
			writeErrorPage(ctx, w, err)
			return
		}
	}

	if raw := strings.TrimSpace(query.Get("season")); raw != "" {
		seasonID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			writeErrorPage(ctx, w, fmt.Errorf("%w: season must be an integer, got %q", usecase.ErrInvalidInput, raw))
			return
		}
		page.SelectSeason(ctx, seasonID)
	}

	h.renderClubs(ctx, w, http.StatusOK, sess)
}

// RegisterClub handles the registration form. Success redirects back to the
// clubs page; a rejected registration re-renders it with the alert and the
// typed name.
func (h *Handler) RegisterClub(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "web.Handler.RegisterClub")
	defer span.End()

	countryID, leagueID, err := leagueRoute(r)
	if err != nil {
		writeErrorPage(ctx, w, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		writeErrorPage(ctx, w, fmt.Errorf("%w: parse form: %v", usecase.ErrInvalidInput, err))
		return
	}

	sess, err := h.sessions.load(ctx, w, r)
	if err != nil {
		h.logger.ErrorContext(ctx, "load session failed", "error", err)
		writeErrorPage(ctx, w, err)
		return
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()

	page := h.clubsPage(ctx, sess, countryID, leagueID, usecase.DefaultNavigationIntent(), false)
	page.SetNewClubName(r.PostForm.Get("name"))

	if err := page.SubmitRegistration(ctx); err != nil {
		h.renderClubs(ctx, w, http.StatusUnprocessableEntity, sess)
		return
	}

	http.Redirect(w, r, views.ClubsPath(countryID, leagueID), http.StatusSeeOther)
}

// clubsPage returns the page of the session for the route. A missing page or
// a navigation intent mounts a new one; otherwise the existing page follows
// the route.
func (h *Handler) clubsPage(ctx context.Context, sess *session, countryID, leagueID int64, intent usecase.NavigationIntent, fresh bool) *usecase.ClubsPage {
	if sess.page == nil || fresh {
		deps := h.pageDeps
		deps.Notifier = &sess.toasts
		sess.page = usecase.NewClubsPage(deps, countryID, leagueID, intent)
		sess.countryID, sess.leagueID = countryID, leagueID
		sess.page.Mount(ctx)
		return sess.page
	}

	if sess.countryID != countryID || sess.leagueID != leagueID {
		sess.countryID, sess.leagueID = countryID, leagueID
		sess.page.SetRoute(ctx, countryID, leagueID)
	}
	return sess.page
}

func (h *Handler) renderClubs(ctx context.Context, w http.ResponseWriter, status int, sess *session) {
	data := views.ClubsPageData{
		State:  sess.page.Snapshot(),
		Toasts: sess.toasts.drain(),
	}
	h.render(ctx, w, status, views.ClubsPage(data))
}

// parseIntent reads the navigation flags. fresh is true when at least one
// flag is present; a missing flag then counts as false.
func parseIntent(query url.Values) (usecase.NavigationIntent, bool, error) {
	clubsRaw, hasClubs := query["showClubsList"]
	resultsRaw, hasResults := query["showGameResults"]
	if !hasClubs && !hasResults {
		return usecase.DefaultNavigationIntent(), false, nil
	}

	var intent usecase.NavigationIntent
	var err error
	if hasClubs {
		if intent.ShowClubsList, err = parseFlag("showClubsList", clubsRaw[0]); err != nil {
			return usecase.NavigationIntent{}, false, err
		}
	}
	if hasResults {
		if intent.ShowGameResults, err = parseFlag("showGameResults", resultsRaw[0]); err != nil {
			return usecase.NavigationIntent{}, false, err
		}
	}
	return intent, true, nil
}

func parseFlag(name, raw string) (bool, error) {
	value, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}
