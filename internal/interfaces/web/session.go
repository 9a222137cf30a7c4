package web

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/riskibarqy/football-stats-web/internal/platform/cache"
	"github.com/riskibarqy/football-stats-web/internal/platform/id"
	"github.com/riskibarqy/football-stats-web/internal/usecase"
)

const (
	sessionCookieName = "fsw_session"
	defaultSessionTTL = 30 * time.Minute
)

// flash collects toasts until the next render of the session.
type flash struct {
	mu       sync.Mutex
	messages []string
}

func (f *flash) ShowToast(_ context.Context, message string) {
	f.mu.Lock()
	f.messages = append(f.messages, message)
	f.mu.Unlock()
}

func (f *flash) drain() []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := f.messages
	f.messages = nil
	return out
}

// session holds the mounted clubs page of one browser. mu serializes the
// requests of that browser.
type session struct {
	mu        sync.Mutex
	toasts    flash
	page      *usecase.ClubsPage
	countryID int64
	leagueID  int64
}

type SessionConfig struct {
	TTL          time.Duration
	CookieSecure bool
}

type Sessions struct {
	store  *cache.Store[*session]
	ids    id.Generator
	ttl    time.Duration
	secure bool
}

func NewSessions(cfg SessionConfig, ids id.Generator) *Sessions {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if ids == nil {
		ids = id.NewRandomGenerator(32)
	}

	return &Sessions{
		store:  cache.NewStore[*session](ttl),
		ids:    ids,
		ttl:    ttl,
		secure: cfg.CookieSecure,
	}
}

func (s *Sessions) Len() int {
	return s.store.Len()
}

// RunJanitor drops idle sessions until ctx is done.
func (s *Sessions) RunJanitor(ctx context.Context, interval time.Duration) {
	s.store.RunJanitor(ctx, interval)
}

// load returns the session named by the request cookie, starting a new one
// when the cookie is missing or its session expired.
func (s *Sessions) load(ctx context.Context, w http.ResponseWriter, r *http.Request) (*session, error) {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if sess, ok := s.store.Get(ctx, cookie.Value); ok {
			return sess, nil
		}
	}

	sessionID, err := s.ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("new session id: %w", err)
	}
	sess := &session{}
	s.store.Set(ctx, sessionID, sess)

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return sess, nil
}
