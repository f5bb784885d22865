package http

import (
	"context"
	"net/http"

	"github.com/DRSN-tech/storefront-bff/internal/cfg"
	"github.com/google/uuid"
)

type sessionCtxKey struct{}

// SessionMiddleware привязывает запрос к сессии корзины.
// Id берётся из cookie, затем из заголовка; отсутствующий или не-UUID id заменяется новым.
// Итоговый id всегда возвращается и в cookie, и в заголовке ответа.
type SessionMiddleware struct {
	cfg *cfg.CartCfg
}

func NewSessionMiddleware(cfg *cfg.CartCfg) *SessionMiddleware {
	return &SessionMiddleware{cfg: cfg}
}

func (s *SessionMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := s.sessionID(r)

		http.SetCookie(w, &http.Cookie{
			Name:     s.cfg.CookieName,
			Value:    sessionID,
			Path:     "/",
			MaxAge:   int(s.cfg.CookieMaxAge.Seconds()),
			HttpOnly: true,
			Secure:   s.cfg.CookieSecure,
			SameSite: http.SameSiteLaxMode,
		})
		w.Header().Set(s.cfg.SessionHeader, sessionID)

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionCtxKey{}, sessionID)))
	})
}

func (s *SessionMiddleware) sessionID(r *http.Request) string {
	if c, err := r.Cookie(s.cfg.CookieName); err == nil {
		if id, ok := parseSessionID(c.Value); ok {
			return id
		}
	}

	if id, ok := parseSessionID(r.Header.Get(s.cfg.SessionHeader)); ok {
		return id
	}

	return uuid.NewString()
}

// parseSessionID нормализует id к каноническому виду UUID.
func parseSessionID(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return "", false
	}

	return id.String(), true
}

// SessionFromContext возвращает id сессии, выставленный SessionMiddleware.
func SessionFromContext(ctx context.Context) string {
	id, _ := ctx.Value(sessionCtxKey{}).(string)
	return id
}
