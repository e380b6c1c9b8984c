package session

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

const CookieName = "qid"

type contextKey struct{}

// Session is the per-request authentication state, built by Middleware
// and carried in the request context. Resolvers read the user id from it
// and establish or destroy sessions through it — it replaces any global
// request/response handles.
type Session struct {
	store  Store
	w      http.ResponseWriter
	secure bool

	token  string
	userId int64
	active bool
}

func New(store Store, w http.ResponseWriter, secure bool) *Session {
	return &Session{store: store, w: w, secure: secure}
}

// UserId returns the authenticated user id, or false when the request is
// anonymous.
func (s *Session) UserId() (int64, bool) {
	if !s.active {
		return 0, false
	}
	return s.userId, true
}

// Create binds a fresh opaque token to userId in the store and sets the
// session cookie. A new token is always issued; an existing session for
// the request is replaced.
func (s *Session) Create(ctx context.Context, userId int64) error {
	token := uuid.New().String()

	if err := s.store.Set(ctx, token, userId); err != nil {
		return fmt.Errorf("error creating session: %v", err)
	}

	http.SetCookie(s.w, s.cookie(token, int(MaxAge/time.Second)))

	s.token = token
	s.userId = userId
	s.active = true

	return nil
}

// Destroy removes the server-side entry and expires the cookie. It is a
// no-op for anonymous requests.
func (s *Session) Destroy(ctx context.Context) error {
	if s.token != "" {
		if err := s.store.Destroy(ctx, s.token); err != nil {
			return fmt.Errorf("error destroying session: %v", err)
		}
	}

	http.SetCookie(s.w, s.cookie("", -1))

	s.token = ""
	s.userId = 0
	s.active = false

	return nil
}

func (s *Session) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   s.secure,
	}
}

// load resolves the request's cookie against the store. A missing cookie,
// stale token, or unreachable store all leave the session anonymous.
func (s *Session) load(r *http.Request) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return
	}

	userId, err := s.store.Get(r.Context(), cookie.Value)
	if err != nil {
		if err != ErrNotFound {
			log.Printf("error loading session: %v\n", err)
		}
		return
	}

	s.token = cookie.Value
	s.userId = userId
	s.active = true
}

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// FromContext returns the request's session, or nil when the handler was
// not wrapped by Middleware.
func FromContext(ctx context.Context) *Session {
	s, _ := ctx.Value(contextKey{}).(*Session)
	return s
}

func Middleware(store Store) mux.MiddlewareFunc {
	secure := os.Getenv("GOENV") == "production"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := New(store, w, secure)
			sess.load(r)

			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), sess)))
		})
	}
}
