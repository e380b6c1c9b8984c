package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store for tests.
type memStore struct {
	mu       sync.Mutex
	sessions map[string]int64
}

func newMemStore() *memStore {
	return &memStore{sessions: map[string]int64{}}
}

func (s *memStore) Set(ctx context.Context, token string, userId int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = userId
	return nil
}

func (s *memStore) Get(ctx context.Context, token string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userId, ok := s.sessions[token]
	if !ok {
		return 0, ErrNotFound
	}
	return userId, nil
}

func (s *memStore) Destroy(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func TestCreateSetsCookie(t *testing.T) {
	store := newMemStore()
	rr := httptest.NewRecorder()

	sess := New(store, rr, false)
	require.NoError(t, sess.Create(context.Background(), 42))

	userId, ok := sess.UserId()
	assert.True(t, ok)
	assert.Equal(t, int64(42), userId)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]

	assert.Equal(t, CookieName, cookie.Name)
	assert.NotEmpty(t, cookie.Value)
	assert.Equal(t, "/", cookie.Path)
	assert.True(t, cookie.HttpOnly, "cookie must be HttpOnly")
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.False(t, cookie.Secure, "cookie is not Secure outside production")
	assert.Equal(t, int(MaxAge.Seconds()), cookie.MaxAge)

	storedUserId, err := store.Get(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, int64(42), storedUserId)
}

func TestSecureCookie(t *testing.T) {
	rr := httptest.NewRecorder()

	sess := New(newMemStore(), rr, true)
	require.NoError(t, sess.Create(context.Background(), 1))

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.True(t, cookies[0].Secure)
}

func TestDestroy(t *testing.T) {
	store := newMemStore()
	rr := httptest.NewRecorder()

	sess := New(store, rr, false)
	require.NoError(t, sess.Create(context.Background(), 42))

	// Read cookies from the live header map: Result() caches its response
	// on first call, so a later call would not see the Destroy cookie.
	cookies := (&http.Response{Header: rr.Header()}).Cookies()
	require.Len(t, cookies, 1)
	token := cookies[0].Value

	require.NoError(t, sess.Destroy(context.Background()))

	_, ok := sess.UserId()
	assert.False(t, ok, "session should be anonymous after destroy")

	_, err := store.Get(context.Background(), token)
	assert.Equal(t, ErrNotFound, err, "server-side entry should be gone")

	cookies = (&http.Response{Header: rr.Header()}).Cookies()
	require.Len(t, cookies, 2)
	expired := cookies[1]
	assert.Equal(t, CookieName, expired.Name)
	assert.Empty(t, expired.Value)
	assert.Equal(t, -1, expired.MaxAge)
}

func TestMiddlewareLoadsSession(t *testing.T) {
	store := newMemStore()
	require.NoError(t, store.Set(context.Background(), "tok-1", 7))

	var got int64
	var ok bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := FromContext(r.Context())
		require.NotNil(t, sess)
		got, ok = sess.UserId()
	})

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "tok-1"})
	rr := httptest.NewRecorder()

	Middleware(store)(handler).ServeHTTP(rr, req)

	assert.True(t, ok)
	assert.Equal(t, int64(7), got)
}

func TestMiddlewareAnonymous(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no cookie", nil},
		{"stale token", &http.Cookie{Name: CookieName, Value: "expired-tok"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sess *Session
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				sess = FromContext(r.Context())
			})

			req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()

			Middleware(newMemStore())(handler).ServeHTTP(rr, req)

			require.NotNil(t, sess)
			_, ok := sess.UserId()
			assert.False(t, ok, "request should be anonymous")
		})
	}
}
