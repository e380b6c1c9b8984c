package graph

import (
	"context"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"qboard-server/auth"
	"qboard-server/db"
	"qboard-server/session"

	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

// In-memory fakes for the store interfaces. The user fake reproduces the
// database's unique constraint by returning a pq unique violation, and
// counts reads so tests can assert the me short-circuit.

type memUsers struct {
	mu       sync.Mutex
	nextId   int64
	byId     map[int64]*db.User
	getCalls int
}

func newMemUsers() *memUsers {
	return &memUsers{byId: map[int64]*db.User{}}
}

func (s *memUsers) GetUser(userId int64) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls++
	if user, ok := s.byId[userId]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, nil
}

func (s *memUsers) GetUserByUsername(username string) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getCalls++
	for _, user := range s.byId {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memUsers) CreateUser(username, passwordHash string) (*db.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.byId {
		if user.Username == username {
			return nil, &pq.Error{Code: "23505", Constraint: "users_username_key"}
		}
	}
	s.nextId++
	now := time.Now()
	user := &db.User{
		Id:        s.nextId,
		Username:  username,
		Password:  passwordHash,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.byId[user.Id] = user
	copied := *user
	return &copied, nil
}

func (s *memUsers) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byId)
}

func (s *memUsers) reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.getCalls
}

type memPosts struct {
	mu     sync.Mutex
	nextId int64
	posts  []*db.Post
}

func newMemPosts() *memPosts {
	return &memPosts{}
}

func (s *memPosts) GetPost(postId int64) (*db.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, post := range s.posts {
		if post.Id == postId {
			copied := *post
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memPosts) ListPosts() ([]*db.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// newest first, matching the store's ORDER BY
	listed := make([]*db.Post, len(s.posts))
	for i, post := range s.posts {
		copied := *post
		listed[len(s.posts)-1-i] = &copied
	}
	return listed, nil
}

func (s *memPosts) CreatePost(title string, creatorId int64) (*db.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextId++
	now := time.Now()
	post := &db.Post{
		Id:        s.nextId,
		Title:     title,
		CreatorId: creatorId,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.posts = append(s.posts, post)
	copied := *post
	return &copied, nil
}

func (s *memPosts) UpdatePostTitle(postId int64, title string) (*db.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, post := range s.posts {
		if post.Id == postId {
			post.Title = title
			post.UpdatedAt = time.Now()
			copied := *post
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memPosts) DeletePost(postId int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, post := range s.posts {
		if post.Id == postId {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type memSessions struct {
	mu       sync.Mutex
	sessions map[string]int64
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: map[string]int64{}}
}

func (s *memSessions) Set(ctx context.Context, token string, userId int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[token] = userId
	return nil
}

func (s *memSessions) Get(ctx context.Context, token string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	userId, ok := s.sessions[token]
	if !ok {
		return 0, session.ErrNotFound
	}
	return userId, nil
}

func (s *memSessions) Destroy(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

func (s *memSessions) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

type fixture struct {
	users    *memUsers
	posts    *memPosts
	sessions *memSessions
	resolver *Resolver
}

func newFixture() *fixture {
	users := newMemUsers()
	posts := newMemPosts()
	return &fixture{
		users:    users,
		posts:    posts,
		sessions: newMemSessions(),
		resolver: &Resolver{
			Users:  users,
			Posts:  posts,
			Hasher: auth.Argon2Hasher{},
		},
	}
}

// anonCtx returns a request-like context carrying an anonymous session.
func (f *fixture) anonCtx() context.Context {
	sess := session.New(f.sessions, httptest.NewRecorder(), false)
	return session.NewContext(context.Background(), sess)
}

// authedCtx returns a context whose session is bound to userId.
func (f *fixture) authedCtx(t *testing.T, userId int64) context.Context {
	t.Helper()
	ctx := f.anonCtx()
	require.NoError(t, session.FromContext(ctx).Create(ctx, userId))
	return ctx
}

// registerUser registers a user through the resolver and returns its id
// and the (now authenticated) context.
func (f *fixture) registerUser(t *testing.T, username, password string) (int64, context.Context) {
	t.Helper()
	ctx := f.anonCtx()
	resp, err := f.resolver.Register(ctx, username, password)
	require.NoError(t, err)
	require.Nil(t, resp.Errors)
	require.NotNil(t, resp.User)
	return resp.User.Id, ctx
}
