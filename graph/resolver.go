// Package graph defines the GraphQL schema and the resolvers behind it.
package graph

import (
	"qboard-server/auth"
	"qboard-server/db"

	"github.com/pkg/errors"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotAuthorized    = errors.New("not authorized")
)

// UserStore is the persistence surface the auth resolvers need.
// *db.Store satisfies it; tests use an in-memory fake.
type UserStore interface {
	GetUser(userId int64) (*db.User, error)
	GetUserByUsername(username string) (*db.User, error)
	CreateUser(username, passwordHash string) (*db.User, error)
}

// PostStore is the persistence surface the post resolvers need.
type PostStore interface {
	GetPost(postId int64) (*db.Post, error)
	ListPosts() ([]*db.Post, error)
	CreatePost(title string, creatorId int64) (*db.Post, error)
	UpdatePostTitle(postId int64, title string) (*db.Post, error)
	DeletePost(postId int64) (bool, error)
}

// Resolver holds the dependencies every resolver runs against. Requests
// share nothing beyond these externally-synchronized stores.
type Resolver struct {
	Users  UserStore
	Posts  PostStore
	Hasher auth.Hasher
}
