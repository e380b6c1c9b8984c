package db

import (
	"time"

	"qboard-server/types"
)

// The models below should only be used server-side. Models that reach
// clients have a ToApi() method converting to the corresponding type in
// the types package — this keeps server-only columns (the password hash)
// from leaking out.

type User struct {
	Id        int64     `db:"id"`
	Username  string    `db:"username"`
	Password  string    `db:"password"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (user *User) ToApi() *types.User {
	return &types.User{
		Id:        user.Id,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}

type Post struct {
	Id        int64     `db:"id"`
	Title     string    `db:"title"`
	CreatorId int64     `db:"creator_id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (post *Post) ToApi() *types.Post {
	return &types.Post{
		Id:        post.Id,
		Title:     post.Title,
		CreatorId: post.CreatorId,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}
