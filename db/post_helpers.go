package db

import (
	"database/sql"
	"fmt"
)

func (s *Store) GetPost(postId int64) (*Post, error) {
	var post Post
	err := s.conn.Get(&post, "SELECT * FROM posts WHERE id = $1", postId)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error getting post: %v", err)
	}

	return &post, nil
}

func (s *Store) ListPosts() ([]*Post, error) {
	var posts []*Post
	err := s.conn.Select(&posts, "SELECT * FROM posts ORDER BY created_at DESC, id DESC")

	if err != nil {
		return nil, fmt.Errorf("error listing posts: %v", err)
	}

	return posts, nil
}

func (s *Store) CreatePost(title string, creatorId int64) (*Post, error) {
	post := Post{
		Title:     title,
		CreatorId: creatorId,
	}

	err := s.conn.QueryRow("INSERT INTO posts (title, creator_id) VALUES ($1, $2) RETURNING id, created_at, updated_at", post.Title, post.CreatorId).Scan(&post.Id, &post.CreatedAt, &post.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("error creating post: %v", err)
	}

	return &post, nil
}

// UpdatePostTitle returns nil, nil when no post has the given id.
func (s *Store) UpdatePostTitle(postId int64, title string) (*Post, error) {
	var post Post
	err := s.conn.Get(&post, "UPDATE posts SET title = $1, updated_at = NOW() WHERE id = $2 RETURNING *", title, postId)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("error updating post: %v", err)
	}

	return &post, nil
}

func (s *Store) DeletePost(postId int64) (bool, error) {
	res, err := s.conn.Exec("DELETE FROM posts WHERE id = $1", postId)

	if err != nil {
		return false, fmt.Errorf("error deleting post: %v", err)
	}

	numDeleted, err := res.RowsAffected()

	if err != nil {
		return false, fmt.Errorf("error getting deleted rows: %v", err)
	}

	return numDeleted > 0, nil
}
