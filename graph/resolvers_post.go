package graph

import (
	"context"
	"log"

	"qboard-server/session"
	"qboard-server/types"
)

func (r *Resolver) Post(ctx context.Context, postId int64) (*types.Post, error) {
	post, err := r.Posts.GetPost(postId)

	if err != nil {
		log.Printf("error getting post: %v\n", err)
		return nil, err
	}

	if post == nil {
		return nil, nil
	}

	return post.ToApi(), nil
}

func (r *Resolver) ListPosts(ctx context.Context) ([]*types.Post, error) {
	posts, err := r.Posts.ListPosts()

	if err != nil {
		log.Printf("error listing posts: %v\n", err)
		return nil, err
	}

	apiPosts := make([]*types.Post, len(posts))
	for i, post := range posts {
		apiPosts[i] = post.ToApi()
	}

	return apiPosts, nil
}

func (r *Resolver) CreatePost(ctx context.Context, title string) (*types.Post, error) {
	userId, err := r.authedUserId(ctx)
	if err != nil {
		return nil, err
	}

	post, err := r.Posts.CreatePost(title, userId)

	if err != nil {
		log.Printf("error creating post: %v\n", err)
		return nil, err
	}

	return post.ToApi(), nil
}

// UpdatePost changes a post's title. Only the creator may update a post;
// a missing post resolves to null rather than an error.
func (r *Resolver) UpdatePost(ctx context.Context, postId int64, title string) (*types.Post, error) {
	userId, err := r.authedUserId(ctx)
	if err != nil {
		return nil, err
	}

	post, err := r.Posts.GetPost(postId)

	if err != nil {
		log.Printf("error getting post: %v\n", err)
		return nil, err
	}

	if post == nil {
		return nil, nil
	}

	if post.CreatorId != userId {
		return nil, ErrNotAuthorized
	}

	updated, err := r.Posts.UpdatePostTitle(postId, title)

	if err != nil {
		log.Printf("error updating post: %v\n", err)
		return nil, err
	}

	if updated == nil {
		return nil, nil
	}

	return updated.ToApi(), nil
}

// DeletePost removes a post, reporting whether anything was deleted.
// Only the creator may delete a post.
func (r *Resolver) DeletePost(ctx context.Context, postId int64) (bool, error) {
	userId, err := r.authedUserId(ctx)
	if err != nil {
		return false, err
	}

	post, err := r.Posts.GetPost(postId)

	if err != nil {
		log.Printf("error getting post: %v\n", err)
		return false, err
	}

	if post == nil {
		return false, nil
	}

	if post.CreatorId != userId {
		return false, ErrNotAuthorized
	}

	deleted, err := r.Posts.DeletePost(postId)

	if err != nil {
		log.Printf("error deleting post: %v\n", err)
		return false, err
	}

	return deleted, nil
}

func (r *Resolver) authedUserId(ctx context.Context) (int64, error) {
	sess := session.FromContext(ctx)
	if sess == nil {
		return 0, ErrNotAuthenticated
	}

	userId, ok := sess.UserId()
	if !ok {
		return 0, ErrNotAuthenticated
	}

	return userId, nil
}
