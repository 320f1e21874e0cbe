package service

import (
	"context"

	"portfolio-backend/internal/domains/blog/model"
)

// BlogService là business logic layer của blog domain: ordering,
// rendering, and hiding partial-load failures from the caller.
type BlogService interface {
	// ListPosts returns all valid posts, most recent first. Invalid
	// posts are omitted, not surfaced as an error.
	ListPosts(ctx context.Context) []*model.Post

	// GetPost loads one post with its body rendered to HTML.
	GetPost(ctx context.Context, slug string) (*model.Post, error)

	// ListSlugs lists available slugs for static path generation.
	ListSlugs(ctx context.Context) []string
}
