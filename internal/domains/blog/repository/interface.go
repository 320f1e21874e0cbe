package repository

import (
	"context"

	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/domains/content"
)

// BlogRepository materializes posts from the content directory. There
// is no cache: every call reads fresh from disk.
type BlogRepository interface {
	// GetBySlug loads one post. Missing files and invalid frontmatter
	// both come back as model.ErrPostNotFound.
	GetBySlug(ctx context.Context, slug string) (*model.Post, error)

	// ListAll loads every recognized content file, skipping the ones
	// that fail. The diagnostics name each skipped file and why.
	ListAll(ctx context.Context) ([]*model.Post, []content.Diagnostic)

	// ListSlugs lists available slugs without parsing file bodies.
	// Empty on directory-read failure.
	ListSlugs(ctx context.Context) []string

	// Probe reports whether the content directory is readable.
	Probe() error
}
