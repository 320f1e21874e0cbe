package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/domains/blog/repository"
	"portfolio-backend/internal/infrastructure/markdown"
)

// =====================================================
// BLOG SERVICE
// =====================================================

type blogService struct {
	repo     repository.BlogRepository
	renderer *markdown.Renderer
}

func NewBlogService(repo repository.BlogRepository, renderer *markdown.Renderer) BlogService {
	return &blogService{
		repo:     repo,
		renderer: renderer,
	}
}

func (s *blogService) ListPosts(ctx context.Context) []*model.Post {
	posts, diagnostics := s.repo.ListAll(ctx)

	// Partial success: skipped posts are logged with their reasons but
	// the listing itself always succeeds.
	for _, d := range diagnostics {
		log.Warn().Str("slug", d.Slug).Str("reason", d.Reason).Msg("Post excluded from listing")
	}

	sortPosts(posts)
	return posts
}

func (s *blogService) GetPost(ctx context.Context, slug string) (*model.Post, error) {
	post, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.Render([]byte(post.Content))
	if err != nil {
		// Raw content is still served; only the rendered view is lost.
		log.Error().Err(err).Str("slug", slug).Msg("Failed to render post body")
	} else {
		post.ContentHTML = html
	}

	return post, nil
}

func (s *blogService) ListSlugs(ctx context.Context) []string {
	return s.repo.ListSlugs(ctx)
}

// sortPosts orders by date descending. Posts sharing a date are ordered
// by slug ascending so the listing is deterministic across platforms,
// instead of leaking directory enumeration order.
func sortPosts(posts []*model.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		di, dj := posts[i].ParsedDate(), posts[j].ParsedDate()
		if !di.Equal(dj) {
			return di.After(dj)
		}
		return posts[i].Slug < posts[j].Slug
	})
}
