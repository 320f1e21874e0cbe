package repository

import (
	"context"

	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/domains/content"
	"portfolio-backend/internal/metrics"
	"portfolio-backend/internal/shared/utils"
)

// =====================================================
// FILESYSTEM REPOSITORY
// =====================================================

type filesystemRepository struct {
	reader *content.Reader
}

// NewFilesystemRepository reads posts from dir, one .mdx file per slug.
func NewFilesystemRepository(dir string) BlogRepository {
	return &filesystemRepository{
		reader: content.NewReader(dir),
	}
}

func (r *filesystemRepository) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	post, err := r.load(slug)
	if err != nil {
		// The caller only learns "not found". The actual reason stays
		// in the log so a broken post is debuggable server-side.
		log.Error().Err(err).Str("slug", slug).Msg("Failed to load post")
		metrics.ContentLoadsTotal.WithLabelValues("blog", "skipped").Inc()
		return nil, model.ErrPostNotFound
	}

	metrics.ContentLoadsTotal.WithLabelValues("blog", "ok").Inc()
	return post, nil
}

func (r *filesystemRepository) ListAll(ctx context.Context) ([]*model.Post, []content.Diagnostic) {
	slugs := r.reader.ListSlugs()

	posts := make([]*model.Post, 0, len(slugs))
	var diagnostics []content.Diagnostic

	// Posts load sequentially. The content volume is a personal blog;
	// nothing here needs fan-out.
	for _, slug := range slugs {
		post, err := r.load(slug)
		if err != nil {
			log.Error().Err(err).Str("slug", slug).Msg("Skipping invalid post")
			metrics.ContentLoadsTotal.WithLabelValues("blog", "skipped").Inc()
			diagnostics = append(diagnostics, content.Diagnostic{
				Slug:   slug,
				Reason: err.Error(),
			})
			continue
		}
		metrics.ContentLoadsTotal.WithLabelValues("blog", "ok").Inc()
		posts = append(posts, post)
	}

	return posts, diagnostics
}

func (r *filesystemRepository) ListSlugs(ctx context.Context) []string {
	return r.reader.ListSlugs()
}

func (r *filesystemRepository) Probe() error {
	return r.reader.Probe()
}

// load reads and validates one post, returning the real failure reason.
// The not-found collapsing happens in the exported methods.
func (r *filesystemRepository) load(slug string) (*model.Post, error) {
	var meta model.Metadata
	body, err := r.reader.Read(slug, &meta)
	if err != nil {
		return nil, err
	}

	if err := meta.Validate(); err != nil {
		return nil, err
	}

	tags := meta.Tags
	if tags == nil {
		tags = []string{}
	}

	return &model.Post{
		Slug:        slug,
		Title:       meta.Title,
		Date:        meta.Date,
		Excerpt:     meta.Excerpt,
		Tags:        tags,
		HeroType:    model.HeroType(meta.HeroType),
		HeroAsset:   meta.HeroAsset,
		Content:     string(body),
		ReadingTime: utils.ReadingTime(string(body)),
	}, nil
}
