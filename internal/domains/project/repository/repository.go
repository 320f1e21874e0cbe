package repository

import (
	"context"

	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/content"
	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/metrics"
	"portfolio-backend/internal/shared/utils"
)

// How much of the body becomes the description when frontmatter leaves
// it out.
const descriptionLength = 160

// ProjectRepository materializes case studies from the content
// directory, mirroring the blog repository's not-found semantics.
type ProjectRepository interface {
	GetBySlug(ctx context.Context, slug string) (*model.Project, error)
	ListAll(ctx context.Context) ([]*model.Project, []content.Diagnostic)
	Probe() error
}

// =====================================================
// FILESYSTEM REPOSITORY
// =====================================================

type filesystemRepository struct {
	reader *content.Reader
}

func NewFilesystemRepository(dir string) ProjectRepository {
	return &filesystemRepository{
		reader: content.NewReader(dir),
	}
}

func (r *filesystemRepository) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	project, err := r.load(slug)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to load project")
		metrics.ContentLoadsTotal.WithLabelValues("project", "skipped").Inc()
		return nil, model.ErrProjectNotFound
	}

	metrics.ContentLoadsTotal.WithLabelValues("project", "ok").Inc()
	return project, nil
}

func (r *filesystemRepository) ListAll(ctx context.Context) ([]*model.Project, []content.Diagnostic) {
	slugs := r.reader.ListSlugs()

	projects := make([]*model.Project, 0, len(slugs))
	var diagnostics []content.Diagnostic

	for _, slug := range slugs {
		project, err := r.load(slug)
		if err != nil {
			log.Error().Err(err).Str("slug", slug).Msg("Skipping invalid project")
			metrics.ContentLoadsTotal.WithLabelValues("project", "skipped").Inc()
			diagnostics = append(diagnostics, content.Diagnostic{
				Slug:   slug,
				Reason: err.Error(),
			})
			continue
		}
		metrics.ContentLoadsTotal.WithLabelValues("project", "ok").Inc()
		projects = append(projects, project)
	}

	return projects, diagnostics
}

func (r *filesystemRepository) Probe() error {
	return r.reader.Probe()
}

func (r *filesystemRepository) load(slug string) (*model.Project, error) {
	var meta model.Metadata
	body, err := r.reader.Read(slug, &meta)
	if err != nil {
		return nil, err
	}

	if err := meta.Validate(); err != nil {
		return nil, err
	}

	description := meta.Description
	if description == "" {
		description = utils.ExtractExcerpt(string(body), descriptionLength)
	}

	techStack := meta.TechStack
	if techStack == nil {
		techStack = []string{}
	}

	return &model.Project{
		Slug:        slug,
		Title:       meta.Title,
		Description: description,
		Year:        meta.Year,
		TechStack:   techStack,
		RepoURL:     meta.RepoURL,
		LiveURL:     meta.LiveURL,
		ComingSoon:  meta.ComingSoon,
		Featured:    meta.Featured,
		Content:     string(body),
	}, nil
}
