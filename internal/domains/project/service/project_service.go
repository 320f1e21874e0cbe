package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/domains/project/repository"
	"portfolio-backend/internal/infrastructure/markdown"
)

// ProjectService là business logic layer của project domain.
type ProjectService interface {
	// ListProjects returns all valid projects: featured first, then
	// newest year, then slug.
	ListProjects(ctx context.Context) []*model.Project

	// GetProject loads one case study with its body rendered to HTML.
	GetProject(ctx context.Context, slug string) (*model.Project, error)
}

// =====================================================
// PROJECT SERVICE
// =====================================================

type projectService struct {
	repo     repository.ProjectRepository
	renderer *markdown.Renderer
}

func NewProjectService(repo repository.ProjectRepository, renderer *markdown.Renderer) ProjectService {
	return &projectService{
		repo:     repo,
		renderer: renderer,
	}
}

func (s *projectService) ListProjects(ctx context.Context) []*model.Project {
	projects, diagnostics := s.repo.ListAll(ctx)

	for _, d := range diagnostics {
		log.Warn().Str("slug", d.Slug).Str("reason", d.Reason).Msg("Project excluded from listing")
	}

	sort.SliceStable(projects, func(i, j int) bool {
		if projects[i].Featured != projects[j].Featured {
			return projects[i].Featured
		}
		if projects[i].Year != projects[j].Year {
			return projects[i].Year > projects[j].Year
		}
		return projects[i].Slug < projects[j].Slug
	})

	return projects
}

func (s *projectService) GetProject(ctx context.Context, slug string) (*model.Project, error) {
	project, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	html, err := s.renderer.Render([]byte(project.Content))
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("Failed to render project body")
	} else {
		project.ContentHTML = html
	}

	return project, nil
}
