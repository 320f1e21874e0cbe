package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/content"
	"portfolio-backend/internal/domains/project/model"
	"portfolio-backend/internal/infrastructure/markdown"
)

type fakeProjectRepo struct {
	projects    []*model.Project
	diagnostics []content.Diagnostic
}

func (f *fakeProjectRepo) GetBySlug(ctx context.Context, slug string) (*model.Project, error) {
	for _, p := range f.projects {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, model.ErrProjectNotFound
}

func (f *fakeProjectRepo) ListAll(ctx context.Context) ([]*model.Project, []content.Diagnostic) {
	out := make([]*model.Project, len(f.projects))
	copy(out, f.projects)
	return out, f.diagnostics
}

func (f *fakeProjectRepo) Probe() error { return nil }

func project(slug string, year int, featured bool) *model.Project {
	return &model.Project{
		Slug:        slug,
		Title:       slug,
		Description: "a project",
		Year:        year,
		Featured:    featured,
		Content:     "## " + slug,
	}
}

func TestListProjects_FeaturedFirstThenYearThenSlug(t *testing.T) {
	repo := &fakeProjectRepo{projects: []*model.Project{
		project("old-plain", 2021, false),
		project("new-plain", 2025, false),
		project("old-featured", 2020, true),
		project("new-featured", 2024, true),
		project("also-new-plain", 2025, false),
	}}
	svc := NewProjectService(repo, markdown.NewRenderer())

	projects := svc.ListProjects(context.Background())

	require.Len(t, projects, 5)
	got := make([]string, len(projects))
	for i, p := range projects {
		got[i] = p.Slug
	}
	assert.Equal(t, []string{
		"new-featured", // featured beat plain regardless of year
		"old-featured",
		"also-new-plain", // same year: slug ascending
		"new-plain",
		"old-plain",
	}, got)
}

func TestListProjects_DiagnosticsDoNotFailListing(t *testing.T) {
	repo := &fakeProjectRepo{
		projects: []*model.Project{project("ok", 2024, false)},
		diagnostics: []content.Diagnostic{
			{Slug: "broken", Reason: "missing required frontmatter field: title"},
		},
	}
	svc := NewProjectService(repo, markdown.NewRenderer())

	projects := svc.ListProjects(context.Background())
	require.Len(t, projects, 1)
	assert.Equal(t, "ok", projects[0].Slug)
}

func TestGetProject_RendersHTML(t *testing.T) {
	p := project("shortener", 2024, false)
	p.Content = "## Design\n\nIt uses a *tiny* hash."

	svc := NewProjectService(&fakeProjectRepo{projects: []*model.Project{p}}, markdown.NewRenderer())

	got, err := svc.GetProject(context.Background(), "shortener")
	require.NoError(t, err)

	assert.Contains(t, got.ContentHTML, "<h2 id=\"design\">Design</h2>")
	assert.Contains(t, got.ContentHTML, "<em>tiny</em>")
	assert.Equal(t, p.Content, got.Content)
}

func TestGetProject_NotFound(t *testing.T) {
	svc := NewProjectService(&fakeProjectRepo{}, markdown.NewRenderer())

	got, err := svc.GetProject(context.Background(), "missing")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, model.ErrProjectNotFound)
}
