package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/domains/content"
	"portfolio-backend/internal/infrastructure/markdown"
)

// fakeBlogRepo serves a fixed post set without touching disk.
type fakeBlogRepo struct {
	posts       []*model.Post
	diagnostics []content.Diagnostic
}

func (f *fakeBlogRepo) GetBySlug(ctx context.Context, slug string) (*model.Post, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			cp := *p
			return &cp, nil
		}
	}
	return nil, model.ErrPostNotFound
}

func (f *fakeBlogRepo) ListAll(ctx context.Context) ([]*model.Post, []content.Diagnostic) {
	out := make([]*model.Post, len(f.posts))
	copy(out, f.posts)
	return out, f.diagnostics
}

func (f *fakeBlogRepo) ListSlugs(ctx context.Context) []string {
	slugs := make([]string, 0, len(f.posts))
	for _, p := range f.posts {
		slugs = append(slugs, p.Slug)
	}
	return slugs
}

func (f *fakeBlogRepo) Probe() error { return nil }

func post(slug, date string) *model.Post {
	return &model.Post{
		Slug:     slug,
		Title:    slug,
		Date:     date,
		Excerpt:  "excerpt",
		HeroType: model.HeroText,
		Content:  "# " + slug,
	}
}

func TestListPosts_NewestFirst(t *testing.T) {
	repo := &fakeBlogRepo{posts: []*model.Post{
		post("oldest", "2024-06-01"),
		post("newest", "2025-03-10"),
		post("middle", "2024-12-25"),
	}}
	svc := NewBlogService(repo, markdown.NewRenderer())

	posts := svc.ListPosts(context.Background())

	require.Len(t, posts, 3)
	assert.Equal(t, "newest", posts[0].Slug)
	assert.Equal(t, "middle", posts[1].Slug)
	assert.Equal(t, "oldest", posts[2].Slug)
}

func TestListPosts_SameDateOrdersBySlug(t *testing.T) {
	repo := &fakeBlogRepo{posts: []*model.Post{
		post("zebra", "2025-01-01"),
		post("alpha", "2025-01-01"),
		post("mango", "2025-01-01"),
	}}
	svc := NewBlogService(repo, markdown.NewRenderer())

	posts := svc.ListPosts(context.Background())

	require.Len(t, posts, 3)
	assert.Equal(t, "alpha", posts[0].Slug)
	assert.Equal(t, "mango", posts[1].Slug)
	assert.Equal(t, "zebra", posts[2].Slug)
}

func TestListPosts_UnparseableDateSortsLast(t *testing.T) {
	repo := &fakeBlogRepo{posts: []*model.Post{
		post("undated", "sometime in spring"),
		post("dated", "2023-01-01"),
	}}
	svc := NewBlogService(repo, markdown.NewRenderer())

	posts := svc.ListPosts(context.Background())

	require.Len(t, posts, 2)
	assert.Equal(t, "dated", posts[0].Slug)
	assert.Equal(t, "undated", posts[1].Slug)
}

func TestListPosts_SkippedPostsDoNotFailListing(t *testing.T) {
	repo := &fakeBlogRepo{
		posts: []*model.Post{post("good", "2025-01-01")},
		diagnostics: []content.Diagnostic{
			{Slug: "bad", Reason: "missing required frontmatter field: title"},
		},
	}
	svc := NewBlogService(repo, markdown.NewRenderer())

	posts := svc.ListPosts(context.Background())
	require.Len(t, posts, 1)
	assert.Equal(t, "good", posts[0].Slug)
}

func TestGetPost_RendersHTML(t *testing.T) {
	p := post("first", "2025-01-01")
	p.Content = "# Heading\n\nSome **bold** text."

	svc := NewBlogService(&fakeBlogRepo{posts: []*model.Post{p}}, markdown.NewRenderer())

	got, err := svc.GetPost(context.Background(), "first")
	require.NoError(t, err)

	assert.Equal(t, p.Content, got.Content, "raw markdown stays available")
	assert.Contains(t, got.ContentHTML, "<h1 id=\"heading\">Heading</h1>")
	assert.Contains(t, got.ContentHTML, "<strong>bold</strong>")
}

func TestGetPost_NotFound(t *testing.T) {
	svc := NewBlogService(&fakeBlogRepo{}, markdown.NewRenderer())

	got, err := svc.GetPost(context.Background(), "missing")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, model.ErrPostNotFound)
}

func TestListSlugs_PassThrough(t *testing.T) {
	repo := &fakeBlogRepo{posts: []*model.Post{
		post("alpha", "2025-01-01"),
		post("beta", "2025-01-02"),
	}}
	svc := NewBlogService(repo, markdown.NewRenderer())

	assert.Equal(t, []string{"alpha", "beta"}, svc.ListSlugs(context.Background()))
}
