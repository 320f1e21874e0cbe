package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/blog/model"
	"portfolio-backend/internal/domains/blog/service"
	"portfolio-backend/internal/shared/response"
)

// =====================================================
// BLOG HANDLER
// =====================================================

type BlogHandler struct {
	blogService service.BlogService
}

func NewBlogHandler(blogService service.BlogService) *BlogHandler {
	return &BlogHandler{
		blogService: blogService,
	}
}

// ListPosts returns all posts, newest first, without bodies.
// GET /api/v1/posts
func (h *BlogHandler) ListPosts(c *gin.Context) {
	posts := h.blogService.ListPosts(c.Request.Context())

	summaries := make([]model.PostSummary, 0, len(posts))
	for _, p := range posts {
		summaries = append(summaries, model.SummaryOf(p))
	}

	response.SuccessWithMeta(c, http.StatusOK, summaries, &response.Meta{Total: len(summaries)})
}

// GetPost returns one post with raw and rendered content.
// GET /api/v1/posts/:slug
func (h *BlogHandler) GetPost(c *gin.Context) {
	slug := c.Param("slug")

	post, err := h.blogService.GetPost(c.Request.Context(), slug)
	if err != nil {
		if errors.Is(err, model.ErrPostNotFound) {
			response.NotFound(c, "Post not found")
			return
		}
		response.InternalServerError(c, "Failed to load post")
		return
	}

	response.Success(c, http.StatusOK, post)
}

// ListSlugs returns the available post slugs.
// GET /api/v1/posts/slugs
func (h *BlogHandler) ListSlugs(c *gin.Context) {
	slugs := h.blogService.ListSlugs(c.Request.Context())
	response.Success(c, http.StatusOK, slugs)
}
