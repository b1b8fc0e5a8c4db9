package httpHandler

import (
	"errors"
	"fmt"
	"net/http"

	"blog-server/schemas"
	"blog-server/usecases"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type BlogHandler struct {
	useCase *usecases.BlogUseCase
	log     *logrus.Logger
}

func NewBlogHandler(useCase *usecases.BlogUseCase, log *logrus.Logger) *BlogHandler {
	return &BlogHandler{
		useCase: useCase,
		log:     log,
	}
}

// GetAllBlogs handles GET /blog
func (h *BlogHandler) GetAllBlogs(c *gin.Context) {
	blogs, err := h.useCase.GetAllBlogs(c.Request.Context())
	if errors.Is(err, usecases.ErrBlogNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No Blog found",
		})
		return
	}
	if err != nil {
		internalError(c, h.log, "Failed to retrieve blogs", err)
		return
	}

	c.JSON(http.StatusOK, schemas.NewBlogs(blogs))
}

// GetBlog handles GET /blog/:id
func (h *BlogHandler) GetBlog(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	blog, err := h.useCase.GetBlog(c.Request.Context(), id)
	if errors.Is(err, usecases.ErrBlogNotFound) {
		blogNotFound(c, id)
		return
	}
	if err != nil {
		internalError(c, h.log, "Failed to retrieve blog", err)
		return
	}

	c.JSON(http.StatusOK, schemas.NewShowBlog(blog))
}

// CreateBlog handles POST /blog
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	var req schemas.BlogRequest
	if !bindBody(c, &req) {
		return
	}

	blog := req.ToEntity()
	if err := h.useCase.CreateBlog(c.Request.Context(), blog); err != nil {
		internalError(c, h.log, "Failed to create blog", err)
		return
	}

	c.JSON(http.StatusCreated, schemas.NewBlog(blog))
}

// UpdateBlog handles PUT /blog/:id
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	var req schemas.BlogRequest
	if !bindBody(c, &req) {
		return
	}

	blog := req.ToEntity()
	blog.ID = id

	err := h.useCase.UpdateBlog(c.Request.Context(), blog)
	if errors.Is(err, usecases.ErrBlogNotFound) {
		blogNotFound(c, id)
		return
	}
	if err != nil {
		internalError(c, h.log, "Failed to update blog", err)
		return
	}

	c.JSON(http.StatusAccepted, "updated")
}

// DeleteBlog handles DELETE /blog/:id
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}

	err := h.useCase.DeleteBlog(c.Request.Context(), id)
	if errors.Is(err, usecases.ErrBlogNotFound) {
		blogNotFound(c, id)
		return
	}
	if err != nil {
		internalError(c, h.log, "Failed to delete blog", err)
		return
	}

	// 204 carries no body
	c.Status(http.StatusNoContent)
}

func blogNotFound(c *gin.Context, id uint) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": fmt.Sprintf("No Blog found with id %d", id),
	})
}
