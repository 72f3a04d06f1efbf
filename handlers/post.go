package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashutoshmishr0/Blogify-backend/repository"
	"github.com/ashutoshmishr0/Blogify-backend/service"
)

type PostHandler struct {
	posts *service.PostService
}

func NewPostHandler(posts *service.PostService) *PostHandler {
	return &PostHandler{posts: posts}
}

type createPostRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"desc"`
	Categories  []string `json:"categories"`
}

// Create accepts either a JSON body or a multipart form with an optional
// file. The author is taken from the authenticated identity.
func (h *PostHandler) Create(c *gin.Context) {
	draft := service.PostDraft{Username: c.GetString("username")}
	var file io.Reader

	if c.ContentType() == "application/json" {
		var req createPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		draft.Title = req.Title
		draft.Description = req.Description
		draft.Categories = req.Categories
	} else {
		draft.Title = c.PostForm("title")
		draft.Description = c.PostForm("desc")
		draft.Categories = c.PostFormArray("categories")

		f, err := imageFromForm(c, "file", maxPostImageBytes)
		if err != nil {
			respondError(c, err)
			return
		}
		if f != nil {
			defer f.Close()
			file = f
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	post, err := h.posts.Create(ctx, draft, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	post, err := h.posts.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

// List filters by ?user= or ?cat=; with neither it returns every post.
func (h *PostHandler) List(c *gin.Context) {
	filter := repository.PostFilter{
		Username: c.Query("user"),
		Category: c.Query("cat"),
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	posts, err := h.posts.List(ctx, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

type updatePostRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"desc"`
	Categories  []string `json:"categories"`
}

func (h *PostHandler) Update(c *gin.Context) {
	patch := service.PostPatch{}
	var file io.Reader

	if c.ContentType() == "application/json" {
		var req updatePostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		patch.Title = req.Title
		patch.Description = req.Description
		patch.Categories = req.Categories
	} else {
		if v, ok := formString(c, "title"); ok {
			patch.Title = &v
		}
		if v, ok := formString(c, "desc"); ok {
			patch.Description = &v
		}
		if cats := c.PostFormArray("categories"); len(cats) > 0 {
			patch.Categories = cats
		}

		f, err := imageFromForm(c, "file", maxPostImageBytes)
		if err != nil {
			respondError(c, err)
			return
		}
		if f != nil {
			defer f.Close()
			file = f
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	post, err := h.posts.Update(ctx, c.Param("id"), c.GetString("username"), patch, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.posts.Delete(ctx, c.Param("id"), c.GetString("username")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "post has been deleted"})
}
