package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashutoshmishr0/Blogify-backend/apperr"
	"github.com/ashutoshmishr0/Blogify-backend/storage"
)

// UploadHandler exposes a bare image upload that returns the hosted URL
// without attaching it to any entity.
type UploadHandler struct {
	store storage.AssetStore
}

func NewUploadHandler(store storage.AssetStore) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	file, err := imageFromForm(c, "file", maxUploadBytes)
	if err != nil {
		respondError(c, err)
		return
	}
	if file == nil {
		respondError(c, apperr.New(apperr.Validation, "no file uploaded"))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	ref, err := h.store.Upload(ctx, file, storage.PostImageOptions)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "file uploaded successfully",
		"url":       ref.URL,
		"secureUrl": ref.SecureURL,
	})
}
