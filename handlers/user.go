package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ashutoshmishr0/Blogify-backend/service"
)

type UserHandler struct {
	users *service.UserService
}

func NewUserHandler(users *service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Get(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	user, err := h.users.Get(ctx, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateUserRequest struct {
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

// Update accepts either a JSON body or a multipart form with an optional
// profilePic file. Only fields present in the request are changed.
func (h *UserHandler) Update(c *gin.Context) {
	patch := service.UserPatch{}
	var file io.Reader

	if c.ContentType() == "application/json" {
		var req updateUserRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		patch.Username = req.Username
		patch.Email = req.Email
		patch.Password = req.Password
	} else {
		if v, ok := formString(c, "username"); ok {
			patch.Username = &v
		}
		if v, ok := formString(c, "email"); ok {
			patch.Email = &v
		}
		if v, ok := formString(c, "password"); ok {
			patch.Password = &v
		}

		f, err := imageFromForm(c, "profilePic", maxProfileImageBytes)
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

	user, err := h.users.Update(ctx, c.Param("id"), c.GetString("userId"), patch, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.users.Delete(ctx, c.Param("id"), c.GetString("userId")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user has been deleted"})
}
