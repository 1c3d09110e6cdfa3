package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/receitaria/backend/internal/middleware"
	"github.com/receitaria/backend/internal/service"
)

type UploadHandler struct {
	uploads     *service.UploadService
	authService *service.AuthService
}

func NewUploadHandler(uploads *service.UploadService, authService *service.AuthService) *UploadHandler {
	return &UploadHandler{
		uploads:     uploads,
		authService: authService,
	}
}

func (h *UploadHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/uploads", middleware.AuthMiddleware(h.authService), h.UploadImage)
}

// UploadImage accepts a multipart "image" file and returns the stored URL.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.uploads == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "image storage not configured"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read image"})
		return
	}
	defer func() { _ = file.Close() }()

	folder := c.DefaultPostForm("folder", "recipe-images")
	if folder != "recipe-images" && folder != "avatars" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid folder"})
		return
	}

	url, err := h.uploads.UploadImage(c.Request.Context(), file, fileHeader.Header.Get("Content-Type"), folder)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
