package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/receitaria/backend/internal/middleware"
	"github.com/receitaria/backend/internal/service"
	"github.com/receitaria/backend/internal/types"
)

type RecipeHandler struct {
	recipes     *service.RecipeService
	authService *service.AuthService
	createLimit *middleware.RateLimiter
	ratingLimit *middleware.RateLimiter
}

func NewRecipeHandler(recipes *service.RecipeService, authService *service.AuthService, createLimit, ratingLimit *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{
		recipes:     recipes,
		authService: authService,
		createLimit: createLimit,
		ratingLimit: ratingLimit,
	}
}

func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)

		create := []gin.HandlerFunc{middleware.AuthMiddleware(h.authService)}
		rate := []gin.HandlerFunc{middleware.AuthMiddleware(h.authService)}
		if h.createLimit != nil {
			create = append(create, h.createLimit.RateLimitMiddleware())
		}
		if h.ratingLimit != nil {
			rate = append(rate, h.ratingLimit.RateLimitMiddleware())
		}
		recipes.POST("", append(create, h.CreateRecipe)...)
		recipes.POST("/:id/ratings", append(rate, h.RateRecipe)...)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	opts := service.ListOptions{
		Query:    c.Query("q"),
		Category: c.Query("category"),
	}

	recipes, err := h.recipes.ListAll(c.Request.Context(), opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipes": recipes})
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	recipe, err := h.recipes.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recipe"})
		return
	}

	c.JSON(http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	var data types.CreateRecipeData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}
	data.AuthorID = userID.(uuid.UUID).String()

	recipe, err := h.recipes.Create(c.Request.Context(), data)
	if err != nil {
		var createErr *service.CreateError
		if errors.As(err, &createErr) {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to create recipe",
				"stage": createErr.Stage,
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create recipe"})
		return
	}

	c.JSON(http.StatusCreated, recipe)
}

func (h *RecipeHandler) RateRecipe(c *gin.Context) {
	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid recipe id"})
		return
	}

	var req types.RateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	recipe, err := h.recipes.RateRecipe(c.Request.Context(), recipeID, userID.(uuid.UUID), req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rate recipe"})
		return
	}

	c.JSON(http.StatusCreated, recipe)
}
