package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/receitaria/backend/internal/models"
	"github.com/receitaria/backend/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListOptions narrows ListAll. Zero value lists everything.
type ListOptions struct {
	Query    string
	Category string
}

// RecipeService handles recipe reads and the multi-row creation sequence.
type RecipeService struct {
	db *gorm.DB
}

// NewRecipeService creates a new RecipeService instance
func NewRecipeService(db *gorm.DB) *RecipeService {
	return &RecipeService{db: db}
}

func (s *RecipeService) withJoins(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Author").
		Preload("Ratings").
		Preload("Ratings.User").
		Preload("Ingredients").
		Preload("Steps")
}

// ListAll returns every recipe with author, ratings, ingredients and steps
// resolved, newest first. With a search query on PostgreSQL, results are
// ordered by embedding distance instead.
func (s *RecipeService) ListAll(ctx context.Context, opts ListOptions) ([]types.Recipe, error) {
	query := s.withJoins(ctx)

	if opts.Query != "" {
		if s.db.Dialector.Name() == "postgres" {
			vec := GenerateEmbedding(opts.Query)
			query = query.Clauses(clause.OrderBy{
				Expression: clause.Expr{SQL: "embedding <-> ?", Vars: []interface{}{vec}},
			})
		} else {
			like := "%" + strings.ToLower(opts.Query) + "%"
			query = query.
				Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like).
				Order("created_at DESC")
		}
	} else {
		query = query.Order("created_at DESC")
	}

	if opts.Category != "" {
		query = query.Where("category = ?", opts.Category)
	}

	var rows []models.Recipe
	if err := query.Find(&rows).Error; err != nil {
		return nil, &FetchError{Err: err}
	}

	recipes := make([]types.Recipe, 0, len(rows))
	for i := range rows {
		recipes = append(recipes, recipeToView(&rows[i]))
	}
	return recipes, nil
}

// GetByID returns the resolved recipe, or ErrRecipeNotFound when no row
// matches. Query failures come back as *FetchError.
func (s *RecipeService) GetByID(ctx context.Context, id uuid.UUID) (*types.Recipe, error) {
	var row models.Recipe
	if err := s.withJoins(ctx).First(&row, "recipes.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, &FetchError{Err: err}
	}
	recipe := recipeToView(&row)
	return &recipe, nil
}

// Create inserts the recipe row, then its ingredients, then its steps, and
// finally re-fetches the full recipe so the caller sees exactly what future
// reads will see.
//
// The three inserts are deliberately NOT wrapped in a transaction: a failure
// partway leaves earlier rows persisted, matching the behavior of the data
// set this service was migrated from. CreateError.Stage tells callers which
// write failed so partial state is detectable.
func (s *RecipeService) Create(ctx context.Context, data types.CreateRecipeData) (*types.Recipe, error) {
	authorID, err := uuid.Parse(data.AuthorID)
	if err != nil {
		return nil, &CreateError{Stage: StageRecipe, Err: err}
	}

	recipe := models.Recipe{
		Title:       data.Title,
		Description: data.Description,
		ImageURL:    data.ImageURL,
		PrepTime:    data.PrepTime,
		CookTime:    data.CookTime,
		Servings:    data.Servings,
		Category:    data.Category,
		AuthorID:    authorID,
		Embedding:   GenerateEmbedding(data.Title + " " + data.Description),
	}
	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, &CreateError{Stage: StageRecipe, Err: err}
	}

	if len(data.Ingredients) > 0 {
		ingredients := make([]models.Ingredient, 0, len(data.Ingredients))
		for _, ing := range data.Ingredients {
			ingredients = append(ingredients, models.Ingredient{
				RecipeID: recipe.ID,
				Name:     ing.Name,
				Quantity: ing.Quantity,
				Unit:     ing.Unit,
			})
		}
		if err := s.db.WithContext(ctx).Create(&ingredients).Error; err != nil {
			return nil, &CreateError{Stage: StageIngredients, Err: err}
		}
	}

	if len(data.Steps) > 0 {
		steps := make([]models.Step, 0, len(data.Steps))
		for _, st := range data.Steps {
			steps = append(steps, models.Step{
				RecipeID:    recipe.ID,
				Order:       st.Order,
				Instruction: st.Instruction,
				TimeMinutes: st.TimeMinutes,
			})
		}
		if err := s.db.WithContext(ctx).Create(&steps).Error; err != nil {
			return nil, &CreateError{Stage: StageSteps, Err: err}
		}
	}

	created, err := s.GetByID(ctx, recipe.ID)
	if err != nil {
		return nil, &CreateError{Stage: StageRefetch, Err: err}
	}
	return created, nil
}

// RateRecipe records a user's rating for a recipe.
func (s *RecipeService) RateRecipe(ctx context.Context, recipeID, userID uuid.UUID, rating int, comment string) (*types.Recipe, error) {
	var recipe models.Recipe
	if err := s.db.WithContext(ctx).First(&recipe, "id = ?", recipeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecipeNotFound
		}
		return nil, &FetchError{Err: err}
	}

	row := models.RecipeRating{
		RecipeID: recipeID,
		UserID:   userID,
		Rating:   rating,
		Comment:  comment,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}

	return s.GetByID(ctx, recipeID)
}

// ListByAuthor returns the recipes created by one user, newest first.
func (s *RecipeService) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]types.Recipe, error) {
	var rows []models.Recipe
	if err := s.withJoins(ctx).
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, &FetchError{Err: err}
	}

	recipes := make([]types.Recipe, 0, len(rows))
	for i := range rows {
		recipes = append(recipes, recipeToView(&rows[i]))
	}
	return recipes, nil
}
