package service

import (
	"math"
	"sort"
	"strconv"

	"github.com/google/uuid"
	"github.com/receitaria/backend/internal/models"
	"github.com/receitaria/backend/internal/types"
)

// Placeholders substituted when a joined row is missing. The product copy is
// Brazilian Portuguese, same as the seeded data set.
const (
	anonymousUserName = "Anônimo"
	unknownAuthorName = "Desconhecido"
)

// recipeToView flattens a preloaded recipe row graph into the client view
// model. It is a pure transform: missing joined rows are defaulted, never an
// error.
func recipeToView(r *models.Recipe) types.Recipe {
	ratings := make([]types.Rating, 0, len(r.Ratings))
	var sum float64
	for _, rr := range r.Ratings {
		name := anonymousUserName
		if rr.User != nil && rr.User.Name != "" {
			name = rr.User.Name
		}
		ratings = append(ratings, types.Rating{
			ID:        rr.ID.String(),
			UserID:    rr.UserID.String(),
			UserName:  name,
			Rating:    rr.Rating,
			Comment:   rr.Comment,
			CreatedAt: rr.CreatedAt,
		})
		sum += float64(rr.Rating)
	}

	// Mean rounded to one decimal, half away from zero. Exactly 0 for an
	// unrated recipe.
	var average float64
	if len(ratings) > 0 {
		average = math.Round(sum/float64(len(ratings))*10) / 10
	}

	ingredients := make([]types.Ingredient, 0, len(r.Ingredients))
	for _, ing := range r.Ingredients {
		ingredients = append(ingredients, types.Ingredient{
			ID:       ing.ID.String(),
			Name:     ing.Name,
			Quantity: parseQuantity(ing.Quantity),
			Unit:     ing.Unit,
		})
	}

	steps := make([]types.Step, 0, len(r.Steps))
	for _, st := range r.Steps {
		steps = append(steps, types.Step{
			ID:          st.ID.String(),
			Order:       st.Order,
			Instruction: st.Instruction,
			TimeMinutes: st.TimeMinutes,
		})
	}
	// Source rows carry no ordering guarantee; ties keep insertion order.
	sort.SliceStable(steps, func(i, j int) bool {
		return steps[i].Order < steps[j].Order
	})

	author := types.AuthUser{Name: unknownAuthorName}
	if r.Author != nil {
		author = types.AuthUser{
			ID:     r.Author.ID.String(),
			Name:   r.Author.Name,
			Email:  r.Author.Email,
			Avatar: r.Author.Avatar,
			Bio:    r.Author.Bio,
		}
	}

	return types.Recipe{
		ID:            r.ID.String(),
		Title:         r.Title,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		PrepTime:      r.PrepTime,
		CookTime:      r.CookTime,
		Servings:      r.Servings,
		Category:      r.Category,
		Ingredients:   ingredients,
		Steps:         steps,
		AuthorID:      resolveAuthorID(r),
		Author:        author,
		Ratings:       ratings,
		AverageRating: average,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// resolveAuthorID prefers the recipe's own author_id column, then the joined
// author row, then empty.
func resolveAuthorID(r *models.Recipe) string {
	if r.AuthorID != uuid.Nil {
		return r.AuthorID.String()
	}
	if r.Author != nil && r.Author.ID != uuid.Nil {
		return r.Author.ID.String()
	}
	return ""
}

// parseQuantity coerces a stored quantity string to a number. Unparseable
// values become 0 rather than failing the whole recipe.
func parseQuantity(raw string) float64 {
	if raw == "" {
		return 0
	}
	q, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsInf(q, 0) || math.IsNaN(q) {
		return 0
	}
	return q
}
