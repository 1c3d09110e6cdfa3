package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/receitaria/backend/internal/models"
)

func ratingRow(score int, user *models.User) models.RecipeRating {
	return models.RecipeRating{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Rating: score,
		User:   user,
	}
}

func TestAverageRatingRounding(t *testing.T) {
	u := &models.User{ID: uuid.New(), Name: "Maria"}
	r := &models.Recipe{
		ID:       uuid.New(),
		AuthorID: u.ID,
		Author:   u,
		Ratings: []models.RecipeRating{
			ratingRow(5, u),
			ratingRow(4, u),
			ratingRow(4, u),
		},
	}

	view := recipeToView(r)
	// (5+4+4)/3 = 4.333... rounds to 4.3
	assert.Equal(t, 4.3, view.AverageRating)
}

func TestAverageRatingHalfAwayFromZero(t *testing.T) {
	u := &models.User{ID: uuid.New(), Name: "Maria"}
	r := &models.Recipe{
		ID:     uuid.New(),
		Author: u,
		Ratings: []models.RecipeRating{
			ratingRow(4, u),
			ratingRow(5, u),
		},
	}

	// mean 4.5, one decimal: stays 4.5; add a 2 -> mean 3.6666 -> 3.7
	view := recipeToView(r)
	assert.Equal(t, 4.5, view.AverageRating)

	r.Ratings = append(r.Ratings, ratingRow(2, u))
	view = recipeToView(r)
	assert.Equal(t, 3.7, view.AverageRating)
}

func TestAverageRatingEmptyIsZero(t *testing.T) {
	r := &models.Recipe{ID: uuid.New()}
	view := recipeToView(r)
	assert.Equal(t, 0.0, view.AverageRating)
	assert.NotNil(t, view.Ratings)
	assert.Empty(t, view.Ratings)
}

func TestRatingUserNamePlaceholder(t *testing.T) {
	r := &models.Recipe{
		ID: uuid.New(),
		Ratings: []models.RecipeRating{
			ratingRow(5, nil),
			ratingRow(3, &models.User{ID: uuid.New(), Name: "João"}),
		},
	}

	view := recipeToView(r)
	assert.Equal(t, "Anônimo", view.Ratings[0].UserName)
	assert.Equal(t, "João", view.Ratings[1].UserName)
}

func TestStepsSortedByOrder(t *testing.T) {
	r := &models.Recipe{
		ID: uuid.New(),
		Steps: []models.Step{
			{ID: uuid.New(), Order: 2, Instruction: "segundo"},
			{ID: uuid.New(), Order: 1, Instruction: "primeiro"},
			{ID: uuid.New(), Order: 3, Instruction: "terceiro"},
		},
	}

	view := recipeToView(r)
	assert.Equal(t, []int{1, 2, 3}, []int{view.Steps[0].Order, view.Steps[1].Order, view.Steps[2].Order})
	assert.Equal(t, "primeiro", view.Steps[0].Instruction)
}

func TestStepSortIsStableForTies(t *testing.T) {
	r := &models.Recipe{
		ID: uuid.New(),
		Steps: []models.Step{
			{ID: uuid.New(), Order: 2, Instruction: "b"},
			{ID: uuid.New(), Order: 1, Instruction: "a"},
			{ID: uuid.New(), Order: 2, Instruction: "c"},
		},
	}

	view := recipeToView(r)
	assert.Equal(t, "a", view.Steps[0].Instruction)
	assert.Equal(t, "b", view.Steps[1].Instruction)
	assert.Equal(t, "c", view.Steps[2].Instruction)
}

func TestStepDurationStaysAbsent(t *testing.T) {
	ten := 10
	r := &models.Recipe{
		ID: uuid.New(),
		Steps: []models.Step{
			{ID: uuid.New(), Order: 1, Instruction: "sem tempo"},
			{ID: uuid.New(), Order: 2, Instruction: "com tempo", TimeMinutes: &ten},
		},
	}

	view := recipeToView(r)
	assert.Nil(t, view.Steps[0].TimeMinutes)
	if assert.NotNil(t, view.Steps[1].TimeMinutes) {
		assert.Equal(t, 10, *view.Steps[1].TimeMinutes)
	}
}

func TestIngredientQuantityParsing(t *testing.T) {
	r := &models.Recipe{
		ID: uuid.New(),
		Ingredients: []models.Ingredient{
			{ID: uuid.New(), Name: "farinha", Quantity: "2.5", Unit: "xícaras"},
			{ID: uuid.New(), Name: "sal", Quantity: "a gosto", Unit: ""},
			{ID: uuid.New(), Name: "água", Quantity: "", Unit: "ml"},
		},
	}

	view := recipeToView(r)
	assert.Equal(t, 2.5, view.Ingredients[0].Quantity)
	assert.Equal(t, 0.0, view.Ingredients[1].Quantity)
	assert.Equal(t, 0.0, view.Ingredients[2].Quantity)
}

func TestMissingAuthorPlaceholder(t *testing.T) {
	r := &models.Recipe{ID: uuid.New()}

	view := recipeToView(r)
	assert.Equal(t, "Desconhecido", view.Author.Name)
	assert.Equal(t, "", view.Author.ID)
	assert.Equal(t, "", view.Author.Email)
}

func TestAuthorIDFallbackChain(t *testing.T) {
	stored := uuid.New()
	joined := &models.User{ID: uuid.New(), Name: "Ana"}

	// Stored author_id wins over the joined row.
	view := recipeToView(&models.Recipe{ID: uuid.New(), AuthorID: stored, Author: joined})
	assert.Equal(t, stored.String(), view.AuthorID)

	// Without a stored id, the joined author's id is used.
	view = recipeToView(&models.Recipe{ID: uuid.New(), Author: joined})
	assert.Equal(t, joined.ID.String(), view.AuthorID)

	// With neither, authorId is empty, never a zero uuid.
	view = recipeToView(&models.Recipe{ID: uuid.New()})
	assert.Equal(t, "", view.AuthorID)
}

func TestImageURLDefaultsToEmpty(t *testing.T) {
	view := recipeToView(&models.Recipe{ID: uuid.New()})
	assert.Equal(t, "", view.ImageURL)
}
