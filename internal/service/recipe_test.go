package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/receitaria/backend/internal/models"
	"github.com/receitaria/backend/internal/testhelpers"
	"github.com/receitaria/backend/internal/types"
)

func createPayload(authorID string) types.CreateRecipeData {
	twenty := 20
	return types.CreateRecipeData{
		Title:       "Bolo de Cenoura",
		Description: "Bolo de cenoura com cobertura de chocolate",
		PrepTime:    15,
		CookTime:    40,
		Servings:    8,
		Category:    "Sobremesa",
		Ingredients: []types.CreateIngredient{
			{Name: "cenoura", Quantity: "3", Unit: "unidades"},
		},
		Steps: []types.CreateStep{
			{Order: 1, Instruction: "Bata tudo no liquidificador.", TimeMinutes: &twenty},
		},
		AuthorID: authorID,
	}
}

func TestCreateAndGetByID(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	author := testhelpers.CreateTestUser(t, db, "Maria", "maria@example.com")

	created, err := svc.Create(context.Background(), createPayload(author.ID.String()))
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, "Bolo de Cenoura", created.Title)
	assert.Len(t, created.Ingredients, 1)
	assert.Len(t, created.Steps, 1)
	assert.Equal(t, 3.0, created.Ingredients[0].Quantity)
	assert.Equal(t, "Maria", created.Author.Name)
	assert.Equal(t, author.ID.String(), created.AuthorID)

	got, err := svc.GetByID(context.Background(), uuid.MustParse(created.ID))
	require.NoError(t, err)
	assert.Len(t, got.Ingredients, 1)
	assert.Len(t, got.Steps, 1)
	assert.Equal(t, 0.0, got.AverageRating)
}

func TestGetByIDNotFound(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrRecipeNotFound)

	var fetchErr *FetchError
	assert.False(t, errors.As(err, &fetchErr), "not-found must not be a FetchError")
}

func TestCreateFailedIngredientInsertKeepsRecipeRow(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	author := testhelpers.CreateTestUser(t, db, "Maria", "maria@example.com")

	data := createPayload(author.ID.String())
	// Violates the non-empty name check, so the bulk insert fails after the
	// recipe row is already committed.
	data.Ingredients[0].Name = ""

	_, err := svc.Create(context.Background(), data)
	require.Error(t, err)

	var createErr *CreateError
	require.ErrorAs(t, err, &createErr)
	assert.Equal(t, StageIngredients, createErr.Stage)

	// No rollback: the recipe row from the first insert is still readable.
	var row models.Recipe
	require.NoError(t, db.First(&row, "title = ?", data.Title).Error)

	got, err := svc.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Ingredients)
}

func TestCreateFailedStepInsertKeepsEarlierRows(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	author := testhelpers.CreateTestUser(t, db, "Maria", "maria@example.com")

	data := createPayload(author.ID.String())
	data.Steps[0].Instruction = ""

	_, err := svc.Create(context.Background(), data)
	require.Error(t, err)

	var createErr *CreateError
	require.ErrorAs(t, err, &createErr)
	assert.Equal(t, StageSteps, createErr.Stage)

	var row models.Recipe
	require.NoError(t, db.First(&row, "title = ?", data.Title).Error)

	got, err := svc.GetByID(context.Background(), row.ID)
	require.NoError(t, err)
	assert.Len(t, got.Ingredients, 1)
	assert.Empty(t, got.Steps)
}

func TestCreateRejectsInvalidAuthorID(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)

	_, err := svc.Create(context.Background(), createPayload("not-a-uuid"))
	var createErr *CreateError
	require.ErrorAs(t, err, &createErr)
	assert.Equal(t, StageRecipe, createErr.Stage)
}

func TestListAllNewestFirst(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	author := testhelpers.CreateTestUser(t, db, "Maria", "maria@example.com")

	older := testhelpers.CreateTestRecipe(t, db, author.ID, "Antiga")
	newer := testhelpers.CreateTestRecipe(t, db, author.ID, "Recente")
	require.NoError(t, db.Model(older).Update("created_at", time.Now().Add(-time.Hour)).Error)
	require.NoError(t, db.Model(newer).Update("created_at", time.Now()).Error)

	recipes, err := svc.ListAll(context.Background(), ListOptions{})
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "Recente", recipes[0].Title)
	assert.Equal(t, "Antiga", recipes[1].Title)
}

func TestListAllCategoryFilter(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	author := testhelpers.CreateTestUser(t, db, "Maria", "maria@example.com")

	doce := testhelpers.CreateTestRecipe(t, db, author.ID, "Pudim")
	require.NoError(t, db.Model(doce).Update("category", "Sobremesa").Error)
	testhelpers.CreateTestRecipe(t, db, author.ID, "Feijoada")

	recipes, err := svc.ListAll(context.Background(), ListOptions{Category: "Sobremesa"})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Pudim", recipes[0].Title)
}

func TestListAllSearchQuery(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	author := testhelpers.CreateTestUser(t, db, "Maria", "maria@example.com")

	testhelpers.CreateTestRecipe(t, db, author.ID, "Torta de Limão")
	testhelpers.CreateTestRecipe(t, db, author.ID, "Feijoada")

	recipes, err := svc.ListAll(context.Background(), ListOptions{Query: "limão"})
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Torta de Limão", recipes[0].Title)
}

func TestRateRecipe(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	author := testhelpers.CreateTestUser(t, db, "Maria", "maria@example.com")
	rater := testhelpers.CreateTestUser(t, db, "João", "joao@example.com")
	recipe := testhelpers.CreateTestRecipe(t, db, author.ID, "Pão de Queijo")

	updated, err := svc.RateRecipe(context.Background(), recipe.ID, rater.ID, 5, "Perfeito!")
	require.NoError(t, err)
	require.Len(t, updated.Ratings, 1)
	assert.Equal(t, "João", updated.Ratings[0].UserName)
	assert.Equal(t, 5.0, updated.AverageRating)

	_, err = svc.RateRecipe(context.Background(), uuid.New(), rater.ID, 4, "")
	assert.ErrorIs(t, err, ErrRecipeNotFound)
}

func TestListByAuthor(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := NewRecipeService(db)
	maria := testhelpers.CreateTestUser(t, db, "Maria", "maria@example.com")
	joao := testhelpers.CreateTestUser(t, db, "João", "joao@example.com")

	testhelpers.CreateTestRecipe(t, db, maria.ID, "Pão de Queijo")
	testhelpers.CreateTestRecipe(t, db, joao.ID, "Moqueca")

	recipes, err := svc.ListByAuthor(context.Background(), maria.ID)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "Pão de Queijo", recipes[0].Title)
}
