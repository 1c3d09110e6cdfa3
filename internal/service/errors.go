package service

import (
	"errors"
	"fmt"
)

// ErrRecipeNotFound marks explicit absence of a recipe. It is not a query
// failure: callers render "no results" for it, not an error state.
var ErrRecipeNotFound = errors.New("recipe not found")

// FetchError wraps a read-path database failure.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch recipes: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Stages of the recipe creation sequence, carried on CreateError so that
// callers can tell which write failed and whether earlier writes persisted.
const (
	StageRecipe      = "recipe"
	StageIngredients = "ingredients"
	StageSteps       = "steps"
	StageRefetch     = "refetch"
)

// CreateError wraps a write-path failure. Stage identifies the insert (or
// the final re-fetch) that failed; inserts from earlier stages are NOT
// rolled back.
type CreateError struct {
	Stage string
	Err   error
}

func (e *CreateError) Error() string {
	return fmt.Sprintf("failed to create recipe at stage %q: %v", e.Stage, e.Err)
}

func (e *CreateError) Unwrap() error { return e.Err }
