package types

import "time"

// Recipe is the fully resolved view of a recipe as consumed by clients:
// author and ratings joined in, steps ordered, average rating computed.
type Recipe struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Description   string       `json:"description"`
	ImageURL      string       `json:"imageUrl"`
	PrepTime      int          `json:"prepTime"`
	CookTime      int          `json:"cookTime"`
	Servings      int          `json:"servings"`
	Category      string       `json:"category"`
	Ingredients   []Ingredient `json:"ingredients"`
	Steps         []Step       `json:"steps"`
	AuthorID      string       `json:"authorId"`
	Author        AuthUser     `json:"author"`
	Ratings       []Rating     `json:"ratings"`
	AverageRating float64      `json:"averageRating"`
	CreatedAt     time.Time    `json:"createdAt"`
	UpdatedAt     time.Time    `json:"updatedAt"`
}

type Ingredient struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type Step struct {
	ID          string `json:"id"`
	Order       int    `json:"order"`
	Instruction string `json:"instruction"`
	TimeMinutes *int   `json:"timeMinutes,omitempty"`
}

type Rating struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthUser is the public profile attached to recipes and sessions.
type AuthUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar,omitempty"`
	Bio    string `json:"bio,omitempty"`
}

// CreateIngredient and CreateStep carry no id; the database generates them.
type CreateIngredient struct {
	Name     string `json:"name" binding:"required"`
	Quantity string `json:"quantity"`
	Unit     string `json:"unit"`
}

type CreateStep struct {
	Order       int    `json:"order" binding:"required"`
	Instruction string `json:"instruction" binding:"required"`
	TimeMinutes *int   `json:"timeMinutes,omitempty"`
}

// CreateRecipeData is the creation payload. AuthorID is filled in by the
// caller from the authenticated session, never from the request body.
type CreateRecipeData struct {
	Title       string             `json:"title" binding:"required"`
	Description string             `json:"description"`
	ImageURL    string             `json:"imageUrl"`
	PrepTime    int                `json:"prepTime" binding:"min=0"`
	CookTime    int                `json:"cookTime" binding:"min=0"`
	Servings    int                `json:"servings" binding:"min=1"`
	Category    string             `json:"category"`
	Ingredients []CreateIngredient `json:"ingredients"`
	Steps       []CreateStep       `json:"steps"`
	AuthorID    string             `json:"-"`
}
