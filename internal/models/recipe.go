package models

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type Recipe struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	ImageURL    string         `gorm:"size:255" json:"image_url"`
	PrepTime    int            `gorm:"not null;default:0" json:"prep_time"`
	CookTime    int            `gorm:"not null;default:0" json:"cook_time"`
	Servings    int            `gorm:"not null;default:1" json:"servings"`
	Category    string         `gorm:"size:50" json:"category"`
	AuthorID    uuid.UUID      `gorm:"type:uuid;index" json:"author_id"`

	Author      *User          `gorm:"foreignKey:AuthorID" json:"author,omitempty"`
	Ingredients []Ingredient   `gorm:"foreignKey:RecipeID" json:"ingredients"`
	Steps       []Step         `gorm:"foreignKey:RecipeID" json:"steps"`
	Ratings     []RecipeRating `gorm:"foreignKey:RecipeID" json:"ratings"`

	Embedding pgvector.Vector `gorm:"type:vector(3)" json:"-"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Ingredient rows keep quantity as text: the imported data set stores
// quantities like "2.5" or "1/2 xícara" and the view layer parses them.
type Ingredient struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;index;not null" json:"recipe_id"`
	Name     string    `gorm:"size:100;not null;check:name <> ''" json:"name"`
	Quantity string    `gorm:"size:50" json:"quantity"`
	Unit     string    `gorm:"size:30" json:"unit"`
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

type Step struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;index;not null" json:"recipe_id"`
	Order       int       `gorm:"column:order;not null" json:"order"`
	Instruction string    `gorm:"type:text;not null;check:instruction <> ''" json:"instruction"`
	TimeMinutes *int      `json:"time_minutes,omitempty"`
}

func (s *Step) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

type RecipeRating struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;index;not null" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid;index" json:"user_id"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (r *RecipeRating) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
