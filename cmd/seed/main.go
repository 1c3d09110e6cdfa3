package main

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/receitaria/backend/config"
	"github.com/receitaria/backend/internal/database"
	"github.com/receitaria/backend/internal/models"
	"github.com/receitaria/backend/internal/service"
	"github.com/receitaria/backend/internal/types"
)

type seedIngredient struct {
	name, quantity, unit string
}

type seedStep struct {
	instruction string
	minutes     int
}

type seedRecipe struct {
	title, description, category string
	prep, cook, servings         int
	ingredients                  []seedIngredient
	steps                        []seedStep
}

var recipes = []seedRecipe{
	{
		title:       "Pão de Queijo",
		description: "Pãezinhos de polvilho com queijo minas, crocantes por fora e macios por dentro.",
		category:    "Lanche",
		prep:        20, cook: 25, servings: 6,
		ingredients: []seedIngredient{
			{"polvilho azedo", "500", "g"},
			{"queijo minas ralado", "300", "g"},
			{"leite", "250", "ml"},
			{"óleo", "125", "ml"},
			{"ovos", "3", "unidades"},
		},
		steps: []seedStep{
			{"Ferva o leite com o óleo e escalde o polvilho.", 10},
			{"Misture os ovos e o queijo até obter uma massa homogênea.", 10},
			{"Modele bolinhas e asse a 180°C até dourar.", 25},
		},
	},
	{
		title:       "Moqueca de Peixe",
		description: "Peixe cozido no leite de coco com dendê, pimentões e coentro.",
		category:    "Prato Principal",
		prep:        30, cook: 40, servings: 4,
		ingredients: []seedIngredient{
			{"filé de peixe branco", "800", "g"},
			{"leite de coco", "400", "ml"},
			{"azeite de dendê", "2", "colheres"},
			{"pimentão vermelho", "1", "unidade"},
			{"coentro fresco", "1", "maço"},
		},
		steps: []seedStep{
			{"Tempere o peixe com limão, sal e alho.", 15},
			{"Monte camadas de peixe e legumes na panela de barro.", 10},
			{"Cozinhe com o leite de coco e o dendê em fogo baixo.", 40},
		},
	},
	{
		title:       "Brigadeiro",
		description: "Doce de leite condensado com chocolate, enrolado no granulado.",
		category:    "Sobremesa",
		prep:        10, cook: 15, servings: 20,
		ingredients: []seedIngredient{
			{"leite condensado", "395", "g"},
			{"chocolate em pó", "3", "colheres"},
			{"manteiga", "1", "colher"},
			{"chocolate granulado", "100", "g"},
		},
		steps: []seedStep{
			{"Cozinhe o leite condensado com o chocolate e a manteiga até desgrudar da panela.", 15},
			{"Deixe esfriar, enrole em bolinhas e passe no granulado.", 20},
		},
	},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()

	seeder := models.User{
		ID:           uuid.New(),
		Name:         "Equipe Receitaria",
		Email:        "equipe@receitaria.com.br",
		PasswordHash: "*",
	}
	if err := db.WithContext(ctx).Where("email = ?", seeder.Email).FirstOrCreate(&seeder).Error; err != nil {
		log.Fatalf("Failed to create seed user: %v", err)
	}

	svc := service.NewRecipeService(db)
	for _, r := range recipes {
		data := types.CreateRecipeData{
			Title:       r.title,
			Description: r.description,
			PrepTime:    r.prep,
			CookTime:    r.cook,
			Servings:    r.servings,
			Category:    r.category,
			AuthorID:    seeder.ID.String(),
		}
		for _, ing := range r.ingredients {
			data.Ingredients = append(data.Ingredients, types.CreateIngredient{
				Name:     ing.name,
				Quantity: ing.quantity,
				Unit:     ing.unit,
			})
		}
		for i, st := range r.steps {
			minutes := st.minutes
			data.Steps = append(data.Steps, types.CreateStep{
				Order:       i + 1,
				Instruction: st.instruction,
				TimeMinutes: &minutes,
			})
		}

		created, err := svc.Create(ctx, data)
		if err != nil {
			log.Fatalf("Failed to seed recipe %q: %v", r.title, err)
		}
		log.Printf("seeded %q (%s)", created.Title, created.ID)
	}
}
