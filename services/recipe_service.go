package services

import (
	"context"
	"strings"

	"github.com/THORzero9/FWR-sub000/models"
	"github.com/THORzero9/FWR-sub000/repository"
)

// RecipeService serves the seeded recipe collection and the ingredient
// matcher used by the "use it up" views.
type RecipeService struct {
	recipes repository.RecipeRepository
}

func NewRecipeService(recipes repository.RecipeRepository) *RecipeService {
	return &RecipeService{recipes: recipes}
}

func (s *RecipeService) List(ctx context.Context) ([]models.Recipe, error) {
	return s.recipes.List(ctx)
}

// MatchByIngredients returns every recipe with at least one ingredient that
// contains one of the query names as a case-insensitive substring. The loose
// substring policy is intentional product behavior: "Tomato" matches
// "Tomato Sauce", and a single-letter query matches nearly everything.
// Results keep the collection's insertion order; an empty query returns an
// empty result without touching storage.
func (s *RecipeService) MatchByIngredients(ctx context.Context, names []string) ([]models.Recipe, error) {
	queries := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name != "" {
			queries = append(queries, strings.ToLower(name))
		}
	}
	if len(queries) == 0 {
		return []models.Recipe{}, nil
	}

	all, err := s.recipes.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := []models.Recipe{}
	for _, recipe := range all {
		if recipeMatches(recipe, queries) {
			matched = append(matched, recipe)
		}
	}
	return matched, nil
}

func recipeMatches(recipe models.Recipe, queries []string) bool {
	for _, ingredient := range recipe.Ingredients {
		lowered := strings.ToLower(ingredient)
		for _, q := range queries {
			if strings.Contains(lowered, q) {
				return true
			}
		}
	}
	return false
}
