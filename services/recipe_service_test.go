package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THORzero9/FWR-sub000/models"
	"github.com/THORzero9/FWR-sub000/repository"
)

func newRecipeFixture() *RecipeService {
	return NewRecipeService(repository.NewMemoryRecipeRepository([]models.Recipe{
		{ID: 1, Name: "Tomato Basil Pasta", Ingredients: models.IngredientList{"Spaghetti", "Tomatoes", "Basil"}},
		{ID: 2, Name: "Vegetable Stir Fry", Ingredients: models.IngredientList{"Broccoli", "Carrots", "Soy Sauce"}},
		{ID: 3, Name: "Creamy Tomato Soup", Ingredients: models.IngredientList{"Tomato Sauce", "Onion", "Cream"}},
	}))
}

func TestMatchByIngredients_EmptyInput(t *testing.T) {
	svc := newRecipeFixture()

	matched, err := svc.MatchByIngredients(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, matched)

	matched, err = svc.MatchByIngredients(context.Background(), []string{"", "  "})
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestMatchByIngredients_CaseInsensitiveSubstring(t *testing.T) {
	svc := newRecipeFixture()

	matched, err := svc.MatchByIngredients(context.Background(), []string{"tomato"})
	require.NoError(t, err)
	require.Len(t, matched, 2)
	// Insertion order, no ranking.
	assert.Equal(t, "Tomato Basil Pasta", matched[0].Name)
	assert.Equal(t, "Creamy Tomato Soup", matched[1].Name)
}

func TestMatchByIngredients_SubstringIsLoose(t *testing.T) {
	svc := newRecipeFixture()

	// "Tomato" matches both "Tomatoes" and "Tomato Sauce".
	matched, err := svc.MatchByIngredients(context.Background(), []string{"Tomato"})
	require.NoError(t, err)
	assert.Len(t, matched, 2)

	// A single letter matches almost everything; that is the accepted policy.
	matched, err = svc.MatchByIngredients(context.Background(), []string{"o"})
	require.NoError(t, err)
	assert.Len(t, matched, 3)
}

func TestMatchByIngredients_NoMatch(t *testing.T) {
	svc := newRecipeFixture()

	matched, err := svc.MatchByIngredients(context.Background(), []string{"durian"})
	require.NoError(t, err)
	assert.Empty(t, matched)
}

func TestMatchByIngredients_MultipleNames(t *testing.T) {
	svc := newRecipeFixture()

	matched, err := svc.MatchByIngredients(context.Background(), []string{"basil", "broccoli"})
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "Tomato Basil Pasta", matched[0].Name)
	assert.Equal(t, "Vegetable Stir Fry", matched[1].Name)
}
