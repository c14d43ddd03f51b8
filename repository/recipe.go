package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/THORzero9/FWR-sub000/models"
)

// RecipeRepository is read-only from the application's perspective; rows are
// seeded once at startup.
type RecipeRepository interface {
	List(ctx context.Context) ([]models.Recipe, error)
}

type GormRecipeRepository struct {
	db *gorm.DB
}

func NewGormRecipeRepository(db *gorm.DB) *GormRecipeRepository {
	return &GormRecipeRepository{db: db}
}

// List returns all recipes in insertion order.
func (r *GormRecipeRepository) List(ctx context.Context) ([]models.Recipe, error) {
	recipes := []models.Recipe{}
	if err := r.db.WithContext(ctx).Order("id asc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

// SeedIfEmpty inserts the given recipes when the table has no rows yet.
func (r *GormRecipeRepository) SeedIfEmpty(ctx context.Context, recipes []models.Recipe) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Recipe{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&recipes).Error
}
