package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/THORzero9/FWR-sub000/apperrors"
	"github.com/THORzero9/FWR-sub000/models"
)

// FoodItemRepository scopes every operation by the acting user. The owner
// match is part of the query predicate itself, never an application-level
// check after a plain primary-key fetch.
type FoodItemRepository interface {
	List(ctx context.Context, ownerID uint) ([]models.FoodItem, error)
	Get(ctx context.Context, id, ownerID uint) (*models.FoodItem, error)
	Create(ctx context.Context, item *models.FoodItem) error
	Update(ctx context.Context, id, ownerID uint, fields map[string]interface{}) (*models.FoodItem, error)
	Delete(ctx context.Context, id, ownerID uint) (bool, error)
}

type GormFoodItemRepository struct {
	db *gorm.DB
}

func NewGormFoodItemRepository(db *gorm.DB) *GormFoodItemRepository {
	return &GormFoodItemRepository{db: db}
}

// List returns the owner's items soonest-expiring first. The ordering is a
// contract the client relies on.
func (r *GormFoodItemRepository) List(ctx context.Context, ownerID uint) ([]models.FoodItem, error) {
	items := []models.FoodItem{}
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("expiry_date asc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormFoodItemRepository) Get(ctx context.Context, id, ownerID uint) (*models.FoodItem, error) {
	var item models.FoodItem
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("food item")
		}
		return nil, err
	}
	return &item, nil
}

func (r *GormFoodItemRepository) Create(ctx context.Context, item *models.FoodItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update applies the already-validated field map in a single UPDATE whose
// predicate carries the owner check, so the check and the write cannot be
// interleaved by a concurrent request.
func (r *GormFoodItemRepository) Update(ctx context.Context, id, ownerID uint, fields map[string]interface{}) (*models.FoodItem, error) {
	res := r.db.WithContext(ctx).
		Model(&models.FoodItem{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(fields)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NotFound("food item")
	}
	return r.Get(ctx, id, ownerID)
}

// Delete removes the row only when the owner matches, reporting whether a
// row was actually removed.
func (r *GormFoodItemRepository) Delete(ctx context.Context, id, ownerID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.FoodItem{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
