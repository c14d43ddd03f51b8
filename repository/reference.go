package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/THORzero9/FWR-sub000/models"
)

// ReferenceRepository serves the static food-bank and nearby-user reference
// data backing the donation and sharing pages.
type ReferenceRepository interface {
	ListFoodBanks(ctx context.Context) ([]models.FoodBank, error)
	ListNearbyUsers(ctx context.Context) ([]models.NearbyUser, error)
}

type GormReferenceRepository struct {
	db *gorm.DB
}

func NewGormReferenceRepository(db *gorm.DB) *GormReferenceRepository {
	return &GormReferenceRepository{db: db}
}

func (r *GormReferenceRepository) ListFoodBanks(ctx context.Context) ([]models.FoodBank, error) {
	banks := []models.FoodBank{}
	if err := r.db.WithContext(ctx).Order("distance_tenths asc").Find(&banks).Error; err != nil {
		return nil, err
	}
	return banks, nil
}

func (r *GormReferenceRepository) ListNearbyUsers(ctx context.Context) ([]models.NearbyUser, error) {
	users := []models.NearbyUser{}
	if err := r.db.WithContext(ctx).Order("distance_tenths asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// SeedIfEmpty populates both tables when they are empty.
func (r *GormReferenceRepository) SeedIfEmpty(ctx context.Context, banks []models.FoodBank, users []models.NearbyUser) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.FoodBank{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 && len(banks) > 0 {
		if err := r.db.WithContext(ctx).Create(&banks).Error; err != nil {
			return err
		}
	}
	if err := r.db.WithContext(ctx).Model(&models.NearbyUser{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 && len(users) > 0 {
		if err := r.db.WithContext(ctx).Create(&users).Error; err != nil {
			return err
		}
	}
	return nil
}
