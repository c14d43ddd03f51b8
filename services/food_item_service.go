package services

import (
	"context"
	"time"

	"github.com/THORzero9/FWR-sub000/apperrors"
	"github.com/THORzero9/FWR-sub000/models"
	"github.com/THORzero9/FWR-sub000/repository"
)

// FoodItemService applies validation and the field allow-list in front of the
// owner-scoped repository. Owner and added date are always derived
// server-side, never taken from the caller.
type FoodItemService struct {
	items repository.FoodItemRepository
}

func NewFoodItemService(items repository.FoodItemRepository) *FoodItemService {
	return &FoodItemService{items: items}
}

// AddItemInput carries the caller-settable fields of a new item.
type AddItemInput struct {
	Name       string
	Category   string
	Quantity   int
	Unit       string
	ExpiryDate time.Time
	Favorite   bool
}

// UpdateItemInput is a partial update: nil means "leave unchanged". Only the
// fields listed here can ever be changed by a caller; id, owner and added
// date are not in the allow-list.
type UpdateItemInput struct {
	Name       *string
	Category   *string
	Quantity   *int
	Unit       *string
	ExpiryDate *time.Time
	Favorite   *bool
}

func (s *FoodItemService) List(ctx context.Context, ownerID uint) ([]models.FoodItem, error) {
	return s.items.List(ctx, ownerID)
}

func (s *FoodItemService) Get(ctx context.Context, id, ownerID uint) (*models.FoodItem, error) {
	return s.items.Get(ctx, id, ownerID)
}

func (s *FoodItemService) Add(ctx context.Context, input AddItemInput, ownerID uint) (*models.FoodItem, error) {
	verr := apperrors.NewValidation()
	if input.Name == "" {
		verr.Add("name", "name is required")
	}
	if !models.Category(input.Category).Valid() {
		verr.Add("category", "unknown category")
	}
	if input.Quantity < 1 {
		verr.Add("quantity", "quantity must be at least 1")
	}
	if !models.Unit(input.Unit).Valid() {
		verr.Add("unit", "unknown unit")
	}
	if input.ExpiryDate.IsZero() {
		verr.Add("expiry_date", "expiry date is required")
	}
	if !verr.Empty() {
		return nil, verr
	}

	item := &models.FoodItem{
		UserID:     ownerID,
		Name:       input.Name,
		Category:   models.Category(input.Category),
		Quantity:   input.Quantity,
		Unit:       models.Unit(input.Unit),
		ExpiryDate: input.ExpiryDate,
		Favorite:   input.Favorite,
		AddedDate:  time.Now(),
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update validates each supplied field, then hands the repository a column
// map so the owner check and the write happen in one operation.
func (s *FoodItemService) Update(ctx context.Context, id, ownerID uint, input UpdateItemInput) (*models.FoodItem, error) {
	verr := apperrors.NewValidation()
	fields := map[string]interface{}{}

	if input.Name != nil {
		if *input.Name == "" {
			verr.Add("name", "name must not be empty")
		} else {
			fields["name"] = *input.Name
		}
	}
	if input.Category != nil {
		if !models.Category(*input.Category).Valid() {
			verr.Add("category", "unknown category")
		} else {
			fields["category"] = models.Category(*input.Category)
		}
	}
	if input.Quantity != nil {
		if *input.Quantity < 1 {
			verr.Add("quantity", "quantity must be at least 1")
		} else {
			fields["quantity"] = *input.Quantity
		}
	}
	if input.Unit != nil {
		if !models.Unit(*input.Unit).Valid() {
			verr.Add("unit", "unknown unit")
		} else {
			fields["unit"] = models.Unit(*input.Unit)
		}
	}
	if input.ExpiryDate != nil {
		if input.ExpiryDate.IsZero() {
			verr.Add("expiry_date", "expiry date must not be empty")
		} else {
			fields["expiry_date"] = *input.ExpiryDate
		}
	}
	if input.Favorite != nil {
		fields["favorite"] = *input.Favorite
	}

	if !verr.Empty() {
		return nil, verr
	}
	if len(fields) == 0 {
		// Nothing to change: behave like a read so the caller still gets the
		// not-found outcome for items that are not theirs.
		return s.items.Get(ctx, id, ownerID)
	}
	return s.items.Update(ctx, id, ownerID, fields)
}

func (s *FoodItemService) Delete(ctx context.Context, id, ownerID uint) (bool, error) {
	return s.items.Delete(ctx, id, ownerID)
}
