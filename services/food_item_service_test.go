package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THORzero9/FWR-sub000/apperrors"
	"github.com/THORzero9/FWR-sub000/repository"
)

func newItemFixture() *FoodItemService {
	return NewFoodItemService(repository.NewMemoryFoodItemRepository())
}

func validAdd(days int) AddItemInput {
	return AddItemInput{
		Name:       "Milk",
		Category:   "Dairy",
		Quantity:   1,
		Unit:       "L",
		ExpiryDate: time.Now().Add(time.Duration(days) * 24 * time.Hour),
	}
}

func TestAdd_AssignsOwnerAndAddedDate(t *testing.T) {
	svc := newItemFixture()

	item, err := svc.Add(context.Background(), validAdd(3), 7)
	require.NoError(t, err)

	assert.Equal(t, uint(7), item.UserID)
	assert.NotZero(t, item.ID)
	assert.WithinDuration(t, time.Now(), item.AddedDate, time.Minute)
}

func TestAdd_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AddItemInput)
		field  string
	}{
		{"missing name", func(i *AddItemInput) { i.Name = "" }, "name"},
		{"unknown category", func(i *AddItemInput) { i.Category = "Gadgets" }, "category"},
		{"zero quantity", func(i *AddItemInput) { i.Quantity = 0 }, "quantity"},
		{"negative quantity", func(i *AddItemInput) { i.Quantity = -2 }, "quantity"},
		{"unknown unit", func(i *AddItemInput) { i.Unit = "barrels" }, "unit"},
		{"missing expiry", func(i *AddItemInput) { i.ExpiryDate = time.Time{} }, "expiry_date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newItemFixture()
			input := validAdd(3)
			tt.mutate(&input)

			_, err := svc.Add(context.Background(), input, 1)
			var verr *apperrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Details[0].Field)
		})
	}
}

func TestList_OwnerScopedAndExpiryOrdered(t *testing.T) {
	svc := newItemFixture()
	ctx := context.Background()

	later := validAdd(10)
	later.Name = "Cheese"
	soon := validAdd(1)
	soon.Name = "Milk"
	middle := validAdd(5)
	middle.Name = "Yogurt"

	_, err := svc.Add(ctx, later, 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, soon, 1)
	require.NoError(t, err)
	_, err = svc.Add(ctx, middle, 1)
	require.NoError(t, err)

	other := validAdd(2)
	other.Name = "Bread"
	other.Category = "Bakery"
	other.Unit = "pcs"
	_, err = svc.Add(ctx, other, 2)
	require.NoError(t, err)

	items, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "Milk", items[0].Name)
	assert.Equal(t, "Yogurt", items[1].Name)
	assert.Equal(t, "Cheese", items[2].Name)
	for _, item := range items {
		assert.Equal(t, uint(1), item.UserID)
	}
}

func TestCrossUserAccessLooksLikeNotFound(t *testing.T) {
	svc := newItemFixture()
	ctx := context.Background()

	item, err := svc.Add(ctx, validAdd(3), 1)
	require.NoError(t, err)

	t.Run("get", func(t *testing.T) {
		_, err := svc.Get(ctx, item.ID, 2)
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("update leaves the item unchanged", func(t *testing.T) {
		name := "Stolen"
		_, err := svc.Update(ctx, item.ID, 2, UpdateItemInput{Name: &name})
		assert.True(t, apperrors.IsNotFound(err))

		unchanged, err := svc.Get(ctx, item.ID, 1)
		require.NoError(t, err)
		assert.Equal(t, "Milk", unchanged.Name)
	})

	t.Run("delete reports false and the item survives", func(t *testing.T) {
		removed, err := svc.Delete(ctx, item.ID, 2)
		require.NoError(t, err)
		assert.False(t, removed)

		_, err = svc.Get(ctx, item.ID, 1)
		assert.NoError(t, err)
	})
}

func TestUpdate_PartialMerge(t *testing.T) {
	svc := newItemFixture()
	ctx := context.Background()

	item, err := svc.Add(ctx, validAdd(3), 1)
	require.NoError(t, err)

	qty := 4
	fav := true
	updated, err := svc.Update(ctx, item.ID, 1, UpdateItemInput{Quantity: &qty, Favorite: &fav})
	require.NoError(t, err)

	assert.Equal(t, 4, updated.Quantity)
	assert.True(t, updated.Favorite)
	assert.Equal(t, "Milk", updated.Name, "untouched fields keep their values")
	assert.Equal(t, item.UserID, updated.UserID)
}

func TestUpdate_RejectsInvalidQuantityWithoutWriting(t *testing.T) {
	svc := newItemFixture()
	ctx := context.Background()

	item, err := svc.Add(ctx, validAdd(3), 1)
	require.NoError(t, err)

	zero := 0
	_, err = svc.Update(ctx, item.ID, 1, UpdateItemInput{Quantity: &zero})
	var verr *apperrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "quantity", verr.Details[0].Field)

	unchanged, err := svc.Get(ctx, item.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, unchanged.Quantity)
}

func TestUpdate_EmptyPatchBehavesLikeRead(t *testing.T) {
	svc := newItemFixture()
	ctx := context.Background()

	item, err := svc.Add(ctx, validAdd(3), 1)
	require.NoError(t, err)

	got, err := svc.Update(ctx, item.ID, 1, UpdateItemInput{})
	require.NoError(t, err)
	assert.Equal(t, item.ID, got.ID)

	_, err = svc.Update(ctx, item.ID, 2, UpdateItemInput{})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDelete_RemovesOwnItem(t *testing.T) {
	svc := newItemFixture()
	ctx := context.Background()

	item, err := svc.Add(ctx, validAdd(3), 1)
	require.NoError(t, err)

	removed, err := svc.Delete(ctx, item.ID, 1)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = svc.Get(ctx, item.ID, 1)
	assert.True(t, apperrors.IsNotFound(err))
}
