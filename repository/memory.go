package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/THORzero9/FWR-sub000/apperrors"
	"github.com/THORzero9/FWR-sub000/models"
)

// In-memory implementations used by tests and local development. Each store
// is safe for concurrent use; a fresh instance per test keeps tests isolated.

type MemoryUserRepository struct {
	mu     sync.RWMutex
	nextID uint
	users  map[uint]models.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{nextID: 1, users: map[uint]models.User{}}
}

func (r *MemoryUserRepository) FindByID(_ context.Context, id uint) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, apperrors.NotFound("user")
	}
	return user.Sanitized(), nil
}

func (r *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, apperrors.NotFound("user")
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return apperrors.Conflict("username or email already exists")
		}
	}
	user.ID = r.nextID
	r.nextID++
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	return nil
}

// Remove deletes a user outright. Only tests use this, to exercise the
// fail-closed path when a session references a vanished user.
func (r *MemoryUserRepository) Remove(id uint) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: map[string]models.Session{}}
}

func (s *MemorySessionStore) Get(_ context.Context, id string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, apperrors.NotFound("session")
	}
	if session.Expired() {
		delete(s.sessions, id)
		return nil, apperrors.NotFound("session")
	}
	out := session
	return &out, nil
}

func (s *MemorySessionStore) Save(_ context.Context, session *models.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}
	s.sessions[session.ID] = *session
	return nil
}

func (s *MemorySessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}

type MemoryFoodItemRepository struct {
	mu     sync.RWMutex
	nextID uint
	items  map[uint]models.FoodItem
}

func NewMemoryFoodItemRepository() *MemoryFoodItemRepository {
	return &MemoryFoodItemRepository{nextID: 1, items: map[uint]models.FoodItem{}}
}

func (r *MemoryFoodItemRepository) List(_ context.Context, ownerID uint) ([]models.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := []models.FoodItem{}
	for _, item := range r.items {
		if item.UserID == ownerID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].ExpiryDate.Before(items[j].ExpiryDate)
	})
	return items, nil
}

func (r *MemoryFoodItemRepository) Get(_ context.Context, id, ownerID uint) (*models.FoodItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok || item.UserID != ownerID {
		return nil, apperrors.NotFound("food item")
	}
	out := item
	return &out, nil
}

func (r *MemoryFoodItemRepository) Create(_ context.Context, item *models.FoodItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.ID = r.nextID
	r.nextID++
	r.items[item.ID] = *item
	return nil
}

// Update performs the owner check and the merge inside one critical section,
// mirroring the single-statement UPDATE of the persisted store.
func (r *MemoryFoodItemRepository) Update(_ context.Context, id, ownerID uint, fields map[string]interface{}) (*models.FoodItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok || item.UserID != ownerID {
		return nil, apperrors.NotFound("food item")
	}
	for column, value := range fields {
		switch column {
		case "name":
			item.Name = value.(string)
		case "category":
			item.Category = value.(models.Category)
		case "quantity":
			item.Quantity = value.(int)
		case "unit":
			item.Unit = value.(models.Unit)
		case "expiry_date":
			item.ExpiryDate = value.(time.Time)
		case "favorite":
			item.Favorite = value.(bool)
		}
	}
	r.items[id] = item
	out := item
	return &out, nil
}

func (r *MemoryFoodItemRepository) Delete(_ context.Context, id, ownerID uint) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item, ok := r.items[id]
	if !ok || item.UserID != ownerID {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

// MemoryRecipeRepository serves a fixed recipe collection in insertion order.
type MemoryRecipeRepository struct {
	recipes []models.Recipe
}

func NewMemoryRecipeRepository(recipes []models.Recipe) *MemoryRecipeRepository {
	return &MemoryRecipeRepository{recipes: recipes}
}

func (r *MemoryRecipeRepository) List(_ context.Context) ([]models.Recipe, error) {
	out := make([]models.Recipe, len(r.recipes))
	copy(out, r.recipes)
	return out, nil
}

// MemoryReferenceRepository serves fixed reference slices.
type MemoryReferenceRepository struct {
	FoodBanks    []models.FoodBank
	NearbyPeople []models.NearbyUser
}

func (r *MemoryReferenceRepository) ListFoodBanks(_ context.Context) ([]models.FoodBank, error) {
	out := make([]models.FoodBank, len(r.FoodBanks))
	copy(out, r.FoodBanks)
	return out, nil
}

func (r *MemoryReferenceRepository) ListNearbyUsers(_ context.Context) ([]models.NearbyUser, error) {
	out := make([]models.NearbyUser, len(r.NearbyPeople))
	copy(out, r.NearbyPeople)
	return out, nil
}
