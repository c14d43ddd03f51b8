package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/THORzero9/FWR-sub000/config"
	"github.com/THORzero9/FWR-sub000/middlewares"
	"github.com/THORzero9/FWR-sub000/services"
)

type FoodItemController struct {
	items *services.FoodItemService
	cfg   *config.Config
	log   *zap.Logger
}

func NewFoodItemController(items *services.FoodItemService, cfg *config.Config, log *zap.Logger) *FoodItemController {
	return &FoodItemController{items: items, cfg: cfg, log: log}
}

type createItemInput struct {
	Name       string    `json:"name"`
	Category   string    `json:"category"`
	Quantity   int       `json:"quantity"`
	Unit       string    `json:"unit"`
	ExpiryDate time.Time `json:"expiry_date"`
	Favorite   bool      `json:"favorite"`
}

type updateItemInput struct {
	Name       *string    `json:"name"`
	Category   *string    `json:"category"`
	Quantity   *int       `json:"quantity"`
	Unit       *string    `json:"unit"`
	ExpiryDate *time.Time `json:"expiry_date"`
	Favorite   *bool      `json:"favorite"`
}

// List handles GET /api/food-items.
func (ctl *FoodItemController) List(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	items, err := ctl.items.List(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, ctl.log, ctl.cfg.Production(), err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get handles GET /api/food-items/:id. An item owned by someone else is
// indistinguishable from a nonexistent one.
func (ctl *FoodItemController) Get(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	id, ok := itemID(c)
	if !ok {
		return
	}

	item, err := ctl.items.Get(c.Request.Context(), id, user.ID)
	if err != nil {
		respondError(c, ctl.log, ctl.cfg.Production(), err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create handles POST /api/food-items. Owner and added date are assigned
// server-side; any id/owner fields in the body are ignored.
func (ctl *FoodItemController) Create(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	var input createItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	item, err := ctl.items.Add(c.Request.Context(), services.AddItemInput{
		Name:       input.Name,
		Category:   input.Category,
		Quantity:   input.Quantity,
		Unit:       input.Unit,
		ExpiryDate: input.ExpiryDate,
		Favorite:   input.Favorite,
	}, user.ID)
	if err != nil {
		respondError(c, ctl.log, ctl.cfg.Production(), err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update handles PATCH /api/food-items/:id.
func (ctl *FoodItemController) Update(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	id, ok := itemID(c)
	if !ok {
		return
	}

	var input updateItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	item, err := ctl.items.Update(c.Request.Context(), id, user.ID, services.UpdateItemInput{
		Name:       input.Name,
		Category:   input.Category,
		Quantity:   input.Quantity,
		Unit:       input.Unit,
		ExpiryDate: input.ExpiryDate,
		Favorite:   input.Favorite,
	})
	if err != nil {
		respondError(c, ctl.log, ctl.cfg.Production(), err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/food-items/:id.
func (ctl *FoodItemController) Delete(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	id, ok := itemID(c)
	if !ok {
		return
	}

	removed, err := ctl.items.Delete(c.Request.Context(), id, user.ID)
	if err != nil {
		respondError(c, ctl.log, ctl.cfg.Production(), err)
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"message": "food item not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// itemID parses the :id param. A malformed id cannot name any item, so it
// gets the same not-found response as an unknown one.
func itemID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "food item not found"})
		return 0, false
	}
	return uint(id), true
}
