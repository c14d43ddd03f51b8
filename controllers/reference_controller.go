package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/THORzero9/FWR-sub000/config"
	"github.com/THORzero9/FWR-sub000/repository"
)

// ReferenceController serves the static food-bank and nearby-user data
// behind the donation and sharing pages.
type ReferenceController struct {
	reference repository.ReferenceRepository
	cfg       *config.Config
	log       *zap.Logger
}

func NewReferenceController(reference repository.ReferenceRepository, cfg *config.Config, log *zap.Logger) *ReferenceController {
	return &ReferenceController{reference: reference, cfg: cfg, log: log}
}

// FoodBanks handles GET /api/food-banks.
func (ctl *ReferenceController) FoodBanks(c *gin.Context) {
	banks, err := ctl.reference.ListFoodBanks(c.Request.Context())
	if err != nil {
		respondError(c, ctl.log, ctl.cfg.Production(), err)
		return
	}
	c.JSON(http.StatusOK, banks)
}

// NearbyUsers handles GET /api/nearby-users.
func (ctl *ReferenceController) NearbyUsers(c *gin.Context) {
	users, err := ctl.reference.ListNearbyUsers(c.Request.Context())
	if err != nil {
		respondError(c, ctl.log, ctl.cfg.Production(), err)
		return
	}
	c.JSON(http.StatusOK, users)
}
