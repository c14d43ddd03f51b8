package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/THORzero9/FWR-sub000/config"
	"github.com/THORzero9/FWR-sub000/middlewares"
	"github.com/THORzero9/FWR-sub000/services"
)

type StatsController struct {
	stats *services.StatsService
	cfg   *config.Config
	log   *zap.Logger
}

func NewStatsController(stats *services.StatsService, cfg *config.Config, log *zap.Logger) *StatsController {
	return &StatsController{stats: stats, cfg: cfg, log: log}
}

// Get handles GET /api/stats for the authenticated user.
func (ctl *StatsController) Get(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	stats, err := ctl.stats.ForUser(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, ctl.log, ctl.cfg.Production(), err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
