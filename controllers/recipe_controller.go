package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/THORzero9/FWR-sub000/config"
	"github.com/THORzero9/FWR-sub000/services"
)

type RecipeController struct {
	recipes *services.RecipeService
	cfg     *config.Config
	log     *zap.Logger
}

func NewRecipeController(recipes *services.RecipeService, cfg *config.Config, log *zap.Logger) *RecipeController {
	return &RecipeController{recipes: recipes, cfg: cfg, log: log}
}

// List handles GET /api/recipes.
func (ctl *RecipeController) List(c *gin.Context) {
	recipes, err := ctl.recipes.List(c.Request.Context())
	if err != nil {
		respondError(c, ctl.log, ctl.cfg.Production(), err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// Match handles GET /api/recipes/match/:ingredients, where :ingredients is a
// comma-separated list of names.
func (ctl *RecipeController) Match(c *gin.Context) {
	names := strings.Split(c.Param("ingredients"), ",")
	matched, err := ctl.recipes.MatchByIngredients(c.Request.Context(), names)
	if err != nil {
		respondError(c, ctl.log, ctl.cfg.Production(), err)
		return
	}
	c.JSON(http.StatusOK, matched)
}
