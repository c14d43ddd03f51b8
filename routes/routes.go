package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/THORzero9/FWR-sub000/config"
	"github.com/THORzero9/FWR-sub000/controllers"
	"github.com/THORzero9/FWR-sub000/middlewares"
	"github.com/THORzero9/FWR-sub000/repository"
	"github.com/THORzero9/FWR-sub000/services"
)

// Deps bundles everything the router needs. Tests pass memory-backed
// services; main wires the Postgres-backed ones.
type Deps struct {
	Cfg       *config.Config
	Log       *zap.Logger
	Auth      *services.AuthService
	Items     *services.FoodItemService
	Recipes   *services.RecipeService
	Stats     *services.StatsService
	Reference repository.ReferenceRepository
}

func SetupRouter(d Deps) *gin.Engine {
	if d.Cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestTrace())
	r.Use(middlewares.Identity(d.Auth, d.Cfg.SessionCookieName))

	authCtl := controllers.NewAuthController(d.Auth, d.Cfg, d.Log)
	itemCtl := controllers.NewFoodItemController(d.Items, d.Cfg, d.Log)
	recipeCtl := controllers.NewRecipeController(d.Recipes, d.Cfg, d.Log)
	statsCtl := controllers.NewStatsController(d.Stats, d.Cfg, d.Log)
	refCtl := controllers.NewReferenceController(d.Reference, d.Cfg, d.Log)

	api := r.Group("/api")
	{
		api.POST("/register", authCtl.Register)
		api.POST("/login", authCtl.Login)
		api.POST("/logout", authCtl.Logout)

		api.GET("/recipes", recipeCtl.List)
		api.GET("/recipes/match/:ingredients", recipeCtl.Match)
		api.GET("/food-banks", refCtl.FoodBanks)
		api.GET("/nearby-users", refCtl.NearbyUsers)

		protected := api.Group("")
		protected.Use(middlewares.RequireAuth())
		{
			protected.GET("/user", authCtl.CurrentUser)
			protected.GET("/stats", statsCtl.Get)
			protected.GET("/food-items", itemCtl.List)
			protected.GET("/food-items/:id", itemCtl.Get)
			protected.POST("/food-items", itemCtl.Create)
			protected.PATCH("/food-items/:id", itemCtl.Update)
			protected.DELETE("/food-items/:id", itemCtl.Delete)
		}
	}

	return r
}
