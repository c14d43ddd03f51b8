package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/THORzero9/FWR-sub000/config"
	"github.com/THORzero9/FWR-sub000/middlewares"
	"github.com/THORzero9/FWR-sub000/models"
	"github.com/THORzero9/FWR-sub000/services"
)

type AuthController struct {
	auth *services.AuthService
	cfg  *config.Config
	log  *zap.Logger
}

func NewAuthController(auth *services.AuthService, cfg *config.Config, log *zap.Logger) *AuthController {
	return &AuthController{auth: auth, cfg: cfg, log: log}
}

type registerInput struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

type loginInput struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	RememberMe bool   `json:"rememberMe"`
}

// Register handles POST /api/register.
func (ctl *AuthController) Register(c *gin.Context) {
	var input registerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, session, err := ctl.auth.Register(c.Request.Context(), input.Username, input.Email, input.Password, input.RememberMe)
	if err != nil {
		respondError(c, ctl.log, ctl.cfg.Production(), err)
		return
	}

	ctl.setSessionCookie(c, session)
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /api/login.
func (ctl *AuthController) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, session, err := ctl.auth.Login(c.Request.Context(), input.Username, input.Password, input.RememberMe)
	if err != nil {
		respondError(c, ctl.log, ctl.cfg.Production(), err)
		return
	}

	ctl.setSessionCookie(c, session)
	c.JSON(http.StatusOK, user)
}

// Logout handles POST /api/logout. Idempotent: a missing or already-dead
// session still gets a 200 and a cleared cookie.
func (ctl *AuthController) Logout(c *gin.Context) {
	sessionID, _ := c.Cookie(ctl.cfg.SessionCookieName)
	if err := ctl.auth.Logout(c.Request.Context(), sessionID); err != nil {
		respondError(c, ctl.log, ctl.cfg.Production(), err)
		return
	}

	ctl.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// CurrentUser handles GET /api/user.
func (ctl *AuthController) CurrentUser(c *gin.Context) {
	user, _ := middlewares.CurrentUser(c)
	c.JSON(http.StatusOK, user)
}

func (ctl *AuthController) setSessionCookie(c *gin.Context, session *models.Session) {
	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ctl.cfg.SessionCookieName, session.ID, maxAge, "/", "", ctl.cfg.CookieSecure(), true)
}

func (ctl *AuthController) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(ctl.cfg.SessionCookieName, "", -1, "/", "", ctl.cfg.CookieSecure(), true)
}
