package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/THORzero9/FWR-sub000/apperrors"
	"github.com/THORzero9/FWR-sub000/utils"
)

// respondError maps a typed error to its JSON failure shape. Validation
// errors carry field-level details; anything untyped is logged with the
// request trace id and surfaced as a generic message in production.
func respondError(c *gin.Context, log *zap.Logger, production bool, err error) {
	var verr *apperrors.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation failed",
			"details": verr.Details,
		})
		return
	}

	status := apperrors.Status(err)
	if status != http.StatusInternalServerError {
		c.JSON(status, gin.H{"message": err.Error()})
		return
	}

	log.Error("request failed",
		zap.String("trace_id", utils.TraceID(c.Request.Context())),
		zap.String("path", c.FullPath()),
		zap.Error(err))
	message := "Internal server error"
	if !production {
		message = err.Error()
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": message})
}
