package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mkhadiri/mentorhub/internal/middleware"
	"github.com/mkhadiri/mentorhub/internal/policy"
	"github.com/mkhadiri/mentorhub/internal/service"
)

// Uniform JSON envelope shared by every handler.

func respondOK(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message, "data": data})
}

func respondCreated(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": message, "data": data})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondServiceError maps service sentinel errors onto HTTP statuses. A
// policy denial is always a 403, never a 5xx.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		respondError(c, http.StatusForbidden, "Forbidden")
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, "Not found")
	case errors.Is(err, service.ErrEmailTaken):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrNotVerified):
		respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrInvalidOtp),
		errors.Is(err, service.ErrOtpExpired),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidType),
		errors.Is(err, service.ErrInvalidRole):
		respondError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func currentActor(c *gin.Context) (policy.Actor, bool) {
	actor, ok := middleware.CurrentActor(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "Unauthorized")
	}
	return actor, ok
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid ID format")
		return 0, false
	}
	return uint(id), true
}
