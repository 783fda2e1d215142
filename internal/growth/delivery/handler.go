package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "github.com/suryaprakash0010/InfantCareCompass/internal/auth/delivery"
	"github.com/suryaprakash0010/InfantCareCompass/internal/growth/dto"
	"github.com/suryaprakash0010/InfantCareCompass/internal/growth/usecase"
)

type GrowthHandler struct {
	growthUsecase usecase.GrowthUsecase
}

func NewGrowthHandler(growthUsecase usecase.GrowthUsecase) *GrowthHandler {
	return &GrowthHandler{growthUsecase: growthUsecase}
}

func callerID(c *gin.Context) (string, bool) {
	principal, ok := authdelivery.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "Authentication failed. Please log in again.",
			"success": false,
			"error":   true,
		})
		return "", false
	}
	return principal.UserID, true
}

func respondGrowthError(c *gin.Context, err error) {
	if errors.Is(err, usecase.ErrGrowthLogNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error(), "success": false, "error": true})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "success": false, "error": true})
}

func (h *GrowthHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.GrowthLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false, "error": true})
		return
	}

	log, err := h.growthUsecase.Create(userID, &req)
	if err != nil {
		respondGrowthError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Growth log created", "data": log, "success": true, "error": false})
}

func (h *GrowthHandler) List(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	logs, err := h.growthUsecase.List(userID)
	if err != nil {
		respondGrowthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Growth logs retrieved", "data": logs, "success": true, "error": false})
}

func (h *GrowthHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	log, err := h.growthUsecase.Get(userID, c.Param("id"))
	if err != nil {
		respondGrowthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Growth log retrieved", "data": log, "success": true, "error": false})
}

func (h *GrowthHandler) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.GrowthLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false, "error": true})
		return
	}

	log, err := h.growthUsecase.Update(userID, c.Param("id"), &req)
	if err != nil {
		respondGrowthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Growth log updated", "data": log, "success": true, "error": false})
}

func (h *GrowthHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.growthUsecase.Delete(userID, c.Param("id")); err != nil {
		respondGrowthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Growth log deleted", "success": true, "error": false})
}

func (h *GrowthHandler) Stats(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	stats, err := h.growthUsecase.Stats(userID)
	if err != nil {
		respondGrowthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Growth stats retrieved", "data": stats, "success": true, "error": false})
}

func (h *GrowthHandler) UpdateReminderSettings(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.ReminderSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false, "error": true})
		return
	}

	settings, err := h.growthUsecase.UpdateReminderSettings(userID, &req)
	if err != nil {
		respondGrowthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reminder settings updated", "data": settings, "success": true, "error": false})
}
