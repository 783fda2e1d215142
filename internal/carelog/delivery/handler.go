package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "github.com/suryaprakash0010/InfantCareCompass/internal/auth/delivery"
	"github.com/suryaprakash0010/InfantCareCompass/internal/carelog/dto"
	"github.com/suryaprakash0010/InfantCareCompass/internal/carelog/usecase"
)

type CarelogHandler struct {
	carelogUsecase usecase.CarelogUsecase
}

func NewCarelogHandler(carelogUsecase usecase.CarelogUsecase) *CarelogHandler {
	return &CarelogHandler{carelogUsecase: carelogUsecase}
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

func respondCarelogError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, usecase.ErrLogNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error(), "success": false, "error": true})
	case errors.Is(err, usecase.ErrInvalidFeedType),
		errors.Is(err, usecase.ErrInvalidQuality),
		errors.Is(err, usecase.ErrInvalidInterval):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false, "error": true})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "success": false, "error": true})
	}
}

func (h *CarelogHandler) CreateFeedLog(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.FeedLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false, "error": true})
		return
	}

	log, err := h.carelogUsecase.CreateFeedLog(userID, &req)
	if err != nil {
		respondCarelogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Feed log created", "data": log, "success": true, "error": false})
}

func (h *CarelogHandler) GetFeedLogs(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	logs, err := h.carelogUsecase.ListFeedLogs(userID)
	if err != nil {
		respondCarelogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feed logs retrieved", "data": logs, "success": true, "error": false})
}

func (h *CarelogHandler) UpdateFeedLog(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.FeedLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false, "error": true})
		return
	}

	log, err := h.carelogUsecase.UpdateFeedLog(userID, c.Param("id"), &req)
	if err != nil {
		respondCarelogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feed log updated", "data": log, "success": true, "error": false})
}

func (h *CarelogHandler) DeleteFeedLog(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.carelogUsecase.DeleteFeedLog(userID, c.Param("id")); err != nil {
		respondCarelogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Feed log deleted", "success": true, "error": false})
}

func (h *CarelogHandler) CreateSleepLog(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.SleepLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false, "error": true})
		return
	}

	log, err := h.carelogUsecase.CreateSleepLog(userID, &req)
	if err != nil {
		respondCarelogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Sleep log created", "data": log, "success": true, "error": false})
}

func (h *CarelogHandler) GetSleepLogs(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	logs, err := h.carelogUsecase.ListSleepLogs(userID)
	if err != nil {
		respondCarelogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sleep logs retrieved", "data": logs, "success": true, "error": false})
}

func (h *CarelogHandler) UpdateSleepLog(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req dto.SleepLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false, "error": true})
		return
	}

	log, err := h.carelogUsecase.UpdateSleepLog(userID, c.Param("id"), &req)
	if err != nil {
		respondCarelogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sleep log updated", "data": log, "success": true, "error": false})
}

func (h *CarelogHandler) DeleteSleepLog(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	if err := h.carelogUsecase.DeleteSleepLog(userID, c.Param("id")); err != nil {
		respondCarelogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sleep log deleted", "success": true, "error": false})
}
