package delivery

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suryaprakash0010/InfantCareCompass/internal/admin/usecase"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

type statusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminHandler) DashboardAnalytics(c *gin.Context) {
	analytics, err := h.adminUsecase.DashboardAnalytics()
	if err != nil {
		log.Printf("[Admin] analytics error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve dashboard analytics", "success": false, "error": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dashboard analytics retrieved successfully", "data": analytics, "success": true, "error": false})
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminUsecase.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve users", "success": false, "error": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Users retrieved successfully", "data": users, "success": true, "error": false})
}

func (h *AdminHandler) ListDoctors(c *gin.Context) {
	doctors, err := h.adminUsecase.ListDoctors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve doctors", "success": false, "error": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctors retrieved successfully", "data": doctors, "success": true, "error": false})
}

func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status. Must be 'active', 'inactive', or 'suspended'", "success": false, "error": true})
		return
	}

	user, err := h.adminUsecase.UpdateUserStatus(c.Param("userId"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status. Must be 'active', 'inactive', or 'suspended'", "success": false, "error": true})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found", "success": false, "error": true})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update user status", "success": false, "error": true})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User status updated to " + req.Status, "data": user, "success": true, "error": false})
}

func (h *AdminHandler) ReviewDoctor(c *gin.Context) {
	var req statusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status", "success": false, "error": true})
		return
	}

	doctor, err := h.adminUsecase.ReviewDoctor(c.Param("doctorId"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidStatus):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status", "success": false, "error": true})
		case errors.Is(err, usecase.ErrDoctorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Doctor not found", "success": false, "error": true})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "success": false, "error": true})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Doctor status updated to " + req.Status, "data": doctor, "success": true, "error": false})
}
