package delivery

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "github.com/suryaprakash0010/InfantCareCompass/internal/auth/delivery"
	"github.com/suryaprakash0010/InfantCareCompass/internal/consultation/usecase"
)

type ConsultationHandler struct {
	consultationUsecase usecase.ConsultationUsecase
}

func NewConsultationHandler(consultationUsecase usecase.ConsultationUsecase) *ConsultationHandler {
	return &ConsultationHandler{consultationUsecase: consultationUsecase}
}

func (h *ConsultationHandler) Book(c *gin.Context) {
	principal, ok := authdelivery.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed. Please log in again.", "success": false, "error": true})
		return
	}

	var req usecase.BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false, "error": true})
		return
	}

	consultation, err := h.consultationUsecase.Book(principal.UserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrDoctorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error(), "success": false, "error": true})
		case errors.Is(err, usecase.ErrDoctorNotApproved):
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false, "error": true})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "success": false, "error": true})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Consultation requested", "data": consultation, "success": true, "error": false})
}

// MyConsultations lists the caller's own consultation requests.
func (h *ConsultationHandler) MyConsultations(c *gin.Context) {
	principal, ok := authdelivery.PrincipalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Authentication failed. Please log in again.", "success": false, "error": true})
		return
	}

	consultations, err := h.consultationUsecase.ListForParent(principal.UserID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "success": false, "error": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Consultations retrieved successfully", "data": consultations, "success": true, "error": false})
}

// DoctorInfo is the public directory of approved doctors.
func (h *ConsultationHandler) DoctorInfo(c *gin.Context) {
	doctors, err := h.consultationUsecase.ApprovedDoctors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve doctors", "success": false, "error": true})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Doctors retrieved successfully", "data": doctors, "success": true, "error": false})
}
