package delivery

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suryaprakash0010/InfantCareCompass/internal/notification"
)

type NotificationHandler struct {
	service *notification.Service
}

func NewNotificationHandler(service *notification.Service) *NotificationHandler {
	return &NotificationHandler{service: service}
}

func (h *NotificationHandler) ContactUs(c *gin.Context) {
	var req notification.ContactUsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error(), "success": false, "error": true})
		return
	}

	if err := h.service.ContactUs(&req); err != nil {
		log.Printf("[Notification] contact-us error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message", "success": false, "error": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully", "success": true, "error": false})
}

func (h *NotificationHandler) NotifyDoctor(c *gin.Context) {
	var req notification.NotifyDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Doctor ID and channel name are required.", "success": false, "error": true})
		return
	}

	if err := h.service.NotifyDoctor(&req); err != nil {
		if errors.Is(err, notification.ErrDoctorNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": err.Error(), "success": false, "error": true})
			return
		}
		log.Printf("[Notification] notify-doctor error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to notify doctor.", "success": false, "error": true})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Doctor notified successfully via email.", "success": true, "error": false})
}
