package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	Notifications *services.NotificationService
	Push          *services.PushService
}

func NewNotificationController(notifications *services.NotificationService, push *services.PushService) *NotificationController {
	return &NotificationController{Notifications: notifications, Push: push}
}

func (n *NotificationController) List(c *gin.Context) {
	items, err := n.Notifications.ListFor(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": items})
}

// POST /coach/notifications
func (n *NotificationController) Create(c *gin.Context) {
	var input services.NotificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := n.Notifications.Create(c.GetUint("userID"), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// POST /notifications/:id/read
func (n *NotificationController) MarkRead(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := n.Notifications.MarkRead(id, c.GetUint("userID")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notificación leída"})
}

type registerDeviceReq struct {
	Platform string `json:"platform" binding:"required"`
	Token    string `json:"token" binding:"required"`
}

// POST /notifications/devices
func (n *NotificationController) RegisterDevice(c *gin.Context) {
	var req registerDeviceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dev, err := n.Push.RegisterDevice(c.GetUint("userID"), req.Platform, req.Token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"device_id": dev.ID, "platform": dev.Platform})
}

type toggleReq struct {
	Enabled *bool `json:"enabled" binding:"required"`
}

// POST /notifications/devices/toggle
func (n *NotificationController) ToggleDevices(c *gin.Context) {
	var req toggleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	if err := n.Push.SetEnabled(c.GetUint("userID"), *req.Enabled); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Dispositivos actualizados", "enabled": *req.Enabled})
}
