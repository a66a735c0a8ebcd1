package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

func (u *UserController) GetProfile(c *gin.Context) {
	profile, err := u.Users.GetProfile(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (u *UserController) UpdateProfile(c *gin.Context) {
	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := u.Users.UpdateProfile(c.GetUint("userID"), input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Perfil actualizado"})
}

func (u *UserController) UpdateNotificationPreferences(c *gin.Context) {
	var input services.NotificationPrefsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := u.Users.UpdateNotificationPreferences(c.GetUint("userID"), input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preferencias actualizadas"})
}

func (u *UserController) UpdateConsent(c *gin.Context) {
	var input services.ConsentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := u.Users.UpdateConsent(c.GetUint("userID"), input); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Consentimientos actualizados"})
}

func (u *UserController) RequestDeletion(c *gin.Context) {
	if err := u.Users.RequestDeletion(c.GetUint("userID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Solicitud de eliminación registrada"})
}
