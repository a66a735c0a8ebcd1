package controllers

import (
	"net/http"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type PhotoController struct {
	Photos *services.PhotoService
}

func NewPhotoController(photos *services.PhotoService) *PhotoController {
	return &PhotoController{Photos: photos}
}

func (p *PhotoController) List(c *gin.Context) {
	photos, err := p.Photos.List(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos})
}

type uploadPhotoReq struct {
	Phase       string `json:"phase" binding:"required"`
	ImageBase64 string `json:"image_base64" binding:"required"`
	Caption     string `json:"caption"`
}

// POST /photos
func (p *PhotoController) Upload(c *gin.Context) {
	var req uploadPhotoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	photo, err := p.Photos.Upload(c.GetUint("userID"), req.Phase, req.ImageBase64, req.Caption)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// DELETE /photos/:id
func (p *PhotoController) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := p.Photos.Delete(c.GetUint("userID"), id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Foto eliminada"})
}
