package handlers

import (
	"context"
	"net/http"

	"quizmaster-service/internal/service"

	"github.com/gin-gonic/gin"

	"go.mongodb.org/mongo-driver/bson"
)

type SettingsHandler struct {
	Service *service.SettingsService
}

func NewSettingsHandler(s *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{Service: s}
}

// GetSettings returns the app settings singleton, falling back to defaults
// when nothing has been saved yet.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.Service.Get(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.Update(context.Background(), update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	settings, err := h.Service.Get(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, settings)
}
