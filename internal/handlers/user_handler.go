package handlers

import (
	"context"
	"net/http"
	"strconv"

	"quizmaster-service/internal/middleware"
	"quizmaster-service/internal/models"
	"quizmaster-service/internal/service"

	"github.com/gin-gonic/gin"

	"go.mongodb.org/mongo-driver/bson"
)

type UserHandler struct {
	Service *service.UserService
}

func NewUserHandler(s *service.UserService) *UserHandler {
	return &UserHandler{Service: s}
}

// Register creates the user record on first sign-in. The identity comes from
// the auth middleware; the body carries profile fields only.
func (h *UserHandler) Register(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
		Name  string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		ID:    middleware.UserID(c),
		Email: req.Email,
		Name:  req.Name,
	}
	if err := h.Service.Register(context.Background(), user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, user)
}

func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.Service.GetUser(context.Background(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateMe(c *gin.Context) {
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateProfile(context.Background(), middleware.UserID(c), update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

// Leaderboard ranks users by total points.
func (h *UserHandler) Leaderboard(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
	users, err := h.Service.Leaderboard(context.Background(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"leaderboard": users})
}

// MyProgress returns the caller's per-category aggregates.
func (h *UserHandler) MyProgress(c *gin.Context) {
	progress, err := h.Service.UserProgress(context.Background(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

// MyAttempts returns the caller's recent attempt history, newest first.
func (h *UserHandler) MyAttempts(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)
	attempts, err := h.Service.UserAttempts(context.Background(), middleware.UserID(c), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}
