package handlers

import (
	"context"
	"net/http"

	"quizmaster-service/internal/event"
	"quizmaster-service/internal/middleware"
	"quizmaster-service/internal/models"
	"quizmaster-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Service   *service.SessionService
	Settings  *service.SettingsService
	Publisher *event.Publisher
}

func NewSessionHandler(s *service.SessionService, settings *service.SettingsService, pub *event.Publisher) *SessionHandler {
	return &SessionHandler{Service: s, Settings: settings, Publisher: pub}
}

// StartSession creates a new adaptive quiz session for the caller.
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req struct {
		Category string `json:"category"`
	}
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if settings, err := h.Settings.Get(context.Background()); err == nil && settings.MaintenanceMode {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Quizzes are temporarily unavailable for maintenance"})
		return
	}

	userID := middleware.UserID(c)
	session, err := h.Service.Start(context.Background(), userID, req.Category)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.Publisher.Publish("quiz.session.created", gin.H{
		"sessionId":    session.ID,
		"userId":       userID,
		"category":     req.Category,
		"questions":    len(session.Questions),
		"usedFallback": session.UsedFallback,
	})
	c.JSON(http.StatusCreated, session)
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	id := c.Param("id")
	session, err := h.Service.Get(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}
	if session.UserID != middleware.UserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitAnswer scores one answer and advances the session. The response is
// the updated session; when the run just completed it carries the summary.
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	var req struct {
		OptionIndex *int `json:"optionIndex" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionID := c.Param("id")
	userID := middleware.UserID(c)
	session, err := h.Service.SubmitAnswer(context.Background(), sessionID, userID, *req.OptionIndex)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Publisher.Publish("quiz.answer.submitted", gin.H{
		"sessionId":  sessionID,
		"userId":     userID,
		"index":      session.CurrentIndex - 1,
		"difficulty": session.Difficulty,
	})
	if session.Status == models.SessionCompleted {
		h.Publisher.Publish("quiz.session.completed", gin.H{
			"sessionId":  sessionID,
			"userId":     userID,
			"percentage": session.Summary.Percentage,
			"category":   session.Summary.Category,
		})
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) AbandonSession(c *gin.Context) {
	sessionID := c.Param("id")
	if err := h.Service.Abandon(context.Background(), sessionID, middleware.UserID(c)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "abandoned"})
}
