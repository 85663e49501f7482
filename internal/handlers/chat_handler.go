package handlers

import (
	"context"
	"net/http"

	"quizmaster-service/internal/event"
	"quizmaster-service/internal/middleware"
	"quizmaster-service/internal/models"
	"quizmaster-service/internal/service"
	"quizmaster-service/internal/tutor"

	"github.com/gin-gonic/gin"
)

type ChatHandler struct {
	Resolver  *tutor.Resolver
	Users     *service.UserService
	Publisher *event.Publisher
}

func NewChatHandler(resolver *tutor.Resolver, users *service.UserService, pub *event.Publisher) *ChatHandler {
	return &ChatHandler{Resolver: resolver, Users: users, Publisher: pub}
}

// Chat answers one tutor message. The user record and recent attempts feed
// the prompt; an unknown user still gets a generic reply.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID := middleware.UserID(c)
	user, err := h.Users.GetUser(context.Background(), userID)
	if err != nil {
		user = nil
	}
	var attempts []models.QuizAttempt
	if user != nil {
		attempts, _ = h.Users.UserAttempts(context.Background(), userID, 10)
	}

	reply, source := h.Resolver.Respond(c.Request.Context(), req.Message, user, attempts)
	h.Publisher.Publish("quiz.chat.responded", gin.H{"userId": userID, "source": source})
	c.JSON(http.StatusOK, gin.H{"response": reply, "source": source})
}
