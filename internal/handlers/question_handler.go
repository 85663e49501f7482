package handlers

import (
	"context"
	"net/http"
	"strconv"

	"quizmaster-service/internal/event"
	"quizmaster-service/internal/models"
	"quizmaster-service/internal/seed"
	"quizmaster-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	Service   *service.QuestionService
	Publisher *event.Publisher
}

func NewQuestionHandler(s *service.QuestionService, pub *event.Publisher) *QuestionHandler {
	return &QuestionHandler{Service: s, Publisher: pub}
}

// ListQuestions returns the active catalog, optionally filtered by category
// and difficulty query params.
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "0"), 10, 64)
	questions, err := h.Service.ListQuestions(context.Background(), c.Query("category"), c.Query("difficulty"), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": questions, "count": len(questions)})
}

func (h *QuestionHandler) GetQuestion(c *gin.Context) {
	id := c.Param("id")
	question, err := h.Service.GetQuestion(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Question not found"})
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *QuestionHandler) ListCategories(c *gin.Context) {
	categories, err := h.Service.Categories(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var question models.Question
	if err := c.ShouldBindJSON(&question); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id, err := h.Service.CreateQuestion(context.Background(), &question)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	question.ID = id
	h.Publisher.Publish("quiz.question.created", gin.H{"questionId": id, "category": question.Category})
	c.JSON(http.StatusCreated, question)
}

func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	id := c.Param("id")
	var update map[string]interface{}
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateQuestion(context.Background(), id, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "updated"})
}

// DeleteQuestion soft-deletes so past attempts keep resolving their
// question snapshots.
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteQuestion(context.Background(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// BulkImport validates the entire batch before inserting any of it.
func (h *QuestionHandler) BulkImport(c *gin.Context) {
	var req struct {
		Questions []models.Question `json:"questions" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.BulkImport(context.Background(), req.Questions); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"imported": len(req.Questions)})
}

func (h *QuestionHandler) ExportQuestions(c *gin.Context) {
	questions, err := h.Service.Export(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=questions.json")
	c.JSON(http.StatusOK, questions)
}

// SeedCatalog loads the starter question set. Intended for fresh deployments.
func (h *QuestionHandler) SeedCatalog(c *gin.Context) {
	catalog := seed.StarterCatalog()
	if err := h.Service.BulkImport(context.Background(), catalog); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"seeded": len(catalog)})
}
