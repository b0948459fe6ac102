package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuestionHandler struct {
	trivia *services.TriviaService
	log    *zap.Logger
}

func NewQuestionHandler(trivia *services.TriviaService, log *zap.Logger) *QuestionHandler {
	return &QuestionHandler{trivia: trivia, log: log}
}

type CreateQuestionRequest struct {
	Question   string  `json:"question" binding:"required" example:"What is the largest lake in Africa?"`
	Answer     string  `json:"answer" binding:"required" example:"Lake Victoria"`
	Category   FlexInt `json:"category" binding:"required,gte=1" swaggertype:"integer" example:"3"`
	Difficulty FlexInt `json:"difficulty" binding:"required,gte=1" swaggertype:"integer" example:"2"`
}

type SearchRequest struct {
	SearchTerm string `json:"searchTerm" example:"title"`
}

type QuestionsResponse struct {
	Questions       []models.Question `json:"questions"`
	TotalQuestions  int64             `json:"total_questions"`
	CurrentCategory *string           `json:"current_category"`
	Categories      map[string]string `json:"categories"`
}

type DeleteQuestionResponse struct {
	Success   bool              `json:"success" example:"true"`
	Message   string            `json:"message" example:"Question successfully deleted"`
	DeleteID  uint              `json:"delete_id" example:"5"`
	Questions []models.Question `json:"questions"`
}

type SearchResponse struct {
	Questions []models.Question `json:"questions"`
	Count     int               `json:"questions_count"`
}

// ListQuestions godoc
// @Summary      List questions
// @Description  Ten questions per page, with the total count and category map
// @Tags         questions
// @Produce      json
// @Param        page query int false "1-based page number" default(1)
// @Success      200 {object} QuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions [get]
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}

	result, err := h.trivia.ListQuestions(c.Request.Context(), page)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			fail(c, h.log, http.StatusNotFound, "no questions", err)
			return
		}
		fail(c, h.log, http.StatusInternalServerError, "list questions failed", err)
		return
	}

	c.JSON(http.StatusOK, QuestionsResponse{
		Questions:      result.Questions,
		TotalQuestions: result.Total,
		Categories:     result.Categories,
	})
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         questions
// @Produce      json
// @Param        id path int true "Question ID"
// @Success      200 {object} DeleteQuestionResponse
// @Failure      404 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Router       /questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := idParam(c, "id")
	if !ok {
		Abort(c, http.StatusNotFound)
		return
	}

	remaining, err := h.trivia.DeleteQuestion(c.Request.Context(), questionID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			fail(c, h.log, http.StatusNotFound, "question not found", err)
			return
		}
		fail(c, h.log, http.StatusUnprocessableEntity, "delete question failed", err)
		return
	}

	requestLogger(c, h.log).Info("question deleted", zap.Uint("question_id", questionID))
	c.JSON(http.StatusOK, DeleteQuestionResponse{
		Success:   true,
		Message:   "Question successfully deleted",
		DeleteID:  questionID,
		Questions: remaining,
	})
}

// CreateQuestion godoc
// @Summary      Add a question
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body CreateQuestionRequest true "Question data"
// @Success      200 {object} models.Question
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, h.log, http.StatusBadRequest, "invalid question payload", err)
		return
	}

	question, err := h.trivia.CreateQuestion(c.Request.Context(), services.QuestionInput{
		Question:   req.Question,
		Answer:     req.Answer,
		CategoryID: uint(req.Category),
		Difficulty: int(req.Difficulty),
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			fail(c, h.log, http.StatusBadRequest, "invalid question", err)
			return
		}
		fail(c, h.log, http.StatusInternalServerError, "create question failed", err)
		return
	}

	requestLogger(c, h.log).Info("question created", zap.Uint("question_id", question.ID))
	c.JSON(http.StatusOK, question)
}

// SearchQuestions godoc
// @Summary      Search questions
// @Description  Case-insensitive substring match on question text
// @Tags         questions
// @Accept       json
// @Produce      json
// @Param        request body SearchRequest true "Search term"
// @Success      200 {object} SearchResponse
// @Failure      404 {object} ErrorResponse
// @Router       /questions/search [post]
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, h.log, http.StatusNotFound, "invalid search payload", err)
		return
	}

	questions, err := h.trivia.SearchQuestions(c.Request.Context(), req.SearchTerm)
	if err != nil {
		fail(c, h.log, http.StatusNotFound, "search failed", err)
		return
	}

	c.JSON(http.StatusOK, SearchResponse{Questions: questions, Count: len(questions)})
}
