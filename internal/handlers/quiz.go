package handlers

import (
	"net/http"

	"trivia-api/internal/metrics"
	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type QuizHandler struct {
	trivia *services.TriviaService
	log    *zap.Logger
}

func NewQuizHandler(trivia *services.TriviaService, log *zap.Logger) *QuizHandler {
	return &QuizHandler{trivia: trivia, log: log}
}

// QuizCategory is echoed back to the client as quizCategory. ID 0 means
// every category.
type QuizCategory struct {
	ID   FlexInt `json:"id" binding:"gte=0" swaggertype:"integer" example:"0"`
	Type string  `json:"type,omitempty" example:"click"`
}

type QuizRequest struct {
	PreviousQuestions *[]uint       `json:"previous_questions" binding:"required"`
	QuizCategory      *QuizCategory `json:"quiz_category" binding:"required"`
}

type QuizResponse struct {
	Success           bool             `json:"success" example:"true"`
	Question          *models.Question `json:"question"`
	PreviousQuestions []uint           `json:"previous_questions"`
	QuizCategory      QuizCategory     `json:"quizCategory"`
}

// NextQuestion godoc
// @Summary      Next quiz question
// @Description  A random question from the category not yet asked; null once all have been asked
// @Tags         quizzes
// @Accept       json
// @Produce      json
// @Param        request body QuizRequest true "Quiz state"
// @Success      200 {object} QuizResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /quizzes [post]
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req QuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, h.log, http.StatusBadRequest, "invalid quiz payload", err)
		return
	}

	previous := *req.PreviousQuestions
	question, err := h.trivia.NextQuizQuestion(c.Request.Context(), uint(req.QuizCategory.ID), previous)
	if err != nil {
		fail(c, h.log, http.StatusInternalServerError, "quiz selection failed", err)
		return
	}

	outcome := metrics.QuizOutcomeQuestion
	if question == nil {
		outcome = metrics.QuizOutcomeExhausted
	}
	metrics.QuizQuestionsServed.WithLabelValues(outcome).Inc()

	c.JSON(http.StatusOK, QuizResponse{
		Success:           true,
		Question:          question,
		PreviousQuestions: previous,
		QuizCategory:      *req.QuizCategory,
	})
}
