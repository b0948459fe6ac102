package handlers

import (
	"errors"
	"net/http"

	"trivia-api/internal/models"
	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	trivia *services.TriviaService
	log    *zap.Logger
}

func NewCategoryHandler(trivia *services.TriviaService, log *zap.Logger) *CategoryHandler {
	return &CategoryHandler{trivia: trivia, log: log}
}

type CategoriesResponse struct {
	Categories map[string]string `json:"categories"`
	Available  int               `json:"Available_categories" example:"6"`
}

type CategoryQuestionsResponse struct {
	Questions  []models.Question `json:"questions"`
	Count      int               `json:"questions_count"`
	CategoryID uint              `json:"category_id"`
}

// ListCategories godoc
// @Summary      List categories
// @Description  Category type names keyed by id
// @Tags         categories
// @Produce      json
// @Success      200 {object} CategoriesResponse
// @Failure      500 {object} ErrorResponse
// @Router       /categories [get]
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.trivia.CategoryMap(c.Request.Context())
	if err != nil {
		fail(c, h.log, http.StatusInternalServerError, "list categories failed", err)
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Categories: categories, Available: len(categories)})
}

// QuestionsByCategory godoc
// @Summary      List questions in a category
// @Tags         categories
// @Produce      json
// @Param        id path int true "Category ID"
// @Success      200 {object} CategoryQuestionsResponse
// @Failure      404 {object} ErrorResponse
// @Router       /categories/{id}/questions [get]
func (h *CategoryHandler) QuestionsByCategory(c *gin.Context) {
	categoryID, ok := idParam(c, "id")
	if !ok {
		Abort(c, http.StatusNotFound)
		return
	}

	questions, err := h.trivia.QuestionsByCategory(c.Request.Context(), categoryID)
	if err != nil {
		msg := "questions by category failed"
		if errors.Is(err, services.ErrNotFound) {
			msg = "category not found"
		}
		fail(c, h.log, http.StatusNotFound, msg, err)
		return
	}

	c.JSON(http.StatusOK, CategoryQuestionsResponse{
		Questions:  questions,
		Count:      len(questions),
		CategoryID: categoryID,
	})
}
