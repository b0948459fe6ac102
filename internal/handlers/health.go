package handlers

import (
	"net/http"

	"trivia-api/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type HealthHandler struct {
	trivia *services.TriviaService
	log    *zap.Logger
}

func NewHealthHandler(trivia *services.TriviaService, log *zap.Logger) *HealthHandler {
	return &HealthHandler{trivia: trivia, log: log}
}

// Health godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      500 {object} ErrorResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.trivia.Ping(c.Request.Context()); err != nil {
		fail(c, h.log, http.StatusInternalServerError, "database ping failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
