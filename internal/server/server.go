package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "trivia-api/docs"
	"trivia-api/internal/handlers"
	"trivia-api/internal/middleware"
	"trivia-api/internal/services"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	log    *zap.Logger
}

func New(trivia *services.TriviaService, log *zap.Logger) *Server {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(middleware.Metrics())
	r.Use(ginzap.CustomRecoveryWithZap(log, true, func(c *gin.Context, _ any) {
		handlers.Abort(c, http.StatusInternalServerError)
	}))
	r.Use(middleware.CORS())

	s := &Server{router: r, log: log}
	s.registerRoutes(trivia)
	return s
}

func (s *Server) registerRoutes(trivia *services.TriviaService) {
	categories := handlers.NewCategoryHandler(trivia, s.log)
	questions := handlers.NewQuestionHandler(trivia, s.log)
	quiz := handlers.NewQuizHandler(trivia, s.log)
	health := handlers.NewHealthHandler(trivia, s.log)

	r := s.router
	r.NoRoute(handlers.NotFound)

	r.GET("/health", health.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/categories", categories.ListCategories)
	r.GET("/categories/:id/questions", categories.QuestionsByCategory)

	r.GET("/questions", questions.ListQuestions)
	r.POST("/questions", questions.CreateQuestion)
	r.POST("/questions/search", questions.SearchQuestions)
	r.DELETE("/questions/:id", questions.DeleteQuestion)

	r.POST("/quizzes", quiz.NextQuestion)
}

// Router returns the gin engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Run serves on addr until ctx is cancelled, then drains in-flight
// requests for at most shutdownTimeout.
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
