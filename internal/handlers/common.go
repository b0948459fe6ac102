package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"trivia-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// ErrorResponse is the body of every failed request. Error always equals
// the HTTP status.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   int    `json:"error" example:"404"`
	Message string `json:"message" example:"Data Not Found"`
}

var errorMessages = map[int]string{
	http.StatusBadRequest:          "Bad Request",
	http.StatusNotFound:            "Data Not Found",
	http.StatusUnprocessableEntity: "Data Not Processable",
	http.StatusInternalServerError: "Internal Server Error",
}

// Abort renders one of the four error kinds and stops the handler chain.
// Any other status is rendered as an internal error.
func Abort(c *gin.Context, status int) {
	msg, ok := errorMessages[status]
	if !ok {
		status = http.StatusInternalServerError
		msg = errorMessages[status]
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Success: false, Error: status, Message: msg})
}

// NotFound is mounted as the router's NoRoute handler.
func NotFound(c *gin.Context) {
	Abort(c, http.StatusNotFound)
}

func requestLogger(c *gin.Context, log *zap.Logger) *zap.Logger {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return log.With(zap.String("request_id", id))
	}
	return log
}

// fail logs err and renders status.
func fail(c *gin.Context, log *zap.Logger, status int, msg string, err error) {
	fields := []zap.Field{zap.Int("status", status), zap.Error(err)}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields = append(fields, zap.String("invalid_field", fe.Field()+":"+fe.Tag()))
		}
	}
	l := requestLogger(c, log)
	if status >= http.StatusInternalServerError {
		l.Error(msg, fields...)
	} else {
		l.Info(msg, fields...)
	}
	Abort(c, status)
}

// idParam parses a positive integer path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// FlexInt decodes a JSON number or a numeric string. The web client posts
// select values as strings.
type FlexInt int

func (n *FlexInt) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("expected integer, got %s", b)
	}
	*n = FlexInt(v)
	return nil
}
