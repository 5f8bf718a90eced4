package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/domain"
)

// errorBody is the JSON shape of every error response.
type errorBody struct {
	Error  string    `json:"error"`
	Status int       `json:"status"`
	Time   time.Time `json:"time"`
}

// Success writes a 200 response with the given payload.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created writes a 201 response with the given payload.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent writes a 204 response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest writes a 400 response with the given message.
func BadRequest(c *gin.Context, message string) {
	writeError(c, http.StatusBadRequest, message)
}

// Error maps a service error to its HTTP status. Domain error kinds have a
// stable mapping; anything else is a 500.
func Error(c *gin.Context, err error) {
	kind, ok := domain.KindOf(err)
	if !ok {
		writeError(c, http.StatusInternalServerError, err.Error())
		return
	}

	switch kind {
	case domain.KindNotFound:
		writeError(c, http.StatusNotFound, err.Error())
	case domain.KindBadRequest, domain.KindNotAvailable:
		writeError(c, http.StatusBadRequest, err.Error())
	case domain.KindForbidden:
		writeError(c, http.StatusForbidden, err.Error())
	case domain.KindConflict:
		writeError(c, http.StatusConflict, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, err.Error())
	}
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, errorBody{
		Error:  message,
		Status: status,
		Time:   time.Now(),
	})
}
