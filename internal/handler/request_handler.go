package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shareit-backend/internal/application"
	"shareit-backend/internal/middleware"
	"shareit-backend/internal/response"
)

// RequestHandler handles HTTP requests for item-request operations.
type RequestHandler struct {
	service *application.RequestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service *application.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// RegisterRoutes registers all request routes on the given router group.
func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	{
		requests.POST("", h.Create)
		requests.GET("/all", h.FindAllFromOthers)
		requests.GET("/:id", h.FindByID)
		requests.GET("", h.FindAllByUser)
	}
}

// Create handles POST /requests.
func (h *RequestHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return
	}

	var req application.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// FindAllByUser handles GET /requests.
func (h *RequestHandler) FindAllByUser(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return
	}

	result, err := h.service.FindAllByUser(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// FindByID handles GET /requests/:id.
func (h *RequestHandler) FindByID(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid request ID")
		return
	}

	result, err := h.service.FindByID(c.Request.Context(), id, userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// FindAllFromOthers handles GET /requests/all?from=&size=.
func (h *RequestHandler) FindAllFromOthers(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return
	}

	from, size, ok := parseOffsetParams(c)
	if !ok {
		return
	}

	result, err := h.service.FindAllFromOthers(c.Request.Context(), userID, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
